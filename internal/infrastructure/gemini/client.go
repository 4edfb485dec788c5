// Package gemini adapts the Google GenAI SDK to ports.ModelClient.
package gemini

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"

	"github.com/lumina/blog-studio/internal/core/ports"
)

const (
	DefaultTextModel  = "gemini-3-flash-preview"
	DefaultImageModel = "gemini-2.5-flash-image"
)

// Config captures the settings for the hosted model.
type Config struct {
	APIKey     string
	TextModel  string
	ImageModel string
}

// Client issues generation calls against the Gemini API.
type Client struct {
	models     *genai.Models
	textModel  string
	imageModel string
}

// NewClient builds a Gemini client. The API key is mandatory.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("gemini: api key is required")
	}
	if cfg.TextModel == "" {
		cfg.TextModel = DefaultTextModel
	}
	if cfg.ImageModel == "" {
		cfg.ImageModel = DefaultImageModel
	}

	c, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}

	return &Client{models: c.Models, textModel: cfg.TextModel, imageModel: cfg.ImageModel}, nil
}

func (c *Client) GenerateText(ctx context.Context, req ports.TextRequest) (*ports.TextResponse, error) {
	resp, err := c.models.GenerateContent(ctx, c.textModel, genai.Text(req.Prompt), textConfig(req))
	if err != nil {
		return nil, fmt.Errorf("gemini generate text: %w", err)
	}
	return toTextResponse(resp), nil
}

func (c *Client) GenerateImage(ctx context.Context, req ports.ImageRequest) (*ports.ImageResponse, error) {
	resp, err := c.models.GenerateContent(ctx, c.imageModel, genai.Text(req.Prompt), imageConfig(req))
	if err != nil {
		return nil, fmt.Errorf("gemini generate image: %w", err)
	}
	return toImageResponse(resp), nil
}

func textConfig(req ports.TextRequest) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{}
	if req.JSONStringArray {
		cfg.ResponseMIMEType = "application/json"
		cfg.ResponseSchema = &genai.Schema{
			Type:  genai.TypeArray,
			Items: &genai.Schema{Type: genai.TypeString},
		}
	}
	if req.SearchGrounding {
		cfg.Tools = []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}}
	}
	return cfg
}

func imageConfig(req ports.ImageRequest) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{}
	if req.AspectRatio != "" {
		cfg.ImageConfig = &genai.ImageConfig{AspectRatio: req.AspectRatio}
	}
	return cfg
}

// toTextResponse keeps the first candidate's text and its web references.
func toTextResponse(resp *genai.GenerateContentResponse) *ports.TextResponse {
	out := &ports.TextResponse{}
	if resp == nil {
		return out
	}
	out.Text = resp.Text()

	if len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return out
	}
	meta := resp.Candidates[0].GroundingMetadata
	if meta == nil {
		return out
	}
	for _, chunk := range meta.GroundingChunks {
		if chunk == nil || chunk.Web == nil {
			continue
		}
		out.References = append(out.References, ports.GroundingReference{URI: chunk.Web.URI, Title: chunk.Web.Title})
	}
	return out
}

func toImageResponse(resp *genai.GenerateContentResponse) *ports.ImageResponse {
	out := &ports.ImageResponse{}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0] == nil || resp.Candidates[0].Content == nil {
		return out
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if part == nil || part.InlineData == nil {
			continue
		}
		out.Images = append(out.Images, ports.InlineImage{MIMEType: part.InlineData.MIMEType, Data: part.InlineData.Data})
	}
	return out
}
