package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/lumina/blog-studio/internal/core/domain"
	"github.com/lumina/blog-studio/internal/core/ports"
)

const (
	coverAspectRatio = "16:9"
	defaultImageMIME = "image/png"
	unnamedSource    = "Source"
)

// defaultOutline is used whenever the outline response cannot be parsed.
var defaultOutline = []string{"Introduction", "Trends", "Best Practices", "Conclusion"}

// draftService runs the outline, draft and cover-image stages against the
// model. Each stage is a single call; nothing is retried.
type draftService struct {
	model ports.ModelClient
	log   zerolog.Logger
}

// NewDraftService returns a DraftingService backed by model.
func NewDraftService(model ports.ModelClient, log zerolog.Logger) ports.DraftingService {
	return &draftService{model: model, log: log}
}

func (s *draftService) GenerateOutline(ctx context.Context, topic string) (*ports.OutlineResult, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, domain.ErrTopicRequired
	}

	resp, err := s.model.GenerateText(ctx, ports.TextRequest{
		Prompt:          outlinePrompt(topic),
		JSONStringArray: true,
	})
	if err != nil {
		return nil, fmt.Errorf("outline: %w: %w", domain.ErrGenerationFailed, err)
	}

	headings, ok := parseOutline(responseText(resp))
	if !ok {
		s.log.Warn().Str("topic", topic).Msg("outline response unusable, using default outline")
		return &ports.OutlineResult{Headings: append([]string(nil), defaultOutline...), Fallback: true}, nil
	}

	s.log.Debug().Str("topic", topic).Int("headings", len(headings)).Msg("outline generated")
	return &ports.OutlineResult{Headings: headings}, nil
}

func (s *draftService) GenerateDraft(ctx context.Context, topic string, outline []string) (*ports.DraftResult, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, domain.ErrTopicRequired
	}

	resp, err := s.model.GenerateText(ctx, ports.TextRequest{
		Prompt:          draftPrompt(topic, outline),
		SearchGrounding: true,
	})
	if err != nil {
		return nil, fmt.Errorf("draft: %w: %w", domain.ErrGenerationFailed, err)
	}

	content, keywords, fallback := splitKeywordLine(responseText(resp), topic)
	result := &ports.DraftResult{
		Content:          content,
		Keywords:         keywords,
		Sources:          groundingSources(resp),
		KeywordsFallback: fallback,
	}

	s.log.Debug().
		Str("topic", topic).
		Int("content_len", len(content)).
		Int("sources", len(result.Sources)).
		Bool("keywords_fallback", fallback).
		Msg("draft generated")
	return result, nil
}

func (s *draftService) GenerateCoverImage(ctx context.Context, topic string) (string, bool) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return "", false
	}

	resp, err := s.model.GenerateImage(ctx, ports.ImageRequest{
		Prompt:      imagePrompt(topic),
		AspectRatio: coverAspectRatio,
	})
	if err != nil {
		s.log.Error().Err(err).Str("topic", topic).Msg("image generation failed")
		return "", false
	}
	if resp == nil {
		return "", false
	}

	for _, img := range resp.Images {
		if len(img.Data) == 0 {
			continue
		}
		mime := img.MIMEType
		if mime == "" {
			mime = defaultImageMIME
		}
		return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(img.Data), true
	}

	s.log.Warn().Str("topic", topic).Msg("image response carried no inline image")
	return "", false
}

// ComposeDraft runs the outline stage and then the draft stage. A failure in
// either stage aborts without a partial result.
func (s *draftService) ComposeDraft(ctx context.Context, topic string) (*ports.ComposeResult, error) {
	outline, err := s.GenerateOutline(ctx, topic)
	if err != nil {
		return nil, err
	}
	draft, err := s.GenerateDraft(ctx, topic, outline.Headings)
	if err != nil {
		return nil, err
	}
	return &ports.ComposeResult{Outline: *outline, Draft: *draft}, nil
}

// ---------------------------------------------------------------------------
// Prompts
// ---------------------------------------------------------------------------

func outlinePrompt(topic string) string {
	return fmt.Sprintf("Generate a structured, SEO-optimized blog outline for the topic: %q. "+
		"Return the response as a JSON array of strings representing headings.", topic)
}

func draftPrompt(topic string, outline []string) string {
	return fmt.Sprintf("Write a high-quality, professional blog post about %q based on this outline: %s.\n"+
		"Use Google Search to find real data and trends.\n"+
		"Use Markdown.\n"+
		"At the end of your response, provide 3-5 keywords in a comma-separated list.",
		topic, strings.Join(outline, ", "))
}

func imagePrompt(topic string) string {
	return "A cinematic, ultra-high-quality professional blog featured image for: " + topic + ". Aesthetic and modern."
}

// ---------------------------------------------------------------------------
// Response parsing
// ---------------------------------------------------------------------------

func responseText(resp *ports.TextResponse) string {
	if resp == nil {
		return ""
	}
	return resp.Text
}

// parseOutline decodes a JSON array of headings. It reports false when the
// payload is not such an array or holds no non-blank heading.
func parseOutline(raw string) ([]string, bool) {
	var items []string
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &items); err != nil {
		return nil, false
	}
	headings := make([]string, 0, len(items))
	for _, h := range items {
		if h = strings.TrimSpace(h); h != "" {
			headings = append(headings, h)
		}
	}
	return headings, len(headings) > 0
}

// splitKeywordLine separates the trailing comma-separated keyword line from
// the body. When the last line holds no comma the whole text is the body and
// the default keywords are returned with fallback=true.
func splitKeywordLine(raw, topic string) (content string, keywords []string, fallback bool) {
	idx := strings.LastIndex(raw, "\n")
	last := raw[idx+1:]
	if !strings.Contains(last, ",") {
		return raw, []string{topic, "AI", "Trending"}, true
	}

	parts := strings.Split(last, ",")
	keywords = make([]string, len(parts))
	for i, p := range parts {
		keywords[i] = strings.TrimSpace(p)
	}
	if idx >= 0 {
		content = raw[:idx]
	}
	return content, keywords, false
}

func groundingSources(resp *ports.TextResponse) []domain.Source {
	sources := []domain.Source{}
	if resp == nil {
		return sources
	}
	for _, ref := range resp.References {
		if ref.URI == "" {
			continue
		}
		title := ref.Title
		if title == "" {
			title = unnamedSource
		}
		sources = append(sources, domain.Source{URI: ref.URI, Title: title})
	}
	return sources
}
