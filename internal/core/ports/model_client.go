package ports

import "context"

// TextRequest asks the model for a text completion.
type TextRequest struct {
	Prompt string
	// JSONStringArray constrains the response to a JSON array of strings.
	JSONStringArray bool
	// SearchGrounding lets the model consult web search and report references.
	SearchGrounding bool
}

// GroundingReference is a web reference reported by a grounded response.
// Title may be empty.
type GroundingReference struct {
	URI   string
	Title string
}

// TextResponse is the raw text of the first candidate plus its references.
type TextResponse struct {
	Text       string
	References []GroundingReference
}

// ImageRequest asks the model for a generated image.
type ImageRequest struct {
	Prompt      string
	AspectRatio string
}

// InlineImage is a binary image part returned by the model.
type InlineImage struct {
	MIMEType string
	Data     []byte
}

// ImageResponse carries zero or more inline images.
type ImageResponse struct {
	Images []InlineImage
}

// ModelClient is the hosted generative model, treated as a black box.
type ModelClient interface {
	GenerateText(ctx context.Context, req TextRequest) (*TextResponse, error)
	GenerateImage(ctx context.Context, req ImageRequest) (*ImageResponse, error)
}
