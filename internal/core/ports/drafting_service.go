package ports

import (
	"context"

	"github.com/lumina/blog-studio/internal/core/domain"
)

// OutlineResult is the outcome of the outline stage.
type OutlineResult struct {
	Headings []string
	// Fallback is true when the model response could not be used and the
	// default outline was returned instead.
	Fallback bool
}

// DraftResult is the outcome of the draft stage.
type DraftResult struct {
	Content  string
	Keywords []string
	Sources  []domain.Source
	// KeywordsFallback is true when no keyword line was found and the default
	// keywords were used.
	KeywordsFallback bool
}

// ComposeResult bundles the outline and the draft written from it.
type ComposeResult struct {
	Outline OutlineResult
	Draft   DraftResult
}

// DraftingService runs the AI-assisted drafting stages. Stages never run
// concurrently; parse anomalies fall back to defaults, transport failures
// are returned wrapped in domain.ErrGenerationFailed.
type DraftingService interface {
	GenerateOutline(ctx context.Context, topic string) (*OutlineResult, error)
	GenerateDraft(ctx context.Context, topic string, outline []string) (*DraftResult, error)
	// GenerateCoverImage returns a data URI, or ok=false when no image could
	// be produced. It never fails.
	GenerateCoverImage(ctx context.Context, topic string) (dataURI string, ok bool)
	ComposeDraft(ctx context.Context, topic string) (*ComposeResult, error)
}
