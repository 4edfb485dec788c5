package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/lumina/blog-studio/internal/api/metrics"
	"github.com/lumina/blog-studio/internal/core/ports"
)

// DraftHandler exposes the AI drafting stages. A nil service answers 503 so
// the API can run without model credentials.
type DraftHandler struct {
	service ports.DraftingService
}

func NewDraftHandler(service ports.DraftingService) *DraftHandler {
	return &DraftHandler{service: service}
}

func (h *DraftHandler) available() error {
	if h.service == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "drafting is not configured")
	}
	return nil
}

func outcome(err error, fallback bool) string {
	switch {
	case err != nil:
		return "error"
	case fallback:
		return "fallback"
	default:
		return "ok"
	}
}

// Outline handles POST /v1/drafts/outline.
//
// @Summary      Generate an outline
// @Tags         drafts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      topicRequest  true  "Topic"
// @Success      200   {object}  outlineResponse
// @Failure      400   {object}  errorResponse
// @Failure      502   {object}  errorResponse
// @Router       /v1/drafts/outline [post]
func (h *DraftHandler) Outline(c echo.Context) error {
	if err := h.available(); err != nil {
		return err
	}
	var req topicRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	started := time.Now()
	result, err := h.service.GenerateOutline(c.Request().Context(), req.Topic)
	metrics.ObserveGeneration("outline", outcome(err, err == nil && result.Fallback), started)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOutlineResponse(*result))
}

// Content handles POST /v1/drafts/content.
//
// @Summary      Write a draft from an outline
// @Tags         drafts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      draftRequest  true  "Topic and outline"
// @Success      200   {object}  draftResponse
// @Failure      400   {object}  errorResponse
// @Failure      502   {object}  errorResponse
// @Router       /v1/drafts/content [post]
func (h *DraftHandler) Content(c echo.Context) error {
	if err := h.available(); err != nil {
		return err
	}
	var req draftRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	started := time.Now()
	result, err := h.service.GenerateDraft(c.Request().Context(), req.Topic, req.Outline)
	metrics.ObserveGeneration("draft", outcome(err, err == nil && result.KeywordsFallback), started)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toDraftResponse(*result))
}

// Compose handles POST /v1/drafts/compose: outline then draft in one call.
//
// @Summary      Outline and draft a topic
// @Tags         drafts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      topicRequest  true  "Topic"
// @Success      200   {object}  composeResponse
// @Failure      400   {object}  errorResponse
// @Failure      502   {object}  errorResponse
// @Router       /v1/drafts/compose [post]
func (h *DraftHandler) Compose(c echo.Context) error {
	if err := h.available(); err != nil {
		return err
	}
	var req topicRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	started := time.Now()
	result, err := h.service.ComposeDraft(c.Request().Context(), req.Topic)
	fallback := err == nil && (result.Outline.Fallback || result.Draft.KeywordsFallback)
	metrics.ObserveGeneration("compose", outcome(err, fallback), started)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, composeResponse{
		Outline: toOutlineResponse(result.Outline),
		Draft:   toDraftResponse(result.Draft),
	})
}

// CoverImage handles POST /v1/drafts/cover-image. A failed generation is not
// an error: generated is false and the editor keeps its current cover.
//
// @Summary      Generate a cover image
// @Tags         drafts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      topicRequest  true  "Topic"
// @Success      200   {object}  coverImageResponse
// @Failure      400   {object}  errorResponse
// @Router       /v1/drafts/cover-image [post]
func (h *DraftHandler) CoverImage(c echo.Context) error {
	if err := h.available(); err != nil {
		return err
	}
	var req topicRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	started := time.Now()
	uri, ok := h.service.GenerateCoverImage(c.Request().Context(), req.Topic)
	metrics.ObserveGeneration("cover_image", outcome(nil, !ok), started)
	return c.JSON(http.StatusOK, coverImageResponse{CoverImage: uri, Generated: ok})
}
