package handler

import (
	"net/http"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/labstack/echo/v4"

	"github.com/lumina/blog-studio/internal/api/metrics"
	"github.com/lumina/blog-studio/internal/core/ports"
)

// PostHandler handles HTTP requests for posts, categories and comments.
type PostHandler struct {
	service ports.PostService
}

func NewPostHandler(service ports.PostService) *PostHandler {
	return &PostHandler{service: service}
}

// List handles GET /v1/posts.
//
// @Summary      List posts
// @Tags         posts
// @Produce      json
// @Param        q         query     string  false  "Case-insensitive search on title and excerpt"
// @Param        category  query     string  false  "Category name, or All"
// @Success      200       {object}  listPostsResponse
// @Failure      500       {object}  errorResponse
// @Router       /v1/posts [get]
func (h *PostHandler) List(c echo.Context) error {
	result, err := h.service.List(c.Request().Context(), ports.ListPostsFilter{
		Query:    c.QueryParam("q"),
		Category: c.QueryParam("category"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListPostsResponse(result))
}

// Get handles GET /v1/posts/:id.
//
// @Summary      Get a post
// @Tags         posts
// @Produce      json
// @Param        id   path      string  true  "Post ID"
// @Success      200  {object}  domain.Post
// @Failure      404  {object}  errorResponse
// @Router       /v1/posts/{id} [get]
func (h *PostHandler) Get(c echo.Context) error {
	post, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, post)
}

// HTML handles GET /v1/posts/:id/html and returns the rendered body.
//
// @Summary      Render a post body
// @Tags         posts
// @Produce      html
// @Param        id             path    string  true   "Post ID"
// @Param        If-None-Match  header  string  false  "ETag of a cached copy"
// @Success      200
// @Success      304
// @Failure      404  {object}  errorResponse
// @Router       /v1/posts/{id}/html [get]
func (h *PostHandler) HTML(c echo.Context) error {
	html, err := h.service.Render(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	etag := `"` + strconv.FormatUint(xxhash.Sum64String(html), 16) + `"`
	c.Response().Header().Set("ETag", etag)
	if c.Request().Header.Get("If-None-Match") == etag {
		return c.NoContent(http.StatusNotModified)
	}
	return c.HTML(http.StatusOK, html)
}

// Publish handles POST /v1/posts.
//
// @Summary      Publish a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      publishPostRequest  true  "Post fields from the editor"
// @Success      201   {object}  domain.Post
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/posts [post]
func (h *PostHandler) Publish(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req publishPostRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	post, err := h.service.Publish(c.Request().Context(), toPublishInput(req, actor))
	if err != nil {
		return err
	}

	metrics.PostsPublishedTotal.WithLabelValues(string(post.Category)).Inc()
	c.Response().Header().Set(echo.HeaderLocation, "/v1/posts/"+post.ID)
	return c.JSON(http.StatusCreated, post)
}

// Delete handles DELETE /v1/posts/:id. Admins may delete any post, authors
// only their own.
//
// @Summary      Delete a post
// @Tags         posts
// @Security     BearerAuth
// @Param        id   path      string  true  "Post ID"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/posts/{id} [delete]
func (h *PostHandler) Delete(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), c.Param("id"), actor); err != nil {
		return err
	}
	metrics.PostsDeletedTotal.Inc()
	return c.NoContent(http.StatusNoContent)
}

// Categories handles GET /v1/categories.
//
// @Summary      List categories
// @Tags         posts
// @Produce      json
// @Success      200  {array}   categoryResponse
// @Router       /v1/categories [get]
func (h *PostHandler) Categories(c echo.Context) error {
	summaries, err := h.service.Categories(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCategoryResponses(summaries))
}

// Comments handles GET /v1/posts/:id/comments.
//
// @Summary      List comments on a post
// @Tags         comments
// @Produce      json
// @Param        id   path      string  true  "Post ID"
// @Success      200  {array}   domain.Comment
// @Failure      404  {object}  errorResponse
// @Router       /v1/posts/{id}/comments [get]
func (h *PostHandler) Comments(c echo.Context) error {
	comments, err := h.service.Comments(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, comments)
}

// AddComment handles POST /v1/posts/:id/comments.
//
// @Summary      Comment on a post
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Post ID"
// @Param        body  body      addCommentRequest  true  "Comment text"
// @Success      201   {object}  domain.Comment
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/posts/{id}/comments [post]
func (h *PostHandler) AddComment(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req addCommentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	comment, err := h.service.AddComment(c.Request().Context(), c.Param("id"), actor, req.Text)
	if err != nil {
		return err
	}
	metrics.CommentsAddedTotal.Inc()
	return c.JSON(http.StatusCreated, comment)
}
