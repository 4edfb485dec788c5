package handler

import (
	"github.com/lumina/blog-studio/internal/core/domain"
	"github.com/lumina/blog-studio/internal/core/ports"
)

// --- Request → Service input ---

func toPublishInput(req publishPostRequest, actor *domain.User) ports.PublishPostInput {
	return ports.PublishPostInput{
		Title:         req.Title,
		Content:       req.Content,
		Author:        req.Author,
		AuthorSocials: req.AuthorSocials,
		Category:      req.Category,
		CoverImage:    req.CoverImage,
		Tags:          req.Tags,
		Sources:       req.Sources,
		Actor:         actor,
	}
}

// --- Service output → Response ---

func toUserResponse(u *domain.User) *userResponse {
	if u == nil {
		return nil
	}
	return &userResponse{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}

func toListPostsResponse(r *ports.ListPostsResult) listPostsResponse {
	posts := r.Posts
	if posts == nil {
		posts = []domain.Post{}
	}
	return listPostsResponse{Featured: r.Featured, Posts: posts}
}

func toCategoryResponses(in []ports.CategorySummary) []categoryResponse {
	out := make([]categoryResponse, 0, len(in))
	for _, c := range in {
		out = append(out, categoryResponse{Name: string(c.Name), Description: c.Description, PostCount: c.PostCount})
	}
	return out
}

func toOutlineResponse(r ports.OutlineResult) outlineResponse {
	return outlineResponse{Headings: r.Headings, Fallback: r.Fallback}
}

func toDraftResponse(r ports.DraftResult) draftResponse {
	sources := r.Sources
	if sources == nil {
		sources = []domain.Source{}
	}
	return draftResponse{Content: r.Content, Keywords: r.Keywords, Sources: sources, KeywordsFallback: r.KeywordsFallback}
}
