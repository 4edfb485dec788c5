package handler

import "github.com/lumina/blog-studio/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Auth ---

type registerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Mode     string `json:"mode"     validate:"omitempty,oneof=login admin"`
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type userResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type authResponse struct {
	Token string        `json:"token,omitempty"`
	User  *userResponse `json:"user,omitempty"`
}

type sessionResponse struct {
	User *userResponse `json:"user"`
}

// --- Posts ---

type publishPostRequest struct {
	Title         string                `json:"title"         validate:"required"`
	Content       string                `json:"content"       validate:"required"`
	Author        string                `json:"author"        validate:"required"`
	AuthorSocials *domain.AuthorSocials `json:"authorSocials"`
	Category      string                `json:"category"`
	CoverImage    string                `json:"coverImage"`
	Tags          []string              `json:"tags"`
	Sources       []domain.Source       `json:"sources"`
}

type listPostsResponse struct {
	Featured *domain.Post  `json:"featured,omitempty"`
	Posts    []domain.Post `json:"posts"`
}

type categoryResponse struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	PostCount   int    `json:"postCount"`
}

type addCommentRequest struct {
	Text string `json:"text" validate:"required"`
}

// --- Drafting ---

type topicRequest struct {
	Topic string `json:"topic" validate:"required"`
}

type draftRequest struct {
	Topic   string   `json:"topic"   validate:"required"`
	Outline []string `json:"outline"`
}

type outlineResponse struct {
	Headings []string `json:"headings"`
	Fallback bool     `json:"fallback"`
}

type draftResponse struct {
	Content          string          `json:"content"`
	Keywords         []string        `json:"keywords"`
	Sources          []domain.Source `json:"sources"`
	KeywordsFallback bool            `json:"keywordsFallback"`
}

type composeResponse struct {
	Outline outlineResponse `json:"outline"`
	Draft   draftResponse   `json:"draft"`
}

type coverImageResponse struct {
	CoverImage string `json:"coverImage,omitempty"`
	Generated  bool   `json:"generated"`
}
