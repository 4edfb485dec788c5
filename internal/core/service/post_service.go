package service

import (
	"bytes"
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/lumina/blog-studio/internal/core/domain"
	"github.com/lumina/blog-studio/internal/core/ports"
)

// DefaultCoverImage is used when a post is published without a cover.
const DefaultCoverImage = "https://images.unsplash.com/photo-1618005182384-a83a8bd57fbe?auto=format&fit=crop&q=80&w=1200"

// markdown renderer for post bodies. Raw HTML in content is escaped.
var md = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		extension.Linkify,
	),
)

type PostService struct {
	content  ports.ContentRepository
	comments ports.CommentRepository
	log      zerolog.Logger
	now      func() time.Time
}

func NewPostService(content ports.ContentRepository, comments ports.CommentRepository, log zerolog.Logger) *PostService {
	return &PostService{content: content, comments: comments, log: log, now: time.Now}
}

// List filters the collection by search text and category. With no filter
// active the newest post is split out as the featured post.
func (s *PostService) List(ctx context.Context, filter ports.ListPostsFilter) (*ports.ListPostsResult, error) {
	posts, err := s.content.ListPosts(ctx)
	if err != nil {
		return nil, err
	}

	query := strings.ToLower(strings.TrimSpace(filter.Query))
	category := strings.TrimSpace(filter.Category)
	anyCategory := category == "" || category == domain.CategoryAll

	matched := make([]domain.Post, 0, len(posts))
	for _, p := range posts {
		if !anyCategory && string(p.Category) != category {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Title), query) &&
			!strings.Contains(strings.ToLower(p.Excerpt), query) {
			continue
		}
		matched = append(matched, p)
	}

	if query == "" && anyCategory && len(matched) > 0 {
		featured := matched[0]
		return &ports.ListPostsResult{Featured: &featured, Posts: matched[1:]}, nil
	}
	return &ports.ListPostsResult{Posts: matched}, nil
}

func (s *PostService) Get(ctx context.Context, id string) (*domain.Post, error) {
	posts, err := s.content.ListPosts(ctx)
	if err != nil {
		return nil, err
	}
	for i := range posts {
		if posts[i].ID == id {
			return &posts[i], nil
		}
	}
	return nil, domain.ErrPostNotFound
}

// Render returns the post body as HTML.
func (s *PostService) Render(ctx context.Context, id string) (string, error) {
	post, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := md.Convert([]byte(post.Content), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Publish assembles a post from editor input and prepends it to the
// collection. Title, content, author and an actor are mandatory.
func (s *PostService) Publish(ctx context.Context, in ports.PublishPostInput) (*domain.Post, error) {
	title := strings.TrimSpace(in.Title)
	author := strings.TrimSpace(in.Author)
	if in.Actor == nil || title == "" || strings.TrimSpace(in.Content) == "" || author == "" {
		return nil, domain.ErrIncompletePost
	}

	category := domain.CategoryAI
	if in.Category != "" {
		category = domain.Category(in.Category)
		if !category.IsValid() {
			return nil, domain.ErrInvalidCategory
		}
	}

	if err := s.ensureUserExists(ctx, in.Actor.ID); err != nil {
		return nil, err
	}

	socials := domain.AuthorSocials{}
	if in.AuthorSocials != nil {
		socials = *in.AuthorSocials
	}
	if socials.Email == "" {
		socials.Email = in.Actor.Email
	}

	cover := strings.TrimSpace(in.CoverImage)
	if cover == "" {
		cover = DefaultCoverImage
	}

	tags := append([]string{}, in.Tags...)
	post := &domain.Post{
		ID:            newID(),
		Title:         title,
		Excerpt:       domain.Excerpt(in.Content),
		Content:       in.Content,
		Author:        author,
		AuthorID:      in.Actor.ID,
		AuthorSocials: &socials,
		Date:          s.now().Format(domain.DateLayout),
		CoverImage:    cover,
		Category:      category,
		ReadTime:      domain.ReadTime(in.Content),
		Tags:          tags,
		SEOKeywords:   append([]string{}, tags...),
		Sources:       in.Sources,
	}

	if err := s.content.CreatePost(ctx, *post); err != nil {
		s.log.Error().Err(err).Msg("failed to create post")
		return nil, err
	}

	s.log.Info().Str("post_id", post.ID).Str("author_id", post.AuthorID).Str("category", string(category)).Msg("post published")
	return post, nil
}

func (s *PostService) ensureUserExists(ctx context.Context, userID string) error {
	users, err := s.content.ListUsers(ctx)
	if err != nil {
		return err
	}
	for _, u := range users {
		if u.ID == userID {
			return nil
		}
	}
	return domain.ErrUserNotFound
}

// Delete removes a post and its comments. Only admins and the post's author
// may delete; a refused request never touches the collection.
func (s *PostService) Delete(ctx context.Context, id string, actor *domain.User) error {
	if actor == nil {
		return domain.ErrUnauthenticated
	}

	post, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if !post.CanBeDeletedBy(actor) {
		s.log.Warn().Str("post_id", id).Str("user_id", actor.ID).Msg("unauthorized delete attempt")
		return domain.ErrForbidden
	}

	if err := s.content.DeletePost(ctx, id); err != nil {
		return err
	}
	if err := s.comments.DeleteComments(ctx, id); err != nil {
		s.log.Warn().Err(err).Str("post_id", id).Msg("failed to delete comments")
	}

	s.log.Info().Str("post_id", id).Str("user_id", actor.ID).Msg("post deleted")
	return nil
}

// Categories lists every category with its description and post count.
func (s *PostService) Categories(ctx context.Context) ([]ports.CategorySummary, error) {
	posts, err := s.content.ListPosts(ctx)
	if err != nil {
		return nil, err
	}
	counts := make(map[domain.Category]int)
	for _, p := range posts {
		counts[p.Category]++
	}

	out := make([]ports.CategorySummary, 0, len(domain.Categories()))
	for _, c := range domain.Categories() {
		out = append(out, ports.CategorySummary{Name: c, Description: c.Description(), PostCount: counts[c]})
	}
	return out, nil
}

func (s *PostService) Comments(ctx context.Context, postID string) ([]domain.Comment, error) {
	if _, err := s.Get(ctx, postID); err != nil {
		return nil, err
	}
	return s.comments.ListComments(ctx, postID)
}

// AddComment attaches a comment from an authenticated actor to a post.
func (s *PostService) AddComment(ctx context.Context, postID string, actor *domain.User, text string) (*domain.Comment, error) {
	if actor == nil {
		return nil, domain.ErrUnauthenticated
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domain.ErrEmptyComment
	}
	if _, err := s.Get(ctx, postID); err != nil {
		return nil, err
	}

	comment := &domain.Comment{
		ID:       newID(),
		PostID:   postID,
		Author:   actor.Name,
		AuthorID: actor.ID,
		Text:     text,
		Date:     s.now().Format(domain.DateLayout),
	}
	if err := s.comments.AddComment(ctx, *comment); err != nil {
		return nil, err
	}
	return comment, nil
}
