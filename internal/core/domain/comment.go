package domain

// Comment is a reader's note attached to a post.
type Comment struct {
	ID       string `json:"id"`
	PostID   string `json:"postId"`
	Author   string `json:"author"`
	AuthorID string `json:"authorId"`
	Text     string `json:"text"`
	Date     string `json:"date"`
}
