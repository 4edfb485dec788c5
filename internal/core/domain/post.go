package domain

import (
	"fmt"
	"math"
	"strings"
)

// Category is one of the fixed blog sections.
type Category string

const (
	CategoryTech      Category = "Technology"
	CategoryLifestyle Category = "Lifestyle"
	CategoryAI        Category = "Artificial Intelligence"
	CategoryDesign    Category = "Design"
	CategoryTravel    Category = "Travel"
	CategoryBusiness  Category = "Business"
)

// CategoryAll is the pseudo-category used by list filters to mean "no filter".
const CategoryAll = "All"

var categoryDescriptions = map[Category]string{
	CategoryTech:      "Hardware and digital frontiers.",
	CategoryLifestyle: "Living in the connected age.",
	CategoryAI:        "Evolution of machine intelligence.",
	CategoryDesign:    "UX and visual storytelling.",
	CategoryTravel:    "Global nomad perspectives.",
	CategoryBusiness:  "Entrepreneurship and finance.",
}

// Categories returns the enumeration in display order.
func Categories() []Category {
	return []Category{CategoryTech, CategoryLifestyle, CategoryAI, CategoryDesign, CategoryTravel, CategoryBusiness}
}

// IsValid reports whether c belongs to the enumeration.
func (c Category) IsValid() bool {
	_, ok := categoryDescriptions[c]
	return ok
}

// Description returns the short blurb shown on the categories page.
func (c Category) Description() string {
	return categoryDescriptions[c]
}

// AuthorSocials holds optional social handles shown on a post.
type AuthorSocials struct {
	LinkedIn  string `json:"linkedin,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Email     string `json:"email,omitempty"`
}

// Source is a grounding reference returned alongside generated content.
type Source struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

// Post is a published article. Field names match the persisted JSON layout.
type Post struct {
	ID            string         `json:"id"`
	Title         string         `json:"title"`
	Excerpt       string         `json:"excerpt"`
	Content       string         `json:"content"`
	Author        string         `json:"author"`
	AuthorID      string         `json:"authorId"`
	AuthorSocials *AuthorSocials `json:"authorSocials,omitempty"`
	Date          string         `json:"date"`
	CoverImage    string         `json:"coverImage"`
	Category      Category       `json:"category"`
	ReadTime      string         `json:"readTime"`
	Tags          []string       `json:"tags"`
	SEOKeywords   []string       `json:"seoKeywords"`
	Sources       []Source       `json:"sources,omitempty"`
}

// CanBeDeletedBy reports whether user may delete p: admins may delete any
// post, everyone else only their own.
func (p *Post) CanBeDeletedBy(user *User) bool {
	if user == nil {
		return false
	}
	return user.IsAdmin() || user.ID == p.AuthorID
}

const (
	// ExcerptLength is the number of content characters kept in an excerpt.
	ExcerptLength = 160
	// WordsPerMinute is the reading speed used for read-time labels.
	WordsPerMinute = 225
	// DateLayout formats publish dates, e.g. "Oct 24, 2024".
	DateLayout = "Jan 2, 2006"
)

var excerptStripper = strings.NewReplacer("#", "", "*", "", "`", "")

// Excerpt derives the list-view teaser from post content.
func Excerpt(content string) string {
	runes := []rune(content)
	if len(runes) > ExcerptLength {
		runes = runes[:ExcerptLength]
	}
	return excerptStripper.Replace(string(runes)) + "..."
}

// ReadTime derives the "N min read" label from the word count of content.
func ReadTime(content string) string {
	words := len(strings.Fields(content))
	minutes := int(math.Ceil(float64(words) / WordsPerMinute))
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("%d min read", minutes)
}
