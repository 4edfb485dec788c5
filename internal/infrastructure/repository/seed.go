package repository

import "github.com/lumina/blog-studio/internal/core/domain"

// BootstrapAdminID is the id of the administrator returned while the user
// collection is empty.
const BootstrapAdminID = "admin-1"

func seedPosts() []domain.Post {
	return []domain.Post{
		{
			ID:      "1",
			Title:   "The Future of Generative AI in Creative Writing",
			Excerpt: "Explore how large language models are reshaping the way we tell stories and create content in 2024 and beyond.",
			Content: "Generative AI is not just a tool; it is a collaborator. As we move further into the digital age, " +
				"the line between human creativity and machine intelligence becomes increasingly blurred...\n\n" +
				"### The Shift in Narrative\n" +
				"Content creation is undergoing a paradigm shift. Writers are now leveraging LLMs to brainstorm, outline, " +
				"and even refine their prose. This synergy allows for faster iterations and the exploration of diverse " +
				"creative paths that were previously time-prohibitive.",
			Author:      "Lumina Editorial",
			AuthorID:    BootstrapAdminID,
			Date:        "Oct 24, 2024",
			CoverImage:  "https://images.unsplash.com/photo-1677442136019-21780ecad995?auto=format&fit=crop&q=80&w=1200",
			Category:    domain.CategoryAI,
			ReadTime:    "6 min read",
			Tags:        []string{"AI", "Writing", "Creativity"},
			SEOKeywords: []string{"Generative AI", "Future of Writing", "AI Content Tools"},
		},
	}
}
