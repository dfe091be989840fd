package content

import "html"

// PostSummary is a template-ready view of a post
type PostSummary struct {
	ID            int      `json:"id"`
	Slug          string   `json:"slug"`
	Title         string   `json:"title"`
	Date          string   `json:"date,omitempty"`
	RawDate       string   `json:"raw_date,omitempty"`
	Excerpt       string   `json:"excerpt,omitempty"`
	Content       string   `json:"content,omitempty"`
	FeaturedImage string   `json:"featured_image,omitempty"`
	Author        string   `json:"author,omitempty"`
	Categories    []string `json:"categories"`
	Tags          []string `json:"tags"`
}

// PageSummary is a template-ready view of a page
type PageSummary struct {
	ID            int    `json:"id"`
	Slug          string `json:"slug"`
	Title         string `json:"title"`
	Date          string `json:"date,omitempty"`
	RawDate       string `json:"raw_date,omitempty"`
	Content       string `json:"content,omitempty"`
	FeaturedImage string `json:"featured_image,omitempty"`
}

// SummarizePost builds a PostSummary. Content is included only when requested.
func SummarizePost(p *Post, includeContent bool) PostSummary {
	s := PostSummary{
		ID:            p.ID,
		Slug:          p.Slug,
		Title:         html.UnescapeString(p.Title.Rendered),
		Date:          FormatDate(p.Date),
		RawDate:       p.Date,
		Excerpt:       p.Excerpt.Rendered,
		FeaturedImage: p.FeaturedImage(),
		Categories:    TermNames(Categories(p)),
		Tags:          TermNames(Tags(p)),
	}
	if author := p.Embedded.PrimaryAuthor(); author != nil {
		s.Author = author.Name
	}
	if includeContent {
		s.Content = p.Content.Rendered
	}
	return s
}

// SummarizePosts summarizes a list of posts without content
func SummarizePosts(posts []Post) []PostSummary {
	out := make([]PostSummary, 0, len(posts))
	for i := range posts {
		out = append(out, SummarizePost(&posts[i], false))
	}
	return out
}

// SummarizePage builds a PageSummary. Content is included only when requested.
func SummarizePage(p *Page, includeContent bool) PageSummary {
	s := PageSummary{
		ID:            p.ID,
		Slug:          p.Slug,
		Title:         html.UnescapeString(p.Title.Rendered),
		Date:          FormatDate(p.Date),
		RawDate:       p.Date,
		FeaturedImage: p.FeaturedImage(),
	}
	if includeContent {
		s.Content = p.Content.Rendered
	}
	return s
}

// SummarizePages summarizes a list of pages without content
func SummarizePages(pages []Page) []PageSummary {
	out := make([]PageSummary, 0, len(pages))
	for i := range pages {
		out = append(out, SummarizePage(&pages[i], false))
	}
	return out
}
