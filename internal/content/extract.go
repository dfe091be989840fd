package content

// Taxonomy discriminators for the built-in taxonomies
const (
	TaxonomyCategory = "category"
	TaxonomyTag      = "post_tag"
)

// Positions of the built-in taxonomies inside _embedded["wp:term"].
// WordPress emits the term groups in the order the taxonomies are registered
// for the post type, which for posts is categories then tags. Nothing in the
// response labels the groups, so this ordering is the only selector; the
// taxonomy field is checked again after selection.
const (
	CategoryTermSlot = 0
	TagTermSlot      = 1
)

// TermSlot returns the embedded term group at slot, or nil when absent
func (e *Embedded) TermSlot(slot int) []Term {
	if e == nil || slot < 0 || slot >= len(e.Terms) {
		return nil
	}
	return e.Terms[slot]
}

// FeaturedImageURL returns the first embedded featured media source URL, or ""
func (e *Embedded) FeaturedImageURL() string {
	if e == nil || len(e.FeaturedMedia) == 0 {
		return ""
	}
	return e.FeaturedMedia[0].SourceURL
}

// PrimaryAuthor returns the first embedded author, or nil
func (e *Embedded) PrimaryAuthor() *Author {
	if e == nil || len(e.Author) == 0 {
		return nil
	}
	return &e.Author[0]
}

// FeaturedImage returns the post's featured image URL, or "" when not embedded
func (p *Post) FeaturedImage() string {
	if p == nil {
		return ""
	}
	return p.Embedded.FeaturedImageURL()
}

// FeaturedImage returns the page's featured image URL, or "" when not embedded
func (p *Page) FeaturedImage() string {
	if p == nil {
		return ""
	}
	return p.Embedded.FeaturedImageURL()
}

// Categories returns the post's embedded categories. Never nil.
func Categories(p *Post) []Term {
	return termsFor(p, CategoryTermSlot, TaxonomyCategory)
}

// Tags returns the post's embedded tags. Never nil.
func Tags(p *Post) []Term {
	return termsFor(p, TagTermSlot, TaxonomyTag)
}

// TermNames returns the names of terms in order
func TermNames(terms []Term) []string {
	names := make([]string, 0, len(terms))
	for _, t := range terms {
		names = append(names, t.Name)
	}
	return names
}

func termsFor(p *Post, slot int, taxonomy string) []Term {
	terms := []Term{}
	if p == nil {
		return terms
	}
	for _, t := range p.Embedded.TermSlot(slot) {
		if t.Taxonomy == taxonomy {
			terms = append(terms, t)
		}
	}
	return terms
}
