package domain

// Card holds the fields of a resource-card snippet
type Card struct {
	Name        string // Used for the comment and i18n key slugs
	Category    string // data-category and the category pill
	Tags        string // Comma-separated; first tag becomes the tag pill
	SearchTerms string // data-search keywords
	Title       string // Visible fallback title inside <h3>
	Description string // Visible fallback description inside <p>
	Href        string // Target for the Open button
	UpdatePills bool   // Derive pill i18n keys from category and first tag
}
