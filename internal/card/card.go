package card

import (
	"fmt"
	"html"
	"regexp"
	"strings"
	"text/template"
	"unicode"

	"kat/internal/domain"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases s and strips everything outside [a-z0-9], suitable
// for i18n keys, e.g. "Doja SDK" -> "dojasdk".
func Slugify(s string) string {
	return nonAlnum.ReplaceAllString(strings.ToLower(s), "")
}

// TitleCase returns the string with each whitespace-separated word capitalized.
func TitleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(strings.ToLower(w))
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

var snippetTmpl = template.Must(template.New("card").Parse(`<!-- Card: {{.Comment}} -->
<li class="cs-li resource-card"
    data-category="{{.DataCategory}}"
    data-tags="{{.DataTags}}"
    data-search="{{.DataSearch}}">
  <div class="cs-flex">
    <div>
      <h3 class="cs-h3" data-i18n="{{.TitleKey}}">{{.Title}}</h3>
      <p class="cs-li-text" data-i18n="{{.DescKey}}">
        {{.Desc}}
      </p>
      <div class="meta">
        <span class="pill" data-i18n="{{.CatKey}}">{{.CatLabel}}</span>
        <span class="pill" data-i18n="{{.TagKey}}">{{.TagLabel}}</span>
      </div>
      <div class="resource-actions">
        <a href="{{.Href}}" target="_blank" rel="noopener" class="btn btn-primary" data-i18n="resources.open">Open</a>
      </div>
    </div>
  </div>
</li>`))

// snippetData carries pre-escaped values into the template.
type snippetData struct {
	Comment      string
	DataCategory string
	DataTags     string
	DataSearch   string
	TitleKey     string
	DescKey      string
	Title        string
	Desc         string
	CatKey       string
	CatLabel     string
	TagKey       string
	TagLabel     string
	Href         string
}

// Builder renders resource-card HTML snippets
type Builder struct{}

// NewBuilder creates a new Builder
func NewBuilder() *Builder {
	return &Builder{}
}

// Build renders the HTML snippet for the given card fields.
func (b *Builder) Build(c domain.Card) (string, error) {
	nameSlug := Slugify(c.Name)
	if nameSlug == "" {
		return "", fmt.Errorf("card name must contain at least one alphanumeric character")
	}

	cat := strings.TrimSpace(c.Category)
	if cat == "" {
		return "", fmt.Errorf("category cannot be empty")
	}
	catSlug := Slugify(cat)

	var tags []string
	for _, t := range strings.Split(c.Tags, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	firstTag := ""
	if len(tags) > 0 {
		firstTag = tags[0]
	}

	title := strings.TrimSpace(c.Title)
	if title == "" {
		title = TitleCase(c.Name)
	}
	desc := strings.TrimSpace(c.Description)
	if desc == "" {
		desc = TitleCase(c.Name) + " resource."
	}

	catKey := "resources.categories.tools"
	if c.UpdatePills && catSlug != "" {
		catKey = "resources.categories." + catSlug
	}
	tagKey := "resources.tag.emulator"
	if c.UpdatePills && firstTag != "" {
		tagKey = "resources.tag." + Slugify(firstTag)
	}

	tagLabel := firstTag
	if tagLabel == "" {
		tagLabel = "Tag"
	}

	data := snippetData{
		Comment:      html.EscapeString(c.Name),
		DataCategory: html.EscapeString(cat),
		DataTags:     html.EscapeString(strings.Join(tags, ",")),
		DataSearch:   html.EscapeString(strings.TrimSpace(c.SearchTerms)),
		TitleKey:     "resources.cards." + nameSlug + ".title",
		DescKey:      "resources.cards." + nameSlug + ".desc",
		Title:        html.EscapeString(title),
		Desc:         html.EscapeString(desc),
		CatKey:       catKey,
		CatLabel:     html.EscapeString(cat),
		TagKey:       tagKey,
		TagLabel:     html.EscapeString(tagLabel),
		Href:         html.EscapeString(strings.TrimSpace(c.Href)),
	}

	var sb strings.Builder
	if err := snippetTmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("render snippet: %w", err)
	}
	return sb.String(), nil
}

// FileName returns the suggested output file name for the card.
func (b *Builder) FileName(c domain.Card) string {
	slug := Slugify(c.Name)
	if slug == "" {
		slug = "card"
	}
	return slug + ".html"
}
