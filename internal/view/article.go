package view

import (
	"strings"
	"time"

	"github.com/clara-app/clara-server/internal/model"
)

// Date layouts matching the original pages: the article meta line uses
// a two-digit day, list cards a bare one.
const (
	metaDateLayout = "02 Jan 2006"
	cardDateLayout = "2 Jan 2006"
)

// ArticlePage is the view model for the article detail page.
type ArticlePage struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Category       string `json:"category"`
	Excerpt        string `json:"excerpt"`
	ContentHTML    string `json:"content_html"` // raw markup, inserted verbatim
	Meta           string `json:"meta"`
	IsImportant    bool   `json:"is_important"`
	ImportantLabel string `json:"important_label,omitempty"` // admin only
	IsPinned       bool   `json:"is_pinned"`
	PinLabel       string `json:"pin_label"`
	IsAdmin        bool   `json:"is_admin"`
}

// ArticlePageError is the terminal-error variant of the detail page:
// the page renders but shows only the error text.
type ArticlePageError struct {
	Error string `json:"error"`
}

// NewArticlePage assembles the detail view model from the fetched
// article plus the viewer's pin state and admin bit.
func NewArticlePage(a model.Article, isPinned, isAdmin bool) ArticlePage {
	p := ArticlePage{
		ID:          a.ID,
		Title:       a.Title,
		Category:    a.Category,
		Excerpt:     a.Excerpt,
		ContentHTML: a.Content,
		Meta:        MetaLine(a.Author, a.CreatedAt, a.UpdatedAt),
		IsImportant: a.IsPinnedByAdmin,
		IsPinned:    isPinned,
		PinLabel:    PinLabel(isPinned),
		IsAdmin:     isAdmin,
	}
	if p.Title == "" {
		p.Title = "Untitled article"
	}
	if p.Category == "" {
		p.Category = "Uncategorised"
	}
	if isAdmin {
		p.ImportantLabel = ImportantLabel(a.IsPinnedByAdmin)
	}
	return p
}

// MetaLine renders "By {author} • Published {date} • Updated {date}".
// Each clause appears only when its source field is set; the Updated
// clause additionally requires updated to differ in value from
// created — an article that was created and never edited shows no
// Updated clause even though both timestamps are populated.
func MetaLine(author string, created, updated time.Time) string {
	parts := []string{}
	if author != "" {
		parts = append(parts, "By "+author)
	}
	if !created.IsZero() {
		parts = append(parts, "Published "+created.Format(metaDateLayout))
	}
	if !updated.IsZero() && (created.IsZero() || !updated.Equal(created)) {
		parts = append(parts, "Updated "+updated.Format(metaDateLayout))
	}
	return strings.Join(parts, " • ")
}

// ImportantLabel returns the admin toggle's label for a state.
func ImportantLabel(isImportant bool) string {
	if isImportant {
		return LabelUnmarkImportant
	}
	return LabelMarkImportant
}

// PinLabel returns the personal pin toggle's label for a state.
func PinLabel(isPinned bool) string {
	if isPinned {
		return LabelUnpin
	}
	return LabelPin
}

// Card is one article rendered in a list.
type Card struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Excerpt     string `json:"excerpt"`
	CreatedText string `json:"created_text"` // "Created: 2 Jan 2006", empty when no date
}

// List is a rendered article list. Message carries the empty-state or
// failure copy and is only set when Cards is empty.
type List struct {
	Cards   []Card `json:"cards"`
	Message string `json:"message,omitempty"`
}

// NewCard formats a single summary row.
func NewCard(s model.ArticleSummary) Card {
	c := Card{ID: s.ID, Title: s.Title, Excerpt: s.Excerpt}
	if !s.CreatedAt.IsZero() {
		c.CreatedText = "Created: " + s.CreatedAt.Format(cardDateLayout)
	}
	return c
}

// NewList renders summaries into cards, substituting emptyMsg when
// there is nothing to show.
func NewList(summaries []model.ArticleSummary, emptyMsg string) List {
	if len(summaries) == 0 {
		return List{Cards: []Card{}, Message: emptyMsg}
	}
	cards := make([]Card, len(summaries))
	for i, s := range summaries {
		cards[i] = NewCard(s)
	}
	return List{Cards: cards}
}

// FailedList is the list variant for a fetch that errored. It is a
// distinct constructor so the error copy can never be mistaken for an
// empty state at a call site.
func FailedList(errMsg string) List {
	return List{Cards: []Card{}, Message: errMsg}
}
