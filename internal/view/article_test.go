package view

import (
	"testing"
	"time"

	"github.com/clara-app/clara-server/internal/model"
)

func TestMetaLine(t *testing.T) {
	created := time.Date(2025, time.March, 4, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		author  string
		created time.Time
		updated time.Time
		want    string
	}{
		{
			name:    "author published and updated",
			author:  "Jo Smith",
			created: created,
			updated: created.Add(48 * time.Hour),
			want:    "By Jo Smith • Published 04 Mar 2025 • Updated 06 Mar 2025",
		},
		{
			name:    "identical instants render published only",
			author:  "Jo Smith",
			created: created,
			updated: created,
			want:    "By Jo Smith • Published 04 Mar 2025",
		},
		{
			name:    "one second later renders both clauses",
			author:  "Jo Smith",
			created: created,
			updated: created.Add(time.Second),
			want:    "By Jo Smith • Published 04 Mar 2025 • Updated 04 Mar 2025",
		},
		{
			name:    "no author",
			created: created,
			updated: created,
			want:    "Published 04 Mar 2025",
		},
		{
			name:   "author only",
			author: "Jo Smith",
			want:   "By Jo Smith",
		},
		{
			name: "nothing set",
			want: "",
		},
		{
			name:    "updated without created",
			updated: created,
			want:    "Updated 04 Mar 2025",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MetaLine(tt.author, tt.created, tt.updated)
			if got != tt.want {
				t.Errorf("MetaLine() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewArticlePageFallbacks(t *testing.T) {
	a := model.Article{ID: "a1", Content: "<p>body</p>"}

	p := NewArticlePage(a, false, false)
	if p.Title != "Untitled article" {
		t.Errorf("Title = %q, want %q", p.Title, "Untitled article")
	}
	if p.Category != "Uncategorised" {
		t.Errorf("Category = %q, want %q", p.Category, "Uncategorised")
	}
	if p.ContentHTML != "<p>body</p>" {
		t.Errorf("ContentHTML = %q, want raw markup verbatim", p.ContentHTML)
	}
	if p.ImportantLabel != "" {
		t.Errorf("ImportantLabel = %q, want empty for non-admin", p.ImportantLabel)
	}
}

func TestNewArticlePageLabels(t *testing.T) {
	a := model.Article{ID: "a1", Title: "T", IsPinnedByAdmin: true}

	p := NewArticlePage(a, true, true)
	if !p.IsImportant || p.ImportantLabel != LabelUnmarkImportant {
		t.Errorf("important state = (%v, %q), want (true, %q)", p.IsImportant, p.ImportantLabel, LabelUnmarkImportant)
	}
	if !p.IsPinned || p.PinLabel != LabelUnpin {
		t.Errorf("pin state = (%v, %q), want (true, %q)", p.IsPinned, p.PinLabel, LabelUnpin)
	}

	a.IsPinnedByAdmin = false
	p = NewArticlePage(a, false, true)
	if p.ImportantLabel != LabelMarkImportant {
		t.Errorf("ImportantLabel = %q, want %q", p.ImportantLabel, LabelMarkImportant)
	}
	if p.PinLabel != LabelPin {
		t.Errorf("PinLabel = %q, want %q", p.PinLabel, LabelPin)
	}
}

func TestNewCard(t *testing.T) {
	s := model.ArticleSummary{
		ID:        "a1",
		Title:     "T",
		Excerpt:   "E",
		CreatedAt: time.Date(2025, time.August, 5, 0, 0, 0, 0, time.UTC),
	}
	c := NewCard(s)
	if c.CreatedText != "Created: 5 Aug 2025" {
		t.Errorf("CreatedText = %q, want %q", c.CreatedText, "Created: 5 Aug 2025")
	}

	s.CreatedAt = time.Time{}
	if got := NewCard(s).CreatedText; got != "" {
		t.Errorf("CreatedText = %q, want empty when no date", got)
	}
}

func TestNewListMessages(t *testing.T) {
	empty := NewList(nil, MsgArticlesEmpty)
	if empty.Message != MsgArticlesEmpty {
		t.Errorf("empty list message = %q, want %q", empty.Message, MsgArticlesEmpty)
	}
	if len(empty.Cards) != 0 {
		t.Errorf("empty list has %d cards", len(empty.Cards))
	}

	failed := FailedList(MsgArticlesError)
	if failed.Message != MsgArticlesError {
		t.Errorf("failed list message = %q, want %q", failed.Message, MsgArticlesError)
	}
	if empty.Message == failed.Message {
		t.Fatal("empty-state and failure messages must differ")
	}

	populated := NewList([]model.ArticleSummary{{ID: "a1", Title: "T"}}, MsgArticlesEmpty)
	if populated.Message != "" {
		t.Errorf("populated list message = %q, want empty", populated.Message)
	}
	if len(populated.Cards) != 1 {
		t.Errorf("populated list has %d cards, want 1", len(populated.Cards))
	}
}

func TestGreeting(t *testing.T) {
	if got := Greeting("Ada"); got != "Hello, Ada" {
		t.Errorf("Greeting = %q", got)
	}
	if got := Greeting(""); got != "Hello!" {
		t.Errorf("Greeting = %q", got)
	}
}
