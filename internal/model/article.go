package model

import "time"

// Article represents a published piece of content.  The Content field
// holds raw markup and is delivered to clients verbatim; sanitisation
// happens at authoring time, not here.
//
// Fields:
//  ID              – primary key (UUID string).
//  Title           – headline shown on cards and the detail page.
//  Excerpt         – short teaser text, may be empty.
//  Content         – full article body as raw markup.
//  Category        – free-form category label, may be empty.
//  Author          – display name of the author, may be empty.
//  IsPinnedByAdmin – true when an admin marked the article as
//                    important for every reader.  A single global
//                    flag, not per-user.
//  CreatedAt       – creation timestamp.
//  UpdatedAt       – last update timestamp; equals CreatedAt for an
//                    article that was never edited.
type Article struct {
	ID              string    `json:"id"`                 // articles.id
	Title           string    `json:"title"`              // articles.title
	Excerpt         string    `json:"excerpt"`            // articles.excerpt
	Content         string    `json:"content"`            // articles.content
	Category        string    `json:"category"`           // articles.category
	Author          string    `json:"author"`             // articles.author
	IsPinnedByAdmin bool      `json:"is_pinned_by_admin"` // articles.is_pinned_by_admin
	CreatedAt       time.Time `json:"created_at"`         // articles.created_at
	UpdatedAt       time.Time `json:"updated_at"`         // articles.updated_at
}

// ArticleSummary carries the subset of article columns needed to
// render a card on a list page.  Detail-only columns (content,
// category, author) are deliberately not fetched for lists.
type ArticleSummary struct {
	ID        string    `json:"id"`         // articles.id
	Title     string    `json:"title"`      // articles.title
	Excerpt   string    `json:"excerpt"`    // articles.excerpt
	CreatedAt time.Time `json:"created_at"` // articles.created_at
}
