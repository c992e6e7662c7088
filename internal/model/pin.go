package model

import "time"

// UserPin marks an article as pinned by one user.  The row's
// existence is the whole signal; there is nothing to update.  The
// (user_id, article_id) pair is unique at the schema level so a
// double-click or second tab cannot accumulate duplicates.
//
// Fields:
//  UserID    – user who pinned the article.
//  ArticleID – article that was pinned.
//  CreatedAt – when the pin was created.
type UserPin struct {
	UserID    string    `json:"user_id"`    // user_pins.user_id
	ArticleID string    `json:"article_id"` // user_pins.article_id
	CreatedAt time.Time `json:"created_at"` // user_pins.created_at
}
