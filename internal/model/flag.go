package model

import "time"

// ArticleFlag records one reader reporting one article.  Flags are
// append-only from this service's point of view: they are written on
// submission and consumed by the moderation pipeline, never read back
// by the app itself.
//
// Fields:
//  ID        – primary key identifier.
//  ArticleID – flagged article.
//  UserID    – user who raised the flag.
//  Reason    – free-text reason entered by the user, never blank.
//  CreatedAt – submission timestamp.
type ArticleFlag struct {
	ID        uint64    `json:"id"`         // article_flags.id
	ArticleID string    `json:"article_id"` // article_flags.article_id
	UserID    string    `json:"user_id"`    // article_flags.user_id
	Reason    string    `json:"reason"`     // article_flags.reason
	CreatedAt time.Time `json:"created_at"` // article_flags.created_at
}
