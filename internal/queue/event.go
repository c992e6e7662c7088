// Package queue defines message payloads exchanged over the message broker.
package queue

// ArticleFlaggedEvent is published when a reader flags an article.
// It carries enough for the moderation pipeline to triage without
// querying the primary database.
type ArticleFlaggedEvent struct {
	FlagID    uint64 `json:"flag_id"`
	ArticleID string `json:"article_id"`
	UserID    string `json:"user_id"`
	Reason    string `json:"reason"`
	FlaggedAt string `json:"flagged_at"`
}
