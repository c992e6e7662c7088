package repository

import (
	"context"
	"database/sql"
	"strings"
)

// PinRepo manages the 'user_pins' join table. A row's existence means
// "this user pinned this article"; there is no update operation.
type PinRepo struct{ DB *sql.DB }

func NewPinRepo(db *sql.DB) *PinRepo { return &PinRepo{DB: db} }

// Exists reports whether the user has pinned the article.
func (r *PinRepo) Exists(ctx context.Context, userID, articleID string) (bool, error) {
	var one int
	err := r.DB.QueryRowContext(ctx,
		"SELECT 1 FROM user_pins WHERE user_id=? AND article_id=? LIMIT 1",
		userID, articleID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Create inserts the pin row. The table carries a UNIQUE(user_id,
// article_id) constraint; a duplicate insert from a double-click or a
// second tab is treated as already-pinned rather than an error.
func (r *PinRepo) Create(ctx context.Context, userID, articleID string) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO user_pins (user_id, article_id) VALUES (?,?)",
		userID, articleID)
	if err != nil && strings.Contains(strings.ToLower(err.Error()), "1062") {
		return nil
	}
	return err
}

// Delete removes the pin row. Deleting a pin that does not exist is a
// no-op, not an error.
func (r *PinRepo) Delete(ctx context.Context, userID, articleID string) error {
	_, err := r.DB.ExecContext(ctx,
		"DELETE FROM user_pins WHERE user_id=? AND article_id=?",
		userID, articleID)
	return err
}

// ListArticleIDs returns the IDs of every article the user has pinned.
func (r *PinRepo) ListArticleIDs(ctx context.Context, userID string) ([]string, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT article_id FROM user_pins WHERE user_id=?", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
