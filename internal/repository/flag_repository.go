package repository

import (
	"context"
	"database/sql"

	"github.com/clara-app/clara-server/internal/model"
)

// FlagRepo appends rows to the 'article_flags' table. The app never
// reads flags back; moderation consumes them out of band.
type FlagRepo struct{ DB *sql.DB }

func NewFlagRepo(db *sql.DB) *FlagRepo { return &FlagRepo{DB: db} }

// Create inserts a flag row and returns it with the generated ID and
// timestamp populated.
func (r *FlagRepo) Create(ctx context.Context, articleID, userID, reason string) (model.ArticleFlag, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO article_flags (article_id, user_id, reason) VALUES (?,?,?)",
		articleID, userID, reason)
	if err != nil {
		return model.ArticleFlag{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.ArticleFlag{}, err
	}
	f := model.ArticleFlag{ID: uint64(id), ArticleID: articleID, UserID: userID, Reason: reason}
	err = r.DB.QueryRowContext(ctx,
		"SELECT created_at FROM article_flags WHERE id=? LIMIT 1", f.ID).Scan(&f.CreatedAt)
	return f, err
}
