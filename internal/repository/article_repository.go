package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/clara-app/clara-server/internal/model"
)

// ArticleRepo provides read access to the 'articles' table plus the
// one mutation this service performs on it: the admin-wide important
// flag. All list queries order by created_at descending so the newest
// article always comes first.
type ArticleRepo struct{ DB *sql.DB }

func NewArticleRepo(db *sql.DB) *ArticleRepo { return &ArticleRepo{DB: db} }

const summaryCols = "id,title,excerpt,created_at"

// GetByID fetches a full article row for the detail page.
func (r *ArticleRepo) GetByID(ctx context.Context, id string) (model.Article, error) {
	var a model.Article
	err := r.DB.QueryRowContext(ctx,
		`SELECT id,title,excerpt,content,category,author,is_pinned_by_admin,created_at,updated_at
		 FROM articles WHERE id=? LIMIT 1`, id).
		Scan(&a.ID, &a.Title, &a.Excerpt, &a.Content, &a.Category, &a.Author,
			&a.IsPinnedByAdmin, &a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Article{}, ErrNotFound
	}
	return a, err
}

// ListAll returns every article, newest first.
func (r *ArticleRepo) ListAll(ctx context.Context) ([]model.ArticleSummary, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+summaryCols+" FROM articles ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSummaries(rows)
}

// ListAdminPinned returns articles carrying the admin-wide important
// flag, newest first, capped at limit.
func (r *ArticleRepo) ListAdminPinned(ctx context.Context, limit int) ([]model.ArticleSummary, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+summaryCols+" FROM articles WHERE is_pinned_by_admin=1 ORDER BY created_at DESC LIMIT ?",
		limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSummaries(rows)
}

// ListByIDs returns the articles whose IDs appear in ids, newest
// first. An empty id set short-circuits without touching the database.
func (r *ArticleRepo) ListByIDs(ctx context.Context, ids []string) ([]model.ArticleSummary, error) {
	if len(ids) == 0 {
		return []model.ArticleSummary{}, nil
	}
	placeholders := strings.Repeat("?,", len(ids))
	placeholders = placeholders[:len(placeholders)-1]
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+summaryCols+" FROM articles WHERE id IN ("+placeholders+") ORDER BY created_at DESC",
		args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSummaries(rows)
}

// SetImportant writes the admin-wide important flag and reads the row
// back, returning the authoritative stored value rather than the
// caller's requested one. ErrNotFound when the article does not exist.
func (r *ArticleRepo) SetImportant(ctx context.Context, id string, important bool) (bool, error) {
	// RowsAffected cannot distinguish a missing row from a no-change
	// update, so existence is confirmed by the read-back instead.
	_, err := r.DB.ExecContext(ctx,
		"UPDATE articles SET is_pinned_by_admin=? WHERE id=?", important, id)
	if err != nil {
		return false, err
	}
	var stored bool
	err = r.DB.QueryRowContext(ctx,
		"SELECT is_pinned_by_admin FROM articles WHERE id=? LIMIT 1", id).Scan(&stored)
	if errors.Is(err, sql.ErrNoRows) {
		return false, ErrNotFound
	}
	return stored, err
}

func scanSummaries(rows *sql.Rows) ([]model.ArticleSummary, error) {
	out := []model.ArticleSummary{}
	for rows.Next() {
		var s model.ArticleSummary
		if err := rows.Scan(&s.ID, &s.Title, &s.Excerpt, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
