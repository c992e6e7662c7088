package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/clara-app/clara-server/internal/model"
)

// ProfileRepo reads the 'profiles' table. Profiles share their primary
// key with the users table and are never written by request handlers;
// the only writer is account creation in UserRepo.
type ProfileRepo struct{ DB *sql.DB }

func NewProfileRepo(db *sql.DB) *ProfileRepo { return &ProfileRepo{DB: db} }

// GetByID fetches one profile. Returns ErrNotFound when no row exists
// so callers can fall back to a roleless view without string matching.
func (r *ProfileRepo) GetByID(ctx context.Context, id string) (model.Profile, error) {
	var p model.Profile
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,name,role,team FROM profiles WHERE id=? LIMIT 1",
		id).Scan(&p.ID, &p.Name, &p.Role, &p.Team)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Profile{}, ErrNotFound
	}
	return p, err
}

// GetRole fetches only the role column. The article page needs the
// admin bit and nothing else, mirroring the narrower select.
func (r *ProfileRepo) GetRole(ctx context.Context, id string) (string, error) {
	var role string
	err := r.DB.QueryRowContext(ctx,
		"SELECT role FROM profiles WHERE id=? LIMIT 1", id).Scan(&role)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	return role, err
}
