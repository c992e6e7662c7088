package handler

import (
	"context"
	"time"

	"github.com/clara-app/clara-server/internal/model"
	"github.com/clara-app/clara-server/internal/repository"
)

// Store interfaces consumed by the handlers. The repository package
// provides the MySQL implementations; tests substitute mocks.

type UserStore interface {
	Create(ctx context.Context, email, password, name, team string, cost int) (string, error)
	GetByEmail(ctx context.Context, email string) (repository.User, error)
	GetByID(ctx context.Context, id string) (repository.User, error)
}

type TokenStore interface {
	StoreRefresh(ctx context.Context, userID, tokenHash string, exp time.Time) error
	ValidateRefresh(ctx context.Context, tokenHash string) (string, error)
	RevokeByHash(ctx context.Context, tokenHash string) error
	RevokeAllForUser(ctx context.Context, userID string) error
}

type ProfileStore interface {
	GetByID(ctx context.Context, id string) (model.Profile, error)
	GetRole(ctx context.Context, id string) (string, error)
}

type ArticleStore interface {
	GetByID(ctx context.Context, id string) (model.Article, error)
	ListAll(ctx context.Context) ([]model.ArticleSummary, error)
	ListAdminPinned(ctx context.Context, limit int) ([]model.ArticleSummary, error)
	ListByIDs(ctx context.Context, ids []string) ([]model.ArticleSummary, error)
	SetImportant(ctx context.Context, id string, important bool) (bool, error)
}

type PinStore interface {
	Exists(ctx context.Context, userID, articleID string) (bool, error)
	Create(ctx context.Context, userID, articleID string) error
	Delete(ctx context.Context, userID, articleID string) error
	ListArticleIDs(ctx context.Context, userID string) ([]string, error)
}

type FlagStore interface {
	Create(ctx context.Context, articleID, userID, reason string) (model.ArticleFlag, error)
}
