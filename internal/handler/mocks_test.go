package handler

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/clara-app/clara-server/internal/model"
	"github.com/clara-app/clara-server/internal/repository"
)

// testify mocks for the store interfaces. Tests only register
// expectations for the calls a flow is allowed to make, so an
// unexpected repository hit fails the test.

type MockArticleStore struct{ mock.Mock }

func (m *MockArticleStore) GetByID(ctx context.Context, id string) (model.Article, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Article), args.Error(1)
}
func (m *MockArticleStore) ListAll(ctx context.Context) ([]model.ArticleSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ArticleSummary), args.Error(1)
}
func (m *MockArticleStore) ListAdminPinned(ctx context.Context, limit int) ([]model.ArticleSummary, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ArticleSummary), args.Error(1)
}
func (m *MockArticleStore) ListByIDs(ctx context.Context, ids []string) ([]model.ArticleSummary, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ArticleSummary), args.Error(1)
}
func (m *MockArticleStore) SetImportant(ctx context.Context, id string, important bool) (bool, error) {
	args := m.Called(ctx, id, important)
	return args.Bool(0), args.Error(1)
}

type MockPinStore struct{ mock.Mock }

func (m *MockPinStore) Exists(ctx context.Context, userID, articleID string) (bool, error) {
	args := m.Called(ctx, userID, articleID)
	return args.Bool(0), args.Error(1)
}
func (m *MockPinStore) Create(ctx context.Context, userID, articleID string) error {
	return m.Called(ctx, userID, articleID).Error(0)
}
func (m *MockPinStore) Delete(ctx context.Context, userID, articleID string) error {
	return m.Called(ctx, userID, articleID).Error(0)
}
func (m *MockPinStore) ListArticleIDs(ctx context.Context, userID string) ([]string, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type MockFlagStore struct{ mock.Mock }

func (m *MockFlagStore) Create(ctx context.Context, articleID, userID, reason string) (model.ArticleFlag, error) {
	args := m.Called(ctx, articleID, userID, reason)
	return args.Get(0).(model.ArticleFlag), args.Error(1)
}

type MockProfileStore struct{ mock.Mock }

func (m *MockProfileStore) GetByID(ctx context.Context, id string) (model.Profile, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Profile), args.Error(1)
}
func (m *MockProfileStore) GetRole(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

type MockUserStore struct{ mock.Mock }

func (m *MockUserStore) Create(ctx context.Context, email, password, name, team string, cost int) (string, error) {
	args := m.Called(ctx, email, password, name, team, cost)
	return args.String(0), args.Error(1)
}
func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (repository.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(repository.User), args.Error(1)
}
func (m *MockUserStore) GetByID(ctx context.Context, id string) (repository.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(repository.User), args.Error(1)
}

type MockTokenStore struct{ mock.Mock }

func (m *MockTokenStore) StoreRefresh(ctx context.Context, userID, tokenHash string, exp time.Time) error {
	return m.Called(ctx, userID, tokenHash, exp).Error(0)
}
func (m *MockTokenStore) ValidateRefresh(ctx context.Context, tokenHash string) (string, error) {
	args := m.Called(ctx, tokenHash)
	return args.String(0), args.Error(1)
}
func (m *MockTokenStore) RevokeByHash(ctx context.Context, tokenHash string) error {
	return m.Called(ctx, tokenHash).Error(0)
}
func (m *MockTokenStore) RevokeAllForUser(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}
