package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/bytebites/backend/internal/audit"
	"github.com/bytebites/backend/internal/models"
)

// MockRecipeStore is a mock implementation of service.IRecipeStore
type MockRecipeStore struct {
	mock.Mock
}

func (m *MockRecipeStore) ListAll(ctx context.Context) ([]*models.Recipe, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Recipe), args.Error(1)
}

func (m *MockRecipeStore) GetByID(ctx context.Context, id uuid.UUID) (*models.Recipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Recipe), args.Error(1)
}

func (m *MockRecipeStore) Add(ctx context.Context, actor audit.Actor, recipe *models.Recipe) (*models.Recipe, error) {
	args := m.Called(ctx, actor, recipe)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Recipe), args.Error(1)
}

func (m *MockRecipeStore) Update(ctx context.Context, actor audit.Actor, recipe *models.Recipe) error {
	args := m.Called(ctx, actor, recipe)
	return args.Error(0)
}

func (m *MockRecipeStore) Delete(ctx context.Context, actor audit.Actor, id uuid.UUID) error {
	args := m.Called(ctx, actor, id)
	return args.Error(0)
}

func (m *MockRecipeStore) Filter(ctx context.Context, filter models.RecipeFilter) ([]*models.Recipe, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Recipe), args.Error(1)
}

func (m *MockRecipeStore) GetByOwner(ctx context.Context, userID string) ([]*models.Recipe, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Recipe), args.Error(1)
}
