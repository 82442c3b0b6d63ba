package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"recipebox/internal/model"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

// MockTagRepository is a mock implementation of repository.TagRepository.
type MockTagRepository struct {
	mock.Mock
}

func (m *MockTagRepository) Create(ctx context.Context, tag *model.Tag) error {
	args := m.Called(ctx, tag)
	return args.Error(0)
}

func (m *MockTagRepository) Update(ctx context.Context, tag *model.Tag) error {
	args := m.Called(ctx, tag)
	return args.Error(0)
}

func (m *MockTagRepository) Delete(ctx context.Context, tag *model.Tag) error {
	args := m.Called(ctx, tag)
	return args.Error(0)
}

func (m *MockTagRepository) ListByOwner(ctx context.Context, userID uint) ([]model.Tag, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Tag), args.Error(1)
}

func (m *MockTagRepository) FindByOwnerAndID(ctx context.Context, userID, id uint) (*model.Tag, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Tag), args.Error(1)
}

func (m *MockTagRepository) FindByOwnerAndIDs(ctx context.Context, userID uint, ids []uint) ([]model.Tag, error) {
	args := m.Called(ctx, userID, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Tag), args.Error(1)
}

// MockIngredientRepository is a mock implementation of repository.IngredientRepository.
type MockIngredientRepository struct {
	mock.Mock
}

func (m *MockIngredientRepository) Create(ctx context.Context, ingredient *model.Ingredient) error {
	args := m.Called(ctx, ingredient)
	return args.Error(0)
}

func (m *MockIngredientRepository) Update(ctx context.Context, ingredient *model.Ingredient) error {
	args := m.Called(ctx, ingredient)
	return args.Error(0)
}

func (m *MockIngredientRepository) Delete(ctx context.Context, ingredient *model.Ingredient) error {
	args := m.Called(ctx, ingredient)
	return args.Error(0)
}

func (m *MockIngredientRepository) ListByOwner(ctx context.Context, userID uint) ([]model.Ingredient, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Ingredient), args.Error(1)
}

func (m *MockIngredientRepository) FindByOwnerAndID(ctx context.Context, userID, id uint) (*model.Ingredient, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Ingredient), args.Error(1)
}

func (m *MockIngredientRepository) FindByOwnerAndIDs(ctx context.Context, userID uint, ids []uint) ([]model.Ingredient, error) {
	args := m.Called(ctx, userID, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Ingredient), args.Error(1)
}

// MockRecipeRepository is a mock implementation of repository.RecipeRepository.
type MockRecipeRepository struct {
	mock.Mock
}

func (m *MockRecipeRepository) Create(ctx context.Context, recipe *model.Recipe) error {
	args := m.Called(ctx, recipe)
	return args.Error(0)
}

func (m *MockRecipeRepository) Update(ctx context.Context, recipe *model.Recipe) error {
	args := m.Called(ctx, recipe)
	return args.Error(0)
}

func (m *MockRecipeRepository) Delete(ctx context.Context, recipe *model.Recipe) error {
	args := m.Called(ctx, recipe)
	return args.Error(0)
}

func (m *MockRecipeRepository) ListByOwner(ctx context.Context, userID uint, tagIDs, ingredientIDs []uint) ([]model.Recipe, error) {
	args := m.Called(ctx, userID, tagIDs, ingredientIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) FindByOwnerAndID(ctx context.Context, userID, id uint) (*model.Recipe, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) ReplaceTags(ctx context.Context, recipe *model.Recipe, tags []model.Tag) error {
	args := m.Called(ctx, recipe, tags)
	if args.Error(0) == nil {
		recipe.Tags = tags
	}
	return args.Error(0)
}

func (m *MockRecipeRepository) ReplaceIngredients(ctx context.Context, recipe *model.Recipe, ingredients []model.Ingredient) error {
	args := m.Called(ctx, recipe, ingredients)
	if args.Error(0) == nil {
		recipe.Ingredients = ingredients
	}
	return args.Error(0)
}

// MockImageStore is a mock implementation of storage.ImageStore.
type MockImageStore struct {
	mock.Mock
}

func (m *MockImageStore) Save(data []byte, ext string) (string, error) {
	args := m.Called(data, ext)
	return args.String(0), args.Error(1)
}

func (m *MockImageStore) Remove(path string) error {
	args := m.Called(path)
	return args.Error(0)
}

// MockTokenService is a mock implementation of auth.TokenService.
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) IssueOrGet(ctx context.Context, userID uint) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

func (m *MockTokenService) Resolve(ctx context.Context, key string) (*model.User, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockTokenService) Rotate(ctx context.Context, userID uint) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}
