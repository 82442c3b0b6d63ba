package service

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "recipebox/internal/errors"
	"recipebox/internal/model"
)

func newRecipeService(recipes *MockRecipeRepository, tags *MockTagRepository, ingredients *MockIngredientRepository, images *MockImageStore) RecipeService {
	return NewRecipeService(recipes, tags, ingredients, images)
}

func TestRecipeService_Create(t *testing.T) {
	t.Run("attaches exactly the referenced tags", func(t *testing.T) {
		mockRecipes := new(MockRecipeRepository)
		mockTags := new(MockTagRepository)
		mockIngredients := new(MockIngredientRepository)

		owned := []model.Tag{{ID: 2, Name: "Vegan", UserID: 1}, {ID: 3, Name: "Quick", UserID: 1}}
		mockTags.On("FindByOwnerAndIDs", mock.Anything, uint(1), []uint{2, 3}).Return(owned, nil)
		mockIngredients.On("FindByOwnerAndIDs", mock.Anything, uint(1), mock.Anything).Return(nil, nil)
		mockRecipes.On("Create", mock.Anything, mock.AnythingOfType("*model.Recipe")).Return(nil)

		svc := newRecipeService(mockRecipes, mockTags, mockIngredients, new(MockImageStore))
		recipe, err := svc.Create(context.Background(), 1, RecipeInput{
			Title:       "Lentil Curry",
			TimeMinutes: 30,
			Price:       decimal.NewFromFloat(5.50),
			TagIDs:      []uint{2, 3},
		})

		assert.NoError(t, err)
		assert.Equal(t, uint(1), recipe.UserID)
		assert.Equal(t, owned, recipe.Tags)
		assert.Empty(t, recipe.Ingredients)
		mockRecipes.AssertExpectations(t)
	})

	t.Run("another user's tag id is invalid", func(t *testing.T) {
		mockRecipes := new(MockRecipeRepository)
		mockTags := new(MockTagRepository)
		mockIngredients := new(MockIngredientRepository)

		// id 9 belongs to someone else, so the owner-scoped lookup drops it.
		mockTags.On("FindByOwnerAndIDs", mock.Anything, uint(1), []uint{2, 9}).
			Return([]model.Tag{{ID: 2, Name: "Vegan", UserID: 1}}, nil)

		svc := newRecipeService(mockRecipes, mockTags, mockIngredients, new(MockImageStore))
		recipe, err := svc.Create(context.Background(), 1, RecipeInput{
			Title:       "Lentil Curry",
			TimeMinutes: 30,
			Price:       decimal.NewFromFloat(5.50),
			TagIDs:      []uint{2, 9},
		})

		var ve *apperrors.ValidationError
		assert.ErrorAs(t, err, &ve)
		assert.Contains(t, ve.Fields, "tags")
		assert.Nil(t, recipe)
		mockRecipes.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("negative time and price rejected", func(t *testing.T) {
		svc := newRecipeService(new(MockRecipeRepository), new(MockTagRepository), new(MockIngredientRepository), new(MockImageStore))
		_, err := svc.Create(context.Background(), 1, RecipeInput{
			Title:       "Bad",
			TimeMinutes: -1,
			Price:       decimal.NewFromFloat(-0.01),
		})

		var ve *apperrors.ValidationError
		assert.ErrorAs(t, err, &ve)
		assert.Contains(t, ve.Fields, "time_minutes")
		assert.Contains(t, ve.Fields, "price")
	})
}

func TestRecipeService_Update(t *testing.T) {
	baseRecipe := func() *model.Recipe {
		return &model.Recipe{
			ID:          10,
			Title:       "Original",
			TimeMinutes: 20,
			Price:       decimal.NewFromInt(4),
			UserID:      1,
			Tags:        []model.Tag{{ID: 2, Name: "Vegan", UserID: 1}},
		}
	}

	t.Run("partial update preserves relations", func(t *testing.T) {
		mockRecipes := new(MockRecipeRepository)
		mockTags := new(MockTagRepository)
		mockIngredients := new(MockIngredientRepository)

		recipe := baseRecipe()
		mockRecipes.On("FindByOwnerAndID", mock.Anything, uint(1), uint(10)).Return(recipe, nil)
		mockRecipes.On("Update", mock.Anything, recipe).Return(nil)

		newTitle := "Renamed"
		svc := newRecipeService(mockRecipes, mockTags, mockIngredients, new(MockImageStore))
		updated, err := svc.Update(context.Background(), 1, 10, RecipeUpdateInput{Title: &newTitle}, true)

		assert.NoError(t, err)
		assert.Equal(t, "Renamed", updated.Title)
		assert.Len(t, updated.Tags, 1)
		mockRecipes.AssertNotCalled(t, "ReplaceTags", mock.Anything, mock.Anything, mock.Anything)
		mockRecipes.AssertNotCalled(t, "ReplaceIngredients", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("full update clears omitted relations", func(t *testing.T) {
		mockRecipes := new(MockRecipeRepository)
		mockTags := new(MockTagRepository)
		mockIngredients := new(MockIngredientRepository)

		recipe := baseRecipe()
		mockRecipes.On("FindByOwnerAndID", mock.Anything, uint(1), uint(10)).Return(recipe, nil)
		mockRecipes.On("Update", mock.Anything, recipe).Return(nil)
		mockTags.On("FindByOwnerAndIDs", mock.Anything, uint(1), mock.Anything).Return(nil, nil)
		mockIngredients.On("FindByOwnerAndIDs", mock.Anything, uint(1), mock.Anything).Return(nil, nil)
		mockRecipes.On("ReplaceTags", mock.Anything, recipe, []model.Tag{}).Return(nil)
		mockRecipes.On("ReplaceIngredients", mock.Anything, recipe, []model.Ingredient{}).Return(nil)

		newTitle := "Replaced"
		newTime := 25
		newPrice := decimal.NewFromInt(6)
		svc := newRecipeService(mockRecipes, mockTags, mockIngredients, new(MockImageStore))
		updated, err := svc.Update(context.Background(), 1, 10, RecipeUpdateInput{
			Title:       &newTitle,
			TimeMinutes: &newTime,
			Price:       &newPrice,
		}, false)

		assert.NoError(t, err)
		assert.Empty(t, updated.Tags)
		assert.Empty(t, updated.Ingredients)
		mockRecipes.AssertExpectations(t)
	})

	t.Run("unowned recipe is not found", func(t *testing.T) {
		mockRecipes := new(MockRecipeRepository)
		mockRecipes.On("FindByOwnerAndID", mock.Anything, uint(2), uint(10)).Return(nil, gorm.ErrRecordNotFound)

		newTitle := "Hijack"
		svc := newRecipeService(mockRecipes, new(MockTagRepository), new(MockIngredientRepository), new(MockImageStore))
		_, err := svc.Update(context.Background(), 2, 10, RecipeUpdateInput{Title: &newTitle}, true)

		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestRecipeService_List(t *testing.T) {
	mockRecipes := new(MockRecipeRepository)
	mockRecipes.On("ListByOwner", mock.Anything, uint(1), []uint{2, 3}, []uint(nil)).
		Return([]model.Recipe{{ID: 10, Title: "Curry", UserID: 1}}, nil)

	svc := newRecipeService(mockRecipes, new(MockTagRepository), new(MockIngredientRepository), new(MockImageStore))
	recipes, err := svc.List(context.Background(), 1, RecipeFilter{TagIDs: []uint{2, 3}})

	assert.NoError(t, err)
	assert.Len(t, recipes, 1)
	mockRecipes.AssertExpectations(t)
}

func TestRecipeService_UploadImage(t *testing.T) {
	pngBytes := func() []byte {
		var buf bytes.Buffer
		_ = png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 1, 1)))
		return buf.Bytes()
	}

	t.Run("valid image replaces the previous one", func(t *testing.T) {
		mockRecipes := new(MockRecipeRepository)
		mockImages := new(MockImageStore)

		recipe := &model.Recipe{ID: 10, Title: "Curry", UserID: 1, Image: "uploads/recipes/old.png"}
		mockRecipes.On("FindByOwnerAndID", mock.Anything, uint(1), uint(10)).Return(recipe, nil)
		mockImages.On("Save", mock.Anything, "png").Return("uploads/recipes/new.png", nil)
		mockRecipes.On("Update", mock.Anything, recipe).Return(nil)
		mockImages.On("Remove", "uploads/recipes/old.png").Return(nil)

		svc := newRecipeService(mockRecipes, new(MockTagRepository), new(MockIngredientRepository), mockImages)
		updated, err := svc.UploadImage(context.Background(), 1, 10, pngBytes())

		assert.NoError(t, err)
		assert.Equal(t, "uploads/recipes/new.png", updated.Image)
		mockImages.AssertExpectations(t)
		mockRecipes.AssertExpectations(t)
	})

	t.Run("undecodable payload rejected and image kept", func(t *testing.T) {
		mockRecipes := new(MockRecipeRepository)
		mockImages := new(MockImageStore)

		recipe := &model.Recipe{ID: 10, Title: "Curry", UserID: 1, Image: "uploads/recipes/old.png"}
		mockRecipes.On("FindByOwnerAndID", mock.Anything, uint(1), uint(10)).Return(recipe, nil)

		svc := newRecipeService(mockRecipes, new(MockTagRepository), new(MockIngredientRepository), mockImages)
		updated, err := svc.UploadImage(context.Background(), 1, 10, []byte("definitely not an image"))

		var ve *apperrors.ValidationError
		assert.ErrorAs(t, err, &ve)
		assert.Contains(t, ve.Fields, "image")
		assert.Nil(t, updated)
		assert.Equal(t, "uploads/recipes/old.png", recipe.Image)
		mockRecipes.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		mockImages.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestRecipeService_Delete(t *testing.T) {
	mockRecipes := new(MockRecipeRepository)
	mockImages := new(MockImageStore)

	recipe := &model.Recipe{ID: 10, Title: "Curry", UserID: 1, Image: "uploads/recipes/old.png"}
	mockRecipes.On("FindByOwnerAndID", mock.Anything, uint(1), uint(10)).Return(recipe, nil)
	mockRecipes.On("Delete", mock.Anything, recipe).Return(nil)
	mockImages.On("Remove", "uploads/recipes/old.png").Return(nil)

	svc := newRecipeService(mockRecipes, new(MockTagRepository), new(MockIngredientRepository), mockImages)
	assert.NoError(t, svc.Delete(context.Background(), 1, 10))
	mockRecipes.AssertExpectations(t)
	mockImages.AssertExpectations(t)
}
