package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	apperrors "recipebox/internal/errors"
	"recipebox/internal/model"
	"recipebox/internal/repository"
)

// IngredientService mirrors TagService for ingredients.
type IngredientService interface {
	List(ctx context.Context, ownerID uint) ([]model.Ingredient, error)
	Create(ctx context.Context, ownerID uint, name string) (*model.Ingredient, error)
	Get(ctx context.Context, ownerID, id uint) (*model.Ingredient, error)
	Update(ctx context.Context, ownerID, id uint, name string) (*model.Ingredient, error)
	Delete(ctx context.Context, ownerID, id uint) error
}

type ingredientService struct {
	ingredients repository.IngredientRepository
}

// NewIngredientService creates a new ingredient service.
func NewIngredientService(ingredients repository.IngredientRepository) IngredientService {
	return &ingredientService{ingredients: ingredients}
}

func (s *ingredientService) List(ctx context.Context, ownerID uint) ([]model.Ingredient, error) {
	ingredients, err := s.ingredients.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list ingredients: %w", err)
	}
	return ingredients, nil
}

func (s *ingredientService) Create(ctx context.Context, ownerID uint, name string) (*model.Ingredient, error) {
	if name == "" {
		return nil, apperrors.NewValidationError("name", "this field is required")
	}
	ingredient := &model.Ingredient{Name: name, UserID: ownerID}
	if err := s.ingredients.Create(ctx, ingredient); err != nil {
		return nil, fmt.Errorf("create ingredient: %w", err)
	}
	return ingredient, nil
}

func (s *ingredientService) Get(ctx context.Context, ownerID, id uint) (*model.Ingredient, error) {
	ingredient, err := s.ingredients.FindByOwnerAndID(ctx, ownerID, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("find ingredient: %w", err)
	}
	return ingredient, nil
}

func (s *ingredientService) Update(ctx context.Context, ownerID, id uint, name string) (*model.Ingredient, error) {
	if name == "" {
		return nil, apperrors.NewValidationError("name", "this field is required")
	}
	ingredient, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	ingredient.Name = name
	if err := s.ingredients.Update(ctx, ingredient); err != nil {
		return nil, fmt.Errorf("update ingredient: %w", err)
	}
	return ingredient, nil
}

func (s *ingredientService) Delete(ctx context.Context, ownerID, id uint) error {
	ingredient, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return err
	}
	if err := s.ingredients.Delete(ctx, ingredient); err != nil {
		return fmt.Errorf("delete ingredient: %w", err)
	}
	return nil
}
