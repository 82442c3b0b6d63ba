package repository

import (
	"context"

	"gorm.io/gorm"

	"recipebox/internal/model"
)

// IngredientRepository defines persistence operations for ingredients.
type IngredientRepository interface {
	Create(ctx context.Context, ingredient *model.Ingredient) error
	Update(ctx context.Context, ingredient *model.Ingredient) error
	Delete(ctx context.Context, ingredient *model.Ingredient) error
	ListByOwner(ctx context.Context, userID uint) ([]model.Ingredient, error)
	FindByOwnerAndID(ctx context.Context, userID, id uint) (*model.Ingredient, error)
	FindByOwnerAndIDs(ctx context.Context, userID uint, ids []uint) ([]model.Ingredient, error)
}

type ingredientRepository struct {
	db *gorm.DB
}

// NewIngredientRepository builds a GORM-backed repository.
func NewIngredientRepository(db *gorm.DB) IngredientRepository {
	return &ingredientRepository{db: db}
}

func (r *ingredientRepository) Create(ctx context.Context, ingredient *model.Ingredient) error {
	return r.db.WithContext(ctx).Create(ingredient).Error
}

func (r *ingredientRepository) Update(ctx context.Context, ingredient *model.Ingredient) error {
	return r.db.WithContext(ctx).Save(ingredient).Error
}

// Delete removes the ingredient and its recipe join rows.
func (r *ingredientRepository) Delete(ctx context.Context, ingredient *model.Ingredient) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM recipe_ingredients WHERE ingredient_id = ?", ingredient.ID).Error; err != nil {
			return err
		}
		return tx.Delete(ingredient).Error
	})
}

func (r *ingredientRepository) ListByOwner(ctx context.Context, userID uint) ([]model.Ingredient, error) {
	var ingredients []model.Ingredient
	if err := r.db.WithContext(ctx).Scopes(OwnedBy(userID)).Order("name DESC").Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

func (r *ingredientRepository) FindByOwnerAndID(ctx context.Context, userID, id uint) (*model.Ingredient, error) {
	var ingredient model.Ingredient
	if err := r.db.WithContext(ctx).Scopes(OwnedBy(userID)).First(&ingredient, id).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

func (r *ingredientRepository) FindByOwnerAndIDs(ctx context.Context, userID uint, ids []uint) ([]model.Ingredient, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var ingredients []model.Ingredient
	if err := r.db.WithContext(ctx).Scopes(OwnedBy(userID)).Where("id IN ?", ids).Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}
