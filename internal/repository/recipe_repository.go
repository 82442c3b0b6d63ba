package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"recipebox/internal/model"
)

// RecipeRepository defines persistence operations for recipes.
type RecipeRepository interface {
	Create(ctx context.Context, recipe *model.Recipe) error
	Update(ctx context.Context, recipe *model.Recipe) error
	Delete(ctx context.Context, recipe *model.Recipe) error
	ListByOwner(ctx context.Context, userID uint, tagIDs, ingredientIDs []uint) ([]model.Recipe, error)
	FindByOwnerAndID(ctx context.Context, userID, id uint) (*model.Recipe, error)
	ReplaceTags(ctx context.Context, recipe *model.Recipe, tags []model.Tag) error
	ReplaceIngredients(ctx context.Context, recipe *model.Recipe, ingredients []model.Ingredient) error
}

type recipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository builds a GORM-backed repository.
func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

// Create persists the recipe along with any attached tag/ingredient
// associations.
func (r *recipeRepository) Create(ctx context.Context, recipe *model.Recipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

// Update persists scalar columns only; relations are managed through
// ReplaceTags/ReplaceIngredients so partial and full updates can treat
// them differently.
func (r *recipeRepository) Update(ctx context.Context, recipe *model.Recipe) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(recipe).Error
}

// Delete removes the recipe and its join rows. Referenced tags and
// ingredients survive.
func (r *recipeRepository) Delete(ctx context.Context, recipe *model.Recipe) error {
	return r.db.WithContext(ctx).Select(clause.Associations).Delete(recipe).Error
}

// ListByOwner returns the owner's recipes newest-first, optionally
// narrowed to recipes carrying any of the given tag ids and any of the
// given ingredient ids. Both filters compose with AND.
func (r *recipeRepository) ListByOwner(ctx context.Context, userID uint, tagIDs, ingredientIDs []uint) ([]model.Recipe, error) {
	q := r.db.WithContext(ctx).Model(&model.Recipe{}).
		Scopes(OwnedBy(userID)).
		Preload("Tags").
		Preload("Ingredients")

	if len(tagIDs) > 0 {
		q = q.Joins("JOIN recipe_tags ON recipe_tags.recipe_id = recipes.id").
			Where("recipe_tags.tag_id IN ?", tagIDs)
	}
	if len(ingredientIDs) > 0 {
		q = q.Joins("JOIN recipe_ingredients ON recipe_ingredients.recipe_id = recipes.id").
			Where("recipe_ingredients.ingredient_id IN ?", ingredientIDs)
	}

	var recipes []model.Recipe
	if err := q.Distinct("recipes.*").Order("recipes.id DESC").Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) FindByOwnerAndID(ctx context.Context, userID, id uint) (*model.Recipe, error) {
	var recipe model.Recipe
	if err := r.db.WithContext(ctx).Scopes(OwnedBy(userID)).
		Preload("Tags").Preload("Ingredients").
		First(&recipe, id).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) ReplaceTags(ctx context.Context, recipe *model.Recipe, tags []model.Tag) error {
	if err := r.db.WithContext(ctx).Model(recipe).Association("Tags").Replace(&tags); err != nil {
		return err
	}
	recipe.Tags = tags
	return nil
}

func (r *recipeRepository) ReplaceIngredients(ctx context.Context, recipe *model.Recipe, ingredients []model.Ingredient) error {
	if err := r.db.WithContext(ctx).Model(recipe).Association("Ingredients").Replace(&ingredients); err != nil {
		return err
	}
	recipe.Ingredients = ingredients
	return nil
}
