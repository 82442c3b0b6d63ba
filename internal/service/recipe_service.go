package service

import (
	"bytes"
	"context"
	"fmt"
	"image"

	// register stdlib decoders for upload validation
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "recipebox/internal/errors"
	"recipebox/internal/model"
	"recipebox/internal/repository"
	"recipebox/internal/storage"
)

// RecipeInput carries the full recipe representation for create and
// full-update operations.
type RecipeInput struct {
	Title         string
	TimeMinutes   int
	Price         decimal.Decimal
	Link          string
	TagIDs        []uint
	IngredientIDs []uint
}

// RecipeUpdateInput carries a partial representation; nil fields are
// preserved.
type RecipeUpdateInput struct {
	Title         *string
	TimeMinutes   *int
	Price         *decimal.Decimal
	Link          *string
	TagIDs        *[]uint
	IngredientIDs *[]uint
}

// RecipeFilter narrows a listing to recipes carrying any of the given
// tag ids and any of the given ingredient ids.
type RecipeFilter struct {
	TagIDs        []uint
	IngredientIDs []uint
}

// RecipeService handles recipe CRUD, filtering and image upload for a
// single owner.
type RecipeService interface {
	List(ctx context.Context, ownerID uint, filter RecipeFilter) ([]model.Recipe, error)
	Create(ctx context.Context, ownerID uint, input RecipeInput) (*model.Recipe, error)
	Get(ctx context.Context, ownerID, id uint) (*model.Recipe, error)
	Update(ctx context.Context, ownerID, id uint, input RecipeUpdateInput, partial bool) (*model.Recipe, error)
	Delete(ctx context.Context, ownerID, id uint) error
	UploadImage(ctx context.Context, ownerID, id uint, data []byte) (*model.Recipe, error)
}

type recipeService struct {
	recipes     repository.RecipeRepository
	tags        repository.TagRepository
	ingredients repository.IngredientRepository
	images      storage.ImageStore
}

// NewRecipeService creates a new recipe service.
func NewRecipeService(
	recipes repository.RecipeRepository,
	tags repository.TagRepository,
	ingredients repository.IngredientRepository,
	images storage.ImageStore,
) RecipeService {
	return &recipeService{
		recipes:     recipes,
		tags:        tags,
		ingredients: ingredients,
		images:      images,
	}
}

// List returns the owner's recipes newest-first. Tag and ingredient
// filters are each any-of and compose with AND.
func (s *recipeService) List(ctx context.Context, ownerID uint, filter RecipeFilter) ([]model.Recipe, error) {
	recipes, err := s.recipes.ListByOwner(ctx, ownerID, filter.TagIDs, filter.IngredientIDs)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	return recipes, nil
}

// Create validates the input, resolves referenced tags and ingredients
// within the caller's ownership, and persists the recipe with the
// caller as owner regardless of the payload.
func (s *recipeService) Create(ctx context.Context, ownerID uint, input RecipeInput) (*model.Recipe, error) {
	if err := validateRecipeFields(input.Title, input.TimeMinutes, input.Price); err != nil {
		return nil, err
	}

	tags, err := s.resolveTags(ctx, ownerID, input.TagIDs)
	if err != nil {
		return nil, err
	}
	ingredients, err := s.resolveIngredients(ctx, ownerID, input.IngredientIDs)
	if err != nil {
		return nil, err
	}

	recipe := &model.Recipe{
		Title:       input.Title,
		TimeMinutes: input.TimeMinutes,
		Price:       input.Price,
		Link:        input.Link,
		UserID:      ownerID,
		Tags:        tags,
		Ingredients: ingredients,
	}
	if err := s.recipes.Create(ctx, recipe); err != nil {
		return nil, fmt.Errorf("create recipe: %w", err)
	}
	return recipe, nil
}

// Get returns the recipe with relations preloaded, or ErrNotFound when
// it does not exist or belongs to another user.
func (s *recipeService) Get(ctx context.Context, ownerID, id uint) (*model.Recipe, error) {
	recipe, err := s.recipes.FindByOwnerAndID(ctx, ownerID, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("find recipe: %w", err)
	}
	return recipe, nil
}

// Update applies the input. Partial updates preserve omitted fields and
// relations; full updates reset relations omitted from the payload to
// empty. That asymmetry is intentional.
func (s *recipeService) Update(ctx context.Context, ownerID, id uint, input RecipeUpdateInput, partial bool) (*model.Recipe, error) {
	recipe, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		recipe.Title = *input.Title
	}
	if input.TimeMinutes != nil {
		recipe.TimeMinutes = *input.TimeMinutes
	}
	if input.Price != nil {
		recipe.Price = *input.Price
	}
	if input.Link != nil {
		recipe.Link = *input.Link
	}
	if err := validateRecipeFields(recipe.Title, recipe.TimeMinutes, recipe.Price); err != nil {
		return nil, err
	}

	if input.TagIDs != nil || !partial {
		var ids []uint
		if input.TagIDs != nil {
			ids = *input.TagIDs
		}
		tags, err := s.resolveTags(ctx, ownerID, ids)
		if err != nil {
			return nil, err
		}
		if err := s.recipes.ReplaceTags(ctx, recipe, tags); err != nil {
			return nil, fmt.Errorf("replace tags: %w", err)
		}
	}
	if input.IngredientIDs != nil || !partial {
		var ids []uint
		if input.IngredientIDs != nil {
			ids = *input.IngredientIDs
		}
		ingredients, err := s.resolveIngredients(ctx, ownerID, ids)
		if err != nil {
			return nil, err
		}
		if err := s.recipes.ReplaceIngredients(ctx, recipe, ingredients); err != nil {
			return nil, fmt.Errorf("replace ingredients: %w", err)
		}
	}

	if err := s.recipes.Update(ctx, recipe); err != nil {
		return nil, fmt.Errorf("update recipe: %w", err)
	}
	return recipe, nil
}

// Delete removes the recipe; referenced tags and ingredients survive.
func (s *recipeService) Delete(ctx context.Context, ownerID, id uint) error {
	recipe, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return err
	}
	if err := s.recipes.Delete(ctx, recipe); err != nil {
		return fmt.Errorf("delete recipe: %w", err)
	}
	if err := s.images.Remove(recipe.Image); err != nil {
		return fmt.Errorf("remove image: %w", err)
	}
	return nil
}

// UploadImage validates that the payload decodes as an image, stores
// it, and replaces any previous image. A rejected payload leaves the
// existing image untouched.
func (s *recipeService) UploadImage(ctx context.Context, ownerID, id uint, data []byte) (*model.Recipe, error) {
	recipe, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	_, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, apperrors.NewValidationError("image", "upload a valid image")
	}

	path, err := s.images.Save(data, format)
	if err != nil {
		return nil, fmt.Errorf("store image: %w", err)
	}

	old := recipe.Image
	recipe.Image = path
	if err := s.recipes.Update(ctx, recipe); err != nil {
		return nil, fmt.Errorf("update recipe: %w", err)
	}
	if old != "" && old != path {
		_ = s.images.Remove(old)
	}
	return recipe, nil
}

func (s *recipeService) resolveTags(ctx context.Context, ownerID uint, ids []uint) ([]model.Tag, error) {
	tags, err := s.tags.FindByOwnerAndIDs(ctx, ownerID, ids)
	if err != nil {
		return nil, fmt.Errorf("resolve tags: %w", err)
	}
	if len(tags) != len(dedupe(ids)) {
		return nil, apperrors.NewValidationError("tags", "invalid tag ids")
	}
	if tags == nil {
		tags = []model.Tag{}
	}
	return tags, nil
}

func (s *recipeService) resolveIngredients(ctx context.Context, ownerID uint, ids []uint) ([]model.Ingredient, error) {
	ingredients, err := s.ingredients.FindByOwnerAndIDs(ctx, ownerID, ids)
	if err != nil {
		return nil, fmt.Errorf("resolve ingredients: %w", err)
	}
	if len(ingredients) != len(dedupe(ids)) {
		return nil, apperrors.NewValidationError("ingredients", "invalid ingredient ids")
	}
	if ingredients == nil {
		ingredients = []model.Ingredient{}
	}
	return ingredients, nil
}

func validateRecipeFields(title string, timeMinutes int, price decimal.Decimal) error {
	fields := map[string]string{}
	if title == "" {
		fields["title"] = "this field is required"
	}
	if timeMinutes < 0 {
		fields["time_minutes"] = "ensure this value is greater than or equal to 0"
	}
	if price.IsNegative() {
		fields["price"] = "ensure this value is greater than or equal to 0"
	}
	if len(fields) > 0 {
		return &apperrors.ValidationError{Fields: fields}
	}
	return nil
}

func dedupe(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := ids[:0:0]
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
