package handler

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"recipebox/internal/auth"
	apperrors "recipebox/internal/errors"
	"recipebox/internal/model"
	"recipebox/internal/service"
)

// RecipeHandler handles recipe endpoints.
type RecipeHandler struct {
	recipeService service.RecipeService
}

// NewRecipeHandler creates a new recipe handler.
func NewRecipeHandler(recipeService service.RecipeService) *RecipeHandler {
	return &RecipeHandler{recipeService: recipeService}
}

// RecipeRequest represents a recipe create or full-update payload.
// Omitted tags/ingredients on a full update reset the relations.
type RecipeRequest struct {
	Title       string          `json:"title" validate:"required"`
	TimeMinutes int             `json:"time_minutes" validate:"gte=0"`
	Price       decimal.Decimal `json:"price"`
	Link        string          `json:"link" validate:"omitempty,url"`
	Tags        []uint          `json:"tags"`
	Ingredients []uint          `json:"ingredients"`
}

// PatchRecipeRequest represents a partial update; omitted fields and
// relations are preserved.
type PatchRecipeRequest struct {
	Title       *string          `json:"title"`
	TimeMinutes *int             `json:"time_minutes" validate:"omitempty,gte=0"`
	Price       *decimal.Decimal `json:"price"`
	Link        *string          `json:"link" validate:"omitempty,url"`
	Tags        *[]uint          `json:"tags"`
	Ingredients *[]uint          `json:"ingredients"`
}

// RecipeResponse is the flat list representation: relations as id lists.
type RecipeResponse struct {
	ID          uint            `json:"id"`
	Title       string          `json:"title"`
	TimeMinutes int             `json:"time_minutes"`
	Price       decimal.Decimal `json:"price"`
	Link        string          `json:"link"`
	Image       string          `json:"image"`
	Tags        []uint          `json:"tags"`
	Ingredients []uint          `json:"ingredients"`
}

// RecipeDetailResponse expands tags and ingredients into objects.
type RecipeDetailResponse struct {
	ID          uint                 `json:"id"`
	Title       string               `json:"title"`
	TimeMinutes int                  `json:"time_minutes"`
	Price       decimal.Decimal      `json:"price"`
	Link        string               `json:"link"`
	Image       string               `json:"image"`
	Tags        []TagResponse        `json:"tags"`
	Ingredients []IngredientResponse `json:"ingredients"`
}

func toRecipeResponse(recipe *model.Recipe) RecipeResponse {
	tagIDs := make([]uint, 0, len(recipe.Tags))
	for _, tag := range recipe.Tags {
		tagIDs = append(tagIDs, tag.ID)
	}
	ingredientIDs := make([]uint, 0, len(recipe.Ingredients))
	for _, ingredient := range recipe.Ingredients {
		ingredientIDs = append(ingredientIDs, ingredient.ID)
	}
	return RecipeResponse{
		ID:          recipe.ID,
		Title:       recipe.Title,
		TimeMinutes: recipe.TimeMinutes,
		Price:       recipe.Price,
		Link:        recipe.Link,
		Image:       recipe.Image,
		Tags:        tagIDs,
		Ingredients: ingredientIDs,
	}
}

func toRecipeDetailResponse(recipe *model.Recipe) RecipeDetailResponse {
	return RecipeDetailResponse{
		ID:          recipe.ID,
		Title:       recipe.Title,
		TimeMinutes: recipe.TimeMinutes,
		Price:       recipe.Price,
		Link:        recipe.Link,
		Image:       recipe.Image,
		Tags:        toTagResponses(recipe.Tags),
		Ingredients: toIngredientResponses(recipe.Ingredients),
	}
}

// List godoc
// @Summary List the caller's recipes
// @Tags recipes
// @Produce json
// @Security TokenAuth
// @Param tags query string false "Comma-separated tag ids; matches recipes with any of them"
// @Param ingredients query string false "Comma-separated ingredient ids; matches recipes with any of them"
// @Success 200 {array} RecipeResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /recipe/recipes [get]
func (h *RecipeHandler) List(c echo.Context) error {
	tagIDs, err := parseIDList(c.QueryParam("tags"))
	if err != nil {
		return serviceError(apperrors.NewValidationError("tags", "invalid id list"))
	}
	ingredientIDs, err := parseIDList(c.QueryParam("ingredients"))
	if err != nil {
		return serviceError(apperrors.NewValidationError("ingredients", "invalid id list"))
	}

	recipes, err := h.recipeService.List(c.Request().Context(), auth.CurrentUser(c).ID, service.RecipeFilter{
		TagIDs:        tagIDs,
		IngredientIDs: ingredientIDs,
	})
	if err != nil {
		return serviceError(err)
	}

	out := make([]RecipeResponse, 0, len(recipes))
	for i := range recipes {
		out = append(out, toRecipeResponse(&recipes[i]))
	}
	return c.JSON(http.StatusOK, out)
}

// Create godoc
// @Summary Create a recipe owned by the caller
// @Tags recipes
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param request body RecipeRequest true "Recipe data"
// @Success 201 {object} RecipeDetailResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /recipe/recipes [post]
func (h *RecipeHandler) Create(c echo.Context) error {
	var req RecipeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return serviceError(err)
	}

	recipe, err := h.recipeService.Create(c.Request().Context(), auth.CurrentUser(c).ID, service.RecipeInput{
		Title:         req.Title,
		TimeMinutes:   req.TimeMinutes,
		Price:         req.Price,
		Link:          req.Link,
		TagIDs:        req.Tags,
		IngredientIDs: req.Ingredients,
	})
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusCreated, toRecipeDetailResponse(recipe))
}

// Get godoc
// @Summary Get one of the caller's recipes with nested relations
// @Tags recipes
// @Produce json
// @Security TokenAuth
// @Param id path int true "Recipe ID"
// @Success 200 {object} RecipeDetailResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /recipe/recipes/{id} [get]
func (h *RecipeHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	recipe, err := h.recipeService.Get(c.Request().Context(), auth.CurrentUser(c).ID, id)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, toRecipeDetailResponse(recipe))
}

// Update godoc
// @Summary Replace one of the caller's recipes
// @Tags recipes
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param id path int true "Recipe ID"
// @Param request body RecipeRequest true "Recipe data"
// @Success 200 {object} RecipeDetailResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /recipe/recipes/{id} [put]
func (h *RecipeHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req RecipeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return serviceError(err)
	}

	recipe, err := h.recipeService.Update(c.Request().Context(), auth.CurrentUser(c).ID, id, service.RecipeUpdateInput{
		Title:         &req.Title,
		TimeMinutes:   &req.TimeMinutes,
		Price:         &req.Price,
		Link:          &req.Link,
		TagIDs:        &req.Tags,
		IngredientIDs: &req.Ingredients,
	}, false)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, toRecipeDetailResponse(recipe))
}

// Patch godoc
// @Summary Partially update one of the caller's recipes
// @Tags recipes
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param id path int true "Recipe ID"
// @Param request body PatchRecipeRequest true "Recipe fields"
// @Success 200 {object} RecipeDetailResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /recipe/recipes/{id} [patch]
func (h *RecipeHandler) Patch(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req PatchRecipeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return serviceError(err)
	}

	recipe, err := h.recipeService.Update(c.Request().Context(), auth.CurrentUser(c).ID, id, service.RecipeUpdateInput{
		Title:         req.Title,
		TimeMinutes:   req.TimeMinutes,
		Price:         req.Price,
		Link:          req.Link,
		TagIDs:        req.Tags,
		IngredientIDs: req.Ingredients,
	}, true)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, toRecipeDetailResponse(recipe))
}

// Delete godoc
// @Summary Delete one of the caller's recipes
// @Tags recipes
// @Security TokenAuth
// @Param id path int true "Recipe ID"
// @Success 204
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /recipe/recipes/{id} [delete]
func (h *RecipeHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.recipeService.Delete(c.Request().Context(), auth.CurrentUser(c).ID, id); err != nil {
		return serviceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// UploadImage godoc
// @Summary Attach an image to one of the caller's recipes
// @Tags recipes
// @Accept mpfd
// @Produce json
// @Security TokenAuth
// @Param id path int true "Recipe ID"
// @Param image formData file true "Image file"
// @Success 200 {object} RecipeDetailResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /recipe/recipes/{id}/upload-image [post]
func (h *RecipeHandler) UploadImage(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return serviceError(apperrors.NewValidationError("image", "no file was submitted"))
	}
	file, err := fileHeader.Open()
	if err != nil {
		return serviceError(apperrors.NewValidationError("image", "the submitted file could not be read"))
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return serviceError(apperrors.NewValidationError("image", "the submitted file could not be read"))
	}

	recipe, err := h.recipeService.UploadImage(c.Request().Context(), auth.CurrentUser(c).ID, id, data)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, toRecipeDetailResponse(recipe))
}
