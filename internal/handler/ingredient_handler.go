package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"recipebox/internal/auth"
	"recipebox/internal/model"
	"recipebox/internal/service"
)

// IngredientHandler handles ingredient endpoints.
type IngredientHandler struct {
	ingredientService service.IngredientService
}

// NewIngredientHandler creates a new ingredient handler.
func NewIngredientHandler(ingredientService service.IngredientService) *IngredientHandler {
	return &IngredientHandler{ingredientService: ingredientService}
}

// IngredientRequest represents an ingredient create or full-update payload.
type IngredientRequest struct {
	Name string `json:"name" validate:"required"`
}

// PatchIngredientRequest represents a partial ingredient update.
type PatchIngredientRequest struct {
	Name *string `json:"name"`
}

// IngredientResponse is the public representation of an ingredient.
type IngredientResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func toIngredientResponse(ingredient *model.Ingredient) IngredientResponse {
	return IngredientResponse{ID: ingredient.ID, Name: ingredient.Name}
}

func toIngredientResponses(ingredients []model.Ingredient) []IngredientResponse {
	out := make([]IngredientResponse, 0, len(ingredients))
	for i := range ingredients {
		out = append(out, toIngredientResponse(&ingredients[i]))
	}
	return out
}

// List godoc
// @Summary List the caller's ingredients
// @Tags ingredients
// @Produce json
// @Security TokenAuth
// @Success 200 {array} IngredientResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /recipe/ingredients [get]
func (h *IngredientHandler) List(c echo.Context) error {
	ingredients, err := h.ingredientService.List(c.Request().Context(), auth.CurrentUser(c).ID)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, toIngredientResponses(ingredients))
}

// Create godoc
// @Summary Create an ingredient owned by the caller
// @Tags ingredients
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param request body IngredientRequest true "Ingredient data"
// @Success 201 {object} IngredientResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /recipe/ingredients [post]
func (h *IngredientHandler) Create(c echo.Context) error {
	var req IngredientRequest
	if err := bindAndValidate(c, &req); err != nil {
		return serviceError(err)
	}

	ingredient, err := h.ingredientService.Create(c.Request().Context(), auth.CurrentUser(c).ID, req.Name)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusCreated, toIngredientResponse(ingredient))
}

// Get godoc
// @Summary Get one of the caller's ingredients
// @Tags ingredients
// @Produce json
// @Security TokenAuth
// @Param id path int true "Ingredient ID"
// @Success 200 {object} IngredientResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /recipe/ingredients/{id} [get]
func (h *IngredientHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	ingredient, err := h.ingredientService.Get(c.Request().Context(), auth.CurrentUser(c).ID, id)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, toIngredientResponse(ingredient))
}

// Update godoc
// @Summary Replace one of the caller's ingredients
// @Tags ingredients
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param id path int true "Ingredient ID"
// @Param request body IngredientRequest true "Ingredient data"
// @Success 200 {object} IngredientResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /recipe/ingredients/{id} [put]
func (h *IngredientHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req IngredientRequest
	if err := bindAndValidate(c, &req); err != nil {
		return serviceError(err)
	}

	ingredient, err := h.ingredientService.Update(c.Request().Context(), auth.CurrentUser(c).ID, id, req.Name)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, toIngredientResponse(ingredient))
}

// Patch godoc
// @Summary Partially update one of the caller's ingredients
// @Tags ingredients
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param id path int true "Ingredient ID"
// @Param request body PatchIngredientRequest true "Ingredient fields"
// @Success 200 {object} IngredientResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /recipe/ingredients/{id} [patch]
func (h *IngredientHandler) Patch(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req PatchIngredientRequest
	if err := bindAndValidate(c, &req); err != nil {
		return serviceError(err)
	}

	owner := auth.CurrentUser(c).ID
	if req.Name == nil {
		ingredient, err := h.ingredientService.Get(c.Request().Context(), owner, id)
		if err != nil {
			return serviceError(err)
		}
		return c.JSON(http.StatusOK, toIngredientResponse(ingredient))
	}

	ingredient, err := h.ingredientService.Update(c.Request().Context(), owner, id, *req.Name)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, toIngredientResponse(ingredient))
}

// Delete godoc
// @Summary Delete one of the caller's ingredients
// @Tags ingredients
// @Security TokenAuth
// @Param id path int true "Ingredient ID"
// @Success 204
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /recipe/ingredients/{id} [delete]
func (h *IngredientHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.ingredientService.Delete(c.Request().Context(), auth.CurrentUser(c).ID, id); err != nil {
		return serviceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
