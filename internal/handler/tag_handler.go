package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"recipebox/internal/auth"
	"recipebox/internal/model"
	"recipebox/internal/service"
)

// TagHandler handles tag endpoints.
type TagHandler struct {
	tagService service.TagService
}

// NewTagHandler creates a new tag handler.
func NewTagHandler(tagService service.TagService) *TagHandler {
	return &TagHandler{tagService: tagService}
}

// TagRequest represents a tag create or full-update payload.
type TagRequest struct {
	Name string `json:"name" validate:"required"`
}

// PatchTagRequest represents a partial tag update.
type PatchTagRequest struct {
	Name *string `json:"name"`
}

// TagResponse is the public representation of a tag.
type TagResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func toTagResponse(tag *model.Tag) TagResponse {
	return TagResponse{ID: tag.ID, Name: tag.Name}
}

func toTagResponses(tags []model.Tag) []TagResponse {
	out := make([]TagResponse, 0, len(tags))
	for i := range tags {
		out = append(out, toTagResponse(&tags[i]))
	}
	return out
}

// List godoc
// @Summary List the caller's tags
// @Tags tags
// @Produce json
// @Security TokenAuth
// @Success 200 {array} TagResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /recipe/tags [get]
func (h *TagHandler) List(c echo.Context) error {
	tags, err := h.tagService.List(c.Request().Context(), auth.CurrentUser(c).ID)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, toTagResponses(tags))
}

// Create godoc
// @Summary Create a tag owned by the caller
// @Tags tags
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param request body TagRequest true "Tag data"
// @Success 201 {object} TagResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /recipe/tags [post]
func (h *TagHandler) Create(c echo.Context) error {
	var req TagRequest
	if err := bindAndValidate(c, &req); err != nil {
		return serviceError(err)
	}

	tag, err := h.tagService.Create(c.Request().Context(), auth.CurrentUser(c).ID, req.Name)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusCreated, toTagResponse(tag))
}

// Get godoc
// @Summary Get one of the caller's tags
// @Tags tags
// @Produce json
// @Security TokenAuth
// @Param id path int true "Tag ID"
// @Success 200 {object} TagResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /recipe/tags/{id} [get]
func (h *TagHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	tag, err := h.tagService.Get(c.Request().Context(), auth.CurrentUser(c).ID, id)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, toTagResponse(tag))
}

// Update godoc
// @Summary Replace one of the caller's tags
// @Tags tags
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param id path int true "Tag ID"
// @Param request body TagRequest true "Tag data"
// @Success 200 {object} TagResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /recipe/tags/{id} [put]
func (h *TagHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req TagRequest
	if err := bindAndValidate(c, &req); err != nil {
		return serviceError(err)
	}

	tag, err := h.tagService.Update(c.Request().Context(), auth.CurrentUser(c).ID, id, req.Name)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, toTagResponse(tag))
}

// Patch godoc
// @Summary Partially update one of the caller's tags
// @Tags tags
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param id path int true "Tag ID"
// @Param request body PatchTagRequest true "Tag fields"
// @Success 200 {object} TagResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /recipe/tags/{id} [patch]
func (h *TagHandler) Patch(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req PatchTagRequest
	if err := bindAndValidate(c, &req); err != nil {
		return serviceError(err)
	}

	owner := auth.CurrentUser(c).ID
	if req.Name == nil {
		// Nothing to change; behave like a read.
		tag, err := h.tagService.Get(c.Request().Context(), owner, id)
		if err != nil {
			return serviceError(err)
		}
		return c.JSON(http.StatusOK, toTagResponse(tag))
	}

	tag, err := h.tagService.Update(c.Request().Context(), owner, id, *req.Name)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, toTagResponse(tag))
}

// Delete godoc
// @Summary Delete one of the caller's tags
// @Tags tags
// @Security TokenAuth
// @Param id path int true "Tag ID"
// @Success 204
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /recipe/tags/{id} [delete]
func (h *TagHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.tagService.Delete(c.Request().Context(), auth.CurrentUser(c).ID, id); err != nil {
		return serviceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
