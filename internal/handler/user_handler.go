package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"recipebox/internal/auth"
	"recipebox/internal/model"
	"recipebox/internal/service"
)

// UserHandler handles registration and profile endpoints.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// CreateUserRequest represents a registration request.
type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=5"`
	Name     string `json:"name"`
}

// UpdateUserRequest represents a full profile replacement.
type UpdateUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=5"`
	Name     string `json:"name"`
}

// PatchUserRequest represents a partial profile update.
type PatchUserRequest struct {
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=5"`
	Name     *string `json:"name"`
}

// UserResponse is the public representation of a user.
type UserResponse struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func toUserResponse(user *model.User) UserResponse {
	return UserResponse{ID: user.ID, Email: user.Email, Name: user.Name}
}

// Create godoc
// @Summary Register a new user
// @Tags user
// @Accept json
// @Produce json
// @Param request body CreateUserRequest true "Registration data"
// @Success 201 {object} UserResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /user/create [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req CreateUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return serviceError(err)
	}

	user, err := h.userService.Create(c.Request().Context(), service.CreateUserInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusCreated, toUserResponse(user))
}

// Me godoc
// @Summary Get the authenticated user's profile
// @Tags user
// @Produce json
// @Security TokenAuth
// @Success 200 {object} UserResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /user/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	return c.JSON(http.StatusOK, toUserResponse(auth.CurrentUser(c)))
}

// UpdateMe godoc
// @Summary Replace the authenticated user's profile
// @Tags user
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param request body UpdateUserRequest true "Profile data"
// @Success 200 {object} UserResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /user/me [put]
func (h *UserHandler) UpdateMe(c echo.Context) error {
	var req UpdateUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return serviceError(err)
	}

	user, err := h.userService.Update(c.Request().Context(), auth.CurrentUser(c), service.UpdateUserInput{
		Email:    &req.Email,
		Password: &req.Password,
		Name:     &req.Name,
	})
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// PatchMe godoc
// @Summary Partially update the authenticated user's profile
// @Tags user
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param request body PatchUserRequest true "Profile fields"
// @Success 200 {object} UserResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /user/me [patch]
func (h *UserHandler) PatchMe(c echo.Context) error {
	var req PatchUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return serviceError(err)
	}

	user, err := h.userService.Update(c.Request().Context(), auth.CurrentUser(c), service.UpdateUserInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}
