package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"recipebox/internal/service"
)

// AuthHandler handles the token endpoint.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// TokenRequest represents a token obtain request.
type TokenRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse carries the opaque bearer token key.
type TokenResponse struct {
	Token string `json:"token"`
}

// Token godoc
// @Summary Obtain an auth token for valid credentials
// @Tags user
// @Accept json
// @Produce json
// @Param request body TokenRequest true "Credentials"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /user/token [post]
func (h *AuthHandler) Token(c echo.Context) error {
	var req TokenRequest
	if err := bindAndValidate(c, &req); err != nil {
		return serviceError(err)
	}

	key, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, TokenResponse{Token: key})
}
