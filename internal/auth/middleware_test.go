package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "recipebox/internal/errors"
	"recipebox/internal/model"
)

// MockTokenService is a mock implementation of TokenService.
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) IssueOrGet(ctx context.Context, userID uint) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

func (m *MockTokenService) Resolve(ctx context.Context, key string) (*model.User, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockTokenService) Rotate(ctx context.Context, userID uint) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

func invoke(t *testing.T, tokens TokenService, authHeader string) (*httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/recipe/tags", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Middleware(tokens)(func(c echo.Context) error {
		return c.String(http.StatusOK, CurrentUser(c).Email)
	})
	return rec, handler(c)
}

func TestMiddleware(t *testing.T) {
	user := &model.User{ID: 7, Email: "cook@example.com", IsActive: true}

	t.Run("missing header rejected before any entity logic", func(t *testing.T) {
		mockTokens := new(MockTokenService)

		_, err := invoke(t, mockTokens, "")

		var he *echo.HTTPError
		assert.ErrorAs(t, err, &he)
		assert.Equal(t, http.StatusUnauthorized, he.Code)
		mockTokens.AssertNotCalled(t, "Resolve", mock.Anything, mock.Anything)
	})

	t.Run("invalid key rejected", func(t *testing.T) {
		mockTokens := new(MockTokenService)
		mockTokens.On("Resolve", mock.Anything, "bogus").Return(nil, apperrors.ErrUnauthorized)

		_, err := invoke(t, mockTokens, "Token bogus")

		var he *echo.HTTPError
		assert.ErrorAs(t, err, &he)
		assert.Equal(t, http.StatusUnauthorized, he.Code)
	})

	t.Run("valid Token scheme resolves the user", func(t *testing.T) {
		mockTokens := new(MockTokenService)
		mockTokens.On("Resolve", mock.Anything, "cafebabe").Return(user, nil)

		rec, err := invoke(t, mockTokens, "Token cafebabe")

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "cook@example.com", rec.Body.String())
	})

	t.Run("Bearer scheme accepted too", func(t *testing.T) {
		mockTokens := new(MockTokenService)
		mockTokens.On("Resolve", mock.Anything, "cafebabe").Return(user, nil)

		rec, err := invoke(t, mockTokens, "Bearer cafebabe")

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
