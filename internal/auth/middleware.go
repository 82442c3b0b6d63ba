package auth

import (
	"strings"

	"github.com/labstack/echo/v4"

	apperrors "recipebox/internal/errors"
	"recipebox/internal/model"
)

// contextUserKey is where Middleware stores the resolved user on the
// echo context.
const contextUserKey = "current_user"

// Middleware resolves the Authorization header to a user before any
// entity logic runs. Both "Token <key>" and "Bearer <key>" schemes are
// accepted. Requests without a valid key fail with 401.
func Middleware(tokens TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := extractKey(c.Request().Header.Get(echo.HeaderAuthorization))
			if key == "" {
				return unauthorized()
			}

			user, err := tokens.Resolve(c.Request().Context(), key)
			if err != nil {
				return unauthorized()
			}

			c.Set(contextUserKey, user)
			return next(c)
		}
	}
}

// CurrentUser returns the authenticated user set by Middleware, or nil
// on unauthenticated routes.
func CurrentUser(c echo.Context) *model.User {
	user, _ := c.Get(contextUserKey).(*model.User)
	return user
}

func extractKey(header string) string {
	for _, scheme := range []string{"Token ", "Bearer "} {
		if len(header) > len(scheme) && strings.EqualFold(header[:len(scheme)], scheme) {
			return strings.TrimSpace(header[len(scheme):])
		}
	}
	return ""
}

func unauthorized() error {
	httpErr := apperrors.MapErrorToHTTP(apperrors.ErrUnauthorized)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}
