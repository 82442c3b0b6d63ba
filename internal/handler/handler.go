package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	apperrors "recipebox/internal/errors"
)

// bindAndValidate decodes the request body into req and runs struct
// validation, mapping failures to field-keyed validation errors.
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return apperrors.NewValidationError("non_field_errors", "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return apperrors.FromValidator(err)
	}
	return nil
}

// serviceError converts a service-layer error into an echo HTTP error.
func serviceError(err error) error {
	httpErr := apperrors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}

// pathID parses the :id route parameter. Non-numeric ids behave like
// missing records.
func pathID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusNotFound, apperrors.ErrorResponse{
			Error: apperrors.ErrNotFound.Error(),
			Code:  "NOT_FOUND",
		})
	}
	return uint(id), nil
}

// parseIDList splits a comma-separated id list query parameter.
func parseIDList(raw string) ([]uint, error) {
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]uint, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseUint(strings.TrimSpace(part), 10, 32)
		if err != nil {
			return nil, err
		}
		ids = append(ids, uint(id))
	}
	return ids, nil
}
