package router

import (
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"recipebox/internal/config"
	"recipebox/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	userHandler *handler.UserHandler,
	authHandler *handler.AuthHandler,
	tagHandler *handler.TagHandler,
	ingredientHandler *handler.IngredientHandler,
	recipeHandler *handler.RecipeHandler,
	authMiddleware echo.MiddlewareFunc,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Validator = NewValidator()

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Public user routes
	user := e.Group("/user")
	user.POST("/create", userHandler.Create)
	user.POST("/token", authHandler.Token)

	// Profile routes (require token authentication)
	me := user.Group("/me", authMiddleware)
	me.GET("", userHandler.Me)
	me.PUT("", userHandler.UpdateMe)
	me.PATCH("", userHandler.PatchMe)

	// Entity routes (require token authentication)
	recipe := e.Group("/recipe", authMiddleware)

	recipe.GET("/tags", tagHandler.List)
	recipe.POST("/tags", tagHandler.Create)
	recipe.GET("/tags/:id", tagHandler.Get)
	recipe.PUT("/tags/:id", tagHandler.Update)
	recipe.PATCH("/tags/:id", tagHandler.Patch)
	recipe.DELETE("/tags/:id", tagHandler.Delete)

	recipe.GET("/ingredients", ingredientHandler.List)
	recipe.POST("/ingredients", ingredientHandler.Create)
	recipe.GET("/ingredients/:id", ingredientHandler.Get)
	recipe.PUT("/ingredients/:id", ingredientHandler.Update)
	recipe.PATCH("/ingredients/:id", ingredientHandler.Patch)
	recipe.DELETE("/ingredients/:id", ingredientHandler.Delete)

	recipe.GET("/recipes", recipeHandler.List)
	recipe.POST("/recipes", recipeHandler.Create)
	recipe.GET("/recipes/:id", recipeHandler.Get)
	recipe.PUT("/recipes/:id", recipeHandler.Update)
	recipe.PATCH("/recipes/:id", recipeHandler.Patch)
	recipe.DELETE("/recipes/:id", recipeHandler.Delete)
	recipe.POST("/recipes/:id/upload-image", recipeHandler.UploadImage)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator builds a validator that reports fields by their json
// names so error messages line up with request payloads.
func NewValidator() *CustomValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	return &CustomValidator{validator: v}
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
