package main

import (
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"recipebox/docs"
	"recipebox/internal/auth"
	"recipebox/internal/cache"
	"recipebox/internal/config"
	"recipebox/internal/db"
	"recipebox/internal/handler"
	"recipebox/internal/model"
	"recipebox/internal/repository"
	"recipebox/internal/router"
	"recipebox/internal/service"
	"recipebox/internal/storage"
)

// @title Recipebox API
// @version 1.0
// @description Recipe management API with per-user tags, ingredients, recipes and token authentication.
// @BasePath /
// @securityDefinitions.apikey TokenAuth
// @in header
// @name Authorization
// @description Type "Token" followed by a space and the token key.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.Recipe{},
			&model.Tag{},
			&model.Ingredient{},
			&model.AuthToken{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.AuthToken{},
		&model.Tag{},
		&model.Ingredient{},
		&model.Recipe{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	imageStore := storage.NewDiskStore(cfg.UploadDir)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	tokenRepo := repository.NewTokenRepository(gormDB)
	tagRepo := repository.NewTagRepository(gormDB)
	ingredientRepo := repository.NewIngredientRepository(gormDB)
	recipeRepo := repository.NewRecipeRepository(gormDB)

	// Initialize auth components
	tokenService := auth.NewTokenService(tokenRepo, userRepo, cacheClient)

	// Initialize services
	userService := service.NewUserService(userRepo)
	authService := service.NewAuthService(userService, tokenService)
	tagService := service.NewTagService(tagRepo)
	ingredientService := service.NewIngredientService(ingredientRepo)
	recipeService := service.NewRecipeService(recipeRepo, tagRepo, ingredientRepo, imageStore)

	// Initialize handlers
	userHandler := handler.NewUserHandler(userService)
	authHandler := handler.NewAuthHandler(authService)
	tagHandler := handler.NewTagHandler(tagService)
	ingredientHandler := handler.NewIngredientHandler(ingredientService)
	recipeHandler := handler.NewRecipeHandler(recipeService)

	// Register routes
	router.Register(
		e,
		cfg,
		userHandler,
		authHandler,
		tagHandler,
		ingredientHandler,
		recipeHandler,
		auth.Middleware(tokenService),
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
