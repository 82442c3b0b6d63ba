package main

import (
	"context"
	"errors"
	"flag"
	"log"

	"github.com/joho/godotenv"

	"recipebox/internal/config"
	"recipebox/internal/db"
	apperrors "recipebox/internal/errors"
	"recipebox/internal/model"
	"recipebox/internal/repository"
	"recipebox/internal/service"
)

func main() {
	email := flag.String("email", "", "email address for the superuser (required)")
	password := flag.String("password", "", "password for the superuser (required)")
	name := flag.String("name", "Admin", "display name")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("both -email and -password are required")
	}

	_ = godotenv.Load()
	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}
	if err := gormDB.AutoMigrate(&model.User{}); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	userRepo := repository.NewUserRepository(gormDB)
	userService := service.NewUserService(userRepo)
	ctx := context.Background()

	user, err := userService.CreateSuperuser(ctx, *email, *password, *name)
	if err != nil {
		var ve *apperrors.ValidationError
		if errors.As(err, &ve) && ve.Fields["email"] == "user with this email already exists" {
			// Idempotent re-run: promote the existing user instead.
			existing, findErr := userRepo.FindByEmail(ctx, model.NormalizeEmail(*email))
			if findErr != nil {
				log.Fatalf("find existing user: %v", findErr)
			}
			existing.IsStaff = true
			existing.IsSuperuser = true
			if updateErr := userRepo.Update(ctx, existing); updateErr != nil {
				log.Fatalf("promote existing user: %v", updateErr)
			}
			log.Printf("superuser %s already existed, flags ensured", existing.Email)
			return
		}
		log.Fatalf("create superuser: %v", err)
	}

	log.Printf("superuser %s created", user.Email)
}
