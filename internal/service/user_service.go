package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "recipebox/internal/errors"
	"recipebox/internal/model"
	"recipebox/internal/repository"
)

const bcryptCost = 10

// CreateUserInput carries registration fields.
type CreateUserInput struct {
	Email    string
	Password string
	Name     string
}

// UpdateUserInput carries profile changes; nil fields are left alone.
type UpdateUserInput struct {
	Email    *string
	Password *string
	Name     *string
}

// UserService handles identity and credential operations.
type UserService interface {
	Create(ctx context.Context, input CreateUserInput) (*model.User, error)
	CreateSuperuser(ctx context.Context, email, password, name string) (*model.User, error)
	Authenticate(ctx context.Context, email, password string) (*model.User, error)
	Update(ctx context.Context, user *model.User, input UpdateUserInput) (*model.User, error)
}

type userService struct {
	users repository.UserRepository
}

// NewUserService creates a new user service.
func NewUserService(users repository.UserRepository) UserService {
	return &userService{users: users}
}

// Create registers a user: the email domain is lowercased before
// persisting and the password is stored only as a bcrypt hash.
func (s *userService) Create(ctx context.Context, input CreateUserInput) (*model.User, error) {
	if input.Email == "" {
		return nil, apperrors.NewValidationError("email", "this field is required")
	}
	email := model.NormalizeEmail(input.Email)

	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existing != nil {
		return nil, apperrors.NewValidationError("email", "user with this email already exists")
	}

	hash, err := hashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:        email,
		PasswordHash: hash,
		Name:         input.Name,
		IsActive:     true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// CreateSuperuser registers a user with staff and superuser flags set.
func (s *userService) CreateSuperuser(ctx context.Context, email, password, name string) (*model.User, error) {
	user, err := s.Create(ctx, CreateUserInput{Email: email, Password: password, Name: name})
	if err != nil {
		return nil, err
	}
	user.IsStaff = true
	user.IsSuperuser = true
	if err := s.users.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

// Authenticate verifies credentials and returns the matching active
// user, or nil without error when verification fails.
func (s *userService) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.users.FindByEmail(ctx, model.NormalizeEmail(email))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	if !user.IsActive {
		return nil, nil
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, nil
	}
	return user, nil
}

// Update applies the non-nil fields to the user's profile. A new
// password is re-hashed; an email change is normalized and checked for
// uniqueness.
func (s *userService) Update(ctx context.Context, user *model.User, input UpdateUserInput) (*model.User, error) {
	if input.Email != nil {
		if *input.Email == "" {
			return nil, apperrors.NewValidationError("email", "this field is required")
		}
		email := model.NormalizeEmail(*input.Email)
		if email != user.Email {
			existing, err := s.users.FindByEmail(ctx, email)
			if err != nil && err != gorm.ErrRecordNotFound {
				return nil, fmt.Errorf("check email: %w", err)
			}
			if existing != nil {
				return nil, apperrors.NewValidationError("email", "user with this email already exists")
			}
		}
		user.Email = email
	}
	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Password != nil {
		hash, err := hashPassword(*input.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}
