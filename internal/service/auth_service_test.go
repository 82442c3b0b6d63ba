package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "recipebox/internal/errors"
	"recipebox/internal/model"
)

func TestAuthService_Login(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret-pass"), bcryptCost)
	user := &model.User{ID: 11, Email: "cook@example.com", PasswordHash: string(hash), IsActive: true}

	t.Run("valid credentials return a stable token key", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByEmail", mock.Anything, "cook@example.com").Return(user, nil)
		mockTokens := new(MockTokenService)
		mockTokens.On("IssueOrGet", mock.Anything, uint(11)).Return("deadbeef", nil)

		svc := NewAuthService(NewUserService(mockRepo), mockTokens)

		key, err := svc.Login(context.Background(), "cook@example.com", "secret-pass")
		assert.NoError(t, err)
		assert.Equal(t, "deadbeef", key)

		// Repeated logins reuse the same token.
		again, err := svc.Login(context.Background(), "cook@example.com", "secret-pass")
		assert.NoError(t, err)
		assert.Equal(t, key, again)

		mockRepo.AssertExpectations(t)
		mockTokens.AssertExpectations(t)
	})

	t.Run("bad credentials fail without issuing a token", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByEmail", mock.Anything, "cook@example.com").Return(user, nil)
		mockTokens := new(MockTokenService)

		svc := NewAuthService(NewUserService(mockRepo), mockTokens)

		key, err := svc.Login(context.Background(), "cook@example.com", "wrong-pass")
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
		assert.Empty(t, key)
		mockTokens.AssertNotCalled(t, "IssueOrGet", mock.Anything, mock.Anything)
	})

	t.Run("unknown user fails the same way as a wrong password", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)
		mockTokens := new(MockTokenService)

		svc := NewAuthService(NewUserService(mockRepo), mockTokens)

		_, err := svc.Login(context.Background(), "nobody@example.com", "secret-pass")
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})
}
