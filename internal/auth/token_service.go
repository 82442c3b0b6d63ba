package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"recipebox/internal/cache"
	apperrors "recipebox/internal/errors"
	"recipebox/internal/model"
	"recipebox/internal/repository"
)

const (
	// tokenKeyBytes yields a 40-character hex key on the wire.
	tokenKeyBytes = 20

	tokenCachePrefix = "auth_token:"
	tokenCacheTTL    = time.Hour
)

// TokenService issues and resolves opaque bearer tokens. A user has at
// most one active token; repeated logins return the same key until it
// is rotated.
type TokenService interface {
	IssueOrGet(ctx context.Context, userID uint) (string, error)
	Resolve(ctx context.Context, key string) (*model.User, error)
	Rotate(ctx context.Context, userID uint) (string, error)
}

type tokenService struct {
	tokens repository.TokenRepository
	users  repository.UserRepository
	cache  *cache.Client
}

// NewTokenService creates a new token service.
func NewTokenService(tokens repository.TokenRepository, users repository.UserRepository, cache *cache.Client) TokenService {
	return &tokenService{tokens: tokens, users: users, cache: cache}
}

// IssueOrGet returns the user's existing token key, minting and
// persisting a fresh one only when none exists yet.
func (s *tokenService) IssueOrGet(ctx context.Context, userID uint) (string, error) {
	existing, err := s.tokens.FindByUser(ctx, userID)
	if err == nil {
		return existing.Key, nil
	}
	if err != gorm.ErrRecordNotFound {
		return "", fmt.Errorf("find token: %w", err)
	}

	key, err := generateKey()
	if err != nil {
		return "", err
	}
	token := &model.AuthToken{Key: key, UserID: userID}
	if err := s.tokens.Create(ctx, token); err != nil {
		// A concurrent login may have won the unique-index race; reuse its key.
		if winner, findErr := s.tokens.FindByUser(ctx, userID); findErr == nil {
			return winner.Key, nil
		}
		return "", fmt.Errorf("create token: %w", err)
	}
	return key, nil
}

// Resolve maps a token key to its active owner, or ErrUnauthorized.
// A Redis cache fronts the lookup; misses fall through to the store.
func (s *tokenService) Resolve(ctx context.Context, key string) (*model.User, error) {
	if userID, ok := s.cachedUserID(ctx, key); ok {
		user, err := s.users.FindByID(ctx, userID)
		if err == nil {
			return checkActive(user)
		}
		// Stale cache entry; fall through to the store.
	}

	token, err := s.tokens.FindByKey(ctx, key)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("find token: %w", err)
	}

	if payload, err := json.Marshal(token.UserID); err == nil {
		_ = s.cache.Set(ctx, tokenCachePrefix+key, payload, tokenCacheTTL)
	}

	return checkActive(&token.User)
}

// Rotate revokes the user's current token and issues a new one.
func (s *tokenService) Rotate(ctx context.Context, userID uint) (string, error) {
	old, err := s.tokens.FindByUser(ctx, userID)
	if err == nil {
		_ = s.cache.Delete(ctx, tokenCachePrefix+old.Key)
	} else if err != gorm.ErrRecordNotFound {
		return "", fmt.Errorf("find token: %w", err)
	}

	if err := s.tokens.DeleteByUser(ctx, userID); err != nil {
		return "", fmt.Errorf("delete token: %w", err)
	}
	return s.IssueOrGet(ctx, userID)
}

func (s *tokenService) cachedUserID(ctx context.Context, key string) (uint, bool) {
	data, _ := s.cache.Get(ctx, tokenCachePrefix+key)
	if data == nil {
		return 0, false
	}
	var userID uint
	if err := json.Unmarshal(data, &userID); err != nil {
		return 0, false
	}
	return userID, true
}

func checkActive(user *model.User) (*model.User, error) {
	if !user.IsActive {
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}

func generateKey() (string, error) {
	buf := make([]byte, tokenKeyBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate token key: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
