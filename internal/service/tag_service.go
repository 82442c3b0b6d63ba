package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	apperrors "recipebox/internal/errors"
	"recipebox/internal/model"
	"recipebox/internal/repository"
)

// TagService handles tag CRUD for a single owner. The owner is always
// the authenticated caller; payloads can never reassign it.
type TagService interface {
	List(ctx context.Context, ownerID uint) ([]model.Tag, error)
	Create(ctx context.Context, ownerID uint, name string) (*model.Tag, error)
	Get(ctx context.Context, ownerID, id uint) (*model.Tag, error)
	Update(ctx context.Context, ownerID, id uint, name string) (*model.Tag, error)
	Delete(ctx context.Context, ownerID, id uint) error
}

type tagService struct {
	tags repository.TagRepository
}

// NewTagService creates a new tag service.
func NewTagService(tags repository.TagRepository) TagService {
	return &tagService{tags: tags}
}

// List returns the owner's tags ordered by name descending.
func (s *tagService) List(ctx context.Context, ownerID uint) ([]model.Tag, error) {
	tags, err := s.tags.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	return tags, nil
}

func (s *tagService) Create(ctx context.Context, ownerID uint, name string) (*model.Tag, error) {
	if name == "" {
		return nil, apperrors.NewValidationError("name", "this field is required")
	}
	tag := &model.Tag{Name: name, UserID: ownerID}
	if err := s.tags.Create(ctx, tag); err != nil {
		return nil, fmt.Errorf("create tag: %w", err)
	}
	return tag, nil
}

// Get returns the tag, or ErrNotFound when it does not exist or belongs
// to another user.
func (s *tagService) Get(ctx context.Context, ownerID, id uint) (*model.Tag, error) {
	tag, err := s.tags.FindByOwnerAndID(ctx, ownerID, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("find tag: %w", err)
	}
	return tag, nil
}

func (s *tagService) Update(ctx context.Context, ownerID, id uint, name string) (*model.Tag, error) {
	if name == "" {
		return nil, apperrors.NewValidationError("name", "this field is required")
	}
	tag, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	tag.Name = name
	if err := s.tags.Update(ctx, tag); err != nil {
		return nil, fmt.Errorf("update tag: %w", err)
	}
	return tag, nil
}

func (s *tagService) Delete(ctx context.Context, ownerID, id uint) error {
	tag, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return err
	}
	if err := s.tags.Delete(ctx, tag); err != nil {
		return fmt.Errorf("delete tag: %w", err)
	}
	return nil
}
