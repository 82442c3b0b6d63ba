package repository

import (
	"context"

	"gorm.io/gorm"

	"recipebox/internal/model"
)

// TagRepository defines persistence operations for tags.
type TagRepository interface {
	Create(ctx context.Context, tag *model.Tag) error
	Update(ctx context.Context, tag *model.Tag) error
	Delete(ctx context.Context, tag *model.Tag) error
	ListByOwner(ctx context.Context, userID uint) ([]model.Tag, error)
	FindByOwnerAndID(ctx context.Context, userID, id uint) (*model.Tag, error)
	FindByOwnerAndIDs(ctx context.Context, userID uint, ids []uint) ([]model.Tag, error)
}

type tagRepository struct {
	db *gorm.DB
}

// NewTagRepository builds a GORM-backed repository.
func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) Create(ctx context.Context, tag *model.Tag) error {
	return r.db.WithContext(ctx).Create(tag).Error
}

func (r *tagRepository) Update(ctx context.Context, tag *model.Tag) error {
	return r.db.WithContext(ctx).Save(tag).Error
}

// Delete removes the tag and its recipe join rows.
func (r *tagRepository) Delete(ctx context.Context, tag *model.Tag) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM recipe_tags WHERE tag_id = ?", tag.ID).Error; err != nil {
			return err
		}
		return tx.Delete(tag).Error
	})
}

func (r *tagRepository) ListByOwner(ctx context.Context, userID uint) ([]model.Tag, error) {
	var tags []model.Tag
	if err := r.db.WithContext(ctx).Scopes(OwnedBy(userID)).Order("name DESC").Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

func (r *tagRepository) FindByOwnerAndID(ctx context.Context, userID, id uint) (*model.Tag, error) {
	var tag model.Tag
	if err := r.db.WithContext(ctx).Scopes(OwnedBy(userID)).First(&tag, id).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

func (r *tagRepository) FindByOwnerAndIDs(ctx context.Context, userID uint, ids []uint) ([]model.Tag, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var tags []model.Tag
	if err := r.db.WithContext(ctx).Scopes(OwnedBy(userID)).Where("id IN ?", ids).Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}
