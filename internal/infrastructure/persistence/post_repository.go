package persistence

import (
	"context"
	"errors"

	"github.com/devlink/backend/internal/domain/shared"
	"github.com/devlink/backend/internal/domain/social"
	"github.com/devlink/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormPostRepository implements social.PostRepository using GORM. It uses
// the same storage scheme as the profile repository: root row plus ordered
// child rows, replaced wholesale on save under an optimistic version check.
type GormPostRepository struct {
	db *gorm.DB
}

// NewGormPostRepository creates a new GormPostRepository
func NewGormPostRepository(db *gorm.DB) *GormPostRepository {
	return &GormPostRepository{db: db}
}

// Create inserts a new post with its child rows
func (r *GormPostRepository) Create(ctx context.Context, p *social.Post) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(models.PostModelFromDomain(p)).Error; err != nil {
			return err
		}
		return createPostChildren(tx, p)
	})
}

// Save persists the whole aggregate under an optimistic version check. On
// success the in-memory version is advanced to the stored one.
func (r *GormPostRepository) Save(ctx context.Context, p *social.Post) error {
	loadedVersion := p.Version
	model := models.PostModelFromDomain(p)
	model.Version = loadedVersion + 1

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.PostModel{}).
			Where("id = ? AND version = ?", p.ID, loadedVersion).
			Select("*").Omit("id", "created_at").
			Updates(model)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrConcurrencyConflict
		}

		if err := tx.Where("post_id = ?", p.ID).Delete(&models.CommentModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", p.ID).Delete(&models.LikeModel{}).Error; err != nil {
			return err
		}
		return createPostChildren(tx, p)
	})
	if err != nil {
		return err
	}

	p.Version = loadedVersion + 1
	return nil
}

func createPostChildren(tx *gorm.DB, p *social.Post) error {
	if rows := models.CommentModelsFromDomain(p); len(rows) > 0 {
		if err := tx.Create(&rows).Error; err != nil {
			return err
		}
	}
	if rows := models.LikeModelsFromDomain(p); len(rows) > 0 {
		if err := tx.Create(&rows).Error; err != nil {
			return err
		}
	}
	return nil
}

// Delete removes a post and its child rows
func (r *GormPostRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.CommentModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.LikeModel{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.PostModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// FindByID finds a post by its ID
func (r *GormPostRepository) FindByID(ctx context.Context, id uuid.UUID) (*social.Post, error) {
	var model models.PostModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return r.loadAggregate(ctx, &model)
}

// FindAll returns all posts, newest first
func (r *GormPostRepository) FindAll(ctx context.Context) ([]*social.Post, error) {
	var postModels []models.PostModel
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&postModels).Error; err != nil {
		return nil, err
	}

	posts := make([]*social.Post, len(postModels))
	for i := range postModels {
		p, err := r.loadAggregate(ctx, &postModels[i])
		if err != nil {
			return nil, err
		}
		posts[i] = p
	}
	return posts, nil
}

func (r *GormPostRepository) loadAggregate(ctx context.Context, model *models.PostModel) (*social.Post, error) {
	var comments []models.CommentModel
	if err := r.db.WithContext(ctx).
		Where("post_id = ?", model.ID).
		Order("ordinal ASC").
		Find(&comments).Error; err != nil {
		return nil, err
	}

	var likes []models.LikeModel
	if err := r.db.WithContext(ctx).
		Where("post_id = ?", model.ID).
		Order("ordinal ASC").
		Find(&likes).Error; err != nil {
		return nil, err
	}

	return model.ToDomain(comments, likes), nil
}
