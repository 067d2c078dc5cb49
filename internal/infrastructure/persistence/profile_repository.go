package persistence

import (
	"context"
	"errors"

	"github.com/devlink/backend/internal/domain/profile"
	"github.com/devlink/backend/internal/domain/shared"
	"github.com/devlink/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormProfileRepository implements profile.ProfileRepository using GORM.
// The aggregate is stored as a root row plus ordered child rows; Save
// replaces the child rows wholesale inside one transaction and advances the
// root's version with an optimistic check.
type GormProfileRepository struct {
	db *gorm.DB
}

// NewGormProfileRepository creates a new GormProfileRepository
func NewGormProfileRepository(db *gorm.DB) *GormProfileRepository {
	return &GormProfileRepository{db: db}
}

// Create inserts a new profile with its child rows
func (r *GormProfileRepository) Create(ctx context.Context, p *profile.Profile) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(models.ProfileModelFromDomain(p)).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return shared.ErrAlreadyExists
			}
			return err
		}
		return createProfileChildren(tx, p)
	})
}

// Save persists the whole aggregate. The stored version must still match
// the loaded one; a mismatch means a concurrent writer won and the caller
// gets shared.ErrConcurrencyConflict. On success the in-memory version is
// advanced to the stored one.
func (r *GormProfileRepository) Save(ctx context.Context, p *profile.Profile) error {
	loadedVersion := p.Version
	model := models.ProfileModelFromDomain(p)
	model.Version = loadedVersion + 1

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.ProfileModel{}).
			Where("id = ? AND version = ?", p.ID, loadedVersion).
			Select("*").Omit("id", "created_at").
			Updates(model)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrConcurrencyConflict
		}

		if err := tx.Where("profile_id = ?", p.ID).Delete(&models.ExperienceModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("profile_id = ?", p.ID).Delete(&models.EducationModel{}).Error; err != nil {
			return err
		}
		return createProfileChildren(tx, p)
	})
	if err != nil {
		return err
	}

	p.Version = loadedVersion + 1
	return nil
}

func createProfileChildren(tx *gorm.DB, p *profile.Profile) error {
	if rows := models.ExperienceModelsFromDomain(p); len(rows) > 0 {
		if err := tx.Create(&rows).Error; err != nil {
			return err
		}
	}
	if rows := models.EducationModelsFromDomain(p); len(rows) > 0 {
		if err := tx.Create(&rows).Error; err != nil {
			return err
		}
	}
	return nil
}

// FindByID finds a profile by its ID
func (r *GormProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (*profile.Profile, error) {
	var model models.ProfileModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return r.loadAggregate(ctx, &model)
}

// FindByOwner finds the profile owned by the given subject
func (r *GormProfileRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*profile.Profile, error) {
	var model models.ProfileModel
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return r.loadAggregate(ctx, &model)
}

// FindAll returns all profiles, newest first
func (r *GormProfileRepository) FindAll(ctx context.Context) ([]*profile.Profile, error) {
	var profileModels []models.ProfileModel
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&profileModels).Error; err != nil {
		return nil, err
	}

	profiles := make([]*profile.Profile, len(profileModels))
	for i := range profileModels {
		p, err := r.loadAggregate(ctx, &profileModels[i])
		if err != nil {
			return nil, err
		}
		profiles[i] = p
	}
	return profiles, nil
}

// DeleteByOwner removes the profile owned by the given subject along with
// its child rows. Deleting an absent profile is not an error.
func (r *GormProfileRepository) DeleteByOwner(ctx context.Context, ownerID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var model models.ProfileModel
		if err := tx.Where("owner_id = ?", ownerID).First(&model).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}

		if err := tx.Where("profile_id = ?", model.ID).Delete(&models.ExperienceModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("profile_id = ?", model.ID).Delete(&models.EducationModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.ProfileModel{}, "id = ?", model.ID).Error
	})
}

func (r *GormProfileRepository) loadAggregate(ctx context.Context, model *models.ProfileModel) (*profile.Profile, error) {
	var experience []models.ExperienceModel
	if err := r.db.WithContext(ctx).
		Where("profile_id = ?", model.ID).
		Order("ordinal ASC").
		Find(&experience).Error; err != nil {
		return nil, err
	}

	var education []models.EducationModel
	if err := r.db.WithContext(ctx).
		Where("profile_id = ?", model.ID).
		Order("ordinal ASC").
		Find(&education).Error; err != nil {
		return nil, err
	}

	return model.ToDomain(experience, education), nil
}
