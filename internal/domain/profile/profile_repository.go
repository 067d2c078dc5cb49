package profile

import (
	"context"

	"github.com/google/uuid"
)

// ProfileRepository defines the persistence contract for profiles. Save
// persists the whole aggregate, embedded entries included, and must fail
// with shared.ErrConcurrencyConflict when the stored version no longer
// matches the loaded one.
type ProfileRepository interface {
	Create(ctx context.Context, profile *Profile) error
	Save(ctx context.Context, profile *Profile) error
	FindByID(ctx context.Context, id uuid.UUID) (*Profile, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) (*Profile, error)
	FindAll(ctx context.Context) ([]*Profile, error)
	DeleteByOwner(ctx context.Context, ownerID uuid.UUID) error
}
