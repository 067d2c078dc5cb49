package social

import (
	"context"

	"github.com/google/uuid"
)

// PostRepository defines the persistence contract for posts. Save persists
// the whole aggregate, comments and likes included, and must fail with
// shared.ErrConcurrencyConflict when the stored version no longer matches
// the loaded one.
type PostRepository interface {
	Create(ctx context.Context, post *Post) error
	Save(ctx context.Context, post *Post) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Post, error)
	FindAll(ctx context.Context) ([]*Post, error)
}
