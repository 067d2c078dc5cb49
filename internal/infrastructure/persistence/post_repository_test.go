package persistence

import (
	"context"
	"testing"

	"github.com/devlink/backend/internal/domain/shared"
	"github.com/devlink/backend/internal/domain/social"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPost(t *testing.T, text string) *social.Post {
	t.Helper()
	p, err := social.NewPost(social.Author{
		ID:     uuid.New(),
		Name:   "Jane Doe",
		Avatar: "https://gravatar.com/avatar/x",
	}, text)
	require.NoError(t, err)
	return p
}

func TestGormPostRepository_CreateAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormPostRepository(db)
	ctx := context.Background()

	t.Run("round trips the aggregate", func(t *testing.T) {
		p := newTestPost(t, "hello world")
		commenter := social.Author{ID: uuid.New(), Name: "Bob"}
		_, err := p.AddComment(commenter, "first")
		require.NoError(t, err)
		_, err = p.AddComment(commenter, "second")
		require.NoError(t, err)
		require.NoError(t, p.AddLike(shared.NewIdentity(uuid.New())))

		require.NoError(t, repo.Create(ctx, p))

		found, err := repo.FindByID(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, "hello world", found.Text)
		assert.Equal(t, p.AuthorName, found.AuthorName)
		require.Len(t, found.Comments, 2)
		assert.Equal(t, "second", found.Comments[0].Text)
		assert.Equal(t, "first", found.Comments[1].Text)
		assert.Len(t, found.Likes, 1)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		_, err := repo.FindByID(ctx, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormPostRepository_Save(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormPostRepository(db)
	ctx := context.Background()

	t.Run("advances version", func(t *testing.T) {
		p := newTestPost(t, "original")
		require.NoError(t, repo.Create(ctx, p))

		require.NoError(t, p.Edit(shared.NewIdentity(p.AuthorID), "edited"))
		require.NoError(t, repo.Save(ctx, p))
		assert.Equal(t, 2, p.Version)

		loaded, err := repo.FindByID(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, "edited", loaded.Text)
		assert.Equal(t, 2, loaded.Version)
	})

	t.Run("concurrent likes conflict instead of clobbering", func(t *testing.T) {
		p := newTestPost(t, "popular")
		require.NoError(t, repo.Create(ctx, p))

		copyA, err := repo.FindByID(ctx, p.ID)
		require.NoError(t, err)
		copyB, err := repo.FindByID(ctx, p.ID)
		require.NoError(t, err)

		require.NoError(t, copyA.AddLike(shared.NewIdentity(uuid.New())))
		require.NoError(t, repo.Save(ctx, copyA))

		require.NoError(t, copyB.AddLike(shared.NewIdentity(uuid.New())))
		err = repo.Save(ctx, copyB)
		assert.ErrorIs(t, err, shared.ErrConcurrencyConflict)

		loaded, err := repo.FindByID(ctx, p.ID)
		require.NoError(t, err)
		assert.Len(t, loaded.Likes, 1)
	})
}

func TestGormPostRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormPostRepository(db)
	ctx := context.Background()

	t.Run("removes post and children", func(t *testing.T) {
		p := newTestPost(t, "doomed")
		_, err := p.AddComment(social.Author{ID: uuid.New(), Name: "Bob"}, "bye")
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, p))

		require.NoError(t, repo.Delete(ctx, p.ID))

		_, err = repo.FindByID(ctx, p.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("deleting unknown post is not found", func(t *testing.T) {
		assert.ErrorIs(t, repo.Delete(ctx, uuid.New()), shared.ErrNotFound)
	})
}

func TestGormPostRepository_FindAll(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormPostRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTestPost(t, "one")))
	require.NoError(t, repo.Create(ctx, newTestPost(t, "two")))

	posts, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, posts, 2)
}
