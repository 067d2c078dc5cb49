package social

import (
	"context"
	"testing"

	"github.com/devlink/backend/internal/domain/identity"
	"github.com/devlink/backend/internal/domain/shared"
	"github.com/devlink/backend/internal/domain/social"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakePostRepo struct {
	posts map[uuid.UUID]*social.Post
	order []uuid.UUID
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: make(map[uuid.UUID]*social.Post)}
}

func (r *fakePostRepo) Create(_ context.Context, post *social.Post) error {
	r.posts[post.ID] = post
	r.order = append(r.order, post.ID)
	return nil
}

func (r *fakePostRepo) Save(_ context.Context, post *social.Post) error {
	if _, ok := r.posts[post.ID]; !ok {
		return shared.ErrNotFound
	}
	r.posts[post.ID] = post
	return nil
}

func (r *fakePostRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.posts[id]; !ok {
		return shared.ErrNotFound
	}
	delete(r.posts, id)
	return nil
}

func (r *fakePostRepo) FindByID(_ context.Context, id uuid.UUID) (*social.Post, error) {
	post, ok := r.posts[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return post, nil
}

func (r *fakePostRepo) FindAll(_ context.Context) ([]*social.Post, error) {
	var result []*social.Post
	for i := len(r.order) - 1; i >= 0; i-- {
		if post, ok := r.posts[r.order[i]]; ok {
			result = append(result, post)
		}
	}
	return result, nil
}

type fakeUserRepo struct {
	users map[uuid.UUID]*identity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*identity.User)}
}

func (r *fakeUserRepo) add(t *testing.T, name string) *identity.User {
	t.Helper()
	user, err := identity.NewUser(name, name+"@example.com", "correct-horse", "https://gravatar.com/avatar/"+name)
	require.NoError(t, err)
	r.users[user.ID] = user
	return user
}

func (r *fakeUserRepo) Create(_ context.Context, user *identity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*identity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*identity.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakeUserRepo) FindByIDs(_ context.Context, ids []uuid.UUID) ([]*identity.User, error) {
	var result []*identity.User
	for _, id := range ids {
		if user, ok := r.users[id]; ok {
			result = append(result, user)
		}
	}
	return result, nil
}

func newTestService(t *testing.T) (*PostService, *identity.User, *identity.User) {
	t.Helper()
	users := newFakeUserRepo()
	author := users.add(t, "ada")
	stranger := users.add(t, "grace")
	return NewPostService(newFakePostRepo(), users, zap.NewNop()), author, stranger
}

func TestPostService_Create(t *testing.T) {
	ctx := context.Background()
	svc, author, _ := newTestService(t)

	t.Run("stamps author snapshot", func(t *testing.T) {
		result, err := svc.Create(ctx, author.Identity(), "hello world")
		require.NoError(t, err)

		assert.Equal(t, author.ID, result.AuthorID)
		assert.Equal(t, author.Name, result.AuthorName)
		assert.Equal(t, author.Avatar, result.AuthorAvatar)
		assert.Empty(t, result.Comments)
		assert.Empty(t, result.Likes)
	})

	t.Run("unknown subject cannot post", func(t *testing.T) {
		_, err := svc.Create(ctx, shared.NewIdentity(uuid.New()), "hello")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("empty text is rejected", func(t *testing.T) {
		_, err := svc.Create(ctx, author.Identity(), "   ")
		assert.Error(t, err)
	})
}

func TestPostService_ListAndGet(t *testing.T) {
	ctx := context.Background()
	svc, author, _ := newTestService(t)

	first, err := svc.Create(ctx, author.Identity(), "first")
	require.NoError(t, err)
	second, err := svc.Create(ctx, author.Identity(), "second")
	require.NoError(t, err)

	t.Run("list is newest first", func(t *testing.T) {
		results, err := svc.List(ctx)
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, second.ID, results[0].ID)
		assert.Equal(t, first.ID, results[1].ID)
	})

	t.Run("get by id", func(t *testing.T) {
		result, err := svc.Get(ctx, first.ID)
		require.NoError(t, err)
		assert.Equal(t, "first", result.Text)
	})

	t.Run("unknown post is not found", func(t *testing.T) {
		_, err := svc.Get(ctx, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestPostService_EditAndDelete(t *testing.T) {
	ctx := context.Background()
	svc, author, stranger := newTestService(t)

	post, err := svc.Create(ctx, author.Identity(), "original")
	require.NoError(t, err)

	t.Run("author edits", func(t *testing.T) {
		result, err := svc.Edit(ctx, author.Identity(), post.ID, "edited")
		require.NoError(t, err)
		assert.Equal(t, "edited", result.Text)
	})

	t.Run("stranger cannot edit", func(t *testing.T) {
		_, err := svc.Edit(ctx, stranger.Identity(), post.ID, "hijacked")
		assert.ErrorIs(t, err, shared.ErrForbidden)
	})

	t.Run("stranger cannot delete", func(t *testing.T) {
		err := svc.Delete(ctx, stranger.Identity(), post.ID)
		assert.ErrorIs(t, err, shared.ErrForbidden)
	})

	t.Run("author deletes", func(t *testing.T) {
		require.NoError(t, svc.Delete(ctx, author.Identity(), post.ID))

		_, err := svc.Get(ctx, post.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestPostService_Likes(t *testing.T) {
	ctx := context.Background()
	svc, author, stranger := newTestService(t)

	post, err := svc.Create(ctx, author.Identity(), "like me")
	require.NoError(t, err)

	t.Run("like and unlike", func(t *testing.T) {
		result, err := svc.Like(ctx, stranger.Identity(), post.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, result.LikeCount)

		result, err = svc.Unlike(ctx, stranger.Identity(), post.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, result.LikeCount)
	})

	t.Run("double like conflicts", func(t *testing.T) {
		_, err := svc.Like(ctx, stranger.Identity(), post.ID)
		require.NoError(t, err)

		_, err = svc.Like(ctx, stranger.Identity(), post.ID)
		assert.ErrorIs(t, err, social.ErrAlreadyLiked)
	})

	t.Run("unlike without like conflicts", func(t *testing.T) {
		_, err := svc.Unlike(ctx, author.Identity(), post.ID)
		assert.ErrorIs(t, err, social.ErrNotLiked)
	})
}

func TestPostService_Comments(t *testing.T) {
	ctx := context.Background()
	svc, author, stranger := newTestService(t)

	post, err := svc.Create(ctx, author.Identity(), "discuss")
	require.NoError(t, err)

	result, err := svc.AddComment(ctx, stranger.Identity(), post.ID, "first!")
	require.NoError(t, err)
	require.Len(t, result.Comments, 1)
	commentID := result.Comments[0].ID

	t.Run("comment carries its own author snapshot", func(t *testing.T) {
		assert.Equal(t, stranger.ID, result.Comments[0].AuthorID)
		assert.Equal(t, stranger.Name, result.Comments[0].AuthorName)
	})

	t.Run("comment author edits own comment", func(t *testing.T) {
		result, err := svc.UpdateComment(ctx, stranger.Identity(), post.ID, commentID, "edited")
		require.NoError(t, err)
		assert.Equal(t, "edited", result.Comments[0].Text)
	})

	t.Run("post author cannot edit another's comment", func(t *testing.T) {
		_, err := svc.UpdateComment(ctx, author.Identity(), post.ID, commentID, "mine now")
		assert.ErrorIs(t, err, shared.ErrForbidden)
	})

	t.Run("absent comment is not found", func(t *testing.T) {
		_, err := svc.RemoveComment(ctx, author.Identity(), post.ID, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("comment author removes own comment", func(t *testing.T) {
		result, err := svc.RemoveComment(ctx, stranger.Identity(), post.ID, commentID)
		require.NoError(t, err)
		assert.Empty(t, result.Comments)
	})
}
