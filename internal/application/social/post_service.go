package social

import (
	"context"

	"github.com/devlink/backend/internal/domain/identity"
	"github.com/devlink/backend/internal/domain/shared"
	"github.com/devlink/backend/internal/domain/social"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PostService handles the feed. Every mutation is a single read-modify-write
// cycle against one post aggregate.
type PostService struct {
	postRepo social.PostRepository
	userRepo identity.UserRepository
	logger   *zap.Logger
}

// NewPostService creates a new post service
func NewPostService(
	postRepo social.PostRepository,
	userRepo identity.UserRepository,
	logger *zap.Logger,
) *PostService {
	return &PostService{
		postRepo: postRepo,
		userRepo: userRepo,
		logger:   logger,
	}
}

// Create publishes a new post. The author's name and avatar are stamped onto
// the post at this point.
func (s *PostService) Create(ctx context.Context, caller shared.Identity, text string) (*PostResult, error) {
	author, err := s.authorSnapshot(ctx, caller)
	if err != nil {
		return nil, err
	}

	post, err := social.NewPost(author, text)
	if err != nil {
		return nil, err
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	s.logger.Info("Post created",
		zap.String("post_id", post.ID.String()),
		zap.String("author_id", caller.SubjectID.String()))

	result := toPostResult(post)
	return &result, nil
}

// List returns all posts, newest first
func (s *PostService) List(ctx context.Context) ([]PostResult, error) {
	posts, err := s.postRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return toPostResults(posts), nil
}

// Get returns a single post by id
func (s *PostService) Get(ctx context.Context, postID uuid.UUID) (*PostResult, error) {
	post, err := s.postRepo.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	result := toPostResult(post)
	return &result, nil
}

// Edit replaces a post's text. Only the author may call it.
func (s *PostService) Edit(ctx context.Context, caller shared.Identity, postID uuid.UUID, text string) (*PostResult, error) {
	return s.mutate(ctx, postID, func(p *social.Post) error {
		return p.Edit(caller, text)
	})
}

// Delete removes a post, embedded comments and likes included. Only the
// author may call it.
func (s *PostService) Delete(ctx context.Context, caller shared.Identity, postID uuid.UUID) error {
	post, err := s.postRepo.FindByID(ctx, postID)
	if err != nil {
		return err
	}
	if err := post.AuthorizeDelete(caller); err != nil {
		return err
	}
	if err := s.postRepo.Delete(ctx, postID); err != nil {
		return err
	}

	s.logger.Info("Post deleted",
		zap.String("post_id", postID.String()),
		zap.String("author_id", caller.SubjectID.String()))
	return nil
}

// Like records the caller's like. A second like by the same caller fails
// with ALREADY_LIKED.
func (s *PostService) Like(ctx context.Context, caller shared.Identity, postID uuid.UUID) (*PostResult, error) {
	return s.mutate(ctx, postID, func(p *social.Post) error {
		return p.AddLike(caller)
	})
}

// Unlike withdraws the caller's like. Removing an absent like fails with
// NOT_LIKED.
func (s *PostService) Unlike(ctx context.Context, caller shared.Identity, postID uuid.UUID) (*PostResult, error) {
	return s.mutate(ctx, postID, func(p *social.Post) error {
		return p.RemoveLike(caller)
	})
}

// AddComment prepends a comment by the caller, stamped with the caller's
// current name and avatar.
func (s *PostService) AddComment(ctx context.Context, caller shared.Identity, postID uuid.UUID, text string) (*PostResult, error) {
	author, err := s.authorSnapshot(ctx, caller)
	if err != nil {
		return nil, err
	}

	return s.mutate(ctx, postID, func(p *social.Post) error {
		_, err := p.AddComment(author, text)
		return err
	})
}

// UpdateComment replaces a comment's text. Only the comment's own author may
// call it.
func (s *PostService) UpdateComment(ctx context.Context, caller shared.Identity, postID, commentID uuid.UUID, text string) (*PostResult, error) {
	return s.mutate(ctx, postID, func(p *social.Post) error {
		return p.UpdateComment(caller, commentID, text)
	})
}

// RemoveComment removes a comment. Only the comment's own author may call it.
func (s *PostService) RemoveComment(ctx context.Context, caller shared.Identity, postID, commentID uuid.UUID) (*PostResult, error) {
	return s.mutate(ctx, postID, func(p *social.Post) error {
		return p.RemoveComment(caller, commentID)
	})
}

func (s *PostService) mutate(ctx context.Context, postID uuid.UUID, fn func(*social.Post) error) (*PostResult, error) {
	post, err := s.postRepo.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if err := fn(post); err != nil {
		return nil, err
	}
	if err := s.postRepo.Save(ctx, post); err != nil {
		return nil, err
	}
	result := toPostResult(post)
	return &result, nil
}

func (s *PostService) authorSnapshot(ctx context.Context, caller shared.Identity) (social.Author, error) {
	user, err := s.userRepo.FindByID(ctx, caller.SubjectID)
	if err != nil {
		return social.Author{}, err
	}
	return social.Author{
		ID:     user.ID,
		Name:   user.Name,
		Avatar: user.Avatar,
	}, nil
}
