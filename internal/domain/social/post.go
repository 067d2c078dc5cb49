package social

import (
	"strings"
	"time"

	"github.com/devlink/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Like conflicts map to HTTP 409 at the boundary
var (
	ErrAlreadyLiked = shared.NewDomainError("ALREADY_LIKED", "Post already liked")
	ErrNotLiked     = shared.NewDomainError("NOT_LIKED", "Post has not been liked yet")
)

const maxPostLength = 5000

// Post is the aggregate root for the feed. Author name and avatar are
// denormalized at creation time so reads never join against users; they are
// a snapshot and do not follow later account changes.
type Post struct {
	shared.BaseAggregateRoot
	AuthorID     uuid.UUID
	AuthorName   string
	AuthorAvatar string
	Text         string
	Comments     []Comment
	Likes        []Like
}

// Comment is an embedded sub-record of a post. Unlike profile entries, a
// comment is owned by its own author, not by the post's author.
type Comment struct {
	ID           uuid.UUID
	AuthorID     uuid.UUID
	AuthorName   string
	AuthorAvatar string
	Text         string
	CreatedAt    time.Time
}

// CollectionKey returns the comment's key within the post's collection
func (c Comment) CollectionKey() uuid.UUID {
	return c.ID
}

// Like marks that a subject liked the post. It is keyed by the subject id,
// which makes the one-like-per-subject rule a duplicate-key check.
type Like struct {
	SubjectID uuid.UUID
	CreatedAt time.Time
}

// CollectionKey returns the liking subject's id
func (l Like) CollectionKey() uuid.UUID {
	return l.SubjectID
}

// Author carries the denormalized identity snapshot stamped onto posts and
// comments.
type Author struct {
	ID     uuid.UUID
	Name   string
	Avatar string
}

// NewPost creates a post authored by the given user
func NewPost(author Author, text string) (*Post, error) {
	if author.ID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_AUTHOR", "Post author is required")
	}
	text, err := validateText(text)
	if err != nil {
		return nil, err
	}

	return &Post{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		AuthorID:          author.ID,
		AuthorName:        author.Name,
		AuthorAvatar:      author.Avatar,
		Text:              text,
	}, nil
}

// Edit replaces the post text. Only the author may call it.
func (p *Post) Edit(actor shared.Identity, text string) error {
	if err := shared.RequireOwner(actor, p.AuthorID); err != nil {
		return err
	}
	text, err := validateText(text)
	if err != nil {
		return err
	}

	p.Text = text
	p.Touch()
	return nil
}

// AuthorizeDelete checks that the actor may delete the post. Deletion itself
// is a repository concern; the aggregate only gates it.
func (p *Post) AuthorizeDelete(actor shared.Identity) error {
	return shared.RequireOwner(actor, p.AuthorID)
}

// AddLike records that the actor liked the post. Liking is open to any
// authenticated subject; the only guard is idempotency, a second like by the
// same subject fails with ErrAlreadyLiked.
func (p *Post) AddLike(actor shared.Identity) error {
	updated, err := shared.InsertFront(p.Likes, Like{
		SubjectID: actor.SubjectID,
		CreatedAt: time.Now(),
	})
	if err != nil {
		return ErrAlreadyLiked
	}

	p.Likes = updated
	p.Touch()
	return nil
}

// RemoveLike withdraws the actor's like. Removing a like that was never
// placed fails with ErrNotLiked.
func (p *Post) RemoveLike(actor shared.Identity) error {
	updated, err := shared.RemoveByKey(p.Likes, actor.SubjectID)
	if err != nil {
		return ErrNotLiked
	}

	p.Likes = updated
	p.Touch()
	return nil
}

// LikedBy reports whether the subject currently likes the post
func (p *Post) LikedBy(subjectID uuid.UUID) bool {
	_, ok := shared.FindByKey(p.Likes, subjectID)
	return ok
}

// AddComment prepends a comment by the actor. Any authenticated subject may
// comment; the comment records the actor as its own author.
func (p *Post) AddComment(author Author, text string) (Comment, error) {
	if author.ID == uuid.Nil {
		return Comment{}, shared.NewDomainError("INVALID_AUTHOR", "Comment author is required")
	}
	text, err := validateText(text)
	if err != nil {
		return Comment{}, err
	}

	comment := Comment{
		ID:           uuid.New(),
		AuthorID:     author.ID,
		AuthorName:   author.Name,
		AuthorAvatar: author.Avatar,
		Text:         text,
		CreatedAt:    time.Now(),
	}

	updated, err := shared.InsertFront(p.Comments, comment)
	if err != nil {
		return Comment{}, err
	}

	p.Comments = updated
	p.Touch()
	return comment, nil
}

// UpdateComment replaces a comment's text in place. The comment is located
// first, so an absent key yields ErrNotFound even for strangers; a present
// comment may only be edited by its own author.
func (p *Post) UpdateComment(actor shared.Identity, commentID uuid.UUID, text string) error {
	comment, ok := shared.FindByKey(p.Comments, commentID)
	if !ok {
		return shared.ErrNotFound
	}
	if err := shared.RequireOwner(actor, comment.AuthorID); err != nil {
		return err
	}
	text, err := validateText(text)
	if err != nil {
		return err
	}

	updated, err := shared.ReplaceByKey(p.Comments, commentID, func(c Comment) Comment {
		c.Text = text
		return c
	})
	if err != nil {
		return err
	}

	p.Comments = updated
	p.Touch()
	return nil
}

// RemoveComment removes a comment. Same gating as UpdateComment: locate
// first, then check the comment's own author.
func (p *Post) RemoveComment(actor shared.Identity, commentID uuid.UUID) error {
	comment, ok := shared.FindByKey(p.Comments, commentID)
	if !ok {
		return shared.ErrNotFound
	}
	if err := shared.RequireOwner(actor, comment.AuthorID); err != nil {
		return err
	}

	updated, err := shared.RemoveByKey(p.Comments, commentID)
	if err != nil {
		return err
	}

	p.Comments = updated
	p.Touch()
	return nil
}

func validateText(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", shared.NewDomainError("INVALID_TEXT", "Text is required")
	}
	if len(text) > maxPostLength {
		return "", shared.NewDomainError("INVALID_TEXT", "Text cannot exceed 5000 characters")
	}
	return text, nil
}
