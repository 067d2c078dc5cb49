package models

import (
	"time"

	"github.com/devlink/backend/internal/domain/social"
	"github.com/google/uuid"
)

// PostModel is the persistence model for the Post aggregate root.
type PostModel struct {
	AggregateModel
	AuthorID     uuid.UUID `gorm:"type:uuid;not null;index"`
	AuthorName   string    `gorm:"type:varchar(100);not null"`
	AuthorAvatar string    `gorm:"type:varchar(500)"`
	Text         string    `gorm:"type:text;not null"`
}

// TableName returns the table name for GORM
func (PostModel) TableName() string {
	return "posts"
}

// CommentModel is the persistence model for an embedded comment.
type CommentModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	PostID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Ordinal      int       `gorm:"not null"`
	AuthorID     uuid.UUID `gorm:"type:uuid;not null;index"`
	AuthorName   string    `gorm:"type:varchar(100);not null"`
	AuthorAvatar string    `gorm:"type:varchar(500)"`
	Text         string    `gorm:"type:text;not null"`
	CreatedAt    time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (CommentModel) TableName() string {
	return "post_comments"
}

// LikeModel is the persistence model for an embedded like. A subject may
// like a post at most once, enforced by the composite primary key.
type LikeModel struct {
	PostID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	SubjectID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Ordinal   int       `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (LikeModel) TableName() string {
	return "post_likes"
}

// ToDomain converts the persistence model and its child rows to a domain
// Post aggregate. Child rows must already be sorted by ordinal.
func (m *PostModel) ToDomain(comments []CommentModel, likes []LikeModel) *social.Post {
	p := &social.Post{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		AuthorID:          m.AuthorID,
		AuthorName:        m.AuthorName,
		AuthorAvatar:      m.AuthorAvatar,
		Text:              m.Text,
	}

	p.Comments = make([]social.Comment, len(comments))
	for i, c := range comments {
		p.Comments[i] = social.Comment{
			ID:           c.ID,
			AuthorID:     c.AuthorID,
			AuthorName:   c.AuthorName,
			AuthorAvatar: c.AuthorAvatar,
			Text:         c.Text,
			CreatedAt:    c.CreatedAt,
		}
	}

	p.Likes = make([]social.Like, len(likes))
	for i, l := range likes {
		p.Likes[i] = social.Like{
			SubjectID: l.SubjectID,
			CreatedAt: l.CreatedAt,
		}
	}

	return p
}

// FromDomain populates the persistence model from a domain Post aggregate.
func (m *PostModel) FromDomain(p *social.Post) {
	m.FromDomainAggregateRoot(p.BaseAggregateRoot)
	m.AuthorID = p.AuthorID
	m.AuthorName = p.AuthorName
	m.AuthorAvatar = p.AuthorAvatar
	m.Text = p.Text
}

// PostModelFromDomain creates a new persistence model from a domain Post
// aggregate.
func PostModelFromDomain(p *social.Post) *PostModel {
	m := &PostModel{}
	m.FromDomain(p)
	return m
}

// CommentModelsFromDomain flattens the aggregate's comments to child rows,
// recording their position in the ordinal column.
func CommentModelsFromDomain(p *social.Post) []CommentModel {
	rows := make([]CommentModel, len(p.Comments))
	for i, c := range p.Comments {
		rows[i] = CommentModel{
			ID:           c.ID,
			PostID:       p.ID,
			Ordinal:      i,
			AuthorID:     c.AuthorID,
			AuthorName:   c.AuthorName,
			AuthorAvatar: c.AuthorAvatar,
			Text:         c.Text,
			CreatedAt:    c.CreatedAt,
		}
	}
	return rows
}

// LikeModelsFromDomain flattens the aggregate's likes to child rows,
// recording their position in the ordinal column.
func LikeModelsFromDomain(p *social.Post) []LikeModel {
	rows := make([]LikeModel, len(p.Likes))
	for i, l := range p.Likes {
		rows[i] = LikeModel{
			PostID:    p.ID,
			SubjectID: l.SubjectID,
			Ordinal:   i,
			CreatedAt: l.CreatedAt,
		}
	}
	return rows
}
