package social

import (
	"time"

	"github.com/devlink/backend/internal/domain/social"
	"github.com/google/uuid"
)

// CommentResult is the application-level view of a comment
type CommentResult struct {
	ID           uuid.UUID `json:"id"`
	AuthorID     uuid.UUID `json:"author_id"`
	AuthorName   string    `json:"author_name"`
	AuthorAvatar string    `json:"author_avatar,omitempty"`
	Text         string    `json:"text"`
	CreatedAt    time.Time `json:"created_at"`
}

// LikeResult identifies a subject that liked a post
type LikeResult struct {
	SubjectID uuid.UUID `json:"subject_id"`
	CreatedAt time.Time `json:"created_at"`
}

// PostResult is the application-level view of a post
type PostResult struct {
	ID           uuid.UUID       `json:"id"`
	AuthorID     uuid.UUID       `json:"author_id"`
	AuthorName   string          `json:"author_name"`
	AuthorAvatar string          `json:"author_avatar,omitempty"`
	Text         string          `json:"text"`
	Comments     []CommentResult `json:"comments"`
	Likes        []LikeResult    `json:"likes"`
	LikeCount    int             `json:"like_count"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func toPostResult(p *social.Post) PostResult {
	result := PostResult{
		ID:           p.ID,
		AuthorID:     p.AuthorID,
		AuthorName:   p.AuthorName,
		AuthorAvatar: p.AuthorAvatar,
		Text:         p.Text,
		Comments:     make([]CommentResult, len(p.Comments)),
		Likes:        make([]LikeResult, len(p.Likes)),
		LikeCount:    len(p.Likes),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}

	for i, c := range p.Comments {
		result.Comments[i] = CommentResult{
			ID:           c.ID,
			AuthorID:     c.AuthorID,
			AuthorName:   c.AuthorName,
			AuthorAvatar: c.AuthorAvatar,
			Text:         c.Text,
			CreatedAt:    c.CreatedAt,
		}
	}

	for i, l := range p.Likes {
		result.Likes[i] = LikeResult{
			SubjectID: l.SubjectID,
			CreatedAt: l.CreatedAt,
		}
	}

	return result
}

func toPostResults(posts []*social.Post) []PostResult {
	results := make([]PostResult, len(posts))
	for i, p := range posts {
		results[i] = toPostResult(p)
	}
	return results
}
