package profile

import (
	"time"

	"github.com/devlink/backend/internal/domain/profile"
	"github.com/google/uuid"
)

// UpsertProfileInput contains the scalar profile fields
type UpsertProfileInput struct {
	Status         string
	Company        string
	Website        string
	Location       string
	Bio            string
	GithubUsername string
	Skills         []string
	Youtube        string
	Twitter        string
	Facebook       string
	Linkedin       string
	Instagram      string
}

// EntryInput contains the fields shared by experience and education entries
type EntryInput struct {
	Title        string
	Company      string
	School       string
	Degree       string
	FieldOfStudy string
	Location     string
	From         time.Time
	To           *time.Time
	Current      bool
	Description  string
}

// EntryResult is the application-level view of an embedded entry
type EntryResult struct {
	ID           uuid.UUID  `json:"id"`
	Title        string     `json:"title,omitempty"`
	Company      string     `json:"company,omitempty"`
	School       string     `json:"school,omitempty"`
	Degree       string     `json:"degree,omitempty"`
	FieldOfStudy string     `json:"field_of_study,omitempty"`
	Location     string     `json:"location,omitempty"`
	From         time.Time  `json:"from"`
	To           *time.Time `json:"to,omitempty"`
	Current      bool       `json:"current"`
	Description  string     `json:"description,omitempty"`
}

// SocialLinksResult mirrors the profile's social links
type SocialLinksResult struct {
	Youtube   string `json:"youtube,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Linkedin  string `json:"linkedin,omitempty"`
	Instagram string `json:"instagram,omitempty"`
}

// ProfileResult is the application-level view of a profile. User name and
// avatar are joined in from the identity side for display.
type ProfileResult struct {
	ID             uuid.UUID         `json:"id"`
	UserID         uuid.UUID         `json:"user_id"`
	UserName       string            `json:"user_name,omitempty"`
	UserAvatar     string            `json:"user_avatar,omitempty"`
	Status         string            `json:"status"`
	Company        string            `json:"company,omitempty"`
	Website        string            `json:"website,omitempty"`
	Location       string            `json:"location,omitempty"`
	Bio            string            `json:"bio,omitempty"`
	GithubUsername string            `json:"github_username,omitempty"`
	Skills         []string          `json:"skills"`
	Social         SocialLinksResult `json:"social"`
	Experience     []EntryResult     `json:"experience"`
	Education      []EntryResult     `json:"education"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

func toProfileResult(p *profile.Profile) ProfileResult {
	result := ProfileResult{
		ID:             p.ID,
		UserID:         p.OwnerID,
		Status:         p.Status,
		Company:        p.Company,
		Website:        p.Website,
		Location:       p.Location,
		Bio:            p.Bio,
		GithubUsername: p.GithubUsername,
		Skills:         p.Skills,
		Social: SocialLinksResult{
			Youtube:   p.Social.Youtube,
			Twitter:   p.Social.Twitter,
			Facebook:  p.Social.Facebook,
			Linkedin:  p.Social.Linkedin,
			Instagram: p.Social.Instagram,
		},
		Experience: make([]EntryResult, len(p.Experience)),
		Education:  make([]EntryResult, len(p.Education)),
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}

	for i, e := range p.Experience {
		result.Experience[i] = EntryResult{
			ID:          e.ID,
			Title:       e.Title,
			Company:     e.Company,
			Location:    e.Location,
			From:        e.From,
			To:          e.To,
			Current:     e.Current,
			Description: e.Description,
		}
	}

	for i, e := range p.Education {
		result.Education[i] = EntryResult{
			ID:           e.ID,
			School:       e.School,
			Degree:       e.Degree,
			FieldOfStudy: e.FieldOfStudy,
			From:         e.From,
			To:           e.To,
			Current:      e.Current,
			Description:  e.Description,
		}
	}

	return result
}
