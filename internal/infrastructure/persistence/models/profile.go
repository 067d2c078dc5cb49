package models

import (
	"time"

	"github.com/devlink/backend/internal/domain/profile"
	"github.com/google/uuid"
)

// ProfileModel is the persistence model for the Profile aggregate root.
// Embedded entries live in their own tables, ordered by an ordinal column
// so the newest-first ordering survives the round trip.
type ProfileModel struct {
	AggregateModel
	OwnerID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Status          string    `gorm:"type:varchar(200);not null"`
	Company         string    `gorm:"type:varchar(200)"`
	Website         string    `gorm:"type:varchar(500)"`
	Location        string    `gorm:"type:varchar(200)"`
	Bio             string    `gorm:"type:text"`
	GithubUsername  string    `gorm:"type:varchar(100)"`
	Skills          []string  `gorm:"serializer:json;type:text"`
	SocialYoutube   string    `gorm:"type:varchar(500)"`
	SocialTwitter   string    `gorm:"type:varchar(500)"`
	SocialFacebook  string    `gorm:"type:varchar(500)"`
	SocialLinkedin  string    `gorm:"type:varchar(500)"`
	SocialInstagram string    `gorm:"type:varchar(500)"`
}

// TableName returns the table name for GORM
func (ProfileModel) TableName() string {
	return "profiles"
}

// ExperienceModel is the persistence model for an embedded experience entry.
type ExperienceModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	ProfileID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Ordinal     int       `gorm:"not null"`
	Title       string    `gorm:"type:varchar(200);not null"`
	Company     string    `gorm:"type:varchar(200);not null"`
	Location    string    `gorm:"type:varchar(200)"`
	FromDate    time.Time `gorm:"not null"`
	ToDate      *time.Time
	Current     bool      `gorm:"not null;default:false"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (ExperienceModel) TableName() string {
	return "profile_experience"
}

// EducationModel is the persistence model for an embedded education entry.
type EducationModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	ProfileID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Ordinal      int       `gorm:"not null"`
	School       string    `gorm:"type:varchar(200);not null"`
	Degree       string    `gorm:"type:varchar(200);not null"`
	FieldOfStudy string    `gorm:"type:varchar(200);not null"`
	FromDate     time.Time `gorm:"not null"`
	ToDate       *time.Time
	Current      bool      `gorm:"not null;default:false"`
	Description  string    `gorm:"type:text"`
	CreatedAt    time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (EducationModel) TableName() string {
	return "profile_education"
}

// ToDomain converts the persistence model and its child rows to a domain
// Profile aggregate. Child rows must already be sorted by ordinal.
func (m *ProfileModel) ToDomain(experience []ExperienceModel, education []EducationModel) *profile.Profile {
	p := &profile.Profile{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		OwnerID:           m.OwnerID,
		Status:            m.Status,
		Company:           m.Company,
		Website:           m.Website,
		Location:          m.Location,
		Bio:               m.Bio,
		GithubUsername:    m.GithubUsername,
		Skills:            m.Skills,
		Social: profile.SocialLinks{
			Youtube:   m.SocialYoutube,
			Twitter:   m.SocialTwitter,
			Facebook:  m.SocialFacebook,
			Linkedin:  m.SocialLinkedin,
			Instagram: m.SocialInstagram,
		},
	}

	p.Experience = make([]profile.Experience, len(experience))
	for i, e := range experience {
		p.Experience[i] = profile.Experience{
			ID:          e.ID,
			Title:       e.Title,
			Company:     e.Company,
			Location:    e.Location,
			From:        e.FromDate,
			To:          e.ToDate,
			Current:     e.Current,
			Description: e.Description,
			CreatedAt:   e.CreatedAt,
		}
	}

	p.Education = make([]profile.Education, len(education))
	for i, e := range education {
		p.Education[i] = profile.Education{
			ID:           e.ID,
			School:       e.School,
			Degree:       e.Degree,
			FieldOfStudy: e.FieldOfStudy,
			From:         e.FromDate,
			To:           e.ToDate,
			Current:      e.Current,
			Description:  e.Description,
			CreatedAt:    e.CreatedAt,
		}
	}

	return p
}

// FromDomain populates the persistence model from a domain Profile aggregate.
func (m *ProfileModel) FromDomain(p *profile.Profile) {
	m.FromDomainAggregateRoot(p.BaseAggregateRoot)
	m.OwnerID = p.OwnerID
	m.Status = p.Status
	m.Company = p.Company
	m.Website = p.Website
	m.Location = p.Location
	m.Bio = p.Bio
	m.GithubUsername = p.GithubUsername
	m.Skills = p.Skills
	m.SocialYoutube = p.Social.Youtube
	m.SocialTwitter = p.Social.Twitter
	m.SocialFacebook = p.Social.Facebook
	m.SocialLinkedin = p.Social.Linkedin
	m.SocialInstagram = p.Social.Instagram
}

// ProfileModelFromDomain creates a new persistence model from a domain
// Profile aggregate.
func ProfileModelFromDomain(p *profile.Profile) *ProfileModel {
	m := &ProfileModel{}
	m.FromDomain(p)
	return m
}

// ExperienceModelsFromDomain flattens the aggregate's experience entries to
// child rows, recording their position in the ordinal column.
func ExperienceModelsFromDomain(p *profile.Profile) []ExperienceModel {
	rows := make([]ExperienceModel, len(p.Experience))
	for i, e := range p.Experience {
		rows[i] = ExperienceModel{
			ID:          e.ID,
			ProfileID:   p.ID,
			Ordinal:     i,
			Title:       e.Title,
			Company:     e.Company,
			Location:    e.Location,
			FromDate:    e.From,
			ToDate:      e.To,
			Current:     e.Current,
			Description: e.Description,
			CreatedAt:   e.CreatedAt,
		}
	}
	return rows
}

// EducationModelsFromDomain flattens the aggregate's education entries to
// child rows, recording their position in the ordinal column.
func EducationModelsFromDomain(p *profile.Profile) []EducationModel {
	rows := make([]EducationModel, len(p.Education))
	for i, e := range p.Education {
		rows[i] = EducationModel{
			ID:           e.ID,
			ProfileID:    p.ID,
			Ordinal:      i,
			School:       e.School,
			Degree:       e.Degree,
			FieldOfStudy: e.FieldOfStudy,
			FromDate:     e.From,
			ToDate:       e.To,
			Current:      e.Current,
			Description:  e.Description,
			CreatedAt:    e.CreatedAt,
		}
	}
	return rows
}
