package profile

import (
	"strings"
	"time"

	"github.com/devlink/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Experience is an ordered sub-record of a profile. Entries carry no owner
// of their own; they inherit the profile's owner.
type Experience struct {
	ID          uuid.UUID
	Title       string
	Company     string
	Location    string
	From        time.Time
	To          *time.Time
	Current     bool
	Description string
	CreatedAt   time.Time
}

// CollectionKey returns the entry's key within the profile's collection
func (e Experience) CollectionKey() uuid.UUID {
	return e.ID
}

// ExperienceDetails holds the mutable fields of an experience entry
type ExperienceDetails struct {
	Title       string
	Company     string
	Location    string
	From        time.Time
	To          *time.Time
	Current     bool
	Description string
}

// NewExperience creates an experience entry with a fresh key
func NewExperience(details ExperienceDetails) (Experience, error) {
	if err := validateExperience(details); err != nil {
		return Experience{}, err
	}

	return Experience{
		ID:          uuid.New(),
		Title:       strings.TrimSpace(details.Title),
		Company:     strings.TrimSpace(details.Company),
		Location:    strings.TrimSpace(details.Location),
		From:        details.From,
		To:          details.To,
		Current:     details.Current,
		Description: details.Description,
		CreatedAt:   time.Now(),
	}, nil
}

func validateExperience(details ExperienceDetails) error {
	if strings.TrimSpace(details.Title) == "" {
		return shared.NewDomainError("INVALID_EXPERIENCE", "Title is required")
	}
	if strings.TrimSpace(details.Company) == "" {
		return shared.NewDomainError("INVALID_EXPERIENCE", "Company is required")
	}
	return validateDateRange(details.From, details.To)
}

// Education is an ordered sub-record of a profile, gated the same way as
// experience entries.
type Education struct {
	ID           uuid.UUID
	School       string
	Degree       string
	FieldOfStudy string
	From         time.Time
	To           *time.Time
	Current      bool
	Description  string
	CreatedAt    time.Time
}

// CollectionKey returns the entry's key within the profile's collection
func (e Education) CollectionKey() uuid.UUID {
	return e.ID
}

// EducationDetails holds the mutable fields of an education entry
type EducationDetails struct {
	School       string
	Degree       string
	FieldOfStudy string
	From         time.Time
	To           *time.Time
	Current      bool
	Description  string
}

// NewEducation creates an education entry with a fresh key
func NewEducation(details EducationDetails) (Education, error) {
	if err := validateEducation(details); err != nil {
		return Education{}, err
	}

	return Education{
		ID:           uuid.New(),
		School:       strings.TrimSpace(details.School),
		Degree:       strings.TrimSpace(details.Degree),
		FieldOfStudy: strings.TrimSpace(details.FieldOfStudy),
		From:         details.From,
		To:           details.To,
		Current:      details.Current,
		Description:  details.Description,
		CreatedAt:    time.Now(),
	}, nil
}

func validateEducation(details EducationDetails) error {
	if strings.TrimSpace(details.School) == "" {
		return shared.NewDomainError("INVALID_EDUCATION", "School is required")
	}
	if strings.TrimSpace(details.Degree) == "" {
		return shared.NewDomainError("INVALID_EDUCATION", "Degree is required")
	}
	if strings.TrimSpace(details.FieldOfStudy) == "" {
		return shared.NewDomainError("INVALID_EDUCATION", "Field of study is required")
	}
	return validateDateRange(details.From, details.To)
}

func validateDateRange(from time.Time, to *time.Time) error {
	if from.IsZero() {
		return shared.NewDomainError("INVALID_DATE_RANGE", "From date is required")
	}
	if to != nil && !to.After(from) {
		return shared.NewDomainError("INVALID_DATE_RANGE", "To date must be after from date")
	}
	return nil
}
