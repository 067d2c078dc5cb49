package profile

import (
	"strings"

	"github.com/devlink/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Profile is the aggregate root for a user's public profile. A user has at
// most one profile; OwnerID records the owning subject and gates every
// mutation. Experience and education entries are embedded, newest first.
type Profile struct {
	shared.BaseAggregateRoot
	OwnerID        uuid.UUID
	Status         string
	Company        string
	Website        string
	Location       string
	Bio            string
	GithubUsername string
	Skills         []string
	Social         SocialLinks
	Experience     []Experience
	Education      []Education
}

// SocialLinks holds optional links to external social accounts
type SocialLinks struct {
	Youtube   string
	Twitter   string
	Facebook  string
	Linkedin  string
	Instagram string
}

// Details holds the scalar profile fields set on create and upsert
type Details struct {
	Status         string
	Company        string
	Website        string
	Location       string
	Bio            string
	GithubUsername string
	Skills         []string
	Social         SocialLinks
}

// NewProfile creates a profile owned by the given subject
func NewProfile(ownerID uuid.UUID, details Details) (*Profile, error) {
	if ownerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_OWNER", "Profile owner is required")
	}

	p := &Profile{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		OwnerID:           ownerID,
	}
	if err := p.applyDetails(details); err != nil {
		return nil, err
	}
	return p, nil
}

// UpdateDetails replaces the scalar profile fields. Only the owner may call
// it.
func (p *Profile) UpdateDetails(actor shared.Identity, details Details) error {
	if err := shared.RequireOwner(actor, p.OwnerID); err != nil {
		return err
	}
	if err := p.applyDetails(details); err != nil {
		return err
	}
	p.Touch()
	return nil
}

func (p *Profile) applyDetails(details Details) error {
	status := strings.TrimSpace(details.Status)
	if status == "" {
		return shared.NewDomainError("INVALID_PROFILE", "Status is required")
	}
	skills := normalizeSkills(details.Skills)
	if len(skills) == 0 {
		return shared.NewDomainError("INVALID_PROFILE", "At least one skill is required")
	}

	p.Status = status
	p.Company = strings.TrimSpace(details.Company)
	p.Website = strings.TrimSpace(details.Website)
	p.Location = strings.TrimSpace(details.Location)
	p.Bio = strings.TrimSpace(details.Bio)
	p.GithubUsername = strings.TrimSpace(details.GithubUsername)
	p.Skills = skills
	p.Social = details.Social
	return nil
}

func normalizeSkills(skills []string) []string {
	result := make([]string, 0, len(skills))
	for _, s := range skills {
		s = strings.TrimSpace(s)
		if s != "" {
			result = append(result, s)
		}
	}
	return result
}

// AddExperience prepends a new experience entry. Only the owner may call it;
// entries inherit the profile's owner.
func (p *Profile) AddExperience(actor shared.Identity, details ExperienceDetails) (Experience, error) {
	if err := shared.RequireOwner(actor, p.OwnerID); err != nil {
		return Experience{}, err
	}

	entry, err := NewExperience(details)
	if err != nil {
		return Experience{}, err
	}

	updated, err := shared.InsertFront(p.Experience, entry)
	if err != nil {
		return Experience{}, err
	}

	p.Experience = updated
	p.Touch()
	return entry, nil
}

// UpdateExperience overwrites the entry's mutable fields in place, keeping
// its position. Only the owner may call it; the ownership check runs before
// the entry lookup, so a non-owner gets ErrForbidden even for absent keys.
func (p *Profile) UpdateExperience(actor shared.Identity, entryID uuid.UUID, details ExperienceDetails) error {
	if err := shared.RequireOwner(actor, p.OwnerID); err != nil {
		return err
	}
	if err := validateExperience(details); err != nil {
		return err
	}

	updated, err := shared.ReplaceByKey(p.Experience, entryID, func(e Experience) Experience {
		e.Title = strings.TrimSpace(details.Title)
		e.Company = strings.TrimSpace(details.Company)
		e.Location = strings.TrimSpace(details.Location)
		e.From = details.From
		e.To = details.To
		e.Current = details.Current
		e.Description = details.Description
		return e
	})
	if err != nil {
		return err
	}

	p.Experience = updated
	p.Touch()
	return nil
}

// RemoveExperience removes the entry with the given key. Only the owner may
// call it.
func (p *Profile) RemoveExperience(actor shared.Identity, entryID uuid.UUID) error {
	if err := shared.RequireOwner(actor, p.OwnerID); err != nil {
		return err
	}

	updated, err := shared.RemoveByKey(p.Experience, entryID)
	if err != nil {
		return err
	}

	p.Experience = updated
	p.Touch()
	return nil
}

// AddEducation prepends a new education entry. Only the owner may call it.
func (p *Profile) AddEducation(actor shared.Identity, details EducationDetails) (Education, error) {
	if err := shared.RequireOwner(actor, p.OwnerID); err != nil {
		return Education{}, err
	}

	entry, err := NewEducation(details)
	if err != nil {
		return Education{}, err
	}

	updated, err := shared.InsertFront(p.Education, entry)
	if err != nil {
		return Education{}, err
	}

	p.Education = updated
	p.Touch()
	return entry, nil
}

// UpdateEducation overwrites the entry's mutable fields in place, keeping
// its position. Only the owner may call it.
func (p *Profile) UpdateEducation(actor shared.Identity, entryID uuid.UUID, details EducationDetails) error {
	if err := shared.RequireOwner(actor, p.OwnerID); err != nil {
		return err
	}
	if err := validateEducation(details); err != nil {
		return err
	}

	updated, err := shared.ReplaceByKey(p.Education, entryID, func(e Education) Education {
		e.School = strings.TrimSpace(details.School)
		e.Degree = strings.TrimSpace(details.Degree)
		e.FieldOfStudy = strings.TrimSpace(details.FieldOfStudy)
		e.From = details.From
		e.To = details.To
		e.Current = details.Current
		e.Description = details.Description
		return e
	})
	if err != nil {
		return err
	}

	p.Education = updated
	p.Touch()
	return nil
}

// RemoveEducation removes the entry with the given key. Only the owner may
// call it.
func (p *Profile) RemoveEducation(actor shared.Identity, entryID uuid.UUID) error {
	if err := shared.RequireOwner(actor, p.OwnerID); err != nil {
		return err
	}

	updated, err := shared.RemoveByKey(p.Education, entryID)
	if err != nil {
		return err
	}

	p.Education = updated
	p.Touch()
	return nil
}
