package profile

import (
	"context"
	"errors"

	"github.com/devlink/backend/internal/domain/identity"
	"github.com/devlink/backend/internal/domain/profile"
	"github.com/devlink/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ProfileService handles profile reads and the single read-modify-write cycle
// every mutation performs against the aggregate.
type ProfileService struct {
	profileRepo profile.ProfileRepository
	userRepo    identity.UserRepository
	logger      *zap.Logger
}

// NewProfileService creates a new profile service
func NewProfileService(
	profileRepo profile.ProfileRepository,
	userRepo identity.UserRepository,
	logger *zap.Logger,
) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

// Upsert creates the caller's profile if absent, otherwise replaces its
// scalar fields. Embedded entries are untouched on update.
func (s *ProfileService) Upsert(ctx context.Context, caller shared.Identity, input UpsertProfileInput) (*ProfileResult, error) {
	details := toDetails(input)

	existing, err := s.profileRepo.FindByOwner(ctx, caller.SubjectID)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}

		created, err := profile.NewProfile(caller.SubjectID, details)
		if err != nil {
			return nil, err
		}
		if err := s.profileRepo.Create(ctx, created); err != nil {
			return nil, err
		}

		s.logger.Info("Profile created",
			zap.String("profile_id", created.ID.String()),
			zap.String("owner_id", caller.SubjectID.String()))

		return s.enrichOne(ctx, created), nil
	}

	if err := existing.UpdateDetails(caller, details); err != nil {
		return nil, err
	}
	if err := s.profileRepo.Save(ctx, existing); err != nil {
		return nil, err
	}

	return s.enrichOne(ctx, existing), nil
}

// MyProfile returns the caller's profile, or shared.ErrNotFound if none
// exists yet.
func (s *ProfileService) MyProfile(ctx context.Context, caller shared.Identity) (*ProfileResult, error) {
	p, err := s.profileRepo.FindByOwner(ctx, caller.SubjectID)
	if err != nil {
		return nil, err
	}
	return s.enrichOne(ctx, p), nil
}

// GetByUser returns the profile owned by the given user
func (s *ProfileService) GetByUser(ctx context.Context, userID uuid.UUID) (*ProfileResult, error) {
	p, err := s.profileRepo.FindByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.enrichOne(ctx, p), nil
}

// List returns all profiles with owner name and avatar joined in
func (s *ProfileService) List(ctx context.Context) ([]ProfileResult, error) {
	profiles, err := s.profileRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	ownerIDs := make([]uuid.UUID, len(profiles))
	for i, p := range profiles {
		ownerIDs[i] = p.OwnerID
	}
	owners := s.lookupOwners(ctx, ownerIDs)

	results := make([]ProfileResult, len(profiles))
	for i, p := range profiles {
		result := toProfileResult(p)
		if owner, ok := owners[p.OwnerID]; ok {
			result.UserName = owner.Name
			result.UserAvatar = owner.Avatar
		}
		results[i] = result
	}
	return results, nil
}

// AddExperience prepends an experience entry to the caller's profile
func (s *ProfileService) AddExperience(ctx context.Context, caller shared.Identity, input EntryInput) (*ProfileResult, error) {
	return s.mutate(ctx, caller, func(p *profile.Profile) error {
		_, err := p.AddExperience(caller, toExperienceDetails(input))
		return err
	})
}

// UpdateExperience overwrites an experience entry in place
func (s *ProfileService) UpdateExperience(ctx context.Context, caller shared.Identity, entryID uuid.UUID, input EntryInput) (*ProfileResult, error) {
	return s.mutate(ctx, caller, func(p *profile.Profile) error {
		return p.UpdateExperience(caller, entryID, toExperienceDetails(input))
	})
}

// RemoveExperience removes an experience entry from the caller's profile
func (s *ProfileService) RemoveExperience(ctx context.Context, caller shared.Identity, entryID uuid.UUID) (*ProfileResult, error) {
	return s.mutate(ctx, caller, func(p *profile.Profile) error {
		return p.RemoveExperience(caller, entryID)
	})
}

// AddEducation prepends an education entry to the caller's profile
func (s *ProfileService) AddEducation(ctx context.Context, caller shared.Identity, input EntryInput) (*ProfileResult, error) {
	return s.mutate(ctx, caller, func(p *profile.Profile) error {
		_, err := p.AddEducation(caller, toEducationDetails(input))
		return err
	})
}

// UpdateEducation overwrites an education entry in place
func (s *ProfileService) UpdateEducation(ctx context.Context, caller shared.Identity, entryID uuid.UUID, input EntryInput) (*ProfileResult, error) {
	return s.mutate(ctx, caller, func(p *profile.Profile) error {
		return p.UpdateEducation(caller, entryID, toEducationDetails(input))
	})
}

// RemoveEducation removes an education entry from the caller's profile
func (s *ProfileService) RemoveEducation(ctx context.Context, caller shared.Identity, entryID uuid.UUID) (*ProfileResult, error) {
	return s.mutate(ctx, caller, func(p *profile.Profile) error {
		return p.RemoveEducation(caller, entryID)
	})
}

// DeleteOwn removes the caller's profile. Missing profiles are a no-op.
func (s *ProfileService) DeleteOwn(ctx context.Context, caller shared.Identity) error {
	return s.profileRepo.DeleteByOwner(ctx, caller.SubjectID)
}

// mutate loads the caller's profile, applies fn and saves the result. Each
// request performs exactly one such cycle.
func (s *ProfileService) mutate(ctx context.Context, caller shared.Identity, fn func(*profile.Profile) error) (*ProfileResult, error) {
	p, err := s.profileRepo.FindByOwner(ctx, caller.SubjectID)
	if err != nil {
		return nil, err
	}
	if err := fn(p); err != nil {
		return nil, err
	}
	if err := s.profileRepo.Save(ctx, p); err != nil {
		return nil, err
	}
	return s.enrichOne(ctx, p), nil
}

func (s *ProfileService) enrichOne(ctx context.Context, p *profile.Profile) *ProfileResult {
	result := toProfileResult(p)
	if owner, ok := s.lookupOwners(ctx, []uuid.UUID{p.OwnerID})[p.OwnerID]; ok {
		result.UserName = owner.Name
		result.UserAvatar = owner.Avatar
	}
	return &result
}

// lookupOwners resolves users for display enrichment. Lookup failures only
// degrade the response, they never fail it.
func (s *ProfileService) lookupOwners(ctx context.Context, ids []uuid.UUID) map[uuid.UUID]*identity.User {
	users, err := s.userRepo.FindByIDs(ctx, ids)
	if err != nil {
		s.logger.Warn("Owner lookup failed", zap.Error(err))
		return nil
	}
	byID := make(map[uuid.UUID]*identity.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}
	return byID
}

func toDetails(input UpsertProfileInput) profile.Details {
	return profile.Details{
		Status:         input.Status,
		Company:        input.Company,
		Website:        input.Website,
		Location:       input.Location,
		Bio:            input.Bio,
		GithubUsername: input.GithubUsername,
		Skills:         input.Skills,
		Social: profile.SocialLinks{
			Youtube:   input.Youtube,
			Twitter:   input.Twitter,
			Facebook:  input.Facebook,
			Linkedin:  input.Linkedin,
			Instagram: input.Instagram,
		},
	}
}

func toExperienceDetails(input EntryInput) profile.ExperienceDetails {
	return profile.ExperienceDetails{
		Title:       input.Title,
		Company:     input.Company,
		Location:    input.Location,
		From:        input.From,
		To:          input.To,
		Current:     input.Current,
		Description: input.Description,
	}
}

func toEducationDetails(input EntryInput) profile.EducationDetails {
	return profile.EducationDetails{
		School:       input.School,
		Degree:       input.Degree,
		FieldOfStudy: input.FieldOfStudy,
		From:         input.From,
		To:           input.To,
		Current:      input.Current,
		Description:  input.Description,
	}
}
