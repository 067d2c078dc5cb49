package identity

import (
	"context"
	"errors"

	"github.com/devlink/backend/internal/domain/identity"
	"github.com/devlink/backend/internal/domain/shared"
	"github.com/devlink/backend/internal/infrastructure/auth"
	"go.uber.org/zap"
)

// AvatarResolver derives an avatar URL from an email address
type AvatarResolver interface {
	URLFor(email string) string
}

// AuthService handles registration and authentication
type AuthService struct {
	userRepo identity.UserRepository
	tokens   *auth.TokenService
	avatars  AvatarResolver
	logger   *zap.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(
	userRepo identity.UserRepository,
	tokens *auth.TokenService,
	avatars AvatarResolver,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
		avatars:  avatars,
		logger:   logger,
	}
}

// Register creates an account and signs the caller in. The avatar URL is
// derived from the email once, at registration.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	if _, err := s.userRepo.FindByEmail(ctx, input.Email); err == nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Email is already registered")
	} else if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	user, err := identity.NewUser(input.Name, input.Email, input.Password, s.avatars.URLFor(input.Email))
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Email is already registered")
		}
		return nil, err
	}

	s.logger.Info("User registered", zap.String("user_id", user.ID.String()))

	return s.issueFor(user)
}

// Login authenticates by email and password. Unknown email and wrong
// password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")
		}
		return nil, err
	}

	if !user.VerifyPassword(input.Password) {
		s.logger.Warn("Invalid password attempt", zap.String("user_id", user.ID.String()))
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")
	}

	return s.issueFor(user)
}

// CurrentUser resolves the authenticated caller's account
func (s *AuthService) CurrentUser(ctx context.Context, caller shared.Identity) (*UserResult, error) {
	user, err := s.userRepo.FindByID(ctx, caller.SubjectID)
	if err != nil {
		return nil, err
	}
	result := toUserResult(user)
	return &result, nil
}

func (s *AuthService) issueFor(user *identity.User) (*AuthResult, error) {
	issued, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}

	return &AuthResult{
		Token:     issued.Token,
		ExpiresAt: issued.ExpiresAt,
		User:      toUserResult(user),
	}, nil
}

func toUserResult(user *identity.User) UserResult {
	return UserResult{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Avatar:    user.Avatar,
		CreatedAt: user.CreatedAt,
	}
}
