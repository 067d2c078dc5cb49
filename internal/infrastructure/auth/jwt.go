package auth

import (
	"errors"
	"time"

	"github.com/devlink/backend/internal/domain/shared"
	"github.com/devlink/backend/internal/infrastructure/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Common errors
var (
	ErrTokenMalformed        = errors.New("token is malformed")
	ErrTokenSignatureInvalid = errors.New("token signature is invalid")
	ErrTokenExpired          = errors.New("token has expired")
	ErrTokenNotYetValid      = errors.New("token is not yet valid")
	ErrTokenInvalid          = errors.New("invalid token")
)

// Claims are the JWT claims carried by issued tokens. The subject is the
// user id; nothing else about the account is embedded, so tokens stay valid
// across profile and account edits until they expire.
type Claims struct {
	jwt.RegisteredClaims
}

// IssuedToken is a signed token together with its expiry
type IssuedToken struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// TokenService issues and verifies stateless HS256 tokens. There is no
// revocation list; a token is valid until its expiry.
type TokenService struct {
	secret   []byte
	lifetime time.Duration
	issuer   string
}

// NewTokenService creates a token service from JWT configuration
func NewTokenService(cfg config.JWTConfig) *TokenService {
	return &TokenService{
		secret:   []byte(cfg.Secret),
		lifetime: cfg.TokenLifetime,
		issuer:   cfg.Issuer,
	}
}

// Issue signs a token for the given subject
func (s *TokenService) Issue(subjectID uuid.UUID) (*IssuedToken, error) {
	now := time.Now()
	expiresAt := now.Add(s.lifetime)

	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Issuer:    s.issuer,
			Subject:   subjectID.String(),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			NotBefore: jwt.NewNumericDate(now),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, err
	}

	return &IssuedToken{Token: token, ExpiresAt: expiresAt}, nil
}

// Verify parses and validates a token string and returns the caller
// identity it encodes. Expired, tampered and malformed tokens each map to
// their own sentinel; all of them mean "not authenticated" at the boundary.
func (s *TokenService) Verify(tokenString string) (shared.Identity, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return shared.Identity{}, ErrTokenMalformed
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return shared.Identity{}, ErrTokenSignatureInvalid
		case errors.Is(err, jwt.ErrTokenExpired):
			return shared.Identity{}, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenNotValidYet):
			return shared.Identity{}, ErrTokenNotYetValid
		default:
			return shared.Identity{}, ErrTokenInvalid
		}
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return shared.Identity{}, ErrTokenInvalid
	}

	subjectID, err := uuid.Parse(claims.Subject)
	if err != nil || subjectID == uuid.Nil {
		return shared.Identity{}, ErrTokenInvalid
	}

	return shared.NewIdentity(subjectID), nil
}

// TokenLifetime returns the configured token lifetime
func (s *TokenService) TokenLifetime() time.Duration {
	return s.lifetime
}
