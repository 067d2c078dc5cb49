package auth

import (
	"testing"
	"time"

	"github.com/devlink/backend/internal/infrastructure/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService() *TokenService {
	cfg := config.JWTConfig{
		Secret:        "test-secret-key-at-least-32-chars",
		TokenLifetime: time.Hour,
		Issuer:        "test-issuer",
	}
	return NewTokenService(cfg)
}

func TestNewTokenService(t *testing.T) {
	cfg := config.JWTConfig{
		Secret:        "test-secret",
		TokenLifetime: time.Hour,
		Issuer:        "test-issuer",
	}

	svc := NewTokenService(cfg)

	assert.NotNil(t, svc)
	assert.Equal(t, []byte(cfg.Secret), svc.secret)
	assert.Equal(t, cfg.TokenLifetime, svc.lifetime)
	assert.Equal(t, cfg.Issuer, svc.issuer)
}

func TestIssueAndVerify(t *testing.T) {
	svc := newTestTokenService()
	subjectID := uuid.New()

	issued, err := svc.Issue(subjectID)
	require.NoError(t, err)
	assert.NotEmpty(t, issued.Token)
	assert.True(t, issued.ExpiresAt.After(time.Now()))

	identity, err := svc.Verify(issued.Token)
	require.NoError(t, err)
	assert.Equal(t, subjectID, identity.SubjectID)
}

func TestVerify_ExpiredToken(t *testing.T) {
	cfg := config.JWTConfig{
		Secret:        "test-secret-key-at-least-32-chars",
		TokenLifetime: -time.Hour,
		Issuer:        "test-issuer",
	}
	svc := NewTokenService(cfg)

	issued, err := svc.Issue(uuid.New())
	require.NoError(t, err)

	_, err = svc.Verify(issued.Token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerify_MalformedToken(t *testing.T) {
	svc := newTestTokenService()

	_, err := svc.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrTokenMalformed)
}

func TestVerify_TamperedToken(t *testing.T) {
	svc := newTestTokenService()

	issued, err := svc.Issue(uuid.New())
	require.NoError(t, err)

	tampered := []byte(issued.Token)
	last := len(tampered) - 1
	if tampered[last] == 'a' {
		tampered[last] = 'b'
	} else {
		tampered[last] = 'a'
	}

	_, err = svc.Verify(string(tampered))
	assert.Error(t, err)
}

func TestVerify_WrongSecret(t *testing.T) {
	svc := newTestTokenService()
	other := NewTokenService(config.JWTConfig{
		Secret:        "another-secret-key-at-least-32ch",
		TokenLifetime: time.Hour,
		Issuer:        "test-issuer",
	})

	issued, err := other.Issue(uuid.New())
	require.NoError(t, err)

	_, err = svc.Verify(issued.Token)
	assert.ErrorIs(t, err, ErrTokenSignatureInvalid)
}

func TestVerify_IdentityCarriesOnlySubject(t *testing.T) {
	svc := newTestTokenService()
	subjectID := uuid.New()

	issued, err := svc.Issue(subjectID)
	require.NoError(t, err)

	identity, err := svc.Verify(issued.Token)
	require.NoError(t, err)
	assert.False(t, identity.IsZero())
	assert.Equal(t, subjectID, identity.SubjectID)
}
