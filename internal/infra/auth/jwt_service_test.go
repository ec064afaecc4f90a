package auth

import (
	"strings"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T) service.TokenService {
	cfg := &config.Config{}
	cfg.SecretKey.Session = "test-secret"

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})

	assert.Error(t, err)
}

func TestJWTService_UserTokenRoundTrip(t *testing.T) {
	svc := newTestJWTService(t)
	userID := uuid.New()

	token, err := svc.GenerateUserToken(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, service.RoleUser, claims.Role)
	assert.Empty(t, claims.Email)
}

func TestJWTService_SellerTokenRoundTrip(t *testing.T) {
	svc := newTestJWTService(t)

	token, err := svc.GenerateSellerToken("seller@example.com")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "seller@example.com", claims.Email)
	assert.Equal(t, service.RoleSeller, claims.Role)
	assert.Equal(t, uuid.Nil, claims.UserID)
}

func TestJWTService_RejectsTamperedToken(t *testing.T) {
	svc := newTestJWTService(t)

	token, err := svc.GenerateUserToken(uuid.New())
	require.NoError(t, err)

	// Flip a character in the signature segment.
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = svc.ValidateToken(tampered)
	assert.Error(t, err)
}

func TestJWTService_RejectsTokenFromOtherSecret(t *testing.T) {
	other := &config.Config{}
	other.SecretKey.Session = "other-secret"
	otherSvc, err := NewJWTService(other)
	require.NoError(t, err)

	token, err := otherSvc.GenerateUserToken(uuid.New())
	require.NoError(t, err)

	svc := newTestJWTService(t)
	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_SessionDuration(t *testing.T) {
	svc := newTestJWTService(t)
	assert.Equal(t, 7*24*time.Hour, svc.GetSessionDuration())

	cfg := &config.Config{Auth: &config.AuthConfig{SessionDuration: time.Hour}}
	cfg.SecretKey.Session = "test-secret"
	custom, err := NewJWTService(cfg)
	require.NoError(t, err)
	assert.Equal(t, time.Hour, custom.GetSessionDuration())
}
