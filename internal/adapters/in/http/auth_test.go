package http

import (
	"testing"
	"time"

	"meddelivery/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenIssuer_IssueAndParse(t *testing.T) {
	issuer, err := NewTokenIssuer("secret", time.Hour)
	require.NoError(t, err)

	for _, role := range []kernel.Role{kernel.RoleCustomer, kernel.RolePharmacy, kernel.RoleDriver} {
		actor, err := kernel.NewActor(kernel.NewUUID(), role)
		require.NoError(t, err)

		token, err := issuer.Issue(actor)
		require.NoError(t, err)

		parsed, err := issuer.Parse(token)
		require.NoError(t, err)
		assert.Equal(t, actor.ID(), parsed.ID())
		assert.Equal(t, role, parsed.Role())
	}
}

func TestTokenIssuer_Expired(t *testing.T) {
	issuer, err := NewTokenIssuer("secret", time.Minute)
	require.NoError(t, err)
	issuedAt := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	issuer.now = func() time.Time { return issuedAt }

	actor, err := kernel.NewActor(kernel.NewUUID(), kernel.RoleDriver)
	require.NoError(t, err)
	token, err := issuer.Issue(actor)
	require.NoError(t, err)

	issuer.now = func() time.Time { return issuedAt.Add(2 * time.Minute) }
	_, err = issuer.Parse(token)

	require.ErrorIs(t, err, ErrTokenIsInvalid)
	require.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestTokenIssuer_UnknownRole(t *testing.T) {
	issuer, err := NewTokenIssuer("secret", time.Hour)
	require.NoError(t, err)

	claims := Claims{
		Role: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   kernel.NewUUID().String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = issuer.Parse(token)
	require.ErrorIs(t, err, ErrTokenIsInvalid)
}

func TestTokenIssuer_RejectsOtherAlgorithms(t *testing.T) {
	issuer, err := NewTokenIssuer("secret", time.Hour)
	require.NoError(t, err)

	claims := Claims{
		Role:             "customer",
		RegisteredClaims: jwt.RegisteredClaims{Subject: kernel.NewUUID().String()},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = issuer.Parse(token)
	require.ErrorIs(t, err, ErrTokenIsInvalid)
}

func TestNewTokenIssuer_EmptySecret(t *testing.T) {
	_, err := NewTokenIssuer("", time.Hour)
	require.Error(t, err)
}
