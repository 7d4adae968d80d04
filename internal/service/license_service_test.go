package service

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testLicenseSecret = "license-signing-secret"

func TestJWTLicenseService_IssueCarriesClaims(t *testing.T) {
	svc := NewJWTLicenseService(testLicenseSecret, "storefront")

	key, fingerprint, err := svc.Issue("new@example.com", "team", 5)
	require.NoError(t, err)
	assert.NotEmpty(t, key)
	assert.Len(t, fingerprint, 12)

	parsed, err := jwt.Parse(key, func(token *jwt.Token) (any, error) {
		return []byte(testLicenseSecret), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "new@example.com", claims["sub"])
	assert.Equal(t, "team", claims["plan_tier"])
	assert.Equal(t, float64(5), claims["seat_limit"])
	assert.Equal(t, "storefront", claims["iss"])
	assert.NotEmpty(t, claims["jti"])
}

func TestJWTLicenseService_KeysAreUnique(t *testing.T) {
	svc := NewJWTLicenseService(testLicenseSecret, "storefront")

	k1, f1, err := svc.Issue("a@example.com", "standard", 1)
	require.NoError(t, err)
	k2, f2, err := svc.Issue("a@example.com", "standard", 1)
	require.NoError(t, err)

	assert.NotEqual(t, k1, k2, "each issuance must mint a distinct key")
	assert.NotEqual(t, f1, f2)
}

func TestJWTLicenseService_WrongSecretRejected(t *testing.T) {
	svc := NewJWTLicenseService(testLicenseSecret, "storefront")

	key, _, err := svc.Issue("a@example.com", "standard", 1)
	require.NoError(t, err)

	_, err = jwt.Parse(key, func(token *jwt.Token) (any, error) {
		return []byte("other-secret"), nil
	})
	assert.Error(t, err)
}

func TestFingerprint_Deterministic(t *testing.T) {
	assert.Equal(t, Fingerprint("key-material"), Fingerprint("key-material"))
	assert.NotEqual(t, Fingerprint("key-a"), Fingerprint("key-b"))
}
