package service

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// JWTLicenseService implements ports.LicenseService using HS256 JWT.
// The license key is the credential's opaque secret material: a signed token
// carrying the subject, plan tier and seat limit.
type JWTLicenseService struct {
	secret []byte
	issuer string
}

// NewJWTLicenseService creates a new license minting service.
func NewJWTLicenseService(secret, issuer string) *JWTLicenseService {
	return &JWTLicenseService{
		secret: []byte(secret),
		issuer: issuer,
	}
}

// Issue mints a signed license key and returns it with a short fingerprint.
// A fresh jti makes every issued key unique; idempotence across duplicate
// events is enforced by the credential store, not here.
func (s *JWTLicenseService) Issue(subject, planTier string, seatLimit int) (string, string, error) {
	now := time.Now()

	claims := jwt.MapClaims{
		"sub":        subject,
		"plan_tier":  planTier,
		"seat_limit": seatLimit,
		"jti":        uuid.NewString(),
		"iat":        now.Unix(),
		"iss":        s.issuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	key, err := token.SignedString(s.secret)
	if err != nil {
		return "", "", fmt.Errorf("signing license key: %w", err)
	}

	return key, Fingerprint(key), nil
}

// Fingerprint returns the short identifier stored alongside the key hash,
// usable in support tooling without revealing the key.
func Fingerprint(key string) string {
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])[:12]
}
