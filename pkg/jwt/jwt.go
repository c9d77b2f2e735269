package jwt

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// JWT header constants required by RFC 7519
const (
	HeaderType      = "JWT"
	HeaderAlgorithm = "HS256"
)

// Header represents the JWT header as defined in RFC 7515
type Header struct {
	Type      string `json:"typ"`
	Algorithm string `json:"alg"`
}

// StandardClaims represents the registered JWT claims defined in RFC 7519 Section 4.1.
// All fields use Unix timestamps for temporal claims.
type StandardClaims struct {
	ID        string `json:"jti,omitempty"`
	Subject   string `json:"sub,omitempty"`
	Issuer    string `json:"iss,omitempty"`
	Audience  string `json:"aud,omitempty"`
	ExpiresAt int64  `json:"exp,omitempty"`
	NotBefore int64  `json:"nbf,omitempty"`
	IssuedAt  int64  `json:"iat,omitempty"`
}

// ValidAt validates the temporal claims against the given instant.
// Zero values are treated as unset (per RFC 7519) and are ignored.
// A token is expired once now reaches ExpiresAt.
func (c StandardClaims) ValidAt(now time.Time) error {
	ts := now.Unix()

	if c.ExpiresAt > 0 && ts >= c.ExpiresAt {
		return ErrExpiredToken
	}

	if c.NotBefore > 0 && ts < c.NotBefore {
		return ErrInvalidToken
	}

	return nil
}

// Service handles JWT token generation and validation using HMAC-SHA256.
type Service struct {
	signingKey []byte
	now        func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithClock replaces the time source used for temporal claim validation.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// New creates a new JWT service with the provided signing key.
func New(signingKey []byte, opts ...Option) (*Service, error) {
	if len(signingKey) == 0 {
		return nil, ErrMissingSigningKey
	}

	s := &Service{
		signingKey: signingKey,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// NewFromString creates a new JWT service from a string signing key.
func NewFromString(signingKey string, opts ...Option) (*Service, error) {
	return New([]byte(signingKey), opts...)
}

// Now returns the current time according to the service clock.
func (s *Service) Now() time.Time {
	return s.now()
}

// Generate creates a JWT token with the given claims.
// Accepts any JSON-serializable claims structure and returns a signed JWT string.
func (s *Service) Generate(claims any) (string, error) {
	if claims == nil {
		return "", ErrMissingClaims
	}

	headerJSON, err := json.Marshal(Header{
		Type:      HeaderType,
		Algorithm: HeaderAlgorithm,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal header: %w", err)
	}

	claimsJSON, err := json.Marshal(claims)
	if err != nil {
		return "", fmt.Errorf("failed to marshal claims: %w", err)
	}

	// base64url(header).base64url(claims)
	payload := base64URLEncode(headerJSON) + "." + base64URLEncode(claimsJSON)

	return payload + "." + s.sign(payload), nil
}

// Parse validates a JWT token and unmarshals its claims into the provided structure.
// The registered temporal claims (exp, nbf) are always checked against the
// service clock, whatever the type of claims is.
func (s *Service) Parse(tokenString string, claims any) error {
	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 {
		return ErrInvalidToken
	}

	headerEncoded, claimsEncoded, signatureEncoded := parts[0], parts[1], parts[2]

	expectedSignature := s.sign(headerEncoded + "." + claimsEncoded)
	if subtle.ConstantTimeCompare([]byte(signatureEncoded), []byte(expectedSignature)) != 1 {
		return ErrInvalidSignature
	}

	headerJSON, err := base64URLDecode(headerEncoded)
	if err != nil {
		return fmt.Errorf("%w: decode header: %v", ErrInvalidToken, err)
	}

	var header Header
	if err := json.Unmarshal(headerJSON, &header); err != nil {
		return fmt.Errorf("%w: unmarshal header: %v", ErrInvalidToken, err)
	}

	// Reject tokens using unexpected algorithms to prevent algorithm confusion attacks
	if header.Algorithm != HeaderAlgorithm {
		return ErrUnexpectedSigningMethod
	}

	claimsJSON, err := base64URLDecode(claimsEncoded)
	if err != nil {
		return fmt.Errorf("%w: decode claims: %v", ErrInvalidToken, err)
	}

	// Only the temporal claims are decoded here; other registered claims may
	// carry any JSON type in caller-defined payloads.
	var temporal struct {
		ExpiresAt float64 `json:"exp"`
		NotBefore float64 `json:"nbf"`
	}
	if err := json.Unmarshal(claimsJSON, &temporal); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidClaims, err)
	}
	registered := StandardClaims{ExpiresAt: int64(temporal.ExpiresAt), NotBefore: int64(temporal.NotBefore)}
	if err := registered.ValidAt(s.now()); err != nil {
		return err
	}

	if err := json.Unmarshal(claimsJSON, claims); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidClaims, err)
	}

	return nil
}

// sign creates a base64url-encoded HMAC-SHA256 signature for the given payload.
func (s *Service) sign(payload string) string {
	h := hmac.New(sha256.New, s.signingKey)
	h.Write([]byte(payload))
	return base64URLEncode(h.Sum(nil))
}

// base64URLEncode encodes data using base64url encoding without padding.
func base64URLEncode(data []byte) string {
	return base64.RawURLEncoding.EncodeToString(data)
}

// base64URLDecode decodes unpadded base64url data.
func base64URLDecode(s string) ([]byte, error) {
	return base64.RawURLEncoding.DecodeString(strings.TrimRight(s, "="))
}
