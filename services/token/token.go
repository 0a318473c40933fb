package token

import (
	"errors"
	"strings"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

var (
	// ErrMissing is returned when no credential is presented at all.
	ErrMissing = errors.New("authorization token missing")
	// ErrMalformed is returned when the credential cannot be parsed out of
	// the Authorization header.
	ErrMalformed = errors.New("authorization header malformed")
	// ErrInvalid is returned when the signature or expiry check fails.
	ErrInvalid = errors.New("invalid token")
)

// Claims is the decoded principal a verified credential carries.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Service issues and verifies HS256 bearer tokens. It is a pure function of
// token plus secret; no side effects.
type Service struct {
	secret []byte
	ttl    time.Duration
}

func NewService(secret string) *Service {
	return &Service{secret: []byte(secret), ttl: time.Hour}
}

// Issue signs a short-lived token for the given email claim.
func (s *Service) Issue(email string) (string, error) {
	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify checks the signature and expiry and returns the identity claim.
func (s *Service) Verify(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, ErrMissing
	}

	t, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenMalformed) {
			return nil, ErrMalformed
		}
		return nil, ErrInvalid
	}

	claims, ok := t.Claims.(*Claims)
	if !ok || !t.Valid || claims.Email == "" {
		return nil, ErrInvalid
	}
	return claims, nil
}

// FromAuthHeader extracts the bearer token from an Authorization header
// value and verifies it.
func (s *Service) FromAuthHeader(header string) (*Claims, error) {
	if header == "" {
		return nil, ErrMissing
	}

	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return nil, ErrMalformed
	}

	return s.Verify(parts[1])
}
