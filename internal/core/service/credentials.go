package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/v4health/clinic-api/internal/core/domain"
)

// MinBcryptCost is the lowest work factor the hasher accepts. Lower values
// passed to NewBcryptHasher are raised to it.
const MinBcryptCost = 10

// BcryptHasher hashes credentials with bcrypt. Every Hash call draws a fresh salt.
type BcryptHasher struct {
	cost int
}

func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < MinBcryptCost {
		cost = MinBcryptCost
	}
	if cost > bcrypt.MaxCost {
		cost = bcrypt.MaxCost
	}
	return &BcryptHasher{cost: cost}
}

// Cost reports the work factor in use.
func (h *BcryptHasher) Cost() int { return h.cost }

func (h *BcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", fmt.Errorf("%w: password longer than 72 bytes", domain.ErrInvalidInput)
		}
		return "", err
	}
	return string(hash), nil
}

func (h *BcryptHasher) Compare(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

const (
	// DefaultTokenTTL is how long a registration token stays valid.
	DefaultTokenTTL = time.Hour

	tokenIssuer = "v4health"
)

// Claims is the payload of a registration token.
type Claims struct {
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// JWTIssuer signs HS256 tokens for a single principal kind. Each kind gets its
// own secret, so a token minted for one kind never verifies as another.
type JWTIssuer struct {
	kind   domain.Kind
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewJWTIssuer(kind domain.Kind, secret string, ttl time.Duration) *JWTIssuer {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &JWTIssuer{kind: kind, secret: []byte(secret), ttl: ttl, now: time.Now}
}

// WithClock replaces the time source. Used by tests.
func (i *JWTIssuer) WithClock(now func() time.Time) *JWTIssuer {
	if now != nil {
		i.now = now
	}
	return i
}

func (i *JWTIssuer) Issue(id domain.Identity) (string, time.Time, error) {
	if len(i.secret) == 0 {
		return "", time.Time{}, fmt.Errorf("issue %s token: signing secret not configured", i.kind)
	}

	issuedAt := i.now().UTC()
	expiresAt := issuedAt.Add(i.ttl)
	claims := Claims{
		Username: id.Username,
		Email:    id.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   string(i.kind),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("issue %s token: %w", i.kind, err)
	}
	return signed, expiresAt, nil
}

// Verify parses token and checks signature, algorithm, issuer, kind and expiry.
func (i *JWTIssuer) Verify(token string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithSubject(string(i.kind)),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		return nil, err
	}
	return claims, nil
}
