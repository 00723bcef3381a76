package ports

import (
	"context"
	"time"

	"github.com/v4health/clinic-api/internal/core/domain"
)

// Registration is the successful outcome of a registration attempt.
type Registration[P domain.Principal] struct {
	Record    P
	Token     string
	ExpiresAt time.Time
}

// RegistrationService creates a principal if and only if no conflicting one exists.
type RegistrationService[P domain.Principal] interface {
	Register(ctx context.Context, principal P, password string) (*Registration[P], error)
}

// PasswordHasher turns a plaintext secret into a salted one-way hash.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// TokenIssuer mints signed, time-limited assertions for one principal kind.
type TokenIssuer interface {
	Issue(id domain.Identity) (token string, expiresAt time.Time, err error)
}

// RegistrationClaimer marks a unique key as being registered so concurrent
// submissions of the same key queue behind each other. It is advisory: a held
// claim is never a Conflict, the store lookup and constraint stay
// authoritative.
type RegistrationClaimer interface {
	// Claim returns ok=false when another request holds the key. release must
	// be called on every exit path when ok is true.
	Claim(ctx context.Context, kind domain.Kind, key domain.UniqueKey) (release func(), ok bool, err error)
}
