package ports

import (
	"context"

	"github.com/v4health/clinic-api/internal/core/domain"
)

// PrincipalRepository is the identity store of one principal table.
type PrincipalRepository[P domain.Principal] interface {
	// FindByUniqueKey returns the first row whose username (or, when key.Email
	// is set, username or email) matches. domain.ErrPrincipalNotFound when none.
	FindByUniqueKey(ctx context.Context, key domain.UniqueKey) (*domain.Identity, error)
	// Insert stores p, records the generated id and creation time on it and
	// returns the id. A unique-constraint violation is reported as
	// domain.ErrDuplicatePrincipal.
	Insert(ctx context.Context, p P) (int64, error)
}
