package ports

import (
	"context"

	"github.com/v4health/clinic-api/internal/core/domain"
)

// CatalogRepository persists the clinic's reference tables. Every method is a
// single INSERT and returns the generated id.
type CatalogRepository interface {
	CreateDesignation(ctx context.Context, d *domain.Designation) (int64, error)
	CreateDepartment(ctx context.Context, d *domain.Department) (int64, error)
	CreatePrivilege(ctx context.Context, p *domain.Privilege) (int64, error)
	CreateLanguage(ctx context.Context, l *domain.Language) (int64, error)
	CreateMedicine(ctx context.Context, m *domain.Medicine) (int64, error)
	CreateExtraCharge(ctx context.Context, e *domain.ExtraCharge) (int64, error)
	CreateQuestion(ctx context.Context, q *domain.Question) (int64, error)
	CreateSlotAmount(ctx context.Context, s *domain.SlotAmount) (int64, error)
	CreateImage(ctx context.Context, img *domain.Image) (int64, error)
}
