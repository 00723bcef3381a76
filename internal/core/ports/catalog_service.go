package ports

import (
	"context"
	"io"

	"github.com/v4health/clinic-api/internal/core/domain"
)

// CatalogService defines the create use cases of the reference tables.
type CatalogService interface {
	CreateDesignation(ctx context.Context, designation string) (*domain.Designation, error)
	CreateDepartment(ctx context.Context, department string) (*domain.Department, error)
	CreatePrivilege(ctx context.Context, privilege string) (*domain.Privilege, error)
	CreateLanguage(ctx context.Context, language string) (*domain.Language, error)
	CreateMedicine(ctx context.Context, name, basePrice string) (*domain.Medicine, error)
	CreateExtraCharge(ctx context.Context, chargeType string, amount int) (*domain.ExtraCharge, error)
	AddQuestion(ctx context.Context, question string) (*domain.Question, error)
	CreateSlotAmount(ctx context.Context, minute, amount int) (*domain.SlotAmount, error)
}

// ImageService stores an uploaded image and records its filename.
type ImageService interface {
	Upload(ctx context.Context, meta domain.Upload, content io.Reader) (*domain.Image, error)
}
