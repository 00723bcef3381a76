package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/v4health/clinic-api/internal/core/domain"
)

// CatalogRepository writes the reference tables.
type CatalogRepository struct {
	store
}

func NewCatalogRepository(pool *pgxpool.Pool, queryTimeout time.Duration) *CatalogRepository {
	return &CatalogRepository{store: newStore(pool, queryTimeout)}
}

func (r *CatalogRepository) insert(ctx context.Context, table, sql string, args ...any) (int64, error) {
	var id int64
	if err := r.queryRow(ctx, sql, args, &id); err != nil {
		return 0, fmt.Errorf("insert %s: %w", table, err)
	}
	return id, nil
}

func (r *CatalogRepository) CreateDesignation(ctx context.Context, d *domain.Designation) (int64, error) {
	return r.insert(ctx, "designations",
		"INSERT INTO designations (designation) VALUES ($1) RETURNING id", d.Designation)
}

func (r *CatalogRepository) CreateDepartment(ctx context.Context, d *domain.Department) (int64, error) {
	return r.insert(ctx, "departments",
		"INSERT INTO departments (department) VALUES ($1) RETURNING id", d.Department)
}

func (r *CatalogRepository) CreatePrivilege(ctx context.Context, p *domain.Privilege) (int64, error) {
	return r.insert(ctx, "all_privileges",
		"INSERT INTO all_privileges (privilege) VALUES ($1) RETURNING id", p.Privilege)
}

func (r *CatalogRepository) CreateLanguage(ctx context.Context, l *domain.Language) (int64, error) {
	return r.insert(ctx, "languages",
		"INSERT INTO languages (language) VALUES ($1) RETURNING id", l.Language)
}

func (r *CatalogRepository) CreateMedicine(ctx context.Context, m *domain.Medicine) (int64, error) {
	return r.insert(ctx, "medicines",
		"INSERT INTO medicines (name, base_price) VALUES ($1, $2::numeric) RETURNING id", m.Name, m.BasePrice)
}

func (r *CatalogRepository) CreateExtraCharge(ctx context.Context, e *domain.ExtraCharge) (int64, error) {
	return r.insert(ctx, "extra_charges",
		"INSERT INTO extra_charges (charge_type, amount) VALUES ($1, $2) RETURNING id", e.ChargeType, e.Amount)
}

func (r *CatalogRepository) CreateQuestion(ctx context.Context, q *domain.Question) (int64, error) {
	return r.insert(ctx, "questionnaire",
		"INSERT INTO questionnaire (question) VALUES ($1) RETURNING id", q.Question)
}

func (r *CatalogRepository) CreateSlotAmount(ctx context.Context, s *domain.SlotAmount) (int64, error) {
	return r.insert(ctx, "sloat_amounts",
		"INSERT INTO sloat_amounts (minute, amount) VALUES ($1, $2) RETURNING id", s.Minute, s.Amount)
}

func (r *CatalogRepository) CreateImage(ctx context.Context, img *domain.Image) (int64, error) {
	return r.insert(ctx, "images",
		"INSERT INTO images (img) VALUES ($1) RETURNING id", img.Filename)
}
