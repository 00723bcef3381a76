package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/v4health/clinic-api/internal/core/domain"
	"github.com/v4health/clinic-api/internal/core/ports"
)

const (
	maxSlotMinute = 255
	maxSlotAmount = 65535
)

// CatalogService implements the create use cases of the reference tables.
type CatalogService struct {
	repo ports.CatalogRepository
	log  zerolog.Logger
}

func NewCatalogService(repo ports.CatalogRepository, log zerolog.Logger) *CatalogService {
	return &CatalogService{repo: repo, log: log}
}

func (s *CatalogService) CreateDesignation(ctx context.Context, designation string) (*domain.Designation, error) {
	if strings.TrimSpace(designation) == "" {
		return nil, required("designation")
	}
	d := &domain.Designation{Designation: designation}
	id, err := s.repo.CreateDesignation(ctx, d)
	if err := s.created("designation", id, err); err != nil {
		return nil, err
	}
	d.ID = id
	return d, nil
}

func (s *CatalogService) CreateDepartment(ctx context.Context, department string) (*domain.Department, error) {
	if strings.TrimSpace(department) == "" {
		return nil, required("department")
	}
	d := &domain.Department{Department: department}
	id, err := s.repo.CreateDepartment(ctx, d)
	if err := s.created("department", id, err); err != nil {
		return nil, err
	}
	d.ID = id
	return d, nil
}

func (s *CatalogService) CreatePrivilege(ctx context.Context, privilege string) (*domain.Privilege, error) {
	if strings.TrimSpace(privilege) == "" {
		return nil, required("privilege")
	}
	p := &domain.Privilege{Privilege: privilege}
	id, err := s.repo.CreatePrivilege(ctx, p)
	if err := s.created("privilege", id, err); err != nil {
		return nil, err
	}
	p.ID = id
	return p, nil
}

func (s *CatalogService) CreateLanguage(ctx context.Context, language string) (*domain.Language, error) {
	if strings.TrimSpace(language) == "" {
		return nil, required("language")
	}
	l := &domain.Language{Language: language}
	id, err := s.repo.CreateLanguage(ctx, l)
	if err := s.created("language", id, err); err != nil {
		return nil, err
	}
	l.ID = id
	return l, nil
}

func (s *CatalogService) CreateMedicine(ctx context.Context, name, basePrice string) (*domain.Medicine, error) {
	if strings.TrimSpace(name) == "" {
		return nil, required("name")
	}
	if strings.TrimSpace(basePrice) == "" {
		return nil, required("base_price")
	}
	m := &domain.Medicine{Name: name, BasePrice: basePrice}
	id, err := s.repo.CreateMedicine(ctx, m)
	if err := s.created("medicine", id, err); err != nil {
		return nil, err
	}
	m.ID = id
	return m, nil
}

func (s *CatalogService) CreateExtraCharge(ctx context.Context, chargeType string, amount int) (*domain.ExtraCharge, error) {
	if strings.TrimSpace(chargeType) == "" {
		return nil, required("charge_type")
	}
	if amount < 0 {
		return nil, fmt.Errorf("%w: amount must be a non-negative integer", domain.ErrInvalidInput)
	}
	e := &domain.ExtraCharge{ChargeType: chargeType, Amount: amount}
	id, err := s.repo.CreateExtraCharge(ctx, e)
	if err := s.created("extra_charge", id, err); err != nil {
		return nil, err
	}
	e.ID = id
	return e, nil
}

func (s *CatalogService) AddQuestion(ctx context.Context, question string) (*domain.Question, error) {
	if strings.TrimSpace(question) == "" {
		return nil, required("question")
	}
	q := &domain.Question{Question: question}
	id, err := s.repo.CreateQuestion(ctx, q)
	if err := s.created("question", id, err); err != nil {
		return nil, err
	}
	q.ID = id
	return q, nil
}

func (s *CatalogService) CreateSlotAmount(ctx context.Context, minute, amount int) (*domain.SlotAmount, error) {
	if minute < 0 || minute > maxSlotMinute {
		return nil, fmt.Errorf("%w: minute must be an integer between 0 and %d", domain.ErrInvalidInput, maxSlotMinute)
	}
	if amount < 0 || amount > maxSlotAmount {
		return nil, fmt.Errorf("%w: amount must be an integer between 0 and %d", domain.ErrInvalidInput, maxSlotAmount)
	}
	sa := &domain.SlotAmount{Minute: minute, Amount: amount}
	id, err := s.repo.CreateSlotAmount(ctx, sa)
	if err := s.created("sloat_amount", id, err); err != nil {
		return nil, err
	}
	sa.ID = id
	return sa, nil
}

// created classifies a repository failure or logs the new row.
func (s *CatalogService) created(resource string, id int64, err error) error {
	if err != nil {
		s.log.Error().Err(err).Str("resource", resource).Msg("catalog insert failed")
		return domain.NewStorageError("create "+resource, err)
	}
	s.log.Info().Str("resource", resource).Int64("id", id).Msg("catalog record created")
	return nil
}

func required(field string) error {
	return fmt.Errorf("%w: %s is required", domain.ErrInvalidInput, field)
}
