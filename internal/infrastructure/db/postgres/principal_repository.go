package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/v4health/clinic-api/internal/core/domain"
)

const (
	staffTable   = "v4_staffs"
	doctorTable  = "doctors"
	patientTable = "patients"
)

// findIdentity runs a first-match lookup on username, or on username or
// email when email is set. Email compares case-insensitively, matching the
// lower(email) unique indexes.
func (s store) findIdentity(ctx context.Context, table string, key domain.UniqueKey) (*domain.Identity, error) {
	var (
		id  domain.Identity
		sql string
		err error
	)
	if key.Email == "" {
		sql = "SELECT id, username, '' FROM " + table + " WHERE username = $1 ORDER BY id LIMIT 1"
		err = s.queryRow(ctx, sql, []any{key.Username}, &id.ID, &id.Username, &id.Email)
	} else {
		sql = "SELECT id, username, email FROM " + table + " WHERE username = $1 OR lower(email) = lower($2) ORDER BY id LIMIT 1"
		err = s.queryRow(ctx, sql, []any{key.Username, key.Email}, &id.ID, &id.Username, &id.Email)
	}
	if err != nil {
		if isNoRows(err) {
			return nil, domain.ErrPrincipalNotFound
		}
		return nil, fmt.Errorf("select %s: %w", table, err)
	}
	return &id, nil
}

// insertPrincipal runs an INSERT ... RETURNING id, created_at and hands the
// generated values to p.
func (s store) insertPrincipal(ctx context.Context, table, sql string, args []any, p domain.Principal) (int64, error) {
	var (
		id        int64
		createdAt time.Time
	)
	if err := s.queryRow(ctx, sql, args, &id, &createdAt); err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrDuplicatePrincipal
		}
		return 0, fmt.Errorf("insert %s: %w", table, err)
	}
	p.SetCreated(id, createdAt.UTC())
	return id, nil
}

// StaffRepository is the identity store of v4_staffs.
type StaffRepository struct {
	store
}

func NewStaffRepository(pool *pgxpool.Pool, queryTimeout time.Duration) *StaffRepository {
	return &StaffRepository{store: newStore(pool, queryTimeout)}
}

func (r *StaffRepository) FindByUniqueKey(ctx context.Context, key domain.UniqueKey) (*domain.Identity, error) {
	return r.findIdentity(ctx, staffTable, domain.UniqueKey{Username: key.Username})
}

func (r *StaffRepository) Insert(ctx context.Context, s *domain.Staff) (int64, error) {
	const sql = `INSERT INTO v4_staffs (name, username, password)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`
	return r.insertPrincipal(ctx, staffTable, sql, []any{s.Name, s.Username, s.PasswordHash}, s)
}

// DoctorRepository is the identity store of doctors.
type DoctorRepository struct {
	store
}

func NewDoctorRepository(pool *pgxpool.Pool, queryTimeout time.Duration) *DoctorRepository {
	return &DoctorRepository{store: newStore(pool, queryTimeout)}
}

func (r *DoctorRepository) FindByUniqueKey(ctx context.Context, key domain.UniqueKey) (*domain.Identity, error) {
	return r.findIdentity(ctx, doctorTable, key)
}

func (r *DoctorRepository) Insert(ctx context.Context, d *domain.Doctor) (int64, error) {
	const sql = `INSERT INTO doctors (name, username, password, email, other_contact, image, experience, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at`
	args := []any{d.Name, d.Username, d.PasswordHash, d.Email, d.OtherContact, d.Image, d.Experience, d.Status}
	return r.insertPrincipal(ctx, doctorTable, sql, args, d)
}

// PatientRepository is the identity store of patients.
type PatientRepository struct {
	store
}

func NewPatientRepository(pool *pgxpool.Pool, queryTimeout time.Duration) *PatientRepository {
	return &PatientRepository{store: newStore(pool, queryTimeout)}
}

func (r *PatientRepository) FindByUniqueKey(ctx context.Context, key domain.UniqueKey) (*domain.Identity, error) {
	return r.findIdentity(ctx, patientTable, key)
}

func (r *PatientRepository) Insert(ctx context.Context, p *domain.Patient) (int64, error) {
	const sql = `INSERT INTO patients (name, username, password, email, other_contact, image, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`
	args := []any{p.Name, p.Username, p.PasswordHash, p.Email, p.OtherContact, p.Image, p.Status}
	return r.insertPrincipal(ctx, patientTable, sql, args, p)
}
