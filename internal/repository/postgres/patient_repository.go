// Package postgres implements the repository contracts over gorm. Constraint
// violations are not pre-checked with reads; the database is the single
// arbiter and its failures are translated into domain error kinds, so
// concurrent writers cannot race a check-then-act window.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/healthdesk/patient-registry/internal/domain/patient"
	"github.com/healthdesk/patient-registry/internal/pagination"
)

type PatientRepository struct {
	db *gorm.DB
}

func NewPatientRepository(db *gorm.DB) *PatientRepository {
	return &PatientRepository{db: db}
}

func (r *PatientRepository) Create(ctx context.Context, p *patient.Patient) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return &patient.DuplicatePolicyError{PolicyNumber: p.PolicyNumber}
		}
		return fmt.Errorf("inserting patient: %w", err)
	}
	return nil
}

func (r *PatientRepository) GetByID(ctx context.Context, id int64) (*patient.Patient, error) {
	var p patient.Patient
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, patient.ErrPatientNotFound
		}
		return nil, fmt.Errorf("fetching patient %d: %w", id, err)
	}
	return &p, nil
}

func (r *PatientRepository) Update(ctx context.Context, p *patient.Patient) error {
	res := r.db.WithContext(ctx).
		Model(&patient.Patient{}).
		Where("patient_id = ?", p.ID).
		Updates(map[string]any{
			"first_name":   p.FirstName,
			"last_name":    p.LastName,
			"birth_date":   p.BirthDate,
			"polis_number": p.PolicyNumber,
		})
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return &patient.DuplicatePolicyError{PolicyNumber: p.PolicyNumber}
		}
		return fmt.Errorf("updating patient %d: %w", p.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return patient.ErrPatientNotFound
	}
	return nil
}

func (r *PatientRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&patient.Patient{}, id)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrForeignKeyViolated) {
			return &patient.HasDependentsError{PatientID: id}
		}
		return fmt.Errorf("deleting patient %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return patient.ErrPatientNotFound
	}
	return nil
}

func (r *PatientRepository) List(ctx context.Context, page, pageSize int) (*patient.PagedPatients, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&patient.Patient{}).Count(&total).Error; err != nil {
		return nil, fmt.Errorf("counting patients: %w", err)
	}

	w := pagination.Compute(page, pageSize, total)

	var patients []*patient.Patient
	err := r.db.WithContext(ctx).
		Order("patient_id").
		Offset(w.Offset).
		Limit(w.Limit).
		Find(&patients).Error
	if err != nil {
		return nil, fmt.Errorf("listing patients: %w", err)
	}

	return &patient.PagedPatients{Patients: patients, Window: w}, nil
}
