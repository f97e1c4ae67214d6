package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	mr "github.com/healthdesk/patient-registry/internal/domain/medical_record"
	"github.com/healthdesk/patient-registry/internal/pagination"
)

type MedicalRecordRepository struct {
	db *gorm.DB
}

func NewMedicalRecordRepository(db *gorm.DB) *MedicalRecordRepository {
	return &MedicalRecordRepository{db: db}
}

func (r *MedicalRecordRepository) Create(ctx context.Context, rec *mr.MedicalRecord) error {
	// Omit the association so gorm does not upsert the referenced patient;
	// the FK constraint alone decides whether the reference is valid.
	err := r.db.WithContext(ctx).Omit("Patient").Create(rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return &mr.DanglingReferenceError{PatientID: rec.PatientID}
		}
		return fmt.Errorf("inserting medical record: %w", err)
	}
	return nil
}

func (r *MedicalRecordRepository) GetByID(ctx context.Context, id int64) (*mr.MedicalRecord, error) {
	var rec mr.MedicalRecord
	if err := r.db.WithContext(ctx).First(&rec, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, mr.ErrRecordNotFound
		}
		return nil, fmt.Errorf("fetching medical record %d: %w", id, err)
	}
	return &rec, nil
}

func (r *MedicalRecordRepository) Update(ctx context.Context, rec *mr.MedicalRecord) error {
	res := r.db.WithContext(ctx).
		Model(&mr.MedicalRecord{}).
		Where("medical_record_id = ?", rec.ID).
		Updates(map[string]any{
			"record_date":    rec.RecordDate,
			"diagnosis":      rec.Diagnosis,
			"doctor_name":    rec.DoctorName,
			"recomendations": rec.Recommendations,
			"patient_id":     rec.PatientID,
		})
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrForeignKeyViolated) {
			return &mr.DanglingReferenceError{PatientID: rec.PatientID}
		}
		return fmt.Errorf("updating medical record %d: %w", rec.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return mr.ErrRecordNotFound
	}
	return nil
}

func (r *MedicalRecordRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&mr.MedicalRecord{}, id)
	if res.Error != nil {
		return fmt.Errorf("deleting medical record %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return mr.ErrRecordNotFound
	}
	return nil
}

func (r *MedicalRecordRepository) List(ctx context.Context, page, pageSize int) (*mr.PagedRecords, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&mr.MedicalRecord{}).Count(&total).Error; err != nil {
		return nil, fmt.Errorf("counting medical records: %w", err)
	}

	w := pagination.Compute(page, pageSize, total)

	var records []*mr.MedicalRecord
	err := r.db.WithContext(ctx).
		Order("medical_record_id").
		Offset(w.Offset).
		Limit(w.Limit).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("listing medical records: %w", err)
	}

	return &mr.PagedRecords{Records: records, Window: w}, nil
}

func (r *MedicalRecordRepository) ListByPatient(ctx context.Context, patientID int64) ([]*mr.MedicalRecord, error) {
	var records []*mr.MedicalRecord
	err := r.db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("medical_record_id").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("listing medical records for patient %d: %w", patientID, err)
	}
	return records, nil
}
