package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	mr "github.com/healthdesk/patient-registry/internal/domain/medical_record"
)

type MedicalRecordService struct {
	repo mr.Repository
	log  *zap.Logger
}

func NewMedicalRecordService(repo mr.Repository, log *zap.Logger) *MedicalRecordService {
	return &MedicalRecordService{repo: repo, log: log}
}

func (s *MedicalRecordService) CreateRecord(ctx context.Context, cmd *mr.CreateRecordCommand) (*mr.MedicalRecord, error) {
	recordDate, err := validateRecordCommand(cmd.RecordDate, cmd.Diagnosis, cmd.DoctorName, cmd.PatientID)
	if err != nil {
		return nil, err
	}

	rec := &mr.MedicalRecord{
		RecordDate:      recordDate,
		Diagnosis:       strings.TrimSpace(cmd.Diagnosis),
		DoctorName:      strings.TrimSpace(cmd.DoctorName),
		Recommendations: cmd.Recommendations,
		PatientID:       cmd.PatientID,
	}

	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, err
	}

	s.log.Info("medical record created",
		zap.Int64("medical_record_id", rec.ID),
		zap.Int64("patient_id", rec.PatientID),
	)
	return rec, nil
}

func (s *MedicalRecordService) GetRecord(ctx context.Context, id int64) (*mr.MedicalRecord, error) {
	return s.repo.GetByID(ctx, id)
}

// ListRecords returns one page of records; an empty collection is reported as
// mr.ErrNoRecords.
func (s *MedicalRecordService) ListRecords(ctx context.Context, page, pageSize int) (*mr.PagedRecords, error) {
	paged, err := s.repo.List(ctx, page, pageSize)
	if err != nil {
		s.log.Error("failed to list medical records", zap.Error(err))
		return nil, fmt.Errorf("listing medical records: %w", err)
	}
	if paged.Window.TotalRows == 0 {
		return nil, mr.ErrNoRecords
	}
	return paged, nil
}

// ListRecordsByPatient returns a patient's full history. A patient with no
// records is reported as mr.ErrNoPatientRecords, keeping the original client
// contract of absence rather than an empty success.
func (s *MedicalRecordService) ListRecordsByPatient(ctx context.Context, patientID int64) ([]*mr.MedicalRecord, error) {
	records, err := s.repo.ListByPatient(ctx, patientID)
	if err != nil {
		s.log.Error("failed to list patient records",
			zap.Int64("patient_id", patientID), zap.Error(err))
		return nil, fmt.Errorf("listing patient records: %w", err)
	}
	if len(records) == 0 {
		return nil, mr.ErrNoPatientRecords
	}
	return records, nil
}

// UpdateRecord replaces every field of the record identified by the path id;
// any identifier in the body is superseded.
func (s *MedicalRecordService) UpdateRecord(ctx context.Context, id int64, cmd *mr.UpdateRecordCommand) error {
	recordDate, err := validateRecordCommand(cmd.RecordDate, cmd.Diagnosis, cmd.DoctorName, cmd.PatientID)
	if err != nil {
		return err
	}

	rec := &mr.MedicalRecord{
		ID:              id,
		RecordDate:      recordDate,
		Diagnosis:       strings.TrimSpace(cmd.Diagnosis),
		DoctorName:      strings.TrimSpace(cmd.DoctorName),
		Recommendations: cmd.Recommendations,
		PatientID:       cmd.PatientID,
	}

	if err := s.repo.Update(ctx, rec); err != nil {
		return err
	}

	s.log.Info("medical record updated", zap.Int64("medical_record_id", id))
	return nil
}

func (s *MedicalRecordService) DeleteRecord(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info("medical record deleted", zap.Int64("medical_record_id", id))
	return nil
}

func validateRecordCommand(recordDate, diagnosis, doctorName string, patientID int64) (time.Time, error) {
	var errs []string

	if strings.TrimSpace(recordDate) == "" {
		errs = append(errs, "record_date is required")
	}
	if strings.TrimSpace(diagnosis) == "" {
		errs = append(errs, "diagnosis is required")
	}
	if strings.TrimSpace(doctorName) == "" {
		errs = append(errs, "doctor_name is required")
	}
	if patientID <= 0 {
		errs = append(errs, "patient_id is required")
	}

	if len(errs) > 0 {
		return time.Time{}, &ValidationError{Fields: errs}
	}

	return parseDate("record_date", recordDate)
}
