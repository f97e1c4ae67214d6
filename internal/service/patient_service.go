package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/healthdesk/patient-registry/internal/domain/patient"
)

type PatientService struct {
	repo patient.Repository
	log  *zap.Logger
}

func NewPatientService(repo patient.Repository, log *zap.Logger) *PatientService {
	return &PatientService{repo: repo, log: log}
}

func (s *PatientService) CreatePatient(ctx context.Context, cmd *patient.CreatePatientCommand) (*patient.Patient, error) {
	birthDate, err := validatePatientCommand(cmd.FirstName, cmd.LastName, cmd.BirthDate, cmd.PolicyNumber)
	if err != nil {
		return nil, err
	}

	p := &patient.Patient{
		FirstName:    strings.TrimSpace(cmd.FirstName),
		LastName:     strings.TrimSpace(cmd.LastName),
		BirthDate:    birthDate,
		PolicyNumber: strings.TrimSpace(cmd.PolicyNumber),
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	s.log.Info("patient created", zap.Int64("patient_id", p.ID))
	return p, nil
}

func (s *PatientService) GetPatient(ctx context.Context, id int64) (*patient.Patient, error) {
	return s.repo.GetByID(ctx, id)
}

// ListPatients returns one page of patients. An empty collection is reported
// as patient.ErrNoPatients; a window past the end of a non-empty collection
// is a normal empty page.
func (s *PatientService) ListPatients(ctx context.Context, page, pageSize int) (*patient.PagedPatients, error) {
	paged, err := s.repo.List(ctx, page, pageSize)
	if err != nil {
		s.log.Error("failed to list patients", zap.Error(err))
		return nil, fmt.Errorf("listing patients: %w", err)
	}
	if paged.Window.TotalRows == 0 {
		return nil, patient.ErrNoPatients
	}
	return paged, nil
}

// UpdatePatient replaces every field of the patient identified by the path
// id. The outcome always reflects whether the row actually changed: a miss is
// ErrPatientNotFound, never a blind success.
func (s *PatientService) UpdatePatient(ctx context.Context, id int64, cmd *patient.UpdatePatientCommand) error {
	birthDate, err := validatePatientCommand(cmd.FirstName, cmd.LastName, cmd.BirthDate, cmd.PolicyNumber)
	if err != nil {
		return err
	}

	p := &patient.Patient{
		ID:           id,
		FirstName:    strings.TrimSpace(cmd.FirstName),
		LastName:     strings.TrimSpace(cmd.LastName),
		BirthDate:    birthDate,
		PolicyNumber: strings.TrimSpace(cmd.PolicyNumber),
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return err
	}

	s.log.Info("patient updated", zap.Int64("patient_id", id))
	return nil
}

func (s *PatientService) DeletePatient(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info("patient deleted", zap.Int64("patient_id", id))
	return nil
}

func validatePatientCommand(firstName, lastName, birthDate, policyNumber string) (time.Time, error) {
	if err := requireFields(map[string]string{
		"first_name":    firstName,
		"last_name":     lastName,
		"birth_date":    birthDate,
		"policy_number": policyNumber,
	}, []string{"first_name", "last_name", "birth_date", "policy_number"}); err != nil {
		return time.Time{}, err
	}

	return parseDate("birth_date", birthDate)
}
