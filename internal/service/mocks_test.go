package service

import (
	"context"
	"errors"

	mr "github.com/healthdesk/patient-registry/internal/domain/medical_record"
	"github.com/healthdesk/patient-registry/internal/domain/patient"
)

// Compile-time checks that the mocks satisfy the repository contracts.
var (
	_ patient.Repository = (*mockPatientRepo)(nil)
	_ mr.Repository      = (*mockRecordRepo)(nil)
)

type mockPatientRepo struct {
	CreateFunc  func(ctx context.Context, p *patient.Patient) error
	GetByIDFunc func(ctx context.Context, id int64) (*patient.Patient, error)
	UpdateFunc  func(ctx context.Context, p *patient.Patient) error
	DeleteFunc  func(ctx context.Context, id int64) error
	ListFunc    func(ctx context.Context, page, pageSize int) (*patient.PagedPatients, error)
}

func (m *mockPatientRepo) Create(ctx context.Context, p *patient.Patient) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, p)
	}
	return errors.New("CreateFunc not set")
}

func (m *mockPatientRepo) GetByID(ctx context.Context, id int64) (*patient.Patient, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.New("GetByIDFunc not set")
}

func (m *mockPatientRepo) Update(ctx context.Context, p *patient.Patient) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, p)
	}
	return errors.New("UpdateFunc not set")
}

func (m *mockPatientRepo) Delete(ctx context.Context, id int64) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return errors.New("DeleteFunc not set")
}

func (m *mockPatientRepo) List(ctx context.Context, page, pageSize int) (*patient.PagedPatients, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, page, pageSize)
	}
	return nil, errors.New("ListFunc not set")
}

type mockRecordRepo struct {
	CreateFunc        func(ctx context.Context, r *mr.MedicalRecord) error
	GetByIDFunc       func(ctx context.Context, id int64) (*mr.MedicalRecord, error)
	UpdateFunc        func(ctx context.Context, r *mr.MedicalRecord) error
	DeleteFunc        func(ctx context.Context, id int64) error
	ListFunc          func(ctx context.Context, page, pageSize int) (*mr.PagedRecords, error)
	ListByPatientFunc func(ctx context.Context, patientID int64) ([]*mr.MedicalRecord, error)
}

func (m *mockRecordRepo) Create(ctx context.Context, r *mr.MedicalRecord) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, r)
	}
	return errors.New("CreateFunc not set")
}

func (m *mockRecordRepo) GetByID(ctx context.Context, id int64) (*mr.MedicalRecord, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.New("GetByIDFunc not set")
}

func (m *mockRecordRepo) Update(ctx context.Context, r *mr.MedicalRecord) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, r)
	}
	return errors.New("UpdateFunc not set")
}

func (m *mockRecordRepo) Delete(ctx context.Context, id int64) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return errors.New("DeleteFunc not set")
}

func (m *mockRecordRepo) List(ctx context.Context, page, pageSize int) (*mr.PagedRecords, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, page, pageSize)
	}
	return nil, errors.New("ListFunc not set")
}

func (m *mockRecordRepo) ListByPatient(ctx context.Context, patientID int64) ([]*mr.MedicalRecord, error) {
	if m.ListByPatientFunc != nil {
		return m.ListByPatientFunc(ctx, patientID)
	}
	return nil, errors.New("ListByPatientFunc not set")
}
