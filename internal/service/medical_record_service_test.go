package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	mr "github.com/healthdesk/patient-registry/internal/domain/medical_record"
	"github.com/healthdesk/patient-registry/internal/pagination"
)

func newRecordService(repo mr.Repository) *MedicalRecordService {
	return NewMedicalRecordService(repo, zap.NewNop())
}

func TestCreateRecord(t *testing.T) {
	repo := &mockRecordRepo{
		CreateFunc: func(_ context.Context, r *mr.MedicalRecord) error {
			r.ID = 5
			return nil
		},
	}

	r, err := newRecordService(repo).CreateRecord(context.Background(), &mr.CreateRecordCommand{
		RecordDate:      "2024-03-15T10:00:00Z",
		Diagnosis:       "flu",
		DoctorName:      "Dr. House",
		Recommendations: "rest",
		PatientID:       1,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(5), r.ID)
	assert.Equal(t, time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC), r.RecordDate)
	assert.Equal(t, "rest", r.Recommendations)
}

func TestCreateRecordDanglingReference(t *testing.T) {
	repo := &mockRecordRepo{
		CreateFunc: func(_ context.Context, r *mr.MedicalRecord) error {
			return &mr.DanglingReferenceError{PatientID: r.PatientID}
		},
	}

	_, err := newRecordService(repo).CreateRecord(context.Background(), &mr.CreateRecordCommand{
		RecordDate: "2024-03-15T10:00:00Z",
		Diagnosis:  "flu",
		DoctorName: "Dr. House",
		PatientID:  999,
	})

	var danglingErr *mr.DanglingReferenceError
	require.ErrorAs(t, err, &danglingErr)
	assert.Equal(t, int64(999), danglingErr.PatientID)
}

func TestCreateRecordCollectsAllMissingFields(t *testing.T) {
	svc := newRecordService(&mockRecordRepo{})

	_, err := svc.CreateRecord(context.Background(), &mr.CreateRecordCommand{})

	var validErr *ValidationError
	require.ErrorAs(t, err, &validErr)
	assert.Equal(t, []string{
		"record_date is required",
		"diagnosis is required",
		"doctor_name is required",
		"patient_id is required",
	}, validErr.Fields)
}

func TestCreateRecordRecommendationsOptional(t *testing.T) {
	repo := &mockRecordRepo{
		CreateFunc: func(_ context.Context, _ *mr.MedicalRecord) error { return nil },
	}

	r, err := newRecordService(repo).CreateRecord(context.Background(), &mr.CreateRecordCommand{
		RecordDate: "2024-03-15T10:00:00Z",
		Diagnosis:  "flu",
		DoctorName: "Dr. House",
		PatientID:  1,
	})

	require.NoError(t, err)
	assert.Empty(t, r.Recommendations)
}

func TestCreateRecordMalformedDate(t *testing.T) {
	svc := newRecordService(&mockRecordRepo{})

	_, err := svc.CreateRecord(context.Background(), &mr.CreateRecordCommand{
		RecordDate: "15.03.2024 10:00",
		Diagnosis:  "flu",
		DoctorName: "Dr. House",
		PatientID:  1,
	})

	var dateErr *MalformedDateError
	require.ErrorAs(t, err, &dateErr)
	assert.Equal(t, "record_date", dateErr.Field)
}

func TestListRecordsEmptyCollectionIsNotFound(t *testing.T) {
	repo := &mockRecordRepo{
		ListFunc: func(_ context.Context, page, pageSize int) (*mr.PagedRecords, error) {
			return &mr.PagedRecords{Window: pagination.Compute(page, pageSize, 0)}, nil
		},
	}

	_, err := newRecordService(repo).ListRecords(context.Background(), 1, 10)

	assert.ErrorIs(t, err, mr.ErrNoRecords)
}

func TestListRecordsByPatientEmptyIsNotFound(t *testing.T) {
	repo := &mockRecordRepo{
		ListByPatientFunc: func(_ context.Context, _ int64) ([]*mr.MedicalRecord, error) {
			return nil, nil
		},
	}

	_, err := newRecordService(repo).ListRecordsByPatient(context.Background(), 1)

	assert.ErrorIs(t, err, mr.ErrNoPatientRecords)
}

func TestListRecordsByPatient(t *testing.T) {
	repo := &mockRecordRepo{
		ListByPatientFunc: func(_ context.Context, patientID int64) ([]*mr.MedicalRecord, error) {
			return []*mr.MedicalRecord{
				{ID: 1, PatientID: patientID},
				{ID: 2, PatientID: patientID},
			}, nil
		},
	}

	records, err := newRecordService(repo).ListRecordsByPatient(context.Background(), 7)

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, int64(7), records[0].PatientID)
}

func TestUpdateRecordPathIDSupersedesBody(t *testing.T) {
	var got *mr.MedicalRecord
	repo := &mockRecordRepo{
		UpdateFunc: func(_ context.Context, r *mr.MedicalRecord) error {
			got = r
			return nil
		},
	}

	err := newRecordService(repo).UpdateRecord(context.Background(), 12, &mr.UpdateRecordCommand{
		RecordDate: "2024-03-15T10:00:00Z",
		Diagnosis:  "flu",
		DoctorName: "Dr. House",
		PatientID:  1,
	})

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(12), got.ID)
}

func TestUpdateRecordNotFound(t *testing.T) {
	repo := &mockRecordRepo{
		UpdateFunc: func(_ context.Context, _ *mr.MedicalRecord) error {
			return mr.ErrRecordNotFound
		},
	}

	err := newRecordService(repo).UpdateRecord(context.Background(), 404, &mr.UpdateRecordCommand{
		RecordDate: "2024-03-15T10:00:00Z",
		Diagnosis:  "flu",
		DoctorName: "Dr. House",
		PatientID:  1,
	})

	assert.ErrorIs(t, err, mr.ErrRecordNotFound)
}

func TestDeleteRecordNotFound(t *testing.T) {
	repo := &mockRecordRepo{
		DeleteFunc: func(_ context.Context, _ int64) error {
			return mr.ErrRecordNotFound
		},
	}

	err := newRecordService(repo).DeleteRecord(context.Background(), 404)

	assert.ErrorIs(t, err, mr.ErrRecordNotFound)
}
