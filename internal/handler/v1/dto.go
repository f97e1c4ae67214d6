package v1

import (
	"time"

	mr "github.com/healthdesk/patient-registry/internal/domain/medical_record"
	"github.com/healthdesk/patient-registry/internal/domain/patient"
	"github.com/healthdesk/patient-registry/internal/pagination"
)

// Wire formats for dates. Birth dates are calendar dates, record dates carry
// time of day; both are stored in UTC.
const (
	birthDateLayout  = "2006-01-02"
	recordDateLayout = time.RFC3339
)

type PatientRequest struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	BirthDate    string `json:"birth_date"`
	PolicyNumber string `json:"policy_number"`
}

type PatientResponse struct {
	PatientID    int64  `json:"patient_id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	BirthDate    string `json:"birth_date"`
	PolicyNumber string `json:"policy_number"`
}

func toPatientResponse(p *patient.Patient) PatientResponse {
	return PatientResponse{
		PatientID:    p.ID,
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		BirthDate:    p.BirthDate.UTC().Format(birthDateLayout),
		PolicyNumber: p.PolicyNumber,
	}
}

type MedicalRecordRequest struct {
	RecordDate      string `json:"record_date"`
	Diagnosis       string `json:"diagnosis"`
	DoctorName      string `json:"doctor_name"`
	Recommendations string `json:"recommendations"`
	PatientID       int64  `json:"patient_id"`
}

type MedicalRecordResponse struct {
	MedicalRecordID int64  `json:"medical_record_id"`
	RecordDate      string `json:"record_date"`
	Diagnosis       string `json:"diagnosis"`
	DoctorName      string `json:"doctor_name"`
	Recommendations string `json:"recommendations,omitempty"`
	PatientID       int64  `json:"patient_id"`
}

func toMedicalRecordResponse(r *mr.MedicalRecord) MedicalRecordResponse {
	return MedicalRecordResponse{
		MedicalRecordID: r.ID,
		RecordDate:      r.RecordDate.UTC().Format(recordDateLayout),
		Diagnosis:       r.Diagnosis,
		DoctorName:      r.DoctorName,
		Recommendations: r.Recommendations,
		PatientID:       r.PatientID,
	}
}

type PaginationResponse struct {
	CurrentPage int   `json:"current_page"`
	TotalPages  int   `json:"total_pages"`
	PageSize    int   `json:"page_size"`
	TotalRows   int64 `json:"total_rows"`
}

func toPaginationResponse(w pagination.Window) PaginationResponse {
	return PaginationResponse{
		CurrentPage: w.CurrentPage,
		TotalPages:  w.TotalPages,
		PageSize:    w.PageSize,
		TotalRows:   w.TotalRows,
	}
}

type PagedPatientsResponse struct {
	Patients   []PatientResponse  `json:"patients"`
	Pagination PaginationResponse `json:"pagination"`
}

type PagedRecordsResponse struct {
	MedicalRecords []MedicalRecordResponse `json:"medical_records"`
	Pagination     PaginationResponse      `json:"pagination"`
}
