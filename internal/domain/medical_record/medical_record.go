package medical_record

import (
	"time"

	"github.com/healthdesk/patient-registry/internal/domain/patient"
	"github.com/healthdesk/patient-registry/internal/pagination"
)

// MedicalRecord is one entry in a patient's history. It belongs to exactly
// one patient; the reference must resolve to an existing row at write time,
// which the database foreign key enforces.
type MedicalRecord struct {
	ID              int64     `gorm:"column:medical_record_id;primaryKey;autoIncrement"`
	RecordDate      time.Time `gorm:"column:record_date;type:timestamptz;not null"`
	Diagnosis       string    `gorm:"column:diagnosis;type:text;not null"`
	DoctorName      string    `gorm:"column:doctor_name;type:text;not null"`
	Recommendations string    `gorm:"column:recomendations;type:text"`
	PatientID       int64     `gorm:"column:patient_id;not null;index"`

	// Association only so AutoMigrate emits the FK with ON DELETE RESTRICT.
	Patient *patient.Patient `gorm:"foreignKey:PatientID;references:ID;constraint:OnDelete:RESTRICT" json:"-"`
}

func (MedicalRecord) TableName() string {
	return "medical_records"
}

type CreateRecordCommand struct {
	RecordDate      string
	Diagnosis       string
	DoctorName      string
	Recommendations string
	PatientID       int64
}

// UpdateRecordCommand is a full replacement; the row identity comes from the
// request path.
type UpdateRecordCommand struct {
	RecordDate      string
	Diagnosis       string
	DoctorName      string
	Recommendations string
	PatientID       int64
}

type PagedRecords struct {
	Records []*MedicalRecord
	Window  pagination.Window
}
