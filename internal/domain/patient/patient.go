package patient

import (
	"time"

	"github.com/healthdesk/patient-registry/internal/pagination"
)

// Patient is an insured person registered in the system. The identifier is
// assigned by storage on insert and never changes afterwards.
type Patient struct {
	ID           int64     `gorm:"column:patient_id;primaryKey;autoIncrement"`
	FirstName    string    `gorm:"column:first_name;type:text;not null"`
	LastName     string    `gorm:"column:last_name;type:text;not null"`
	BirthDate    time.Time `gorm:"column:birth_date;type:timestamptz;not null"`
	PolicyNumber string    `gorm:"column:polis_number;type:text;not null;uniqueIndex"`
}

func (Patient) TableName() string {
	return "patients"
}

// CreatePatientCommand carries raw inbound fields. Dates stay strings until
// the validator has parsed them.
type CreatePatientCommand struct {
	FirstName    string
	LastName     string
	BirthDate    string
	PolicyNumber string
}

// UpdatePatientCommand is a full replacement of every mutable field. The row
// identity comes from the request path, never from the body.
type UpdatePatientCommand struct {
	FirstName    string
	LastName     string
	BirthDate    string
	PolicyNumber string
}

type PagedPatients struct {
	Patients []*Patient
	Window   pagination.Window
}
