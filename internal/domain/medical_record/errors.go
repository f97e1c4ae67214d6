package medical_record

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound   = errors.New("medical record not found")
	ErrNoRecords        = errors.New("medical record list is empty")
	ErrNoPatientRecords = errors.New("no medical records found for patient")
)

// DanglingReferenceError reports a foreign-key violation: the record names a
// patient that does not exist at commit time.
type DanglingReferenceError struct {
	PatientID int64
}

func (e *DanglingReferenceError) Error() string {
	return fmt.Sprintf("referenced patient %d does not exist", e.PatientID)
}
