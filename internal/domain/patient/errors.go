package patient

import (
	"errors"
	"fmt"
)

var (
	ErrPatientNotFound = errors.New("patient not found")
	ErrNoPatients      = errors.New("patient list is empty")
)

// DuplicatePolicyError reports a unique-constraint violation on the policy
// number, raised by storage rather than by a racy pre-check read.
type DuplicatePolicyError struct {
	PolicyNumber string
}

func (e *DuplicatePolicyError) Error() string {
	return fmt.Sprintf("patient with policy number %q already exists", e.PolicyNumber)
}

// HasDependentsError blocks deletion of a patient that still owns medical
// records.
type HasDependentsError struct {
	PatientID int64
}

func (e *HasDependentsError) Error() string {
	return fmt.Sprintf("patient %d cannot be deleted: medical records still reference it", e.PatientID)
}
