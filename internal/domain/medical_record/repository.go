package medical_record

import "context"

type Repository interface {
	// Create persists a new record and fills in the assigned identifier.
	// Returns *DanglingReferenceError when the patient does not exist.
	Create(ctx context.Context, r *MedicalRecord) error

	// GetByID retrieves a record by primary key. Returns ErrRecordNotFound
	// if no row matches.
	GetByID(ctx context.Context, id int64) (*MedicalRecord, error)

	// Update replaces every mutable field of the row identified by r.ID.
	// Returns ErrRecordNotFound when no row matched, *DanglingReferenceError
	// when the new patient reference does not exist.
	Update(ctx context.Context, r *MedicalRecord) error

	// Delete removes the record unconditionally. Returns ErrRecordNotFound
	// when no row matched.
	Delete(ctx context.Context, id int64) error

	// List returns one pagination window of records ordered by identifier.
	List(ctx context.Context, page, pageSize int) (*PagedRecords, error)

	// ListByPatient returns every record owned by the given patient, ordered
	// by identifier. An empty slice is not an error here; the service layer
	// decides how to report it.
	ListByPatient(ctx context.Context, patientID int64) ([]*MedicalRecord, error)
}
