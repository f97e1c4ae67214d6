package patient

import "context"

type Repository interface {
	// Create persists a new patient and fills in the assigned identifier.
	// Returns *DuplicatePolicyError on a policy-number collision.
	Create(ctx context.Context, p *Patient) error

	// GetByID retrieves a patient by primary key. Returns ErrPatientNotFound
	// if no row matches.
	GetByID(ctx context.Context, id int64) (*Patient, error)

	// Update replaces every mutable field of the row identified by p.ID.
	// Returns ErrPatientNotFound when no row matched, *DuplicatePolicyError
	// on a policy-number collision.
	Update(ctx context.Context, p *Patient) error

	// Delete removes the patient. Returns ErrPatientNotFound when no row
	// matched, *HasDependentsError when medical records still reference it.
	Delete(ctx context.Context, id int64) error

	// List returns one pagination window of patients ordered by identifier.
	List(ctx context.Context, page, pageSize int) (*PagedPatients, error)
}
