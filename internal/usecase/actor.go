package usecase

import "github.com/google/uuid"

// Actor identifies the authenticated caller of an operation. Elevated is
// true for staff accounts and gates every administrative operation.
type Actor struct {
	ID       uuid.UUID
	Elevated bool
}
