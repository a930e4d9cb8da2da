package domain

import "github.com/google/uuid"

// References lists the foreign entities a mutation points at. Nil means the
// mutation does not set that reference.
type References struct {
	CustomerID *uuid.UUID
	PolicyID   *uuid.UUID
}

// IsEmpty reports whether no reference is set.
func (r References) IsEmpty() bool {
	return r.CustomerID == nil && r.PolicyID == nil
}
