package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Claim is a request for payment under a policy.
type Claim struct {
	ID             uuid.UUID
	OwnerID        Principal
	CustomerID     uuid.UUID
	PolicyID       uuid.UUID
	ClaimDetails   json.RawMessage
	Status         ClaimStatus
	StatusHistory  []StatusChange
	ResolutionTime *time.Duration
	Version        int
	AuditTrail     []AuditEntry
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ClaimPatch is a sparse update: nil fields are left untouched.
type ClaimPatch struct {
	CustomerID   *uuid.UUID
	PolicyID     *uuid.UUID
	ClaimDetails json.RawMessage
	Status       *ClaimStatus
}

// Fields returns the names of the fields present in the patch, in column order.
func (p ClaimPatch) Fields() []string {
	var fields []string
	if p.CustomerID != nil {
		fields = append(fields, "customerId")
	}
	if p.PolicyID != nil {
		fields = append(fields, "policyId")
	}
	if p.ClaimDetails != nil {
		fields = append(fields, "claimDetails")
	}
	if p.Status != nil {
		fields = append(fields, "status")
	}
	return fields
}

// ClaimTransition is the derived state written alongside a claim update when
// the status changes.
type ClaimTransition struct {
	StatusChange   StatusChange
	ResolutionTime *time.Duration
}
