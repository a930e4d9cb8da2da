package claim

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/insurance-crm/internal/domain"
)

// CreateClaimInput holds the parameters for filing a claim.
type CreateClaimInput struct {
	CustomerID   uuid.UUID
	PolicyID     uuid.UUID
	ClaimDetails json.RawMessage
	Status       domain.ClaimStatus // "" = OPEN
}

// Validate checks all fields and collects all errors.
func (i CreateClaimInput) Validate() error {
	var errs []domain.FieldError

	if i.CustomerID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "customerId", Message: "required"})
	}
	if i.PolicyID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "policyId", Message: "required"})
	}
	if i.ClaimDetails == nil {
		errs = append(errs, domain.FieldError{Field: "claimDetails", Message: "required"})
	} else if !isJSONObject(i.ClaimDetails) {
		errs = append(errs, domain.FieldError{Field: "claimDetails", Message: "must be a JSON object"})
	}
	if i.Status != "" && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: fmt.Sprintf("invalid claim status %q", i.Status)})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateClaimInput holds a sparse update. Nil fields are left untouched.
type UpdateClaimInput struct {
	ID              uuid.UUID
	ExpectedVersion int
	CustomerID      *uuid.UUID
	PolicyID        *uuid.UUID
	ClaimDetails    json.RawMessage
	Status          *domain.ClaimStatus
}

// Validate checks all fields and collects all errors.
func (i UpdateClaimInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.ExpectedVersion < 1 {
		errs = append(errs, domain.FieldError{Field: "expectedVersion", Message: "required"})
	}
	if i.CustomerID != nil && *i.CustomerID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "customerId", Message: "must not be empty"})
	}
	if i.PolicyID != nil && *i.PolicyID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "policyId", Message: "must not be empty"})
	}
	if i.ClaimDetails != nil && !isJSONObject(i.ClaimDetails) {
		errs = append(errs, domain.FieldError{Field: "claimDetails", Message: "must be a JSON object"})
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: fmt.Sprintf("invalid claim status %q", *i.Status)})
	}
	if len(i.patch().Fields()) == 0 {
		errs = append(errs, domain.FieldError{Field: "input", Message: "no fields to update"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i UpdateClaimInput) patch() domain.ClaimPatch {
	return domain.ClaimPatch{
		CustomerID:   i.CustomerID,
		PolicyID:     i.PolicyID,
		ClaimDetails: i.ClaimDetails,
		Status:       i.Status,
	}
}

func isJSONObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{' && json.Valid(trimmed)
}
