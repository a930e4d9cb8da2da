// Package refcheck verifies that the entities a mutation points at exist and
// belong to the caller before anything is written.
package refcheck

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/insurance-crm/internal/domain"
)

type customerLookup interface {
	Exists(ctx context.Context, owner domain.Principal, id uuid.UUID) (bool, error)
}

type policyLookup interface {
	Exists(ctx context.Context, owner domain.Principal, id uuid.UUID) (bool, error)
}

// Validator checks foreign references per entity kind.
type Validator struct {
	customers customerLookup
	policies  policyLookup
}

// NewValidator creates a Validator.
func NewValidator(customers customerLookup, policies policyLookup) *Validator {
	return &Validator{customers: customers, policies: policies}
}

// ValidateReferences checks every reference set in refs. Erased customers
// count as existing. Called inside a transaction, the referenced rows stay
// locked against deletion until commit.
func (v *Validator) ValidateReferences(ctx context.Context, owner domain.Principal, kind domain.EntityKind, refs domain.References) error {
	switch kind {
	case domain.EntityKindCustomer:
		if !refs.IsEmpty() {
			return domain.NewValidationError("references", "customer takes no references")
		}
		return nil
	case domain.EntityKindPolicy:
		if refs.PolicyID != nil {
			return domain.NewValidationError("policyId", "policy cannot reference a policy")
		}
	case domain.EntityKindClaim, domain.EntityKindDocument:
	default:
		return domain.NewValidationError("kind", fmt.Sprintf("unknown entity kind %q", kind))
	}

	if refs.CustomerID != nil {
		ok, err := v.customers.Exists(ctx, owner, *refs.CustomerID)
		if err != nil {
			return fmt.Errorf("lookup customer: %w", err)
		}
		if !ok {
			return domain.NewReferenceNotFound(domain.EntityKindCustomer.String())
		}
	}

	if refs.PolicyID != nil {
		ok, err := v.policies.Exists(ctx, owner, *refs.PolicyID)
		if err != nil {
			return fmt.Errorf("lookup policy: %w", err)
		}
		if !ok {
			return domain.NewReferenceNotFound(domain.EntityKindPolicy.String())
		}
	}

	return nil
}
