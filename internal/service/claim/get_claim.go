package claim

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/insurance-crm/internal/domain"
)

// GetClaim returns one of the caller's claims.
func (s *Service) GetClaim(ctx context.Context, id uuid.UUID) (*domain.Claim, error) {
	owner, err := s.guard.Authorize(ctx)
	if err != nil {
		return nil, err
	}

	c, err := s.claims.GetByID(ctx, owner, id)
	if err != nil {
		return nil, fmt.Errorf("get claim: %w", err)
	}
	return c, nil
}

func (s *Service) ListClaimsByCustomer(ctx context.Context, customerID uuid.UUID) ([]domain.Claim, error) {
	owner, err := s.guard.Authorize(ctx)
	if err != nil {
		return nil, err
	}

	list, err := s.claims.ListByCustomer(ctx, owner, customerID)
	if err != nil {
		return nil, fmt.Errorf("list claims by customer: %w", err)
	}
	return list, nil
}

func (s *Service) ListClaimsByPolicy(ctx context.Context, policyID uuid.UUID) ([]domain.Claim, error) {
	owner, err := s.guard.Authorize(ctx)
	if err != nil {
		return nil, err
	}

	list, err := s.claims.ListByPolicy(ctx, owner, policyID)
	if err != nil {
		return nil, fmt.Errorf("list claims by policy: %w", err)
	}
	return list, nil
}
