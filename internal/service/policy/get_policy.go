package policy

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/insurance-crm/internal/domain"
)

// GetPolicy returns one of the caller's policies.
func (s *Service) GetPolicy(ctx context.Context, id uuid.UUID) (*domain.Policy, error) {
	owner, err := s.guard.Authorize(ctx)
	if err != nil {
		return nil, err
	}

	p, err := s.policies.GetByID(ctx, owner, id)
	if err != nil {
		return nil, fmt.Errorf("get policy: %w", err)
	}
	return p, nil
}

// ListPoliciesByCustomer returns the caller's policies held by customerID.
func (s *Service) ListPoliciesByCustomer(ctx context.Context, customerID uuid.UUID) ([]domain.Policy, error) {
	owner, err := s.guard.Authorize(ctx)
	if err != nil {
		return nil, err
	}

	list, err := s.policies.ListByCustomer(ctx, owner, customerID)
	if err != nil {
		return nil, fmt.Errorf("list policies: %w", err)
	}
	return list, nil
}
