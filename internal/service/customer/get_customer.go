package customer

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/insurance-crm/internal/domain"
)

// GetCustomer returns one of the caller's customers, erased ones included.
func (s *Service) GetCustomer(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	owner, err := s.guard.Authorize(ctx)
	if err != nil {
		return nil, err
	}

	c, err := s.customers.GetByID(ctx, owner, id)
	if err != nil {
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return c, nil
}

// ListCustomers returns the caller's customers. Erased customers are hidden
// unless includeErased is set.
func (s *Service) ListCustomers(ctx context.Context, includeErased bool) ([]domain.Customer, error) {
	owner, err := s.guard.Authorize(ctx)
	if err != nil {
		return nil, err
	}

	list, err := s.customers.List(ctx, owner, includeErased)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return list, nil
}
