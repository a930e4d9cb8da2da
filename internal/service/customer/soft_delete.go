package customer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/insurance-crm/internal/domain"
)

// SoftDeleteCustomer erases a customer: the row stays, marked with a
// deletion time, and disappears from default listings. Repeating the call is
// a no-op that returns the already-erased customer.
func (s *Service) SoftDeleteCustomer(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	owner, err := s.guard.Authorize(ctx)
	if err != nil {
		return nil, err
	}

	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}

	entry, err := s.audit.Entry(domain.AuditActionDeleted, owner, nil)
	if err != nil {
		return nil, err
	}

	erased, err := s.customers.SoftDelete(ctx, owner, id, entry)
	if err != nil {
		return nil, fmt.Errorf("soft delete customer: %w", err)
	}

	s.log.InfoContext(ctx, "customer erased",
		slog.String("owner", owner.String()),
		slog.String("customer_id", id.String()),
	)

	return erased, nil
}
