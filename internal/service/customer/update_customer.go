package customer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/insurance-crm/internal/domain"
	"github.com/heartmarshall/insurance-crm/internal/service/version"
)

// UpdateCustomer applies a sparse update to an active customer. The caller's
// ExpectedVersion must match the stored version.
func (s *Service) UpdateCustomer(ctx context.Context, input UpdateCustomerInput) (*domain.Customer, error) {
	owner, err := s.guard.Authorize(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	patch := input.patch()
	entry, err := s.audit.Entry(domain.AuditActionUpdated, owner, patch.Fields())
	if err != nil {
		return nil, err
	}

	var updated *domain.Customer
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, getErr := s.customers.GetByID(txCtx, owner, input.ID)
		if getErr != nil {
			return fmt.Errorf("get customer: %w", getErr)
		}
		if current.IsDeleted() {
			return fmt.Errorf("customer %s is erased: %w", input.ID, domain.ErrNotFound)
		}
		if checkErr := version.Check(input.ExpectedVersion, current.Version); checkErr != nil {
			return fmt.Errorf("customer %s: %w", input.ID, checkErr)
		}

		var updateErr error
		updated, updateErr = s.customers.Update(txCtx, owner, input.ID,
			input.ExpectedVersion, version.Next(input.ExpectedVersion), patch, entry)
		if updateErr != nil {
			return fmt.Errorf("update customer: %w", updateErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "customer updated",
		slog.String("owner", owner.String()),
		slog.String("customer_id", updated.ID.String()),
		slog.Int("version", updated.Version),
		slog.Any("changed_fields", entry.ChangedFields),
	)

	return updated, nil
}
