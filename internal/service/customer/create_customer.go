package customer

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/insurance-crm/internal/domain"
	"github.com/heartmarshall/insurance-crm/internal/service/version"
)

// CreateCustomer creates a customer owned by the caller.
func (s *Service) CreateCustomer(ctx context.Context, input CreateCustomerInput) (*domain.Customer, error) {
	owner, err := s.guard.Authorize(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	data := input.EncryptedData
	if data == nil {
		data = json.RawMessage(`{}`)
	}
	typ := input.Type
	if typ == "" {
		typ = domain.CustomerTypeIndividual
	}

	entry, err := s.audit.Entry(domain.AuditActionCreated, owner, nil)
	if err != nil {
		return nil, err
	}

	var created *domain.Customer
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.customers.Create(txCtx, &domain.Customer{
			ID:            uuid.New(),
			OwnerID:       owner,
			EncryptedData: data,
			Tags:          normalizeTags(input.Tags),
			Type:          typ,
			Version:       version.Initial,
			AuditTrail:    []domain.AuditEntry{entry},
		})
		if createErr != nil {
			return fmt.Errorf("create customer: %w", createErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "customer created",
		slog.String("owner", owner.String()),
		slog.String("customer_id", created.ID.String()),
		slog.String("type", created.Type.String()),
	)

	return created, nil
}
