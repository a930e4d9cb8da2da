package policy

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/insurance-crm/internal/domain"
	"github.com/heartmarshall/insurance-crm/internal/service/version"
)

// CreatePolicy creates a policy for one of the caller's customers.
func (s *Service) CreatePolicy(ctx context.Context, input CreatePolicyInput) (*domain.Policy, error) {
	owner, err := s.guard.Authorize(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = domain.PolicyStatusActive
	}

	entry, err := s.audit.Entry(domain.AuditActionCreated, owner, nil)
	if err != nil {
		return nil, err
	}

	var created *domain.Policy
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		refErr := s.refs.ValidateReferences(txCtx, owner, domain.EntityKindPolicy, domain.References{
			CustomerID: &input.CustomerID,
		})
		if refErr != nil {
			return refErr
		}

		var createErr error
		created, createErr = s.policies.Create(txCtx, &domain.Policy{
			ID:            uuid.New(),
			OwnerID:       owner,
			CustomerID:    input.CustomerID,
			PolicyNumber:  strings.TrimSpace(input.PolicyNumber),
			PolicyType:    input.PolicyType,
			PremiumAmount: normalizePremium(input.PremiumAmount),
			RenewalDate:   input.RenewalDate.UTC(),
			Status:        status,
			Version:       version.Initial,
			AuditTrail:    []domain.AuditEntry{entry},
		})
		if createErr != nil {
			return fmt.Errorf("create policy: %w", createErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "policy created",
		slog.String("owner", owner.String()),
		slog.String("policy_id", created.ID.String()),
		slog.String("customer_id", created.CustomerID.String()),
	)

	return created, nil
}
