package policy

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/insurance-crm/internal/domain"
	"github.com/heartmarshall/insurance-crm/internal/service/version"
)

// UpdatePolicy applies a sparse update. Moving the policy to another
// customer re-validates the reference.
func (s *Service) UpdatePolicy(ctx context.Context, input UpdatePolicyInput) (*domain.Policy, error) {
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

	var updated *domain.Policy
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, getErr := s.policies.GetByID(txCtx, owner, input.ID)
		if getErr != nil {
			return fmt.Errorf("get policy: %w", getErr)
		}
		if checkErr := version.Check(input.ExpectedVersion, current.Version); checkErr != nil {
			return fmt.Errorf("policy %s: %w", input.ID, checkErr)
		}

		if patch.CustomerID != nil && *patch.CustomerID != current.CustomerID {
			refErr := s.refs.ValidateReferences(txCtx, owner, domain.EntityKindPolicy, domain.References{
				CustomerID: patch.CustomerID,
			})
			if refErr != nil {
				return refErr
			}
		}

		var updateErr error
		updated, updateErr = s.policies.Update(txCtx, owner, input.ID,
			input.ExpectedVersion, version.Next(input.ExpectedVersion), patch, entry)
		if updateErr != nil {
			return fmt.Errorf("update policy: %w", updateErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "policy updated",
		slog.String("owner", owner.String()),
		slog.String("policy_id", updated.ID.String()),
		slog.Int("version", updated.Version),
		slog.Any("changed_fields", entry.ChangedFields),
	)

	return updated, nil
}
