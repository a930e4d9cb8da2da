package claim

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/insurance-crm/internal/domain"
	"github.com/heartmarshall/insurance-crm/internal/service/version"
)

// UpdateClaim applies a sparse update. A status change is appended to the
// status history; entering RESOLVED or DENIED records the resolution time,
// leaving them clears it.
func (s *Service) UpdateClaim(ctx context.Context, input UpdateClaimInput) (*domain.Claim, error) {
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

	var updated *domain.Claim
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, getErr := s.claims.GetByID(txCtx, owner, input.ID)
		if getErr != nil {
			return fmt.Errorf("get claim: %w", getErr)
		}
		if checkErr := version.Check(input.ExpectedVersion, current.Version); checkErr != nil {
			return fmt.Errorf("claim %s: %w", input.ID, checkErr)
		}

		var refs domain.References
		if patch.CustomerID != nil && *patch.CustomerID != current.CustomerID {
			refs.CustomerID = patch.CustomerID
		}
		if patch.PolicyID != nil && *patch.PolicyID != current.PolicyID {
			refs.PolicyID = patch.PolicyID
		}
		if !refs.IsEmpty() {
			if refErr := s.refs.ValidateReferences(txCtx, owner, domain.EntityKindClaim, refs); refErr != nil {
				return refErr
			}
		}

		var transition *domain.ClaimTransition
		if patch.Status != nil {
			transition = transitionFor(current, *patch.Status, entry)
		}

		var updateErr error
		updated, updateErr = s.claims.Update(txCtx, owner, input.ID,
			input.ExpectedVersion, version.Next(input.ExpectedVersion), patch, transition, entry)
		if updateErr != nil {
			return fmt.Errorf("update claim: %w", updateErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "claim updated",
		slog.String("owner", owner.String()),
		slog.String("claim_id", updated.ID.String()),
		slog.Int("version", updated.Version),
		slog.String("status", updated.Status.String()),
	)

	return updated, nil
}
