package claim

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/insurance-crm/internal/domain"
	"github.com/heartmarshall/insurance-crm/internal/service/version"
)

// CreateClaim files a claim against one of the caller's policies.
func (s *Service) CreateClaim(ctx context.Context, input CreateClaimInput) (*domain.Claim, error) {
	owner, err := s.guard.Authorize(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = domain.ClaimStatusOpen
	}

	entry, err := s.audit.Entry(domain.AuditActionCreated, owner, nil)
	if err != nil {
		return nil, err
	}

	var created *domain.Claim
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		refErr := s.refs.ValidateReferences(txCtx, owner, domain.EntityKindClaim, domain.References{
			CustomerID: &input.CustomerID,
			PolicyID:   &input.PolicyID,
		})
		if refErr != nil {
			return refErr
		}

		var createErr error
		created, createErr = s.claims.Create(txCtx, &domain.Claim{
			ID:           uuid.New(),
			OwnerID:      owner,
			CustomerID:   input.CustomerID,
			PolicyID:     input.PolicyID,
			ClaimDetails: input.ClaimDetails,
			Status:       status,
			StatusHistory: []domain.StatusChange{{
				To:        status,
				ChangedAt: entry.Timestamp,
				ActorID:   owner,
			}},
			ResolutionTime: initialResolution(status),
			Version:        version.Initial,
			AuditTrail:     []domain.AuditEntry{entry},
		})
		if createErr != nil {
			return fmt.Errorf("create claim: %w", createErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "claim created",
		slog.String("owner", owner.String()),
		slog.String("claim_id", created.ID.String()),
		slog.String("policy_id", created.PolicyID.String()),
		slog.String("status", created.Status.String()),
	)

	return created, nil
}
