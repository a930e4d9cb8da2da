package policy

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/insurance-crm/internal/domain"
)

// HardDeletePolicy removes a policy permanently, audit trail included.
// Policies with claims cannot be removed; attached documents are detached.
func (s *Service) HardDeletePolicy(ctx context.Context, id uuid.UUID) error {
	owner, err := s.guard.Authorize(ctx)
	if err != nil {
		return err
	}

	if id == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}

	if err := s.policies.HardDelete(ctx, owner, id); err != nil {
		return fmt.Errorf("hard delete policy: %w", err)
	}

	s.log.InfoContext(ctx, "policy deleted",
		slog.String("owner", owner.String()),
		slog.String("policy_id", id.String()),
	)

	return nil
}
