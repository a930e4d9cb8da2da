package claim

import (
	"time"

	"github.com/heartmarshall/insurance-crm/internal/domain"
)

// transitionFor returns the derived state for moving a claim from current
// to next, or nil when the status does not change.
func transitionFor(current *domain.Claim, next domain.ClaimStatus, entry domain.AuditEntry) *domain.ClaimTransition {
	if next == current.Status {
		return nil
	}

	from := current.Status
	t := &domain.ClaimTransition{
		StatusChange: domain.StatusChange{
			From:      &from,
			To:        next,
			ChangedAt: entry.Timestamp,
			ActorID:   entry.ActorID,
		},
	}
	if next.IsTerminal() {
		elapsed := max(entry.Timestamp.Sub(current.CreatedAt), 0)
		t.ResolutionTime = &elapsed
	}
	return t
}

// initialResolution is zero for claims filed already decided.
func initialResolution(status domain.ClaimStatus) *time.Duration {
	if !status.IsTerminal() {
		return nil
	}
	zero := time.Duration(0)
	return &zero
}
