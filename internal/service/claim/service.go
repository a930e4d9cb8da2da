// Package claim implements claim management, including the status history
// and resolution time derived from status changes.
package claim

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/insurance-crm/internal/domain"
)

type claimRepo interface {
	GetByID(ctx context.Context, owner domain.Principal, id uuid.UUID) (*domain.Claim, error)
	ListByCustomer(ctx context.Context, owner domain.Principal, customerID uuid.UUID) ([]domain.Claim, error)
	ListByPolicy(ctx context.Context, owner domain.Principal, policyID uuid.UUID) ([]domain.Claim, error)
	Create(ctx context.Context, c *domain.Claim) (*domain.Claim, error)
	Update(ctx context.Context, owner domain.Principal, id uuid.UUID, expected, next int, patch domain.ClaimPatch, transition *domain.ClaimTransition, entry domain.AuditEntry) (*domain.Claim, error)
}

type referenceValidator interface {
	ValidateReferences(ctx context.Context, owner domain.Principal, kind domain.EntityKind, refs domain.References) error
}

type authorizer interface {
	Authorize(ctx context.Context) (domain.Principal, error)
}

type auditRecorder interface {
	Entry(action domain.AuditAction, actor domain.Principal, changedFields []string) (domain.AuditEntry, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides claim operations.
type Service struct {
	guard  authorizer
	claims claimRepo
	refs   referenceValidator
	audit  auditRecorder
	tx     txManager
	log    *slog.Logger
}

// NewService creates a new Claim service.
func NewService(
	log *slog.Logger,
	guard authorizer,
	claims claimRepo,
	refs referenceValidator,
	audit auditRecorder,
	tx txManager,
) *Service {
	return &Service{
		guard:  guard,
		claims: claims,
		refs:   refs,
		audit:  audit,
		tx:     tx,
		log:    log.With("service", "claim"),
	}
}
