// Package policy implements policy management. Policies are the only kind
// that can be removed permanently.
package policy

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/insurance-crm/internal/domain"
)

type policyRepo interface {
	GetByID(ctx context.Context, owner domain.Principal, id uuid.UUID) (*domain.Policy, error)
	ListByCustomer(ctx context.Context, owner domain.Principal, customerID uuid.UUID) ([]domain.Policy, error)
	Create(ctx context.Context, p *domain.Policy) (*domain.Policy, error)
	Update(ctx context.Context, owner domain.Principal, id uuid.UUID, expected, next int, patch domain.PolicyPatch, entry domain.AuditEntry) (*domain.Policy, error)
	HardDelete(ctx context.Context, owner domain.Principal, id uuid.UUID) error
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

const MaxPolicyNumberLength = 64

// Service provides policy operations.
type Service struct {
	guard    authorizer
	policies policyRepo
	refs     referenceValidator
	audit    auditRecorder
	tx       txManager
	log      *slog.Logger
}

// NewService creates a new Policy service.
func NewService(
	log *slog.Logger,
	guard authorizer,
	policies policyRepo,
	refs referenceValidator,
	audit auditRecorder,
	tx txManager,
) *Service {
	return &Service{
		guard:    guard,
		policies: policies,
		refs:     refs,
		audit:    audit,
		tx:       tx,
		log:      log.With("service", "policy"),
	}
}
