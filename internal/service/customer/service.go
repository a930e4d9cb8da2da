// Package customer implements customer management: creation, reads, sparse
// updates and GDPR erasure.
package customer

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/insurance-crm/internal/domain"
)

type customerRepo interface {
	GetByID(ctx context.Context, owner domain.Principal, id uuid.UUID) (*domain.Customer, error)
	List(ctx context.Context, owner domain.Principal, includeErased bool) ([]domain.Customer, error)
	Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error)
	Update(ctx context.Context, owner domain.Principal, id uuid.UUID, expected, next int, patch domain.CustomerPatch, entry domain.AuditEntry) (*domain.Customer, error)
	SoftDelete(ctx context.Context, owner domain.Principal, id uuid.UUID, entry domain.AuditEntry) (*domain.Customer, error)
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

const (
	MaxTags      = 50
	MaxTagLength = 64
)

// Service provides customer operations.
type Service struct {
	guard     authorizer
	customers customerRepo
	audit     auditRecorder
	tx        txManager
	log       *slog.Logger
}

// NewService creates a new Customer service.
func NewService(
	log *slog.Logger,
	guard authorizer,
	customers customerRepo,
	audit auditRecorder,
	tx txManager,
) *Service {
	return &Service{
		guard:     guard,
		customers: customers,
		audit:     audit,
		tx:        tx,
		log:       log.With("service", "customer"),
	}
}
