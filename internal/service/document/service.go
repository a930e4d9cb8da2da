// Package document manages metadata for files kept in external storage.
package document

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/insurance-crm/internal/domain"
)

type documentRepo interface {
	GetByID(ctx context.Context, owner domain.Principal, id uuid.UUID) (*domain.Document, error)
	ListByCustomer(ctx context.Context, owner domain.Principal, customerID uuid.UUID) ([]domain.Document, error)
	ListByPolicy(ctx context.Context, owner domain.Principal, policyID uuid.UUID) ([]domain.Document, error)
	Create(ctx context.Context, d *domain.Document) (*domain.Document, error)
	Update(ctx context.Context, owner domain.Principal, id uuid.UUID, expected, next int, patch domain.DocumentPatch, entry domain.AuditEntry) (*domain.Document, error)
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

const (
	MaxNameLength    = 255
	MaxLocatorLength = 1024
)

// Service provides document operations.
type Service struct {
	guard         authorizer
	documents     documentRepo
	refs          referenceValidator
	audit         auditRecorder
	tx            txManager
	defaultBucket string
	log           *slog.Logger
}

// NewService creates a new Document service. Documents created without a
// bucket are filed under defaultBucket.
func NewService(
	log *slog.Logger,
	guard authorizer,
	documents documentRepo,
	refs referenceValidator,
	audit auditRecorder,
	tx txManager,
	defaultBucket string,
) *Service {
	return &Service{
		guard:         guard,
		documents:     documents,
		refs:          refs,
		audit:         audit,
		tx:            tx,
		defaultBucket: defaultBucket,
		log:           log.With("service", "document"),
	}
}
