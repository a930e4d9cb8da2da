// Package engine is the boundary of the record core. It dispatches to the
// per-kind services and turns every outcome into a Result.
package engine

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/insurance-crm/internal/domain"
	"github.com/heartmarshall/insurance-crm/internal/service/claim"
	"github.com/heartmarshall/insurance-crm/internal/service/customer"
	"github.com/heartmarshall/insurance-crm/internal/service/document"
	"github.com/heartmarshall/insurance-crm/internal/service/policy"
	"github.com/heartmarshall/insurance-crm/pkg/ctxutil"
)

type customerService interface {
	CreateCustomer(ctx context.Context, input customer.CreateCustomerInput) (*domain.Customer, error)
	GetCustomer(ctx context.Context, id uuid.UUID) (*domain.Customer, error)
	ListCustomers(ctx context.Context, includeErased bool) ([]domain.Customer, error)
	UpdateCustomer(ctx context.Context, input customer.UpdateCustomerInput) (*domain.Customer, error)
	SoftDeleteCustomer(ctx context.Context, id uuid.UUID) (*domain.Customer, error)
}

type policyService interface {
	CreatePolicy(ctx context.Context, input policy.CreatePolicyInput) (*domain.Policy, error)
	GetPolicy(ctx context.Context, id uuid.UUID) (*domain.Policy, error)
	ListPoliciesByCustomer(ctx context.Context, customerID uuid.UUID) ([]domain.Policy, error)
	UpdatePolicy(ctx context.Context, input policy.UpdatePolicyInput) (*domain.Policy, error)
	HardDeletePolicy(ctx context.Context, id uuid.UUID) error
}

type claimService interface {
	CreateClaim(ctx context.Context, input claim.CreateClaimInput) (*domain.Claim, error)
	GetClaim(ctx context.Context, id uuid.UUID) (*domain.Claim, error)
	ListClaimsByCustomer(ctx context.Context, customerID uuid.UUID) ([]domain.Claim, error)
	ListClaimsByPolicy(ctx context.Context, policyID uuid.UUID) ([]domain.Claim, error)
	UpdateClaim(ctx context.Context, input claim.UpdateClaimInput) (*domain.Claim, error)
}

type documentService interface {
	CreateDocument(ctx context.Context, input document.CreateDocumentInput) (*domain.Document, error)
	GetDocument(ctx context.Context, id uuid.UUID) (*domain.Document, error)
	ListDocumentsByCustomer(ctx context.Context, customerID uuid.UUID) ([]domain.Document, error)
	ListDocumentsByPolicy(ctx context.Context, policyID uuid.UUID) ([]domain.Document, error)
	UpdateDocument(ctx context.Context, input document.UpdateDocumentInput) (*domain.Document, error)
}

// Observer receives the outcome of every operation.
type Observer interface {
	Observe(op, code string, d time.Duration)
}

type nopObserver struct{}

func (nopObserver) Observe(string, string, time.Duration) {}

// Engine is the single entry point for record operations.
type Engine struct {
	customers customerService
	policies  policyService
	claims    claimService
	documents documentService
	observer  Observer
	log       *slog.Logger
	now       func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithObserver sets the operation observer. Defaults to a no-op.
func WithObserver(o Observer) Option {
	return func(e *Engine) {
		if o != nil {
			e.observer = o
		}
	}
}

// New creates an Engine. Erasure is reachable only through
// SoftDeleteCustomer and permanent removal only through HardDeletePolicy.
func New(
	log *slog.Logger,
	customers customerService,
	policies policyService,
	claims claimService,
	documents documentService,
	opts ...Option,
) *Engine {
	e := &Engine{
		customers: customers,
		policies:  policies,
		claims:    claims,
		documents: documents,
		observer:  nopObserver{},
		log:       log.With("component", "engine"),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// run executes fn and converts its outcome into a Result.
func run[T any](ctx context.Context, e *Engine, op string, kind domain.EntityKind, fn func() (T, error)) Result[T] {
	start := e.now()
	data, err := fn()

	var res Result[T]
	if err == nil {
		res = success(data)
	} else {
		code, msg, fields := classify(kind, err)
		res = failure[T](code, msg, fields)
		if code == CodeStoreFailure {
			e.log.ErrorContext(ctx, "store failure",
				slog.String("op", op),
				slog.String("kind", kind.String()),
				slog.String("request_id", ctxutil.RequestIDFromCtx(ctx)),
				slog.String("error", err.Error()),
			)
		} else {
			e.log.DebugContext(ctx, "operation rejected",
				slog.String("op", op),
				slog.String("code", code.String()),
				slog.String("error", err.Error()),
			)
		}
	}

	e.observer.Observe(op, res.Code.String(), e.now().Sub(start))
	return res
}
