package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/insurance-crm/internal/domain"
	"github.com/heartmarshall/insurance-crm/internal/service/claim"
	"github.com/heartmarshall/insurance-crm/internal/service/customer"
	"github.com/heartmarshall/insurance-crm/internal/service/document"
	"github.com/heartmarshall/insurance-crm/internal/service/engine"
	"github.com/heartmarshall/insurance-crm/internal/service/policy"
)

// recordEngine defines the engine operations served over HTTP.
type recordEngine interface {
	CreateCustomer(ctx context.Context, input customer.CreateCustomerInput) engine.Result[*domain.Customer]
	GetCustomer(ctx context.Context, id uuid.UUID) engine.Result[*domain.Customer]
	ListCustomers(ctx context.Context, includeErased bool) engine.Result[[]domain.Customer]
	UpdateCustomer(ctx context.Context, input customer.UpdateCustomerInput) engine.Result[*domain.Customer]
	SoftDeleteCustomer(ctx context.Context, id uuid.UUID) engine.Result[*domain.Customer]

	CreatePolicy(ctx context.Context, input policy.CreatePolicyInput) engine.Result[*domain.Policy]
	GetPolicy(ctx context.Context, id uuid.UUID) engine.Result[*domain.Policy]
	ListPoliciesByCustomer(ctx context.Context, customerID uuid.UUID) engine.Result[[]domain.Policy]
	UpdatePolicy(ctx context.Context, input policy.UpdatePolicyInput) engine.Result[*domain.Policy]
	HardDeletePolicy(ctx context.Context, id uuid.UUID) engine.Result[struct{}]

	CreateClaim(ctx context.Context, input claim.CreateClaimInput) engine.Result[*domain.Claim]
	GetClaim(ctx context.Context, id uuid.UUID) engine.Result[*domain.Claim]
	ListClaimsByCustomer(ctx context.Context, customerID uuid.UUID) engine.Result[[]domain.Claim]
	ListClaimsByPolicy(ctx context.Context, policyID uuid.UUID) engine.Result[[]domain.Claim]
	UpdateClaim(ctx context.Context, input claim.UpdateClaimInput) engine.Result[*domain.Claim]

	CreateDocument(ctx context.Context, input document.CreateDocumentInput) engine.Result[*domain.Document]
	GetDocument(ctx context.Context, id uuid.UUID) engine.Result[*domain.Document]
	ListDocumentsByCustomer(ctx context.Context, customerID uuid.UUID) engine.Result[[]domain.Document]
	ListDocumentsByPolicy(ctx context.Context, policyID uuid.UUID) engine.Result[[]domain.Document]
	UpdateDocument(ctx context.Context, input document.UpdateDocumentInput) engine.Result[*domain.Document]
}

// RecordHandler serves the customer, policy, claim and document endpoints.
type RecordHandler struct {
	engine  recordEngine
	maxBody int64
	log     *slog.Logger
}

// NewRecordHandler creates a RecordHandler. Request bodies larger than
// maxBody bytes are rejected.
func NewRecordHandler(e recordEngine, maxBody int64, logger *slog.Logger) *RecordHandler {
	return &RecordHandler{engine: e, maxBody: maxBody, log: logger.With("handler", "records")}
}

// Register mounts all record routes on mux. Claims and documents have no
// DELETE route.
func (h *RecordHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /customers", h.CreateCustomer)
	mux.HandleFunc("GET /customers", h.ListCustomers)
	mux.HandleFunc("GET /customers/{id}", h.GetCustomer)
	mux.HandleFunc("PATCH /customers/{id}", h.UpdateCustomer)
	mux.HandleFunc("DELETE /customers/{id}", h.SoftDeleteCustomer)
	mux.HandleFunc("GET /customers/{id}/policies", h.ListPoliciesByCustomer)
	mux.HandleFunc("GET /customers/{id}/claims", h.ListClaimsByCustomer)
	mux.HandleFunc("GET /customers/{id}/documents", h.ListDocumentsByCustomer)

	mux.HandleFunc("POST /policies", h.CreatePolicy)
	mux.HandleFunc("GET /policies/{id}", h.GetPolicy)
	mux.HandleFunc("PATCH /policies/{id}", h.UpdatePolicy)
	mux.HandleFunc("DELETE /policies/{id}", h.HardDeletePolicy)
	mux.HandleFunc("GET /policies/{id}/claims", h.ListClaimsByPolicy)
	mux.HandleFunc("GET /policies/{id}/documents", h.ListDocumentsByPolicy)

	mux.HandleFunc("POST /claims", h.CreateClaim)
	mux.HandleFunc("GET /claims/{id}", h.GetClaim)
	mux.HandleFunc("PATCH /claims/{id}", h.UpdateClaim)

	mux.HandleFunc("POST /documents", h.CreateDocument)
	mux.HandleFunc("GET /documents/{id}", h.GetDocument)
	mux.HandleFunc("PATCH /documents/{id}", h.UpdateDocument)
}
