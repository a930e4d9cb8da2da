package rest

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/insurance-crm/internal/domain"
	"github.com/heartmarshall/insurance-crm/internal/service/policy"
)

type createPolicyRequest struct {
	CustomerID    uuid.UUID       `json:"customerId"`
	PolicyNumber  string          `json:"policyNumber"`
	PolicyType    string          `json:"policyType"`
	PremiumAmount decimal.Decimal `json:"premiumAmount"`
	RenewalDate   time.Time       `json:"renewalDate"`
	Status        string          `json:"status"`
}

type updatePolicyRequest struct {
	ExpectedVersion int              `json:"expectedVersion"`
	CustomerID      *uuid.UUID       `json:"customerId"`
	PolicyNumber    *string          `json:"policyNumber"`
	PolicyType      *string          `json:"policyType"`
	PremiumAmount   *decimal.Decimal `json:"premiumAmount"`
	RenewalDate     *time.Time       `json:"renewalDate"`
	Status          *string          `json:"status"`
}

// CreatePolicy handles POST /policies.
func (h *RecordHandler) CreatePolicy(w http.ResponseWriter, r *http.Request) {
	var req createPolicyRequest
	if !decodeJSON(w, r, h.maxBody, &req) {
		return
	}

	res := h.engine.CreatePolicy(r.Context(), policy.CreatePolicyInput{
		CustomerID:    req.CustomerID,
		PolicyNumber:  req.PolicyNumber,
		PolicyType:    domain.PolicyType(req.PolicyType),
		PremiumAmount: req.PremiumAmount,
		RenewalDate:   req.RenewalDate,
		Status:        domain.PolicyStatus(req.Status),
	})
	writeResult(w, res, http.StatusCreated, renderOne(toPolicyResponse))
}

// GetPolicy handles GET /policies/{id}.
func (h *RecordHandler) GetPolicy(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	writeResult(w, h.engine.GetPolicy(r.Context(), id), http.StatusOK, renderOne(toPolicyResponse))
}

// HardDeletePolicy handles DELETE /policies/{id}.
func (h *RecordHandler) HardDeletePolicy(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	writeResult(w, h.engine.HardDeletePolicy(r.Context(), id), http.StatusNoContent, nil)
}

// ListPoliciesByCustomer handles GET /customers/{id}/policies.
func (h *RecordHandler) ListPoliciesByCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	writeResult(w, h.engine.ListPoliciesByCustomer(r.Context(), id), http.StatusOK, renderList(toPolicyResponse))
}

// UpdatePolicy handles PATCH /policies/{id}.
func (h *RecordHandler) UpdatePolicy(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req updatePolicyRequest
	if !decodeJSON(w, r, h.maxBody, &req) {
		return
	}

	in := policy.UpdatePolicyInput{
		ID:              id,
		ExpectedVersion: req.ExpectedVersion,
		CustomerID:      req.CustomerID,
		PolicyNumber:    req.PolicyNumber,
		PremiumAmount:   req.PremiumAmount,
		RenewalDate:     req.RenewalDate,
	}
	if req.PolicyType != nil {
		t := domain.PolicyType(*req.PolicyType)
		in.PolicyType = &t
	}
	if req.Status != nil {
		s := domain.PolicyStatus(*req.Status)
		in.Status = &s
	}

	writeResult(w, h.engine.UpdatePolicy(r.Context(), in), http.StatusOK, renderOne(toPolicyResponse))
}
