package rest

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/insurance-crm/internal/domain"
	"github.com/heartmarshall/insurance-crm/internal/service/claim"
)

type createClaimRequest struct {
	CustomerID   uuid.UUID       `json:"customerId"`
	PolicyID     uuid.UUID       `json:"policyId"`
	ClaimDetails json.RawMessage `json:"claimDetails"`
	Status       string          `json:"status"`
}

type updateClaimRequest struct {
	ExpectedVersion int             `json:"expectedVersion"`
	CustomerID      *uuid.UUID      `json:"customerId"`
	PolicyID        *uuid.UUID      `json:"policyId"`
	ClaimDetails    json.RawMessage `json:"claimDetails"`
	Status          *string         `json:"status"`
}

// CreateClaim handles POST /claims.
func (h *RecordHandler) CreateClaim(w http.ResponseWriter, r *http.Request) {
	var req createClaimRequest
	if !decodeJSON(w, r, h.maxBody, &req) {
		return
	}

	res := h.engine.CreateClaim(r.Context(), claim.CreateClaimInput{
		CustomerID:   req.CustomerID,
		PolicyID:     req.PolicyID,
		ClaimDetails: req.ClaimDetails,
		Status:       domain.ClaimStatus(req.Status),
	})
	writeResult(w, res, http.StatusCreated, renderOne(toClaimResponse))
}

// GetClaim handles GET /claims/{id}.
func (h *RecordHandler) GetClaim(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	writeResult(w, h.engine.GetClaim(r.Context(), id), http.StatusOK, renderOne(toClaimResponse))
}

// ListClaimsByCustomer handles GET /customers/{id}/claims.
func (h *RecordHandler) ListClaimsByCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	writeResult(w, h.engine.ListClaimsByCustomer(r.Context(), id), http.StatusOK, renderList(toClaimResponse))
}

// ListClaimsByPolicy handles GET /policies/{id}/claims.
func (h *RecordHandler) ListClaimsByPolicy(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	writeResult(w, h.engine.ListClaimsByPolicy(r.Context(), id), http.StatusOK, renderList(toClaimResponse))
}

// UpdateClaim handles PATCH /claims/{id}.
func (h *RecordHandler) UpdateClaim(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req updateClaimRequest
	if !decodeJSON(w, r, h.maxBody, &req) {
		return
	}

	in := claim.UpdateClaimInput{
		ID:              id,
		ExpectedVersion: req.ExpectedVersion,
		CustomerID:      req.CustomerID,
		PolicyID:        req.PolicyID,
		ClaimDetails:    req.ClaimDetails,
	}
	if req.Status != nil {
		s := domain.ClaimStatus(*req.Status)
		in.Status = &s
	}

	writeResult(w, h.engine.UpdateClaim(r.Context(), in), http.StatusOK, renderOne(toClaimResponse))
}
