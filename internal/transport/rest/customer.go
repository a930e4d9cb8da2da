package rest

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/heartmarshall/insurance-crm/internal/domain"
	"github.com/heartmarshall/insurance-crm/internal/service/customer"
)

type createCustomerRequest struct {
	EncryptedData json.RawMessage `json:"encryptedData"`
	Tags          []string        `json:"tags"`
	Type          string          `json:"type"`
}

type updateCustomerRequest struct {
	ExpectedVersion int             `json:"expectedVersion"`
	EncryptedData   json.RawMessage `json:"encryptedData"`
	Tags            *[]string       `json:"tags"`
	Type            *string         `json:"type"`
}

// CreateCustomer handles POST /customers.
func (h *RecordHandler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var req createCustomerRequest
	if !decodeJSON(w, r, h.maxBody, &req) {
		return
	}

	res := h.engine.CreateCustomer(r.Context(), customer.CreateCustomerInput{
		EncryptedData: req.EncryptedData,
		Tags:          req.Tags,
		Type:          domain.CustomerType(req.Type),
	})
	writeResult(w, res, http.StatusCreated, renderOne(toCustomerResponse))
}

// ListCustomers handles GET /customers?includeErased=true.
func (h *RecordHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	includeErased := false
	if raw := r.URL.Query().Get("includeErased"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			writeBadRequest(w, "includeErased", "must be a boolean")
			return
		}
		includeErased = v
	}

	res := h.engine.ListCustomers(r.Context(), includeErased)
	writeResult(w, res, http.StatusOK, renderList(toCustomerResponse))
}

// GetCustomer handles GET /customers/{id}.
func (h *RecordHandler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	writeResult(w, h.engine.GetCustomer(r.Context(), id), http.StatusOK, renderOne(toCustomerResponse))
}

// SoftDeleteCustomer handles DELETE /customers/{id} and returns the erased
// customer.
func (h *RecordHandler) SoftDeleteCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	writeResult(w, h.engine.SoftDeleteCustomer(r.Context(), id), http.StatusOK, renderOne(toCustomerResponse))
}

// UpdateCustomer handles PATCH /customers/{id}.
func (h *RecordHandler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req updateCustomerRequest
	if !decodeJSON(w, r, h.maxBody, &req) {
		return
	}

	in := customer.UpdateCustomerInput{
		ID:              id,
		ExpectedVersion: req.ExpectedVersion,
		EncryptedData:   req.EncryptedData,
		Tags:            req.Tags,
	}
	if req.Type != nil {
		t := domain.CustomerType(*req.Type)
		in.Type = &t
	}

	writeResult(w, h.engine.UpdateCustomer(r.Context(), in), http.StatusOK, renderOne(toCustomerResponse))
}
