package rest

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/insurance-crm/internal/domain"
	"github.com/heartmarshall/insurance-crm/internal/service/document"
)

type createDocumentRequest struct {
	Name           string     `json:"name"`
	StorageLocator string     `json:"storageLocator"`
	BucketName     string     `json:"bucketName"`
	DocumentType   string     `json:"documentType"`
	CustomerID     *uuid.UUID `json:"customerId"`
	PolicyID       *uuid.UUID `json:"policyId"`
}

type updateDocumentRequest struct {
	ExpectedVersion int        `json:"expectedVersion"`
	Name            *string    `json:"name"`
	StorageLocator  *string    `json:"storageLocator"`
	DocumentType    *string    `json:"documentType"`
	CustomerID      *uuid.UUID `json:"customerId"`
	PolicyID        *uuid.UUID `json:"policyId"`
}

// CreateDocument handles POST /documents.
func (h *RecordHandler) CreateDocument(w http.ResponseWriter, r *http.Request) {
	var req createDocumentRequest
	if !decodeJSON(w, r, h.maxBody, &req) {
		return
	}

	res := h.engine.CreateDocument(r.Context(), document.CreateDocumentInput{
		Name:           req.Name,
		StorageLocator: req.StorageLocator,
		BucketName:     req.BucketName,
		DocumentType:   domain.DocumentType(req.DocumentType),
		CustomerID:     req.CustomerID,
		PolicyID:       req.PolicyID,
	})
	writeResult(w, res, http.StatusCreated, renderOne(toDocumentResponse))
}

// GetDocument handles GET /documents/{id}.
func (h *RecordHandler) GetDocument(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	writeResult(w, h.engine.GetDocument(r.Context(), id), http.StatusOK, renderOne(toDocumentResponse))
}

// ListDocumentsByCustomer handles GET /customers/{id}/documents.
func (h *RecordHandler) ListDocumentsByCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	writeResult(w, h.engine.ListDocumentsByCustomer(r.Context(), id), http.StatusOK, renderList(toDocumentResponse))
}

// ListDocumentsByPolicy handles GET /policies/{id}/documents.
func (h *RecordHandler) ListDocumentsByPolicy(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	writeResult(w, h.engine.ListDocumentsByPolicy(r.Context(), id), http.StatusOK, renderList(toDocumentResponse))
}

// UpdateDocument handles PATCH /documents/{id}.
func (h *RecordHandler) UpdateDocument(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req updateDocumentRequest
	if !decodeJSON(w, r, h.maxBody, &req) {
		return
	}

	in := document.UpdateDocumentInput{
		ID:              id,
		ExpectedVersion: req.ExpectedVersion,
		Name:            req.Name,
		StorageLocator:  req.StorageLocator,
		CustomerID:      req.CustomerID,
		PolicyID:        req.PolicyID,
	}
	if req.DocumentType != nil {
		t := domain.DocumentType(*req.DocumentType)
		in.DocumentType = &t
	}

	writeResult(w, h.engine.UpdateDocument(r.Context(), in), http.StatusOK, renderOne(toDocumentResponse))
}
