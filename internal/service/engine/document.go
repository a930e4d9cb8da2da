package engine

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/insurance-crm/internal/domain"
	"github.com/heartmarshall/insurance-crm/internal/service/document"
)

func (e *Engine) CreateDocument(ctx context.Context, input document.CreateDocumentInput) Result[*domain.Document] {
	return run(ctx, e, "CreateDocument", domain.EntityKindDocument, func() (*domain.Document, error) {
		return e.documents.CreateDocument(ctx, input)
	})
}

func (e *Engine) GetDocument(ctx context.Context, id uuid.UUID) Result[*domain.Document] {
	return run(ctx, e, "GetDocument", domain.EntityKindDocument, func() (*domain.Document, error) {
		return e.documents.GetDocument(ctx, id)
	})
}

func (e *Engine) ListDocumentsByCustomer(ctx context.Context, customerID uuid.UUID) Result[[]domain.Document] {
	return run(ctx, e, "ListDocumentsByCustomer", domain.EntityKindDocument, func() ([]domain.Document, error) {
		return e.documents.ListDocumentsByCustomer(ctx, customerID)
	})
}

func (e *Engine) ListDocumentsByPolicy(ctx context.Context, policyID uuid.UUID) Result[[]domain.Document] {
	return run(ctx, e, "ListDocumentsByPolicy", domain.EntityKindDocument, func() ([]domain.Document, error) {
		return e.documents.ListDocumentsByPolicy(ctx, policyID)
	})
}

func (e *Engine) UpdateDocument(ctx context.Context, input document.UpdateDocumentInput) Result[*domain.Document] {
	return run(ctx, e, "UpdateDocument", domain.EntityKindDocument, func() (*domain.Document, error) {
		return e.documents.UpdateDocument(ctx, input)
	})
}
