package document

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/insurance-crm/internal/domain"
)

// GetDocument returns one of the caller's documents.
func (s *Service) GetDocument(ctx context.Context, id uuid.UUID) (*domain.Document, error) {
	owner, err := s.guard.Authorize(ctx)
	if err != nil {
		return nil, err
	}

	d, err := s.documents.GetByID(ctx, owner, id)
	if err != nil {
		return nil, fmt.Errorf("get document: %w", err)
	}
	return d, nil
}

func (s *Service) ListDocumentsByCustomer(ctx context.Context, customerID uuid.UUID) ([]domain.Document, error) {
	owner, err := s.guard.Authorize(ctx)
	if err != nil {
		return nil, err
	}

	list, err := s.documents.ListByCustomer(ctx, owner, customerID)
	if err != nil {
		return nil, fmt.Errorf("list documents by customer: %w", err)
	}
	return list, nil
}

func (s *Service) ListDocumentsByPolicy(ctx context.Context, policyID uuid.UUID) ([]domain.Document, error) {
	owner, err := s.guard.Authorize(ctx)
	if err != nil {
		return nil, err
	}

	list, err := s.documents.ListByPolicy(ctx, owner, policyID)
	if err != nil {
		return nil, fmt.Errorf("list documents by policy: %w", err)
	}
	return list, nil
}
