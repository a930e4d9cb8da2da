package document

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/insurance-crm/internal/domain"
	"github.com/heartmarshall/insurance-crm/internal/service/version"
)

// CreateDocument registers document metadata, optionally attached to a
// customer and/or a policy.
func (s *Service) CreateDocument(ctx context.Context, input CreateDocumentInput) (*domain.Document, error) {
	owner, err := s.guard.Authorize(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	bucket := strings.TrimSpace(input.BucketName)
	if bucket == "" {
		bucket = s.defaultBucket
	}
	docType := input.DocumentType
	if docType == "" {
		docType = domain.DocumentTypeOther
	}

	entry, err := s.audit.Entry(domain.AuditActionCreated, owner, nil)
	if err != nil {
		return nil, err
	}

	var created *domain.Document
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		refs := domain.References{CustomerID: input.CustomerID, PolicyID: input.PolicyID}
		if !refs.IsEmpty() {
			if refErr := s.refs.ValidateReferences(txCtx, owner, domain.EntityKindDocument, refs); refErr != nil {
				return refErr
			}
		}

		var createErr error
		created, createErr = s.documents.Create(txCtx, &domain.Document{
			ID:             uuid.New(),
			OwnerID:        owner,
			Name:           strings.TrimSpace(input.Name),
			StorageLocator: strings.TrimSpace(input.StorageLocator),
			BucketName:     bucket,
			DocumentType:   docType,
			CustomerID:     input.CustomerID,
			PolicyID:       input.PolicyID,
			Version:        version.Initial,
			AuditTrail:     []domain.AuditEntry{entry},
		})
		if createErr != nil {
			return fmt.Errorf("create document: %w", createErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "document created",
		slog.String("owner", owner.String()),
		slog.String("document_id", created.ID.String()),
		slog.String("bucket", created.BucketName),
	)

	return created, nil
}
