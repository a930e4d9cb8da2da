package document

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/insurance-crm/internal/domain"
	"github.com/heartmarshall/insurance-crm/internal/service/version"
)

// UpdateDocument applies a sparse update. New customer or policy
// attachments are validated before the write.
func (s *Service) UpdateDocument(ctx context.Context, input UpdateDocumentInput) (*domain.Document, error) {
	owner, err := s.guard.Authorize(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	patch := input.patch()
	entry, err := s.audit.Entry(domain.AuditActionUpdated, owner, patch.Fields())
	if err != nil {
		return nil, err
	}

	var updated *domain.Document
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, getErr := s.documents.GetByID(txCtx, owner, input.ID)
		if getErr != nil {
			return fmt.Errorf("get document: %w", getErr)
		}
		if checkErr := version.Check(input.ExpectedVersion, current.Version); checkErr != nil {
			return fmt.Errorf("document %s: %w", input.ID, checkErr)
		}

		var refs domain.References
		if patch.CustomerID != nil && !sameRef(current.CustomerID, *patch.CustomerID) {
			refs.CustomerID = patch.CustomerID
		}
		if patch.PolicyID != nil && !sameRef(current.PolicyID, *patch.PolicyID) {
			refs.PolicyID = patch.PolicyID
		}
		if !refs.IsEmpty() {
			if refErr := s.refs.ValidateReferences(txCtx, owner, domain.EntityKindDocument, refs); refErr != nil {
				return refErr
			}
		}

		var updateErr error
		updated, updateErr = s.documents.Update(txCtx, owner, input.ID,
			input.ExpectedVersion, version.Next(input.ExpectedVersion), patch, entry)
		if updateErr != nil {
			return fmt.Errorf("update document: %w", updateErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "document updated",
		slog.String("owner", owner.String()),
		slog.String("document_id", updated.ID.String()),
		slog.Int("version", updated.Version),
	)

	return updated, nil
}

func sameRef[T comparable](current *T, next T) bool {
	return current != nil && *current == next
}
