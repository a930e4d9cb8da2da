package document

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/insurance-crm/internal/domain"
)

// CreateDocumentInput holds the parameters for registering a document.
type CreateDocumentInput struct {
	Name           string
	StorageLocator string
	BucketName     string              // "" = configured default
	DocumentType   domain.DocumentType // "" = OTHER
	CustomerID     *uuid.UUID
	PolicyID       *uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i CreateDocumentInput) Validate() error {
	var errs []domain.FieldError

	errs = append(errs, validateName(i.Name)...)
	errs = append(errs, validateLocator(i.StorageLocator)...)
	if i.DocumentType != "" && !i.DocumentType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "documentType", Message: fmt.Sprintf("invalid document type %q", i.DocumentType)})
	}
	errs = append(errs, validateRef("customerId", i.CustomerID)...)
	errs = append(errs, validateRef("policyId", i.PolicyID)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateDocumentInput holds a sparse update. Nil fields are left untouched.
type UpdateDocumentInput struct {
	ID              uuid.UUID
	ExpectedVersion int
	Name            *string
	StorageLocator  *string
	DocumentType    *domain.DocumentType
	CustomerID      *uuid.UUID
	PolicyID        *uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i UpdateDocumentInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.ExpectedVersion < 1 {
		errs = append(errs, domain.FieldError{Field: "expectedVersion", Message: "required"})
	}
	if i.Name != nil {
		errs = append(errs, validateName(*i.Name)...)
	}
	if i.StorageLocator != nil {
		errs = append(errs, validateLocator(*i.StorageLocator)...)
	}
	if i.DocumentType != nil && !i.DocumentType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "documentType", Message: fmt.Sprintf("invalid document type %q", *i.DocumentType)})
	}
	errs = append(errs, validateRef("customerId", i.CustomerID)...)
	errs = append(errs, validateRef("policyId", i.PolicyID)...)
	if len(i.patch().Fields()) == 0 {
		errs = append(errs, domain.FieldError{Field: "input", Message: "no fields to update"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i UpdateDocumentInput) patch() domain.DocumentPatch {
	p := domain.DocumentPatch{
		DocumentType: i.DocumentType,
		CustomerID:   i.CustomerID,
		PolicyID:     i.PolicyID,
	}
	if i.Name != nil {
		n := strings.TrimSpace(*i.Name)
		p.Name = &n
	}
	if i.StorageLocator != nil {
		l := strings.TrimSpace(*i.StorageLocator)
		p.StorageLocator = &l
	}
	return p
}

func validateName(name string) []domain.FieldError {
	trimmed := strings.TrimSpace(name)
	switch {
	case trimmed == "":
		return []domain.FieldError{{Field: "name", Message: "required"}}
	case len(trimmed) > MaxNameLength:
		return []domain.FieldError{{Field: "name", Message: fmt.Sprintf("max %d characters", MaxNameLength)}}
	}
	return nil
}

func validateLocator(locator string) []domain.FieldError {
	trimmed := strings.TrimSpace(locator)
	switch {
	case trimmed == "":
		return []domain.FieldError{{Field: "storageLocator", Message: "required"}}
	case len(trimmed) > MaxLocatorLength:
		return []domain.FieldError{{Field: "storageLocator", Message: fmt.Sprintf("max %d characters", MaxLocatorLength)}}
	}
	return nil
}

func validateRef(field string, id *uuid.UUID) []domain.FieldError {
	if id != nil && *id == uuid.Nil {
		return []domain.FieldError{{Field: field, Message: "must not be empty"}}
	}
	return nil
}
