package domain

import (
	"time"

	"github.com/google/uuid"
)

// Document is metadata for a file held in external blob storage. Only the
// opaque storage locator is kept here.
type Document struct {
	ID             uuid.UUID
	OwnerID        Principal
	Name           string
	StorageLocator string
	BucketName     string
	DocumentType   DocumentType
	CustomerID     *uuid.UUID
	PolicyID       *uuid.UUID
	Version        int
	AuditTrail     []AuditEntry
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// DocumentPatch is a sparse update: nil fields are left untouched.
type DocumentPatch struct {
	Name           *string
	StorageLocator *string
	DocumentType   *DocumentType
	CustomerID     *uuid.UUID
	PolicyID       *uuid.UUID
}

// Fields returns the names of the fields present in the patch, in column order.
func (p DocumentPatch) Fields() []string {
	var fields []string
	if p.Name != nil {
		fields = append(fields, "name")
	}
	if p.StorageLocator != nil {
		fields = append(fields, "storageLocator")
	}
	if p.DocumentType != nil {
		fields = append(fields, "documentType")
	}
	if p.CustomerID != nil {
		fields = append(fields, "customerId")
	}
	if p.PolicyID != nil {
		fields = append(fields, "policyId")
	}
	return fields
}
