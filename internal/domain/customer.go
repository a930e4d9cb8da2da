package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Customer is an insured person or business. Personal data is stored only
// in encrypted form and is never interpreted by this service.
type Customer struct {
	ID            uuid.UUID
	OwnerID       Principal
	EncryptedData json.RawMessage
	Tags          []string
	Type          CustomerType
	Version       int
	AuditTrail    []AuditEntry
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     *time.Time
}

// IsDeleted returns true if the customer has been erased.
func (c *Customer) IsDeleted() bool {
	return c.DeletedAt != nil
}

// CustomerPatch is a sparse update: nil fields are left untouched.
type CustomerPatch struct {
	EncryptedData json.RawMessage
	Tags          *[]string
	Type          *CustomerType
}

// Fields returns the names of the fields present in the patch, in column order.
func (p CustomerPatch) Fields() []string {
	var fields []string
	if p.EncryptedData != nil {
		fields = append(fields, "encryptedData")
	}
	if p.Tags != nil {
		fields = append(fields, "tags")
	}
	if p.Type != nil {
		fields = append(fields, "type")
	}
	return fields
}
