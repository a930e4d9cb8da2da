package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PremiumScale is the number of fractional digits stored for premiums.
const PremiumScale = 2

// Policy is an insurance contract held by a customer.
type Policy struct {
	ID            uuid.UUID
	OwnerID       Principal
	CustomerID    uuid.UUID
	PolicyNumber  string
	PolicyType    PolicyType
	PremiumAmount decimal.Decimal
	RenewalDate   time.Time
	Status        PolicyStatus
	Version       int
	AuditTrail    []AuditEntry
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// PolicyPatch is a sparse update: nil fields are left untouched.
type PolicyPatch struct {
	CustomerID    *uuid.UUID
	PolicyNumber  *string
	PolicyType    *PolicyType
	PremiumAmount *decimal.Decimal
	RenewalDate   *time.Time
	Status        *PolicyStatus
}

// Fields returns the names of the fields present in the patch, in column order.
func (p PolicyPatch) Fields() []string {
	var fields []string
	if p.CustomerID != nil {
		fields = append(fields, "customerId")
	}
	if p.PolicyNumber != nil {
		fields = append(fields, "policyNumber")
	}
	if p.PolicyType != nil {
		fields = append(fields, "policyType")
	}
	if p.PremiumAmount != nil {
		fields = append(fields, "premiumAmount")
	}
	if p.RenewalDate != nil {
		fields = append(fields, "renewalDate")
	}
	if p.Status != nil {
		fields = append(fields, "status")
	}
	return fields
}
