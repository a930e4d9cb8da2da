package policy

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/insurance-crm/internal/domain"
)

// maxPremiumIntegerDigits is the integer part of numeric(15,2).
const maxPremiumIntegerDigits = 13

// CreatePolicyInput holds the parameters for creating a policy.
type CreatePolicyInput struct {
	CustomerID    uuid.UUID
	PolicyNumber  string
	PolicyType    domain.PolicyType
	PremiumAmount decimal.Decimal
	RenewalDate   time.Time
	Status        domain.PolicyStatus // "" = ACTIVE
}

// Validate checks all fields and collects all errors.
func (i CreatePolicyInput) Validate() error {
	var errs []domain.FieldError

	if i.CustomerID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "customerId", Message: "required"})
	}
	errs = append(errs, validatePolicyNumber(i.PolicyNumber)...)
	if !i.PolicyType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "policyType", Message: fmt.Sprintf("invalid policy type %q", i.PolicyType)})
	}
	errs = append(errs, validatePremium(i.PremiumAmount)...)
	if i.RenewalDate.IsZero() {
		errs = append(errs, domain.FieldError{Field: "renewalDate", Message: "required"})
	}
	if i.Status != "" && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: fmt.Sprintf("invalid policy status %q", i.Status)})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdatePolicyInput holds a sparse update. Nil fields are left untouched.
type UpdatePolicyInput struct {
	ID              uuid.UUID
	ExpectedVersion int
	CustomerID      *uuid.UUID
	PolicyNumber    *string
	PolicyType      *domain.PolicyType
	PremiumAmount   *decimal.Decimal
	RenewalDate     *time.Time
	Status          *domain.PolicyStatus
}

// Validate checks all fields and collects all errors.
func (i UpdatePolicyInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.ExpectedVersion < 1 {
		errs = append(errs, domain.FieldError{Field: "expectedVersion", Message: "required"})
	}
	if i.CustomerID != nil && *i.CustomerID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "customerId", Message: "must not be empty"})
	}
	if i.PolicyNumber != nil {
		errs = append(errs, validatePolicyNumber(*i.PolicyNumber)...)
	}
	if i.PolicyType != nil && !i.PolicyType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "policyType", Message: fmt.Sprintf("invalid policy type %q", *i.PolicyType)})
	}
	if i.PremiumAmount != nil {
		errs = append(errs, validatePremium(*i.PremiumAmount)...)
	}
	if i.RenewalDate != nil && i.RenewalDate.IsZero() {
		errs = append(errs, domain.FieldError{Field: "renewalDate", Message: "must not be empty"})
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: fmt.Sprintf("invalid policy status %q", *i.Status)})
	}
	if len(i.patch().Fields()) == 0 {
		errs = append(errs, domain.FieldError{Field: "input", Message: "no fields to update"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i UpdatePolicyInput) patch() domain.PolicyPatch {
	p := domain.PolicyPatch{
		CustomerID: i.CustomerID,
		PolicyType: i.PolicyType,
		Status:     i.Status,
	}
	if i.PremiumAmount != nil {
		amount := normalizePremium(*i.PremiumAmount)
		p.PremiumAmount = &amount
	}
	if i.PolicyNumber != nil {
		n := strings.TrimSpace(*i.PolicyNumber)
		p.PolicyNumber = &n
	}
	if i.RenewalDate != nil {
		d := i.RenewalDate.UTC()
		p.RenewalDate = &d
	}
	return p
}

func validatePolicyNumber(n string) []domain.FieldError {
	trimmed := strings.TrimSpace(n)
	switch {
	case trimmed == "":
		return []domain.FieldError{{Field: "policyNumber", Message: "required"}}
	case len(trimmed) > MaxPolicyNumberLength:
		return []domain.FieldError{{Field: "policyNumber", Message: fmt.Sprintf("max %d characters", MaxPolicyNumberLength)}}
	}
	return nil
}

// validatePremium works on the coefficient and exponent only. Comparing or
// rounding first would rescale to the input's exponent, which is unbounded.
func validatePremium(p decimal.Decimal) []domain.FieldError {
	if p.IsNegative() {
		return []domain.FieldError{{Field: "premiumAmount", Message: "must not be negative"}}
	}
	if p.IsZero() {
		return nil
	}

	exp := int64(p.Exponent())
	digits := int64(p.NumDigits())

	// 10^(digits+exp-1) <= p < 10^(digits+exp)
	if digits+exp > maxPremiumIntegerDigits {
		return []domain.FieldError{{Field: "premiumAmount", Message: "too large"}}
	}
	if extra := -exp - domain.PremiumScale; extra > 0 {
		// Only trailing zeros of the coefficient may go past the scale.
		if extra >= digits || !p.Equal(p.Round(domain.PremiumScale)) {
			return []domain.FieldError{{Field: "premiumAmount", Message: fmt.Sprintf("max %d decimal places", domain.PremiumScale)}}
		}
	}
	return nil
}

// normalizePremium drops the input's exponent so later formatting stays
// cheap. p must have passed validatePremium.
func normalizePremium(p decimal.Decimal) decimal.Decimal {
	if p.IsZero() {
		return decimal.Zero
	}
	return p.Round(domain.PremiumScale)
}
