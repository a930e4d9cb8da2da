package customer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/insurance-crm/internal/domain"
)

// CreateCustomerInput holds the parameters for creating a customer.
type CreateCustomerInput struct {
	EncryptedData json.RawMessage // nil = {}
	Tags          []string
	Type          domain.CustomerType // "" = INDIVIDUAL
}

// Validate checks all fields and collects all errors.
func (i CreateCustomerInput) Validate() error {
	var errs []domain.FieldError

	if i.EncryptedData != nil && !isJSONObject(i.EncryptedData) {
		errs = append(errs, domain.FieldError{Field: "encryptedData", Message: "must be a JSON object"})
	}
	errs = append(errs, validateTags(i.Tags)...)
	if i.Type != "" && !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: fmt.Sprintf("invalid customer type %q", i.Type)})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateCustomerInput holds a sparse update. Nil fields are left untouched.
type UpdateCustomerInput struct {
	ID              uuid.UUID
	ExpectedVersion int
	EncryptedData   json.RawMessage
	Tags            *[]string
	Type            *domain.CustomerType
}

// Validate checks all fields and collects all errors.
func (i UpdateCustomerInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.ExpectedVersion < 1 {
		errs = append(errs, domain.FieldError{Field: "expectedVersion", Message: "required"})
	}
	if i.EncryptedData != nil && !isJSONObject(i.EncryptedData) {
		errs = append(errs, domain.FieldError{Field: "encryptedData", Message: "must be a JSON object"})
	}
	if i.Tags != nil {
		errs = append(errs, validateTags(*i.Tags)...)
	}
	if i.Type != nil && !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: fmt.Sprintf("invalid customer type %q", *i.Type)})
	}
	if i.EncryptedData == nil && i.Tags == nil && i.Type == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "no fields to update"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i UpdateCustomerInput) patch() domain.CustomerPatch {
	p := domain.CustomerPatch{EncryptedData: i.EncryptedData, Type: i.Type}
	if i.Tags != nil {
		tags := normalizeTags(*i.Tags)
		p.Tags = &tags
	}
	return p
}

func validateTags(tags []string) []domain.FieldError {
	var errs []domain.FieldError
	if len(tags) > MaxTags {
		errs = append(errs, domain.FieldError{Field: "tags", Message: fmt.Sprintf("max %d tags", MaxTags)})
	}
	for idx, tag := range tags {
		field := fmt.Sprintf("tags[%d]", idx)
		trimmed := strings.TrimSpace(tag)
		if trimmed == "" {
			errs = append(errs, domain.FieldError{Field: field, Message: "must not be blank"})
		} else if len(trimmed) > MaxTagLength {
			errs = append(errs, domain.FieldError{Field: field, Message: fmt.Sprintf("max %d characters", MaxTagLength)})
		}
	}
	return errs
}

// normalizeTags trims and de-duplicates tags, keeping first-seen order.
func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		t := strings.TrimSpace(tag)
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

func isJSONObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{' && json.Valid(trimmed)
}
