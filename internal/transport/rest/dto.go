package rest

import (
	"encoding/json"
	"time"

	"github.com/heartmarshall/insurance-crm/internal/domain"
)

type customerResponse struct {
	ID            string              `json:"id"`
	OwnerID       string              `json:"ownerId"`
	EncryptedData json.RawMessage     `json:"encryptedData"`
	Tags          []string            `json:"tags"`
	Type          string              `json:"type"`
	Version       int                 `json:"version"`
	AuditTrail    []domain.AuditEntry `json:"auditTrail"`
	CreatedAt     time.Time           `json:"createdAt"`
	UpdatedAt     time.Time           `json:"updatedAt"`
	DeletedAt     *time.Time          `json:"deletedAt,omitempty"`
}

func toCustomerResponse(c *domain.Customer) customerResponse {
	tags := c.Tags
	if tags == nil {
		tags = []string{}
	}
	return customerResponse{
		ID:            c.ID.String(),
		OwnerID:       c.OwnerID.String(),
		EncryptedData: c.EncryptedData,
		Tags:          tags,
		Type:          c.Type.String(),
		Version:       c.Version,
		AuditTrail:    trail(c.AuditTrail),
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
		DeletedAt:     c.DeletedAt,
	}
}

type policyResponse struct {
	ID            string              `json:"id"`
	OwnerID       string              `json:"ownerId"`
	CustomerID    string              `json:"customerId"`
	PolicyNumber  string              `json:"policyNumber"`
	PolicyType    string              `json:"policyType"`
	PremiumAmount string              `json:"premiumAmount"`
	RenewalDate   time.Time           `json:"renewalDate"`
	Status        string              `json:"status"`
	Version       int                 `json:"version"`
	AuditTrail    []domain.AuditEntry `json:"auditTrail"`
	CreatedAt     time.Time           `json:"createdAt"`
	UpdatedAt     time.Time           `json:"updatedAt"`
}

func toPolicyResponse(p *domain.Policy) policyResponse {
	return policyResponse{
		ID:            p.ID.String(),
		OwnerID:       p.OwnerID.String(),
		CustomerID:    p.CustomerID.String(),
		PolicyNumber:  p.PolicyNumber,
		PolicyType:    p.PolicyType.String(),
		PremiumAmount: p.PremiumAmount.StringFixed(domain.PremiumScale),
		RenewalDate:   p.RenewalDate,
		Status:        p.Status.String(),
		Version:       p.Version,
		AuditTrail:    trail(p.AuditTrail),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

type claimResponse struct {
	ID                    string                `json:"id"`
	OwnerID               string                `json:"ownerId"`
	CustomerID            string                `json:"customerId"`
	PolicyID              string                `json:"policyId"`
	ClaimDetails          json.RawMessage       `json:"claimDetails"`
	Status                string                `json:"status"`
	StatusHistory         []domain.StatusChange `json:"statusHistory"`
	ResolutionTimeSeconds *float64              `json:"resolutionTimeSeconds"`
	Version               int                   `json:"version"`
	AuditTrail            []domain.AuditEntry   `json:"auditTrail"`
	CreatedAt             time.Time             `json:"createdAt"`
	UpdatedAt             time.Time             `json:"updatedAt"`
}

func toClaimResponse(c *domain.Claim) claimResponse {
	history := c.StatusHistory
	if history == nil {
		history = []domain.StatusChange{}
	}
	resp := claimResponse{
		ID:            c.ID.String(),
		OwnerID:       c.OwnerID.String(),
		CustomerID:    c.CustomerID.String(),
		PolicyID:      c.PolicyID.String(),
		ClaimDetails:  c.ClaimDetails,
		Status:        c.Status.String(),
		StatusHistory: history,
		Version:       c.Version,
		AuditTrail:    trail(c.AuditTrail),
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
	if c.ResolutionTime != nil {
		secs := c.ResolutionTime.Seconds()
		resp.ResolutionTimeSeconds = &secs
	}
	return resp
}

type documentResponse struct {
	ID             string              `json:"id"`
	OwnerID        string              `json:"ownerId"`
	Name           string              `json:"name"`
	StorageLocator string              `json:"storageLocator"`
	BucketName     string              `json:"bucketName"`
	DocumentType   string              `json:"documentType"`
	CustomerID     *string             `json:"customerId"`
	PolicyID       *string             `json:"policyId"`
	Version        int                 `json:"version"`
	AuditTrail     []domain.AuditEntry `json:"auditTrail"`
	CreatedAt      time.Time           `json:"createdAt"`
	UpdatedAt      time.Time           `json:"updatedAt"`
}

func toDocumentResponse(d *domain.Document) documentResponse {
	resp := documentResponse{
		ID:             d.ID.String(),
		OwnerID:        d.OwnerID.String(),
		Name:           d.Name,
		StorageLocator: d.StorageLocator,
		BucketName:     d.BucketName,
		DocumentType:   d.DocumentType.String(),
		Version:        d.Version,
		AuditTrail:     trail(d.AuditTrail),
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
	if d.CustomerID != nil {
		s := d.CustomerID.String()
		resp.CustomerID = &s
	}
	if d.PolicyID != nil {
		s := d.PolicyID.String()
		resp.PolicyID = &s
	}
	return resp
}

func trail(entries []domain.AuditEntry) []domain.AuditEntry {
	if entries == nil {
		return []domain.AuditEntry{}
	}
	return entries
}

// renderList adapts a per-item renderer to a slice.
func renderList[T, R any](one func(*T) R) func([]T) any {
	return func(items []T) any {
		out := make([]R, 0, len(items))
		for i := range items {
			out = append(out, one(&items[i]))
		}
		return out
	}
}

// renderOne adapts a per-item renderer to a pointer result.
func renderOne[T, R any](one func(*T) R) func(*T) any {
	return func(item *T) any { return one(item) }
}
