package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/insurance-crm/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// NewOwner returns a fresh principal so parallel tests never see each other's rows.
func NewOwner() domain.Principal {
	return domain.Principal("user_" + uniqueSuffix())
}

// SeedCustomer inserts an active INDIVIDUAL customer owned by owner.
func SeedCustomer(t *testing.T, pool *pgxpool.Pool, owner domain.Principal) domain.Customer {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	c := domain.Customer{
		ID:            uuid.New(),
		OwnerID:       owner,
		EncryptedData: []byte(`{"cipher":"` + uniqueSuffix() + `"}`),
		Tags:          []string{"seed"},
		Type:          domain.CustomerTypeIndividual,
		Version:       1,
		AuditTrail:    []domain.AuditEntry{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO customers (id, owner_id, encrypted_data, tags, type, version, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, 1, $6, $6)`,
		c.ID, string(owner), string(c.EncryptedData), c.Tags, string(c.Type), now,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCustomer: %v", err)
	}

	return c
}

// SeedErasedCustomer inserts a customer that has already been soft-deleted.
func SeedErasedCustomer(t *testing.T, pool *pgxpool.Pool, owner domain.Principal) domain.Customer {
	t.Helper()

	c := SeedCustomer(t, pool, owner)
	_, err := pool.Exec(context.Background(),
		`UPDATE customers SET deleted_at = now() WHERE id = $1`, c.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedErasedCustomer: %v", err)
	}

	deletedAt := time.Now().UTC()
	c.DeletedAt = &deletedAt
	return c
}

// SeedPolicy inserts an ACTIVE AUTO policy for customerID.
func SeedPolicy(t *testing.T, pool *pgxpool.Pool, owner domain.Principal, customerID uuid.UUID) domain.Policy {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	p := domain.Policy{
		ID:            uuid.New(),
		OwnerID:       owner,
		CustomerID:    customerID,
		PolicyNumber:  "POL-" + uniqueSuffix(),
		PolicyType:    domain.PolicyTypeAuto,
		PremiumAmount: decimal.RequireFromString("1200.50"),
		RenewalDate:   now.AddDate(1, 0, 0),
		Status:        domain.PolicyStatusActive,
		Version:       1,
		AuditTrail:    []domain.AuditEntry{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO policies (id, owner_id, customer_id, policy_number, policy_type, premium_amount,
		                       renewal_date, status, version, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6::text::numeric, $7, $8, 1, $9, $9)`,
		p.ID, string(owner), customerID, p.PolicyNumber, string(p.PolicyType), p.PremiumAmount.String(),
		p.RenewalDate, string(p.Status), now,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPolicy: %v", err)
	}

	return p
}

// SeedClaim inserts an OPEN claim against policyID.
func SeedClaim(t *testing.T, pool *pgxpool.Pool, owner domain.Principal, customerID, policyID uuid.UUID) domain.Claim {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	c := domain.Claim{
		ID:            uuid.New(),
		OwnerID:       owner,
		CustomerID:    customerID,
		PolicyID:      policyID,
		ClaimDetails:  []byte(`{"description":"rear-end collision"}`),
		Status:        domain.ClaimStatusOpen,
		StatusHistory: []domain.StatusChange{},
		Version:       1,
		AuditTrail:    []domain.AuditEntry{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO claims (id, owner_id, customer_id, policy_id, claim_details, status, version, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, 1, $7, $7)`,
		c.ID, string(owner), customerID, policyID, string(c.ClaimDetails), string(c.Status), now,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedClaim: %v", err)
	}

	return c
}

// SeedDocument inserts an OTHER document, optionally attached to a customer or policy.
func SeedDocument(t *testing.T, pool *pgxpool.Pool, owner domain.Principal, customerID, policyID *uuid.UUID) domain.Document {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	d := domain.Document{
		ID:             uuid.New(),
		OwnerID:        owner,
		Name:           "scan-" + uniqueSuffix() + ".pdf",
		StorageLocator: "uploads/" + uniqueSuffix(),
		BucketName:     "documents",
		DocumentType:   domain.DocumentTypeOther,
		CustomerID:     customerID,
		PolicyID:       policyID,
		Version:        1,
		AuditTrail:     []domain.AuditEntry{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO documents (id, owner_id, name, storage_locator, bucket_name, document_type,
		                        customer_id, policy_id, version, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 1, $9, $9)`,
		d.ID, string(owner), d.Name, d.StorageLocator, d.BucketName, string(d.DocumentType),
		customerID, policyID, now,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedDocument: %v", err)
	}

	return d
}
