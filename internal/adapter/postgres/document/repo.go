// Package document implements the Document metadata repository using PostgreSQL.
package document

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/insurance-crm/internal/adapter/postgres"
	"github.com/heartmarshall/insurance-crm/internal/domain"
)

const (
	table  = "documents"
	entity = "document"
)

var columns = []string{
	"id", "owner_id", "name", "storage_locator", "bucket_name", "document_type",
	"customer_id", "policy_id", "version", "audit_trail", "created_at", "updated_at",
}

// Repo provides document metadata persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new document repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a document owned by owner.
func (r *Repo) GetByID(ctx context.Context, owner domain.Principal, id uuid.UUID) (*domain.Document, error) {
	query, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id, "owner_id": string(owner)}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get document: %w", err)
	}

	var row documentRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, entity, id)
	}

	return row.toDomain()
}

// ListByCustomer returns the owner's documents attached to customerID.
func (r *Repo) ListByCustomer(ctx context.Context, owner domain.Principal, customerID uuid.UUID) ([]domain.Document, error) {
	return r.list(ctx, sq.Eq{"owner_id": string(owner), "customer_id": customerID})
}

// ListByPolicy returns the owner's documents attached to policyID.
func (r *Repo) ListByPolicy(ctx context.Context, owner domain.Principal, policyID uuid.UUID) ([]domain.Document, error) {
	return r.list(ctx, sq.Eq{"owner_id": string(owner), "policy_id": policyID})
}

func (r *Repo) list(ctx context.Context, where sq.Eq) ([]domain.Document, error) {
	query, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(where).
		OrderBy("created_at DESC", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list documents: %w", err)
	}

	var rows []documentRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, entity, uuid.Nil)
	}

	out := make([]domain.Document, 0, len(rows))
	for _, row := range rows {
		d, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, *d)
	}
	return out, nil
}

// Create inserts new document metadata with its initial audit trail.
func (r *Repo) Create(ctx context.Context, d *domain.Document) (*domain.Document, error) {
	trail, err := postgres.JSONArray(d.AuditTrail)
	if err != nil {
		return nil, fmt.Errorf("encode audit_trail: %w", err)
	}

	stamp := postgres.CreatedAt(d.AuditTrail)
	query, args, err := postgres.Builder.
		Insert(table).
		Columns("id", "owner_id", "name", "storage_locator", "bucket_name", "document_type",
			"customer_id", "policy_id", "version", "audit_trail", "created_at", "updated_at").
		Values(
			d.ID, string(d.OwnerID), d.Name, d.StorageLocator, d.BucketName, string(d.DocumentType),
			d.CustomerID, d.PolicyID, d.Version, sq.Expr("?::jsonb", trail), stamp, stamp,
		).
		Suffix(returning()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert document: %w", err)
	}

	var row documentRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, entity, d.ID)
	}

	return row.toDomain()
}

// Update applies patch when the stored version equals expected, bumping the
// version and appending entry in the same statement.
func (r *Repo) Update(
	ctx context.Context,
	owner domain.Principal,
	id uuid.UUID,
	expected, next int,
	patch domain.DocumentPatch,
	entry domain.AuditEntry,
) (*domain.Document, error) {
	appendEntry, err := postgres.AppendJSON("audit_trail", entry)
	if err != nil {
		return nil, err
	}

	b := postgres.Builder.
		Update(table).
		Set("version", next).
		Set("audit_trail", appendEntry).
		Set("updated_at", entry.Timestamp.UTC())

	if patch.Name != nil {
		b = b.Set("name", *patch.Name)
	}
	if patch.StorageLocator != nil {
		b = b.Set("storage_locator", *patch.StorageLocator)
	}
	if patch.DocumentType != nil {
		b = b.Set("document_type", string(*patch.DocumentType))
	}
	if patch.CustomerID != nil {
		b = b.Set("customer_id", *patch.CustomerID)
	}
	if patch.PolicyID != nil {
		b = b.Set("policy_id", *patch.PolicyID)
	}

	query, args, err := b.
		Where(sq.Eq{"id": id, "owner_id": string(owner), "version": expected}).
		Suffix(returning()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update document: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	var row documentRow
	if err := pgxscan.Get(ctx, q, &row, query, args...); err != nil {
		if postgres.IsNoRows(err) {
			return nil, postgres.ResolveMiss(ctx, q, table, entity, id, owner, expected)
		}
		return nil, postgres.MapError(err, entity, id)
	}

	return row.toDomain()
}

// ---------------------------------------------------------------------------
// Mapping
// ---------------------------------------------------------------------------

type documentRow struct {
	ID             uuid.UUID  `db:"id"`
	OwnerID        string     `db:"owner_id"`
	Name           string     `db:"name"`
	StorageLocator string     `db:"storage_locator"`
	BucketName     string     `db:"bucket_name"`
	DocumentType   string     `db:"document_type"`
	CustomerID     *uuid.UUID `db:"customer_id"`
	PolicyID       *uuid.UUID `db:"policy_id"`
	Version        int        `db:"version"`
	AuditTrail     []byte     `db:"audit_trail"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
}

func (row documentRow) toDomain() (*domain.Document, error) {
	trail, err := postgres.DecodeAuditTrail(row.AuditTrail)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", entity, row.ID, err)
	}

	return &domain.Document{
		ID:             row.ID,
		OwnerID:        domain.Principal(row.OwnerID),
		Name:           row.Name,
		StorageLocator: row.StorageLocator,
		BucketName:     row.BucketName,
		DocumentType:   domain.DocumentType(row.DocumentType),
		CustomerID:     row.CustomerID,
		PolicyID:       row.PolicyID,
		Version:        row.Version,
		AuditTrail:     trail,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}, nil
}

func returning() string {
	return "RETURNING " + postgres.JoinColumns(columns)
}
