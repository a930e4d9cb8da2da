// Package customer implements the Customer repository using PostgreSQL.
package customer

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
	table  = "customers"
	entity = "customer"
)

var columns = []string{
	"id", "owner_id", "encrypted_data", "tags", "type",
	"version", "audit_trail", "created_at", "updated_at", "deleted_at",
}

var active = sq.Eq{"deleted_at": nil}

// Repo provides customer persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new customer repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

// GetByID returns a customer owned by owner, erased or not.
func (r *Repo) GetByID(ctx context.Context, owner domain.Principal, id uuid.UUID) (*domain.Customer, error) {
	query, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id, "owner_id": string(owner)}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get customer: %w", err)
	}

	var row customerRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, entity, id)
	}

	return row.toDomain()
}

// List returns the owner's customers, newest first. Erased customers are
// included only when includeErased is true.
func (r *Repo) List(ctx context.Context, owner domain.Principal, includeErased bool) ([]domain.Customer, error) {
	where := sq.And{sq.Eq{"owner_id": string(owner)}}
	if !includeErased {
		where = append(where, active)
	}

	query, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(where).
		OrderBy("created_at DESC", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list customers: %w", err)
	}

	var rows []customerRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, entity, uuid.Nil)
	}

	out := make([]domain.Customer, 0, len(rows))
	for _, row := range rows {
		c, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, nil
}

// Exists reports whether the owner has a customer with id. Erased customers
// count as existing. Inside a transaction the row is locked against deletion
// until commit.
func (r *Repo) Exists(ctx context.Context, owner domain.Principal, id uuid.UUID) (bool, error) {
	query, args, err := postgres.Builder.
		Select("1").
		From(table).
		Where(sq.Eq{"id": id, "owner_id": string(owner)}).
		Suffix("FOR KEY SHARE").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build customer exists: %w", err)
	}

	var one int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&one); err != nil {
		if postgres.IsNoRows(err) {
			return false, nil
		}
		return false, postgres.MapError(err, entity, id)
	}
	return true, nil
}

// ---------------------------------------------------------------------------
// Writes
// ---------------------------------------------------------------------------

// Create inserts a new customer with its initial audit trail and returns the
// persisted row.
func (r *Repo) Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	trail, err := postgres.JSONArray(c.AuditTrail)
	if err != nil {
		return nil, fmt.Errorf("encode audit_trail: %w", err)
	}

	tags := c.Tags
	if tags == nil {
		tags = []string{}
	}

	stamp := postgres.CreatedAt(c.AuditTrail)
	query, args, err := postgres.Builder.
		Insert(table).
		Columns("id", "owner_id", "encrypted_data", "tags", "type", "version", "audit_trail",
			"created_at", "updated_at").
		Values(
			c.ID, string(c.OwnerID), sq.Expr("?::jsonb", string(c.EncryptedData)), tags, string(c.Type),
			c.Version, sq.Expr("?::jsonb", trail), stamp, stamp,
		).
		Suffix(returning()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert customer: %w", err)
	}

	var row customerRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, entity, c.ID)
	}

	return row.toDomain()
}

// Update applies patch to an active customer whose stored version equals
// expected, bumps the version to next, and appends entry to the audit trail
// in the same statement.
func (r *Repo) Update(
	ctx context.Context,
	owner domain.Principal,
	id uuid.UUID,
	expected, next int,
	patch domain.CustomerPatch,
	entry domain.AuditEntry,
) (*domain.Customer, error) {
	appendEntry, err := postgres.AppendJSON("audit_trail", entry)
	if err != nil {
		return nil, err
	}

	b := postgres.Builder.
		Update(table).
		Set("version", next).
		Set("audit_trail", appendEntry).
		Set("updated_at", entry.Timestamp.UTC())

	if patch.EncryptedData != nil {
		b = b.Set("encrypted_data", sq.Expr("?::jsonb", string(patch.EncryptedData)))
	}
	if patch.Tags != nil {
		tags := *patch.Tags
		if tags == nil {
			tags = []string{}
		}
		b = b.Set("tags", tags)
	}
	if patch.Type != nil {
		b = b.Set("type", string(*patch.Type))
	}

	query, args, err := b.
		Where(sq.Eq{"id": id, "owner_id": string(owner), "version": expected}).
		Where(active).
		Suffix(returning()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update customer: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	var row customerRow
	if err := pgxscan.Get(ctx, q, &row, query, args...); err != nil {
		if postgres.IsNoRows(err) {
			return nil, postgres.ResolveMiss(ctx, q, table, entity, id, owner, expected, active)
		}
		return nil, postgres.MapError(err, entity, id)
	}

	return row.toDomain()
}

// SoftDelete marks an active customer as erased and appends entry. Erasing
// an already-erased customer returns it unchanged.
func (r *Repo) SoftDelete(ctx context.Context, owner domain.Principal, id uuid.UUID, entry domain.AuditEntry) (*domain.Customer, error) {
	appendEntry, err := postgres.AppendJSON("audit_trail", entry)
	if err != nil {
		return nil, err
	}

	query, args, err := postgres.Builder.
		Update(table).
		Set("deleted_at", entry.Timestamp.UTC()).
		Set("audit_trail", appendEntry).
		Set("updated_at", entry.Timestamp.UTC()).
		Where(sq.Eq{"id": id, "owner_id": string(owner)}).
		Where(active).
		Suffix(returning()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build soft delete customer: %w", err)
	}

	var row customerRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		if postgres.IsNoRows(err) {
			return r.GetByID(ctx, owner, id)
		}
		return nil, postgres.MapError(err, entity, id)
	}

	return row.toDomain()
}

// ---------------------------------------------------------------------------
// Mapping
// ---------------------------------------------------------------------------

type customerRow struct {
	ID            uuid.UUID  `db:"id"`
	OwnerID       string     `db:"owner_id"`
	EncryptedData []byte     `db:"encrypted_data"`
	Tags          []string   `db:"tags"`
	Type          string     `db:"type"`
	Version       int        `db:"version"`
	AuditTrail    []byte     `db:"audit_trail"`
	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at"`
	DeletedAt     *time.Time `db:"deleted_at"`
}

func (row customerRow) toDomain() (*domain.Customer, error) {
	trail, err := postgres.DecodeAuditTrail(row.AuditTrail)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", entity, row.ID, err)
	}

	tags := row.Tags
	if tags == nil {
		tags = []string{}
	}

	return &domain.Customer{
		ID:            row.ID,
		OwnerID:       domain.Principal(row.OwnerID),
		EncryptedData: row.EncryptedData,
		Tags:          tags,
		Type:          domain.CustomerType(row.Type),
		Version:       row.Version,
		AuditTrail:    trail,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
		DeletedAt:     row.DeletedAt,
	}, nil
}

func returning() string {
	return "RETURNING " + postgres.JoinColumns(columns)
}
