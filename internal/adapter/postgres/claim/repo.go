// Package claim implements the Claim repository using PostgreSQL.
package claim

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/insurance-crm/internal/adapter/postgres"
	"github.com/heartmarshall/insurance-crm/internal/domain"
)

const (
	table  = "claims"
	entity = "claim"
)

var columns = []string{
	"id", "owner_id", "customer_id", "policy_id", "claim_details", "status", "status_history",
	"(EXTRACT(EPOCH FROM resolution_time) * 1000000)::bigint AS resolution_us",
	"version", "audit_trail", "created_at", "updated_at",
}

// Repo provides claim persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new claim repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a claim owned by owner.
func (r *Repo) GetByID(ctx context.Context, owner domain.Principal, id uuid.UUID) (*domain.Claim, error) {
	query, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id, "owner_id": string(owner)}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get claim: %w", err)
	}

	var row claimRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, entity, id)
	}

	return row.toDomain()
}

// ListByCustomer returns the owner's claims filed by customerID, newest first.
func (r *Repo) ListByCustomer(ctx context.Context, owner domain.Principal, customerID uuid.UUID) ([]domain.Claim, error) {
	return r.list(ctx, sq.Eq{"owner_id": string(owner), "customer_id": customerID})
}

// ListByPolicy returns the owner's claims made under policyID, newest first.
func (r *Repo) ListByPolicy(ctx context.Context, owner domain.Principal, policyID uuid.UUID) ([]domain.Claim, error) {
	return r.list(ctx, sq.Eq{"owner_id": string(owner), "policy_id": policyID})
}

func (r *Repo) list(ctx context.Context, where sq.Eq) ([]domain.Claim, error) {
	query, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(where).
		OrderBy("created_at DESC", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list claims: %w", err)
	}

	var rows []claimRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, entity, uuid.Nil)
	}

	out := make([]domain.Claim, 0, len(rows))
	for _, row := range rows {
		c, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, nil
}

// Create inserts a new claim with its seeded status history and audit trail.
func (r *Repo) Create(ctx context.Context, c *domain.Claim) (*domain.Claim, error) {
	trail, err := postgres.JSONArray(c.AuditTrail)
	if err != nil {
		return nil, fmt.Errorf("encode audit_trail: %w", err)
	}
	history, err := postgres.JSONArray(c.StatusHistory)
	if err != nil {
		return nil, fmt.Errorf("encode status_history: %w", err)
	}

	var resolution any
	if c.ResolutionTime != nil {
		resolution = resolutionExpr(*c.ResolutionTime)
	}

	stamp := postgres.CreatedAt(c.AuditTrail)
	query, args, err := postgres.Builder.
		Insert(table).
		Columns("id", "owner_id", "customer_id", "policy_id", "claim_details", "status",
			"status_history", "resolution_time", "version", "audit_trail", "created_at", "updated_at").
		Values(
			c.ID, string(c.OwnerID), c.CustomerID, c.PolicyID, sq.Expr("?::jsonb", string(c.ClaimDetails)),
			string(c.Status), sq.Expr("?::jsonb", history), resolution, c.Version, sq.Expr("?::jsonb", trail),
			stamp, stamp,
		).
		Suffix(returning()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert claim: %w", err)
	}

	var row claimRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, entity, c.ID)
	}

	return row.toDomain()
}

// Update applies patch when the stored version equals expected. A non-nil
// transition appends its status change to status_history and overwrites
// resolution_time. The version bump and audit entry land in the same statement.
func (r *Repo) Update(
	ctx context.Context,
	owner domain.Principal,
	id uuid.UUID,
	expected, next int,
	patch domain.ClaimPatch,
	transition *domain.ClaimTransition,
	entry domain.AuditEntry,
) (*domain.Claim, error) {
	appendEntry, err := postgres.AppendJSON("audit_trail", entry)
	if err != nil {
		return nil, err
	}

	b := postgres.Builder.
		Update(table).
		Set("version", next).
		Set("audit_trail", appendEntry).
		Set("updated_at", entry.Timestamp.UTC())

	if patch.CustomerID != nil {
		b = b.Set("customer_id", *patch.CustomerID)
	}
	if patch.PolicyID != nil {
		b = b.Set("policy_id", *patch.PolicyID)
	}
	if patch.ClaimDetails != nil {
		b = b.Set("claim_details", sq.Expr("?::jsonb", string(patch.ClaimDetails)))
	}
	if patch.Status != nil {
		b = b.Set("status", string(*patch.Status))
	}
	if transition != nil {
		appendChange, err := postgres.AppendJSON("status_history", transition.StatusChange)
		if err != nil {
			return nil, err
		}
		b = b.Set("status_history", appendChange)
		if transition.ResolutionTime != nil {
			b = b.Set("resolution_time", resolutionExpr(*transition.ResolutionTime))
		} else {
			b = b.Set("resolution_time", nil)
		}
	}

	query, args, err := b.
		Where(sq.Eq{"id": id, "owner_id": string(owner), "version": expected}).
		Suffix(returning()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update claim: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	var row claimRow
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

type claimRow struct {
	ID            uuid.UUID `db:"id"`
	OwnerID       string    `db:"owner_id"`
	CustomerID    uuid.UUID `db:"customer_id"`
	PolicyID      uuid.UUID `db:"policy_id"`
	ClaimDetails  []byte    `db:"claim_details"`
	Status        string    `db:"status"`
	StatusHistory []byte    `db:"status_history"`
	ResolutionUS  *int64    `db:"resolution_us"`
	Version       int       `db:"version"`
	AuditTrail    []byte    `db:"audit_trail"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

func (row claimRow) toDomain() (*domain.Claim, error) {
	trail, err := postgres.DecodeAuditTrail(row.AuditTrail)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", entity, row.ID, err)
	}

	history := []domain.StatusChange{}
	if len(row.StatusHistory) > 0 {
		if err := json.Unmarshal(row.StatusHistory, &history); err != nil {
			return nil, fmt.Errorf("%s %s: decode status_history: %w", entity, row.ID, err)
		}
	}

	var resolution *time.Duration
	if row.ResolutionUS != nil {
		d := time.Duration(*row.ResolutionUS) * time.Microsecond
		resolution = &d
	}

	return &domain.Claim{
		ID:             row.ID,
		OwnerID:        domain.Principal(row.OwnerID),
		CustomerID:     row.CustomerID,
		PolicyID:       row.PolicyID,
		ClaimDetails:   row.ClaimDetails,
		Status:         domain.ClaimStatus(row.Status),
		StatusHistory:  history,
		ResolutionTime: resolution,
		Version:        row.Version,
		AuditTrail:     trail,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}, nil
}

func returning() string {
	return "RETURNING " + postgres.JoinColumns(columns)
}

func resolutionExpr(d time.Duration) sq.Sqlizer {
	return sq.Expr("make_interval(secs => ?::double precision)", d.Seconds())
}
