// Package policy implements the Policy repository using PostgreSQL.
package policy

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	postgres "github.com/heartmarshall/insurance-crm/internal/adapter/postgres"
	"github.com/heartmarshall/insurance-crm/internal/domain"
)

const (
	table  = "policies"
	entity = "policy"

	claimsConstraint = "claims_policy_id_fkey"
)

// premium_amount is read as text so no precision is lost on the way into decimal.Decimal.
var columns = []string{
	"id", "owner_id", "customer_id", "policy_number", "policy_type",
	"premium_amount::text AS premium_amount", "renewal_date", "status",
	"version", "audit_trail", "created_at", "updated_at",
}

// Repo provides policy persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new policy repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a policy owned by owner.
func (r *Repo) GetByID(ctx context.Context, owner domain.Principal, id uuid.UUID) (*domain.Policy, error) {
	query, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id, "owner_id": string(owner)}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get policy: %w", err)
	}

	var row policyRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, entity, id)
	}

	return row.toDomain()
}

// ListByCustomer returns the owner's policies held by customerID, newest first.
func (r *Repo) ListByCustomer(ctx context.Context, owner domain.Principal, customerID uuid.UUID) ([]domain.Policy, error) {
	query, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"owner_id": string(owner), "customer_id": customerID}).
		OrderBy("created_at DESC", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list policies: %w", err)
	}

	var rows []policyRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, entity, uuid.Nil)
	}

	out := make([]domain.Policy, 0, len(rows))
	for _, row := range rows {
		p, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, nil
}

// Exists reports whether the owner has a policy with id, locking it against
// deletion when called inside a transaction.
func (r *Repo) Exists(ctx context.Context, owner domain.Principal, id uuid.UUID) (bool, error) {
	query, args, err := postgres.Builder.
		Select("1").
		From(table).
		Where(sq.Eq{"id": id, "owner_id": string(owner)}).
		Suffix("FOR KEY SHARE").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build policy exists: %w", err)
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

// Create inserts a new policy with its initial audit trail.
func (r *Repo) Create(ctx context.Context, p *domain.Policy) (*domain.Policy, error) {
	trail, err := postgres.JSONArray(p.AuditTrail)
	if err != nil {
		return nil, fmt.Errorf("encode audit_trail: %w", err)
	}

	stamp := postgres.CreatedAt(p.AuditTrail)
	query, args, err := postgres.Builder.
		Insert(table).
		Columns("id", "owner_id", "customer_id", "policy_number", "policy_type",
			"premium_amount", "renewal_date", "status", "version", "audit_trail", "created_at", "updated_at").
		Values(
			p.ID, string(p.OwnerID), p.CustomerID, p.PolicyNumber, string(p.PolicyType),
			premiumExpr(p.PremiumAmount), p.RenewalDate, string(p.Status), p.Version,
			sq.Expr("?::jsonb", trail), stamp, stamp,
		).
		Suffix(returning()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert policy: %w", err)
	}

	var row policyRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, entity, p.ID)
	}

	return row.toDomain()
}

// Update applies patch when the stored version equals expected, bumps the
// version to next and appends entry, all in one statement.
func (r *Repo) Update(
	ctx context.Context,
	owner domain.Principal,
	id uuid.UUID,
	expected, next int,
	patch domain.PolicyPatch,
	entry domain.AuditEntry,
) (*domain.Policy, error) {
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
	if patch.PolicyNumber != nil {
		b = b.Set("policy_number", *patch.PolicyNumber)
	}
	if patch.PolicyType != nil {
		b = b.Set("policy_type", string(*patch.PolicyType))
	}
	if patch.PremiumAmount != nil {
		b = b.Set("premium_amount", premiumExpr(*patch.PremiumAmount))
	}
	if patch.RenewalDate != nil {
		b = b.Set("renewal_date", *patch.RenewalDate)
	}
	if patch.Status != nil {
		b = b.Set("status", string(*patch.Status))
	}

	query, args, err := b.
		Where(sq.Eq{"id": id, "owner_id": string(owner), "version": expected}).
		Suffix(returning()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update policy: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	var row policyRow
	if err := pgxscan.Get(ctx, q, &row, query, args...); err != nil {
		if postgres.IsNoRows(err) {
			return nil, postgres.ResolveMiss(ctx, q, table, entity, id, owner, expected)
		}
		return nil, postgres.MapError(err, entity, id)
	}

	return row.toDomain()
}

// HardDelete permanently removes a policy and its audit trail. Documents
// attached to it are detached by the schema; claims block the delete.
func (r *Repo) HardDelete(ctx context.Context, owner domain.Principal, id uuid.UUID) error {
	query, args, err := postgres.Builder.
		Delete(table).
		Where(sq.Eq{"id": id, "owner_id": string(owner)}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete policy: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		if postgres.IsForeignKeyViolation(err, claimsConstraint) {
			return fmt.Errorf("%s %s: %w", entity, id, domain.NewValidationError("id", "policy has claims"))
		}
		return postgres.MapError(err, entity, id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Mapping
// ---------------------------------------------------------------------------

type policyRow struct {
	ID            uuid.UUID `db:"id"`
	OwnerID       string    `db:"owner_id"`
	CustomerID    uuid.UUID `db:"customer_id"`
	PolicyNumber  string    `db:"policy_number"`
	PolicyType    string    `db:"policy_type"`
	PremiumAmount string    `db:"premium_amount"`
	RenewalDate   time.Time `db:"renewal_date"`
	Status        string    `db:"status"`
	Version       int       `db:"version"`
	AuditTrail    []byte    `db:"audit_trail"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

func (row policyRow) toDomain() (*domain.Policy, error) {
	premium, err := decimal.NewFromString(row.PremiumAmount)
	if err != nil {
		return nil, fmt.Errorf("%s %s: parse premium_amount: %w", entity, row.ID, err)
	}

	trail, err := postgres.DecodeAuditTrail(row.AuditTrail)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", entity, row.ID, err)
	}

	return &domain.Policy{
		ID:            row.ID,
		OwnerID:       domain.Principal(row.OwnerID),
		CustomerID:    row.CustomerID,
		PolicyNumber:  row.PolicyNumber,
		PolicyType:    domain.PolicyType(row.PolicyType),
		PremiumAmount: premium,
		RenewalDate:   row.RenewalDate,
		Status:        domain.PolicyStatus(row.Status),
		Version:       row.Version,
		AuditTrail:    trail,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}, nil
}

func premiumExpr(amount decimal.Decimal) sq.Sqlizer {
	return sq.Expr("?::text::numeric", amount.StringFixed(domain.PremiumScale))
}

func returning() string {
	return "RETURNING " + postgres.JoinColumns(columns)
}
