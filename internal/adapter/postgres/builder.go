package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/insurance-crm/internal/domain"
)

// Builder is the squirrel statement builder for PostgreSQL placeholders.
var Builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// AppendJSON returns an expression that appends one JSON value to a jsonb
// array column in place.
func AppendJSON(column string, v any) (sq.Sqlizer, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode %s element: %w", column, err)
	}
	return sq.Expr(column+" || jsonb_build_array(?::jsonb)", string(raw)), nil
}

// JSONArray encodes a slice as a jsonb literal, writing [] for nil.
func JSONArray[T any](items []T) (string, error) {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// DecodeAuditTrail decodes a stored audit_trail column.
func DecodeAuditTrail(raw []byte) ([]domain.AuditEntry, error) {
	trail := []domain.AuditEntry{}
	if len(raw) == 0 {
		return trail, nil
	}
	if err := json.Unmarshal(raw, &trail); err != nil {
		return nil, fmt.Errorf("decode audit_trail: %w", err)
	}
	return trail, nil
}

// ResolveMiss explains why a guarded UPDATE touched no rows. It looks the row
// up by id and owner (plus any extra predicates) and returns
// domain.ErrNotFound when it is absent, or a *domain.VersionConflictError
// carrying the stored version.
func ResolveMiss(ctx context.Context, q Querier, table, entity string, id uuid.UUID, owner domain.Principal, expected int, extra ...sq.Sqlizer) error {
	where := sq.And{sq.Eq{"id": id, "owner_id": string(owner)}}
	where = append(where, extra...)

	query, args, err := Builder.Select("version").From(table).Where(where).ToSql()
	if err != nil {
		return fmt.Errorf("build %s version lookup: %w", entity, err)
	}

	var stored int
	if err := q.QueryRow(ctx, query, args...).Scan(&stored); err != nil {
		return MapError(err, entity, id)
	}
	return fmt.Errorf("%s %s: %w", entity, id, &domain.VersionConflictError{Expected: expected, Actual: stored})
}

// CreatedAt is the row timestamp for a new record: the time of the last
// entry of its initial trail, so row and audit timestamps share one clock.
// An empty trail falls back to the database clock.
func CreatedAt(trail []domain.AuditEntry) any {
	if len(trail) == 0 {
		return sq.Expr("now()")
	}
	return trail[len(trail)-1].Timestamp.UTC()
}

// IsNoRows reports whether err means a statement returned no rows.
func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows) || pgxscan.NotFound(err)
}

// JoinColumns renders a column list for RETURNING clauses.
func JoinColumns(cols []string) string {
	return strings.Join(cols, ", ")
}
