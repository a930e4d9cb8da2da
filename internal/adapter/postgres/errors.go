package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/insurance-crm/internal/domain"
)

// MapError converts pgx/pgconn errors to domain errors.
// context.DeadlineExceeded and context.Canceled are NOT mapped, they pass through.
func MapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	// context errors pass through as-is
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}

	if errors.Is(err, pgx.ErrNoRows) || pgxscan.NotFound(err) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrAlreadyExists)
		case pgerrcode.ForeignKeyViolation:
			return fmt.Errorf("%s %s: %w", entity, id, domain.NewReferenceNotFound(ReferencedKind(pgErr.ConstraintName)))
		case pgerrcode.CheckViolation, pgerrcode.NotNullViolation, pgerrcode.InvalidTextRepresentation,
			pgerrcode.NumericValueOutOfRange:
			return fmt.Errorf("%s %s: %w", entity, id, domain.NewValidationError(constraintField(pgErr), rejectMessages[pgErr.Code]))
		}
	}

	// Everything else: wrap with context
	return fmt.Errorf("%s %s: %w", entity, id, err)
}

// IsForeignKeyViolation reports whether err is an FK violation on the named
// constraint. An empty constraint matches any FK violation.
func IsForeignKeyViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgerrcode.ForeignKeyViolation {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}

// ReferencedKind derives the referenced entity kind from a default-named FK
// constraint: "claims_policy_id_fkey" yields "policy".
func ReferencedKind(constraint string) string {
	name := strings.TrimSuffix(constraint, "_id_fkey")
	if name == constraint {
		return constraint
	}
	if i := strings.LastIndex(name, "_"); i >= 0 {
		return name[i+1:]
	}
	return name
}

// rejectMessages are the client-facing messages for values the store
// rejected. The server's own message text never reaches the caller.
var rejectMessages = map[string]string{
	pgerrcode.CheckViolation:            "invalid value",
	pgerrcode.NotNullViolation:          "required",
	pgerrcode.InvalidTextRepresentation: "invalid format",
	pgerrcode.NumericValueOutOfRange:    "out of range",
}

// constraintField names the rejected field in API terms. The column comes
// from the error or from a default-named check constraint
// ("policies_premium_amount_check" yields "premiumAmount").
func constraintField(pgErr *pgconn.PgError) string {
	column := pgErr.ColumnName
	if column == "" {
		name, ok := strings.CutSuffix(pgErr.ConstraintName, "_check")
		if _, rest, found := strings.Cut(name, "_"); ok && found && rest != "" {
			column = rest
		}
	}
	if column == "" {
		return "input"
	}
	return camelCase(column)
}

func camelCase(snake string) string {
	parts := strings.Split(snake, "_")
	var b strings.Builder
	b.WriteString(parts[0])
	for _, p := range parts[1:] {
		if p == "" {
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]) + p[1:])
	}
	return b.String()
}
