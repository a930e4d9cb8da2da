// Package audittrail builds the append-only audit entries stored with every
// entity.
package audittrail

import (
	"fmt"
	"slices"
	"time"

	"github.com/heartmarshall/insurance-crm/internal/domain"
)

// Recorder stamps and validates audit entries.
type Recorder struct {
	now func() time.Time
}

// NewRecorder creates a Recorder. A nil clock means time.Now.
func NewRecorder(now func() time.Time) *Recorder {
	if now == nil {
		now = time.Now
	}
	return &Recorder{now: now}
}

// Now returns the recorder's current time in UTC at the store's microsecond
// precision. Row timestamps are written from the same value.
func (r *Recorder) Now() time.Time {
	return r.now().UTC().Truncate(time.Microsecond)
}

// Entry builds one validated entry stamped with the current time.
func (r *Recorder) Entry(action domain.AuditAction, actor domain.Principal, changedFields []string) (domain.AuditEntry, error) {
	fields := slices.Clone(changedFields)
	if fields == nil {
		fields = []string{}
	}

	entry := domain.AuditEntry{
		Timestamp:     r.Now(),
		Action:        action,
		ActorID:       actor,
		ChangedFields: fields,
	}
	if err := entry.Validate(); err != nil {
		return domain.AuditEntry{}, fmt.Errorf("audit entry: %w", err)
	}
	return entry, nil
}

// Append builds an entry and returns it together with a new trail that ends
// with it. The input trail is never modified.
func (r *Recorder) Append(
	trail []domain.AuditEntry,
	action domain.AuditAction,
	actor domain.Principal,
	changedFields []string,
) (domain.AuditEntry, []domain.AuditEntry, error) {
	entry, err := r.Entry(action, actor, changedFields)
	if err != nil {
		return domain.AuditEntry{}, nil, err
	}

	out := make([]domain.AuditEntry, 0, len(trail)+1)
	out = append(out, trail...)
	out = append(out, entry)
	return entry, out, nil
}
