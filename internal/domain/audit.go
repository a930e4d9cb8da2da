package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// AuditEntry is one immutable record in an entity's audit trail.
//
// The field set is fixed per action: CREATED and DELETED carry no changed
// fields, UPDATED carries the names of the patched fields. Keys written by a
// newer schema that this version does not know about are kept in Extensions
// so they survive a read-modify-write round trip.
type AuditEntry struct {
	Timestamp     time.Time
	Action        AuditAction
	ActorID       Principal
	ChangedFields []string
	Extensions    map[string]json.RawMessage
}

// Validate checks the per-action field set.
func (e AuditEntry) Validate() error {
	if !e.Action.IsValid() {
		return NewValidationError("action", fmt.Sprintf("unknown audit action %q", e.Action))
	}
	if e.ActorID.IsZero() {
		return NewValidationError("actor_id", "required")
	}
	if e.Timestamp.IsZero() {
		return NewValidationError("timestamp", "required")
	}
	switch e.Action {
	case AuditActionUpdated:
		if len(e.ChangedFields) == 0 {
			return NewValidationError("changed_fields", "required for UPDATED")
		}
	default:
		if len(e.ChangedFields) != 0 {
			return NewValidationError("changed_fields", fmt.Sprintf("must be empty for %s", e.Action))
		}
	}
	return nil
}

const (
	auditKeyTimestamp     = "timestamp"
	auditKeyAction        = "action"
	auditKeyActorID       = "actorId"
	auditKeyChangedFields = "changedFields"
)

// MarshalJSON writes the known keys and then any extension keys.
func (e AuditEntry) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, 4+len(e.Extensions))
	for k, v := range e.Extensions {
		out[k] = v
	}

	fields := e.ChangedFields
	if fields == nil {
		fields = []string{}
	}

	known := map[string]any{
		auditKeyTimestamp:     e.Timestamp.UTC().Format(time.RFC3339Nano),
		auditKeyAction:        e.Action,
		auditKeyActorID:       e.ActorID,
		auditKeyChangedFields: fields,
	}
	for k, v := range known {
		raw, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("audit entry %s: %w", k, err)
		}
		out[k] = raw
	}

	return json.Marshal(out)
}

// UnmarshalJSON reads the known keys and keeps the rest as extensions.
func (e *AuditEntry) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var entry AuditEntry
	if v, ok := raw[auditKeyTimestamp]; ok {
		var ts string
		if err := json.Unmarshal(v, &ts); err != nil {
			return fmt.Errorf("audit entry timestamp: %w", err)
		}
		parsed, err := time.Parse(time.RFC3339Nano, ts)
		if err != nil {
			return fmt.Errorf("audit entry timestamp: %w", err)
		}
		entry.Timestamp = parsed
		delete(raw, auditKeyTimestamp)
	}
	if v, ok := raw[auditKeyAction]; ok {
		if err := json.Unmarshal(v, &entry.Action); err != nil {
			return fmt.Errorf("audit entry action: %w", err)
		}
		delete(raw, auditKeyAction)
	}
	if v, ok := raw[auditKeyActorID]; ok {
		if err := json.Unmarshal(v, &entry.ActorID); err != nil {
			return fmt.Errorf("audit entry actorId: %w", err)
		}
		delete(raw, auditKeyActorID)
	}
	if v, ok := raw[auditKeyChangedFields]; ok {
		if err := json.Unmarshal(v, &entry.ChangedFields); err != nil {
			return fmt.Errorf("audit entry changedFields: %w", err)
		}
		delete(raw, auditKeyChangedFields)
	}
	if entry.ChangedFields == nil {
		entry.ChangedFields = []string{}
	}
	if len(raw) > 0 {
		entry.Extensions = raw
	}

	*e = entry
	return nil
}

// StatusChange records one claim status transition. From is nil for the
// initial status set at creation.
type StatusChange struct {
	From      *ClaimStatus `json:"from"`
	To        ClaimStatus  `json:"to"`
	ChangedAt time.Time    `json:"changedAt"`
	ActorID   Principal    `json:"actorId"`
}
