package review

import (
	"context"
	"database/sql"
	"errors"
	"strings"
)

// ParentTraceID returns the trace an observation belongs to, or the empty
// string when the observation is unknown or has no parent recorded.
func (s *Store) ParentTraceID(ctx context.Context, observationID string) (string, error) {
	var traceID sql.NullString
	err := s.db.QueryRowContext(
		ensureContext(ctx),
		`SELECT trace_id FROM observations WHERE id = ?`,
		strings.TrimSpace(observationID),
	).Scan(&traceID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", Wrap(ErrUnavailable, "parent lookup", observationID, err)
	}
	return traceID.String, nil
}

// UpsertObservation records an observation's parent trace so claim
// enrichment can resolve it. This mirrors what ingestion writes; the claim
// path only ever reads.
func (s *Store) UpsertObservation(ctx context.Context, observationID, traceID string) error {
	observationID = strings.TrimSpace(observationID)
	if observationID == "" {
		return Wrap(ErrInvalidInput, "upsert observation", "observation id is required", nil)
	}
	_, err := s.execWithRetry(
		ensureContext(ctx),
		`INSERT INTO observations (id, trace_id) VALUES (?, ?)
         ON CONFLICT(id) DO UPDATE SET trace_id = excluded.trace_id`,
		observationID,
		nullableString(strings.TrimSpace(traceID)),
	)
	if err != nil {
		return Wrap(ErrUnavailable, "upsert observation", observationID, err)
	}
	return nil
}

// attachParent enriches a claimed item with its parent identifier, dispatched
// on object kind. Only observations nest under a broader container today.
func (s *Store) attachParent(ctx context.Context, item *Item) error {
	switch item.ObjectType {
	case ObjectObservation:
		traceID, err := s.ParentTraceID(ctx, item.ObjectID)
		if err != nil {
			return err
		}
		item.ParentTraceID = traceID
	}
	return nil
}
