package review

import (
	"context"
	"strings"
	"time"
)

// Complete transitions every item matching (queueID, ref) to the terminal
// completed status, stamping who completed it and when. Completion is not
// gated on lease ownership: a reviewer whose lease lapsed and the reviewer
// who claimed the item afterwards may both call Complete, and the second
// call matches zero rows and keeps the first call's stamps. Zero matches is
// a valid result, not an error.
func (s *Store) Complete(ctx context.Context, queueID string, ref ObjectRef, completedBy string, now time.Time) (int64, error) {
	ctx = ensureContext(ctx)
	queueID = strings.TrimSpace(queueID)
	completedBy = strings.TrimSpace(completedBy)
	if queueID == "" {
		return 0, Wrap(ErrInvalidInput, "complete", "queue id is required", nil)
	}
	if completedBy == "" {
		return 0, Wrap(ErrInvalidInput, "complete", "completer id is required", nil)
	}
	if !ref.Valid() {
		return 0, Wrap(ErrInvalidInput, "complete", "object reference is malformed", nil)
	}
	if now.IsZero() {
		now = time.Now().UTC()
	}
	if _, err := s.GetQueue(ctx, queueID); err != nil {
		return 0, err
	}

	res, err := s.execWithRetry(
		ctx,
		`UPDATE queue_items
         SET status = ?, completed_at = ?, completed_by_id = ?
         WHERE queue_id = ? AND object_id = ? AND object_type = ? AND status <> ?`,
		StatusCompleted,
		formatTime(now),
		completedBy,
		queueID,
		strings.TrimSpace(ref.ObjectID),
		ref.ObjectType,
		StatusCompleted,
	)
	if err != nil {
		return 0, Wrap(ErrUnavailable, "complete", "update status", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, Wrap(ErrUnavailable, "complete", "rows affected", err)
	}
	if affected > 0 {
		s.recordAudit(ctx, queueID, completedBy, AuditItemComplete, ref.ObjectID, now)
	}
	return affected, nil
}
