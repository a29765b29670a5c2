package review

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Enroll adds the referenced objects to a queue as pending items. The input
// is truncated to the configured batch cap; references beyond the cap are
// dropped silently and reported through Requested vs Attempted. Objects that
// already have a pending item in the queue are skipped without error, so
// calling Enroll twice with overlapping batches never produces duplicates.
func (s *Store) Enroll(ctx context.Context, queueID string, refs []ObjectRef, now time.Time) (EnrollmentResult, error) {
	ctx = ensureContext(ctx)
	result := EnrollmentResult{Requested: len(refs)}

	queueID = strings.TrimSpace(queueID)
	if queueID == "" {
		return result, Wrap(ErrInvalidInput, "enroll", "queue id is required", nil)
	}
	if len(refs) == 0 {
		return result, Wrap(ErrInvalidInput, "enroll", "at least one object reference is required", nil)
	}
	if now.IsZero() {
		now = time.Now().UTC()
	}
	if _, err := s.GetQueue(ctx, queueID); err != nil {
		return result, err
	}

	// Truncation comes first: validation covers only the attempted slice,
	// so a malformed reference past the cap cannot reject the batch.
	if len(refs) > s.maxEnrollBatch {
		refs = refs[:s.maxEnrollBatch]
	}
	result.Attempted = len(refs)
	for i, ref := range refs {
		if !ref.Valid() {
			return result, Wrap(ErrInvalidInput, "enroll",
				fmt.Sprintf("object reference %d is malformed (%q, %q)", i, ref.ObjectID, ref.ObjectType), nil)
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return result, Wrap(ErrUnavailable, "enroll", "begin tx", err)
	}
	defer func() { _ = tx.Rollback() }()

	stamp := formatTime(now)
	for _, ref := range refs {
		res, err := tx.ExecContext(
			ctx,
			`INSERT OR IGNORE INTO queue_items (id, queue_id, object_id, object_type, status, created_at)
             VALUES (?, ?, ?, ?, ?, ?)`,
			uuid.NewString(),
			queueID,
			strings.TrimSpace(ref.ObjectID),
			ref.ObjectType,
			StatusPending,
			stamp,
		)
		if err != nil {
			return result, Wrap(ErrUnavailable, "enroll", "insert item", err)
		}
		inserted, err := res.RowsAffected()
		if err != nil {
			return result, Wrap(ErrUnavailable, "enroll", "rows affected", err)
		}
		result.Created += int(inserted)
	}

	if err := tx.Commit(); err != nil {
		return result, Wrap(ErrUnavailable, "enroll", "commit", err)
	}

	if result.Created > 0 {
		s.recordAudit(ctx, queueID, "", AuditItemEnroll,
			fmt.Sprintf("created %d of %d", result.Created, result.Attempted), now)
	}
	return result, nil
}
