package review

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// AuditAction names a mutating store operation in the audit log.
type AuditAction string

const (
	AuditQueueCreate  AuditAction = "queue.create"
	AuditQueueRename  AuditAction = "queue.rename"
	AuditQueueUpdate  AuditAction = "queue.update"
	AuditQueueDelete  AuditAction = "queue.delete"
	AuditItemEnroll   AuditAction = "item.enroll"
	AuditItemClaim    AuditAction = "item.claim"
	AuditItemComplete AuditAction = "item.complete"
)

// AuditEntry is one recorded store mutation.
type AuditEntry struct {
	ID        string
	QueueID   string
	ActorID   string
	Action    AuditAction
	Detail    string
	CreatedAt time.Time
}

// recordAudit appends an audit row. The mutation being audited has already
// committed, so audit failures are logged and swallowed rather than
// propagated.
func (s *Store) recordAudit(ctx context.Context, queueID, actorID string, action AuditAction, detail string, now time.Time) {
	if now.IsZero() {
		now = time.Now().UTC()
	}
	_, err := s.execWithRetry(
		ensureContext(ctx),
		`INSERT INTO audit_log (id, queue_id, actor_id, action, detail, created_at)
         VALUES (?, ?, ?, ?, ?, ?)`,
		uuid.NewString(),
		nullableString(queueID),
		nullableString(actorID),
		action,
		nullableString(detail),
		formatTime(now),
	)
	if err != nil {
		s.logger.Warn("audit append failed", "action", string(action), "queue", queueID, "error", err)
	}
}

// AuditEntries returns a queue's audit rows, newest first, capped at limit
// (or all rows when limit <= 0).
func (s *Store) AuditEntries(ctx context.Context, queueID string, limit int) ([]AuditEntry, error) {
	ctx = ensureContext(ctx)
	query := `SELECT id, queue_id, actor_id, action, detail, created_at
        FROM audit_log WHERE queue_id = ? ORDER BY created_at DESC, id`
	args := []any{queueID}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, Wrap(ErrUnavailable, "audit entries", queueID, err)
	}
	defer rows.Close()

	var entries []AuditEntry
	for rows.Next() {
		var (
			entry      AuditEntry
			queueRaw   sql.NullString
			actorRaw   sql.NullString
			actionRaw  string
			detailRaw  sql.NullString
			createdRaw string
		)
		if err := rows.Scan(&entry.ID, &queueRaw, &actorRaw, &actionRaw, &detailRaw, &createdRaw); err != nil {
			return nil, Wrap(ErrUnavailable, "audit entries", "scan", err)
		}
		entry.QueueID = queueRaw.String
		entry.ActorID = actorRaw.String
		entry.Action = AuditAction(actionRaw)
		entry.Detail = detailRaw.String
		if created, err := parseTimeString(createdRaw); err == nil {
			entry.CreatedAt = created
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
