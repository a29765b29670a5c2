package review

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// CreateQueue inserts a new annotation queue. Queue names are unique; a
// duplicate name surfaces as ErrInvalidInput from the store constraint.
func (s *Store) CreateQueue(ctx context.Context, name, description string, scoreConfigIDs []string) (*Queue, error) {
	ctx = ensureContext(ctx)
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, Wrap(ErrInvalidInput, "create queue", "name is required", nil)
	}

	now := time.Now().UTC()
	stamp := formatTime(now)
	id := uuid.NewString()
	_, err := s.execWithRetry(
		ctx,
		`INSERT INTO review_queues (id, name, description, score_config_ids, created_at, updated_at)
         VALUES (?, ?, ?, ?, ?, ?)`,
		id,
		name,
		nullableString(strings.TrimSpace(description)),
		encodeScoreConfigIDs(scoreConfigIDs),
		stamp,
		stamp,
	)
	if err != nil {
		if isConstraintViolation(err) {
			return nil, Wrap(ErrInvalidInput, "create queue", "name already in use", err)
		}
		return nil, Wrap(ErrUnavailable, "create queue", "insert", err)
	}

	s.recordAudit(ctx, id, "", AuditQueueCreate, name, now)
	return s.GetQueue(ctx, id)
}

// GetQueue fetches a queue by identifier.
func (s *Store) GetQueue(ctx context.Context, id string) (*Queue, error) {
	row := s.db.QueryRowContext(ensureContext(ctx), `SELECT `+queueColumns+` FROM review_queues WHERE id = ?`, id)
	queue, err := scanQueue(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, Wrap(ErrNotFound, "get queue", id, nil)
	}
	if err != nil {
		return nil, Wrap(ErrUnavailable, "get queue", id, err)
	}
	return queue, nil
}

// GetQueueByName fetches a queue by its unique name.
func (s *Store) GetQueueByName(ctx context.Context, name string) (*Queue, error) {
	row := s.db.QueryRowContext(ensureContext(ctx), `SELECT `+queueColumns+` FROM review_queues WHERE name = ?`, strings.TrimSpace(name))
	queue, err := scanQueue(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, Wrap(ErrNotFound, "get queue", name, nil)
	}
	if err != nil {
		return nil, Wrap(ErrUnavailable, "get queue", name, err)
	}
	return queue, nil
}

// ListQueues returns all queues ordered by name.
func (s *Store) ListQueues(ctx context.Context) ([]*Queue, error) {
	rows, err := s.db.QueryContext(ensureContext(ctx), `SELECT `+queueColumns+` FROM review_queues ORDER BY name`)
	if err != nil {
		return nil, Wrap(ErrUnavailable, "list queues", "", err)
	}
	defer rows.Close()

	var queues []*Queue
	for rows.Next() {
		queue, err := scanQueue(rows)
		if err != nil {
			return nil, Wrap(ErrUnavailable, "list queues", "scan", err)
		}
		queues = append(queues, queue)
	}
	return queues, rows.Err()
}

// RenameQueue changes a queue's name.
func (s *Store) RenameQueue(ctx context.Context, id, name string) error {
	ctx = ensureContext(ctx)
	name = strings.TrimSpace(name)
	if name == "" {
		return Wrap(ErrInvalidInput, "rename queue", "name is required", nil)
	}
	now := time.Now().UTC()
	res, err := s.execWithRetry(
		ctx,
		`UPDATE review_queues SET name = ?, updated_at = ? WHERE id = ?`,
		name,
		formatTime(now),
		id,
	)
	if err != nil {
		if isConstraintViolation(err) {
			return Wrap(ErrInvalidInput, "rename queue", "name already in use", err)
		}
		return Wrap(ErrUnavailable, "rename queue", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return Wrap(ErrUnavailable, "rename queue", "rows affected", err)
	}
	if affected == 0 {
		return Wrap(ErrNotFound, "rename queue", id, nil)
	}
	s.recordAudit(ctx, id, "", AuditQueueRename, name, now)
	return nil
}

// UpdateQueueDescription replaces a queue's description.
func (s *Store) UpdateQueueDescription(ctx context.Context, id, description string) error {
	ctx = ensureContext(ctx)
	now := time.Now().UTC()
	res, err := s.execWithRetry(
		ctx,
		`UPDATE review_queues SET description = ?, updated_at = ? WHERE id = ?`,
		nullableString(strings.TrimSpace(description)),
		formatTime(now),
		id,
	)
	if err != nil {
		return Wrap(ErrUnavailable, "update queue", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return Wrap(ErrUnavailable, "update queue", "rows affected", err)
	}
	if affected == 0 {
		return Wrap(ErrNotFound, "update queue", id, nil)
	}
	s.recordAudit(ctx, id, "", AuditQueueUpdate, "description", now)
	return nil
}

// SetScoreConfigs associates the given score configuration identifiers with
// a queue, replacing any previous association. Schema validation of the
// configurations themselves is an external concern.
func (s *Store) SetScoreConfigs(ctx context.Context, id string, scoreConfigIDs []string) error {
	ctx = ensureContext(ctx)
	now := time.Now().UTC()
	res, err := s.execWithRetry(
		ctx,
		`UPDATE review_queues SET score_config_ids = ?, updated_at = ? WHERE id = ?`,
		encodeScoreConfigIDs(scoreConfigIDs),
		formatTime(now),
		id,
	)
	if err != nil {
		return Wrap(ErrUnavailable, "set score configs", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return Wrap(ErrUnavailable, "set score configs", "rows affected", err)
	}
	if affected == 0 {
		return Wrap(ErrNotFound, "set score configs", id, nil)
	}
	s.recordAudit(ctx, id, "", AuditQueueUpdate, "score configs", now)
	return nil
}

// DeleteQueue removes a queue and, through the schema's cascade, its items.
func (s *Store) DeleteQueue(ctx context.Context, id string) (bool, error) {
	ctx = ensureContext(ctx)
	res, err := s.execWithRetry(ctx, `DELETE FROM review_queues WHERE id = ?`, id)
	if err != nil {
		return false, Wrap(ErrUnavailable, "delete queue", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, Wrap(ErrUnavailable, "delete queue", "rows affected", err)
	}
	if affected > 0 {
		s.recordAudit(ctx, id, "", AuditQueueDelete, "", time.Now().UTC())
	}
	return affected > 0, nil
}

// ItemByID fetches a queue item by identifier.
func (s *Store) ItemByID(ctx context.Context, id string) (*Item, error) {
	row := s.db.QueryRowContext(ensureContext(ctx), `SELECT `+itemColumns+` FROM queue_items WHERE id = ?`, id)
	item, err := scanItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, Wrap(ErrNotFound, "get item", id, nil)
	}
	if err != nil {
		return nil, Wrap(ErrUnavailable, "get item", id, err)
	}
	return item, nil
}

// ItemsByQueue returns a queue's items in creation order, optionally
// filtered by status.
func (s *Store) ItemsByQueue(ctx context.Context, queueID string, statuses ...Status) ([]*Item, error) {
	ctx = ensureContext(ctx)
	if _, err := s.GetQueue(ctx, queueID); err != nil {
		return nil, err
	}

	query := `SELECT ` + itemColumns + ` FROM queue_items WHERE queue_id = ?`
	args := []any{queueID}
	if len(statuses) > 0 {
		query += ` AND status IN (` + makePlaceholders(len(statuses)) + `)`
		for _, status := range statuses {
			args = append(args, status)
		}
	}
	query += ` ORDER BY created_at, id`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, Wrap(ErrUnavailable, "list items", queueID, err)
	}
	defer rows.Close()

	var items []*Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, Wrap(ErrUnavailable, "list items", "scan", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// HasItem reports whether the queue currently holds any item for the
// reference, regardless of status.
func (s *Store) HasItem(ctx context.Context, queueID string, ref ObjectRef) (bool, error) {
	var count int
	err := s.db.QueryRowContext(
		ensureContext(ctx),
		`SELECT COUNT(1) FROM queue_items WHERE queue_id = ? AND object_id = ? AND object_type = ?`,
		queueID,
		strings.TrimSpace(ref.ObjectID),
		ref.ObjectType,
	).Scan(&count)
	if err != nil {
		return false, Wrap(ErrUnavailable, "membership", queueID, err)
	}
	return count > 0, nil
}

// Stats returns per-status item counts for one queue.
func (s *Store) Stats(ctx context.Context, queueID string) (QueueStats, error) {
	ctx = ensureContext(ctx)
	if _, err := s.GetQueue(ctx, queueID); err != nil {
		return QueueStats{}, err
	}

	rows, err := s.db.QueryContext(ctx, `SELECT status, COUNT(1) FROM queue_items WHERE queue_id = ? GROUP BY status`, queueID)
	if err != nil {
		return QueueStats{}, Wrap(ErrUnavailable, "queue stats", queueID, err)
	}
	defer rows.Close()

	stats := QueueStats{}
	for rows.Next() {
		var status Status
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return QueueStats{}, Wrap(ErrUnavailable, "queue stats", "scan", err)
		}
		stats.Total += count
		switch status {
		case StatusPending:
			stats.Pending += count
		case StatusCompleted:
			stats.Completed += count
		}
	}
	return stats, rows.Err()
}
