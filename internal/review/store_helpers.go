package review

import (
	"database/sql"
	"encoding/json"
	"errors"
	"time"
)

// timeFormat is RFC3339 with a fixed-width nanosecond fraction so that
// lexicographic order over stored timestamps matches chronological order.
// Claim eligibility and FIFO selection compare these strings in SQL.
const timeFormat = "2006-01-02T15:04:05.000000000Z07:00"

const itemColumns = "id, queue_id, object_id, object_type, status, lease_holder_id, lease_started_at, completed_at, completed_by_id, created_at"

func scanItem(scanner interface{ Scan(dest ...any) error }) (*Item, error) {
	var (
		id             string
		queueID        string
		objectID       string
		objectType     string
		statusStr      string
		leaseHolder    sql.NullString
		leaseStartedAt sql.NullString
		completedAt    sql.NullString
		completedBy    sql.NullString
		createdRaw     string
	)

	if err := scanner.Scan(
		&id,
		&queueID,
		&objectID,
		&objectType,
		&statusStr,
		&leaseHolder,
		&leaseStartedAt,
		&completedAt,
		&completedBy,
		&createdRaw,
	); err != nil {
		return nil, err
	}

	item := &Item{
		ID:            id,
		QueueID:       queueID,
		ObjectID:      objectID,
		ObjectType:    ObjectType(objectType),
		Status:        Status(statusStr),
		LeaseHolderID: leaseHolder.String,
		CompletedByID: completedBy.String,
	}

	if created, err := parseTimeString(createdRaw); err == nil {
		item.CreatedAt = created
	}
	if leaseStartedAt.Valid {
		if started, err := parseTimeString(leaseStartedAt.String); err == nil {
			item.LeaseStartedAt = &started
		}
	}
	if completedAt.Valid {
		if completed, err := parseTimeString(completedAt.String); err == nil {
			item.CompletedAt = &completed
		}
	}
	return item, nil
}

func scanQueue(scanner interface{ Scan(dest ...any) error }) (*Queue, error) {
	var (
		id          string
		name        string
		description sql.NullString
		scoreRaw    sql.NullString
		createdRaw  string
		updatedRaw  string
	)

	if err := scanner.Scan(&id, &name, &description, &scoreRaw, &createdRaw, &updatedRaw); err != nil {
		return nil, err
	}

	queue := &Queue{
		ID:             id,
		Name:           name,
		Description:    description.String,
		ScoreConfigIDs: decodeScoreConfigIDs(scoreRaw.String),
	}
	if created, err := parseTimeString(createdRaw); err == nil {
		queue.CreatedAt = created
	}
	if updated, err := parseTimeString(updatedRaw); err == nil {
		queue.UpdatedAt = updated
	}
	return queue, nil
}

const queueColumns = "id, name, description, score_config_ids, created_at, updated_at"

func encodeScoreConfigIDs(ids []string) string {
	if len(ids) == 0 {
		return "[]"
	}
	data, err := json.Marshal(ids)
	if err != nil {
		return "[]"
	}
	return string(data)
}

func decodeScoreConfigIDs(raw string) []string {
	if raw == "" {
		return nil
	}
	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil
	}
	if len(ids) == 0 {
		return nil
	}
	return ids
}

func formatTime(value time.Time) string {
	return value.UTC().Format(timeFormat)
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func parseTimeString(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, errors.New("empty")
	}
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02 15:04:05", value)
}

func makePlaceholders(count int) string {
	if count <= 0 {
		return ""
	}
	placeholders := make([]byte, 0, count*2)
	for i := 0; i < count; i++ {
		if i > 0 {
			placeholders = append(placeholders, ',')
		}
		placeholders = append(placeholders, '?')
	}
	return string(placeholders)
}
