package api

import (
	"time"

	"github.com/get-theo-ai/langfuse/internal/review"
)

// FromItem converts a store item into its transport representation.
func FromItem(item *review.Item) QueueItem {
	if item == nil {
		return QueueItem{}
	}
	dto := QueueItem{
		ID:            item.ID,
		QueueID:       item.QueueID,
		ObjectID:      item.ObjectID,
		ObjectType:    string(item.ObjectType),
		Status:        string(item.Status),
		LeaseHolderID: item.LeaseHolderID,
		CompletedByID: item.CompletedByID,
		ParentTraceID: item.ParentTraceID,
		CreatedAt:     formatTimestamp(item.CreatedAt),
	}
	if item.LeaseStartedAt != nil {
		dto.LeaseStartedAt = formatTimestamp(*item.LeaseStartedAt)
	}
	if item.CompletedAt != nil {
		dto.CompletedAt = formatTimestamp(*item.CompletedAt)
	}
	return dto
}

// FromItems converts a slice of store items.
func FromItems(items []*review.Item) []QueueItem {
	out := make([]QueueItem, 0, len(items))
	for _, item := range items {
		out = append(out, FromItem(item))
	}
	return out
}

// FromQueue converts a store queue into its transport representation.
func FromQueue(queue *review.Queue) Queue {
	if queue == nil {
		return Queue{}
	}
	return Queue{
		ID:             queue.ID,
		Name:           queue.Name,
		Description:    queue.Description,
		ScoreConfigIDs: queue.ScoreConfigIDs,
		CreatedAt:      formatTimestamp(queue.CreatedAt),
		UpdatedAt:      formatTimestamp(queue.UpdatedAt),
	}
}

// FromQueues converts a slice of store queues.
func FromQueues(queues []*review.Queue) []Queue {
	out := make([]Queue, 0, len(queues))
	for _, queue := range queues {
		out = append(out, FromQueue(queue))
	}
	return out
}

// FromStats converts store stats into their transport representation.
func FromStats(stats review.QueueStats) QueueStats {
	return QueueStats{
		Pending:   stats.Pending,
		Completed: stats.Completed,
		Total:     stats.Total,
	}
}

// FromEnrollment converts an enrollment result into its receipt form.
func FromEnrollment(result review.EnrollmentResult) EnrollmentReceipt {
	return EnrollmentReceipt{
		Requested: result.Requested,
		Attempted: result.Attempted,
		Created:   result.Created,
	}
}

// ParseRefs converts transport object references into store references,
// reporting the first malformed entry.
func ParseRefs(inputs []ObjectRefInput) ([]review.ObjectRef, bool) {
	refs := make([]review.ObjectRef, 0, len(inputs))
	for _, input := range inputs {
		kind, ok := review.ParseObjectType(input.ObjectType)
		if !ok {
			return nil, false
		}
		ref := review.ObjectRef{ObjectID: input.ObjectID, ObjectType: kind}
		if !ref.Valid() {
			return nil, false
		}
		refs = append(refs, ref)
	}
	return refs, true
}

func formatTimestamp(value time.Time) string {
	if value.IsZero() {
		return ""
	}
	return value.UTC().Format(dateTimeFormat)
}
