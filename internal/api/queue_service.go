package api

import (
	"context"

	"github.com/get-theo-ai/langfuse/internal/review"
)

// QueueReader abstracts the queue persistence reads the API layer needs.
type QueueReader interface {
	ListQueues(ctx context.Context) ([]*review.Queue, error)
	GetQueue(ctx context.Context, id string) (*review.Queue, error)
	ItemsByQueue(ctx context.Context, queueID string, statuses ...review.Status) ([]*review.Item, error)
	Stats(ctx context.Context, queueID string) (review.QueueStats, error)
}

// QueueService exposes read-only queue operations returning API DTOs.
type QueueService struct {
	store QueueReader
}

// NewQueueService constructs a QueueService around the provided reader.
func NewQueueService(store QueueReader) *QueueService {
	if store == nil {
		return nil
	}
	return &QueueService{store: store}
}

// List returns all queues.
func (s *QueueService) List(ctx context.Context) ([]Queue, error) {
	if s == nil || s.store == nil {
		return nil, nil
	}
	queues, err := s.store.ListQueues(ctx)
	if err != nil {
		return nil, err
	}
	return FromQueues(queues), nil
}

// Describe fetches a single queue.
func (s *QueueService) Describe(ctx context.Context, id string) (*Queue, error) {
	if s == nil || s.store == nil {
		return nil, nil
	}
	queue, err := s.store.GetQueue(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := FromQueue(queue)
	return &dto, nil
}

// Items returns a queue's items filtered by status.
func (s *QueueService) Items(ctx context.Context, queueID string, statuses ...review.Status) ([]QueueItem, error) {
	if s == nil || s.store == nil {
		return nil, nil
	}
	items, err := s.store.ItemsByQueue(ctx, queueID, statuses...)
	if err != nil {
		return nil, err
	}
	return FromItems(items), nil
}

// Stats returns a queue's item counts.
func (s *QueueService) Stats(ctx context.Context, queueID string) (QueueStats, error) {
	if s == nil || s.store == nil {
		return QueueStats{}, nil
	}
	stats, err := s.store.Stats(ctx, queueID)
	if err != nil {
		return QueueStats{}, err
	}
	return FromStats(stats), nil
}
