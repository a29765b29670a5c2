package api

import (
	"context"
	"time"

	"github.com/get-theo-ai/langfuse/internal/review"
)

// ReviewStore abstracts the three core transitions the API layer drives.
type ReviewStore interface {
	ClaimNext(ctx context.Context, queueID, reviewerID string, now time.Time) (*review.Item, error)
	Enroll(ctx context.Context, queueID string, refs []review.ObjectRef, now time.Time) (review.EnrollmentResult, error)
	Complete(ctx context.Context, queueID string, ref review.ObjectRef, completedBy string, now time.Time) (int64, error)
}

// ReviewService exposes the claim, enroll, and complete operations with
// transport DTOs.
type ReviewService struct {
	store ReviewStore
	now   func() time.Time
}

// NewReviewService constructs a ReviewService around the provided store.
func NewReviewService(store ReviewStore) *ReviewService {
	if store == nil {
		return nil
	}
	return &ReviewService{store: store, now: func() time.Time { return time.Now().UTC() }}
}

// Claim hands the next eligible item in the queue to the reviewer. A nil
// item means the queue has nothing to hand out.
func (s *ReviewService) Claim(ctx context.Context, queueID, reviewerID string) (*QueueItem, error) {
	if s == nil || s.store == nil {
		return nil, nil
	}
	item, err := s.store.ClaimNext(ctx, queueID, reviewerID, s.now())
	if err != nil || item == nil {
		return nil, err
	}
	dto := FromItem(item)
	return &dto, nil
}

// Enroll adds the referenced objects to the queue as pending items.
func (s *ReviewService) Enroll(ctx context.Context, queueID string, inputs []ObjectRefInput) (EnrollmentReceipt, error) {
	if s == nil || s.store == nil {
		return EnrollmentReceipt{}, nil
	}
	refs, ok := ParseRefs(inputs)
	if !ok {
		return EnrollmentReceipt{Requested: len(inputs)},
			review.Wrap(review.ErrInvalidInput, "enroll", "malformed object reference", nil)
	}
	result, err := s.store.Enroll(ctx, queueID, refs, s.now())
	return FromEnrollment(result), err
}

// Complete transitions the matching item to the terminal completed status
// and reports how many rows changed.
func (s *ReviewService) Complete(ctx context.Context, queueID string, input ObjectRefInput, completedBy string) (int64, error) {
	if s == nil || s.store == nil {
		return 0, nil
	}
	refs, ok := ParseRefs([]ObjectRefInput{input})
	if !ok {
		return 0, review.Wrap(review.ErrInvalidInput, "complete", "malformed object reference", nil)
	}
	return s.store.Complete(ctx, queueID, refs[0], completedBy, s.now())
}
