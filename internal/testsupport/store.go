package testsupport

import (
	"context"
	"testing"
	"time"

	"github.com/get-theo-ai/langfuse/internal/config"
	"github.com/get-theo-ai/langfuse/internal/logging"
	"github.com/get-theo-ai/langfuse/internal/review"
)

// MustOpenStore opens a review.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *review.Store {
	t.Helper()

	store, err := review.Open(cfg)
	if err != nil {
		t.Fatalf("review.Open: %v", err)
	}
	store.WithLogger(logging.NewNop())
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

// MustCreateQueue creates a queue for tests using the provided store.
func MustCreateQueue(t testing.TB, store *review.Store, name string) *review.Queue {
	t.Helper()

	queue, err := store.CreateQueue(context.Background(), name, "", nil)
	if err != nil {
		t.Fatalf("store.CreateQueue: %v", err)
	}
	return queue
}

// MustEnroll enrolls references at the given time and fails the test on error.
func MustEnroll(t testing.TB, store *review.Store, queueID string, refs []review.ObjectRef, now time.Time) review.EnrollmentResult {
	t.Helper()

	result, err := store.Enroll(context.Background(), queueID, refs, now)
	if err != nil {
		t.Fatalf("store.Enroll: %v", err)
	}
	return result
}

// TraceRef builds a trace object reference.
func TraceRef(id string) review.ObjectRef {
	return review.ObjectRef{ObjectID: id, ObjectType: review.ObjectTrace}
}

// ObservationRef builds an observation object reference.
func ObservationRef(id string) review.ObjectRef {
	return review.ObjectRef{ObjectID: id, ObjectType: review.ObjectObservation}
}
