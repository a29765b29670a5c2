package review_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/get-theo-ai/langfuse/internal/review"
	"github.com/get-theo-ai/langfuse/internal/testsupport"
)

func TestCompleteStampsItem(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	queue := testsupport.MustCreateQueue(t, store, "finish")
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	ref := testsupport.TraceRef("t-1")
	testsupport.MustEnroll(t, store, queue.ID, []review.ObjectRef{ref}, base)

	done := base.Add(time.Minute)
	affected, err := store.Complete(ctx, queue.ID, ref, "alice", done)
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if affected != 1 {
		t.Fatalf("affected = %d, want 1", affected)
	}

	items, err := store.ItemsByQueue(ctx, queue.ID)
	if err != nil {
		t.Fatalf("ItemsByQueue: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("item count = %d, want 1", len(items))
	}
	item := items[0]
	if item.Status != review.StatusCompleted {
		t.Fatalf("status = %q, want completed", item.Status)
	}
	if item.CompletedByID != "alice" {
		t.Fatalf("completed by = %q, want alice", item.CompletedByID)
	}
	if item.CompletedAt == nil || !item.CompletedAt.Equal(done) {
		t.Fatalf("completed at = %v, want %v", item.CompletedAt, done)
	}
}

func TestCompleteIsIdempotent(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	queue := testsupport.MustCreateQueue(t, store, "repeat")
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	ref := testsupport.TraceRef("t-1")
	testsupport.MustEnroll(t, store, queue.ID, []review.ObjectRef{ref}, base)

	firstDone := base.Add(time.Minute)
	if _, err := store.Complete(ctx, queue.ID, ref, "alice", firstDone); err != nil {
		t.Fatalf("first Complete: %v", err)
	}

	// The repeat matches nothing and leaves the original stamps untouched.
	affected, err := store.Complete(ctx, queue.ID, ref, "bob", base.Add(time.Hour))
	if err != nil {
		t.Fatalf("second Complete: %v", err)
	}
	if affected != 0 {
		t.Fatalf("second call affected %d rows, want 0", affected)
	}

	items, err := store.ItemsByQueue(ctx, queue.ID)
	if err != nil {
		t.Fatalf("ItemsByQueue: %v", err)
	}
	item := items[0]
	if item.CompletedByID != "alice" {
		t.Fatalf("completed by = %q, first writer must win", item.CompletedByID)
	}
	if item.CompletedAt == nil || !item.CompletedAt.Equal(firstDone) {
		t.Fatalf("completed at = %v, want %v", item.CompletedAt, firstDone)
	}
}

func TestCompleteWithoutLease(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	queue := testsupport.MustCreateQueue(t, store, "no-lease")
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	ref := testsupport.TraceRef("t-1")
	testsupport.MustEnroll(t, store, queue.ID, []review.ObjectRef{ref}, base)

	// Completion is not gated on holding the lease; no claim ever happened.
	affected, err := store.Complete(ctx, queue.ID, ref, "alice", base.Add(time.Minute))
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if affected != 1 {
		t.Fatalf("affected = %d, want 1", affected)
	}
}

func TestCompleteAfterLeaseLapse(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	queue := testsupport.MustCreateQueue(t, store, "lapsed")
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	ref := testsupport.TraceRef("t-1")
	testsupport.MustEnroll(t, store, queue.ID, []review.ObjectRef{ref}, base)

	if _, err := store.ClaimNext(ctx, queue.ID, "alice", base); err != nil {
		t.Fatalf("first claim: %v", err)
	}
	// Alice's lease lapses and bob re-claims; alice finishing her stale work
	// still counts, and bob's later completion becomes the no-op.
	if _, err := store.ClaimNext(ctx, queue.ID, "bob", base.Add(6*time.Minute)); err != nil {
		t.Fatalf("re-claim: %v", err)
	}

	affected, err := store.Complete(ctx, queue.ID, ref, "alice", base.Add(7*time.Minute))
	if err != nil {
		t.Fatalf("stale completion: %v", err)
	}
	if affected != 1 {
		t.Fatalf("stale completion affected %d rows, want 1", affected)
	}

	affected, err = store.Complete(ctx, queue.ID, ref, "bob", base.Add(8*time.Minute))
	if err != nil {
		t.Fatalf("late completion: %v", err)
	}
	if affected != 0 {
		t.Fatalf("late completion affected %d rows, want 0", affected)
	}
}

func TestCompleteLeavesLeaseFields(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	queue := testsupport.MustCreateQueue(t, store, "lease-kept")
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	ref := testsupport.TraceRef("t-1")
	testsupport.MustEnroll(t, store, queue.ID, []review.ObjectRef{ref}, base)

	claimed, err := store.ClaimNext(ctx, queue.ID, "alice", base)
	if err != nil {
		t.Fatalf("ClaimNext: %v", err)
	}
	if _, err := store.Complete(ctx, queue.ID, ref, "alice", base.Add(time.Minute)); err != nil {
		t.Fatalf("Complete: %v", err)
	}

	item, err := store.ItemByID(ctx, claimed.ID)
	if err != nil {
		t.Fatalf("ItemByID: %v", err)
	}
	if item.LeaseHolderID != "alice" {
		t.Fatalf("lease holder = %q, completion must not clear the lease", item.LeaseHolderID)
	}
	if item.LeaseStartedAt == nil || !item.LeaseStartedAt.Equal(base) {
		t.Fatalf("lease started = %v, want %v", item.LeaseStartedAt, base)
	}
}

func TestCompleteUnknownReference(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	queue := testsupport.MustCreateQueue(t, store, "missing")
	ctx := context.Background()

	affected, err := store.Complete(ctx, queue.ID, testsupport.TraceRef("nowhere"), "alice", time.Now().UTC())
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if affected != 0 {
		t.Fatalf("affected = %d, want 0 for an unenrolled reference", affected)
	}
}

func TestCompleteValidation(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	queue := testsupport.MustCreateQueue(t, store, "checks")
	ctx := context.Background()
	now := time.Now().UTC()

	if _, err := store.Complete(ctx, "", testsupport.TraceRef("t"), "alice", now); !errors.Is(err, review.ErrInvalidInput) {
		t.Fatalf("empty queue id: got %v, want ErrInvalidInput", err)
	}
	if _, err := store.Complete(ctx, queue.ID, testsupport.TraceRef("t"), "", now); !errors.Is(err, review.ErrInvalidInput) {
		t.Fatalf("empty completer: got %v, want ErrInvalidInput", err)
	}
	if _, err := store.Complete(ctx, queue.ID, review.ObjectRef{ObjectID: "t", ObjectType: "widget"}, "alice", now); !errors.Is(err, review.ErrInvalidInput) {
		t.Fatalf("bad object type: got %v, want ErrInvalidInput", err)
	}
	if _, err := store.Complete(ctx, "no-such-queue", testsupport.TraceRef("t"), "alice", now); !errors.Is(err, review.ErrNotFound) {
		t.Fatalf("unknown queue: got %v, want ErrNotFound", err)
	}
}
