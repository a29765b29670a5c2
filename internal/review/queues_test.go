package review_test

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/get-theo-ai/langfuse/internal/review"
	"github.com/get-theo-ai/langfuse/internal/testsupport"
)

func TestCreateAndGetQueue(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()

	created, err := store.CreateQueue(ctx, "toxicity", "flag harmful output", []string{"cfg-1", "cfg-2"})
	if err != nil {
		t.Fatalf("CreateQueue: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected a generated queue id")
	}
	if created.Name != "toxicity" || created.Description != "flag harmful output" {
		t.Fatalf("queue = %+v", created)
	}
	if !reflect.DeepEqual(created.ScoreConfigIDs, []string{"cfg-1", "cfg-2"}) {
		t.Fatalf("score configs = %v", created.ScoreConfigIDs)
	}

	byID, err := store.GetQueue(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetQueue: %v", err)
	}
	if byID.Name != "toxicity" {
		t.Fatalf("GetQueue name = %q", byID.Name)
	}

	byName, err := store.GetQueueByName(ctx, "toxicity")
	if err != nil {
		t.Fatalf("GetQueueByName: %v", err)
	}
	if byName.ID != created.ID {
		t.Fatalf("GetQueueByName id = %q, want %q", byName.ID, created.ID)
	}
}

func TestCreateQueueDuplicateName(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()

	if _, err := store.CreateQueue(ctx, "unique", "", nil); err != nil {
		t.Fatalf("CreateQueue: %v", err)
	}
	if _, err := store.CreateQueue(ctx, "unique", "", nil); !errors.Is(err, review.ErrInvalidInput) {
		t.Fatalf("duplicate name: got %v, want ErrInvalidInput", err)
	}
}

func TestCreateQueueRequiresName(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	if _, err := store.CreateQueue(context.Background(), "   ", "", nil); !errors.Is(err, review.ErrInvalidInput) {
		t.Fatalf("blank name: got %v, want ErrInvalidInput", err)
	}
}

func TestListQueuesOrderedByName(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()

	for _, name := range []string{"zeta", "alpha", "mid"} {
		if _, err := store.CreateQueue(ctx, name, "", nil); err != nil {
			t.Fatalf("CreateQueue %s: %v", name, err)
		}
	}

	queues, err := store.ListQueues(ctx)
	if err != nil {
		t.Fatalf("ListQueues: %v", err)
	}
	var names []string
	for _, queue := range queues {
		names = append(names, queue.Name)
	}
	if !reflect.DeepEqual(names, []string{"alpha", "mid", "zeta"}) {
		t.Fatalf("names = %v", names)
	}
}

func TestRenameQueue(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()

	queue := testsupport.MustCreateQueue(t, store, "before")
	if err := store.RenameQueue(ctx, queue.ID, "after"); err != nil {
		t.Fatalf("RenameQueue: %v", err)
	}
	renamed, err := store.GetQueue(ctx, queue.ID)
	if err != nil {
		t.Fatalf("GetQueue: %v", err)
	}
	if renamed.Name != "after" {
		t.Fatalf("name = %q, want after", renamed.Name)
	}

	if err := store.RenameQueue(ctx, "no-such-queue", "x"); !errors.Is(err, review.ErrNotFound) {
		t.Fatalf("unknown queue: got %v, want ErrNotFound", err)
	}

	other := testsupport.MustCreateQueue(t, store, "taken")
	if err := store.RenameQueue(ctx, queue.ID, other.Name); !errors.Is(err, review.ErrInvalidInput) {
		t.Fatalf("rename onto taken name: got %v, want ErrInvalidInput", err)
	}
}

func TestUpdateQueueDescriptionAndScoreConfigs(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()
	queue := testsupport.MustCreateQueue(t, store, "settings")

	if err := store.UpdateQueueDescription(ctx, queue.ID, "new purpose"); err != nil {
		t.Fatalf("UpdateQueueDescription: %v", err)
	}
	if err := store.SetScoreConfigs(ctx, queue.ID, []string{"cfg-9"}); err != nil {
		t.Fatalf("SetScoreConfigs: %v", err)
	}

	updated, err := store.GetQueue(ctx, queue.ID)
	if err != nil {
		t.Fatalf("GetQueue: %v", err)
	}
	if updated.Description != "new purpose" {
		t.Fatalf("description = %q", updated.Description)
	}
	if !reflect.DeepEqual(updated.ScoreConfigIDs, []string{"cfg-9"}) {
		t.Fatalf("score configs = %v", updated.ScoreConfigIDs)
	}

	if err := store.UpdateQueueDescription(ctx, "no-such-queue", "x"); !errors.Is(err, review.ErrNotFound) {
		t.Fatalf("unknown queue: got %v, want ErrNotFound", err)
	}
}

func TestDeleteQueueCascades(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()

	queue := testsupport.MustCreateQueue(t, store, "doomed")
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	testsupport.MustEnroll(t, store, queue.ID, []review.ObjectRef{testsupport.TraceRef("t-1")}, base)
	item, err := store.ClaimNext(ctx, queue.ID, "alice", base)
	if err != nil {
		t.Fatalf("ClaimNext: %v", err)
	}

	removed, err := store.DeleteQueue(ctx, queue.ID)
	if err != nil {
		t.Fatalf("DeleteQueue: %v", err)
	}
	if !removed {
		t.Fatal("expected the queue to be deleted")
	}
	if _, err := store.GetQueue(ctx, queue.ID); !errors.Is(err, review.ErrNotFound) {
		t.Fatalf("deleted queue lookup: got %v, want ErrNotFound", err)
	}
	if _, err := store.ItemByID(ctx, item.ID); !errors.Is(err, review.ErrNotFound) {
		t.Fatalf("cascaded item lookup: got %v, want ErrNotFound", err)
	}

	again, err := store.DeleteQueue(ctx, queue.ID)
	if err != nil {
		t.Fatalf("second DeleteQueue: %v", err)
	}
	if again {
		t.Fatal("second delete must report nothing removed")
	}
}

func TestItemsByQueueStatusFilter(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()
	queue := testsupport.MustCreateQueue(t, store, "filtered")

	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	testsupport.MustEnroll(t, store, queue.ID, []review.ObjectRef{testsupport.TraceRef("a")}, base)
	testsupport.MustEnroll(t, store, queue.ID, []review.ObjectRef{testsupport.TraceRef("b")}, base.Add(time.Second))
	if _, err := store.Complete(ctx, queue.ID, testsupport.TraceRef("a"), "alice", base.Add(time.Minute)); err != nil {
		t.Fatalf("Complete: %v", err)
	}

	pending, err := store.ItemsByQueue(ctx, queue.ID, review.StatusPending)
	if err != nil {
		t.Fatalf("ItemsByQueue pending: %v", err)
	}
	if len(pending) != 1 || pending[0].ObjectID != "b" {
		t.Fatalf("pending = %+v", pending)
	}

	all, err := store.ItemsByQueue(ctx, queue.ID)
	if err != nil {
		t.Fatalf("ItemsByQueue all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("all = %d items, want 2", len(all))
	}
	if all[0].ObjectID != "a" || all[1].ObjectID != "b" {
		t.Fatalf("items out of creation order: %q, %q", all[0].ObjectID, all[1].ObjectID)
	}
}

func TestStats(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()
	queue := testsupport.MustCreateQueue(t, store, "counted")

	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	refs := []review.ObjectRef{
		testsupport.TraceRef("a"),
		testsupport.TraceRef("b"),
		testsupport.TraceRef("c"),
	}
	testsupport.MustEnroll(t, store, queue.ID, refs, base)
	if _, err := store.Complete(ctx, queue.ID, refs[0], "alice", base.Add(time.Minute)); err != nil {
		t.Fatalf("Complete: %v", err)
	}

	stats, err := store.Stats(ctx, queue.ID)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	want := review.QueueStats{Pending: 2, Completed: 1, Total: 3}
	if stats != want {
		t.Fatalf("stats = %+v, want %+v", stats, want)
	}

	if _, err := store.Stats(ctx, "no-such-queue"); !errors.Is(err, review.ErrNotFound) {
		t.Fatalf("unknown queue: got %v, want ErrNotFound", err)
	}
}

func TestHasItem(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()
	queue := testsupport.MustCreateQueue(t, store, "membership")

	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	ref := testsupport.TraceRef("present")
	testsupport.MustEnroll(t, store, queue.ID, []review.ObjectRef{ref}, base)

	has, err := store.HasItem(ctx, queue.ID, ref)
	if err != nil {
		t.Fatalf("HasItem: %v", err)
	}
	if !has {
		t.Fatal("expected membership for an enrolled reference")
	}

	has, err = store.HasItem(ctx, queue.ID, testsupport.TraceRef("absent"))
	if err != nil {
		t.Fatalf("HasItem: %v", err)
	}
	if has {
		t.Fatal("expected no membership for an unknown reference")
	}
}
