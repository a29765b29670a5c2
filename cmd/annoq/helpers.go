package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/get-theo-ai/langfuse/internal/review"
)

// parseRefArg converts a "type:id" argument into an object reference.
func parseRefArg(arg string) (review.ObjectRef, error) {
	kindStr, id, ok := strings.Cut(arg, ":")
	if !ok {
		return review.ObjectRef{}, fmt.Errorf("reference %q must have the form type:id", arg)
	}
	kind, ok := review.ParseObjectType(kindStr)
	if !ok {
		return review.ObjectRef{}, fmt.Errorf("unknown object type %q (known: %s)", kindStr, knownObjectTypes())
	}
	ref := review.ObjectRef{ObjectID: strings.TrimSpace(id), ObjectType: kind}
	if !ref.Valid() {
		return review.ObjectRef{}, fmt.Errorf("reference %q has an empty object id", arg)
	}
	return ref, nil
}

// parseRefArgs converts a list of "type:id" arguments.
func parseRefArgs(args []string) ([]review.ObjectRef, error) {
	refs := make([]review.ObjectRef, 0, len(args))
	for _, arg := range args {
		ref, err := parseRefArg(arg)
		if err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

func knownObjectTypes() string {
	kinds := review.AllObjectTypes()
	parts := make([]string, 0, len(kinds))
	for _, kind := range kinds {
		parts = append(parts, string(kind))
	}
	return strings.Join(parts, ", ")
}

// resolveQueue accepts either a queue id or a queue name.
func resolveQueue(ctx context.Context, store *review.Store, arg string) (*review.Queue, error) {
	queue, err := store.GetQueue(ctx, arg)
	if err == nil {
		return queue, nil
	}
	return store.GetQueueByName(ctx, arg)
}
