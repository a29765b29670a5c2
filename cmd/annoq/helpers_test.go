package main

import (
	"strings"
	"testing"

	"github.com/get-theo-ai/langfuse/internal/review"
)

func TestParseRefArg(t *testing.T) {
	ref, err := parseRefArg("trace:t-123")
	if err != nil {
		t.Fatalf("parseRefArg: %v", err)
	}
	if ref.ObjectType != review.ObjectTrace || ref.ObjectID != "t-123" {
		t.Fatalf("ref = %+v", ref)
	}

	// Ids may themselves contain colons; only the first separates the type.
	ref, err = parseRefArg("observation:obs:v2")
	if err != nil {
		t.Fatalf("parseRefArg: %v", err)
	}
	if ref.ObjectID != "obs:v2" {
		t.Fatalf("object id = %q", ref.ObjectID)
	}
}

func TestParseRefArgErrors(t *testing.T) {
	cases := []struct {
		arg  string
		want string
	}{
		{"no-colon", "form type:id"},
		{"widget:x", "unknown object type"},
		{"trace: ", "empty object id"},
	}
	for _, tc := range cases {
		if _, err := parseRefArg(tc.arg); err == nil || !strings.Contains(err.Error(), tc.want) {
			t.Fatalf("parseRefArg(%q) = %v, want mention of %q", tc.arg, err, tc.want)
		}
	}
}

func TestParseRefArgs(t *testing.T) {
	refs, err := parseRefArgs([]string{"trace:t-1", "session:s-1"})
	if err != nil {
		t.Fatalf("parseRefArgs: %v", err)
	}
	if len(refs) != 2 || refs[1].ObjectType != review.ObjectSession {
		t.Fatalf("refs = %+v", refs)
	}

	if _, err := parseRefArgs([]string{"trace:t-1", "bogus"}); err == nil {
		t.Fatal("expected an error for a malformed argument")
	}
}
