package review

import (
	"strings"
	"time"
)

// Status represents the lifecycle of a queue item. A claimed item remains
// pending; the claim lives in the lease fields, not in the status.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

var allStatuses = []Status{
	StatusPending,
	StatusCompleted,
}

var statusSet = func() map[Status]struct{} {
	set := make(map[Status]struct{}, len(allStatuses))
	for _, status := range allStatuses {
		set[status] = struct{}{}
	}
	return set
}()

// ObjectType identifies the kind of reviewed entity an item points at.
type ObjectType string

const (
	ObjectObservation ObjectType = "observation"
	ObjectTrace       ObjectType = "trace"
	ObjectSession     ObjectType = "session"
	ObjectDatasetItem ObjectType = "dataset_item"
)

var allObjectTypes = []ObjectType{
	ObjectObservation,
	ObjectTrace,
	ObjectSession,
	ObjectDatasetItem,
}

var objectTypeSet = func() map[ObjectType]struct{} {
	set := make(map[ObjectType]struct{}, len(allObjectTypes))
	for _, kind := range allObjectTypes {
		set[kind] = struct{}{}
	}
	return set
}()

// ObjectRef identifies the reviewed entity an item is about.
type ObjectRef struct {
	ObjectID   string
	ObjectType ObjectType
}

// Valid reports whether the reference names a non-empty object of a known kind.
func (r ObjectRef) Valid() bool {
	if strings.TrimSpace(r.ObjectID) == "" {
		return false
	}
	_, ok := objectTypeSet[r.ObjectType]
	return ok
}

// Item represents a unit of annotation work persisted in SQLite.
type Item struct {
	ID             string
	QueueID        string
	ObjectID       string
	ObjectType     ObjectType
	Status         Status
	LeaseHolderID  string
	LeaseStartedAt *time.Time
	CompletedAt    *time.Time
	CompletedByID  string
	CreatedAt      time.Time

	// ParentTraceID is filled when the claimed object is nested under a
	// trace (currently observations only). It is enrichment, not stored
	// item state.
	ParentTraceID string
}

// Ref returns the item's object reference.
func (i Item) Ref() ObjectRef {
	return ObjectRef{ObjectID: i.ObjectID, ObjectType: i.ObjectType}
}

// Leased reports whether the item currently carries a claim, expired or not.
func (i Item) Leased() bool {
	return i.LeaseHolderID != "" && i.LeaseStartedAt != nil
}

// Queue represents an annotation queue.
type Queue struct {
	ID             string
	Name           string
	Description    string
	ScoreConfigIDs []string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// QueueStats summarizes item counts for one queue.
type QueueStats struct {
	Pending   int
	Completed int
	Total     int
}

// EnrollmentResult reports the outcome of a bulk enrollment call.
// Requested counts the references the caller passed in, Attempted the
// references left after batch truncation, and Created the rows actually
// inserted (duplicates are skipped, not counted).
type EnrollmentResult struct {
	Requested int
	Attempted int
	Created   int
}

// AllStatuses returns the ordered list of known statuses.
func AllStatuses() []Status {
	cp := make([]Status, len(allStatuses))
	copy(cp, allStatuses)
	return cp
}

// AllObjectTypes returns the ordered list of known object types.
func AllObjectTypes() []ObjectType {
	cp := make([]ObjectType, len(allObjectTypes))
	copy(cp, allObjectTypes)
	return cp
}

// ParseStatus converts a string into a known Status.
func ParseStatus(value string) (Status, bool) {
	normalized := Status(strings.ToLower(strings.TrimSpace(value)))
	if normalized == "" {
		return "", false
	}
	_, ok := statusSet[normalized]
	return normalized, ok
}

// ParseObjectType converts a string into a known ObjectType.
func ParseObjectType(value string) (ObjectType, bool) {
	normalized := ObjectType(strings.ToLower(strings.TrimSpace(value)))
	if normalized == "" {
		return "", false
	}
	_, ok := objectTypeSet[normalized]
	return normalized, ok
}
