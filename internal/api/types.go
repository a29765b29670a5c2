package api

// dateTimeFormat is used for RFC3339 timestamps in API payloads.
const dateTimeFormat = "2006-01-02T15:04:05.000Z07:00"

// QueueItem describes a queue item in a transport-friendly format.
type QueueItem struct {
	ID             string `json:"id"`
	QueueID        string `json:"queueId"`
	ObjectID       string `json:"objectId"`
	ObjectType     string `json:"objectType"`
	Status         string `json:"status"`
	LeaseHolderID  string `json:"leaseHolderId,omitempty"`
	LeaseStartedAt string `json:"leaseStartedAt,omitempty"`
	CompletedAt    string `json:"completedAt,omitempty"`
	CompletedByID  string `json:"completedById,omitempty"`
	CreatedAt      string `json:"createdAt,omitempty"`
	ParentTraceID  string `json:"parentTraceId,omitempty"`
}

// Queue describes an annotation queue in a transport-friendly format.
type Queue struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description,omitempty"`
	ScoreConfigIDs []string `json:"scoreConfigIds,omitempty"`
	CreatedAt      string   `json:"createdAt,omitempty"`
	UpdatedAt      string   `json:"updatedAt,omitempty"`
}

// QueueStats summarizes item counts per status for one queue.
type QueueStats struct {
	Pending   int `json:"pending"`
	Completed int `json:"completed"`
	Total     int `json:"total"`
}

// EnrollmentReceipt reports the outcome of a bulk enrollment call.
type EnrollmentReceipt struct {
	Requested int `json:"requested"`
	Attempted int `json:"attempted"`
	Created   int `json:"created"`
}

// ObjectRefInput is the transport form of an object reference.
type ObjectRefInput struct {
	ObjectID   string `json:"objectId"`
	ObjectType string `json:"objectType"`
}
