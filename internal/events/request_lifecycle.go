package events

import "time"

const RequestLifecycleTopic = "leave.request.lifecycle.v1"

const (
	RequestCreated       = "request.created"
	RequestStatusChanged = "request.status_changed"
	RequestDeleted       = "request.deleted"
)

// RequestLifecycleEvent is published for every committed change to a
// request row. TraceID is the HTTP request id that caused the change.
type RequestLifecycleEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  int64     `json:"request_id"`
	UserID     string    `json:"user_id,omitempty"`
	ReqType    string    `json:"req_type,omitempty"`
	Status     string    `json:"status,omitempty"`
	ActorID    string    `json:"actor_id,omitempty"`
	TraceID    string    `json:"trace_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
