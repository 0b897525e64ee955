package models

// Event types published on the board's event topic.
const (
	EventPostCreated       = "post.created"
	EventPostDeleted       = "post.deleted"
	EventResponseSubmitted = "response.submitted"
	EventResponseAccepted  = "response.accepted"
	EventResponseRejected  = "response.rejected"
)

// Event is a domain event describing a completed change on the board.
type Event struct {
	EventID   string `json:"event_id"`         // EventID is a unique identifier for the event.
	Type      string `json:"type"`             // Type is one of the Event* constants.
	Timestamp int64  `json:"timestamp"`        // Timestamp is the Unix time (seconds) of the change.
	ActorID   string `json:"actor_id"`         // ActorID is the user who made the change.
	EntityID  string `json:"entity_id"`        // EntityID is the post or response id.
	PostID    string `json:"post_id"`          // PostID is the post the change relates to.
	Status    string `json:"status,omitempty"` // Status is the response status after the change.
}
