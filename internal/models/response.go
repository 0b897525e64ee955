package models

import (
	"time"

	"github.com/google/uuid"
)

// Response statuses. Accepted and rejected are terminal.
const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
)

// Response kinds
const (
	ResponseTypeFound   = "found"
	ResponseTypeContact = "contact"
)

// UnknownOwner is shown in place of owner fields whose user record is missing.
const UnknownOwner = "Unknown"

// ResponseDB represents one user's claim on a post.
// PostOwnerID and ItemName are copied from the post when the response is created.
type ResponseDB struct {
	ResponseID     uuid.UUID `json:"id" db:"response_id"`
	PostID         uuid.UUID `json:"postId" db:"post_id"`
	PostOwnerID    uuid.UUID `json:"postOwnerId" db:"post_owner_id"`
	ResponderID    uuid.UUID `json:"responderId" db:"responder_id"`
	ResponderName  string    `json:"responderName" db:"responder_name"`
	ResponderEmail string    `json:"responderEmail" db:"responder_email"`
	SecurityAnswer string    `json:"securityAnswer" db:"security_answer"`
	ResponseType   string    `json:"responseType" db:"response_type"`
	Status         string    `json:"status" db:"status"`
	ItemName       string    `json:"itemName" db:"item_name"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`
}

// IsTerminal reports whether no further status transition is allowed.
func (r *ResponseDB) IsTerminal() bool {
	return r.Status != StatusPending
}

// OwnerResponse is a response in the post owner's queue, joined at read time
// with the post and the responder's current user record.
type OwnerResponse struct {
	ResponseDB
	Post      *PostSummary `json:"post"`
	Responder *UserSummary `json:"responder"`
}

// ResponderResponse is a response in the responder's own queue, joined at read
// time with the post and its owner. OwnerEmail and OwnerPhone are only exposed
// once accepted.
type ResponderResponse struct {
	ResponseDB
	Post       *PostSummary `json:"post"`
	OwnerName  string       `json:"ownerName"`
	OwnerEmail string       `json:"ownerEmail,omitempty"`
	OwnerPhone string       `json:"ownerPhone,omitempty"`
}
