package handlers

//go:generate mockgen -source=response_submit.go -destination=response_submit_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-lost-found/internal/models"
	"github.com/sbilibin2017/gw-lost-found/internal/services"
)

// ResponseSubmitter defines the interface that the service must implement.
type ResponseSubmitter interface {
	Submit(ctx context.Context, requesterID uuid.UUID, in services.ResponseInput) (*models.ResponseDB, error)
}

// SubmitResponseRequest represents the JSON body of a response to a post.
// Owner, responder and item details are taken from the stored post and user.
// swagger:model SubmitResponseRequest
type SubmitResponseRequest struct {
	// required: true
	PostID string `json:"postId"`

	// Must match the token's user when given
	ResponderID string `json:"responderId"`

	// required: true
	// default: red zipper
	SecurityAnswer string `json:"securityAnswer"`

	// found or contact
	// default: found
	ResponseType string `json:"responseType"`
}

// ResponseEnvelope wraps a single response
// swagger:model ResponseEnvelope
type ResponseEnvelope struct {
	// default: true
	Success bool `json:"success"`

	// default: Response submitted successfully
	Message string `json:"message"`

	Response *models.ResponseDB `json:"response"`
}

// NewResponseSubmitHandler returns an HTTP handler for responding to a post.
// @Summary Respond to a post
// @Description Records a pending response by the caller. Each user may respond to a post once.
// @Tags responses
// @Accept json
// @Produce json
// @Param request body handlers.SubmitResponseRequest true "Response"
// @Success 201 {object} handlers.ResponseEnvelope "Response submitted successfully"
// @Failure 400 {object} handlers.ErrorResponse "Validation error or already responded"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Forbidden"
// @Failure 404 {object} handlers.ErrorResponse "Post not found"
// @Failure 500 {object} handlers.ErrorResponse "Server error during response creation"
// @Router /responses [post]
// @Security BearerAuth
func NewResponseSubmitHandler(svc ResponseSubmitter, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requester(w, r, tokener)
		if !ok {
			return
		}

		var req SubmitResponseRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeMessage(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		resp, err := svc.Submit(r.Context(), userID, services.ResponseInput{
			PostID:         req.PostID,
			ResponderID:    req.ResponderID,
			SecurityAnswer: req.SecurityAnswer,
			ResponseType:   req.ResponseType,
		})
		if err != nil {
			writeError(w, r, err, "Server error during response creation")
			return
		}

		writeJSON(w, http.StatusCreated, ResponseEnvelope{
			Success:  true,
			Message:  "Response submitted successfully",
			Response: resp,
		})
	}
}
