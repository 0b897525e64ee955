package handlers

//go:generate mockgen -source=response_list.go -destination=response_list_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-lost-found/internal/models"
)

// OwnerResponseLister defines the interface that the service must implement.
type OwnerResponseLister interface {
	ListForOwner(ctx context.Context, requesterID, userID uuid.UUID) ([]models.OwnerResponse, error)
}

// ResponderResponseLister defines the interface that the service must implement.
type ResponderResponseLister interface {
	ListForResponder(ctx context.Context, requesterID, userID uuid.UUID) ([]models.ResponderResponse, error)
}

// OwnerResponsesResponse lists the responses to the caller's posts
// swagger:model OwnerResponsesResponse
type OwnerResponsesResponse struct {
	// default: Responses retrieved successfully
	Message string `json:"message"`

	Responses []models.OwnerResponse `json:"responses"`
}

// ResponderResponsesResponse lists the responses the caller made
// swagger:model ResponderResponsesResponse
type ResponderResponsesResponse struct {
	// default: Responder responses retrieved successfully
	Message string `json:"message"`

	Responses []models.ResponderResponse `json:"responses"`
}

// NewOwnerResponsesHandler returns an HTTP handler for the owner's response queue.
// @Summary Responses to my posts
// @Description Returns responses to the user's posts newest first, joined with the post and the responder.
// @Tags responses
// @Produce json
// @Param userId path string true "User ID, must be the caller"
// @Success 200 {object} handlers.OwnerResponsesResponse "Responses retrieved successfully"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Not the caller's queue"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Server error while fetching responses"
// @Router /responses/user/{userId} [get]
// @Security BearerAuth
func NewOwnerResponsesHandler(svc OwnerResponseLister, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requesterID, ok := requester(w, r, tokener)
		if !ok {
			return
		}

		userID, ok := pathID(w, r, "userId", "User not found")
		if !ok {
			return
		}

		responses, err := svc.ListForOwner(r.Context(), requesterID, userID)
		if err != nil {
			writeError(w, r, err, "Server error while fetching responses")
			return
		}

		writeJSON(w, http.StatusOK, OwnerResponsesResponse{
			Message:   "Responses retrieved successfully",
			Responses: responses,
		})
	}
}

// NewResponderResponsesHandler returns an HTTP handler for the responder's queue.
// @Summary Responses I made
// @Description Returns the user's responses newest first with the owner's name. The owner's email is included once a response is accepted.
// @Tags responses
// @Produce json
// @Param userId path string true "User ID, must be the caller"
// @Success 200 {object} handlers.ResponderResponsesResponse "Responder responses retrieved successfully"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Not the caller's queue"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Server error while fetching responder responses"
// @Router /responses/responder/{userId} [get]
// @Security BearerAuth
func NewResponderResponsesHandler(svc ResponderResponseLister, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requesterID, ok := requester(w, r, tokener)
		if !ok {
			return
		}

		userID, ok := pathID(w, r, "userId", "User not found")
		if !ok {
			return
		}

		responses, err := svc.ListForResponder(r.Context(), requesterID, userID)
		if err != nil {
			writeError(w, r, err, "Server error while fetching responder responses")
			return
		}

		writeJSON(w, http.StatusOK, ResponderResponsesResponse{
			Message:   "Responder responses retrieved successfully",
			Responses: responses,
		})
	}
}
