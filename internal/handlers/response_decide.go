package handlers

//go:generate mockgen -source=response_decide.go -destination=response_decide_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-lost-found/internal/models"
)

// ResponseDecider defines the interface that the service must implement.
type ResponseDecider interface {
	Accept(ctx context.Context, responseID, requesterID uuid.UUID) (*models.ResponseDB, error)
	Reject(ctx context.Context, responseID, requesterID uuid.UUID) (*models.ResponseDB, error)
}

// NewResponseAcceptHandler returns an HTTP handler for accepting a response.
// @Summary Accept a response
// @Description Accepts a pending response to one of the caller's posts. The responder can then see the owner's email.
// @Tags responses
// @Produce json
// @Param responseId path string true "Response ID"
// @Success 200 {object} handlers.ResponseEnvelope "Response accepted successfully"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Not the post owner"
// @Failure 404 {object} handlers.ErrorResponse "Response not found"
// @Failure 409 {object} handlers.ErrorResponse "Response already decided"
// @Failure 500 {object} handlers.ErrorResponse "Server error while accepting response"
// @Router /responses/{responseId}/accept [patch]
// @Security BearerAuth
func NewResponseAcceptHandler(svc ResponseDecider, tokener Tokener) http.HandlerFunc {
	return newDecisionHandler(svc.Accept, tokener, "Response accepted successfully", "Server error while accepting response")
}

// NewResponseRejectHandler returns an HTTP handler for rejecting a response.
// @Summary Reject a response
// @Description Rejects a pending response to one of the caller's posts.
// @Tags responses
// @Produce json
// @Param responseId path string true "Response ID"
// @Success 200 {object} handlers.ResponseEnvelope "Response rejected successfully"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Not the post owner"
// @Failure 404 {object} handlers.ErrorResponse "Response not found"
// @Failure 409 {object} handlers.ErrorResponse "Response already decided"
// @Failure 500 {object} handlers.ErrorResponse "Server error while rejecting response"
// @Router /responses/{responseId}/reject [patch]
// @Security BearerAuth
func NewResponseRejectHandler(svc ResponseDecider, tokener Tokener) http.HandlerFunc {
	return newDecisionHandler(svc.Reject, tokener, "Response rejected successfully", "Server error while rejecting response")
}

type decideFunc func(ctx context.Context, responseID, requesterID uuid.UUID) (*models.ResponseDB, error)

func newDecisionHandler(decide decideFunc, tokener Tokener, success, fallback string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requester(w, r, tokener)
		if !ok {
			return
		}

		responseID, ok := pathID(w, r, "responseId", "Response not found")
		if !ok {
			return
		}

		resp, err := decide(r.Context(), responseID, userID)
		if err != nil {
			writeError(w, r, err, fallback)
			return
		}

		writeJSON(w, http.StatusOK, ResponseEnvelope{
			Success:  true,
			Message:  success,
			Response: resp,
		})
	}
}
