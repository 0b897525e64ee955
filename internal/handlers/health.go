package handlers

import "net/http"

// HealthResponse reports that the service is up
// swagger:model HealthResponse
type HealthResponse struct {
	// default: Backend is working!
	Message string `json:"message"`
}

// NewHealthHandler returns a liveness handler.
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} handlers.HealthResponse
// @Router /test [get]
func NewHealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, HealthResponse{Message: "Backend is working!"})
	}
}
