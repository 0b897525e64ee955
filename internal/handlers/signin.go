package handlers

//go:generate mockgen -source=signin.go -destination=signin_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-lost-found/internal/models"
	"github.com/sbilibin2017/gw-lost-found/internal/services"
)

// SignInner defines the interface that the service must implement.
type SignInner interface {
	Login(ctx context.Context, in services.SignInInput) (*models.UserDB, string, error)
}

// SignInRequest represents the JSON body for user login
// swagger:model SignInRequest
type SignInRequest struct {
	// required: true
	// default: alice@example.com
	Email string `json:"email"`

	// required: true
	// default: secret123
	Password string `json:"password"`
}

// SignInResponse represents a successful login response
// swagger:model SignInResponse
type SignInResponse struct {
	// default: Sign in successful
	Message string `json:"message"`

	User *models.UserDB `json:"user"`

	// Bearer token for the authenticated routes
	Token string `json:"token"`
}

// NewSignInHandler returns an HTTP handler for user login.
// @Summary Sign in
// @Description Checks the email and password and returns the user with a signed JWT.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body handlers.SignInRequest true "User credentials"
// @Success 200 {object} handlers.SignInResponse "Sign in successful"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Invalid email or password"
// @Failure 500 {object} handlers.ErrorResponse "Server error during sign in"
// @Router /auth/signin [post]
func NewSignInHandler(svc SignInner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SignInRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeMessage(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		user, token, err := svc.Login(r.Context(), services.SignInInput{
			Email:    req.Email,
			Password: req.Password,
		})
		if errors.Is(err, services.ErrInvalidCredentials) {
			writeMessage(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		if err != nil {
			writeError(w, r, err, "Server error during sign in")
			return
		}

		writeJSON(w, http.StatusOK, SignInResponse{
			Message: "Sign in successful",
			User:    user,
			Token:   token,
		})
	}
}
