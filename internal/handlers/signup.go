package handlers

//go:generate mockgen -source=signup.go -destination=signup_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-lost-found/internal/models"
	"github.com/sbilibin2017/gw-lost-found/internal/services"
)

// SignUpper defines the interface that the service must implement.
type SignUpper interface {
	Register(ctx context.Context, in services.SignUpInput) (*models.UserDB, error)
}

// SignUpRequest represents the JSON body for user registration
// swagger:model SignUpRequest
type SignUpRequest struct {
	// required: true
	// default: Alice
	FirstName string `json:"firstName"`

	// required: true
	// default: Smith
	LastName string `json:"lastName"`

	// required: true
	// default: +1-555-0101
	PhoneNumber string `json:"phoneNumber"`

	// required: true
	// default: alice@example.com
	Email string `json:"email"`

	// At least 6 characters
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// SignUpResponse represents a successful registration response
// swagger:model SignUpResponse
type SignUpResponse struct {
	// default: User created successfully
	Message string `json:"message"`

	User *models.UserDB `json:"user"`
}

// NewSignUpHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account. Email must be unique; the password is hashed before storing.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body handlers.SignUpRequest true "User registration request"
// @Success 201 {object} handlers.SignUpResponse "User created successfully"
// @Failure 400 {object} handlers.ErrorResponse "Validation error or email already exists"
// @Failure 500 {object} handlers.ErrorResponse "Server error during signup"
// @Router /auth/signup [post]
func NewSignUpHandler(svc SignUpper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SignUpRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeMessage(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		user, err := svc.Register(r.Context(), services.SignUpInput{
			FirstName:   req.FirstName,
			LastName:    req.LastName,
			PhoneNumber: req.PhoneNumber,
			Email:       req.Email,
			Password:    req.Password,
		})
		if err != nil {
			writeError(w, r, err, "Server error during signup")
			return
		}

		writeJSON(w, http.StatusCreated, SignUpResponse{
			Message: "User created successfully",
			User:    user,
		})
	}
}
