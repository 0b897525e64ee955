package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-lost-found/internal/apperrors"
	"github.com/sbilibin2017/gw-lost-found/internal/models"
	"github.com/sbilibin2017/gw-lost-found/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignUpHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockSignUpper(ctrl)
	user := &models.UserDB{UserID: uuid.New(), FirstName: "Alice", LastName: "Smith", Email: "alice@example.com", PasswordHash: "$2a$10$hash"}
	req := SignUpRequest{
		FirstName:   "Alice",
		LastName:    "Smith",
		PhoneNumber: "+1-555-0101",
		Email:       "alice@example.com",
		Password:    "secret123",
	}
	input := services.SignUpInput{
		FirstName:   "Alice",
		LastName:    "Smith",
		PhoneNumber: "+1-555-0101",
		Email:       "alice@example.com",
		Password:    "secret123",
	}

	tests := []struct {
		name         string
		inputBody    interface{}
		mockSetup    func()
		expectedCode int
		expectedMsg  string
	}{
		{
			name:      "success",
			inputBody: req,
			mockSetup: func() {
				mockSvc.EXPECT().Register(gomock.Any(), input).Return(user, nil)
			},
			expectedCode: http.StatusCreated,
			expectedMsg:  "User created successfully",
		},
		{
			name:         "invalid JSON",
			inputBody:    "{invalid json}",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "Invalid request body",
		},
		{
			name:         "oversized body",
			inputBody:    `{"email":"` + strings.Repeat("a", formOverhead) + `"}`,
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "Invalid request body",
		},
		{
			name:      "duplicate email",
			inputBody: req,
			mockSetup: func() {
				mockSvc.EXPECT().Register(gomock.Any(), input).Return(nil, apperrors.Duplicate("User already exists with this email"))
			},
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "User already exists with this email",
		},
		{
			name:      "validation error",
			inputBody: req,
			mockSetup: func() {
				mockSvc.EXPECT().Register(gomock.Any(), input).Return(nil, apperrors.Validation("password must be at least 6 characters"))
			},
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "password must be at least 6 characters",
		},
		{
			name:      "internal error",
			inputBody: req,
			mockSetup: func() {
				mockSvc.EXPECT().Register(gomock.Any(), input).Return(nil, errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedMsg:  "Server error during signup",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			var bodyBytes []byte
			switch v := tt.inputBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, _ = json.Marshal(v)
			}

			r := httptest.NewRequest(http.MethodPost, "/api/auth/signup", bytes.NewReader(bodyBytes))
			w := httptest.NewRecorder()

			NewSignUpHandler(mockSvc).ServeHTTP(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.Equal(t, tt.expectedMsg, decodeMessage(t, w))
			assert.NotContains(t, w.Body.String(), "secret123")
			assert.NotContains(t, w.Body.String(), "hash")

			if w.Code == http.StatusCreated {
				var resp struct {
					User map[string]any `json:"user"`
				}
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, user.UserID.String(), resp.User["id"])
				assert.Equal(t, "alice@example.com", resp.User["email"])
				assert.NotContains(t, resp.User, "password")
			}
		})
	}
}

func TestSignInHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockSignInner(ctrl)
	user := &models.UserDB{UserID: uuid.New(), Email: "alice@example.com", PasswordHash: "$2a$10$hash"}
	input := services.SignInInput{Email: "alice@example.com", Password: "secret123"}

	tests := []struct {
		name         string
		inputBody    interface{}
		mockSetup    func()
		expectedCode int
		expectedMsg  string
		expectToken  string
	}{
		{
			name:      "success",
			inputBody: SignInRequest{Email: "alice@example.com", Password: "secret123"},
			mockSetup: func() {
				mockSvc.EXPECT().Login(gomock.Any(), input).Return(user, "JWT_TOKEN", nil)
			},
			expectedCode: http.StatusOK,
			expectedMsg:  "Sign in successful",
			expectToken:  "JWT_TOKEN",
		},
		{
			name:         "invalid JSON",
			inputBody:    "{invalid json}",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "Invalid request body",
		},
		{
			name:         "oversized body",
			inputBody:    `{"email":"` + strings.Repeat("a", formOverhead) + `"}`,
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "Invalid request body",
		},
		{
			name:      "wrong credentials",
			inputBody: SignInRequest{Email: "alice@example.com", Password: "secret123"},
			mockSetup: func() {
				mockSvc.EXPECT().Login(gomock.Any(), input).Return(nil, "", services.ErrInvalidCredentials)
			},
			expectedCode: http.StatusUnauthorized,
			expectedMsg:  "Invalid email or password",
		},
		{
			name:      "internal error",
			inputBody: SignInRequest{Email: "alice@example.com", Password: "secret123"},
			mockSetup: func() {
				mockSvc.EXPECT().Login(gomock.Any(), input).Return(nil, "", errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedMsg:  "Server error during sign in",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			var bodyBytes []byte
			switch v := tt.inputBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, _ = json.Marshal(v)
			}

			r := httptest.NewRequest(http.MethodPost, "/api/auth/signin", bytes.NewReader(bodyBytes))
			w := httptest.NewRecorder()

			NewSignInHandler(mockSvc).ServeHTTP(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.Equal(t, tt.expectedMsg, decodeMessage(t, w))
			assert.NotContains(t, w.Body.String(), "hash")

			if tt.expectToken != "" {
				var resp SignInResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectToken, resp.Token)
				assert.Equal(t, user.UserID, resp.User.UserID)
			}
		})
	}
}
