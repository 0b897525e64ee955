package handlers

//go:generate mockgen -source=post_create.go -destination=post_create_mock.go -package=handlers

import (
	"context"
	"errors"
	"mime"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-lost-found/internal/models"
	"github.com/sbilibin2017/gw-lost-found/internal/repositories"
	"github.com/sbilibin2017/gw-lost-found/internal/services"
)

const (
	multipartMemory = 1 << 20
	formOverhead    = 64 << 10
)

// PostCreator defines the interface that the service must implement.
type PostCreator interface {
	Create(ctx context.Context, authorID uuid.UUID, in services.PostInput, image *services.ImageUpload) (*models.PostDB, error)
}

// PostRequest holds the fields of a new post. Sent as multipart/form-data with
// an optional "file" part, or as JSON without an image.
// swagger:model PostRequest
type PostRequest struct {
	// required: true
	// default: Blue Backpack
	ItemName string `json:"itemName"`

	// required: true
	// default: Left in library
	Description string `json:"description"`

	// Security question responders must answer
	// default: What color is the zipper?
	Question string `json:"question"`

	// lost or found
	// required: true
	// default: lost
	Category string `json:"category"`

	// Must match the token's user when given
	UserID string `json:"userId"`
}

// PostResponse wraps a single post
// swagger:model PostResponse
type PostResponse struct {
	// default: Post created successfully
	Message string `json:"message"`

	Post *models.PostDB `json:"post"`
}

// NewPostCreateHandler returns an HTTP handler for creating a post.
// @Summary Create a post
// @Description Creates a lost or found post authored by the caller. The author's name and email are copied from the user record. An optional image (max 5 MiB) is stored and exposed as imageUrl.
// @Tags posts
// @Accept mpfd
// @Accept json
// @Produce json
// @Param itemName formData string true "Item name"
// @Param description formData string true "Description"
// @Param question formData string false "Security question"
// @Param category formData string true "lost or found"
// @Param file formData file false "Image"
// @Success 201 {object} handlers.PostResponse "Post created successfully"
// @Failure 400 {object} handlers.ErrorResponse "Validation error"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Forbidden"
// @Failure 500 {object} handlers.ErrorResponse "Server error during post creation"
// @Router /posts [post]
// @Security BearerAuth
func NewPostCreateHandler(svc PostCreator, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requester(w, r, tokener)
		if !ok {
			return
		}

		req, image, cleanup, err := readPostRequest(w, r)
		if err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				writeMessage(w, http.StatusBadRequest, "File too large")
				return
			}
			writeMessage(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		defer cleanup()

		post, err := svc.Create(r.Context(), userID, services.PostInput{
			ItemName:    req.ItemName,
			Description: req.Description,
			Question:    req.Question,
			Category:    req.Category,
			UserID:      req.UserID,
		}, image)
		if err != nil {
			writeError(w, r, err, "Server error during post creation")
			return
		}

		writeJSON(w, http.StatusCreated, PostResponse{
			Message: "Post created successfully",
			Post:    post,
		})
	}
}

func readPostRequest(w http.ResponseWriter, r *http.Request) (PostRequest, *services.ImageUpload, func(), error) {
	var req PostRequest
	noop := func() {}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		err := decodeJSON(w, r, &req)
		return req, nil, noop, err
	}

	r.Body = http.MaxBytesReader(w, r.Body, repositories.MaxImageSize+formOverhead)
	if err := r.ParseMultipartForm(multipartMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return req, nil, noop, err
	}

	req = PostRequest{
		ItemName:    r.FormValue("itemName"),
		Description: r.FormValue("description"),
		Question:    r.FormValue("question"),
		Category:    r.FormValue("category"),
		UserID:      r.FormValue("userId"),
	}

	file, header, err := r.FormFile("file")
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return req, nil, removeForm(r), nil
	}
	if err != nil {
		return req, nil, removeForm(r), err
	}

	cleanup := func() {
		file.Close()
		removeForm(r)()
	}
	return req, &services.ImageUpload{Filename: header.Filename, Content: file}, cleanup, nil
}

func removeForm(r *http.Request) func() {
	return func() {
		if r.MultipartForm != nil {
			r.MultipartForm.RemoveAll()
		}
	}
}
