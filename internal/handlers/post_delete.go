package handlers

//go:generate mockgen -source=post_delete.go -destination=post_delete_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-lost-found/internal/models"
)

// PostDeleter defines the interface that the service must implement.
type PostDeleter interface {
	Delete(ctx context.Context, postID, requesterID uuid.UUID) (*models.PostDB, error)
}

// NewPostDeleteHandler returns an HTTP handler for deleting a post.
// @Summary Delete a post
// @Description Deletes a post authored by the caller together with its image. Responses to it are kept.
// @Tags posts
// @Produce json
// @Param postId path string true "Post ID"
// @Success 200 {object} handlers.PostResponse "Post deleted successfully"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Not the author"
// @Failure 404 {object} handlers.ErrorResponse "Post not found"
// @Failure 500 {object} handlers.ErrorResponse "Server error while deleting post"
// @Router /posts/{postId} [delete]
// @Security BearerAuth
func NewPostDeleteHandler(svc PostDeleter, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requester(w, r, tokener)
		if !ok {
			return
		}

		postID, ok := pathID(w, r, "postId", "Post not found")
		if !ok {
			return
		}

		post, err := svc.Delete(r.Context(), postID, userID)
		if err != nil {
			writeError(w, r, err, "Server error while deleting post")
			return
		}

		writeJSON(w, http.StatusOK, PostResponse{
			Message: "Post deleted successfully",
			Post:    post,
		})
	}
}
