package handlers

//go:generate mockgen -source=post_list.go -destination=post_list_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-lost-found/internal/models"
)

// PostLister defines the interface that the service must implement.
type PostLister interface {
	List(ctx context.Context, filter models.PostFilter) ([]models.PostDB, error)
}

// PostListResponse represents the feed
// swagger:model PostListResponse
type PostListResponse struct {
	// default: Posts retrieved successfully
	Message string `json:"message"`

	Posts []models.PostDB `json:"posts"`
}

// NewPostListHandler returns an HTTP handler for the feed.
// @Summary List posts
// @Description Returns posts newest first, optionally narrowed by category and a case-insensitive search over item name and description.
// @Tags posts
// @Produce json
// @Param category query string false "lost or found"
// @Param search query string false "Search text"
// @Success 200 {object} handlers.PostListResponse "Posts retrieved successfully"
// @Failure 400 {object} handlers.ErrorResponse "Invalid category"
// @Failure 500 {object} handlers.ErrorResponse "Server error while fetching posts"
// @Router /posts [get]
func NewPostListHandler(svc PostLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var filter models.PostFilter
		query := r.URL.Query()
		if query.Has("category") {
			category := query.Get("category")
			filter.Category = &category
		}
		if query.Has("search") {
			search := query.Get("search")
			filter.Search = &search
		}

		posts, err := svc.List(r.Context(), filter)
		if err != nil {
			writeError(w, r, err, "Server error while fetching posts")
			return
		}

		writeJSON(w, http.StatusOK, PostListResponse{
			Message: "Posts retrieved successfully",
			Posts:   posts,
		})
	}
}
