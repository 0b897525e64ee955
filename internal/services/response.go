package services

//go:generate mockgen -source=response.go -destination=response_mock.go -package=services

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-lost-found/internal/apperrors"
	"github.com/sbilibin2017/gw-lost-found/internal/logger"
	"github.com/sbilibin2017/gw-lost-found/internal/models"
	"github.com/sbilibin2017/gw-lost-found/internal/txhooks"
)

// ResponseReader defines read operations for responses.
type ResponseReader interface {
	GetByID(ctx context.Context, responseID uuid.UUID) (*models.ResponseDB, error)
	ListByPostOwner(ctx context.Context, ownerID uuid.UUID) ([]models.OwnerResponse, error)
	ListByResponder(ctx context.Context, responderID uuid.UUID) ([]models.ResponderResponse, error)
}

// ResponseWriter defines write operations for responses.
type ResponseWriter interface {
	Save(ctx context.Context, resp *models.ResponseDB) (*models.ResponseDB, error)
	UpdateStatus(ctx context.Context, responseID uuid.UUID, from, to string) (*models.ResponseDB, error)
}

// ResponseInput holds the fields of a new response.
type ResponseInput struct {
	PostID         string `json:"postId" validate:"required,uuid"`
	ResponderID    string `json:"responderId" validate:"omitempty,uuid"`
	SecurityAnswer string `json:"securityAnswer" validate:"required,max=1000"`
	ResponseType   string `json:"responseType" validate:"required,oneof=found contact"`
}

const duplicateResponseMessage = "You have already responded to this item."

// ResponseService runs the response lifecycle: one response per user and
// post, decided once by the post owner.
type ResponseService struct {
	reader    ResponseReader
	writer    ResponseWriter
	posts     PostReader
	users     UserGetter
	publisher EventPublisher
}

// NewResponseService creates a new ResponseService.
func NewResponseService(
	reader ResponseReader,
	writer ResponseWriter,
	posts PostReader,
	users UserGetter,
	publisher EventPublisher,
) *ResponseService {
	return &ResponseService{
		reader:    reader,
		writer:    writer,
		posts:     posts,
		users:     users,
		publisher: publisher,
	}
}

// Submit records a pending response by requesterID. The responder's name and
// email come from the user record, the owner and item name from the post.
func (s *ResponseService) Submit(ctx context.Context, requesterID uuid.UUID, in ResponseInput) (*models.ResponseDB, error) {
	in.PostID = strings.ToLower(strings.TrimSpace(in.PostID))
	in.ResponderID = strings.ToLower(strings.TrimSpace(in.ResponderID))
	in.SecurityAnswer = strings.TrimSpace(in.SecurityAnswer)
	in.ResponseType = strings.ToLower(strings.TrimSpace(in.ResponseType))
	if in.ResponseType == "" {
		in.ResponseType = models.ResponseTypeFound
	}

	if err := validateStruct(in); err != nil {
		return nil, err
	}
	if in.ResponderID != "" && in.ResponderID != requesterID.String() {
		return nil, apperrors.Forbidden("You can only respond as yourself")
	}

	postID := uuid.MustParse(in.PostID)
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		logger.Log.Errorw("failed to get post", "post_id", postID, "err", err)
		return nil, err
	}
	if post == nil {
		return nil, apperrors.NotFound("Post not found")
	}
	if post.AuthorID == requesterID {
		return nil, apperrors.Forbidden("You cannot respond to your own post")
	}

	responder, err := s.users.GetUser(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	resp, err := s.writer.Save(ctx, &models.ResponseDB{
		PostID:         post.PostID,
		PostOwnerID:    post.AuthorID,
		ResponderID:    responder.UserID,
		ResponderName:  responder.FullName(),
		ResponderEmail: responder.Email,
		SecurityAnswer: in.SecurityAnswer,
		ResponseType:   in.ResponseType,
		ItemName:       post.ItemName,
	})
	if errors.Is(err, sql.ErrNoRows) {
		logger.Log.Infow("duplicate response", "post_id", postID, "responder_id", requesterID)
		return nil, apperrors.Duplicate(duplicateResponseMessage)
	}
	if err != nil {
		logger.Log.Errorw("failed to save response", "post_id", postID, "responder_id", requesterID, "err", err)
		return nil, err
	}

	txhooks.AfterCommit(ctx, func() {
		publish(ctx, s.publisher, newEvent(models.EventResponseSubmitted, requesterID, resp.ResponseID, resp.PostID, resp.Status))
	})

	return resp, nil
}

// ListForOwner returns the responses to userID's posts, newest first.
func (s *ResponseService) ListForOwner(ctx context.Context, requesterID, userID uuid.UUID) ([]models.OwnerResponse, error) {
	if requesterID != userID {
		return nil, apperrors.Forbidden("You can only view your own responses")
	}

	responses, err := s.reader.ListByPostOwner(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list owner responses", "user_id", userID, "err", err)
		return nil, err
	}
	if responses == nil {
		responses = []models.OwnerResponse{}
	}
	return responses, nil
}

// ListForResponder returns the responses userID made, newest first. The
// owner's email and phone are only included once a response has been accepted.
func (s *ResponseService) ListForResponder(ctx context.Context, requesterID, userID uuid.UUID) ([]models.ResponderResponse, error) {
	if requesterID != userID {
		return nil, apperrors.Forbidden("You can only view your own responses")
	}

	responses, err := s.reader.ListByResponder(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list responder responses", "user_id", userID, "err", err)
		return nil, err
	}
	if responses == nil {
		responses = []models.ResponderResponse{}
	}

	for i := range responses {
		if responses[i].Status == models.StatusAccepted {
			continue
		}
		if responses[i].OwnerEmail != models.UnknownOwner {
			responses[i].OwnerEmail = ""
		}
		responses[i].OwnerPhone = ""
	}
	return responses, nil
}

// Accept moves a pending response to accepted.
func (s *ResponseService) Accept(ctx context.Context, responseID, requesterID uuid.UUID) (*models.ResponseDB, error) {
	return s.decide(ctx, responseID, requesterID, models.StatusAccepted, models.EventResponseAccepted)
}

// Reject moves a pending response to rejected.
func (s *ResponseService) Reject(ctx context.Context, responseID, requesterID uuid.UUID) (*models.ResponseDB, error) {
	return s.decide(ctx, responseID, requesterID, models.StatusRejected, models.EventResponseRejected)
}

func (s *ResponseService) decide(ctx context.Context, responseID, requesterID uuid.UUID, to, eventType string) (*models.ResponseDB, error) {
	resp, err := s.reader.GetByID(ctx, responseID)
	if err != nil {
		logger.Log.Errorw("failed to get response", "response_id", responseID, "err", err)
		return nil, err
	}
	if resp == nil {
		return nil, apperrors.NotFound("Response not found")
	}
	if resp.PostOwnerID != requesterID {
		logger.Log.Infow("status change denied", "response_id", responseID, "requester_id", requesterID)
		return nil, apperrors.Forbidden("Only the post owner can accept or reject this response")
	}
	if resp.IsTerminal() {
		return nil, apperrors.InvalidStateTransition("Response has already been " + resp.Status)
	}

	updated, err := s.writer.UpdateStatus(ctx, responseID, models.StatusPending, to)
	if errors.Is(err, sql.ErrNoRows) {
		// a concurrent accept or reject got there first
		logger.Log.Infow("status change lost race", "response_id", responseID, "to", to)
		return nil, apperrors.InvalidStateTransition("Response has already been decided")
	}
	if err != nil {
		logger.Log.Errorw("failed to update response status", "response_id", responseID, "to", to, "err", err)
		return nil, err
	}

	txhooks.AfterCommit(ctx, func() {
		publish(ctx, s.publisher, newEvent(eventType, requesterID, updated.ResponseID, updated.PostID, updated.Status))
	})

	return updated, nil
}
