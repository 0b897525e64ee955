package services

//go:generate mockgen -source=events.go -destination=events_mock.go -package=services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-lost-found/internal/logger"
	"github.com/sbilibin2017/gw-lost-found/internal/models"
)

// EventPublisher publishes board events.
type EventPublisher interface {
	Publish(ctx context.Context, event models.Event) error
}

// UserGetter resolves a user by id for author and responder snapshots.
type UserGetter interface {
	GetUser(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

func newEvent(eventType string, actorID, entityID, postID uuid.UUID, status string) models.Event {
	return models.Event{
		EventID:   uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now().Unix(),
		ActorID:   actorID.String(),
		EntityID:  entityID.String(),
		PostID:    postID.String(),
		Status:    status,
	}
}

// publish never fails the caller; delivery errors are only logged.
func publish(ctx context.Context, publisher EventPublisher, event models.Event) {
	if publisher == nil {
		return
	}
	if err := publisher.Publish(ctx, event); err != nil {
		logger.Log.Errorw("failed to publish event", "event_id", event.EventID, "type", event.Type, "err", err)
	}
}
