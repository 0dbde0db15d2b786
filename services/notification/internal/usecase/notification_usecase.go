package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/Chopaholic/MotorAdverts/pkg/logger"
	"github.com/Chopaholic/MotorAdverts/pkg/queue"
	"github.com/Chopaholic/MotorAdverts/services/notification/internal/entity"
	"github.com/Chopaholic/MotorAdverts/services/notification/internal/repo/redisstore"

	"github.com/google/uuid"
)

type NotificationUseCase interface {
	// HandleListingPublished records a confirmation notification for the
	// listing's owner. Called by the queue consumer.
	HandleListingPublished(event queue.ListingPublishedEvent) error
	GetNotifications(ctx context.Context, userID string, limit, offset int) ([]entity.Notification, error)
	ClearNotifications(ctx context.Context, userID string) error
}

type notificationUseCase struct {
	store redisstore.NotificationStore
	log   *logger.Logger
}

func NewNotificationUseCase(store redisstore.NotificationStore, log *logger.Logger) NotificationUseCase {
	return &notificationUseCase{store: store, log: log}
}

func (uc *notificationUseCase) HandleListingPublished(event queue.ListingPublishedEvent) error {
	postedAt, err := time.Parse(time.RFC3339, event.PostedAt)
	if err != nil {
		postedAt = time.Now()
	}

	n := &entity.Notification{
		ID:      uuid.New().String(),
		UserID:  event.OwnerUID,
		Type:    entity.TypeListingPublished,
		Title:   "Listing published",
		Message: fmt.Sprintf("%s is now live in %s.", event.Title, event.Category),
		Data: map[string]string{
			"listing_id": event.ListingID,
			"category":   event.Category,
		},
		CreatedAt: postedAt,
	}

	if err := uc.store.Push(context.Background(), n); err != nil {
		return err
	}
	uc.log.Info("Stored %s notification for %s (listing %s)", n.Type, n.UserID, event.ListingID)
	return nil
}

func (uc *notificationUseCase) GetNotifications(ctx context.Context, userID string, limit, offset int) ([]entity.Notification, error) {
	return uc.store.List(ctx, userID, limit, offset)
}

func (uc *notificationUseCase) ClearNotifications(ctx context.Context, userID string) error {
	return uc.store.Clear(ctx, userID)
}
