package redisstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Chopaholic/MotorAdverts/services/notification/internal/entity"

	"github.com/redis/go-redis/v9"
)

// maxPerUser caps each user's notification list; older entries fall off.
const maxPerUser = 100

type NotificationStore interface {
	Push(ctx context.Context, n *entity.Notification) error
	List(ctx context.Context, userID string, limit, offset int) ([]entity.Notification, error)
	Clear(ctx context.Context, userID string) error
}

type notificationStore struct {
	client *redis.Client
}

func NewNotificationStore(client *redis.Client) NotificationStore {
	return &notificationStore{client: client}
}

func userKey(userID string) string {
	return fmt.Sprintf("notifications:user:%s", userID)
}

func (s *notificationStore) Push(ctx context.Context, n *entity.Notification) error {
	data, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("failed to encode notification: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.LPush(ctx, userKey(n.UserID), data)
	pipe.LTrim(ctx, userKey(n.UserID), 0, maxPerUser-1)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to store notification: %w", err)
	}
	return nil
}

func (s *notificationStore) List(ctx context.Context, userID string, limit, offset int) ([]entity.Notification, error) {
	if limit <= 0 {
		limit = 20
	}
	stop := int64(offset + limit - 1)

	raw, err := s.client.LRange(ctx, userKey(userID), int64(offset), stop).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	out := make([]entity.Notification, 0, len(raw))
	for _, item := range raw {
		var n entity.Notification
		if err := json.Unmarshal([]byte(item), &n); err != nil {
			continue
		}
		out = append(out, n)
	}
	return out, nil
}

func (s *notificationStore) Clear(ctx context.Context, userID string) error {
	if err := s.client.Del(ctx, userKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to clear notifications: %w", err)
	}
	return nil
}
