package notification

import (
	"context"
	"log/slog"

	"github.com/sitepay-hq/sitepay-backend-go/internal/domain/notification"
	"github.com/sitepay-hq/sitepay-backend-go/internal/pkg/sse"
)

type NotificationServiceImpl struct {
	notificationRepo notification.NotificationRepository
	hub              *sse.Hub
	logger           *slog.Logger
}

func NewNotificationService(
	notificationRepo notification.NotificationRepository,
	hub *sse.Hub,
	logger *slog.Logger,
) notification.NotificationService {
	return &NotificationServiceImpl{
		notificationRepo: notificationRepo,
		hub:              hub,
		logger:           logger,
	}
}

func (s *NotificationServiceImpl) List(ctx context.Context, userID string, unreadOnly bool) ([]*notification.NotificationResponse, error) {
	notifications, err := s.notificationRepo.ListByUser(ctx, userID, unreadOnly)
	if err != nil {
		return nil, err
	}
	return notification.ToResponses(notifications), nil
}

func (s *NotificationServiceImpl) MarkRead(ctx context.Context, userID, id string) error {
	n, err := s.notificationRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if n.UserID != userID {
		return notification.ErrUnauthorized
	}
	return s.notificationRepo.MarkRead(ctx, id)
}

func (s *NotificationServiceImpl) MarkAllRead(ctx context.Context, userID string) error {
	return s.notificationRepo.MarkAllRead(ctx, userID)
}

func (s *NotificationServiceImpl) CountUnread(ctx context.Context, userID string) (int, error) {
	return s.notificationRepo.CountUnread(ctx, userID)
}

// Notify persists the notification and pushes a change hint over SSE. A
// failed persist is returned; a failed push is only logged, the stream is
// best-effort.
func (s *NotificationServiceImpl) Notify(ctx context.Context, n *notification.Notification) error {
	if err := s.notificationRepo.Create(ctx, n); err != nil {
		s.logger.Error("failed to persist notification",
			slog.String("user_id", n.UserID),
			slog.String("kind", string(n.Kind)),
			slog.Any("error", err),
		)
		return err
	}

	s.hub.Publish(n.UserID, sse.Event{
		Kind: "notification",
		Data: notification.ToResponse(n),
	})
	return nil
}
