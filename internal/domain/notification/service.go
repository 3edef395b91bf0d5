package notification

import "context"

type NotificationService interface {
	List(ctx context.Context, userID string, unreadOnly bool) ([]*NotificationResponse, error)
	MarkRead(ctx context.Context, userID, id string) error
	MarkAllRead(ctx context.Context, userID string) error
	CountUnread(ctx context.Context, userID string) (int, error)

	// Notify persists a notification and pushes a change hint to the
	// recipient's event stream. Delivery failures never fail the caller.
	Notify(ctx context.Context, n *Notification) error
}
