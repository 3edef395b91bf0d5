package notification

import "time"

type NotificationResponse struct {
	ID        string    `json:"id"`
	Kind      Kind      `json:"kind"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	RefID     *string   `json:"ref_id,omitempty"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

func ToResponse(n *Notification) *NotificationResponse {
	return &NotificationResponse{
		ID:        n.ID,
		Kind:      n.Kind,
		Title:     n.Title,
		Message:   n.Message,
		RefID:     n.RefID,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}

func ToResponses(ns []*Notification) []*NotificationResponse {
	responses := make([]*NotificationResponse, 0, len(ns))
	for _, n := range ns {
		responses = append(responses, ToResponse(n))
	}
	return responses
}
