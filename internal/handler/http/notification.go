package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sitepay-hq/sitepay-backend-go/internal/domain/notification"
	"github.com/sitepay-hq/sitepay-backend-go/internal/handler/http/middleware"
	"github.com/sitepay-hq/sitepay-backend-go/internal/handler/http/response"
)

type NotificationHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	MarkRead(w http.ResponseWriter, r *http.Request)
	MarkAllRead(w http.ResponseWriter, r *http.Request)
	CountUnread(w http.ResponseWriter, r *http.Request)
}

type NotificationHandlerImpl struct {
	notificationService notification.NotificationService
}

func NewNotificationHandler(notificationService notification.NotificationService) NotificationHandler {
	return &NotificationHandlerImpl{notificationService: notificationService}
}

func (h *NotificationHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	unreadOnly := r.URL.Query().Get("unread") == "true"
	result, err := h.notificationService.List(r.Context(), actor.ID, unreadOnly)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *NotificationHandlerImpl) MarkRead(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.notificationService.MarkRead(r.Context(), actor.ID, chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Notification marked as read", nil)
}

func (h *NotificationHandlerImpl) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.notificationService.MarkAllRead(r.Context(), actor.ID); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "All notifications marked as read", nil)
}

func (h *NotificationHandlerImpl) CountUnread(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	count, err := h.notificationService.CountUnread(r.Context(), actor.ID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, map[string]int{"unread": count})
}
