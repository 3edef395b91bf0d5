package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sitepay-hq/sitepay-backend-go/internal/domain/timesheet"
	"github.com/sitepay-hq/sitepay-backend-go/internal/handler/http/middleware"
	"github.com/sitepay-hq/sitepay-backend-go/internal/handler/http/response"
	"github.com/sitepay-hq/sitepay-backend-go/internal/pkg/validator"
)

type TimesheetHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Review(w http.ResponseWriter, r *http.Request)
}

type TimesheetHandlerImpl struct {
	timesheetService timesheet.TimesheetService
}

func NewTimesheetHandler(timesheetService timesheet.TimesheetService) TimesheetHandler {
	return &TimesheetHandlerImpl{timesheetService: timesheetService}
}

func (h *TimesheetHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req timesheet.CreateTimesheetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.timesheetService.Create(r.Context(), actor, req)
	if err != nil {
		slog.Error("Create timesheet service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Timesheet created", result)
}

func (h *TimesheetHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.timesheetService.GetByID(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *TimesheetHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	filter := timesheet.Filter{}
	if workerID := r.URL.Query().Get("worker_id"); workerID != "" {
		filter.WorkerID = &workerID
	}
	if status := r.URL.Query().Get("status"); status != "" {
		filter.Status = []timesheet.Status{timesheet.Status(status)}
	}
	if from := r.URL.Query().Get("date_from"); from != "" {
		t, ok := validator.IsValidDate(from)
		if !ok {
			response.BadRequest(w, "date_from must be YYYY-MM-DD", nil)
			return
		}
		filter.DateFrom = &t
	}
	if to := r.URL.Query().Get("date_to"); to != "" {
		t, ok := validator.IsValidDate(to)
		if !ok {
			response.BadRequest(w, "date_to must be YYYY-MM-DD", nil)
			return
		}
		filter.DateTo = &t
	}

	result, err := h.timesheetService.List(r.Context(), actor, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *TimesheetHandlerImpl) Review(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req timesheet.ReviewTimesheetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.timesheetService.Review(r.Context(), actor, chi.URLParam(r, "id"), req)
	if err != nil {
		slog.Error("Review timesheet service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}
