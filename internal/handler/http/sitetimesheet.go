package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/sitepay-hq/sitepay-backend-go/internal/domain/sitetimesheet"
	"github.com/sitepay-hq/sitepay-backend-go/internal/handler/http/middleware"
	"github.com/sitepay-hq/sitepay-backend-go/internal/handler/http/response"
	"github.com/sitepay-hq/sitepay-backend-go/internal/pkg/validator"
)

type SiteTimesheetHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	UpdateDraft(w http.ResponseWriter, r *http.Request)
	Submit(w http.ResponseWriter, r *http.Request)
	Authorize(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	SuggestKg(w http.ResponseWriter, r *http.Request)
}

type SiteTimesheetHandlerImpl struct {
	siteTimesheetService sitetimesheet.SiteTimesheetService
}

func NewSiteTimesheetHandler(siteTimesheetService sitetimesheet.SiteTimesheetService) SiteTimesheetHandler {
	return &SiteTimesheetHandlerImpl{siteTimesheetService: siteTimesheetService}
}

func (h *SiteTimesheetHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req sitetimesheet.CreateSiteTimesheetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.siteTimesheetService.Create(r.Context(), actor, req)
	if err != nil {
		slog.Error("Create site timesheet service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Site timesheet created", result)
}

func (h *SiteTimesheetHandlerImpl) UpdateDraft(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req sitetimesheet.CreateSiteTimesheetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.siteTimesheetService.UpdateDraft(r.Context(), actor, chi.URLParam(r, "id"), req)
	if err != nil {
		slog.Error("Update site timesheet service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *SiteTimesheetHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.siteTimesheetService.Submit(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("Submit site timesheet service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *SiteTimesheetHandlerImpl) Authorize(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.siteTimesheetService.Authorize(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("Authorize site timesheet service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *SiteTimesheetHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req sitetimesheet.RejectSiteTimesheetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.siteTimesheetService.Reject(r.Context(), actor, chi.URLParam(r, "id"), req)
	if err != nil {
		slog.Error("Reject site timesheet service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *SiteTimesheetHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.siteTimesheetService.GetByID(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *SiteTimesheetHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	filter := sitetimesheet.Filter{}
	if projectID := r.URL.Query().Get("project_id"); projectID != "" {
		filter.ProjectID = &projectID
	}
	if foremanID := r.URL.Query().Get("foreman_id"); foremanID != "" {
		filter.ForemanID = &foremanID
	}
	if status := r.URL.Query().Get("status"); status != "" {
		s := sitetimesheet.Status(status)
		filter.Status = &s
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

	result, err := h.siteTimesheetService.List(r.Context(), actor, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// SuggestKg returns the advisory weight for a material quantity. The
// suggestion is never binding; foremen can overwrite the calculated value.
func (h *SiteTimesheetHandlerImpl) SuggestKg(w http.ResponseWriter, r *http.Request) {
	materialType := r.URL.Query().Get("material_type")
	quantityRaw := r.URL.Query().Get("quantity")

	quantity, err := decimal.NewFromString(quantityRaw)
	if err != nil || quantity.IsNegative() {
		response.BadRequest(w, "quantity must be a non-negative number", nil)
		return
	}

	kg, ok := sitetimesheet.SuggestedKg(sitetimesheet.MaterialType(materialType), quantity)
	if !ok {
		response.BadRequest(w, "Unknown material type", nil)
		return
	}

	response.Success(w, map[string]interface{}{
		"material_type": materialType,
		"quantity":      quantity,
		"suggested_kg":  kg,
	})
}
