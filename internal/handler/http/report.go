package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sitepay-hq/sitepay-backend-go/internal/domain/report"
	"github.com/sitepay-hq/sitepay-backend-go/internal/handler/http/middleware"
	"github.com/sitepay-hq/sitepay-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	ProjectSummary(w http.ResponseWriter, r *http.Request)
	AllProjectSummaries(w http.ResponseWriter, r *http.Request)
	DashboardStats(w http.ResponseWriter, r *http.Request)
	PayrollSummary(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

func (h *ReportHandlerImpl) ProjectSummary(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.reportService.ProjectSummary(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *ReportHandlerImpl) AllProjectSummaries(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.reportService.AllProjectSummaries(r.Context(), actor)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *ReportHandlerImpl) DashboardStats(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.reportService.DashboardStats(r.Context(), actor)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *ReportHandlerImpl) PayrollSummary(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.reportService.PayrollSummary(r.Context(), actor)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}
