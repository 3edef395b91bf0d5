package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/sitepay-hq/sitepay-backend-go/internal/domain/user"
	"github.com/sitepay-hq/sitepay-backend-go/internal/handler/http/middleware"
	"github.com/sitepay-hq/sitepay-backend-go/internal/pkg/jwt"
)

type RouterDeps struct {
	JWTService           jwt.Service
	AuthHandler          AuthHandler
	WorkerHandler        WorkerHandler
	ProjectHandler       ProjectHandler
	TimesheetHandler     TimesheetHandler
	SiteTimesheetHandler SiteTimesheetHandler
	PayrollHandler       PayrollHandler
	ReportHandler        ReportHandler
	NotificationHandler  NotificationHandler
	EventHandler         EventHandler

	AllowedOrigins []string
	Environment    string
}

func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "sitepay"),
		slog.String("version", "v1.0.0"),
		slog.String("env", deps.Environment),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", deps.AuthHandler.Login)
			r.Post("/refresh", deps.AuthHandler.RefreshToken)
			r.Post("/logout", deps.AuthHandler.Logout)
		})

		// Token is validated on the stream itself; EventSource cannot send
		// Authorization headers.
		r.Get("/events/stream", deps.EventHandler.Stream)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(deps.JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(deps.JWTService.JWTAuth()))

			r.Post("/events/token", deps.EventHandler.Token)

			r.Route("/workers", func(r chi.Router) {
				r.Get("/me", deps.WorkerHandler.GetOwnProfile)
				r.Get("/", deps.WorkerHandler.ListActive)
				r.Get("/{id}", deps.WorkerHandler.GetByID)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", deps.WorkerHandler.Create)
				})
			})

			r.Route("/projects", func(r chi.Router) {
				r.Get("/", deps.ProjectHandler.List)
				r.Get("/my", deps.ProjectHandler.ListOwnAssignments)
				r.Get("/{id}", deps.ProjectHandler.GetByID)
				r.Get("/{id}/summary", deps.ReportHandler.ProjectSummary)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", deps.ProjectHandler.Create)
					r.Post("/assignments", deps.ProjectHandler.Assign)
				})
			})

			r.Route("/timesheets", func(r chi.Router) {
				r.Post("/", deps.TimesheetHandler.Create)
				r.Get("/", deps.TimesheetHandler.List)
				r.Get("/{id}", deps.TimesheetHandler.GetByID)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(user.RoleSupervisor, user.RoleClerk))
					r.Patch("/{id}/review", deps.TimesheetHandler.Review)
				})
			})

			r.Route("/site-timesheets", func(r chi.Router) {
				r.Get("/", deps.SiteTimesheetHandler.List)
				r.Get("/suggest-kg", deps.SiteTimesheetHandler.SuggestKg)
				r.Get("/{id}", deps.SiteTimesheetHandler.GetByID)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(user.RoleSupervisor))
					r.Post("/", deps.SiteTimesheetHandler.Create)
					r.Put("/{id}", deps.SiteTimesheetHandler.UpdateDraft)
					r.Post("/{id}/submit", deps.SiteTimesheetHandler.Submit)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(user.RoleClerk))
					r.Post("/{id}/authorize", deps.SiteTimesheetHandler.Authorize)
					r.Post("/{id}/reject", deps.SiteTimesheetHandler.Reject)
				})
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(user.RolePayrollOfficer))
					r.Post("/preview", deps.PayrollHandler.Preview)
					r.Post("/finalize", deps.PayrollHandler.Finalize)
				})

				r.Route("/cycles", func(r chi.Router) {
					r.Get("/", deps.PayrollHandler.ListCycles)
					r.Get("/{id}", deps.PayrollHandler.GetCycle)
					r.Get("/{id}/payslips", deps.PayrollHandler.ListPayslipsByCycle)

					r.Group(func(r chi.Router) {
						r.Use(middleware.RequireRole(user.RoleFinance, user.RoleCEO))
						r.Patch("/{id}/advance", deps.PayrollHandler.AdvanceCycle)
					})

					r.Group(func(r chi.Router) {
						r.Use(middleware.RequireRole(user.RolePayrollOfficer))
						r.Delete("/{id}", deps.PayrollHandler.DeleteCycle)
					})
				})

				r.Route("/payslips", func(r chi.Router) {
					r.Get("/my", deps.PayrollHandler.ListOwnPayslips)
					r.Get("/{id}", deps.PayrollHandler.GetPayslip)
					r.Get("/{id}/pdf", deps.PayrollHandler.DownloadPayslipPDF)
				})
			})

			r.Route("/reports", func(r chi.Router) {
				r.Get("/projects", deps.ReportHandler.AllProjectSummaries)
				r.Get("/dashboard", deps.ReportHandler.DashboardStats)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(user.RolePayrollOfficer, user.RoleFinance, user.RoleCEO))
					r.Get("/payroll", deps.ReportHandler.PayrollSummary)
				})
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", deps.NotificationHandler.List)
				r.Get("/unread-count", deps.NotificationHandler.CountUnread)
				r.Patch("/{id}/read", deps.NotificationHandler.MarkRead)
				r.Patch("/read-all", deps.NotificationHandler.MarkAllRead)
			})
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	return r
}
