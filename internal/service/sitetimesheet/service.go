package sitetimesheet

import (
	"context"
	"fmt"
	"time"

	"github.com/sitepay-hq/sitepay-backend-go/internal/domain/notification"
	"github.com/sitepay-hq/sitepay-backend-go/internal/domain/project"
	"github.com/sitepay-hq/sitepay-backend-go/internal/domain/sitetimesheet"
	"github.com/sitepay-hq/sitepay-backend-go/internal/domain/user"
	"github.com/sitepay-hq/sitepay-backend-go/internal/pkg/sse"
	"github.com/sitepay-hq/sitepay-backend-go/internal/pkg/validator"
)

type SiteTimesheetServiceImpl struct {
	siteTimesheetRepo sitetimesheet.SiteTimesheetRepository
	projectRepo       project.ProjectRepository
	notificationSvc   notification.NotificationService
	hub               *sse.Hub
}

func NewSiteTimesheetService(
	siteTimesheetRepo sitetimesheet.SiteTimesheetRepository,
	projectRepo project.ProjectRepository,
	notificationSvc notification.NotificationService,
	hub *sse.Hub,
) sitetimesheet.SiteTimesheetService {
	return &SiteTimesheetServiceImpl{
		siteTimesheetRepo: siteTimesheetRepo,
		projectRepo:       projectRepo,
		notificationSvc:   notificationSvc,
		hub:               hub,
	}
}

func (s *SiteTimesheetServiceImpl) Create(ctx context.Context, actor user.Actor, req sitetimesheet.CreateSiteTimesheetRequest) (*sitetimesheet.SiteTimesheetResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	st, err := s.buildRecord(ctx, actor, req)
	if err != nil {
		return nil, err
	}
	st.Status = sitetimesheet.StatusDraft
	if req.Submit {
		st.Status = sitetimesheet.StatusSubmitted
	}

	if err := s.siteTimesheetRepo.Create(ctx, st); err != nil {
		return nil, err
	}
	if req.Submit {
		s.hub.Broadcast(sse.Event{Kind: "site_timesheets"})
	}
	return s.reload(ctx, st.ID)
}

func (s *SiteTimesheetServiceImpl) UpdateDraft(ctx context.Context, actor user.Actor, id string, req sitetimesheet.CreateSiteTimesheetRequest) (*sitetimesheet.SiteTimesheetResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.siteTimesheetRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.ForemanID != actor.ID && actor.Role != user.RoleAdmin {
		return nil, sitetimesheet.ErrUnauthorized
	}
	if existing.Status != sitetimesheet.StatusDraft {
		return nil, sitetimesheet.ErrNotDraft
	}

	st, err := s.buildRecord(ctx, actor, req)
	if err != nil {
		return nil, err
	}
	st.ID = id
	st.ForemanID = existing.ForemanID

	if err := s.siteTimesheetRepo.Update(ctx, st); err != nil {
		return nil, err
	}
	return s.reload(ctx, id)
}

func (s *SiteTimesheetServiceImpl) Submit(ctx context.Context, actor user.Actor, id string) (*sitetimesheet.SiteTimesheetResponse, error) {
	existing, err := s.siteTimesheetRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.ForemanID != actor.ID && actor.Role != user.RoleAdmin {
		return nil, sitetimesheet.ErrUnauthorized
	}

	if err := s.siteTimesheetRepo.Submit(ctx, id); err != nil {
		return nil, err
	}

	s.hub.Broadcast(sse.Event{Kind: "site_timesheets"})
	return s.reload(ctx, id)
}

func (s *SiteTimesheetServiceImpl) Authorize(ctx context.Context, actor user.Actor, id string) (*sitetimesheet.SiteTimesheetResponse, error) {
	if !actor.CanAuthorizeSiteTimesheets() {
		return nil, sitetimesheet.ErrUnauthorized
	}

	// The guarded UPDATE settles concurrent authorize/reject races; only
	// one caller sees its row transition.
	if err := s.siteTimesheetRepo.Authorize(ctx, id, actor.ID); err != nil {
		return nil, err
	}

	st, err := s.siteTimesheetRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.notifyDecision(ctx, st, notification.KindSiteTimesheetAuthorized, "Site timesheet authorized",
		fmt.Sprintf("Your site timesheet for %s was authorized.", st.Date.Format("2 Jan 2006")))
	s.hub.Broadcast(sse.Event{Kind: "site_timesheets"})

	return sitetimesheet.ToResponse(st), nil
}

func (s *SiteTimesheetServiceImpl) Reject(ctx context.Context, actor user.Actor, id string, req sitetimesheet.RejectSiteTimesheetRequest) (*sitetimesheet.SiteTimesheetResponse, error) {
	// Reason is validated before any record mutation.
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if !actor.CanAuthorizeSiteTimesheets() {
		return nil, sitetimesheet.ErrUnauthorized
	}

	if err := s.siteTimesheetRepo.Reject(ctx, id, actor.ID, req.Reason); err != nil {
		return nil, err
	}

	st, err := s.siteTimesheetRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.notifyDecision(ctx, st, notification.KindSiteTimesheetRejected, "Site timesheet rejected",
		fmt.Sprintf("Your site timesheet for %s was rejected: %s", st.Date.Format("2 Jan 2006"), req.Reason))
	s.hub.Broadcast(sse.Event{Kind: "site_timesheets"})

	return sitetimesheet.ToResponse(st), nil
}

func (s *SiteTimesheetServiceImpl) GetByID(ctx context.Context, actor user.Actor, id string) (*sitetimesheet.SiteTimesheetResponse, error) {
	st, err := s.siteTimesheetRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if actor.Role == user.RoleSupervisor && st.ForemanID != actor.ID {
		return nil, sitetimesheet.ErrUnauthorized
	}
	return sitetimesheet.ToResponse(st), nil
}

func (s *SiteTimesheetServiceImpl) List(ctx context.Context, actor user.Actor, filter sitetimesheet.Filter) ([]*sitetimesheet.SiteTimesheetResponse, error) {
	// Supervisors see only their own submissions regardless of the filter.
	if actor.Role == user.RoleSupervisor {
		filter.ForemanID = &actor.ID
	}
	sheets, err := s.siteTimesheetRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return sitetimesheet.ToResponses(sheets), nil
}

func (s *SiteTimesheetServiceImpl) buildRecord(ctx context.Context, actor user.Actor, req sitetimesheet.CreateSiteTimesheetRequest) (*sitetimesheet.SiteTimesheet, error) {
	if actor.Role != user.RoleAdmin {
		assigned, err := s.projectRepo.IsAssigned(ctx, req.ProjectID, actor.ID)
		if err != nil {
			return nil, err
		}
		if !assigned {
			return nil, project.ErrNotAssigned
		}
	}

	date, _ := validator.IsValidDate(req.Date)

	st := &sitetimesheet.SiteTimesheet{
		ProjectID:       req.ProjectID,
		ForemanID:       actor.ID,
		Date:            date,
		Shift:           sitetimesheet.Shift(req.Shift),
		NumberOfWorkers: req.NumberOfWorkers,
		Equipment:       make([]sitetimesheet.EquipmentLine, 0, len(req.Equipment)),
		Materials:       make([]sitetimesheet.MaterialLine, 0, len(req.Materials)),
		Production:      make([]sitetimesheet.ProductionLine, 0, len(req.Production)),
		Remarks:         req.Remarks,
	}
	for _, eq := range req.Equipment {
		st.Equipment = append(st.Equipment, sitetimesheet.EquipmentLine{
			Name:      eq.Name,
			HoursUsed: eq.HoursUsed,
		})
	}
	for _, m := range req.Materials {
		st.Materials = append(st.Materials, sitetimesheet.MaterialLine{
			Item:         m.Item,
			MaterialType: m.MaterialType,
			Quantity:     m.Quantity,
			Unit:         m.Unit,
			CalculatedKg: m.CalculatedKg,
			Notes:        m.Notes,
		})
	}
	for _, p := range req.Production {
		st.Production = append(st.Production, sitetimesheet.ProductionLine{
			Activity: p.Activity,
			Quantity: p.Quantity,
			Unit:     p.Unit,
		})
	}
	return st, nil
}

func (s *SiteTimesheetServiceImpl) reload(ctx context.Context, id string) (*sitetimesheet.SiteTimesheetResponse, error) {
	st, err := s.siteTimesheetRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return sitetimesheet.ToResponse(st), nil
}

func (s *SiteTimesheetServiceImpl) notifyDecision(ctx context.Context, st *sitetimesheet.SiteTimesheet, kind notification.Kind, title, message string) {
	_ = s.notificationSvc.Notify(ctx, &notification.Notification{
		UserID:    st.ForemanID,
		Kind:      kind,
		Title:     title,
		Message:   message,
		RefID:     &st.ID,
		CreatedAt: time.Now(),
	})
}
