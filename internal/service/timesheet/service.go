package timesheet

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sitepay-hq/sitepay-backend-go/internal/domain/notification"
	"github.com/sitepay-hq/sitepay-backend-go/internal/domain/timesheet"
	"github.com/sitepay-hq/sitepay-backend-go/internal/domain/user"
	"github.com/sitepay-hq/sitepay-backend-go/internal/domain/worker"
	"github.com/sitepay-hq/sitepay-backend-go/internal/pkg/validator"
)

type TimesheetServiceImpl struct {
	timesheetRepo   timesheet.TimesheetRepository
	workerRepo      worker.WorkerRepository
	notificationSvc notification.NotificationService
}

func NewTimesheetService(
	timesheetRepo timesheet.TimesheetRepository,
	workerRepo worker.WorkerRepository,
	notificationSvc notification.NotificationService,
) timesheet.TimesheetService {
	return &TimesheetServiceImpl{
		timesheetRepo:   timesheetRepo,
		workerRepo:      workerRepo,
		notificationSvc: notificationSvc,
	}
}

func (s *TimesheetServiceImpl) Create(ctx context.Context, actor user.Actor, req timesheet.CreateTimesheetRequest) (*timesheet.TimesheetResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	w, err := s.workerRepo.GetByID(ctx, req.WorkerID)
	if err != nil {
		return nil, err
	}

	// Workers may only record their own hours; supervisors, clerks and
	// admins may record for any worker.
	if actor.Role == user.RoleWorker {
		if w.UserID == nil || *w.UserID != actor.ID {
			return nil, timesheet.ErrUnauthorized
		}
	} else if !actor.CanVerifyTimesheets() {
		return nil, timesheet.ErrUnauthorized
	}

	date, _ := validator.IsValidDate(req.Date)
	clockIn, _ := validator.IsValidClockTime(req.ClockIn)
	clockOut, _ := validator.IsValidClockTime(req.ClockOut)
	totalHours := timesheet.ShiftHours(clockIn, clockOut)

	allowance := decimal.Zero
	if req.AllowanceAmount != nil {
		allowance = *req.AllowanceAmount
	}

	ts := timesheet.Timesheet{
		WorkerID:        w.ID,
		Date:            date,
		ClockIn:         req.ClockIn,
		ClockOut:        req.ClockOut,
		TotalHours:      totalHours,
		TaskDescription: req.TaskDescription,
		AllowanceAmount: allowance,
		Status:          timesheet.StatusPending,
	}
	if actor.Role == user.RoleSupervisor {
		ts.SupervisorID = &actor.ID
	}

	created, err := s.timesheetRepo.Create(ctx, ts)
	if err != nil {
		return nil, err
	}
	resp := timesheet.ToResponse(created)
	return &resp, nil
}

func (s *TimesheetServiceImpl) GetByID(ctx context.Context, actor user.Actor, id string) (*timesheet.TimesheetResponse, error) {
	ts, err := s.timesheetRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeRead(ctx, actor, ts.WorkerID); err != nil {
		return nil, err
	}
	resp := timesheet.ToResponse(ts)
	return &resp, nil
}

func (s *TimesheetServiceImpl) List(ctx context.Context, actor user.Actor, filter timesheet.Filter) ([]*timesheet.TimesheetResponse, error) {
	// Workers see only their own records regardless of the filter.
	if actor.Role == user.RoleWorker {
		w, err := s.workerRepo.GetByUserID(ctx, actor.ID)
		if err != nil {
			return nil, err
		}
		filter.WorkerID = &w.ID
	}

	sheets, err := s.timesheetRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	responses := make([]*timesheet.TimesheetResponse, 0, len(sheets))
	for _, ts := range sheets {
		resp := timesheet.ToResponse(ts)
		responses = append(responses, &resp)
	}
	return responses, nil
}

func (s *TimesheetServiceImpl) Review(ctx context.Context, actor user.Actor, id string, req timesheet.ReviewTimesheetRequest) (*timesheet.TimesheetResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if !actor.CanVerifyTimesheets() {
		return nil, timesheet.ErrUnauthorized
	}

	newStatus := timesheet.Status(req.Status)
	if !timesheet.StatusPending.CanTransition(newStatus) {
		return nil, timesheet.ErrAlreadyProcessed
	}

	// The status guard on the UPDATE decides races between two reviewers;
	// no read-then-write window.
	updated, err := s.timesheetRepo.UpdateStatus(ctx, id, timesheet.StatusPending, newStatus, actor.ID, req.Reason)
	if err != nil {
		return nil, err
	}

	s.notifyReviewed(ctx, updated)

	resp := timesheet.ToResponse(updated)
	return &resp, nil
}

func (s *TimesheetServiceImpl) authorizeRead(ctx context.Context, actor user.Actor, workerID string) error {
	if actor.Role != user.RoleWorker {
		return nil
	}
	w, err := s.workerRepo.GetByUserID(ctx, actor.ID)
	if err != nil {
		return timesheet.ErrUnauthorized
	}
	if w.ID != workerID {
		return timesheet.ErrUnauthorized
	}
	return nil
}

func (s *TimesheetServiceImpl) notifyReviewed(ctx context.Context, ts timesheet.Timesheet) {
	w, err := s.workerRepo.GetByID(ctx, ts.WorkerID)
	if err != nil || w.UserID == nil {
		return
	}

	message := fmt.Sprintf("Your timesheet for %s was %s.", ts.Date.Format("2 Jan 2006"), ts.Status)
	if ts.Status == timesheet.StatusRejected && ts.RejectionReason != nil {
		message = fmt.Sprintf("%s Reason: %s", message, *ts.RejectionReason)
	}

	// Notification failure never fails the review itself.
	_ = s.notificationSvc.Notify(ctx, &notification.Notification{
		UserID:    *w.UserID,
		Kind:      notification.KindTimesheetReviewed,
		Title:     "Timesheet reviewed",
		Message:   message,
		RefID:     &ts.ID,
		CreatedAt: time.Now(),
	})
}
