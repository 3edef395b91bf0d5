package worker

import (
	"context"

	"github.com/sitepay-hq/sitepay-backend-go/internal/domain/user"
	"github.com/sitepay-hq/sitepay-backend-go/internal/domain/worker"
)

type WorkerServiceImpl struct {
	workerRepo worker.WorkerRepository
}

func NewWorkerService(workerRepo worker.WorkerRepository) worker.WorkerService {
	return &WorkerServiceImpl{workerRepo: workerRepo}
}

func (s *WorkerServiceImpl) Create(ctx context.Context, actor user.Actor, req worker.CreateWorkerRequest) (*worker.WorkerResponse, error) {
	if actor.Role != user.RoleAdmin {
		return nil, user.ErrAdminPrivilegeRequired
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	w := worker.Worker{
		UserID:         req.UserID,
		FullName:       req.FullName,
		EmployeeCode:   req.EmployeeCode,
		Position:       req.Position,
		Department:     req.Department,
		EmploymentType: worker.EmploymentType(req.EmploymentType),
		ProjectSite:    req.ProjectSite,
		HourlyRate:     req.HourlyRate,
		IsResident:     req.IsResident,
		SuperEnabled:   req.SuperEnabled,
		BankName:       req.BankName,
		BankAccount:    req.BankAccount,
		AccountStatus:  worker.AccountApproved,
		IsActive:       true,
	}
	created, err := s.workerRepo.Create(ctx, w)
	if err != nil {
		return nil, err
	}
	resp := worker.ToResponse(created)
	return &resp, nil
}

func (s *WorkerServiceImpl) GetByID(ctx context.Context, actor user.Actor, id string) (*worker.WorkerResponse, error) {
	if actor.Role == user.RoleWorker {
		// Workers can only see themselves; resolve and compare.
		own, err := s.workerRepo.GetByUserID(ctx, actor.ID)
		if err != nil || own.ID != id {
			return nil, user.ErrInsufficientPermissions
		}
	}
	w, err := s.workerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := worker.ToResponse(w)
	return &resp, nil
}

func (s *WorkerServiceImpl) ListActive(ctx context.Context, actor user.Actor) ([]worker.WorkerResponse, error) {
	if actor.Role == user.RoleWorker {
		return nil, user.ErrInsufficientPermissions
	}
	workers, err := s.workerRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	return worker.ToResponses(workers), nil
}

func (s *WorkerServiceImpl) GetOwnProfile(ctx context.Context, actor user.Actor) (*worker.WorkerResponse, error) {
	w, err := s.workerRepo.GetByUserID(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	resp := worker.ToResponse(w)
	return &resp, nil
}
