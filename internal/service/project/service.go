package project

import (
	"context"

	"github.com/sitepay-hq/sitepay-backend-go/internal/domain/project"
	"github.com/sitepay-hq/sitepay-backend-go/internal/domain/user"
)

type ProjectServiceImpl struct {
	projectRepo project.ProjectRepository
	userRepo    user.UserRepository
}

func NewProjectService(projectRepo project.ProjectRepository, userRepo user.UserRepository) project.ProjectService {
	return &ProjectServiceImpl{
		projectRepo: projectRepo,
		userRepo:    userRepo,
	}
}

func (s *ProjectServiceImpl) Create(ctx context.Context, actor user.Actor, req project.CreateProjectRequest) (*project.ProjectResponse, error) {
	if actor.Role != user.RoleAdmin {
		return nil, user.ErrAdminPrivilegeRequired
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p := project.Project{
		Name:     req.Name,
		Location: req.Location,
		Status:   project.StatusActive,
	}
	if req.Status != nil {
		p.Status = project.Status(*req.Status)
	}

	created, err := s.projectRepo.Create(ctx, p)
	if err != nil {
		return nil, err
	}
	resp := project.ToResponse(created)
	return &resp, nil
}

func (s *ProjectServiceImpl) GetByID(ctx context.Context, actor user.Actor, id string) (*project.ProjectResponse, error) {
	p, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := project.ToResponse(p)
	return &resp, nil
}

func (s *ProjectServiceImpl) List(ctx context.Context, actor user.Actor) ([]project.ProjectResponse, error) {
	projects, err := s.projectRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]project.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		responses = append(responses, project.ToResponse(p))
	}
	return responses, nil
}

func (s *ProjectServiceImpl) Assign(ctx context.Context, actor user.Actor, req project.AssignRequest) (*project.AssignmentResponse, error) {
	if actor.Role != user.RoleAdmin {
		return nil, user.ErrAdminPrivilegeRequired
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.projectRepo.GetByID(ctx, req.ProjectID); err != nil {
		return nil, err
	}
	if _, err := s.userRepo.GetByID(ctx, req.UserID); err != nil {
		return nil, err
	}

	role := project.AssignmentRoleSupervisor
	if req.Role != nil {
		role = *req.Role
	}
	a, err := s.projectRepo.CreateAssignment(ctx, project.Assignment{
		ProjectID: req.ProjectID,
		UserID:    req.UserID,
		Role:      role,
	})
	if err != nil {
		return nil, err
	}
	resp := project.ToAssignmentResponse(a)
	return &resp, nil
}

func (s *ProjectServiceImpl) ListOwnAssignments(ctx context.Context, actor user.Actor) ([]project.AssignmentResponse, error) {
	assignments, err := s.projectRepo.ListAssignmentsByUser(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	responses := make([]project.AssignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		responses = append(responses, project.ToAssignmentResponse(a))
	}
	return responses, nil
}
