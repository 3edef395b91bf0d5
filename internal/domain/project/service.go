package project

import (
	"context"

	"github.com/sitepay-hq/sitepay-backend-go/internal/domain/user"
)

type ProjectService interface {
	Create(ctx context.Context, actor user.Actor, req CreateProjectRequest) (*ProjectResponse, error)
	GetByID(ctx context.Context, actor user.Actor, id string) (*ProjectResponse, error)
	List(ctx context.Context, actor user.Actor) ([]ProjectResponse, error)

	Assign(ctx context.Context, actor user.Actor, req AssignRequest) (*AssignmentResponse, error)
	ListOwnAssignments(ctx context.Context, actor user.Actor) ([]AssignmentResponse, error)
}
