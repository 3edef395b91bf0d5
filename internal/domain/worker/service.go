package worker

import (
	"context"

	"github.com/sitepay-hq/sitepay-backend-go/internal/domain/user"
)

type WorkerService interface {
	Create(ctx context.Context, actor user.Actor, req CreateWorkerRequest) (*WorkerResponse, error)
	GetByID(ctx context.Context, actor user.Actor, id string) (*WorkerResponse, error)
	ListActive(ctx context.Context, actor user.Actor) ([]WorkerResponse, error)

	// GetOwnProfile resolves the worker profile linked to the acting user.
	GetOwnProfile(ctx context.Context, actor user.Actor) (*WorkerResponse, error)
}
