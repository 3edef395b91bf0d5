package worker

import "context"

type WorkerRepository interface {
	Create(ctx context.Context, w Worker) (Worker, error)
	GetByID(ctx context.Context, id string) (Worker, error)
	GetByUserID(ctx context.Context, userID string) (Worker, error)
	GetByIDs(ctx context.Context, ids []string) ([]Worker, error)
	ListActive(ctx context.Context) ([]Worker, error)
}
