package project

import "context"

type ProjectRepository interface {
	Create(ctx context.Context, p Project) (Project, error)
	GetByID(ctx context.Context, id string) (Project, error)
	List(ctx context.Context) ([]Project, error)

	CreateAssignment(ctx context.Context, a Assignment) (Assignment, error)
	ListAssignmentsByUser(ctx context.Context, userID string) ([]Assignment, error)
	IsAssigned(ctx context.Context, projectID, userID string) (bool, error)
}
