package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/sitepay-hq/sitepay-backend-go/internal/domain/project"
	"github.com/sitepay-hq/sitepay-backend-go/internal/pkg/database"
)

type projectRepository struct {
	db *database.DB
}

func NewProjectRepository(db *database.DB) project.ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) Create(ctx context.Context, p project.Project) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	query := `
		INSERT INTO projects (id, name, location, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := q.Exec(ctx, query, p.ID, p.Name, p.Location, string(p.Status), p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return project.Project{}, fmt.Errorf("failed to create project: %w", err)
	}
	return p, nil
}

func (r *projectRepository) GetByID(ctx context.Context, id string) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, name, location, status, created_at, updated_at FROM projects WHERE id = $1`

	var p project.Project
	var status string
	err := q.QueryRow(ctx, query, id).Scan(&p.ID, &p.Name, &p.Location, &status, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return project.Project{}, project.ErrProjectNotFound
		}
		return project.Project{}, fmt.Errorf("failed to get project: %w", err)
	}
	p.Status = project.Status(status)
	return p, nil
}

func (r *projectRepository) List(ctx context.Context) ([]project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, name, location, status, created_at, updated_at FROM projects ORDER BY name`
	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer rows.Close()

	var projects []project.Project
	for rows.Next() {
		var p project.Project
		var status string
		if err := rows.Scan(&p.ID, &p.Name, &p.Location, &status, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		p.Status = project.Status(status)
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate projects: %w", err)
	}
	return projects, nil
}

func (r *projectRepository) CreateAssignment(ctx context.Context, a project.Assignment) (project.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	a.CreatedAt = time.Now()

	query := `
		INSERT INTO project_assignments (id, project_id, user_id, role, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (project_id, user_id) DO NOTHING
	`
	tag, err := q.Exec(ctx, query, a.ID, a.ProjectID, a.UserID, a.Role, a.CreatedAt)
	if err != nil {
		return project.Assignment{}, fmt.Errorf("failed to create assignment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return project.Assignment{}, project.ErrAlreadyAssigned
	}
	return a, nil
}

func (r *projectRepository) ListAssignmentsByUser(ctx context.Context, userID string) ([]project.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.project_id, a.user_id, a.role, a.created_at,
			p.name, p.location, p.status
		FROM project_assignments a
		JOIN projects p ON p.id = a.project_id
		WHERE a.user_id = $1
		ORDER BY p.name
	`
	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query assignments: %w", err)
	}
	defer rows.Close()

	var assignments []project.Assignment
	for rows.Next() {
		var a project.Assignment
		var status string
		if err := rows.Scan(&a.ID, &a.ProjectID, &a.UserID, &a.Role, &a.CreatedAt,
			&a.ProjectName, &a.ProjectLocation, &status); err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		ps := project.Status(status)
		a.ProjectStatus = &ps
		assignments = append(assignments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate assignments: %w", err)
	}
	return assignments, nil
}

func (r *projectRepository) IsAssigned(ctx context.Context, projectID, userID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT EXISTS(SELECT 1 FROM project_assignments WHERE project_id = $1 AND user_id = $2)`
	var exists bool
	if err := q.QueryRow(ctx, query, projectID, userID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check assignment: %w", err)
	}
	return exists, nil
}
