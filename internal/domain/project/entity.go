package project

import "time"

type Status string

const (
	StatusActive    Status = "active"
	StatusOnHold    Status = "on-hold"
	StatusCompleted Status = "completed"
)

type Project struct {
	ID        string
	Name      string
	Location  *string
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Assignment links a worker to a project with a role. It decides which
// projects a site-timesheet author may submit against.
type Assignment struct {
	ID        string
	ProjectID string
	UserID    string
	Role      string
	CreatedAt time.Time

	// Joined fields
	ProjectName     *string
	ProjectLocation *string
	ProjectStatus   *Status
}

const AssignmentRoleSupervisor = "supervisor"
