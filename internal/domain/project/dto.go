package project

import "github.com/sitepay-hq/sitepay-backend-go/internal/pkg/validator"

type CreateProjectRequest struct {
	Name     string  `json:"name"`
	Location *string `json:"location,omitempty"`
	Status   *string `json:"status,omitempty"`
}

func (r *CreateProjectRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, []string{
		string(StatusActive), string(StatusOnHold), string(StatusCompleted),
	}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be active, on-hold or completed"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AssignRequest struct {
	ProjectID string  `json:"project_id"`
	UserID    string  `json:"user_id"`
	Role      *string `json:"role,omitempty"`
}

func (r *AssignRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ProjectID) {
		errs = append(errs, validator.ValidationError{Field: "project_id", Message: "must be a valid UUID"})
	}
	if !validator.IsValidUUID(r.UserID) {
		errs = append(errs, validator.ValidationError{Field: "user_id", Message: "must be a valid UUID"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ProjectResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Location *string `json:"location,omitempty"`
	Status   string  `json:"status"`
}

type AssignmentResponse struct {
	ID              string  `json:"id"`
	ProjectID       string  `json:"project_id"`
	UserID          string  `json:"user_id"`
	Role            string  `json:"role"`
	ProjectName     *string `json:"project_name,omitempty"`
	ProjectLocation *string `json:"project_location,omitempty"`
}

func ToResponse(p Project) ProjectResponse {
	return ProjectResponse{
		ID:       p.ID,
		Name:     p.Name,
		Location: p.Location,
		Status:   string(p.Status),
	}
}

func ToAssignmentResponse(a Assignment) AssignmentResponse {
	return AssignmentResponse{
		ID:              a.ID,
		ProjectID:       a.ProjectID,
		UserID:          a.UserID,
		Role:            a.Role,
		ProjectName:     a.ProjectName,
		ProjectLocation: a.ProjectLocation,
	}
}
