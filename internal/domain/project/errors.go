package project

import "errors"

var (
	ErrProjectNotFound    = errors.New("project not found")
	ErrProjectNameExists  = errors.New("project name already exists")
	ErrNotAssigned        = errors.New("user is not assigned to this project")
	ErrAlreadyAssigned    = errors.New("user is already assigned to this project")
	ErrInvalidStatus      = errors.New("invalid project status")
	ErrAssignmentNotFound = errors.New("project assignment not found")
)
