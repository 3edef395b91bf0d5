package worker

import "errors"

var (
	ErrWorkerNotFound     = errors.New("worker not found")
	ErrEmployeeCodeExists = errors.New("employee code already exists")
	ErrNegativeHourlyRate = errors.New("hourly rate must be non-negative")
)
