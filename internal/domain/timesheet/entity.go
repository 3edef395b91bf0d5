package timesheet

import (
	"time"

	"github.com/shopspring/decimal"
)

// Timesheet is one clock-in/clock-out record for one worker on one date.
// It is never deleted; review only moves it through the status machine.
type Timesheet struct {
	ID              string
	WorkerID        string
	SupervisorID    *string
	Date            time.Time
	ClockIn         string // "HH:MM"
	ClockOut        string // "HH:MM"
	TotalHours      decimal.Decimal
	TaskDescription *string
	AllowanceAmount decimal.Decimal
	Status          Status
	ApprovedBy      *string
	ApprovedAt      *time.Time
	RejectionReason *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Joined fields
	WorkerName     *string
	WorkerPosition *string
}

// ShiftHours derives worked hours from wall-clock bounds, rounded to two
// decimals. A clock-out earlier than clock-in means the shift crossed
// midnight into the next day.
func ShiftHours(clockIn, clockOut time.Time) decimal.Decimal {
	span := clockOut.Sub(clockIn)
	if span < 0 {
		span += 24 * time.Hour
	}
	return decimal.NewFromFloat(span.Hours()).Round(2)
}
