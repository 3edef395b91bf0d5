package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/sitepay-hq/sitepay-backend-go/internal/domain/timesheet"
	"github.com/sitepay-hq/sitepay-backend-go/internal/pkg/database"
)

type timesheetRepository struct {
	db *database.DB
}

func NewTimesheetRepository(db *database.DB) timesheet.TimesheetRepository {
	return &timesheetRepository{db: db}
}

const timesheetColumns = `t.id, t.worker_id, t.supervisor_id, t.date, t.clock_in, t.clock_out,
	t.total_hours, t.task_description, t.allowance_amount, t.status,
	t.approved_by, t.approved_at, t.rejection_reason, t.created_at, t.updated_at,
	w.full_name, w.position`

func (r *timesheetRepository) Create(ctx context.Context, ts timesheet.Timesheet) (timesheet.Timesheet, error) {
	q := GetQuerier(ctx, r.db)

	if ts.ID == "" {
		ts.ID = uuid.New().String()
	}
	now := time.Now()
	ts.CreatedAt = now
	ts.UpdatedAt = now

	query := `
		INSERT INTO worker_timesheets (id, worker_id, supervisor_id, date, clock_in, clock_out,
			total_hours, task_description, allowance_amount, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := q.Exec(ctx, query,
		ts.ID, ts.WorkerID, ts.SupervisorID, ts.Date, ts.ClockIn, ts.ClockOut,
		ts.TotalHours, ts.TaskDescription, ts.AllowanceAmount, string(ts.Status),
		ts.CreatedAt, ts.UpdatedAt,
	)
	if err != nil {
		return timesheet.Timesheet{}, fmt.Errorf("failed to create timesheet: %w", err)
	}
	return ts, nil
}

func (r *timesheetRepository) GetByID(ctx context.Context, id string) (timesheet.Timesheet, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM worker_timesheets t
		JOIN workers w ON w.id = t.worker_id
		WHERE t.id = $1
	`, timesheetColumns)
	return scanTimesheet(q.QueryRow(ctx, query, id))
}

func (r *timesheetRepository) List(ctx context.Context, filter timesheet.Filter) ([]timesheet.Timesheet, error) {
	q := GetQuerier(ctx, r.db)

	where := "1=1"
	args := []interface{}{}
	argIndex := 1

	if filter.WorkerID != nil {
		where += fmt.Sprintf(" AND t.worker_id = $%d", argIndex)
		args = append(args, *filter.WorkerID)
		argIndex++
	}
	if len(filter.Status) > 0 {
		statuses := make([]string, 0, len(filter.Status))
		for _, s := range filter.Status {
			statuses = append(statuses, string(s))
		}
		where += fmt.Sprintf(" AND t.status = ANY($%d)", argIndex)
		args = append(args, statuses)
		argIndex++
	}
	if filter.DateFrom != nil {
		where += fmt.Sprintf(" AND t.date >= $%d", argIndex)
		args = append(args, *filter.DateFrom)
		argIndex++
	}
	if filter.DateTo != nil {
		where += fmt.Sprintf(" AND t.date <= $%d", argIndex)
		args = append(args, *filter.DateTo)
		argIndex++
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM worker_timesheets t
		JOIN workers w ON w.id = t.worker_id
		WHERE %s
		ORDER BY t.date DESC, t.created_at DESC
	`, timesheetColumns, where)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query timesheets: %w", err)
	}
	defer rows.Close()

	var sheets []timesheet.Timesheet
	for rows.Next() {
		ts, err := scanTimesheet(rows)
		if err != nil {
			return nil, err
		}
		sheets = append(sheets, ts)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate timesheets: %w", err)
	}
	return sheets, nil
}

// UpdateStatus guards on the expected current status so two concurrent
// reviewers cannot both win; the second UPDATE matches zero rows.
func (r *timesheetRepository) UpdateStatus(ctx context.Context, id string, expectedStatus, newStatus timesheet.Status, reviewerID string, reason *string) (timesheet.Timesheet, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE worker_timesheets
		SET status = $1, approved_by = $2, approved_at = $3, rejection_reason = $4, updated_at = $3
		WHERE id = $5 AND status = $6
	`
	tag, err := q.Exec(ctx, query, string(newStatus), reviewerID, time.Now(), reason, id, string(expectedStatus))
	if err != nil {
		return timesheet.Timesheet{}, fmt.Errorf("failed to update timesheet status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		if _, getErr := r.GetByID(ctx, id); getErr == timesheet.ErrTimesheetNotFound {
			return timesheet.Timesheet{}, timesheet.ErrTimesheetNotFound
		}
		return timesheet.Timesheet{}, timesheet.ErrAlreadyProcessed
	}
	return r.GetByID(ctx, id)
}

func scanTimesheet(row pgx.Row) (timesheet.Timesheet, error) {
	var ts timesheet.Timesheet
	var status string
	err := row.Scan(
		&ts.ID, &ts.WorkerID, &ts.SupervisorID, &ts.Date, &ts.ClockIn, &ts.ClockOut,
		&ts.TotalHours, &ts.TaskDescription, &ts.AllowanceAmount, &status,
		&ts.ApprovedBy, &ts.ApprovedAt, &ts.RejectionReason, &ts.CreatedAt, &ts.UpdatedAt,
		&ts.WorkerName, &ts.WorkerPosition,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return timesheet.Timesheet{}, timesheet.ErrTimesheetNotFound
		}
		return timesheet.Timesheet{}, fmt.Errorf("failed to get timesheet: %w", err)
	}
	ts.Status = timesheet.Status(status)
	return ts, nil
}
