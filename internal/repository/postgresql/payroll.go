package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/sitepay-hq/sitepay-backend-go/internal/domain/payroll"
	"github.com/sitepay-hq/sitepay-backend-go/internal/pkg/database"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

// CreateCycle inserts the cycle row and batch-inserts its payslips. The
// caller wraps it in WithTransaction together with the finalize lock and
// the overlap re-check.
func (r *payrollRepository) CreateCycle(ctx context.Context, cycle *payroll.Cycle, payslips []*payroll.Payslip) error {
	q := GetQuerier(ctx, r.db)

	if cycle.ID == "" {
		cycle.ID = uuid.New().String()
	}
	now := time.Now()
	cycle.CreatedAt = now
	cycle.UpdatedAt = now

	cycleQuery := `
		INSERT INTO payroll_cycles (id, period_start, period_end, status, total_workers,
			total_gross, total_deductions, total_net, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := q.Exec(ctx, cycleQuery,
		cycle.ID, cycle.PeriodStart, cycle.PeriodEnd, string(cycle.Status), cycle.TotalWorkers,
		cycle.TotalGross, cycle.TotalDeductions, cycle.TotalNet, cycle.CreatedBy,
		cycle.CreatedAt, cycle.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create payroll cycle: %w", err)
	}

	if len(payslips) == 0 {
		return nil
	}

	const cols = 17
	valueStrings := make([]string, 0, len(payslips))
	valueArgs := make([]interface{}, 0, len(payslips)*cols)

	for i, p := range payslips {
		if p.ID == "" {
			p.ID = uuid.New().String()
		}
		p.CycleID = cycle.ID
		p.CreatedAt = now

		base := i * cols
		placeholders := make([]string, cols)
		for j := range placeholders {
			placeholders[j] = fmt.Sprintf("$%d", base+j+1)
		}
		valueStrings = append(valueStrings, "("+strings.Join(placeholders, ", ")+")")
		valueArgs = append(valueArgs,
			p.ID, p.CycleID, p.WorkerID, p.PeriodStart, p.PeriodEnd,
			p.HourlyRate, p.ApprovedHours, p.OvertimeHours, p.RegularPay, p.OvertimePay,
			p.AllowanceTotal, p.GrossEarnings, p.FortnightlyPaye, p.NasfundDeduction,
			p.OtherDeductions, p.NetPay, p.CreatedAt,
		)
	}

	payslipQuery := fmt.Sprintf(`
		INSERT INTO payslips (id, cycle_id, worker_id, period_start, period_end,
			hourly_rate, approved_hours, overtime_hours, regular_pay, overtime_pay,
			allowance_total, gross_earnings, fortnightly_paye, nasfund_deduction,
			other_deductions, net_pay, created_at)
		VALUES %s
	`, strings.Join(valueStrings, ", "))

	if _, err := q.Exec(ctx, payslipQuery, valueArgs...); err != nil {
		return fmt.Errorf("failed to create payslips: %w", err)
	}
	return nil
}

const cycleColumns = `id, period_start, period_end, status, total_workers,
	total_gross, total_deductions, total_net, created_by, created_at, updated_at`

func (r *payrollRepository) GetCycleByID(ctx context.Context, id string) (*payroll.Cycle, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM payroll_cycles WHERE id = $1`, cycleColumns)
	return scanCycle(q.QueryRow(ctx, query, id))
}

func (r *payrollRepository) ListCycles(ctx context.Context) ([]*payroll.Cycle, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM payroll_cycles ORDER BY period_start DESC`, cycleColumns)
	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query payroll cycles: %w", err)
	}
	defer rows.Close()

	var cycles []*payroll.Cycle
	for rows.Next() {
		c, err := scanCycle(rows)
		if err != nil {
			return nil, err
		}
		cycles = append(cycles, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payroll cycles: %w", err)
	}
	return cycles, nil
}

func (r *payrollRepository) AdvanceCycleStatus(ctx context.Context, id string, expected, next payroll.CycleStatus) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_cycles
		SET status = $1, updated_at = $2
		WHERE id = $3 AND status = $4
	`
	tag, err := q.Exec(ctx, query, string(next), time.Now(), id, string(expected))
	if err != nil {
		return fmt.Errorf("failed to advance payroll cycle: %w", err)
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM payroll_cycles WHERE id = $1)`, id).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check payroll cycle: %w", err)
		}
		if !exists {
			return payroll.ErrCycleNotFound
		}
		return payroll.ErrAlreadyAdvanced
	}
	return nil
}

func (r *payrollRepository) DeleteCycle(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	// Payslips cascade via FK. Only a pending_approval cycle may go.
	query := `DELETE FROM payroll_cycles WHERE id = $1 AND status = 'pending_approval'`
	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete payroll cycle: %w", err)
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM payroll_cycles WHERE id = $1)`, id).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check payroll cycle: %w", err)
		}
		if !exists {
			return payroll.ErrCycleNotFound
		}
		return payroll.ErrCycleNotDeletable
	}
	return nil
}

const payslipColumns = `p.id, p.cycle_id, p.worker_id, p.period_start, p.period_end,
	p.hourly_rate, p.approved_hours, p.overtime_hours, p.regular_pay, p.overtime_pay,
	p.allowance_total, p.gross_earnings, p.fortnightly_paye, p.nasfund_deduction,
	p.other_deductions, p.net_pay, p.created_at,
	w.full_name, w.employee_code, w.bank_name, w.bank_account`

func (r *payrollRepository) GetPayslipByID(ctx context.Context, id string) (*payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM payslips p
		JOIN workers w ON w.id = p.worker_id
		WHERE p.id = $1
	`, payslipColumns)
	return scanPayslip(q.QueryRow(ctx, query, id))
}

func (r *payrollRepository) ListPayslipsByCycle(ctx context.Context, cycleID string) ([]*payroll.Payslip, error) {
	return r.listPayslips(ctx, "p.cycle_id = $1", cycleID)
}

func (r *payrollRepository) ListPayslipsByWorker(ctx context.Context, workerID string) ([]*payroll.Payslip, error) {
	return r.listPayslips(ctx, "p.worker_id = $1", workerID)
}

func (r *payrollRepository) listPayslips(ctx context.Context, where string, arg interface{}) ([]*payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM payslips p
		JOIN workers w ON w.id = p.worker_id
		WHERE %s
		ORDER BY p.period_start DESC, w.full_name
	`, payslipColumns, where)

	rows, err := q.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to query payslips: %w", err)
	}
	defer rows.Close()

	var slips []*payroll.Payslip
	for rows.Next() {
		p, err := scanPayslip(rows)
		if err != nil {
			return nil, err
		}
		slips = append(slips, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payslips: %w", err)
	}
	return slips, nil
}

// finalizeLockKey identifies the advisory lock serializing payroll
// finalization. pg_advisory_xact_lock holds it until the surrounding
// transaction ends.
const finalizeLockKey = 824041

func (r *payrollRepository) AcquireFinalizeLock(ctx context.Context) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, int64(finalizeLockKey)); err != nil {
		return fmt.Errorf("failed to acquire payroll finalize lock: %w", err)
	}
	return nil
}

func (r *payrollRepository) HasOverlappingPayslip(ctx context.Context, workerID string, start, end time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS(
			SELECT 1 FROM payslips
			WHERE worker_id = $1 AND period_start <= $2 AND period_end >= $3
		)
	`
	var exists bool
	if err := q.QueryRow(ctx, query, workerID, end, start).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check overlapping payslip: %w", err)
	}
	return exists, nil
}

func scanCycle(row pgx.Row) (*payroll.Cycle, error) {
	var c payroll.Cycle
	var status string
	err := row.Scan(
		&c.ID, &c.PeriodStart, &c.PeriodEnd, &status, &c.TotalWorkers,
		&c.TotalGross, &c.TotalDeductions, &c.TotalNet, &c.CreatedBy, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, payroll.ErrCycleNotFound
		}
		return nil, fmt.Errorf("failed to get payroll cycle: %w", err)
	}
	c.Status = payroll.CycleStatus(status)
	return &c, nil
}

func scanPayslip(row pgx.Row) (*payroll.Payslip, error) {
	var p payroll.Payslip
	err := row.Scan(
		&p.ID, &p.CycleID, &p.WorkerID, &p.PeriodStart, &p.PeriodEnd,
		&p.HourlyRate, &p.ApprovedHours, &p.OvertimeHours, &p.RegularPay, &p.OvertimePay,
		&p.AllowanceTotal, &p.GrossEarnings, &p.FortnightlyPaye, &p.NasfundDeduction,
		&p.OtherDeductions, &p.NetPay, &p.CreatedAt,
		&p.WorkerName, &p.WorkerCode, &p.WorkerBank, &p.WorkerBankNo,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, payroll.ErrPayslipNotFound
		}
		return nil, fmt.Errorf("failed to get payslip: %w", err)
	}
	return &p, nil
}
