package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/sitepay-hq/sitepay-backend-go/internal/domain/worker"
	"github.com/sitepay-hq/sitepay-backend-go/internal/pkg/database"
)

type workerRepository struct {
	db *database.DB
}

func NewWorkerRepository(db *database.DB) worker.WorkerRepository {
	return &workerRepository{db: db}
}

const workerColumns = `id, user_id, full_name, employee_code, position, department,
	employment_type, project_site, hourly_rate, is_resident, super_enabled,
	bank_name, bank_account, account_status, is_active, created_at, updated_at`

func (r *workerRepository) Create(ctx context.Context, w worker.Worker) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	if w.ID == "" {
		w.ID = uuid.New().String()
	}
	now := time.Now()
	w.CreatedAt = now
	w.UpdatedAt = now

	query := `
		INSERT INTO workers (id, user_id, full_name, employee_code, position, department,
			employment_type, project_site, hourly_rate, is_resident, super_enabled,
			bank_name, bank_account, account_status, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`
	_, err := q.Exec(ctx, query,
		w.ID, w.UserID, w.FullName, w.EmployeeCode, w.Position, w.Department,
		string(w.EmploymentType), w.ProjectSite, w.HourlyRate, w.IsResident, w.SuperEnabled,
		w.BankName, w.BankAccount, string(w.AccountStatus), w.IsActive, w.CreatedAt, w.UpdatedAt,
	)
	if err != nil {
		return worker.Worker{}, fmt.Errorf("failed to create worker: %w", err)
	}
	return w, nil
}

func (r *workerRepository) GetByID(ctx context.Context, id string) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)
	query := fmt.Sprintf(`SELECT %s FROM workers WHERE id = $1`, workerColumns)
	return scanWorker(q.QueryRow(ctx, query, id))
}

func (r *workerRepository) GetByUserID(ctx context.Context, userID string) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)
	query := fmt.Sprintf(`SELECT %s FROM workers WHERE user_id = $1`, workerColumns)
	return scanWorker(q.QueryRow(ctx, query, userID))
}

func (r *workerRepository) GetByIDs(ctx context.Context, ids []string) ([]worker.Worker, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM workers WHERE id = ANY($1)`, workerColumns)
	rows, err := q.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to query workers: %w", err)
	}
	defer rows.Close()

	return scanWorkers(rows)
}

func (r *workerRepository) ListActive(ctx context.Context) ([]worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s FROM workers
		WHERE is_active = true AND account_status = 'approved'
		ORDER BY full_name
	`, workerColumns)
	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query active workers: %w", err)
	}
	defer rows.Close()

	return scanWorkers(rows)
}

func scanWorker(row pgx.Row) (worker.Worker, error) {
	var w worker.Worker
	var employmentType, accountStatus string
	err := row.Scan(
		&w.ID, &w.UserID, &w.FullName, &w.EmployeeCode, &w.Position, &w.Department,
		&employmentType, &w.ProjectSite, &w.HourlyRate, &w.IsResident, &w.SuperEnabled,
		&w.BankName, &w.BankAccount, &accountStatus, &w.IsActive, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return worker.Worker{}, worker.ErrWorkerNotFound
		}
		return worker.Worker{}, fmt.Errorf("failed to get worker: %w", err)
	}
	w.EmploymentType = worker.EmploymentType(employmentType)
	w.AccountStatus = worker.AccountStatus(accountStatus)
	return w, nil
}

func scanWorkers(rows pgx.Rows) ([]worker.Worker, error) {
	var workers []worker.Worker
	for rows.Next() {
		w, err := scanWorker(rows)
		if err != nil {
			return nil, err
		}
		workers = append(workers, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate workers: %w", err)
	}
	return workers, nil
}
