package postgresql

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/sitepay-hq/sitepay-backend-go/internal/domain/sitetimesheet"
	"github.com/sitepay-hq/sitepay-backend-go/internal/pkg/database"
)

type siteTimesheetRepository struct {
	db *database.DB
}

func NewSiteTimesheetRepository(db *database.DB) sitetimesheet.SiteTimesheetRepository {
	return &siteTimesheetRepository{db: db}
}

const siteTimesheetColumns = `s.id, s.project_id, s.foreman_id, s.date, s.shift, s.number_of_workers,
	s.equipment, s.materials, s.production, s.remarks, s.status,
	s.authorized_by, s.authorized_at, s.rejection_reason, s.created_at, s.updated_at,
	p.name, p.location, COALESCE(fw.full_name, u.email)`

func (r *siteTimesheetRepository) Create(ctx context.Context, st *sitetimesheet.SiteTimesheet) error {
	q := GetQuerier(ctx, r.db)

	if st.ID == "" {
		st.ID = uuid.New().String()
	}
	now := time.Now()
	st.CreatedAt = now
	st.UpdatedAt = now

	equipmentJSON, materialsJSON, productionJSON, err := marshalLines(st)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO site_timesheets (id, project_id, foreman_id, date, shift, number_of_workers,
			equipment, materials, production, remarks, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	_, err = q.Exec(ctx, query,
		st.ID, st.ProjectID, st.ForemanID, st.Date, string(st.Shift), st.NumberOfWorkers,
		equipmentJSON, materialsJSON, productionJSON, st.Remarks, string(st.Status),
		st.CreatedAt, st.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create site timesheet: %w", err)
	}
	return nil
}

func (r *siteTimesheetRepository) GetByID(ctx context.Context, id string) (*sitetimesheet.SiteTimesheet, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM site_timesheets s
		JOIN projects p ON p.id = s.project_id
		JOIN users u ON u.id = s.foreman_id
		LEFT JOIN workers fw ON fw.user_id = s.foreman_id
		WHERE s.id = $1
	`, siteTimesheetColumns)
	return scanSiteTimesheet(q.QueryRow(ctx, query, id))
}

func (r *siteTimesheetRepository) List(ctx context.Context, filter sitetimesheet.Filter) ([]*sitetimesheet.SiteTimesheet, error) {
	q := GetQuerier(ctx, r.db)

	where := "1=1"
	args := []interface{}{}
	argIndex := 1

	if filter.ProjectID != nil {
		where += fmt.Sprintf(" AND s.project_id = $%d", argIndex)
		args = append(args, *filter.ProjectID)
		argIndex++
	}
	if filter.ForemanID != nil {
		where += fmt.Sprintf(" AND s.foreman_id = $%d", argIndex)
		args = append(args, *filter.ForemanID)
		argIndex++
	}
	if filter.Status != nil {
		where += fmt.Sprintf(" AND s.status = $%d", argIndex)
		args = append(args, string(*filter.Status))
		argIndex++
	}
	if filter.DateFrom != nil {
		where += fmt.Sprintf(" AND s.date >= $%d", argIndex)
		args = append(args, *filter.DateFrom)
		argIndex++
	}
	if filter.DateTo != nil {
		where += fmt.Sprintf(" AND s.date <= $%d", argIndex)
		args = append(args, *filter.DateTo)
		argIndex++
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM site_timesheets s
		JOIN projects p ON p.id = s.project_id
		JOIN users u ON u.id = s.foreman_id
		LEFT JOIN workers fw ON fw.user_id = s.foreman_id
		WHERE %s
		ORDER BY s.date DESC, s.created_at DESC
	`, siteTimesheetColumns, where)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query site timesheets: %w", err)
	}
	defer rows.Close()

	var sheets []*sitetimesheet.SiteTimesheet
	for rows.Next() {
		st, err := scanSiteTimesheet(rows)
		if err != nil {
			return nil, err
		}
		sheets = append(sheets, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate site timesheets: %w", err)
	}
	return sheets, nil
}

// Update rewrites the editable fields of a draft record.
func (r *siteTimesheetRepository) Update(ctx context.Context, st *sitetimesheet.SiteTimesheet) error {
	q := GetQuerier(ctx, r.db)

	equipmentJSON, materialsJSON, productionJSON, err := marshalLines(st)
	if err != nil {
		return err
	}

	query := `
		UPDATE site_timesheets
		SET project_id = $1, date = $2, shift = $3, number_of_workers = $4,
			equipment = $5, materials = $6, production = $7, remarks = $8, updated_at = $9
		WHERE id = $10 AND status = 'draft'
	`
	tag, err := q.Exec(ctx, query,
		st.ProjectID, st.Date, string(st.Shift), st.NumberOfWorkers,
		equipmentJSON, materialsJSON, productionJSON, st.Remarks, time.Now(), st.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update site timesheet: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return r.classifyMiss(ctx, st.ID, sitetimesheet.ErrNotDraft)
	}
	return nil
}

func (r *siteTimesheetRepository) Submit(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE site_timesheets
		SET status = 'submitted', updated_at = $1
		WHERE id = $2 AND status = 'draft'
	`
	tag, err := q.Exec(ctx, query, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to submit site timesheet: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return r.classifyMiss(ctx, id, sitetimesheet.ErrNotDraft)
	}
	return nil
}

func (r *siteTimesheetRepository) Authorize(ctx context.Context, id, authorizerID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE site_timesheets
		SET status = 'authorized', authorized_by = $1, authorized_at = $2, updated_at = $2
		WHERE id = $3 AND status = 'submitted'
	`
	tag, err := q.Exec(ctx, query, authorizerID, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to authorize site timesheet: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return r.classifyMiss(ctx, id, sitetimesheet.ErrAlreadyProcessed)
	}
	return nil
}

func (r *siteTimesheetRepository) Reject(ctx context.Context, id, authorizerID, reason string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE site_timesheets
		SET status = 'rejected', authorized_by = $1, authorized_at = $2, rejection_reason = $3, updated_at = $2
		WHERE id = $4 AND status = 'submitted'
	`
	tag, err := q.Exec(ctx, query, authorizerID, time.Now(), reason, id)
	if err != nil {
		return fmt.Errorf("failed to reject site timesheet: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return r.classifyMiss(ctx, id, sitetimesheet.ErrAlreadyProcessed)
	}
	return nil
}

// classifyMiss distinguishes "row gone" from "row in the wrong status"
// after a zero-row guarded UPDATE.
func (r *siteTimesheetRepository) classifyMiss(ctx context.Context, id string, statusErr error) error {
	var exists bool
	q := GetQuerier(ctx, r.db)
	if err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM site_timesheets WHERE id = $1)`, id).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check site timesheet: %w", err)
	}
	if !exists {
		return sitetimesheet.ErrSiteTimesheetNotFound
	}
	return statusErr
}

func marshalLines(st *sitetimesheet.SiteTimesheet) (equipment, materials, production []byte, err error) {
	if equipment, err = json.Marshal(st.Equipment); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to marshal equipment lines: %w", err)
	}
	if materials, err = json.Marshal(st.Materials); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to marshal material lines: %w", err)
	}
	if production, err = json.Marshal(st.Production); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to marshal production lines: %w", err)
	}
	return equipment, materials, production, nil
}

func scanSiteTimesheet(row pgx.Row) (*sitetimesheet.SiteTimesheet, error) {
	var st sitetimesheet.SiteTimesheet
	var shift, status string
	var equipmentJSON, materialsJSON, productionJSON []byte

	err := row.Scan(
		&st.ID, &st.ProjectID, &st.ForemanID, &st.Date, &shift, &st.NumberOfWorkers,
		&equipmentJSON, &materialsJSON, &productionJSON, &st.Remarks, &status,
		&st.AuthorizedBy, &st.AuthorizedAt, &st.RejectionReason, &st.CreatedAt, &st.UpdatedAt,
		&st.ProjectName, &st.ProjectLocation, &st.ForemanName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, sitetimesheet.ErrSiteTimesheetNotFound
		}
		return nil, fmt.Errorf("failed to get site timesheet: %w", err)
	}

	st.Shift = sitetimesheet.Shift(shift)
	st.Status = sitetimesheet.Status(status)

	if err := json.Unmarshal(equipmentJSON, &st.Equipment); err != nil {
		return nil, fmt.Errorf("failed to unmarshal equipment lines: %w", err)
	}
	if err := json.Unmarshal(materialsJSON, &st.Materials); err != nil {
		return nil, fmt.Errorf("failed to unmarshal material lines: %w", err)
	}
	if err := json.Unmarshal(productionJSON, &st.Production); err != nil {
		return nil, fmt.Errorf("failed to unmarshal production lines: %w", err)
	}
	return &st, nil
}
