package sitetimesheet

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitepay-hq/sitepay-backend-go/internal/domain/project"
	"github.com/sitepay-hq/sitepay-backend-go/internal/domain/sitetimesheet"
	"github.com/sitepay-hq/sitepay-backend-go/internal/domain/user"
	"github.com/sitepay-hq/sitepay-backend-go/internal/pkg/sse"
)

type fakeSiteTimesheetRepo struct {
	sitetimesheet.SiteTimesheetRepository
	records map[string]*sitetimesheet.SiteTimesheet
}

func (f *fakeSiteTimesheetRepo) Create(ctx context.Context, st *sitetimesheet.SiteTimesheet) error {
	if st.ID == "" {
		st.ID = fmt.Sprintf("st-%d", len(f.records)+1)
	}
	f.records[st.ID] = st
	return nil
}

func (f *fakeSiteTimesheetRepo) GetByID(ctx context.Context, id string) (*sitetimesheet.SiteTimesheet, error) {
	st, ok := f.records[id]
	if !ok {
		return nil, sitetimesheet.ErrSiteTimesheetNotFound
	}
	return st, nil
}

type fakeProjectRepo struct {
	project.ProjectRepository
	assigned bool
}

func (f *fakeProjectRepo) IsAssigned(ctx context.Context, projectID, userID string) (bool, error) {
	return f.assigned, nil
}

func newCreateService(repo *fakeSiteTimesheetRepo, assigned bool) *SiteTimesheetServiceImpl {
	return &SiteTimesheetServiceImpl{
		siteTimesheetRepo: repo,
		projectRepo:       &fakeProjectRepo{assigned: assigned},
		hub:               sse.NewHub(),
	}
}

func validCreateRequest() sitetimesheet.CreateSiteTimesheetRequest {
	return sitetimesheet.CreateSiteTimesheetRequest{
		ProjectID:       "6f1e1d5e-8a3b-4b6e-9c2d-1a2b3c4d5e6f",
		Date:            "2026-08-10",
		Shift:           string(sitetimesheet.ShiftMorning),
		NumberOfWorkers: 12,
	}
}

func TestCreateDefaultsToDraft(t *testing.T) {
	repo := &fakeSiteTimesheetRepo{records: map[string]*sitetimesheet.SiteTimesheet{}}
	svc := newCreateService(repo, true)
	actor := user.Actor{ID: "foreman-1", Role: user.RoleSupervisor}

	resp, err := svc.Create(context.Background(), actor, validCreateRequest())
	require.NoError(t, err)

	assert.Equal(t, sitetimesheet.StatusDraft, resp.Status)
	assert.Equal(t, "foreman-1", resp.ForemanID)
	require.Len(t, repo.records, 1)
	assert.Equal(t, sitetimesheet.StatusDraft, repo.records[resp.ID].Status)
}

func TestCreateWithSubmitSkipsDraft(t *testing.T) {
	repo := &fakeSiteTimesheetRepo{records: map[string]*sitetimesheet.SiteTimesheet{}}
	svc := newCreateService(repo, true)
	actor := user.Actor{ID: "foreman-1", Role: user.RoleSupervisor}

	req := validCreateRequest()
	req.Submit = true

	resp, err := svc.Create(context.Background(), actor, req)
	require.NoError(t, err)

	assert.Equal(t, sitetimesheet.StatusSubmitted, resp.Status)
	assert.Equal(t, sitetimesheet.StatusSubmitted, repo.records[resp.ID].Status)
}

func TestCreateRequiresProjectAssignment(t *testing.T) {
	repo := &fakeSiteTimesheetRepo{records: map[string]*sitetimesheet.SiteTimesheet{}}
	svc := newCreateService(repo, false)
	actor := user.Actor{ID: "foreman-1", Role: user.RoleSupervisor}

	_, err := svc.Create(context.Background(), actor, validCreateRequest())
	assert.ErrorIs(t, err, project.ErrNotAssigned)
	assert.Empty(t, repo.records)
}
