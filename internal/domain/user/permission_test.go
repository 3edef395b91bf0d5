package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasPermission(t *testing.T) {
	tests := []struct {
		role       Role
		permission Permission
		want       bool
	}{
		{RoleWorker, PermissionTimesheetCreate, true},
		{RoleWorker, PermissionTimesheetVerify, false},
		{RoleWorker, PermissionPayslipViewOwn, true},
		{RoleWorker, PermissionPayslipViewAll, false},
		{RoleSupervisor, PermissionSiteTimesheetCreate, true},
		{RoleSupervisor, PermissionSiteTimesheetAuthorize, false},
		{RoleClerk, PermissionSiteTimesheetAuthorize, true},
		{RoleClerk, PermissionPayrollRun, false},
		{RolePayrollOfficer, PermissionPayrollRun, true},
		{RolePayrollOfficer, PermissionPayrollAdvance, false},
		{RoleFinance, PermissionPayrollAdvance, true},
		{RoleCEO, PermissionPayrollAdvance, true},
		{RoleCEO, PermissionPayrollRun, false},
		{RoleAdmin, PermissionUserManage, true},
		{Role("unknown"), PermissionViewOwnProfile, false},
	}

	for _, tt := range tests {
		got := HasPermission(tt.role, tt.permission)
		assert.Equal(t, tt.want, got, "%s / %s", tt.role, tt.permission)
	}
}

func TestActorHelpers(t *testing.T) {
	assert.True(t, Actor{Role: RoleSupervisor}.CanVerifyTimesheets())
	assert.True(t, Actor{Role: RoleClerk}.CanVerifyTimesheets())
	assert.False(t, Actor{Role: RoleWorker}.CanVerifyTimesheets())

	assert.True(t, Actor{Role: RoleClerk}.CanAuthorizeSiteTimesheets())
	assert.False(t, Actor{Role: RoleSupervisor}.CanAuthorizeSiteTimesheets())

	assert.True(t, Actor{Role: RolePayrollOfficer}.CanRunPayroll())
	assert.False(t, Actor{Role: RoleFinance}.CanRunPayroll())

	assert.True(t, Actor{Role: RoleFinance}.CanAdvanceCycles())
	assert.True(t, Actor{Role: RoleCEO}.CanAdvanceCycles())
	assert.False(t, Actor{Role: RolePayrollOfficer}.CanAdvanceCycles())

	// Admin passes every gate.
	admin := Actor{Role: RoleAdmin}
	assert.True(t, admin.CanVerifyTimesheets())
	assert.True(t, admin.CanAuthorizeSiteTimesheets())
	assert.True(t, admin.CanRunPayroll())
	assert.True(t, admin.CanAdvanceCycles())
}
