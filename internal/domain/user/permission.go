package user

type Permission string

const (
	// Self Management
	PermissionViewOwnProfile Permission = "profile.view_own"

	// Worker Timesheets
	PermissionTimesheetViewOwn Permission = "timesheet.view_own"
	PermissionTimesheetCreate  Permission = "timesheet.create"
	PermissionTimesheetViewAll Permission = "timesheet.view_all"
	PermissionTimesheetVerify  Permission = "timesheet.verify"

	// Site Timesheets
	PermissionSiteTimesheetCreate    Permission = "site_timesheet.create"
	PermissionSiteTimesheetViewAll   Permission = "site_timesheet.view_all"
	PermissionSiteTimesheetAuthorize Permission = "site_timesheet.authorize"

	// Projects
	PermissionProjectView   Permission = "project.view"
	PermissionProjectManage Permission = "project.manage"

	// Payroll
	PermissionPayrollRun     Permission = "payroll.run"
	PermissionPayrollAdvance Permission = "payroll.advance"
	PermissionPayslipViewOwn Permission = "payslip.view_own"
	PermissionPayslipViewAll Permission = "payslip.view_all"

	// Reports
	PermissionReportsView Permission = "reports.view"

	// User Management
	PermissionUserManage Permission = "user.manage"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleWorker: {
		PermissionViewOwnProfile,
		PermissionTimesheetViewOwn,
		PermissionTimesheetCreate,
		PermissionPayslipViewOwn,
	},
	RoleSupervisor: {
		PermissionViewOwnProfile,
		PermissionTimesheetViewOwn,
		PermissionTimesheetCreate,
		PermissionTimesheetViewAll,
		PermissionTimesheetVerify,
		PermissionSiteTimesheetCreate,
		PermissionProjectView,
		PermissionPayslipViewOwn,
	},
	RoleClerk: {
		PermissionViewOwnProfile,
		PermissionTimesheetViewAll,
		PermissionTimesheetVerify,
		PermissionSiteTimesheetViewAll,
		PermissionSiteTimesheetAuthorize,
		PermissionProjectView,
		PermissionReportsView,
	},
	RolePayrollOfficer: {
		PermissionViewOwnProfile,
		PermissionTimesheetViewAll,
		PermissionPayrollRun,
		PermissionPayslipViewAll,
		PermissionProjectView,
		PermissionReportsView,
	},
	RoleFinance: {
		PermissionViewOwnProfile,
		PermissionPayrollAdvance,
		PermissionPayslipViewAll,
		PermissionReportsView,
	},
	RoleCEO: {
		PermissionViewOwnProfile,
		PermissionTimesheetViewAll,
		PermissionSiteTimesheetViewAll,
		PermissionPayrollAdvance,
		PermissionPayslipViewAll,
		PermissionProjectView,
		PermissionReportsView,
	},
	RoleAdmin: {
		PermissionViewOwnProfile,
		PermissionTimesheetViewOwn,
		PermissionTimesheetCreate,
		PermissionTimesheetViewAll,
		PermissionTimesheetVerify,
		PermissionSiteTimesheetCreate,
		PermissionSiteTimesheetViewAll,
		PermissionSiteTimesheetAuthorize,
		PermissionProjectView,
		PermissionProjectManage,
		PermissionPayrollRun,
		PermissionPayrollAdvance,
		PermissionPayslipViewOwn,
		PermissionPayslipViewAll,
		PermissionReportsView,
		PermissionUserManage,
	},
}

// HasPermission checks if a role carries a permission
func HasPermission(role Role, permission Permission) bool {
	perms, ok := RolePermissions[role]
	if !ok {
		return false
	}
	for _, p := range perms {
		if p == permission {
			return true
		}
	}
	return false
}
