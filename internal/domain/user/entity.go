package user

import "time"

type Role string

const (
	RoleWorker         Role = "worker"          // Site worker - own records only
	RoleSupervisor     Role = "supervisor"      // Foreman - submits site timesheets, verifies crew hours
	RoleClerk          Role = "clerk"           // Authorizes site timesheets, verifies worker hours
	RolePayrollOfficer Role = "payroll_officer" // Runs payroll cycles
	RoleFinance        Role = "finance"         // Approves and pays cycles
	RoleCEO            Role = "ceo"             // Read-everything oversight
	RoleAdmin          Role = "admin"           // Manages projects and accounts
)

type User struct {
	ID           string
	Email        string
	PasswordHash *string
	Role         Role
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// DTO / Join
	WorkerID *string
}

// Actor is the identity+role pair passed explicitly into every
// state-transition and finalize call. Services never read ambient session
// state.
type Actor struct {
	ID   string
	Role Role
}

// IsAdmin checks if user manages accounts and projects
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CanVerifyTimesheets checks if the actor may approve individual worker hours
func (a Actor) CanVerifyTimesheets() bool {
	return a.Role == RoleSupervisor || a.Role == RoleClerk || a.Role == RoleAdmin
}

// CanAuthorizeSiteTimesheets checks if the actor may authorize/reject site records
func (a Actor) CanAuthorizeSiteTimesheets() bool {
	return a.Role == RoleClerk || a.Role == RoleAdmin
}

// CanRunPayroll checks if the actor may preview and finalize payroll cycles
func (a Actor) CanRunPayroll() bool {
	return a.Role == RolePayrollOfficer || a.Role == RoleAdmin
}

// CanAdvanceCycles checks if the actor may move a cycle toward paid
func (a Actor) CanAdvanceCycles() bool {
	return a.Role == RoleFinance || a.Role == RoleCEO || a.Role == RoleAdmin
}
