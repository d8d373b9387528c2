package ports

import (
	"context"
	"time"

	"github.com/jsamuelsen11/workforce/internal/domain/bonus"
	"github.com/jsamuelsen11/workforce/internal/domain/employee"
	"github.com/jsamuelsen11/workforce/internal/domain/org"
)

// WorkforceService defines the service port for workforce operations on one
// company. Implemented by the application layer; called by the entry point.
type WorkforceService interface {
	// OpenDepartment creates an empty department backed by a repository from
	// the RepositoryProvider. Returns domain.ErrDuplicate if it exists.
	OpenDepartment(ctx context.Context, name string) error

	// LaunchProject registers a project with an empty team.
	// Returns domain.ErrDuplicate if the project id is taken.
	LaunchProject(ctx context.Context, project *org.Project) error

	// Hire adds an employee to a department.
	// Returns domain.ErrNotFound if the department does not exist and
	// domain.ErrDuplicate if the id is taken within it.
	Hire(ctx context.Context, department string, e employee.Employee) error

	// Dismiss removes an employee from a department and from every project
	// team it belongs to. Returns domain.ErrNotFound if either is absent.
	Dismiss(ctx context.Context, department string, id int64) error

	// Transfer moves an employee between departments atomically.
	Transfer(ctx context.Context, id int64, from, to string) error

	// AssignToProject adds the employee with the given id, found in any
	// department, to a project team.
	// Returns domain.ErrInvalidStatus for a completed or cancelled project.
	AssignToProject(ctx context.Context, projectID, employeeID int64) error

	// SetBonusStrategy replaces a manager's bonus strategy.
	// Returns domain.ErrNotFound if no such employee exists and
	// domain.ErrValidation if the employee is not a manager.
	SetBonusStrategy(ctx context.Context, employeeID int64, strategy bonus.Strategy) error

	// ApplyRoster applies every change in the plan, or none of them.
	ApplyRoster(ctx context.Context, plan *RosterPlan) error

	// Payroll computes compensation for every employee of the company.
	Payroll(ctx context.Context) (*PayrollReport, error)

	// ExportPayroll hands a report to every configured exporter.
	ExportPayroll(ctx context.Context, report *PayrollReport) error
}

// RosterPlan is a batch of organizational changes, typically parsed from a
// roster document.
type RosterPlan struct {
	Departments []DepartmentPlan
	Projects    []ProjectPlan
}

// DepartmentPlan opens a department (unless it already exists) and hires
// employees into it.
type DepartmentPlan struct {
	Name      string
	Employees []employee.Employee
}

// ProjectPlan launches a project and assigns team members by employee id.
type ProjectPlan struct {
	Project   *org.Project
	MemberIDs []int64
}

// PayrollReport is the result of one payroll run.
type PayrollReport struct {
	RunID       string
	Company     string
	GeneratedAt time.Time
	Departments []DepartmentPayroll
	Total       float64
	Average     float64
	Headcount   int
}

// DepartmentPayroll is one department's section of a payroll report.
type DepartmentPayroll struct {
	Name  string
	Lines []PayrollLine
	Stats org.Statistics
}

// PayrollLine is the compensation of one employee.
type PayrollLine struct {
	EmployeeID int64
	Name       string
	Kind       employee.Kind
	BaseSalary float64
	// Variable is the part of Total above base salary: bonus, commission,
	// or seniority uplift.
	Variable float64
	Total    float64
}
