package ports

import (
	"context"

	"github.com/jsamuelsen11/workforce/internal/domain/employee"
)

// RepositoryProvider supplies the employee repository backing one container.
// Implemented by the store adapter; called by the application layer whenever
// it opens a department.
type RepositoryProvider interface {
	// EmployeeRepository returns the repository for the given scope, such as
	// "department:Engineering". Repositories for distinct scopes never share
	// entries. A persistent provider preloads entries already stored under
	// the scope.
	EmployeeRepository(ctx context.Context, scope string) (employee.Repository, error)
}

// ReportExporter delivers a payroll report to some destination.
// Implemented by the export adapters (text, XLSX).
type ReportExporter interface {
	// Format names the output format for logging (e.g., "text", "xlsx").
	Format() string

	// Export writes the report. Implementations should respect context
	// cancellation.
	Export(ctx context.Context, report *PayrollReport) error
}
