// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/workforce/internal/app/changeset"
	"github.com/jsamuelsen11/workforce/internal/app/fanout"
	"github.com/jsamuelsen11/workforce/internal/domain"
	"github.com/jsamuelsen11/workforce/internal/domain/bonus"
	"github.com/jsamuelsen11/workforce/internal/domain/employee"
	"github.com/jsamuelsen11/workforce/internal/domain/org"
	"github.com/jsamuelsen11/workforce/internal/platform/logging"
	"github.com/jsamuelsen11/workforce/internal/platform/telemetry"
	"github.com/jsamuelsen11/workforce/internal/ports"
)

// Compile-time check that WorkforceService implements ports.WorkforceService.
var _ ports.WorkforceService = (*WorkforceService)(nil)

const (
	tracerName = "github.com/jsamuelsen11/workforce/internal/app"

	maxConcurrentExports = 4
)

// WorkforceService implements ports.WorkforceService around one company.
// Department repositories come from the RepositoryProvider port; payroll
// reports leave through ReportExporter ports. The service holds no business
// rules of its own: invariants live in the domain packages.
type WorkforceService struct {
	company   *org.Company
	repos     ports.RepositoryProvider
	exporters []ports.ReportExporter
	metrics   *telemetry.Metrics
	tracer    trace.Tracer
	logger    *slog.Logger
	now       func() time.Time
}

// Option configures a WorkforceService.
type Option func(*WorkforceService)

// WithExporters sets the destinations used by ExportPayroll.
func WithExporters(exporters ...ports.ReportExporter) Option {
	return func(s *WorkforceService) { s.exporters = exporters }
}

// WithMetrics records payroll and roster metrics on m.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(s *WorkforceService) { s.metrics = m }
}

// WithClock overrides the time source stamped on payroll reports.
func WithClock(now func() time.Time) Option {
	return func(s *WorkforceService) { s.now = now }
}

// NewWorkforceService creates a WorkforceService for company. The provider
// supplies the repository behind every department the service opens. A nil
// logger discards output.
func NewWorkforceService(company *org.Company, repos ports.RepositoryProvider, logger *slog.Logger, opts ...Option) *WorkforceService {
	if logger == nil {
		logger = logging.Discard()
	}
	s := &WorkforceService{
		company: company,
		repos:   repos,
		tracer:  otel.Tracer(tracerName),
		logger:  logger,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Company returns the aggregate the service operates on.
func (s *WorkforceService) Company() *org.Company {
	return s.company
}

const departmentScopePrefix = "department:"

// DepartmentScope is the repository scope for a department's employees.
func DepartmentScope(name string) string {
	return departmentScopePrefix + name
}

// DepartmentFromScope reverses DepartmentScope.
func DepartmentFromScope(scope string) (string, bool) {
	name, ok := strings.CutPrefix(scope, departmentScopePrefix)
	return name, ok && name != ""
}

// OpenDepartment creates an empty department backed by a provider repository.
func (s *WorkforceService) OpenDepartment(ctx context.Context, name string) error {
	s.logger.InfoContext(ctx, "opening department", slog.String("department", name))

	if err := s.openDepartment(ctx, name); err != nil {
		s.logger.ErrorContext(ctx, "failed to open department",
			slog.String("operation", "OpenDepartment"),
			slog.String("department", name),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}

func (s *WorkforceService) openDepartment(ctx context.Context, name string) error {
	if _, ok := s.company.Department(name); ok {
		return fmt.Errorf("department %q: %w", name, domain.ErrDuplicate)
	}
	if err := domain.ValidateText("department", name); err != nil {
		return err
	}

	repo, err := s.repos.EmployeeRepository(ctx, DepartmentScope(name))
	if err != nil {
		return fmt.Errorf("opening repository for department %q: %w", name, err)
	}
	dept, err := org.NewDepartment(name, org.WithRepository(repo))
	if err != nil {
		return err
	}
	return s.company.AddDepartment(dept)
}

// LaunchProject registers a project with the company.
func (s *WorkforceService) LaunchProject(ctx context.Context, project *org.Project) error {
	if project == nil {
		return &domain.ValidationError{Fields: map[string]string{"project": domain.MsgRequired}}
	}
	s.logger.InfoContext(ctx, "launching project",
		slog.Int64("project_id", project.ID()),
		slog.String("status", project.Status().String()),
	)

	if err := s.company.AddProject(project); err != nil {
		s.logger.ErrorContext(ctx, "failed to launch project",
			slog.String("operation", "LaunchProject"),
			slog.Int64("project_id", project.ID()),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}

// Hire adds an employee to a department.
func (s *WorkforceService) Hire(ctx context.Context, department string, e employee.Employee) error {
	if e == nil {
		return &domain.ValidationError{Fields: map[string]string{"employee": domain.MsgRequired}}
	}
	s.logger.InfoContext(ctx, "hiring employee",
		slog.Int64("employee_id", e.ID()),
		slog.String("kind", e.Kind().String()),
		slog.String("department", department),
	)

	if err := s.hire(department, e); err != nil {
		s.logger.ErrorContext(ctx, "failed to hire employee",
			slog.String("operation", "Hire"),
			slog.Int64("employee_id", e.ID()),
			slog.String("department", department),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}

func (s *WorkforceService) hire(department string, e employee.Employee) error {
	dept, err := s.department(department)
	if err != nil {
		return err
	}
	return dept.AddEmployee(e)
}

// Dismiss removes an employee from its department and from any project team
// it is on.
func (s *WorkforceService) Dismiss(ctx context.Context, department string, id int64) error {
	s.logger.InfoContext(ctx, "dismissing employee",
		slog.Int64("employee_id", id),
		slog.String("department", department),
	)

	if err := s.dismiss(department, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to dismiss employee",
			slog.String("operation", "Dismiss"),
			slog.Int64("employee_id", id),
			slog.String("department", department),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}

func (s *WorkforceService) dismiss(department string, id int64) error {
	dept, err := s.department(department)
	if err != nil {
		return err
	}
	e, ok := dept.Employee(id)
	if !ok {
		return fmt.Errorf("employee %d in department %q: %w", id, department, domain.ErrNotFound)
	}
	if err := dept.RemoveEmployee(id); err != nil {
		return err
	}

	// Ids are only unique per department, so drop team memberships of this
	// entity and not of a namesake from another department.
	for _, p := range s.company.Projects() {
		if member, ok := p.Employee(id); ok && member == e {
			if err := p.RemoveMember(id); err != nil {
				return err
			}
		}
	}
	return nil
}

// Transfer moves an employee between departments.
func (s *WorkforceService) Transfer(ctx context.Context, id int64, from, to string) error {
	s.logger.InfoContext(ctx, "transferring employee",
		slog.Int64("employee_id", id),
		slog.String("from", from),
		slog.String("to", to),
	)

	if err := s.company.TransferEmployee(id, from, to); err != nil {
		s.logger.ErrorContext(ctx, "failed to transfer employee",
			slog.String("operation", "Transfer"),
			slog.Int64("employee_id", id),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}

// AssignToProject puts an employee on a project team.
func (s *WorkforceService) AssignToProject(ctx context.Context, projectID, employeeID int64) error {
	s.logger.InfoContext(ctx, "assigning employee to project",
		slog.Int64("project_id", projectID),
		slog.Int64("employee_id", employeeID),
	)

	if err := s.assign(projectID, employeeID); err != nil {
		s.logger.ErrorContext(ctx, "failed to assign employee to project",
			slog.String("operation", "AssignToProject"),
			slog.Int64("project_id", projectID),
			slog.Int64("employee_id", employeeID),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}

func (s *WorkforceService) assign(projectID, employeeID int64) error {
	p, ok := s.company.Project(projectID)
	if !ok {
		return fmt.Errorf("project %d: %w", projectID, domain.ErrNotFound)
	}
	e, ok := s.company.FindEmployee(employeeID)
	if !ok {
		return fmt.Errorf("employee %d: %w", employeeID, domain.ErrNotFound)
	}
	return p.AddMember(e)
}

// SetBonusStrategy replaces a manager's bonus strategy.
func (s *WorkforceService) SetBonusStrategy(ctx context.Context, employeeID int64, strategy bonus.Strategy) error {
	e, ok := s.company.FindEmployee(employeeID)
	if !ok {
		err := fmt.Errorf("employee %d: %w", employeeID, domain.ErrNotFound)
		s.logger.ErrorContext(ctx, "failed to set bonus strategy",
			slog.String("operation", "SetBonusStrategy"),
			slog.Int64("employee_id", employeeID),
			slog.Any("error", err),
		)
		return err
	}

	m, ok := e.(*employee.Manager)
	if !ok {
		return &domain.ValidationError{Fields: map[string]string{
			"employee_id": fmt.Sprintf("employee %d is a %s, not a manager", employeeID, e.Kind()),
		}}
	}

	m.SetBonusStrategy(strategy)
	s.logger.InfoContext(ctx, "bonus strategy changed",
		slog.Int64("employee_id", employeeID),
		slog.String("strategy", m.BonusStrategy().Name()),
	)
	return nil
}

// ApplyRoster stages every change in the plan and commits them as one unit.
// On failure the company is left exactly as it was.
func (s *WorkforceService) ApplyRoster(ctx context.Context, plan *ports.RosterPlan) error {
	if plan == nil {
		return &domain.ValidationError{Fields: map[string]string{"plan": domain.MsgRequired}}
	}

	ctx, span := s.tracer.Start(ctx, "WorkforceService.ApplyRoster")
	defer span.End()

	cs := changeset.New()
	if err := s.stageRoster(cs, plan); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "applying roster",
		slog.Int("departments", len(plan.Departments)),
		slog.Int("projects", len(plan.Projects)),
		slog.Int("changes", cs.Len()),
	)
	span.SetAttributes(attribute.Int("roster.changes", cs.Len()))

	if err := cs.Commit(logging.WithLogger(ctx, s.logger)); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "roster rejected")
		s.logger.ErrorContext(ctx, "failed to apply roster",
			slog.String("operation", "ApplyRoster"),
			slog.Any("error", err),
		)
		s.recordRosterChanges(ctx, cs.Len(), "rejected")
		return err
	}

	s.recordRosterChanges(ctx, cs.Len(), "applied")
	return nil
}

func (s *WorkforceService) stageRoster(cs *changeset.Changeset, plan *ports.RosterPlan) error {
	opened := make(map[string]bool)

	for _, dp := range plan.Departments {
		name := dp.Name
		if _, exists := s.company.Department(name); !exists && !opened[name] {
			opened[name] = true
			if err := cs.Add(changeset.Func{
				Desc: fmt.Sprintf("open department %q", name),
				Do:   func(ctx context.Context) error { return s.openDepartment(ctx, name) },
				Undo: func(context.Context) error {
					_, err := s.company.RemoveDepartment(name)
					return err
				},
			}); err != nil {
				return err
			}
		}

		for _, e := range dp.Employees {
			if e == nil {
				return &domain.ValidationError{Fields: map[string]string{"employee": domain.MsgRequired}}
			}
			if err := cs.Add(changeset.Func{
				Desc: fmt.Sprintf("hire employee %d into %q", e.ID(), name),
				Do:   func(context.Context) error { return s.hire(name, e) },
				Undo: func(context.Context) error { return s.dismiss(name, e.ID()) },
			}); err != nil {
				return err
			}
		}
	}

	for _, pp := range plan.Projects {
		p := pp.Project
		if p == nil {
			return &domain.ValidationError{Fields: map[string]string{"project": domain.MsgRequired}}
		}
		if err := cs.Add(changeset.Func{
			Desc: fmt.Sprintf("launch project %d", p.ID()),
			Do:   func(context.Context) error { return s.company.AddProject(p) },
			Undo: func(context.Context) error {
				_, err := s.company.RemoveProject(p.ID())
				return err
			},
		}); err != nil {
			return err
		}

		for _, id := range pp.MemberIDs {
			if err := cs.Add(changeset.Func{
				Desc: fmt.Sprintf("assign employee %d to project %d", id, p.ID()),
				Do:   func(context.Context) error { return s.assign(p.ID(), id) },
				Undo: func(context.Context) error { return p.RemoveMember(id) },
			}); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *WorkforceService) recordRosterChanges(ctx context.Context, n int, result string) {
	if s.metrics == nil {
		return
	}
	s.metrics.RosterChanges.Add(ctx, int64(n),
		metric.WithAttributes(telemetry.AttrResult.String(result)))
}

// Payroll computes the compensation of every employee, grouped by
// department in registration order.
func (s *WorkforceService) Payroll(ctx context.Context) (*ports.PayrollReport, error) {
	ctx, span := s.tracer.Start(ctx, "WorkforceService.Payroll")
	defer span.End()

	report := &ports.PayrollReport{
		RunID:       uuid.NewString(),
		Company:     s.company.Name(),
		GeneratedAt: s.now().UTC(),
	}

	for _, dept := range s.company.Departments() {
		section := ports.DepartmentPayroll{
			Name:  dept.Name(),
			Stats: dept.Statistics(),
		}
		for _, e := range dept.All() {
			total := e.CalculateSalary()
			section.Lines = append(section.Lines, ports.PayrollLine{
				EmployeeID: e.ID(),
				Name:       e.Name(),
				Kind:       e.Kind(),
				BaseSalary: e.BaseSalary(),
				Variable:   total - e.BaseSalary(),
				Total:      total,
			})
		}
		report.Departments = append(report.Departments, section)
		report.Total += section.Stats.Total
		report.Headcount += section.Stats.Count
	}
	if report.Headcount > 0 {
		report.Average = report.Total / float64(report.Headcount)
	}

	span.SetAttributes(
		attribute.String("payroll.run_id", report.RunID),
		attribute.Int("payroll.headcount", report.Headcount),
	)
	if s.metrics != nil {
		attrs := metric.WithAttributes(telemetry.AttrCompany.String(report.Company))
		s.metrics.PayrollRuns.Add(ctx, 1, attrs)
		s.metrics.PayrollAmount.Record(ctx, report.Total, attrs)
	}

	s.logger.InfoContext(ctx, "payroll computed",
		slog.String("run_id", report.RunID),
		slog.Int("headcount", report.Headcount),
		slog.Float64("total", report.Total),
	)
	return report, nil
}

// ExportPayroll hands the report to every exporter concurrently. A failing
// exporter does not stop the others; all failures are returned joined.
func (s *WorkforceService) ExportPayroll(ctx context.Context, report *ports.PayrollReport) error {
	if report == nil {
		return &domain.ValidationError{Fields: map[string]string{"report": domain.MsgRequired}}
	}

	results := fanout.Run(ctx, maxConcurrentExports, s.exporters,
		func(ctx context.Context, exp ports.ReportExporter) (string, error) {
			s.logger.InfoContext(ctx, "exporting payroll",
				slog.String("run_id", report.RunID),
				slog.String("format", exp.Format()),
			)
			if err := exp.Export(ctx, report); err != nil {
				return exp.Format(), fmt.Errorf("exporting %s: %w", exp.Format(), err)
			}
			return exp.Format(), nil
		})

	err := fanout.Join(results)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to export payroll",
			slog.String("operation", "ExportPayroll"),
			slog.String("run_id", report.RunID),
			slog.Any("error", err),
		)
	}
	return err
}

func (s *WorkforceService) department(name string) (*org.Department, error) {
	dept, ok := s.company.Department(name)
	if !ok {
		return nil, fmt.Errorf("department %q: %w", name, domain.ErrNotFound)
	}
	return dept, nil
}
