package rosterfile

import (
	"errors"
	"fmt"

	"github.com/jsamuelsen11/workforce/internal/domain"
	"github.com/jsamuelsen11/workforce/internal/domain/bonus"
	"github.com/jsamuelsen11/workforce/internal/domain/employee"
	"github.com/jsamuelsen11/workforce/internal/domain/org"
	"github.com/jsamuelsen11/workforce/internal/ports"
)

// toPlan translates a decoded document. Every invalid entry is reported,
// each prefixed with its position in the document.
func toPlan(doc documentDTO) (*ports.RosterPlan, error) {
	plan := &ports.RosterPlan{
		Departments: make([]ports.DepartmentPlan, 0, len(doc.Departments)),
		Projects:    make([]ports.ProjectPlan, 0, len(doc.Projects)),
	}
	var errs []error

	for i, d := range doc.Departments {
		if err := domain.ValidateText("name", d.Name); err != nil {
			errs = append(errs, fmt.Errorf("departments[%d]: %w", i, err))
			continue
		}
		dp := ports.DepartmentPlan{Name: d.Name}
		for j, dto := range d.Employees {
			e, err := toEmployee(d.Name, dto)
			if err != nil {
				errs = append(errs, fmt.Errorf("departments[%d].employees[%d]: %w", i, j, err))
				continue
			}
			dp.Employees = append(dp.Employees, e)
		}
		plan.Departments = append(plan.Departments, dp)
	}

	for i, dto := range doc.Projects {
		p, err := toProject(dto)
		if err != nil {
			errs = append(errs, fmt.Errorf("projects[%d]: %w", i, err))
			continue
		}
		plan.Projects = append(plan.Projects, ports.ProjectPlan{Project: p, MemberIDs: dto.Members})
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return plan, nil
}

func toEmployee(department string, dto employeeDTO) (employee.Employee, error) {
	if dto.Department != "" {
		department = dto.Department
	}

	kind := employee.Kind(dto.Kind)
	if kind == "" {
		kind = employee.KindRegular
	}

	switch kind {
	case employee.KindRegular:
		return employee.NewRegular(dto.ID, dto.Name, department, dto.BaseSalary)
	case employee.KindManager:
		return toManager(department, dto)
	case employee.KindDeveloper:
		return employee.NewDeveloper(dto.ID, dto.Name, department, dto.BaseSalary,
			domain.Level(dto.SeniorityLevel), dto.TechStack...)
	case employee.KindSalesperson:
		return employee.NewSalesperson(dto.ID, dto.Name, department, dto.BaseSalary,
			dto.CommissionRate, dto.SalesVolume)
	default:
		return nil, &domain.ValidationError{Fields: map[string]string{
			"kind": fmt.Sprintf("unknown employee kind %q", dto.Kind),
		}}
	}
}

func toManager(department string, dto employeeDTO) (*employee.Manager, error) {
	var strategy bonus.Strategy
	if dto.Bonus != nil {
		s, err := dto.Bonus.Build()
		if err != nil {
			return nil, fmt.Errorf("bonus: %w", err)
		}
		strategy = s
	}

	m, err := employee.NewManager(dto.ID, dto.Name, department, dto.BaseSalary, strategy)
	if err != nil {
		return nil, err
	}
	if dto.SeniorityLevel != "" {
		if err := m.SetSeniorityLevel(domain.Level(dto.SeniorityLevel)); err != nil {
			return nil, err
		}
	}
	if dto.Achievement != nil {
		if err := m.SetAchievement(*dto.Achievement); err != nil {
			return nil, err
		}
	}
	if dto.CompletedProjects != nil {
		if err := m.SetCompletedProjects(*dto.CompletedProjects); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func toProject(dto projectDTO) (*org.Project, error) {
	return org.NewProject(dto.ID, dto.Name, dto.Description, dto.StartDate, org.Status(dto.Status))
}
