package org

import (
	"fmt"

	"github.com/jsamuelsen11/workforce/internal/domain"
	"github.com/jsamuelsen11/workforce/internal/domain/employee"
	"github.com/jsamuelsen11/workforce/internal/domain/keyed"
)

// Budget is the compensation summary of one department.
type Budget struct {
	Department string
	Statistics
}

// Company owns departments, keyed by name, and projects, keyed by id.
// Employee ids are unique within each department but not across the company.
type Company struct {
	name        string
	departments *keyed.List[string, *Department]
	projects    *keyed.List[int64, *Project]
}

// NewCompany validates the name and returns an empty Company.
func NewCompany(name string) (*Company, error) {
	if err := domain.ValidateText("name", name); err != nil {
		return nil, err
	}
	return &Company{
		name:        name,
		departments: keyed.New((*Department).Name),
		projects:    keyed.New((*Project).ID),
	}, nil
}

// Name returns the company name.
func (c *Company) Name() string { return c.name }

// AddDepartment registers d. Returns domain.ErrDuplicate if a department
// with the same name exists.
func (c *Company) AddDepartment(d *Department) error {
	if d == nil {
		return &domain.ValidationError{Fields: map[string]string{"department": domain.MsgRequired}}
	}
	if c.departments.Has(d.Name()) {
		return fmt.Errorf("department %q: %w", d.Name(), domain.ErrDuplicate)
	}
	return c.departments.Add(d)
}

// RemoveDepartment unregisters the named department and returns it.
// Returns domain.ErrNotFound if absent.
func (c *Company) RemoveDepartment(name string) (*Department, error) {
	if !c.departments.Has(name) {
		return nil, fmt.Errorf("department %q: %w", name, domain.ErrNotFound)
	}
	return c.departments.Remove(name)
}

// Department returns the named department.
func (c *Company) Department(name string) (*Department, bool) {
	return c.departments.Get(name)
}

// Departments returns departments in registration order.
func (c *Company) Departments() []*Department {
	return c.departments.Values()
}

// AddProject registers p. Returns domain.ErrDuplicate if a project with the
// same id exists.
func (c *Company) AddProject(p *Project) error {
	if p == nil {
		return &domain.ValidationError{Fields: map[string]string{"project": domain.MsgRequired}}
	}
	if c.projects.Has(p.ID()) {
		return fmt.Errorf("project %d: %w", p.ID(), domain.ErrDuplicate)
	}
	return c.projects.Add(p)
}

// RemoveProject unregisters the project and returns it. Returns
// domain.ErrNotFound if absent.
func (c *Company) RemoveProject(id int64) (*Project, error) {
	if !c.projects.Has(id) {
		return nil, fmt.Errorf("project %d: %w", id, domain.ErrNotFound)
	}
	return c.projects.Remove(id)
}

// Project returns the project with the given id.
func (c *Company) Project(id int64) (*Project, bool) {
	return c.projects.Get(id)
}

// Projects returns projects in registration order.
func (c *Company) Projects() []*Project {
	return c.projects.Values()
}

// ProjectsByStatus returns the projects in status s. Returns
// domain.ErrInvalidStatus for an unknown status.
func (c *Company) ProjectsByStatus(s Status) ([]*Project, error) {
	if err := validateStatus(s); err != nil {
		return nil, err
	}
	out := make([]*Project, 0)
	for _, p := range c.projects.Values() {
		if p.Status() == s {
			out = append(out, p)
		}
	}
	return out, nil
}

// FindEmployee returns the first employee with the given id, searching
// departments in registration order.
func (c *Company) FindEmployee(id int64) (employee.Employee, bool) {
	for _, d := range c.departments.Values() {
		if e, ok := d.Employee(id); ok {
			return e, true
		}
	}
	return nil, false
}

// AllEmployees returns every department's employees, in department order.
func (c *Company) AllEmployees() []employee.Employee {
	var all []employee.Employee
	for _, d := range c.departments.Values() {
		all = append(all, d.Members()...)
	}
	return all
}

// EmployeeCount returns total headcount across departments.
func (c *Company) EmployeeCount() int {
	var n int
	for _, d := range c.departments.Values() {
		n += d.Len()
	}
	return n
}

// TotalSalary returns the company's total monthly compensation cost.
func (c *Company) TotalSalary() float64 {
	var total float64
	for _, d := range c.departments.Values() {
		total += d.TotalSalary()
	}
	return total
}

// AverageSalary returns mean compensation per employee, or 0 with no
// employees.
func (c *Company) AverageSalary() float64 {
	n := c.EmployeeCount()
	if n == 0 {
		return 0
	}
	return c.TotalSalary() / float64(n)
}

// BudgetByDepartment returns compensation statistics per department, in
// registration order.
func (c *Company) BudgetByDepartment() []Budget {
	depts := c.departments.Values()
	out := make([]Budget, len(depts))
	for i, d := range depts {
		out[i] = Budget{Department: d.Name(), Statistics: d.Statistics()}
	}
	return out
}

// TransferEmployee moves an employee between departments and updates its
// department label. The employee joins the target before leaving the source,
// so a rejected transfer leaves both departments, their order and the label
// as they were.
func (c *Company) TransferEmployee(id int64, from, to string) error {
	if from == to {
		return &domain.ValidationError{Fields: map[string]string{"to": "must differ from source department"}}
	}
	src, ok := c.departments.Get(from)
	if !ok {
		return fmt.Errorf("department %q: %w", from, domain.ErrNotFound)
	}
	dst, ok := c.departments.Get(to)
	if !ok {
		return fmt.Errorf("department %q: %w", to, domain.ErrNotFound)
	}
	e, ok := src.Employee(id)
	if !ok {
		return fmt.Errorf("employee %d in department %q: %w", id, from, domain.ErrNotFound)
	}
	if dst.ContainsID(id) {
		return fmt.Errorf("employee %d in department %q: %w", id, to, domain.ErrDuplicate)
	}

	prev := e.Department()
	if err := e.SetDepartment(to); err != nil {
		return fmt.Errorf("transfer of employee %d: %w", id, err)
	}
	if err := dst.AddEmployee(e); err != nil {
		_ = e.SetDepartment(prev)
		return fmt.Errorf("transfer of employee %d: %w", id, err)
	}
	if err := src.RemoveEmployee(id); err != nil {
		_ = e.SetDepartment(prev)
		if undoErr := dst.RemoveEmployee(id); undoErr != nil {
			return fmt.Errorf("transfer of employee %d failed (%w) and undo failed: %w", id, err, undoErr)
		}
		return fmt.Errorf("transfer of employee %d: %w", id, err)
	}
	return nil
}

// Info returns a multi-line company summary.
func (c *Company) Info() string {
	return fmt.Sprintf("Company: %s\nDepartments: %d\nProjects: %d\nEmployees: %d\nPayroll: %.2f\nAverage salary: %.2f",
		c.name, c.departments.Len(), c.projects.Len(), c.EmployeeCount(), c.TotalSalary(), c.AverageSalary())
}

func (c *Company) String() string {
	return fmt.Sprintf("Company %q (%d departments, %d employees)", c.name, c.departments.Len(), c.EmployeeCount())
}
