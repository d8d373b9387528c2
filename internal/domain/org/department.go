package org

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/jsamuelsen11/workforce/internal/domain"
	"github.com/jsamuelsen11/workforce/internal/domain/employee"
)

// Department is a named group of employees. The name is fixed at
// construction because the company indexes departments by it.
type Department struct {
	roster
	name string
}

// Option configures a Department.
type Option func(*Department)

// WithRepository backs the department with r instead of an in-memory
// repository. The department becomes the only writer of r.
func WithRepository(r employee.Repository) Option {
	return func(d *Department) {
		if r != nil {
			d.repo = r
		}
	}
}

// NewDepartment validates the name and returns an empty Department.
func NewDepartment(name string, opts ...Option) (*Department, error) {
	if err := domain.ValidateText("name", name); err != nil {
		return nil, err
	}

	d := &Department{name: name, roster: roster{repo: employee.NewMemoryRepository()}}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Name returns the department name.
func (d *Department) Name() string { return d.name }

// AddEmployee puts e on the department roster. Returns domain.ErrDuplicate
// if an employee with the same id is already present.
func (d *Department) AddEmployee(e employee.Employee) error {
	if err := d.add(e); err != nil {
		return fmt.Errorf("department %q: %w", d.name, err)
	}
	return nil
}

// RemoveEmployee takes the employee off the roster. Returns
// domain.ErrNotFound if absent.
func (d *Department) RemoveEmployee(id int64) error {
	if err := d.remove(id); err != nil {
		return fmt.Errorf("department %q: %w", d.name, err)
	}
	return nil
}

// Info returns a multi-line summary of headcount and compensation.
func (d *Department) Info() string {
	counts := d.CountByKind()
	kinds := slices.Sorted(maps.Keys(counts))
	parts := make([]string, len(kinds))
	for i, k := range kinds {
		parts[i] = fmt.Sprintf("%s: %d", k, counts[k])
	}

	stats := d.Statistics()
	return fmt.Sprintf("Department: %s\nEmployees: %d\nBy type: %s\nTotal salary: %.2f\nAverage salary: %.2f",
		d.name, stats.Count, strings.Join(parts, ", "), stats.Total, stats.Average)
}

// Record returns the serializable form of the department.
func (d *Department) Record() map[string]any {
	members := d.Members()
	records := make([]employee.Record, len(members))
	for i, e := range members {
		records[i] = e.Record()
	}
	return map[string]any{
		"name":         d.name,
		"employees":    records,
		"count":        len(members),
		"total_salary": employee.Sum(members...),
	}
}

func (d *Department) String() string {
	return fmt.Sprintf("Department %q (%d employees)", d.name, d.Len())
}
