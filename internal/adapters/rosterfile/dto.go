// Package rosterfile reads roster documents: YAML files that declare
// departments with their employees and projects with their team members.
// Documents are decoded into DTOs and translated into a ports.RosterPlan so
// the file format never leaks into the domain.
package rosterfile

import (
	"time"

	"github.com/jsamuelsen11/workforce/internal/domain/bonus"
)

// documentDTO is the top-level roster document.
type documentDTO struct {
	Departments []departmentDTO `yaml:"departments"`
	Projects    []projectDTO    `yaml:"projects"`
}

type departmentDTO struct {
	Name      string        `yaml:"name"`
	Employees []employeeDTO `yaml:"employees"`
}

// employeeDTO carries the union of every variant's fields; Kind selects
// which ones apply. Department defaults to the enclosing department.
type employeeDTO struct {
	Kind       string  `yaml:"kind"`
	ID         int64   `yaml:"id"`
	Name       string  `yaml:"name"`
	Department string  `yaml:"department"`
	BaseSalary float64 `yaml:"base_salary"`

	// Manager.
	Bonus             *bonus.Spec `yaml:"bonus"`
	Achievement       *float64    `yaml:"achievement"`
	CompletedProjects *int        `yaml:"completed_projects"`

	// Manager and developer.
	SeniorityLevel string `yaml:"seniority_level"`

	// Developer.
	TechStack []string `yaml:"tech_stack"`

	// Salesperson.
	CommissionRate float64 `yaml:"commission_rate"`
	SalesVolume    float64 `yaml:"sales_volume"`
}

type projectDTO struct {
	ID          int64     `yaml:"id"`
	Name        string    `yaml:"name"`
	Description string    `yaml:"description"`
	StartDate   time.Time `yaml:"start_date"`
	Status      string    `yaml:"status"`
	Members     []int64   `yaml:"members"`
}
