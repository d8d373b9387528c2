package org

import (
	"fmt"
	"time"

	"github.com/jsamuelsen11/workforce/internal/domain"
	"github.com/jsamuelsen11/workforce/internal/domain/employee"
)

// Status represents the lifecycle stage of a project.
type Status string

const (
	StatusPlanning  Status = "planning"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// IsValid returns true if the status is one of the defined constants.
func (s Status) IsValid() bool {
	switch s {
	case StatusPlanning, StatusActive, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// AcceptsMembers reports whether team members can join a project in this status.
func (s Status) AcceptsMembers() bool {
	return s == StatusPlanning || s == StatusActive
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

func validateStatus(s Status) error {
	if !s.IsValid() {
		return fmt.Errorf("status %q: %w", s, domain.ErrInvalidStatus)
	}
	return nil
}

// Project is a team of employees working toward a deliverable.
type Project struct {
	roster
	id          int64
	name        string
	description string
	startDate   time.Time
	status      Status
}

// NewProject validates its arguments and returns a Project with an empty
// team. An empty status selects planning.
func NewProject(id int64, name, description string, startDate time.Time, status Status) (*Project, error) {
	if status == "" {
		status = StatusPlanning
	}
	if err := domain.Collect(
		domain.ValidateID("id", id),
		domain.ValidateText("name", name),
	); err != nil {
		return nil, err
	}
	if err := validateStatus(status); err != nil {
		return nil, err
	}

	return &Project{
		roster:      roster{repo: employee.NewMemoryRepository()},
		id:          id,
		name:        name,
		description: description,
		startDate:   startDate,
		status:      status,
	}, nil
}

func (p *Project) ID() int64            { return p.id }
func (p *Project) Name() string         { return p.name }
func (p *Project) Description() string  { return p.description }
func (p *Project) StartDate() time.Time { return p.startDate }
func (p *Project) Status() Status       { return p.status }

// SetStatus moves the project to s. Returns domain.ErrInvalidStatus for an
// unknown status.
func (p *Project) SetStatus(s Status) error {
	if err := validateStatus(s); err != nil {
		return err
	}
	p.status = s
	return nil
}

// AddMember puts e on the team. Returns domain.ErrInvalidStatus when the
// project is completed or cancelled, and domain.ErrDuplicate when e is
// already on the team.
func (p *Project) AddMember(e employee.Employee) error {
	if !p.status.AcceptsMembers() {
		return fmt.Errorf("project %d is %s: %w", p.id, p.status, domain.ErrInvalidStatus)
	}
	if err := p.add(e); err != nil {
		return fmt.Errorf("project %d: %w", p.id, err)
	}
	return nil
}

// RemoveMember takes the employee off the team. Returns domain.ErrNotFound
// if absent.
func (p *Project) RemoveMember(id int64) error {
	if err := p.remove(id); err != nil {
		return fmt.Errorf("project %d: %w", p.id, err)
	}
	return nil
}

// TeamSize returns the number of team members.
func (p *Project) TeamSize() int { return p.Len() }

func (p *Project) String() string {
	return fmt.Sprintf("Project %q [%s], team of %d", p.name, p.status, p.Len())
}
