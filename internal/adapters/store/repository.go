package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jsamuelsen11/workforce/internal/domain"
	"github.com/jsamuelsen11/workforce/internal/domain/employee"
)

var _ employee.Repository = (*SQLRepository)(nil)

// SQLRepository is an employee.Repository that writes through to the
// roster_entries table. Reads are served from an in-memory mirror loaded at
// construction, so lookups and listing keep insertion order without a query.
//
// employee.Repository methods take no context, so Add and Remove run under
// the constructor's context with its cancellation removed: they keep its
// values (trace spans) and a write that has started is never abandoned
// halfway through a roster change or its rollback.
type SQLRepository struct {
	ctx    context.Context
	conn   *Connection
	scope  string
	mirror *employee.MemoryRepository
	pos    map[int64]int
	next   int
}

// NewSQLRepository returns the repository for scope and loads the entries
// already stored under it. A nil conn yields a repository whose writes fail
// with domain.ErrUnavailable.
func NewSQLRepository(ctx context.Context, conn *Connection, scope string) (*SQLRepository, error) {
	r := &SQLRepository{
		ctx:    context.WithoutCancel(ctx),
		conn:   conn,
		scope:  scope,
		mirror: employee.NewMemoryRepository(),
		pos:    make(map[int64]int),
	}
	if conn == nil {
		return r, nil
	}

	var rows []rosterEntry
	err := conn.db.WithContext(ctx).
		Where("scope = ?", scope).
		Order("position").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", scope, err)
	}

	for _, row := range rows {
		e, err := row.employee()
		if err != nil {
			return nil, err
		}
		if err := r.mirror.Add(e); err != nil {
			return nil, fmt.Errorf("loading %s: %w", scope, err)
		}
		r.pos[row.EmployeeID] = row.Position
		r.next = max(r.next, row.Position+1)
	}
	return r, nil
}

// Scope returns the scope the repository reads and writes.
func (r *SQLRepository) Scope() string { return r.scope }

// Add stores e and then makes it visible to reads.
func (r *SQLRepository) Add(e employee.Employee) error {
	if e == nil {
		return &domain.ValidationError{Fields: map[string]string{"employee": domain.MsgRequired}}
	}
	if err := r.available(); err != nil {
		return err
	}
	if _, ok := r.mirror.Get(e.ID()); ok {
		return fmt.Errorf("employee %d: %w", e.ID(), domain.ErrDuplicate)
	}

	row, err := toEntry(r.scope, r.next, e)
	if err != nil {
		return err
	}
	if err := r.conn.db.WithContext(r.ctx).Create(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("employee %d: %w", e.ID(), domain.ErrDuplicate)
		}
		return fmt.Errorf("storing employee %d in %s: %w", e.ID(), r.scope, err)
	}

	if err := r.mirror.Add(e); err != nil {
		return err
	}
	r.pos[e.ID()] = r.next
	r.next++
	return nil
}

// Remove deletes the employee row and drops it from reads.
func (r *SQLRepository) Remove(id int64) error {
	if err := r.available(); err != nil {
		return err
	}
	if _, ok := r.mirror.Get(id); !ok {
		return fmt.Errorf("employee %d: %w", id, domain.ErrNotFound)
	}

	err := r.conn.db.WithContext(r.ctx).
		Where("scope = ? AND employee_id = ?", r.scope, id).
		Delete(&rosterEntry{}).Error
	if err != nil {
		return fmt.Errorf("deleting employee %d from %s: %w", id, r.scope, err)
	}

	delete(r.pos, id)
	return r.mirror.Remove(id)
}

func (r *SQLRepository) Get(id int64) (employee.Employee, bool) {
	return r.mirror.Get(id)
}

func (r *SQLRepository) List() []employee.Employee {
	return r.mirror.List()
}

func (r *SQLRepository) Find(c employee.Criteria) []employee.Employee {
	return r.mirror.Find(c)
}

// Flush rewrites every stored record from the current state of its entity,
// picking up in-place changes such as a raised salary or a new bonus
// strategy.
func (r *SQLRepository) Flush(ctx context.Context) error {
	if err := r.available(); err != nil {
		return err
	}

	members := r.mirror.List()
	if len(members) == 0 {
		return nil
	}

	rows := make([]rosterEntry, 0, len(members))
	for _, e := range members {
		row, err := toEntry(r.scope, r.pos[e.ID()], e)
		if err != nil {
			return err
		}
		rows = append(rows, row)
	}

	err := r.conn.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "scope"}, {Name: "employee_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"kind", "record", "updated_at"}),
	}).Create(&rows).Error
	if err != nil {
		return fmt.Errorf("flushing %s: %w", r.scope, err)
	}
	return nil
}

func (r *SQLRepository) available() error {
	if r.conn == nil {
		return fmt.Errorf("roster store for %s: %w", r.scope, domain.ErrUnavailable)
	}
	return nil
}
