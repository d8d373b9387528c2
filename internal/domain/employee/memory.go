package employee

import (
	"fmt"

	"github.com/jsamuelsen11/workforce/internal/domain"
	"github.com/jsamuelsen11/workforce/internal/domain/keyed"
)

// MemoryRepository is the in-process Repository.
type MemoryRepository struct {
	items *keyed.List[int64, Employee]
}

var _ Repository = (*MemoryRepository)(nil)

// NewMemoryRepository returns an empty MemoryRepository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{items: keyed.New(Employee.ID)}
}

func (r *MemoryRepository) Add(e Employee) error {
	if e == nil {
		return &domain.ValidationError{Fields: map[string]string{"employee": domain.MsgRequired}}
	}
	if r.items.Has(e.ID()) {
		return fmt.Errorf("employee %d: %w", e.ID(), domain.ErrDuplicate)
	}
	return r.items.Add(e)
}

func (r *MemoryRepository) Remove(id int64) error {
	if !r.items.Has(id) {
		return fmt.Errorf("employee %d: %w", id, domain.ErrNotFound)
	}
	_, err := r.items.Remove(id)
	return err
}

func (r *MemoryRepository) Get(id int64) (Employee, bool) {
	return r.items.Get(id)
}

func (r *MemoryRepository) List() []Employee {
	return r.items.Values()
}

func (r *MemoryRepository) Find(c Criteria) []Employee {
	return c.Filter(r.items.Values())
}

// Len returns the number of stored employees.
func (r *MemoryRepository) Len() int {
	return r.items.Len()
}
