// Package employee defines the employee entity hierarchy, its flat record
// form, and the Repository port that containers use to own employees.
package employee

import (
	"fmt"

	"github.com/jsamuelsen11/workforce/internal/domain"
)

// Kind discriminates the employee variants in records and reports.
type Kind string

const (
	KindRegular     Kind = "employee"
	KindManager     Kind = "manager"
	KindDeveloper   Kind = "developer"
	KindSalesperson Kind = "salesperson"
)

// IsValid returns true if the kind is one of the defined constants.
func (k Kind) IsValid() bool {
	switch k {
	case KindRegular, KindManager, KindDeveloper, KindSalesperson:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	return string(k)
}

// Employee is the behavior shared by every variant. The id is fixed at
// construction; setters validate before mutating and leave the entity
// untouched on failure.
type Employee interface {
	ID() int64
	Name() string
	Department() string
	BaseSalary() float64

	SetName(name string) error
	SetDepartment(department string) error
	SetBaseSalary(amount float64) error

	Kind() Kind
	// CalculateSalary returns total monthly compensation.
	CalculateSalary() float64
	Info() string
	Record() Record
}

// Compile-time interface checks.
var (
	_ Employee = (*Regular)(nil)
	_ Employee = (*Manager)(nil)
	_ Employee = (*Developer)(nil)
	_ Employee = (*Salesperson)(nil)
)

// base carries the fields common to every variant.
type base struct {
	id         int64
	name       string
	department string
	baseSalary float64
}

func newBase(id int64, name, department string, baseSalary float64) (base, error) {
	err := domain.Collect(
		domain.ValidateID("id", id),
		domain.ValidateText("name", name),
		domain.ValidateText("department", department),
		domain.ValidatePositiveAmount("base_salary", baseSalary),
	)
	if err != nil {
		return base{}, err
	}
	return base{id: id, name: name, department: department, baseSalary: baseSalary}, nil
}

func (b *base) ID() int64           { return b.id }
func (b *base) Name() string        { return b.name }
func (b *base) Department() string  { return b.department }
func (b *base) BaseSalary() float64 { return b.baseSalary }

func (b *base) SetName(name string) error {
	if err := domain.ValidateText("name", name); err != nil {
		return err
	}
	b.name = name
	return nil
}

func (b *base) SetDepartment(department string) error {
	if err := domain.ValidateText("department", department); err != nil {
		return err
	}
	b.department = department
	return nil
}

func (b *base) SetBaseSalary(amount float64) error {
	if err := domain.ValidatePositiveAmount("base_salary", amount); err != nil {
		return err
	}
	b.baseSalary = amount
	return nil
}

func (b *base) record(kind Kind) Record {
	return Record{
		FieldType:       string(kind),
		FieldID:         b.id,
		FieldName:       b.name,
		FieldDepartment: b.department,
		FieldBaseSalary: b.baseSalary,
	}
}

func (b *base) describe(kind Kind) string {
	return fmt.Sprintf("%s(id=%d, name=%q, department=%q)", kind, b.id, b.name, b.department)
}

// Regular is paid exactly its base salary.
type Regular struct {
	base
}

// NewRegular validates every field and returns a Regular employee.
func NewRegular(id int64, name, department string, baseSalary float64) (*Regular, error) {
	b, err := newBase(id, name, department, baseSalary)
	if err != nil {
		return nil, err
	}
	return &Regular{base: b}, nil
}

func (r *Regular) Kind() Kind { return KindRegular }

func (r *Regular) CalculateSalary() float64 { return r.baseSalary }

func (r *Regular) Info() string {
	return fmt.Sprintf("Employee: %s\nID: %d\nDepartment: %s\nSalary: %.2f",
		r.name, r.id, r.department, r.CalculateSalary())
}

func (r *Regular) Record() Record { return r.record(KindRegular) }

func (r *Regular) String() string { return r.describe(KindRegular) }
