package org

import (
	"iter"
	"math"
	"strconv"

	"github.com/jsamuelsen11/workforce/internal/domain/employee"
	"github.com/jsamuelsen11/workforce/internal/domain/keyed"
)

// Statistics summarizes total compensation across a set of employees.
// Every field is zero for an empty set.
type Statistics struct {
	Total   float64
	Average float64
	Min     float64
	Max     float64
	Count   int
}

// roster gives a container read access to the employees in its repository
// with sequence semantics. Writes go through the embedding container.
type roster struct {
	repo employee.Repository
}

func (r roster) add(e employee.Employee) error {
	return r.repo.Add(e)
}

func (r roster) remove(id int64) error {
	return r.repo.Remove(id)
}

// Len returns the number of employees.
func (r roster) Len() int {
	return len(r.repo.List())
}

// At returns the employee at position i. Negative positions count from the
// end. Returns domain.ErrIndexOutOfRange outside the roster.
func (r roster) At(i int) (employee.Employee, error) {
	return keyed.At(r.repo.List(), i)
}

// Slice returns the employees in [start, stop). Negative bounds count from
// the end and out-of-range bounds are clamped, so Slice never fails.
func (r roster) Slice(start, stop int) []employee.Employee {
	return keyed.Slice(r.repo.List(), start, stop)
}

// Contains reports whether an employee with e's id is on the roster.
func (r roster) Contains(e employee.Employee) bool {
	if e == nil {
		return false
	}
	return r.ContainsID(e.ID())
}

// ContainsID reports whether an employee with the given id is on the roster.
func (r roster) ContainsID(id int64) bool {
	_, ok := r.repo.Get(id)
	return ok
}

// Employee returns the employee with the given id.
func (r roster) Employee(id int64) (employee.Employee, bool) {
	return r.repo.Get(id)
}

// Members returns a snapshot of the roster in insertion order.
func (r roster) Members() []employee.Employee {
	return r.repo.List()
}

// All iterates the roster in insertion order.
func (r roster) All() iter.Seq2[int, employee.Employee] {
	return func(yield func(int, employee.Employee) bool) {
		for i, e := range r.repo.List() {
			if !yield(i, e) {
				return
			}
		}
	}
}

// Find returns the employees matching every criterion.
func (r roster) Find(c employee.Criteria) []employee.Employee {
	return r.repo.Find(c)
}

// IDs returns employee ids in insertion order.
func (r roster) IDs() []int64 {
	members := r.repo.List()
	ids := make([]int64, len(members))
	for i, e := range members {
		ids[i] = e.ID()
	}
	return ids
}

// TotalSalary sums total compensation across the roster.
func (r roster) TotalSalary() float64 {
	return employee.Sum(r.repo.List()...)
}

// AverageSalary returns mean compensation, or 0 for an empty roster.
func (r roster) AverageSalary() float64 {
	return r.Statistics().Average
}

// Statistics returns total, average, min, max and count of compensation.
func (r roster) Statistics() Statistics {
	return statisticsOf(r.repo.List())
}

func statisticsOf(members []employee.Employee) Statistics {
	if len(members) == 0 {
		return Statistics{}
	}

	first := members[0].CalculateSalary()
	s := Statistics{Min: first, Max: first, Count: len(members)}
	for _, e := range members {
		pay := e.CalculateSalary()
		s.Total += pay
		s.Min = min(s.Min, pay)
		s.Max = max(s.Max, pay)
	}
	s.Average = s.Total / float64(s.Count)
	return s
}

// SalaryRange is the half-open compensation band [Min, Max).
type SalaryRange struct {
	Min float64
	Max float64
}

// DefaultSalaryRanges are the bands GroupBySalaryRange uses when given none.
var DefaultSalaryRanges = []SalaryRange{
	{Min: 0, Max: 50000},
	{Min: 50000, Max: 100000},
	{Min: 100000, Max: math.Inf(1)},
}

// Contains reports whether pay falls within the range.
func (sr SalaryRange) Contains(pay float64) bool {
	return sr.Min <= pay && pay < sr.Max
}

func (sr SalaryRange) String() string {
	if math.IsInf(sr.Max, 1) {
		return formatAmount(sr.Min) + "+"
	}
	return formatAmount(sr.Min) + "-" + formatAmount(sr.Max)
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// SalaryBand is a salary range with the employees whose total compensation
// falls within it.
type SalaryBand struct {
	Range   SalaryRange
	Members []employee.Employee
}

// GroupBySalaryRange places each employee in the first range containing its
// total compensation and returns the non-empty bands in range order.
// Employees outside every range are left out. With no ranges,
// DefaultSalaryRanges apply.
func (r roster) GroupBySalaryRange(ranges ...SalaryRange) []SalaryBand {
	if len(ranges) == 0 {
		ranges = DefaultSalaryRanges
	}

	members := make([][]employee.Employee, len(ranges))
	for _, e := range r.repo.List() {
		pay := e.CalculateSalary()
		for i, sr := range ranges {
			if sr.Contains(pay) {
				members[i] = append(members[i], e)
				break
			}
		}
	}

	bands := make([]SalaryBand, 0, len(ranges))
	for i, sr := range ranges {
		if len(members[i]) > 0 {
			bands = append(bands, SalaryBand{Range: sr, Members: members[i]})
		}
	}
	return bands
}

// CountByKind returns headcount per employee variant.
func (r roster) CountByKind() map[employee.Kind]int {
	counts := make(map[employee.Kind]int)
	for _, e := range r.repo.List() {
		counts[e.Kind()]++
	}
	return counts
}
