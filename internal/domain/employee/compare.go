package employee

import (
	"cmp"
	"slices"
)

// Equal reports whether a and b are the same employee. Identity is the id;
// two nil employees are equal.
func Equal(a, b Employee) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.ID() == b.ID()
}

// Compare orders employees by total compensation, for use with
// slices.SortFunc and friends.
func Compare(a, b Employee) int {
	return cmp.Compare(a.CalculateSalary(), b.CalculateSalary())
}

// Sum adds the total compensation of every employee.
func Sum(employees ...Employee) float64 {
	var total float64
	for _, e := range employees {
		total += e.CalculateSalary()
	}
	return total
}

// SortBySalary sorts employees in place by ascending total compensation.
// Employees with equal pay keep their relative order.
func SortBySalary(employees []Employee) {
	slices.SortStableFunc(employees, Compare)
}
