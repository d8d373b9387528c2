package org

import (
	"testing"

	"github.com/jsamuelsen11/workforce/internal/domain"
	"github.com/jsamuelsen11/workforce/internal/domain/bonus"
	"github.com/jsamuelsen11/workforce/internal/domain/employee"
)

func mustRegular(t *testing.T, id int64, name, dept string, salary float64) *employee.Regular {
	t.Helper()

	e, err := employee.NewRegular(id, name, dept, salary)
	if err != nil {
		t.Fatalf("NewRegular(%d) = %v", id, err)
	}
	return e
}

func mustDepartment(t *testing.T, name string, members ...employee.Employee) *Department {
	t.Helper()

	d, err := NewDepartment(name)
	if err != nil {
		t.Fatalf("NewDepartment(%q) = %v", name, err)
	}
	for _, e := range members {
		if err := d.AddEmployee(e); err != nil {
			t.Fatalf("AddEmployee(%d) = %v", e.ID(), err)
		}
	}
	return d
}

// statsDepartment holds a regular (5000), a manager (5000 + 1000) and a
// senior developer (5000 x 2).
func statsDepartment(t *testing.T) *Department {
	t.Helper()

	fixed, _ := bonus.NewFixed(1000)
	mgr, err := employee.NewManager(2, "Bob", "IT", 5000, fixed)
	if err != nil {
		t.Fatalf("NewManager() = %v", err)
	}
	dev, err := employee.NewDeveloper(3, "Carol", "IT", 5000, domain.LevelSenior)
	if err != nil {
		t.Fatalf("NewDeveloper() = %v", err)
	}
	return mustDepartment(t, "IT", mustRegular(t, 1, "Alice", "IT", 5000), mgr, dev)
}
