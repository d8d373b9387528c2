package employee

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/jsamuelsen11/workforce/internal/domain"
	"github.com/jsamuelsen11/workforce/internal/domain/bonus"
)

func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()

	if err == nil {
		t.Fatal("err = nil, want error")
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, got %v", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
}

func mustFixed(t *testing.T, amount float64) bonus.Fixed {
	t.Helper()

	f, err := bonus.NewFixed(amount)
	if err != nil {
		t.Fatalf("bonus.NewFixed(%v) = %v", amount, err)
	}
	return f
}

func TestNewRegular(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		id            int64
		empName       string
		department    string
		salary        float64
		wantField     string
		wantFinancial bool
	}{
		{name: "valid", id: 1, empName: "Alice", department: "IT", salary: 5000},
		{name: "zero id", id: 0, empName: "Alice", department: "IT", salary: 5000, wantField: "id"},
		{name: "negative id", id: -1, empName: "Alice", department: "IT", salary: 5000, wantField: "id"},
		{name: "blank name", id: 1, empName: "  ", department: "IT", salary: 5000, wantField: "name"},
		{name: "empty department", id: 1, empName: "Alice", department: "", salary: 5000, wantField: "department"},
		{name: "zero salary", id: 1, empName: "Alice", department: "IT", salary: 0, wantFinancial: true},
		{name: "negative salary", id: 1, empName: "Alice", department: "IT", salary: -100, wantFinancial: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e, err := NewRegular(tt.id, tt.empName, tt.department, tt.salary)
			switch {
			case tt.wantField != "":
				requireValidationField(t, err, tt.wantField)
			case tt.wantFinancial:
				if !errors.Is(err, domain.ErrFinancial) {
					t.Errorf("NewRegular() = %v, want ErrFinancial", err)
				}
			default:
				if err != nil {
					t.Fatalf("NewRegular() = %v, want nil", err)
				}
				if got := e.CalculateSalary(); got != tt.salary {
					t.Errorf("CalculateSalary() = %v, want %v", got, tt.salary)
				}
			}
		})
	}
}

func TestSetters_AreAtomic(t *testing.T) {
	t.Parallel()

	e, err := NewRegular(1, "Alice", "IT", 5000)
	if err != nil {
		t.Fatalf("NewRegular() = %v", err)
	}

	if err := e.SetBaseSalary(-1); !errors.Is(err, domain.ErrFinancial) {
		t.Errorf("SetBaseSalary(-1) = %v, want ErrFinancial", err)
	}
	if got := e.BaseSalary(); got != 5000 {
		t.Errorf("BaseSalary() = %v after failed set, want 5000", got)
	}

	if err := e.SetName(""); err == nil {
		t.Error("SetName(\"\") = nil, want error")
	}
	if got := e.Name(); got != "Alice" {
		t.Errorf("Name() = %q after failed set, want Alice", got)
	}

	if err := e.SetDepartment("Sales"); err != nil {
		t.Fatalf("SetDepartment() = %v", err)
	}
	if got := e.Department(); got != "Sales" {
		t.Errorf("Department() = %q, want Sales", got)
	}
	if err := e.SetBaseSalary(6000); err != nil {
		t.Fatalf("SetBaseSalary(6000) = %v", err)
	}
	if got := e.CalculateSalary(); got != 6000 {
		t.Errorf("CalculateSalary() = %v, want 6000", got)
	}
}

func TestManager(t *testing.T) {
	t.Parallel()

	t.Run("fixed bonus adds to base", func(t *testing.T) {
		t.Parallel()

		m, err := NewManager(1, "Bob", "IT", 5000, mustFixed(t, 1000))
		if err != nil {
			t.Fatalf("NewManager() = %v", err)
		}
		if got := m.CalculateSalary(); got != 6000 {
			t.Errorf("CalculateSalary() = %v, want 6000", got)
		}
		if got := m.Kind(); got != KindManager {
			t.Errorf("Kind() = %q, want %q", got, KindManager)
		}
	})

	t.Run("nil strategy pays no bonus", func(t *testing.T) {
		t.Parallel()

		m, err := NewManager(1, "Bob", "IT", 5000, nil)
		if err != nil {
			t.Fatalf("NewManager() = %v", err)
		}
		if got := m.CalculateBonus(); got != 0 {
			t.Errorf("CalculateBonus() = %v, want 0", got)
		}
		if _, ok := m.BonusStrategy().(bonus.None); !ok {
			t.Errorf("BonusStrategy() = %T, want bonus.None", m.BonusStrategy())
		}
	})

	t.Run("swapping strategy changes salary", func(t *testing.T) {
		t.Parallel()

		m, _ := NewManager(1, "Bob", "IT", 10000, mustFixed(t, 1000))
		pct, _ := bonus.NewPercentage(0.2)
		m.SetBonusStrategy(pct)
		if got := m.CalculateSalary(); got != 12000 {
			t.Errorf("CalculateSalary() = %v, want 12000", got)
		}
		m.SetBonusStrategy(nil)
		if got := m.CalculateSalary(); got != 10000 {
			t.Errorf("CalculateSalary() after nil = %v, want 10000", got)
		}
	})

	t.Run("strategies read manager attributes", func(t *testing.T) {
		t.Parallel()

		m, _ := NewManager(1, "Bob", "IT", 10000, bonus.Seniority{})
		if got := m.CalculateBonus(); got != 500 {
			t.Errorf("junior seniority bonus = %v, want 500", got)
		}
		if err := m.SetSeniorityLevel(domain.LevelSenior); err != nil {
			t.Fatalf("SetSeniorityLevel() = %v", err)
		}
		if got := m.CalculateBonus(); got != 2000 {
			t.Errorf("senior seniority bonus = %v, want 2000", got)
		}
		requireValidationField(t, m.SetSeniorityLevel("chief"), "seniority_level")

		proj, _ := bonus.NewProjectCount(bonus.DefaultPerProject)
		m.SetBonusStrategy(proj)
		if err := m.SetCompletedProjects(3); err != nil {
			t.Fatalf("SetCompletedProjects() = %v", err)
		}
		if got := m.CalculateBonus(); got != 15000 {
			t.Errorf("project bonus = %v, want 15000", got)
		}
		requireValidationField(t, m.SetCompletedProjects(-1), "completed_projects")

		perf, _ := bonus.NewPerformance(bonus.DefaultPerformanceBase)
		m.SetBonusStrategy(perf)
		if err := m.SetAchievement(1.2); err != nil {
			t.Fatalf("SetAchievement() = %v", err)
		}
		if got := m.CalculateBonus(); got != 11000 {
			t.Errorf("performance bonus = %v, want 11000", got)
		}
		requireValidationField(t, m.SetAchievement(-0.1), "achievement")
	})

	t.Run("info names strategy", func(t *testing.T) {
		t.Parallel()

		m, _ := NewManager(7, "Bob", "IT", 5000, mustFixed(t, 1000))
		info := m.Info()
		for _, want := range []string{"Bob", "ID: 7", "IT", "Total: 6000.00", "Fixed bonus (1000)"} {
			if !strings.Contains(info, want) {
				t.Errorf("Info() = %q, missing %q", info, want)
			}
		}
	})
}

func TestDeveloper(t *testing.T) {
	t.Parallel()

	t.Run("level multipliers", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			level domain.Level
			want  float64
		}{
			{level: "", want: 5000},
			{level: domain.LevelJunior, want: 5000},
			{level: domain.LevelMiddle, want: 7500},
			{level: domain.LevelSenior, want: 10000},
		}
		for _, tt := range tests {
			d, err := NewDeveloper(1, "Carol", "IT", 5000, tt.level)
			if err != nil {
				t.Fatalf("NewDeveloper(%q) = %v", tt.level, err)
			}
			if got := d.CalculateSalary(); got != tt.want {
				t.Errorf("CalculateSalary(%q) = %v, want %v", tt.level, got, tt.want)
			}
		}
	})

	t.Run("unknown level rejected", func(t *testing.T) {
		t.Parallel()

		_, err := NewDeveloper(1, "Carol", "IT", 5000, "wizard")
		requireValidationField(t, err, "seniority_level")

		d, _ := NewDeveloper(1, "Carol", "IT", 5000, domain.LevelMiddle)
		requireValidationField(t, d.SetSeniorityLevel("wizard"), "seniority_level")
		if got := d.SeniorityLevel(); got != domain.LevelMiddle {
			t.Errorf("SeniorityLevel() = %q after failed set, want middle", got)
		}
	})

	t.Run("skills are an ordered set", func(t *testing.T) {
		t.Parallel()

		d, err := NewDeveloper(1, "Carol", "IT", 5000, domain.LevelSenior, "Go", "SQL", "Go")
		if err != nil {
			t.Fatalf("NewDeveloper() = %v", err)
		}
		if err := d.AddSkill("Rust"); err != nil {
			t.Fatalf("AddSkill() = %v", err)
		}
		if err := d.AddSkill("SQL"); err != nil {
			t.Fatalf("AddSkill(dup) = %v", err)
		}
		d.RemoveSkill("COBOL")
		d.RemoveSkill("Go")

		if got, want := d.Skills(), []string{"SQL", "Rust"}; !slices.Equal(got, want) {
			t.Errorf("Skills() = %v, want %v", got, want)
		}
		requireValidationField(t, d.AddSkill(" "), "tech_stack")

		skills := d.Skills()
		skills[0] = "mutated"
		if d.Skills()[0] != "SQL" {
			t.Error("Skills() returned a live slice, want a copy")
		}
	})

	t.Run("info lists skills", func(t *testing.T) {
		t.Parallel()

		d, _ := NewDeveloper(1, "Carol", "IT", 5000, domain.LevelSenior)
		if !strings.Contains(d.Info(), "Skills: none") {
			t.Errorf("Info() = %q, want Skills: none", d.Info())
		}
		_ = d.AddSkill("Go")
		if !strings.Contains(d.Info(), "Skills: Go") {
			t.Errorf("Info() = %q, want Skills: Go", d.Info())
		}
		if !strings.Contains(d.Info(), "Salary: 10000.00") {
			t.Errorf("Info() = %q, want Salary: 10000.00", d.Info())
		}
	})
}

func TestSalesperson(t *testing.T) {
	t.Parallel()

	s, err := NewSalesperson(1, "Dan", "Sales", 4000, 0.15, 50000)
	if err != nil {
		t.Fatalf("NewSalesperson() = %v", err)
	}
	if got := s.CalculateSalary(); got != 11500 {
		t.Errorf("CalculateSalary() = %v, want 11500", got)
	}
	if got := s.CalculateCommission(); got != 7500 {
		t.Errorf("CalculateCommission() = %v, want 7500", got)
	}

	if err := s.SetSalesVolume(-1); !errors.Is(err, domain.ErrFinancial) {
		t.Errorf("SetSalesVolume(-1) = %v, want ErrFinancial", err)
	}
	if err := s.SetCommissionRate(-0.1); !errors.Is(err, domain.ErrFinancial) {
		t.Errorf("SetCommissionRate(-0.1) = %v, want ErrFinancial", err)
	}
	if got := s.CalculateSalary(); got != 11500 {
		t.Errorf("CalculateSalary() after failed sets = %v, want 11500", got)
	}

	if err := s.SetSalesVolume(0); err != nil {
		t.Fatalf("SetSalesVolume(0) = %v", err)
	}
	if got := s.CalculateSalary(); got != 4000 {
		t.Errorf("CalculateSalary() with no sales = %v, want 4000", got)
	}

	if _, err := NewSalesperson(1, "Dan", "Sales", 4000, -1, 0); !errors.Is(err, domain.ErrFinancial) {
		t.Errorf("NewSalesperson(negative rate) = %v, want ErrFinancial", err)
	}
}

func TestCompareAndSum(t *testing.T) {
	t.Parallel()

	regular, _ := NewRegular(1, "Alice", "IT", 5000)
	manager, _ := NewManager(2, "Bob", "IT", 5000, mustFixed(t, 1000))
	dev, _ := NewDeveloper(3, "Carol", "IT", 5000, domain.LevelSenior)

	if Compare(regular, manager) >= 0 {
		t.Error("Compare(regular, manager) >= 0, want < 0")
	}
	if Compare(dev, manager) <= 0 {
		t.Error("Compare(dev, manager) <= 0, want > 0")
	}
	if got := Sum(regular, manager, dev); got != 21000 {
		t.Errorf("Sum() = %v, want 21000", got)
	}
	if got := Sum(); got != 0 {
		t.Errorf("Sum() of none = %v, want 0", got)
	}

	list := []Employee{dev, regular, manager}
	SortBySalary(list)
	if list[0].ID() != 1 || list[1].ID() != 2 || list[2].ID() != 3 {
		t.Errorf("SortBySalary() order = [%d %d %d], want [1 2 3]", list[0].ID(), list[1].ID(), list[2].ID())
	}
}

func TestEqual(t *testing.T) {
	t.Parallel()

	a, _ := NewRegular(1, "Alice", "IT", 5000)
	b, _ := NewManager(1, "Someone else", "HR", 9000, nil)
	c, _ := NewRegular(2, "Alice", "IT", 5000)

	if !Equal(a, b) {
		t.Error("Equal(same id) = false, want true")
	}
	if Equal(a, c) {
		t.Error("Equal(different id) = true, want false")
	}
	if Equal(a, nil) {
		t.Error("Equal(a, nil) = true, want false")
	}
	if !Equal(nil, nil) {
		t.Error("Equal(nil, nil) = false, want true")
	}
}
