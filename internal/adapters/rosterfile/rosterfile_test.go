package rosterfile_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jsamuelsen11/workforce/internal/adapters/rosterfile"
	"github.com/jsamuelsen11/workforce/internal/domain"
	"github.com/jsamuelsen11/workforce/internal/domain/employee"
	"github.com/jsamuelsen11/workforce/internal/domain/org"
)

const sampleRoster = `
departments:
  - name: Engineering
    employees:
      - kind: manager
        id: 1
        name: Alice
        base_salary: 7000
        seniority_level: senior
        bonus:
          kind: composite
          children:
            - kind: seniority
            - kind: fixed
              amount: 500
      - kind: developer
        id: 2
        name: Bob
        base_salary: 5000
        seniority_level: middle
        tech_stack: [Go, SQL]
  - name: Sales
    employees:
      - kind: salesperson
        id: 1
        name: Eve
        base_salary: 4000
        commission_rate: 0.15
        sales_volume: 50000
      - id: 2
        name: Frank
        department: Field Sales
        base_salary: 3000
projects:
  - id: 7
    name: Migration
    start_date: 2026-01-15
    status: active
    members: [1, 2]
`

func TestParse(t *testing.T) {
	t.Parallel()

	plan, err := rosterfile.Parse(strings.NewReader(sampleRoster))
	if err != nil {
		t.Fatalf("Parse() error = %v, want nil", err)
	}

	if len(plan.Departments) != 2 {
		t.Fatalf("len(Departments) = %d, want 2", len(plan.Departments))
	}

	eng := plan.Departments[0]
	if eng.Name != "Engineering" || len(eng.Employees) != 2 {
		t.Fatalf("Departments[0] = %s with %d employees, want Engineering with 2", eng.Name, len(eng.Employees))
	}
	manager, ok := eng.Employees[0].(*employee.Manager)
	if !ok {
		t.Fatalf("Employees[0] = %T, want *employee.Manager", eng.Employees[0])
	}
	// 7000 * 0.20 seniority + 500 fixed.
	if got := manager.CalculateBonus(); got != 1900 {
		t.Errorf("CalculateBonus() = %v, want 1900", got)
	}
	if manager.Department() != "Engineering" {
		t.Errorf("Department() = %q, want department default \"Engineering\"", manager.Department())
	}

	dev, ok := eng.Employees[1].(*employee.Developer)
	if !ok {
		t.Fatalf("Employees[1] = %T, want *employee.Developer", eng.Employees[1])
	}
	if dev.SeniorityLevel() != domain.LevelMiddle {
		t.Errorf("SeniorityLevel() = %q, want middle", dev.SeniorityLevel())
	}
	if skills := dev.Skills(); len(skills) != 2 || skills[0] != "Go" {
		t.Errorf("Skills() = %v, want [Go SQL]", skills)
	}

	sales := plan.Departments[1]
	if got := sales.Employees[0].CalculateSalary(); got != 11500 {
		t.Errorf("salesperson CalculateSalary() = %v, want 11500", got)
	}
	regular := sales.Employees[1]
	if regular.Kind() != employee.KindRegular {
		t.Errorf("Kind() = %q, want regular when kind is omitted", regular.Kind())
	}
	if regular.Department() != "Field Sales" {
		t.Errorf("Department() = %q, want explicit \"Field Sales\"", regular.Department())
	}

	if len(plan.Projects) != 1 {
		t.Fatalf("len(Projects) = %d, want 1", len(plan.Projects))
	}
	pp := plan.Projects[0]
	if pp.Project.Status() != org.StatusActive {
		t.Errorf("Status() = %q, want active", pp.Project.Status())
	}
	if want := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC); !pp.Project.StartDate().Equal(want) {
		t.Errorf("StartDate() = %v, want %v", pp.Project.StartDate(), want)
	}
	if len(pp.MemberIDs) != 2 || pp.MemberIDs[1] != 2 {
		t.Errorf("MemberIDs = %v, want [1 2]", pp.MemberIDs)
	}
}

func TestParse_BonusAmounts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		bonus string
		want  float64
	}{
		{name: "project default amount", bonus: "{kind: project}", want: 15000},
		{name: "project explicit zero", bonus: "{kind: project, amount: 0}", want: 0},
		{name: "project custom amount", bonus: "{kind: project, amount: 100}", want: 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc := `
departments:
  - name: Engineering
    employees:
      - kind: manager
        id: 1
        name: Alice
        base_salary: 7000
        completed_projects: 3
        bonus: ` + tt.bonus + "\n"

			plan, err := rosterfile.Parse(strings.NewReader(doc))
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			m, ok := plan.Departments[0].Employees[0].(*employee.Manager)
			if !ok {
				t.Fatalf("employee = %T, want *employee.Manager", plan.Departments[0].Employees[0])
			}
			if got := m.CalculateBonus(); got != tt.want {
				t.Errorf("CalculateBonus() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParse_EmptyDocument(t *testing.T) {
	t.Parallel()

	plan, err := rosterfile.Parse(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Parse(empty) error = %v, want nil", err)
	}
	if len(plan.Departments) != 0 || len(plan.Projects) != 0 {
		t.Errorf("Parse(empty) = %+v, want empty plan", plan)
	}
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		doc      string
		wantIs   error
		wantText string
	}{
		{
			name:     "unknown key",
			doc:      "departments:\n  - name: Eng\n    staff: []\n",
			wantText: "staff",
		},
		{
			name:     "negative salary",
			doc:      "departments:\n  - name: Eng\n    employees:\n      - id: 1\n        name: A\n        base_salary: -5\n",
			wantIs:   domain.ErrFinancial,
			wantText: "departments[0].employees[0]",
		},
		{
			name:     "unknown employee kind",
			doc:      "departments:\n  - name: Eng\n    employees:\n      - kind: intern\n        id: 1\n        name: A\n        base_salary: 5\n",
			wantIs:   domain.ErrValidation,
			wantText: "intern",
		},
		{
			name:     "unknown bonus kind",
			doc:      "departments:\n  - name: Eng\n    employees:\n      - kind: manager\n        id: 1\n        name: A\n        base_salary: 5\n        bonus:\n          kind: lottery\n",
			wantIs:   domain.ErrValidation,
			wantText: "bonus",
		},
		{
			name:     "blank department name",
			doc:      "departments:\n  - name: \"\"\n",
			wantIs:   domain.ErrValidation,
			wantText: "departments[0]",
		},
		{
			name:     "invalid project status",
			doc:      "projects:\n  - id: 1\n    name: P\n    status: paused\n",
			wantIs:   domain.ErrInvalidStatus,
			wantText: "projects[0]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			plan, err := rosterfile.Parse(strings.NewReader(tt.doc))
			if err == nil {
				t.Fatalf("Parse() = %+v, want error", plan)
			}
			if tt.wantIs != nil && !errors.Is(err, tt.wantIs) {
				t.Errorf("Parse() error = %v, want %v", err, tt.wantIs)
			}
			if !strings.Contains(err.Error(), tt.wantText) {
				t.Errorf("Parse() error = %q, want it to mention %q", err.Error(), tt.wantText)
			}
		})
	}
}

func TestParse_ReportsEveryInvalidEntry(t *testing.T) {
	t.Parallel()

	doc := `
departments:
  - name: Eng
    employees:
      - id: 0
        name: A
        base_salary: 10
      - id: 2
        name: ""
        base_salary: 10
`
	_, err := rosterfile.Parse(strings.NewReader(doc))
	if err == nil {
		t.Fatal("Parse() returned nil error, want error")
	}
	for _, want := range []string{"employees[0]", "employees[1]"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Parse() error = %q, want it to mention %q", err.Error(), want)
		}
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	plan, err := rosterfile.Load("../../../configs/roster.example.yaml")
	if err != nil {
		t.Fatalf("Load(example) error = %v", err)
	}
	if len(plan.Departments) == 0 {
		t.Error("Load(example) returned no departments")
	}

	if _, err := rosterfile.Load("does-not-exist.yaml"); err == nil {
		t.Error("Load(missing) returned nil error, want error")
	}
}
