package employee

import (
	"encoding/json"
	"reflect"
	"slices"
	"testing"

	"github.com/jsamuelsen11/workforce/internal/domain"
	"github.com/jsamuelsen11/workforce/internal/domain/bonus"
)

func TestRecord_Fields(t *testing.T) {
	t.Parallel()

	dev, _ := NewDeveloper(3, "Carol", "IT", 5000, domain.LevelSenior, "Go")
	rec := dev.Record()

	if got := rec[FieldType]; got != "developer" {
		t.Errorf("record type = %v, want developer", got)
	}
	if got := rec[FieldSeniorityLevel]; got != "senior" {
		t.Errorf("record seniority_level = %v, want senior", got)
	}
	if got, ok := rec[FieldTechStack].([]string); !ok || !slices.Equal(got, []string{"Go"}) {
		t.Errorf("record tech_stack = %v, want [Go]", rec[FieldTechStack])
	}

	sales, _ := NewSalesperson(4, "Dan", "Sales", 4000, 0.15, 50000)
	rec = sales.Record()
	if rec[FieldCommissionRate] != 0.15 || rec[FieldSalesVolume] != 50000.0 {
		t.Errorf("salesperson record = %v, want commission_rate 0.15 and sales_volume 50000", rec)
	}

	seniority := bonus.Seniority{}
	mgr, _ := NewManager(2, "Bob", "IT", 10000, seniority)
	if got := mgr.Record()[FieldBonus]; got != 500.0 {
		t.Errorf("manager record bonus = %v, want 500", got)
	}
}

func roundTripEmployees(t *testing.T) []Employee {
	t.Helper()

	regular, err := NewRegular(1, "Alice", "IT", 5000)
	if err != nil {
		t.Fatalf("NewRegular() = %v", err)
	}
	perf, _ := bonus.NewPerformance(bonus.DefaultPerformanceBase)
	manager, err := NewManager(2, "Bob", "IT", 5000, perf)
	if err != nil {
		t.Fatalf("NewManager() = %v", err)
	}
	if err := manager.SetAchievement(1.2); err != nil {
		t.Fatalf("SetAchievement() = %v", err)
	}
	dev, err := NewDeveloper(3, "Carol", "IT", 5000, domain.LevelMiddle, "SQL", "Go", "Rust")
	if err != nil {
		t.Fatalf("NewDeveloper() = %v", err)
	}
	sales, err := NewSalesperson(4, "Dan", "Sales", 4000, 0.15, 50000)
	if err != nil {
		t.Fatalf("NewSalesperson() = %v", err)
	}
	return []Employee{regular, manager, dev, sales}
}

func TestFromRecord_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, original := range roundTripEmployees(t) {
		t.Run(string(original.Kind()), func(t *testing.T) {
			t.Parallel()

			got, err := FromRecord(original.Record())
			if err != nil {
				t.Fatalf("FromRecord() = %v", err)
			}
			if got.Kind() != original.Kind() {
				t.Errorf("Kind() = %q, want %q", got.Kind(), original.Kind())
			}
			if !reflect.DeepEqual(got.Record(), original.Record()) {
				t.Errorf("Record() = %v, want %v", got.Record(), original.Record())
			}
			if got.CalculateSalary() != original.CalculateSalary() {
				t.Errorf("CalculateSalary() = %v, want %v", got.CalculateSalary(), original.CalculateSalary())
			}
		})
	}
}

func TestFromRecord_JSONRoundTrip(t *testing.T) {
	t.Parallel()

	for _, original := range roundTripEmployees(t) {
		t.Run(string(original.Kind()), func(t *testing.T) {
			t.Parallel()

			raw, err := json.Marshal(original.Record())
			if err != nil {
				t.Fatalf("json.Marshal() = %v", err)
			}
			var rec Record
			if err := json.Unmarshal(raw, &rec); err != nil {
				t.Fatalf("json.Unmarshal() = %v", err)
			}

			got, err := FromRecord(rec)
			if err != nil {
				t.Fatalf("FromRecord() = %v", err)
			}
			if !reflect.DeepEqual(got.Record(), original.Record()) {
				t.Errorf("Record() = %v, want %v", got.Record(), original.Record())
			}
			if got.CalculateSalary() != original.CalculateSalary() {
				t.Errorf("CalculateSalary() = %v, want %v", got.CalculateSalary(), original.CalculateSalary())
			}
		})
	}
}

func TestFromRecord_DecodedJSON(t *testing.T) {
	t.Parallel()

	rec := Record{
		"type":            "developer",
		"id":              float64(9),
		"name":            "Eve",
		"department":      "IT",
		"base_salary":     float64(4000),
		"tech_stack":      []any{"Go", "Go", "Python"},
		"seniority_level": "senior",
	}

	e, err := FromRecord(rec)
	if err != nil {
		t.Fatalf("FromRecord() = %v", err)
	}
	if e.ID() != 9 {
		t.Errorf("ID() = %d, want 9", e.ID())
	}
	dev, ok := e.(*Developer)
	if !ok {
		t.Fatalf("FromRecord() = %T, want *Developer", e)
	}
	if got := dev.Skills(); !slices.Equal(got, []string{"Go", "Python"}) {
		t.Errorf("Skills() = %v, want [Go Python]", got)
	}
	if got := dev.CalculateSalary(); got != 8000 {
		t.Errorf("CalculateSalary() = %v, want 8000", got)
	}
}

func TestFromRecord_Errors(t *testing.T) {
	t.Parallel()

	valid := func() Record {
		return Record{"type": "employee", "id": int64(1), "name": "Alice", "department": "IT", "base_salary": 5000.0}
	}

	tests := []struct {
		name      string
		modify    func(Record)
		wantField string
	}{
		{name: "missing type", modify: func(r Record) { delete(r, "type") }, wantField: "type"},
		{name: "unknown type", modify: func(r Record) { r["type"] = "intern" }, wantField: "type"},
		{name: "missing id", modify: func(r Record) { delete(r, "id") }, wantField: "id"},
		{name: "string id", modify: func(r Record) { r["id"] = "1" }, wantField: "id"},
		{name: "fractional id", modify: func(r Record) { r["id"] = 1.5 }, wantField: "id"},
		{name: "non-string name", modify: func(r Record) { r["name"] = 42 }, wantField: "name"},
		{name: "missing salary", modify: func(r Record) { delete(r, "base_salary") }, wantField: "base_salary"},
		{name: "zero id fails validation", modify: func(r Record) { r["id"] = 0 }, wantField: "id"},
		{
			name: "developer with bad skills",
			modify: func(r Record) {
				r["type"] = "developer"
				r["tech_stack"] = []any{"Go", 3}
			},
			wantField: "tech_stack",
		},
		{
			name:      "salesperson without rate",
			modify:    func(r Record) { r["type"] = "salesperson" },
			wantField: "commission_rate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := valid()
			tt.modify(rec)
			_, err := FromRecord(rec)
			requireValidationField(t, err, tt.wantField)
		})
	}
}
