package employee

import (
	"fmt"
	"math"

	"github.com/jsamuelsen11/workforce/internal/domain"
	"github.com/jsamuelsen11/workforce/internal/domain/bonus"
)

// Record field names.
const (
	FieldType           = "type"
	FieldID             = "id"
	FieldName           = "name"
	FieldDepartment     = "department"
	FieldBaseSalary     = "base_salary"
	FieldBonus          = "bonus"
	FieldTechStack      = "tech_stack"
	FieldSeniorityLevel = "seniority_level"
	FieldCommissionRate = "commission_rate"
	FieldSalesVolume    = "sales_volume"
)

// Record is the flat, serializable form of an employee. The "type" field
// selects the variant when reconstructing.
type Record map[string]any

// FromRecord reconstructs an employee from its record. Missing or
// wrong-typed fields are reported as a *domain.ValidationError; field values
// then go through the same validation as the constructors.
//
// A manager is rebuilt with a fixed strategy paying the recorded bonus, so
// the reconstructed entity computes the same total compensation.
func FromRecord(r Record) (Employee, error) {
	d := decoder{r: r, fields: make(map[string]string)}

	kind := Kind(d.text(FieldType))
	id := d.integer(FieldID)
	name := d.text(FieldName)
	department := d.text(FieldDepartment)
	baseSalary := d.number(FieldBaseSalary)

	if kind != "" && !kind.IsValid() {
		d.fail(FieldType, fmt.Sprintf("unknown employee type %q", kind))
	}

	switch kind {
	case KindManager:
		amount := d.optNumber(FieldBonus)
		if err := d.err(); err != nil {
			return nil, err
		}
		strategy, err := bonus.NewFixed(amount)
		if err != nil {
			return nil, err
		}
		return NewManager(id, name, department, baseSalary, strategy)
	case KindDeveloper:
		skills := d.list(FieldTechStack)
		level := domain.Level(d.optText(FieldSeniorityLevel))
		if err := d.err(); err != nil {
			return nil, err
		}
		return NewDeveloper(id, name, department, baseSalary, level, skills...)
	case KindSalesperson:
		rate := d.number(FieldCommissionRate)
		volume := d.optNumber(FieldSalesVolume)
		if err := d.err(); err != nil {
			return nil, err
		}
		return NewSalesperson(id, name, department, baseSalary, rate, volume)
	default:
		if err := d.err(); err != nil {
			return nil, err
		}
		return NewRegular(id, name, department, baseSalary)
	}
}

// decoder accumulates field errors while reading a record.
type decoder struct {
	r      Record
	fields map[string]string
}

func (d *decoder) fail(field, msg string) {
	if _, ok := d.fields[field]; !ok {
		d.fields[field] = msg
	}
}

func (d *decoder) err() error {
	if len(d.fields) == 0 {
		return nil
	}
	return &domain.ValidationError{Fields: d.fields}
}

func (d *decoder) text(field string) string {
	v, ok := d.r[field]
	if !ok {
		d.fail(field, domain.MsgRequired)
		return ""
	}
	s, ok := v.(string)
	if !ok {
		d.fail(field, fmt.Sprintf("must be a string, got %T", v))
	}
	return s
}

func (d *decoder) optText(field string) string {
	if _, ok := d.r[field]; !ok {
		return ""
	}
	return d.text(field)
}

func (d *decoder) integer(field string) int64 {
	v, ok := d.r[field]
	if !ok {
		d.fail(field, domain.MsgRequired)
		return 0
	}
	switch n := v.(type) {
	case int:
		return int64(n)
	case int32:
		return int64(n)
	case int64:
		return n
	case uint64:
		if n <= math.MaxInt64 {
			return int64(n)
		}
	case float64:
		if n == math.Trunc(n) && math.Abs(n) < 1<<53 {
			return int64(n)
		}
	}
	d.fail(field, fmt.Sprintf("must be an integer, got %T(%v)", v, v))
	return 0
}

func (d *decoder) number(field string) float64 {
	v, ok := d.r[field]
	if !ok {
		d.fail(field, domain.MsgRequired)
		return 0
	}
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case uint64:
		return float64(n)
	}
	d.fail(field, fmt.Sprintf("must be a number, got %T", v))
	return 0
}

func (d *decoder) optNumber(field string) float64 {
	if _, ok := d.r[field]; !ok {
		return 0
	}
	return d.number(field)
}

func (d *decoder) list(field string) []string {
	v, ok := d.r[field]
	if !ok || v == nil {
		return nil
	}
	switch list := v.(type) {
	case []string:
		return list
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			s, ok := item.(string)
			if !ok {
				d.fail(field, fmt.Sprintf("must be a list of strings, got element %T", item))
				return nil
			}
			out = append(out, s)
		}
		return out
	}
	d.fail(field, fmt.Sprintf("must be a list of strings, got %T", v))
	return nil
}
