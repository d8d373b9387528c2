package employee

import (
	"fmt"
	"reflect"
)

// Repository is the storage port every container uses to own its employees.
// Ids are unique within one repository. Implementations keep insertion order.
type Repository interface {
	// Add stores e. Returns domain.ErrDuplicate if the id is already present.
	Add(e Employee) error
	// Remove deletes the employee with the given id. Returns
	// domain.ErrNotFound if absent.
	Remove(id int64) error
	// Get returns the employee with the given id. Absence is not an error.
	Get(id int64) (Employee, bool)
	// List returns a snapshot in insertion order.
	List() []Employee
	// Find returns the employees matching every criterion.
	Find(c Criteria) []Employee
}

// Criteria maps record field names to required values. An employee matches
// when every field is present in its record with an equal value. Numbers
// compare by value regardless of type, and fmt.Stringer values compare by
// their string form.
type Criteria map[string]any

// Match reports whether e satisfies every criterion.
func (c Criteria) Match(e Employee) bool {
	if len(c) == 0 {
		return true
	}
	rec := e.Record()
	for field, want := range c {
		got, ok := rec[field]
		if !ok {
			return false
		}
		if !reflect.DeepEqual(normalize(got), normalize(want)) {
			return false
		}
	}
	return true
}

// Filter returns the employees in es that satisfy c, preserving order.
func (c Criteria) Filter(es []Employee) []Employee {
	out := make([]Employee, 0, len(es))
	for _, e := range es {
		if c.Match(e) {
			out = append(out, e)
		}
	}
	return out
}

func normalize(v any) any {
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	case reflect.String:
		return rv.String()
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = normalize(rv.Index(i).Interface())
		}
		return out
	default:
		return v
	}
}
