package store

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"

	"github.com/jsamuelsen11/workforce/internal/domain/employee"
)

// rosterEntry is one employee of one container. Scope separates containers
// (e.g. "department:Engineering") so ids only need to be unique per scope.
type rosterEntry struct {
	Scope      string         `gorm:"primaryKey;size:191"`
	EmployeeID int64          `gorm:"primaryKey;autoIncrement:false"`
	Kind       string         `gorm:"size:32;not null"`
	Position   int            `gorm:"not null;index"`
	Record     datatypes.JSON `gorm:"not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (rosterEntry) TableName() string { return "roster_entries" }

func toEntry(scope string, position int, e employee.Employee) (rosterEntry, error) {
	raw, err := json.Marshal(e.Record())
	if err != nil {
		return rosterEntry{}, fmt.Errorf("encoding employee %d: %w", e.ID(), err)
	}
	return rosterEntry{
		Scope:      scope,
		EmployeeID: e.ID(),
		Kind:       e.Kind().String(),
		Position:   position,
		Record:     datatypes.JSON(raw),
	}, nil
}

func (r rosterEntry) employee() (employee.Employee, error) {
	var rec employee.Record
	if err := json.Unmarshal(r.Record, &rec); err != nil {
		return nil, fmt.Errorf("decoding employee %d in %s: %w", r.EmployeeID, r.Scope, err)
	}
	e, err := employee.FromRecord(rec)
	if err != nil {
		return nil, fmt.Errorf("rebuilding employee %d in %s: %w", r.EmployeeID, r.Scope, err)
	}
	return e, nil
}
