package employee

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jsamuelsen11/workforce/internal/domain"
)

// Developer is paid base salary scaled by seniority level, and keeps an
// ordered set of skills.
type Developer struct {
	base
	level  domain.Level
	skills []string
}

// NewDeveloper validates every field and returns a Developer. An empty level
// selects junior; any other level outside the closed set is rejected.
// Duplicate skills are dropped.
func NewDeveloper(id int64, name, department string, baseSalary float64, level domain.Level, skills ...string) (*Developer, error) {
	if level == "" {
		level = domain.LevelJunior
	}

	errs := []error{validateLevel(level)}
	for _, s := range skills {
		errs = append(errs, domain.ValidateText("tech_stack", s))
	}
	b, baseErr := newBase(id, name, department, baseSalary)
	if err := domain.Collect(append(errs, baseErr)...); err != nil {
		return nil, err
	}

	d := &Developer{base: b, level: level}
	for _, s := range skills {
		d.addSkill(s)
	}
	return d, nil
}

func validateLevel(level domain.Level) error {
	if !level.IsValid() {
		return &domain.ValidationError{Fields: map[string]string{
			"seniority_level": fmt.Sprintf("unknown level %q", level),
		}}
	}
	return nil
}

func (d *Developer) Kind() Kind { return KindDeveloper }

func (d *Developer) CalculateSalary() float64 {
	return d.baseSalary * d.level.SalaryMultiplier()
}

// SeniorityLevel implements bonus.Leveled.
func (d *Developer) SeniorityLevel() domain.Level { return d.level }

// SetSeniorityLevel changes the level, which rescales total compensation.
func (d *Developer) SetSeniorityLevel(level domain.Level) error {
	if err := validateLevel(level); err != nil {
		return err
	}
	d.level = level
	return nil
}

// AddSkill appends a skill. Adding a skill already held is a no-op.
func (d *Developer) AddSkill(skill string) error {
	if err := domain.ValidateText("tech_stack", skill); err != nil {
		return err
	}
	d.addSkill(skill)
	return nil
}

func (d *Developer) addSkill(skill string) {
	if !slices.Contains(d.skills, skill) {
		d.skills = append(d.skills, skill)
	}
}

// RemoveSkill drops a skill. Removing a skill not held is a no-op.
func (d *Developer) RemoveSkill(skill string) {
	if i := slices.Index(d.skills, skill); i >= 0 {
		d.skills = slices.Delete(d.skills, i, i+1)
	}
}

// Skills returns a copy of the skills in the order they were added.
func (d *Developer) Skills() []string {
	return slices.Clone(d.skills)
}

func (d *Developer) Info() string {
	skills := "none"
	if len(d.skills) > 0 {
		skills = strings.Join(d.skills, ", ")
	}
	return fmt.Sprintf("Developer: %s (%s)\nID: %d\nDepartment: %s\nSkills: %s\nSalary: %.2f",
		d.name, d.level, d.id, d.department, skills, d.CalculateSalary())
}

func (d *Developer) Record() Record {
	r := d.record(KindDeveloper)
	r[FieldTechStack] = d.Skills()
	r[FieldSeniorityLevel] = string(d.level)
	return r
}

func (d *Developer) String() string { return d.describe(KindDeveloper) }
