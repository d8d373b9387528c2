package employee

import (
	"fmt"

	"github.com/jsamuelsen11/workforce/internal/domain"
	"github.com/jsamuelsen11/workforce/internal/domain/bonus"
)

// Manager is paid base salary plus whatever its bonus strategy yields.
// The optional level, achievement and completed project count are read by
// strategies that depend on them.
type Manager struct {
	base
	strategy bonus.Strategy

	level          domain.Level
	achievement    float64
	hasAchievement bool
	projects       int
	hasProjects    bool
}

var (
	_ bonus.Leveled        = (*Manager)(nil)
	_ bonus.Achiever       = (*Manager)(nil)
	_ bonus.ProjectCounter = (*Manager)(nil)
)

// NewManager validates every field and returns a Manager. A nil strategy
// selects bonus.None.
func NewManager(id int64, name, department string, baseSalary float64, strategy bonus.Strategy) (*Manager, error) {
	b, err := newBase(id, name, department, baseSalary)
	if err != nil {
		return nil, err
	}
	if strategy == nil {
		strategy = bonus.None{}
	}
	return &Manager{base: b, strategy: strategy, level: domain.LevelJunior}, nil
}

func (m *Manager) Kind() Kind { return KindManager }

// BonusStrategy returns the strategy currently in effect.
func (m *Manager) BonusStrategy() bonus.Strategy { return m.strategy }

// SetBonusStrategy replaces the strategy. A nil strategy selects bonus.None.
func (m *Manager) SetBonusStrategy(s bonus.Strategy) {
	if s == nil {
		s = bonus.None{}
	}
	m.strategy = s
}

// CalculateBonus returns the bonus the current strategy yields.
func (m *Manager) CalculateBonus() float64 {
	return m.strategy.Calculate(m)
}

func (m *Manager) CalculateSalary() float64 {
	return m.baseSalary + m.CalculateBonus()
}

// SeniorityLevel implements bonus.Leveled.
func (m *Manager) SeniorityLevel() domain.Level { return m.level }

// SetSeniorityLevel sets the level read by seniority-based strategies.
func (m *Manager) SetSeniorityLevel(level domain.Level) error {
	if !level.IsValid() {
		return &domain.ValidationError{Fields: map[string]string{
			"seniority_level": fmt.Sprintf("unknown level %q", level),
		}}
	}
	m.level = level
	return nil
}

// Achievement implements bonus.Achiever.
func (m *Manager) Achievement() (float64, bool) { return m.achievement, m.hasAchievement }

// SetAchievement records the goal achievement ratio (1.0 = goal met).
func (m *Manager) SetAchievement(ratio float64) error {
	if !(ratio >= 0) {
		return &domain.ValidationError{Fields: map[string]string{
			"achievement": fmt.Sprintf("must not be negative, got %v", ratio),
		}}
	}
	m.achievement, m.hasAchievement = ratio, true
	return nil
}

// CompletedProjects implements bonus.ProjectCounter.
func (m *Manager) CompletedProjects() (int, bool) { return m.projects, m.hasProjects }

// SetCompletedProjects records how many projects the manager has delivered.
func (m *Manager) SetCompletedProjects(n int) error {
	if n < 0 {
		return &domain.ValidationError{Fields: map[string]string{
			"completed_projects": fmt.Sprintf("must not be negative, got %d", n),
		}}
	}
	m.projects, m.hasProjects = n, true
	return nil
}

func (m *Manager) Info() string {
	return fmt.Sprintf("Manager: %s\nID: %d\nDepartment: %s\nBase salary: %.2f\nBonus: %.2f\nTotal: %.2f\nStrategy: %s",
		m.name, m.id, m.department, m.baseSalary, m.CalculateBonus(), m.CalculateSalary(), m.strategy.Name())
}

// Record reports the bonus as its current computed amount.
func (m *Manager) Record() Record {
	r := m.record(KindManager)
	r[FieldBonus] = m.CalculateBonus()
	return r
}

func (m *Manager) String() string { return m.describe(KindManager) }
