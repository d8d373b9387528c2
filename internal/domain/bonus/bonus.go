// Package bonus defines the bonus calculation policies a manager can hold.
// Strategies are pure: they read a Subject and never mutate it.
package bonus

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/workforce/internal/domain"
)

// Default parameters for strategies that take an optional amount.
const (
	DefaultPerProject         = 5000.0
	DefaultPerformanceBase    = 10000.0
	DefaultAchievement        = 0.8
	performanceFloor          = 0.5
	performanceOverachieveMul = 0.5
)

// Subject is what a strategy computes a bonus for.
type Subject interface {
	BaseSalary() float64
}

// Leveled is implemented by subjects that carry a seniority level.
type Leveled interface {
	SeniorityLevel() domain.Level
}

// Achiever is implemented by subjects that may carry a goal achievement
// ratio (1.0 means the goal was met exactly).
type Achiever interface {
	Achievement() (float64, bool)
}

// ProjectCounter is implemented by subjects that may carry a count of
// completed projects.
type ProjectCounter interface {
	CompletedProjects() (int, bool)
}

// Strategy computes a bonus amount for a subject.
type Strategy interface {
	Calculate(s Subject) float64
	Name() string
}

// Compile-time interface checks.
var (
	_ Strategy = Fixed{}
	_ Strategy = Percentage{}
	_ Strategy = Seniority{}
	_ Strategy = ProjectCount{}
	_ Strategy = Performance{}
	_ Strategy = Composite{}
	_ Strategy = None{}
)

// Fixed pays the same amount regardless of the subject.
type Fixed struct {
	amount float64
}

// NewFixed returns a Fixed strategy. Negative or non-finite amounts are
// rejected with a *domain.FinancialError.
func NewFixed(amount float64) (Fixed, error) {
	if err := domain.ValidateNonNegativeAmount("bonus", amount); err != nil {
		return Fixed{}, err
	}
	return Fixed{amount: amount}, nil
}

func (f Fixed) Calculate(Subject) float64 { return f.amount }

func (f Fixed) Name() string { return fmt.Sprintf("Fixed bonus (%g)", f.amount) }

// Amount returns the configured bonus.
func (f Fixed) Amount() float64 { return f.amount }

// Percentage pays a fraction of the subject's base salary.
type Percentage struct {
	rate float64
}

// NewPercentage returns a Percentage strategy. rate must be within [0, 1].
func NewPercentage(rate float64) (Percentage, error) {
	if !(rate >= 0 && rate <= 1) {
		return Percentage{}, &domain.ValidationError{Fields: map[string]string{
			"rate": fmt.Sprintf("must be between 0 and 1, got %v", rate),
		}}
	}
	return Percentage{rate: rate}, nil
}

func (p Percentage) Calculate(s Subject) float64 { return s.BaseSalary() * p.rate }

func (p Percentage) Name() string { return fmt.Sprintf("Percentage bonus (%g%%)", p.rate*100) }

// Seniority pays a level-dependent fraction of base salary. Subjects without
// a recognized level are paid at the junior rate.
type Seniority struct{}

var seniorityRates = map[domain.Level]float64{
	domain.LevelJunior: 0.05,
	domain.LevelMiddle: 0.10,
	domain.LevelSenior: 0.20,
}

func (Seniority) Calculate(s Subject) float64 {
	level := domain.LevelJunior
	if l, ok := s.(Leveled); ok {
		level = l.SeniorityLevel()
	}
	rate, ok := seniorityRates[level]
	if !ok {
		rate = seniorityRates[domain.LevelJunior]
	}
	return s.BaseSalary() * rate
}

func (Seniority) Name() string { return "Seniority bonus (junior/middle/senior)" }

// ProjectCount pays a fixed amount per completed project.
type ProjectCount struct {
	perProject float64
}

// NewProjectCount returns a ProjectCount strategy paying perProject for each
// completed project. Zero is a valid amount.
func NewProjectCount(perProject float64) (ProjectCount, error) {
	if err := domain.ValidateNonNegativeAmount("per_project", perProject); err != nil {
		return ProjectCount{}, err
	}
	return ProjectCount{perProject: perProject}, nil
}

func (p ProjectCount) Calculate(s Subject) float64 {
	var count int
	if c, ok := s.(ProjectCounter); ok {
		if n, set := c.CompletedProjects(); set {
			count = n
		}
	}
	return float64(count) * p.perProject
}

func (p ProjectCount) Name() string {
	return fmt.Sprintf("Project bonus (%g per project)", p.perProject)
}

// Performance pays along a curve of goal achievement: nothing below 50%,
// proportional up to 100%, and half of the overachievement on top of that.
type Performance struct {
	base float64
}

// NewPerformance returns a Performance strategy around base. Zero is a valid
// base.
func NewPerformance(base float64) (Performance, error) {
	if err := domain.ValidateNonNegativeAmount("base_bonus", base); err != nil {
		return Performance{}, err
	}
	return Performance{base: base}, nil
}

func (p Performance) Calculate(s Subject) float64 {
	achievement := DefaultAchievement
	if a, ok := s.(Achiever); ok {
		if v, set := a.Achievement(); set {
			achievement = v
		}
	}

	switch {
	case achievement >= 1.0:
		return p.base * (1 + (achievement-1.0)*performanceOverachieveMul)
	case achievement >= performanceFloor:
		return p.base * achievement
	default:
		return 0
	}
}

func (p Performance) Name() string {
	return fmt.Sprintf("Performance bonus (base %g)", p.base)
}

// Composite sums the bonuses of its children in order.
type Composite struct {
	children []Strategy
}

// NewComposite returns a Composite over the given strategies. Nil entries
// are skipped.
func NewComposite(children ...Strategy) Composite {
	kept := make([]Strategy, 0, len(children))
	for _, c := range children {
		if c != nil {
			kept = append(kept, c)
		}
	}
	return Composite{children: kept}
}

func (c Composite) Calculate(s Subject) float64 {
	var total float64
	for _, child := range c.children {
		total += child.Calculate(s)
	}
	return total
}

func (c Composite) Name() string {
	names := make([]string, len(c.children))
	for i, child := range c.children {
		names[i] = child.Name()
	}
	return "Composite bonus: " + strings.Join(names, " + ")
}

// Children returns the composed strategies.
func (c Composite) Children() []Strategy {
	out := make([]Strategy, len(c.children))
	copy(out, c.children)
	return out
}

// None pays nothing. It is the default strategy for managers.
type None struct{}

func (None) Calculate(Subject) float64 { return 0 }

func (None) Name() string { return "No bonus" }
