package bonus

import (
	"fmt"

	"github.com/jsamuelsen11/workforce/internal/domain"
)

// Kind names a strategy variant in declarative documents.
type Kind string

const (
	KindFixed       Kind = "fixed"
	KindPercentage  Kind = "percentage"
	KindSeniority   Kind = "seniority"
	KindProject     Kind = "project"
	KindPerformance Kind = "performance"
	KindComposite   Kind = "composite"
	KindNone        Kind = "none"
)

// Spec is a declarative description of a strategy, as read from roster files.
type Spec struct {
	Kind Kind `yaml:"kind"`
	// Amount is the fixed bonus, the per-project amount or the performance
	// base. Left unset, project and performance use their defaults.
	Amount   *float64 `yaml:"amount,omitempty"`
	Rate     float64  `yaml:"rate,omitempty"`
	Children []Spec   `yaml:"children,omitempty"`
}

// Build constructs the strategy the spec describes. An empty Kind builds None.
func (s Spec) Build() (Strategy, error) {
	switch s.Kind {
	case KindNone, "":
		return None{}, nil
	case KindFixed:
		return NewFixed(s.amountOr(0))
	case KindPercentage:
		return NewPercentage(s.Rate)
	case KindSeniority:
		return Seniority{}, nil
	case KindProject:
		return NewProjectCount(s.amountOr(DefaultPerProject))
	case KindPerformance:
		return NewPerformance(s.amountOr(DefaultPerformanceBase))
	case KindComposite:
		children := make([]Strategy, 0, len(s.Children))
		for i, child := range s.Children {
			c, err := child.Build()
			if err != nil {
				return nil, fmt.Errorf("building child %d: %w", i, err)
			}
			children = append(children, c)
		}
		return NewComposite(children...), nil
	default:
		return nil, &domain.ValidationError{Fields: map[string]string{
			"kind": fmt.Sprintf("unknown bonus strategy %q", s.Kind),
		}}
	}
}

// amountOr returns the configured amount, or def when none was given. An
// explicit zero is kept.
func (s Spec) amountOr(def float64) float64 {
	if s.Amount == nil {
		return def
	}
	return *s.Amount
}
