package domain

// Level represents a developer's seniority tier.
type Level string

const (
	LevelJunior Level = "junior"
	LevelMiddle Level = "middle"
	LevelSenior Level = "senior"
)

// IsValid returns true if the level is one of the defined constants.
func (l Level) IsValid() bool {
	switch l {
	case LevelJunior, LevelMiddle, LevelSenior:
		return true
	default:
		return false
	}
}

// SalaryMultiplier returns the factor applied to base salary for this tier.
// Unrecognized levels are paid as junior.
func (l Level) SalaryMultiplier() float64 {
	switch l {
	case LevelMiddle:
		return 1.5
	case LevelSenior:
		return 2.0
	default:
		return 1.0
	}
}

// String implements fmt.Stringer.
func (l Level) String() string {
	return string(l)
}
