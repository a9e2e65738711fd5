package evaluator

import "github.com/lox/fivecard/internal/combination"

// Outcome is the verdict of comparing two hands.
type Outcome int

const (
	Draw Outcome = iota
	AWins
	BWins
)

// String returns the readable verdict
func (o Outcome) String() string {
	switch o {
	case AWins:
		return "A wins"
	case BWins:
		return "B wins"
	case Draw:
		return "Draw"
	default:
		return "Unknown"
	}
}

// Inverse swaps the two sides of the verdict.
func (o Outcome) Inverse() Outcome {
	switch o {
	case AWins:
		return BWins
	case BWins:
		return AWins
	default:
		return o
	}
}

// Compare returns the verdict between strengths a and b; the larger wins.
func Compare(a, b combination.Strength) Outcome {
	if a > b {
		return AWins
	} else if a < b {
		return BWins
	}
	return Draw
}

// CompareResults is Compare on the strengths of two evaluated hands.
func CompareResults(a, b Result) Outcome {
	return Compare(a.Strength, b.Strength)
}
