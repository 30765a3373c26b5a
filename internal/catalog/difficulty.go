package catalog

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownDifficulty is returned when parsing an unrecognized difficulty.
	ErrUnknownDifficulty = errors.New("unknown difficulty")
	// ErrUnknownConcept is returned when parsing an unrecognized concept.
	ErrUnknownConcept = errors.New("unknown concept")
)

// Difficulty is the level of an example set.
type Difficulty string

const (
	Beginner     Difficulty = "beginner"
	Intermediate Difficulty = "intermediate"
	Advanced     Difficulty = "advanced"
)

// AllDifficulties returns all difficulties from easiest to hardest.
func AllDifficulties() []Difficulty {
	return []Difficulty{Beginner, Intermediate, Advanced}
}

// ParseDifficulty converts a name like "Intermediate" to a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	switch d {
	case Beginner, Intermediate, Advanced:
		return d, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDifficulty, s)
	}
}

func (d Difficulty) String() string {
	return string(d)
}

// DisplayName returns a capitalized label for the difficulty.
func (d Difficulty) DisplayName() string {
	switch d {
	case Beginner:
		return "Beginner"
	case Intermediate:
		return "Intermediate"
	case Advanced:
		return "Advanced"
	default:
		return string(d)
	}
}
