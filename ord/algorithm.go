package ord

import (
	"fmt"
	"strings"

	"github.com/tychoish/linksort/dll"
	"github.com/tychoish/linksort/ers"
)

// ErrUnknownAlgorithm is returned when a mode flag or name does not
// select one of the supported algorithms.
const ErrUnknownAlgorithm ers.Error = ers.Error("unknown sort algorithm")

// Algorithm selects one of the sorting implementations. The numeric
// values are the mode flags used in input files.
type Algorithm int

const (
	Quick     Algorithm = 0
	Insertion Algorithm = 1
)

// ParseAlgorithm converts a mode flag into an Algorithm.
func ParseAlgorithm(flag int) (Algorithm, error) {
	switch Algorithm(flag) {
	case Quick, Insertion:
		return Algorithm(flag), nil
	default:
		return 0, fmt.Errorf("mode %d: %w", flag, ErrUnknownAlgorithm)
	}
}

// ParseAlgorithmName converts the name of an algorithm (as returned
// by String) into an Algorithm. Matching is case insensitive.
func ParseAlgorithmName(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "quick", "quicksort":
		return Quick, nil
	case "insertion":
		return Insertion, nil
	default:
		return 0, fmt.Errorf("%q: %w", name, ErrUnknownAlgorithm)
	}
}

func (a Algorithm) String() string {
	switch a {
	case Quick:
		return "quick"
	case Insertion:
		return "insertion"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// Sort sorts the entire list in place. Sorting with an unknown
// algorithm is an error and leaves the list untouched.
func (a Algorithm) Sort(list *dll.List) error {
	switch a {
	case Quick:
		QuickSort(list.Begin(), list.End())
	case Insertion:
		InsertionSort(list.Begin(), list.End())
	default:
		return fmt.Errorf("%s: %w", a, ErrUnknownAlgorithm)
	}
	return nil
}
