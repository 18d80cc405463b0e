// Package listio reads and writes the text artifacts consumed and
// produced around a sort: an input holding a mode flag followed by
// integers, and an output holding the sorted count followed by the
// sorted integers.
package listio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/tychoish/linksort/dll"
	"github.com/tychoish/linksort/ers"
)

// ErrMissingMode is returned by ReadInput when the input does not
// start with an integer mode flag.
const ErrMissingMode ers.Error = ers.Error("missing mode flag")

// Input is the parsed content of an input artifact.
type Input struct {
	Mode int
	List *dll.List
}

// ReadInts appends every whitespace separated integer from the
// reader to the list, in order. Reading stops silently at the end of
// the input or at the first token that is not an integer; the rest
// of the input is left unread. ReadInts returns the number of values
// appended, and only reports errors from the underlying reader.
func ReadInts(r io.Reader, list *dll.List) (int, error) {
	return scanInts(newScanner(r), list)
}

// ReadInput parses an input artifact: a mode flag followed by the
// values of the list.
func ReadInput(r io.Reader) (*Input, error) {
	sc := newScanner(r)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("reading mode: %w", err)
		}
		return nil, ErrMissingMode
	}

	mode, err := strconv.Atoi(sc.Text())
	if err != nil {
		return nil, fmt.Errorf("%q: %w", sc.Text(), ErrMissingMode)
	}

	in := &Input{Mode: mode, List: &dll.List{}}
	if _, err := scanInts(sc, in.List); err != nil {
		return nil, err
	}

	return in, nil
}

func newScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	return sc
}

func scanInts(sc *bufio.Scanner, list *dll.List) (int, error) {
	count := 0
	for sc.Scan() {
		v, err := strconv.Atoi(sc.Text())
		if err != nil {
			break
		}
		list.PushBack(v)
		count++
	}

	if err := sc.Err(); err != nil {
		return count, fmt.Errorf("reading values: %w", err)
	}

	return count, nil
}
