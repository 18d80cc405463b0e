package listio

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/tychoish/linksort/dll"
	"github.com/tychoish/linksort/ers"
)

// ErrUnknownFormat is returned when an output format name is not
// recognized.
const ErrUnknownFormat ers.Error = ers.Error("unknown output format")

// Format names the encoding of an output artifact.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a format name. The empty string selects
// FormatText.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case "":
		return FormatText, nil
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("%q: %w", name, ErrUnknownFormat)
	}
}

// Report is the structured form of an output artifact.
type Report struct {
	Length int       `json:"length" yaml:"length"`
	Values *dll.List `json:"values" yaml:"values"`
}

// WriteList writes the values of the list from Begin to End,
// separated by a single space, with no trailing separator.
func WriteList(w io.Writer, list *dll.List) error {
	bw := bufio.NewWriter(w)
	var buf []byte
	for it, end := list.Begin(), list.End(); !it.Equal(end); it = it.Next() {
		buf = buf[:0]
		if !it.Prev().IsSentinel() {
			buf = append(buf, ' ')
		}
		buf = strconv.AppendInt(buf, int64(it.Value()), 10)
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteOutput writes an output artifact. The text form is the length
// of the list followed, when the list is not empty, by a space and
// the values as written by WriteList.
func WriteOutput(w io.Writer, list *dll.List, format Format) error {
	report := Report{Length: list.Len(), Values: list}

	switch format {
	case FormatText, "":
		if _, err := io.WriteString(w, strconv.Itoa(report.Length)); err != nil {
			return err
		}
		if report.Length == 0 {
			return nil
		}
		if _, err := io.WriteString(w, " "); err != nil {
			return err
		}
		return WriteList(w, list)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case FormatYAML:
		out, err := yaml.Marshal(report)
		if err != nil {
			return fmt.Errorf("failed to marshal to YAML: %w", err)
		}
		_, err = w.Write(out)
		return err
	default:
		return fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
}
