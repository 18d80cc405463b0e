package dll

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// MarshalJSON produces a JSON array representing the items in the
// list. By supporting json.Marshaler and json.Unmarshaler, lists can
// behave as arrays in larger json objects.
func (l *List) MarshalJSON() ([]byte, error) {
	buf := &bytes.Buffer{}
	_ = buf.WriteByte('[')

	first := true
	for v := range l.All() {
		if !first {
			_ = buf.WriteByte(',')
		}
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(v), 10))
		first = false
	}

	_ = buf.WriteByte(']')

	return buf.Bytes(), nil
}

// UnmarshalJSON reads json input and appends the values to the
// list. If there are elements in the list, they are not removed.
func (l *List) UnmarshalJSON(in []byte) error {
	rv := []int{}

	if err := json.Unmarshal(in, &rv); err != nil {
		return err
	}

	l.Append(rv...)
	return nil
}

// MarshalYAML renders the list as a sequence, for encoders that
// support the yaml.Marshaler interface.
func (l *List) MarshalYAML() (any, error) { return l.Slice(), nil }
