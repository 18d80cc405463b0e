package listio_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"gopkg.in/yaml.v2"

	"github.com/tychoish/linksort/assert"
	"github.com/tychoish/linksort/assert/check"
	"github.com/tychoish/linksort/dll"
	"github.com/tychoish/linksort/listio"
	"github.com/tychoish/linksort/ord"
)

func TestRead(t *testing.T) {
	t.Run("Ints", func(t *testing.T) {
		list := &dll.List{}
		n, err := listio.ReadInts(strings.NewReader("3 1\n2\t-7  "), list)
		assert.NotError(t, err)
		assert.Equal(t, n, 4)
		assert.Equal(t, list.Len(), 4)
		assert.EqualItems(t, list.Slice(), []int{3, 1, 2, -7})
	})
	t.Run("StopsAtNonInteger", func(t *testing.T) {
		list := &dll.List{}
		n, err := listio.ReadInts(strings.NewReader("1 2 x 3"), list)
		assert.NotError(t, err)
		assert.Equal(t, n, 2)
		assert.EqualItems(t, list.Slice(), []int{1, 2})
	})
	t.Run("Empty", func(t *testing.T) {
		list := &dll.List{}
		n, err := listio.ReadInts(strings.NewReader(""), list)
		assert.NotError(t, err)
		assert.Zero(t, n)
		assert.Equal(t, list.Len(), 0)
	})
	t.Run("Appends", func(t *testing.T) {
		list := dll.New(9)
		_, err := listio.ReadInts(strings.NewReader("8"), list)
		assert.NotError(t, err)
		assert.EqualItems(t, list.Slice(), []int{9, 8})
	})
	t.Run("ReaderError", func(t *testing.T) {
		expected := errors.New("disk on fire")
		list := &dll.List{}
		_, err := listio.ReadInts(iotest.ErrReader(expected), list)
		assert.ErrorIs(t, err, expected)
	})
	t.Run("Input", func(t *testing.T) {
		in, err := listio.ReadInput(strings.NewReader("0\n5 3 4 1 2\n"))
		assert.NotError(t, err)
		assert.Equal(t, in.Mode, 0)
		assert.EqualItems(t, in.List.Slice(), []int{5, 3, 4, 1, 2})
	})
	t.Run("InputWithoutValues", func(t *testing.T) {
		in, err := listio.ReadInput(strings.NewReader("1"))
		assert.NotError(t, err)
		assert.Equal(t, in.Mode, 1)
		assert.Equal(t, in.List.Len(), 0)
	})
	t.Run("MissingMode", func(t *testing.T) {
		_, err := listio.ReadInput(strings.NewReader(""))
		assert.ErrorIs(t, err, listio.ErrMissingMode)

		_, err = listio.ReadInput(strings.NewReader("quick 1 2"))
		assert.ErrorIs(t, err, listio.ErrMissingMode)
		assert.Substring(t, err.Error(), "quick")
	})
	t.Run("InputReaderError", func(t *testing.T) {
		expected := errors.New("unplugged")
		_, err := listio.ReadInput(iotest.ErrReader(expected))
		assert.ErrorIs(t, err, expected)
	})
}

func TestWrite(t *testing.T) {
	t.Run("List", func(t *testing.T) {
		buf := &bytes.Buffer{}
		assert.NotError(t, listio.WriteList(buf, dll.New(1, -2, 3)))
		assert.Equal(t, buf.String(), "1 -2 3")

		buf.Reset()
		assert.NotError(t, listio.WriteList(buf, &dll.List{}))
		assert.Equal(t, buf.String(), "")
	})
	t.Run("Text", func(t *testing.T) {
		buf := &bytes.Buffer{}
		assert.NotError(t, listio.WriteOutput(buf, dll.New(1, 2, 3), listio.FormatText))
		assert.Equal(t, buf.String(), "3 1 2 3")

		buf.Reset()
		assert.NotError(t, listio.WriteOutput(buf, &dll.List{}, listio.FormatText))
		assert.Equal(t, buf.String(), "0")
	})
	t.Run("JSON", func(t *testing.T) {
		buf := &bytes.Buffer{}
		assert.NotError(t, listio.WriteOutput(buf, dll.New(2, 1), listio.FormatJSON))

		var out struct {
			Length int   `json:"length"`
			Values []int `json:"values"`
		}
		assert.NotError(t, json.Unmarshal(buf.Bytes(), &out))
		assert.Equal(t, out.Length, 2)
		assert.EqualItems(t, out.Values, []int{2, 1})
	})
	t.Run("YAML", func(t *testing.T) {
		buf := &bytes.Buffer{}
		assert.NotError(t, listio.WriteOutput(buf, dll.New(4, 5, 6), listio.FormatYAML))
		check.Substring(t, buf.String(), "length: 3")

		var out struct {
			Length int   `yaml:"length"`
			Values []int `yaml:"values"`
		}
		assert.NotError(t, yaml.Unmarshal(buf.Bytes(), &out))
		assert.Equal(t, out.Length, 3)
		assert.EqualItems(t, out.Values, []int{4, 5, 6})
	})
	t.Run("UnknownFormat", func(t *testing.T) {
		err := listio.WriteOutput(&bytes.Buffer{}, dll.New(1), listio.Format("xml"))
		assert.ErrorIs(t, err, listio.ErrUnknownFormat)
	})
	t.Run("ParseFormat", func(t *testing.T) {
		for name, expected := range map[string]listio.Format{
			"":      listio.FormatText,
			"text":  listio.FormatText,
			"JSON":  listio.FormatJSON,
			" yaml": listio.FormatYAML,
		} {
			f, err := listio.ParseFormat(name)
			check.NotError(t, err)
			check.Equal(t, f, expected)
		}
		_, err := listio.ParseFormat("toml")
		assert.ErrorIs(t, err, listio.ErrUnknownFormat)
	})
}

func TestEndToEnd(t *testing.T) {
	for _, tc := range []struct {
		name   string
		input  string
		output string
	}{
		{name: "Quick", input: "0\n5 3 4 1 2", output: "5 1 2 3 4 5"},
		{name: "Insertion", input: "1\n2 2 1", output: "3 1 2 2"},
		{name: "EmptyQuick", input: "0", output: "0"},
		{name: "EmptyInsertion", input: "1\n", output: "0"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			in, err := listio.ReadInput(strings.NewReader(tc.input))
			assert.NotError(t, err)

			algo, err := ord.ParseAlgorithm(in.Mode)
			assert.NotError(t, err)
			assert.NotError(t, algo.Sort(in.List))

			buf := &bytes.Buffer{}
			assert.NotError(t, listio.WriteOutput(buf, in.List, listio.FormatText))
			assert.Equal(t, buf.String(), tc.output)
		})
	}
	t.Run("UnknownMode", func(t *testing.T) {
		in, err := listio.ReadInput(strings.NewReader("2\n1 2"))
		assert.NotError(t, err)
		_, err = ord.ParseAlgorithm(in.Mode)
		assert.ErrorIs(t, err, ord.ErrUnknownAlgorithm)
	})
}
