package root

import (
	"bytes"
	"encoding/json"
	"io/fs"
	"os"
	"testing"

	"github.com/tychoish/linksort/assert"
	"github.com/tychoish/linksort/assert/check"
	"github.com/tychoish/linksort/listio"
	"github.com/tychoish/linksort/ord"
	"github.com/tychoish/linksort/testt"
)

type fixture struct {
	config string
	input  string
	output string
}

func newFixture(t *testing.T, input string, config string) *fixture {
	t.Helper()
	return &fixture{
		config: testt.File(t, "linksort.yaml", config),
		input:  testt.File(t, "input.txt", input),
		output: testt.Path(t, "output.txt"),
	}
}

func (f *fixture) sort(t *testing.T, extra ...string) (string, error) {
	t.Helper()
	args := append([]string{"sort", "--config", f.config, "--input", f.input, "--output", f.output}, extra...)
	_, stderr, err := execute(t, args...)
	testt.Log(t, "stderr:", stderr)
	return stderr, err
}

func (f *fixture) result(t *testing.T) string {
	t.Helper()
	out, err := os.ReadFile(f.output)
	assert.NotError(t, err)
	return string(out)
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCmd()
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

const quiet = "log-level: error\n"

func TestSortCommand(t *testing.T) {
	t.Run("QuickSort", func(t *testing.T) {
		f := newFixture(t, "0\n5 3 4 1 2\n", "log-level: info\n")
		stderr, err := f.sort(t)
		assert.NotError(t, err)
		assert.Equal(t, f.result(t), "5 1 2 3 4 5")
		check.Substring(t, stderr, "got list")
		check.Substring(t, stderr, "algorithm=quick")
	})
	t.Run("InsertionSort", func(t *testing.T) {
		f := newFixture(t, "1\n2 2 1\n", quiet)
		stderr, err := f.sort(t)
		assert.NotError(t, err)
		assert.Equal(t, f.result(t), "3 1 2 2")
		check.Equal(t, stderr, "")
	})
	t.Run("EmptyList", func(t *testing.T) {
		for _, mode := range []string{"0", "1"} {
			f := newFixture(t, mode, quiet)
			_, err := f.sort(t)
			assert.NotError(t, err)
			assert.Equal(t, f.result(t), "0")
		}
	})
	t.Run("UnknownMode", func(t *testing.T) {
		f := newFixture(t, "2\n3 1 2\n", quiet)
		_, err := f.sort(t)
		assert.ErrorIs(t, err, ord.ErrUnknownAlgorithm)
		_, statErr := os.Stat(f.output)
		assert.True(t, os.IsNotExist(statErr))
	})
	t.Run("MissingMode", func(t *testing.T) {
		f := newFixture(t, "", quiet)
		_, err := f.sort(t)
		assert.ErrorIs(t, err, listio.ErrMissingMode)
	})
	t.Run("MissingInput", func(t *testing.T) {
		f := newFixture(t, "0 1", quiet)
		assert.NotError(t, os.Remove(f.input))
		_, err := f.sort(t)
		assert.ErrorIs(t, err, fs.ErrNotExist)
	})
	t.Run("AlgorithmFlag", func(t *testing.T) {
		f := newFixture(t, "7\n9 8 7\n", quiet)
		stderr, err := f.sort(t, "--algorithm", "insertion", "--log-level", "info")
		assert.NotError(t, err)
		assert.Equal(t, f.result(t), "3 7 8 9")
		check.Substring(t, stderr, "algorithm=insertion")
	})
	t.Run("UnknownAlgorithmFlag", func(t *testing.T) {
		f := newFixture(t, "0\n9 8 7\n", quiet)
		_, err := f.sort(t, "-a", "bogo")
		assert.ErrorIs(t, err, ord.ErrUnknownAlgorithm)
	})
	t.Run("ConfigFile", func(t *testing.T) {
		f := newFixture(t, "0\n3 1 2\n", "log-level: error\nformat: json\nalgorithm: insertion\n")
		_, err := f.sort(t)
		assert.NotError(t, err)

		var report struct {
			Length int   `json:"length"`
			Values []int `json:"values"`
		}
		assert.NotError(t, json.Unmarshal([]byte(f.result(t)), &report))
		assert.Equal(t, report.Length, 3)
		assert.EqualItems(t, report.Values, []int{1, 2, 3})
	})
	t.Run("Environment", func(t *testing.T) {
		t.Setenv("LINKSORT_FORMAT", "yaml")
		f := newFixture(t, "0\n2 1\n", quiet)
		_, err := f.sort(t)
		assert.NotError(t, err)
		check.Substring(t, f.result(t), "length: 2")
	})
	t.Run("UnknownFormat", func(t *testing.T) {
		f := newFixture(t, "0\n2 1\n", quiet)
		_, err := f.sort(t, "--format", "xml")
		assert.ErrorIs(t, err, listio.ErrUnknownFormat)
	})
	t.Run("BadLogLevel", func(t *testing.T) {
		f := newFixture(t, "0\n2 1\n", "log-level: loud\n")
		_, err := f.sort(t)
		assert.Error(t, err)
	})
	t.Run("BadConfigPath", func(t *testing.T) {
		_, _, err := execute(t, "sort", "--config", testt.Path(t, "missing.yaml"))
		assert.Error(t, err)
	})
}

func TestVersionCommand(t *testing.T) {
	t.Run("JSON", func(t *testing.T) {
		stdout, _, err := execute(t, "version")
		assert.NotError(t, err)

		var out map[string]string
		assert.NotError(t, json.Unmarshal([]byte(stdout), &out))
		assert.Equal(t, out["version"], "dev")
	})
	t.Run("YAML", func(t *testing.T) {
		stdout, _, err := execute(t, "version", "--format", "yaml")
		assert.NotError(t, err)
		check.Substring(t, stdout, "version: dev")
	})
	t.Run("Template", func(t *testing.T) {
		stdout, _, err := execute(t, "version", "--template", "{{.version}}")
		assert.NotError(t, err)
		assert.Equal(t, stdout, "dev\n")
	})
	t.Run("UnknownFormat", func(t *testing.T) {
		_, _, err := execute(t, "version", "--format", "toml")
		assert.Error(t, err)
	})
}
