package sorting

import (
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tychoish/linksort/dll"
	"github.com/tychoish/linksort/ers"
	"github.com/tychoish/linksort/listio"
	"github.com/tychoish/linksort/ord"
)

// NewSortCmd creates the command that reads an input file, sorts its
// list and writes the output file.
func NewSortCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sort",
		Short: "Sort the list in an input file",
		Long: heredoc.Doc(`
			Read a mode flag followed by whitespace separated integers from the
			input file, sort them with the selected algorithm, and write the
			length of the list followed by the sorted values to the output file.

			Mode 0 selects quicksort and mode 1 selects insertion sort. The
			--algorithm flag, when set, takes precedence over the mode flag.
		`),
		Example: heredoc.Doc(`
			# Sort input.txt into output.txt
			$ linksort sort

			# Force insertion sort and write a JSON report
			$ linksort sort -i data.txt -o sorted.json --algorithm insertion --format json
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(log.FromContext(cmd.Context()), v)
		},
	}

	cmd.Flags().StringP("input", "i", "input.txt", "Path to the input file")
	cmd.Flags().StringP("output", "o", "output.txt", "Path to the output file")
	cmd.Flags().StringP("algorithm", "a", "", "Override the input's mode flag: 'quick' or 'insertion'")
	cmd.Flags().StringP("format", "f", "text", "Output format: 'text', 'json' or 'yaml'")
	_ = v.BindPFlags(cmd.Flags())

	return cmd
}

func run(logger *log.Logger, v *viper.Viper) error {
	format, err := listio.ParseFormat(v.GetString("format"))
	if err != nil {
		return err
	}

	in, err := readInput(v.GetString("input"))
	if err != nil {
		return err
	}
	defer in.List.Reset()

	logger.Info("got list", "length", in.List.Len(), "values", in.List.String())

	algo, err := selectAlgorithm(v.GetString("algorithm"), in.Mode)
	if err != nil {
		return err
	}

	logger.Info("sorting", "algorithm", algo)

	var sortErr error
	if err := ers.WithRecoverCall(func() { sortErr = algo.Sort(in.List) }); err != nil {
		return fmt.Errorf("sorting with %s: %w", algo, err)
	}
	if sortErr != nil {
		return sortErr
	}

	output := v.GetString("output")
	if err := writeOutput(output, in.List, format); err != nil {
		return err
	}

	logger.Info("wrote list", "path", output, "format", format, "length", in.List.Len(), "values", in.List.String())
	return nil
}

func selectAlgorithm(name string, mode int) (ord.Algorithm, error) {
	if name != "" {
		return ord.ParseAlgorithmName(name)
	}
	return ord.ParseAlgorithm(mode)
}

func readInput(path string) (*listio.Input, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()

	in, err := listio.ReadInput(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return in, nil
}

func writeOutput(path string, list *dll.List, format listio.Format) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output: %w", cerr)
		}
	}()

	if err := listio.WriteOutput(f, list, format); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
