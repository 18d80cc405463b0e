package root

import (
	"fmt"
	"os"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tychoish/linksort/cmd/linksort/root/sorting"
	"github.com/tychoish/linksort/cmd/linksort/root/version"
	"github.com/tychoish/linksort/internal/cliutil"
)

// NewRootCmd creates the linksort command tree. Every command shares
// one viper instance, populated from the config file, LINKSORT_*
// environment variables and flags.
func NewRootCmd() *cobra.Command {
	var cfgFile string
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "linksort <command> [flags]",
		Short: "Sort integer lists held in a doubly linked list",
		Long:  `Read integers into a sentinel-bounded linked list and sort them in place by swapping nodes.`,
		Example: heredoc.Doc(`
			$ linksort sort
			$ linksort sort --input data.txt --output sorted.txt
			$ linksort sort --algorithm insertion --format json
			$ linksort version --format yaml
		`),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cliutil.LoadConfig(v, cfgFile); err != nil {
				return err
			}

			logger, err := newLogger(cmd, v.GetString("log-level"))
			if err != nil {
				return err
			}

			cmd.SetContext(log.WithContext(cmd.Context(), logger))
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default is $HOME/.linksort.yaml)")
	cmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	_ = v.BindPFlag("log-level", cmd.PersistentFlags().Lookup("log-level"))

	cmd.AddCommand(sorting.NewSortCmd(v))
	cmd.AddCommand(version.NewVersionCmd())

	return cmd
}

func newLogger(cmd *cobra.Command, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	return log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		Level:           lvl,
		Prefix:          "linksort",
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
	}), nil
}

// Execute runs the command tree, exiting non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
