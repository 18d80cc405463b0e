package cliutil

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of the environment variables that override
// configuration keys, e.g. LINKSORT_LOG_LEVEL for log-level.
const EnvPrefix = "LINKSORT"

// LoadConfig points the viper instance at the configuration file and
// reads it. When cfgFile is empty the file is looked up as
// .linksort.yaml in the user's home directory, and a missing file is
// not an error.
func LoadConfig(v *viper.Viper, cfgFile string) error {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("can't read config: %w", err)
		}
		return nil
	}

	home, err := homedir.Dir()
	if err != nil {
		log.Debug("no home directory, skipping config file", "error", err)
		return nil
	}

	v.AddConfigPath(home)
	v.SetConfigName(".linksort")
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("can't read config: %w", err)
	}

	return nil
}
