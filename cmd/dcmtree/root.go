package main

import (
	"os"

	"github.com/b71729/dcmtree"
	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const (
	flagConfig   = "config"
	flagLogLevel = "log-level"
	flagJSONLog  = "json-log"

	defaultConfigPath = "~/.dcmtree.toml"
)

var rootCmd = &cobra.Command{
	Use:           "dcmtree",
	Short:         "Decodes DICOM files into their data element tree.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return configure(cmd)
	},
}

func init() {
	rootCmd.PersistentFlags().String(flagConfig, defaultConfigPath, "TOML configuration file.")
	rootCmd.PersistentFlags().String(flagLogLevel, "", "Logging level: debug, info, warn, error or none.")
	rootCmd.PersistentFlags().Bool(flagJSONLog, false, "Log as JSON instead of console text.")
}

// configure layers the config file and flags over the environment configuration
func configure(cmd *cobra.Command) error {
	flags := cmd.Flags()
	cfg := dcmtree.ConfigFromEnv()

	path, _ := flags.GetString(flagConfig)
	expanded, err := homedir.Expand(path)
	if err != nil {
		return errors.Wrap(err, "failed to expand config path")
	}
	if _, statErr := os.Stat(expanded); statErr == nil {
		if cfg, err = dcmtree.LoadConfigFile(expanded, cfg); err != nil {
			return err
		}
	} else if flags.Changed(flagConfig) {
		return errors.Wrapf(statErr, "config file %s", path)
	}

	if flags.Changed(flagLogLevel) {
		cfg.LogLevel, _ = flags.GetString(flagLogLevel)
	}
	if jsonLog, _ := flags.GetBool(flagJSONLog); jsonLog {
		cfg.LogFormat = "json"
	}
	if err := dcmtree.OverrideConfig(cfg); err != nil {
		return err
	}
	if cfg.LogFormat == "json" {
		dcmtree.SetLogger(dcmtree.NewJSONLogger(os.Stderr))
	}
	return nil
}

func newParser() *dcmtree.Parser {
	return dcmtree.NewParser(dcmtree.GetConfig())
}
