package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:          "tomlcheck",
		Short:        "tomlcheck",
		SilenceUsage: true,
		Long:         `Validates TOML files and inspects keys in them.`,
	}

	logLevel string
	log      = logrus.StandardLogger()
)

// Execute executes the root command.
func Execute() error {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	cobra.OnInitialize(configureLogging)
	return rootCmd.Execute()
}

func configureLogging() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		log.Warnf("invalid --log-level %q, keeping %s", logLevel, log.GetLevel())
		return
	}
	log.SetLevel(level)
}
