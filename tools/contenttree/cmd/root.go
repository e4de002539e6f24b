package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:   "contenttree",
		Short: "Show the text and HTML content found in email messages",

		PersistentPreRunE: setup,
		SilenceUsage:      true,
	}

	configFile string
	cfg        *Config
	logger     = slog.New(slog.NewTextHandler(os.Stderr, nil))
)

func init() {
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(mboxCmd)
	rootCmd.AddCommand(roundtripCmd)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "configuration file (default $XDG_CONFIG_HOME/contenttree/config.yaml)")
	flags.String("parser", DefaultParser, "MIME parser to use: native or go-message")
	flags.String("pattern", DefaultPattern, "glob used to find messages in a directory")
	flags.Int("preview", DefaultPreview, "number of characters of each content to show, 0 for none")
	flags.String("format", DefaultFormat, "output format: text or json")
	flags.Bool("structure", false, "show the MIME structure of each message")
	flags.String("log-level", DefaultLogLevel, "log level: debug, info, warn, or error")
}

// setup loads the configuration and the logger before any command runs.
func setup(cmd *cobra.Command, _ []string) error {
	var err error
	cfg, err = LoadConfig(configFile, cmd.Flags())
	if err != nil {
		return err
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return err
	}

	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	logger.Debug("configuration loaded",
		slog.String("parser", cfg.Parser),
		slog.String("format", cfg.Format))

	return nil
}

// Execute runs the command named on the command line.
func Execute() error {
	return rootCmd.Execute()
}
