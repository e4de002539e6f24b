package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/zostay/go-contenttree/tools/contenttree/report"
)

// Configuration defaults.
const (
	DefaultParser   = report.Native
	DefaultPattern  = "*.eml"
	DefaultPreview  = 72
	DefaultFormat   = report.Text
	DefaultLogLevel = "info"
)

// Config holds the settings shared by every command. Each comes from a flag,
// a CONTENTTREE_ environment variable, the configuration file, or the
// default, in that order.
type Config struct {
	Parser    string
	Pattern   string
	Preview   int
	Format    string
	Structure bool
	LogLevel  string
}

// LoadConfig reads the configuration. If path is empty, config.yaml is looked
// for in the contenttree directory of the user's configuration directory and
// may be missing.
func LoadConfig(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	v.SetDefault("parser", DefaultParser)
	v.SetDefault("pattern", DefaultPattern)
	v.SetDefault("preview", DefaultPreview)
	v.SetDefault("format", DefaultFormat)
	v.SetDefault("structure", false)
	v.SetDefault("log-level", DefaultLogLevel)

	v.SetEnvPrefix("contenttree")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for _, name := range []string{"parser", "pattern", "preview", "format", "structure", "log-level"} {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(name, f); err != nil {
					return nil, fmt.Errorf("binding flag %s: %w", name, err)
				}
			}
		}
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "contenttree"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	cfg := &Config{
		Parser:    strings.ToLower(v.GetString("parser")),
		Pattern:   v.GetString("pattern"),
		Preview:   v.GetInt("preview"),
		Format:    strings.ToLower(v.GetString("format")),
		Structure: v.GetBool("structure"),
		LogLevel:  v.GetString("log-level"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the configured names are known.
func (c *Config) Validate() error {
	switch c.Parser {
	case report.Native, report.GoMessage:
	default:
		return fmt.Errorf("%w %q", report.ErrUnknownParser, c.Parser)
	}

	switch c.Format {
	case report.Text, report.JSON:
	default:
		return fmt.Errorf("unknown format %q", c.Format)
	}

	if _, err := filepath.Match(c.Pattern, ""); err != nil {
		return fmt.Errorf("bad pattern %q: %w", c.Pattern, err)
	}

	if c.Preview < 0 {
		return fmt.Errorf("preview must not be negative, got %d", c.Preview)
	}

	return nil
}

// Reporter returns a report.Reporter configured from c.
func (c *Config) Reporter() *report.Reporter {
	return &report.Reporter{
		Out:       os.Stdout,
		Parser:    c.Parser,
		Preview:   c.Preview,
		Format:    c.Format,
		Structure: c.Structure,
	}
}
