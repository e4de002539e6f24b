package cmd_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-contenttree/tools/contenttree/cmd"
	"github.com/zostay/go-contenttree/tools/contenttree/report"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig_File(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `parser: go-message
pattern: "*.msg"
preview: 20
format: JSON
structure: true
log-level: debug
`)

	c, err := cmd.LoadConfig(path, nil)
	require.NoError(t, err)
	assert.Equal(t, &cmd.Config{
		Parser:    report.GoMessage,
		Pattern:   "*.msg",
		Preview:   20,
		Format:    report.JSON,
		Structure: true,
		LogLevel:  "debug",
	}, c)
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Parallel()

	c, err := cmd.LoadConfig(writeConfig(t, "{}\n"), nil)
	require.NoError(t, err)
	assert.Equal(t, &cmd.Config{
		Parser:   cmd.DefaultParser,
		Pattern:  cmd.DefaultPattern,
		Preview:  cmd.DefaultPreview,
		Format:   cmd.DefaultFormat,
		LogLevel: cmd.DefaultLogLevel,
	}, c)
}

func TestLoadConfig_FlagsWin(t *testing.T) {
	t.Parallel()

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("preview", cmd.DefaultPreview, "")
	flags.String("format", cmd.DefaultFormat, "")
	require.NoError(t, flags.Parse([]string{"--preview", "5"}))

	c, err := cmd.LoadConfig(writeConfig(t, "preview: 10\nformat: json\n"), flags)
	require.NoError(t, err)
	assert.Equal(t, 5, c.Preview)
	assert.Equal(t, report.JSON, c.Format)
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("CONTENTTREE_LOG_LEVEL", "warn")
	t.Setenv("CONTENTTREE_PREVIEW", "0")

	c, err := cmd.LoadConfig(writeConfig(t, "preview: 10\n"), nil)
	require.NoError(t, err)
	assert.Equal(t, "warn", c.LogLevel)
	assert.Equal(t, 0, c.Preview)
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Parallel()

	_, err := cmd.LoadConfig(writeConfig(t, "parser: regex\n"), nil)
	assert.ErrorIs(t, err, report.ErrUnknownParser)

	_, err = cmd.LoadConfig(writeConfig(t, "format: xml\n"), nil)
	assert.Error(t, err)

	_, err = cmd.LoadConfig(writeConfig(t, "pattern: \"[\"\n"), nil)
	assert.Error(t, err)

	_, err = cmd.LoadConfig(writeConfig(t, "preview: -1\n"), nil)
	assert.Error(t, err)

	_, err = cmd.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	assert.Error(t, err)
}
