package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [dir|file ...]",
	Short: "Show the content of each message file, or of each matching file in a directory",
	RunE:  Show,
}

// Show reports on every message named on the command line or found in a
// named directory. A message that fails is logged and skipped.
func Show(_ *cobra.Command, args []string) error {
	if len(args) == 0 {
		args = []string{"."}
	}

	var paths []string
	for _, arg := range args {
		fi, err := os.Stat(arg)
		if err != nil {
			return err
		}

		if !fi.IsDir() {
			paths = append(paths, arg)
			continue
		}

		matches, err := filepath.Glob(filepath.Join(arg, cfg.Pattern))
		if err != nil {
			return err
		}
		paths = append(paths, matches...)
	}

	rp := cfg.Reporter()
	failed := 0
	for _, path := range paths {
		raw, err := os.ReadFile(path)
		if err == nil {
			err = rp.Report(path, raw)
		}

		if err != nil {
			failed++
			logger.Error("unable to show message",
				slog.String("path", path),
				slog.Any("error", err))
		}
	}

	logger.Info("done", slog.Int("messages", len(paths)), slog.Int("failed", failed))

	if failed > 0 {
		return fmt.Errorf("%d of %d messages failed", failed, len(paths))
	}

	return nil
}
