package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/emersion/go-mbox"
	"github.com/spf13/cobra"
)

var mboxCmd = &cobra.Command{
	Use:   "mbox <file>",
	Short: "Show the content of each message in an mbox file",
	Args:  cobra.ExactArgs(1),
	RunE:  Mbox,
}

// Mbox reports on every message of an mbox file. Each message is named by
// the file and its position in it.
func Mbox(_ *cobra.Command, args []string) error {
	path := args[0]
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	rp := cfg.Reporter()
	mr := mbox.NewReader(f)
	total, failed := 0, 0
	for {
		r, err := mr.NextMessage()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		total++
		name := fmt.Sprintf("%s[%d]", path, total)

		raw, err := io.ReadAll(r)
		if err == nil {
			err = rp.Report(name, raw)
		}

		if err != nil {
			failed++
			logger.Error("unable to show message",
				slog.String("path", name),
				slog.Any("error", err))
		}
	}

	logger.Info("done", slog.Int("messages", total), slog.Int("failed", failed))

	if failed > 0 {
		return fmt.Errorf("%d of %d messages failed", failed, total)
	}

	return nil
}
