package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/zostay/go-contenttree/tools/contenttree/report"
)

var roundtripCmd = &cobra.Command{
	Use:   "roundtrip <file ...>",
	Short: "Shows the diff of each message after a parse and write round-trip",
	Args:  cobra.MinimumNArgs(1),
	RunE:  RoundTrip,
}

// RoundTrip parses each message, writes it back out, and prints any
// difference from the original.
func RoundTrip(_ *cobra.Command, args []string) error {
	changed := 0
	for _, path := range args {
		raw, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		out, err := report.RoundTrip(raw)
		if err != nil {
			return fmt.Errorf("round-tripping %s: %w", path, err)
		}

		fmt.Printf("--- %s\n+++ %s (round-trip)\n", path, path)
		differs, err := report.Diff(os.Stdout, string(raw), string(out))
		if err != nil {
			return err
		}

		if differs {
			changed++
			logger.Warn("message changed in round-trip", slog.String("path", path))
		} else {
			fmt.Println("(identical)")
		}
	}

	if changed > 0 {
		return fmt.Errorf("%d of %d messages changed in round-trip", changed, len(args))
	}

	return nil
}
