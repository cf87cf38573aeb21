package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/ryanmaule/greenbutton-to-homeassistant-sql/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	convertOutput string
	convertClear  bool
)

var convertCmd = &cobra.Command{
	Use:   "convert <input.xml> [secondary.xml]",
	Short: "Convert a Green Button export to a statistics SQL artifact",
	Long: `Parses a Green Button XML export and writes batched SQL statements that
backfill Home Assistant long-term statistics.

With a second input file, the two exports are merged: the first file is
authoritative, and the second only fills timestamps the first doesn't cover.
Useful when a newer export overlaps an older one.

Inserts are idempotent, so re-running over already-imported data is safe.
Use --clear to instead wipe this tool's series and rebuild from scratch.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVar(&convertOutput, "output", "", "Output file (default: input path with .sql extension)")
	convertCmd.Flags().BoolVar(&convertClear, "clear", false, "Prepend deletes for this tool's series before inserting")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	fmt.Printf("=== Convert started at %s ===\n", time.Now().Format("2006-01-02 15:04:05 MST"))

	// Load config
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	inputPath := args[0]
	primary, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	// Read the secondary export up front so a missing file fails before
	// any parsing happens
	var secondary []byte
	if len(args) == 2 {
		secondary, err = os.ReadFile(args[1])
		if err != nil {
			return fmt.Errorf("reading secondary input: %w", err)
		}
		fmt.Printf("Merging %s (authoritative) with %s\n", inputPath, args[1])
	}

	artifact, summary, err := pipeline.Run(cfg, primary, secondary, pipeline.Options{
		Clear: convertClear,
	})
	if err != nil {
		return err
	}

	outputPath := convertOutput
	if outputPath == "" {
		outputPath = strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ".sql"
	}
	if err := os.WriteFile(outputPath, []byte(artifact), 0644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	first := time.Unix(summary.FirstStart, 0).UTC()
	last := time.Unix(summary.LastStart, 0).UTC()

	fmt.Printf("✓ Processed %s hourly readings (%s to %s)\n",
		humanize.Comma(int64(summary.Readings)),
		first.Format("2006-01-02"), last.Format("2006-01-02"))
	if secondary != nil {
		fmt.Printf("  - Merged in: %s readings from secondary export\n", humanize.Comma(int64(summary.MergedIn)))
	}
	fmt.Printf("  - On-Peak: %s  Mid-Peak: %s  Off-Peak: %s\n",
		humanize.Comma(int64(summary.OnPeak)),
		humanize.Comma(int64(summary.MidPeak)),
		humanize.Comma(int64(summary.OffPeak)))
	fmt.Printf("  - Days: %d, total %.2f kWh, $%.2f\n", summary.Days, summary.TotalKWh, summary.TotalCost)
	if convertClear {
		fmt.Printf("  - Clear mode: prior data for these series will be deleted first\n")
	}
	fmt.Printf("✓ Wrote %d statements to %s\n", summary.Statements, outputPath)

	return nil
}
