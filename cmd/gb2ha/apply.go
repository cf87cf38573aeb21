package main

import (
	"fmt"
	"os"
	"time"

	"github.com/ryanmaule/greenbutton-to-homeassistant-sql/internal/database"
	"github.com/spf13/cobra"
)

var applyDBPath string

var applyCmd = &cobra.Command{
	Use:   "apply <artifact.sql>",
	Short: "Execute a generated SQL artifact against a recorder database",
	Long: `Runs a previously generated artifact against a Home Assistant recorder
SQLite database. Stop Home Assistant before applying to a live database.

The whole artifact runs in one transaction; on any failure nothing is written.`,
	Args: cobra.ExactArgs(1),
	RunE: runApply,
}

func init() {
	applyCmd.Flags().StringVar(&applyDBPath, "db", "", "Recorder database path (default: ./home-assistant_v2.db)")
	rootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command, args []string) error {
	fmt.Printf("=== Apply started at %s ===\n", time.Now().Format("2006-01-02 15:04:05 MST"))

	// Load config
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	script, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading artifact: %w", err)
	}

	dbPath := applyDBPath
	if dbPath == "" {
		dbPath = cfg.GetDatabasePath()
	}

	db, err := database.New(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	fmt.Printf("Applying %s to %s...\n", args[0], dbPath)
	if err := db.ApplyScript(string(script)); err != nil {
		return err
	}

	counts, err := db.CountBySeries(cfg.GetSource())
	if err != nil {
		return fmt.Errorf("counting rows: %w", err)
	}

	fmt.Println("✓ Artifact applied")
	for _, c := range counts {
		fmt.Printf("  - %-28s %6d rows\n", c.StatisticID, c.Rows)
	}

	return nil
}
