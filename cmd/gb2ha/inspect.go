package main

import (
	"fmt"
	"os"
	"time"

	"github.com/ryanmaule/greenbutton-to-homeassistant-sql/internal/espi"
	"github.com/ryanmaule/greenbutton-to-homeassistant-sql/internal/transform"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <input.xml>",
	Short: "Show what a Green Button export contains",
	Long:  `Parses an export without generating SQL and prints the daily usage table and tier breakdown.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	// Load config
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	readings, err := espi.Extract(data)
	if err != nil {
		return fmt.Errorf("extracting readings: %w", err)
	}

	if len(readings) == 0 {
		fmt.Println("No hourly readings found")
		return nil
	}

	loc, err := time.LoadLocation(cfg.GetTimezone())
	if err != nil {
		return fmt.Errorf("loading timezone %q: %w", cfg.GetTimezone(), err)
	}

	totals := transform.AggregateDaily(readings, loc, cfg.GetDailyHourUTC())

	fmt.Printf("\nDaily Usage (%s):\n", cfg.GetTimezone())
	fmt.Println("--------------------------------------------------")
	fmt.Printf("%-12s  %10s  %10s\n", "Date", "kWh", "Cost")
	fmt.Println("--------------------------------------------------")

	var totalKWh, totalCost float64
	for _, t := range totals {
		fmt.Printf("%-12s  %10.2f  %10.2f\n", t.Date, t.ConsumptionKWh, t.CostCAD)
		totalKWh += t.ConsumptionKWh
		totalCost += t.CostCAD
	}

	fmt.Println("--------------------------------------------------")
	fmt.Printf("Total: %.2f kWh, $%.2f (%d readings over %d days)\n",
		totalKWh, totalCost, len(readings), len(totals))

	partition := transform.Classify(readings)
	fmt.Printf("\nTOU breakdown: On-Peak %d, Mid-Peak %d, Off-Peak %d\n",
		len(partition.OnPeak), len(partition.MidPeak), len(partition.OffPeak))

	return nil
}
