package main

import (
	"github.com/ryanmaule/greenbutton-to-homeassistant-sql/internal/config"
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "gb2ha",
	Short: "Convert Green Button XML exports to Home Assistant statistics SQL",
	Long: `gb2ha converts a utility's Green Button interval-data export into batched
SQL statements that backfill the Home Assistant long-term statistics tables.
Readings are split by time-of-use tier and aggregated per day, producing
8 statistics series with running cumulative sums.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
}

// getConfigPath returns the config file path
func getConfigPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	return config.DefaultConfigPath()
}

// loadConfig loads the configuration file
func loadConfig() (*config.Config, error) {
	return config.Load(getConfigPath())
}
