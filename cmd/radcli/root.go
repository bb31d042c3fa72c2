package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "radcli",
	Short: "radcli extracts delta-radiomics cohort tables from per-patient workbooks",
	Long: `radcli walks a cohort directory of per-patient spreadsheet folders,
selects the canonical measurement row for each of the two timepoints, and
produces three tables: the Time A features, the Time B features, and their
per-feature delta (B - A). The tables are written as CSV for downstream
reporting and plotting.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML, optional)")
}
