package main

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"radcli/internal/config"
	"radcli/internal/dataprocessing"
	"radcli/internal/exporter"
	"radcli/internal/infrastructure"
)

var (
	extractIn      string
	extractOut     string
	extractWorkers int
	extractBOM     bool
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Run the cohort extraction and write the three CSV tables",
	RunE:  runExtract,
}

func init() {
	extractCmd.Flags().StringVar(&extractIn, "in", "", "cohort root directory containing one subdirectory per patient")
	extractCmd.Flags().StringVar(&extractOut, "out", "reports", "output directory for the CSV tables")
	extractCmd.Flags().IntVar(&extractWorkers, "workers", 0, "per-patient worker pool size (overrides config)")
	extractCmd.Flags().BoolVar(&extractBOM, "bom", false, "prefix CSV output with a UTF-8 BOM for Excel")
	_ = extractCmd.MarkFlagRequired("in")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("workers") && extractWorkers > 0 {
		cfg.Extraction.Workers = extractWorkers
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer infrastructure.CloseLogger()

	ctx := infrastructure.WithRunID(cmd.Context(), infrastructure.NewRunID())

	extractor := dataprocessing.NewExtractor(cfg.Extraction, logger)
	result, err := extractor.Run(ctx, extractIn)
	if err != nil {
		return err
	}

	fmt.Printf("Extracted %d patients (%d skipped)\n", result.Delta.Len(), len(result.Skipped))
	for _, skip := range result.Skipped {
		logger.DebugContext(ctx, "patient skipped",
			slog.String("patient", skip.Patient),
			slog.String("reason", string(skip.Skip)))
	}

	writer := exporter.NewCSVWriter(logger)
	options := exporter.WriteOptions{BOMPrefix: extractBOM}

	deltaPath := filepath.Join(extractOut, "delta_radiomics.csv")
	if err := writer.WriteCohortTable(deltaPath, result.Delta, options); err != nil {
		return fmt.Errorf("failed to write delta table: %w", err)
	}
	timeAPath := filepath.Join(extractOut, "time_a_radiomics.csv")
	if err := writer.WriteCohortTable(timeAPath, result.TimeA, options); err != nil {
		return fmt.Errorf("failed to write Time A table: %w", err)
	}
	timeBPath := filepath.Join(extractOut, "time_b_radiomics.csv")
	if err := writer.WriteCohortTable(timeBPath, result.TimeB, options); err != nil {
		return fmt.Errorf("failed to write Time B table: %w", err)
	}

	logger.InfoContext(ctx, "extraction outputs written",
		slog.String("delta", deltaPath),
		slog.String("time_a", timeAPath),
		slog.String("time_b", timeBPath))

	fmt.Println("All patients processed")
	return nil
}
