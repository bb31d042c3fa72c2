package exporter

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"radcli/pkg/contracts/domain"
)

// patientColumn is the header of the leading identifier column.
const patientColumn = "Patient"

// CSVWriter serializes cohort tables for downstream consumers.
type CSVWriter struct {
	logger *slog.Logger
}

// NewCSVWriter creates a new CSV writer instance.
func NewCSVWriter(logger *slog.Logger) *CSVWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CSVWriter{logger: logger}
}

// WriteOptions configures CSV writing behavior.
type WriteOptions struct {
	BOMPrefix bool // Add UTF-8 BOM for Excel compatibility
}

// WriteCohortTable writes one cohort table to filePath. Rows keep the
// table's patient insertion order and columns its first-seen union order;
// missing cells are written as empty fields, never zero.
func (w *CSVWriter) WriteCohortTable(filePath string, table *domain.CohortTable, options WriteOptions) error {
	w.logger.Info("writing cohort table",
		slog.String("path", filePath),
		slog.Int("patients", table.Len()),
		slog.Int("features", len(table.Columns())))

	if dir := filepath.Dir(filePath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if options.BOMPrefix {
		if _, err := file.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
			return fmt.Errorf("failed to write BOM: %w", err)
		}
	}

	writer := csv.NewWriter(file)
	defer writer.Flush()

	columns := table.Columns()
	header := append([]string{patientColumn}, columns...)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, patient := range table.Patients() {
		record := make([]string, 0, len(header))
		record = append(record, patient)
		for _, column := range columns {
			cell := ""
			if v, ok := table.Value(patient, column); ok {
				cell = strconv.FormatFloat(v, 'g', -1, 64)
			}
			record = append(record, cell)
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record for %s: %w", patient, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}

	return nil
}
