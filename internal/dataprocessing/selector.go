package dataprocessing

import (
	"errors"
	"strings"

	"radcli/internal/config"
)

// Sentinel errors for the two defined row-selection failures. Callers treat
// both as a per-patient skip, not a fatal condition.
var (
	ErrNoLabelColumn = errors.New("label column not found")
	ErrNoTagMatch    = errors.New("no row label contains the selection tag")
)

// RawFeatureRow is the feature-column block of one selected row, mapping
// feature name to the raw cell text in header order. Empty header names are
// skipped; for duplicate header names the first occurrence wins.
type RawFeatureRow struct {
	names []string
	cells map[string]string
}

func newRawFeatureRow() *RawFeatureRow {
	return &RawFeatureRow{cells: make(map[string]string)}
}

func (r *RawFeatureRow) add(name, value string) {
	if _, exists := r.cells[name]; exists {
		return
	}
	r.names = append(r.names, name)
	r.cells[name] = value
}

// Names returns the feature names in header order.
func (r *RawFeatureRow) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Get returns the raw cell text for a feature.
func (r *RawFeatureRow) Get(name string) (string, bool) {
	v, ok := r.cells[name]
	return v, ok
}

// RowSelector locates the single canonical measurement row of a table.
type RowSelector struct {
	labelColumn  string
	selectionTag string
	featureStart int
}

// NewRowSelector creates a selector from the extraction settings.
func NewRowSelector(cfg config.ExtractionConfig) *RowSelector {
	return &RowSelector{
		labelColumn:  cfg.LabelColumn,
		selectionTag: cfg.SelectionTag,
		featureStart: cfg.FeatureStartColumn,
	}
}

// SelectFeatureRow finds the first row whose label cell contains the
// selection tag (case-sensitive) and returns that row's feature block: the
// columns at and beyond the feature-start offset.
//
// Returns ErrNoLabelColumn if the table lacks the label column, and
// ErrNoTagMatch if no row matches. Rows whose label cell is missing never
// match; a later match after the first is discarded by policy. Cells missing
// from ragged rows come back as empty text, to be dropped by coercion.
func (s *RowSelector) SelectFeatureRow(table *MeasurementTable) (*RawFeatureRow, error) {
	labelIdx := table.ColumnIndex(s.labelColumn)
	if labelIdx < 0 {
		return nil, ErrNoLabelColumn
	}

	matched := -1
	for i, row := range table.Rows {
		if labelIdx >= len(row) {
			continue
		}
		if strings.Contains(row[labelIdx], s.selectionTag) {
			matched = i
			break
		}
	}
	if matched < 0 {
		return nil, ErrNoTagMatch
	}

	row := table.Rows[matched]
	features := newRawFeatureRow()
	for col := s.featureStart; col < len(table.Headers); col++ {
		name := table.Headers[col]
		if name == "" {
			continue
		}
		value := ""
		if col < len(row) {
			value = row[col]
		}
		features.add(name, value)
	}

	return features, nil
}
