package dataprocessing

import (
	"math"
	"strconv"
	"strings"

	"radcli/pkg/contracts/domain"
)

// CoerceNumeric converts a raw feature row to numeric values. Features whose
// cell text cannot be parsed as a finite number are dropped, not zeroed;
// header order is preserved for the survivors.
func CoerceNumeric(raw *RawFeatureRow) *domain.FeatureRow {
	out := domain.NewFeatureRow()
	for _, name := range raw.Names() {
		cell, _ := raw.Get(name)
		if v, ok := parseNumeric(cell); ok {
			out.Set(name, v)
		}
	}
	return out
}

// parseNumeric parses one cell, tolerating surrounding whitespace and
// thousands separators. NaN and infinities count as unparseable.
func parseNumeric(cell string) (float64, bool) {
	s := strings.ReplaceAll(strings.TrimSpace(cell), ",", "")
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// ComputeDelta aligns two numeric rows by feature name and returns the
// elementwise difference timeB − timeA. A feature appears in the result only
// if both sides carry a numeric entry for it; non-overlapping features are
// absent entirely, never present with a placeholder. Order follows the
// A-side row restricted to the intersection.
func ComputeDelta(timeA, timeB *domain.FeatureRow) *domain.FeatureRow {
	delta := domain.NewFeatureRow()
	for _, name := range timeA.Names() {
		a, _ := timeA.Get(name)
		b, ok := timeB.Get(name)
		if !ok {
			continue
		}
		delta.Set(name, b-a)
	}
	return delta
}
