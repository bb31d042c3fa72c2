package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"radcli/pkg/contracts/domain"
)

func rawRow(pairs ...string) *RawFeatureRow {
	row := newRawFeatureRow()
	for i := 0; i+1 < len(pairs); i += 2 {
		row.add(pairs[i], pairs[i+1])
	}
	return row
}

func numericRow(t *testing.T, pairs ...any) *domain.FeatureRow {
	t.Helper()
	row := domain.NewFeatureRow()
	for i := 0; i+1 < len(pairs); i += 2 {
		name, ok := pairs[i].(string)
		require.True(t, ok)
		value, ok := pairs[i+1].(float64)
		require.True(t, ok)
		row.Set(name, value)
	}
	return row
}

func TestParseNumeric(t *testing.T) {
	tests := []struct {
		cell   string
		want   float64
		wantOK bool
	}{
		{"1.5", 1.5, true},
		{"-2", -2, true},
		{"  3.25  ", 3.25, true},
		{"1,234.5", 1234.5, true},
		{"1e3", 1000, true},
		{"", 0, false},
		{"n/a", 0, false},
		{"NaN", 0, false},
		{"Inf", 0, false},
		{"-Inf", 0, false},
		{"12abc", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.cell, func(t *testing.T) {
			got, ok := parseNumeric(tt.cell)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestCoerceNumeric(t *testing.T) {
	raw := rawRow("FeatA", "1.0", "FeatB", "n/a", "FeatC", "", "FeatD", "2.5")

	row := CoerceNumeric(raw)

	assert.Equal(t, []string{"FeatA", "FeatD"}, row.Names(), "non-numeric features dropped, order preserved")
	a, _ := row.Get("FeatA")
	assert.Equal(t, 1.0, a)
	d, _ := row.Get("FeatD")
	assert.Equal(t, 2.5, d)
}

func TestComputeDelta(t *testing.T) {
	timeA := numericRow(t, "FeatA", 1.0, "FeatB", 2.0, "OnlyA", 9.0)
	timeB := numericRow(t, "FeatB", 0.5, "FeatA", 3.0, "OnlyB", 7.0)

	delta := ComputeDelta(timeA, timeB)

	assert.Equal(t, []string{"FeatA", "FeatB"}, delta.Names(), "A-side order restricted to the intersection")
	a, _ := delta.Get("FeatA")
	assert.Equal(t, 2.0, a)
	b, _ := delta.Get("FeatB")
	assert.Equal(t, -1.5, b)

	_, ok := delta.Get("OnlyA")
	assert.False(t, ok, "non-overlapping features are absent, not placeholders")
	_, ok = delta.Get("OnlyB")
	assert.False(t, ok)
}

// The worked example from the selection policy: FeatB is non-numeric on the
// A side, so it is dropped from the delta but kept in the B row.
func TestCoerceAndDelta_PartialNumeric(t *testing.T) {
	numericA := CoerceNumeric(rawRow("FeatA", "1.0", "FeatB", "n/a"))
	numericB := CoerceNumeric(rawRow("FeatA", "3.0", "FeatB", "5.0"))

	delta := ComputeDelta(numericA, numericB)

	assert.Equal(t, []string{"FeatA"}, delta.Names())
	v, _ := delta.Get("FeatA")
	assert.Equal(t, 2.0, v)

	assert.Equal(t, []string{"FeatA"}, numericA.Names())
	assert.Equal(t, []string{"FeatA", "FeatB"}, numericB.Names())
}

func TestComputeDelta_Empty(t *testing.T) {
	delta := ComputeDelta(domain.NewFeatureRow(), numericRow(t, "FeatA", 1.0))
	assert.Equal(t, 0, delta.Len())
}
