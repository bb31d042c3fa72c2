package domain

// FeatureRow is an ordered mapping from feature name to numeric value.
// It represents one selected measurement row after numeric coercion, with
// non-numeric features already dropped. Iteration order is first-insertion
// order, which downstream table assembly relies on for deterministic output.
type FeatureRow struct {
	names  []string
	values map[string]float64
}

// NewFeatureRow creates an empty feature row.
func NewFeatureRow() *FeatureRow {
	return &FeatureRow{values: make(map[string]float64)}
}

// Set stores a value for the named feature. The first Set of a name fixes
// its position in iteration order; later Sets overwrite the value only.
func (r *FeatureRow) Set(name string, value float64) {
	if _, exists := r.values[name]; !exists {
		r.names = append(r.names, name)
	}
	r.values[name] = value
}

// Get returns the value for the named feature.
func (r *FeatureRow) Get(name string) (float64, bool) {
	v, ok := r.values[name]
	return v, ok
}

// Names returns the feature names in insertion order.
func (r *FeatureRow) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Len returns the number of features in the row.
func (r *FeatureRow) Len() int {
	return len(r.names)
}

// CohortTable accumulates per-patient feature rows into a table whose rows
// are patients in insertion order and whose columns are the union of all
// feature names seen, in first-seen order. Absent (patient, feature) cells
// are missing, never zero.
type CohortTable struct {
	patients []string
	rows     map[string]*FeatureRow
	columns  []string
	colSeen  map[string]bool
}

// NewCohortTable creates an empty cohort table.
func NewCohortTable() *CohortTable {
	return &CohortTable{
		rows:    make(map[string]*FeatureRow),
		colSeen: make(map[string]bool),
	}
}

// Insert adds a patient's row. Inserting the same patient twice keeps the
// first row; the column union grows with any feature names not yet seen.
func (t *CohortTable) Insert(patient string, row *FeatureRow) {
	if _, exists := t.rows[patient]; exists {
		return
	}
	t.patients = append(t.patients, patient)
	t.rows[patient] = row
	for _, name := range row.Names() {
		if !t.colSeen[name] {
			t.colSeen[name] = true
			t.columns = append(t.columns, name)
		}
	}
}

// Patients returns the patient identifiers in insertion order.
func (t *CohortTable) Patients() []string {
	out := make([]string, len(t.patients))
	copy(out, t.patients)
	return out
}

// Columns returns the union of feature names in first-seen order.
func (t *CohortTable) Columns() []string {
	out := make([]string, len(t.columns))
	copy(out, t.columns)
	return out
}

// Row returns the feature row for a patient.
func (t *CohortTable) Row(patient string) (*FeatureRow, bool) {
	row, ok := t.rows[patient]
	return row, ok
}

// Value returns one cell of the table. The second return is false for a
// missing cell, including patients or columns the table has never seen.
func (t *CohortTable) Value(patient, column string) (float64, bool) {
	row, ok := t.rows[patient]
	if !ok {
		return 0, false
	}
	return row.Get(column)
}

// Len returns the number of patient rows.
func (t *CohortTable) Len() int {
	return len(t.patients)
}
