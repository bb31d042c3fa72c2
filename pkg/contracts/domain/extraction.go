package domain

// SkipReason classifies why a patient was excluded from the cohort tables.
type SkipReason string

const (
	// SkipMissingTimeB: Time-A file present but Time-B absent. The only
	// skip that emits a warning.
	SkipMissingTimeB SkipReason = "missing_time_b"
	// SkipMissingTimeA: Time-B file present but Time-A absent. Silent, by
	// policy asymmetric with SkipMissingTimeB.
	SkipMissingTimeA SkipReason = "missing_time_a"
	// SkipNoFiles: neither timepoint file found.
	SkipNoFiles SkipReason = "no_files"
	// SkipLoadFailed: one of the two workbooks could not be opened or read.
	SkipLoadFailed SkipReason = "load_failed"
	// SkipNoLabelColumn: a workbook lacks the label column entirely.
	SkipNoLabelColumn SkipReason = "no_label_column"
	// SkipNoTagMatch: no row's label contains the selection tag.
	SkipNoTagMatch SkipReason = "no_tag_match"
	// SkipNoNumericFeatures: no feature survived numeric coercion on both
	// sides, leaving an empty delta record.
	SkipNoNumericFeatures SkipReason = "no_numeric_features"
	// SkipFault: an unexpected fault during this patient's extraction,
	// contained so the batch continues.
	SkipFault SkipReason = "fault"
)

// PatientExtraction is the per-patient outcome of the pipeline: either a
// delta record with its two source rows, or a skip reason. Collecting
// failures here keeps the batch resilient while staying inspectable.
type PatientExtraction struct {
	Patient string
	Delta   *FeatureRow
	TimeA   *FeatureRow
	TimeB   *FeatureRow
	Skip    SkipReason
	Err     error // underlying cause for SkipLoadFailed, nil otherwise
}

// Included reports whether the patient made it into the cohort tables.
func (e PatientExtraction) Included() bool {
	return e.Skip == ""
}

// CohortResult holds the three cohort tables plus the diagnostics list of
// patients that were skipped. The three tables share one included-patient
// set by construction.
type CohortResult struct {
	Delta *CohortTable
	TimeA *CohortTable
	TimeB *CohortTable

	Skipped []PatientExtraction
}
