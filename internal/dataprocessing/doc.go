// Package dataprocessing implements the delta-radiomics extraction pipeline:
// loading per-patient measurement workbooks, selecting the canonical row per
// timepoint, computing B − A feature deltas, and aggregating a cohort into
// three tables.
//
// # Architecture
//
// The package is organized around four steps:
//
//  1. LoadMeasurementTable: reads a workbook's first worksheet as a table
//  2. RowSelector: picks the tagged measurement row's feature block
//  3. CoerceNumeric / ComputeDelta: numeric coercion and name-aligned deltas
//  4. Extractor: runs the per-patient decision tree across the cohort root
//
// # Data Flow
//
//	patient dir → A/B workbooks → selected rows → numeric rows → delta record
//	            → cohort tables (Delta, Time A, Time B)
//
// # Error Handling
//
// Structural absences (missing files, missing label column, no tag match)
// are expected and skip the affected patient only; the single warned case is
// a present Time-A file without its Time-B counterpart. Skips are collected
// as PatientExtraction results rather than discarded, so a run remains
// inspectable without changing its silent-by-design surface.
package dataprocessing
