package dataprocessing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"radcli/internal/config"
	"radcli/internal/files"
	"radcli/pkg/contracts/domain"
)

// Extractor orchestrates the per-patient pipeline across a cohort root and
// assembles the Delta, Time-A and Time-B cohort tables.
type Extractor struct {
	cfg       config.ExtractionConfig
	logger    *slog.Logger
	discovery *files.Discovery
	selector  *RowSelector
}

// NewExtractor creates a cohort extractor.
func NewExtractor(cfg config.ExtractionConfig, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{
		cfg:       cfg,
		logger:    logger,
		discovery: files.NewDiscovery(cfg),
		selector:  NewRowSelector(cfg),
	}
}

// Run processes every patient subdirectory of root in sorted name order and
// returns the three cohort tables plus the list of skipped patients with
// their reasons. One patient's failure never aborts the batch; the only
// error Run itself returns is an unreadable root.
//
// With Workers > 1 patients are extracted by a bounded pool, one result slot
// per patient, and merged in the same sorted order, so the output tables are
// identical to a sequential run.
func (e *Extractor) Run(ctx context.Context, root string) (*domain.CohortResult, error) {
	dirs, err := e.discovery.ListPatientDirs(root)
	if err != nil {
		return nil, err
	}

	e.logger.InfoContext(ctx, "starting cohort extraction",
		slog.String("root", root),
		slog.Int("patient_count", len(dirs)),
		slog.Int("workers", e.cfg.Workers))

	extractions := make([]domain.PatientExtraction, len(dirs))
	if e.cfg.Workers > 1 {
		g := new(errgroup.Group)
		g.SetLimit(e.cfg.Workers)
		for i, dir := range dirs {
			i, dir := i, dir
			g.Go(func() error {
				extractions[i] = e.extractPatient(ctx, dir)
				return nil
			})
		}
		_ = g.Wait() // workers report through their result slot, never an error
	} else {
		for i, dir := range dirs {
			extractions[i] = e.extractPatient(ctx, dir)
		}
	}

	result := &domain.CohortResult{
		Delta: domain.NewCohortTable(),
		TimeA: domain.NewCohortTable(),
		TimeB: domain.NewCohortTable(),
	}
	for _, extraction := range extractions {
		if !extraction.Included() {
			result.Skipped = append(result.Skipped, extraction)
			continue
		}
		result.Delta.Insert(extraction.Patient, extraction.Delta)
		result.TimeA.Insert(extraction.Patient, extraction.TimeA)
		result.TimeB.Insert(extraction.Patient, extraction.TimeB)
	}

	e.logger.InfoContext(ctx, "cohort extraction complete",
		slog.Int("included", result.Delta.Len()),
		slog.Int("skipped", len(result.Skipped)))

	return result, nil
}

// extractPatient runs the full decision tree for one patient. Every exit
// short of success records a skip reason; an unexpected panic inside the
// extraction is contained here and recorded as a fault.
func (e *Extractor) extractPatient(ctx context.Context, dir files.PatientDir) (extraction domain.PatientExtraction) {
	extraction = domain.PatientExtraction{Patient: dir.Name}

	defer func() {
		if r := recover(); r != nil {
			extraction = domain.PatientExtraction{
				Patient: dir.Name,
				Skip:    domain.SkipFault,
				Err:     fmt.Errorf("extraction fault: %v", r),
			}
		}
	}()

	timepoints, err := e.discovery.FindTimepointFiles(dir.Path)
	if err != nil {
		extraction.Skip = domain.SkipLoadFailed
		extraction.Err = err
		return extraction
	}

	// Decision tree, in priority order. Only the first branch warns; the
	// asymmetry with the second is deliberate policy.
	switch {
	case timepoints.TimeA != "" && timepoints.TimeB == "":
		e.logger.WarnContext(ctx, "patient has Time A file but missing Time B file, skipping",
			slog.String("patient", dir.Name))
		extraction.Skip = domain.SkipMissingTimeB
		return extraction
	case timepoints.TimeB != "" && timepoints.TimeA == "":
		extraction.Skip = domain.SkipMissingTimeA
		return extraction
	case timepoints.TimeA == "" && timepoints.TimeB == "":
		extraction.Skip = domain.SkipNoFiles
		return extraction
	}

	tableA, err := LoadMeasurementTable(timepoints.TimeA)
	if err != nil {
		extraction.Skip = domain.SkipLoadFailed
		extraction.Err = err
		return extraction
	}
	tableB, err := LoadMeasurementTable(timepoints.TimeB)
	if err != nil {
		extraction.Skip = domain.SkipLoadFailed
		extraction.Err = err
		return extraction
	}

	rawA, errA := e.selector.SelectFeatureRow(tableA)
	rawB, errB := e.selector.SelectFeatureRow(tableB)
	if errors.Is(errA, ErrNoLabelColumn) || errors.Is(errB, ErrNoLabelColumn) {
		extraction.Skip = domain.SkipNoLabelColumn
		return extraction
	}
	if errA != nil || errB != nil {
		extraction.Skip = domain.SkipNoTagMatch
		return extraction
	}

	numericA := CoerceNumeric(rawA)
	numericB := CoerceNumeric(rawB)
	delta := ComputeDelta(numericA, numericB)
	if delta.Len() == 0 {
		extraction.Skip = domain.SkipNoNumericFeatures
		return extraction
	}

	e.logger.DebugContext(ctx, "patient extracted",
		slog.String("patient", dir.Name),
		slog.Int("delta_features", delta.Len()))

	extraction.Delta = delta
	extraction.TimeA = numericA
	extraction.TimeB = numericB
	return extraction
}
