package files

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"radcli/internal/config"
)

// PatientDir identifies one patient subdirectory of the cohort root.
type PatientDir struct {
	Name string
	Path string
}

// TimepointFiles holds the resolved Time-A and Time-B spreadsheet paths for
// one patient. An empty string means the slot could not be filled; that is
// not an error at this layer.
type TimepointFiles struct {
	TimeA string
	TimeB string
}

// Discovery provides file discovery for the cohort directory layout.
type Discovery struct {
	extension string
	markerA   string
	markerB   string
}

// NewDiscovery creates a discovery instance from the extraction settings.
func NewDiscovery(cfg config.ExtractionConfig) *Discovery {
	return &Discovery{
		extension: cfg.FileExtension,
		markerA:   strings.ToUpper(cfg.MarkerA),
		markerB:   strings.ToUpper(cfg.MarkerB),
	}
}

// ListPatientDirs lists the immediate subdirectories of the cohort root in
// sorted name order. Non-directory entries at the root are ignored.
func (d *Discovery) ListPatientDirs(root string) ([]PatientDir, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("failed to read cohort root %s: %w", root, err)
	}

	var dirs []PatientDir
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dirs = append(dirs, PatientDir{
			Name: entry.Name(),
			Path: filepath.Join(root, entry.Name()),
		})
	}

	sort.Slice(dirs, func(i, j int) bool {
		return dirs[i].Name < dirs[j].Name
	})

	return dirs, nil
}

// FindTimepointFiles scans the direct entries of a patient directory and
// resolves at most one Time-A and one Time-B spreadsheet.
//
// An entry qualifies only if its name ends with the configured extension
// (case-sensitive). Classification checks the upper-cased name for the A
// marker first, then the B marker; the branches are mutually exclusive, so
// a name containing both markers counts as Time A. Excel lock files (~$
// prefix) are ignored. If several candidates fill the same slot, the one
// with the lexicographically smallest full path wins, independent of
// directory-listing order.
func (d *Discovery) FindTimepointFiles(patientPath string) (TimepointFiles, error) {
	entries, err := os.ReadDir(patientPath)
	if err != nil {
		return TimepointFiles{}, fmt.Errorf("failed to read patient directory %s: %w", patientPath, err)
	}

	var aCandidates, bCandidates []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if strings.HasPrefix(name, "~$") {
			continue
		}
		if !strings.HasSuffix(name, d.extension) {
			continue
		}

		upperName := strings.ToUpper(name)
		fullPath := filepath.Join(patientPath, name)
		switch {
		case strings.Contains(upperName, d.markerA):
			aCandidates = append(aCandidates, fullPath)
		case strings.Contains(upperName, d.markerB):
			bCandidates = append(bCandidates, fullPath)
		}
	}

	sort.Strings(aCandidates)
	sort.Strings(bCandidates)

	var files TimepointFiles
	if len(aCandidates) > 0 {
		files.TimeA = aCandidates[0]
	}
	if len(bCandidates) > 0 {
		files.TimeB = bCandidates[0]
	}

	return files, nil
}
