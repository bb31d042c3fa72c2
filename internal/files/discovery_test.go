package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"radcli/internal/config"
)

func testDiscovery() *Discovery {
	return NewDiscovery(config.Default().Extraction)
}

func touch(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
	}
}

func TestListPatientDirs(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"P010", "P002", "P001"} {
		require.NoError(t, os.Mkdir(filepath.Join(root, name), 0755))
	}
	touch(t, root, "stray.xlsx", "notes.txt")

	dirs, err := testDiscovery().ListPatientDirs(root)
	require.NoError(t, err)

	names := make([]string, 0, len(dirs))
	for _, d := range dirs {
		names = append(names, d.Name)
	}
	assert.Equal(t, []string{"P001", "P002", "P010"}, names, "patient order is sorted, files at root ignored")
	assert.Equal(t, filepath.Join(root, "P001"), dirs[0].Path)
}

func TestListPatientDirs_MissingRoot(t *testing.T) {
	_, err := testDiscovery().ListPatientDirs(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestFindTimepointFiles(t *testing.T) {
	tests := []struct {
		name      string
		fileNames []string
		wantA     string
		wantB     string
	}{
		{
			name:      "one of each",
			fileNames: []string{"scan_A.xlsx", "scan_B.xlsx"},
			wantA:     "scan_A.xlsx",
			wantB:     "scan_B.xlsx",
		},
		{
			name:      "marker match is case-insensitive",
			fileNames: []string{"scan_a.xlsx", "scan_b.xlsx"},
			wantA:     "scan_a.xlsx",
			wantB:     "scan_b.xlsx",
		},
		{
			name:      "extension match is case-sensitive",
			fileNames: []string{"scan_A.XLSX", "scan_B.xlsx"},
			wantA:     "",
			wantB:     "scan_B.xlsx",
		},
		{
			name:      "wrong extension ignored",
			fileNames: []string{"scan_A.txt", "scan_A.csv"},
			wantA:     "",
			wantB:     "",
		},
		{
			name:      "lock files ignored",
			fileNames: []string{"~$scan_A.xlsx", "scan_B.xlsx"},
			wantA:     "",
			wantB:     "scan_B.xlsx",
		},
		{
			name:      "name matching both markers is Time A only",
			fileNames: []string{"rescan_A_B.xlsx"},
			wantA:     "rescan_A_B.xlsx",
			wantB:     "",
		},
		{
			name:      "neither marker ignored",
			fileNames: []string{"summary.xlsx"},
			wantA:     "",
			wantB:     "",
		},
		{
			name:      "tie-break picks lexicographically smallest path",
			fileNames: []string{"zz_A.xlsx", "aa_A.xlsx", "mm_A.xlsx"},
			wantA:     "aa_A.xlsx",
			wantB:     "",
		},
		{
			name:      "empty directory",
			fileNames: nil,
			wantA:     "",
			wantB:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			touch(t, dir, tt.fileNames...)

			got, err := testDiscovery().FindTimepointFiles(dir)
			require.NoError(t, err)

			wantA := ""
			if tt.wantA != "" {
				wantA = filepath.Join(dir, tt.wantA)
			}
			wantB := ""
			if tt.wantB != "" {
				wantB = filepath.Join(dir, tt.wantB)
			}
			assert.Equal(t, wantA, got.TimeA)
			assert.Equal(t, wantB, got.TimeB)
		})
	}
}

func TestFindTimepointFiles_SubdirectoriesIgnored(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested_A.xlsx"), 0755))
	touch(t, dir, "scan_B.xlsx")

	got, err := testDiscovery().FindTimepointFiles(dir)
	require.NoError(t, err)
	assert.Empty(t, got.TimeA, "a directory never qualifies, even with a matching name")
	assert.Equal(t, filepath.Join(dir, "scan_B.xlsx"), got.TimeB)
}

func TestFindTimepointFiles_MissingDir(t *testing.T) {
	_, err := testDiscovery().FindTimepointFiles(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestFindTimepointFiles_Deterministic(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "c_A.xlsx", "a_A.xlsx", "b_A.xlsx")

	d := testDiscovery()
	first, err := d.FindTimepointFiles(dir)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := d.FindTimepointFiles(dir)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
