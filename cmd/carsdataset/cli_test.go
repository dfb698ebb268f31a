package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeRawCSV writes a small scraped-looking file: formatted numbers,
// a missing horsepower, a row without a make, and an exact duplicate.
func writeRawCSV(t *testing.T, path string) {
	t.Helper()
	rows := [][]string{
		{"make", "model", "year", "horsepower", "displacement", "weight", "acceleration", "body_type"},
	}
	for i := 0; i < 12; i++ {
		rows = append(rows, []string{
			"Toyota", fmt.Sprintf("Corolla %d", i), fmt.Sprintf("%d", 2000+i),
			fmt.Sprintf("%d", 100+5*i), "1.8", fmt.Sprintf("1,%03d", 200+10*i), "10.5", "sedan",
		})
	}
	rows = append(rows,
		[]string{"Toyota", "Corolla 3", "2003", "NA", "1.8", "1,230", "10.5", "sedan"},
		[]string{"", "Orphan", "2010", "90", "1.4", "1,100", "12.0", "hatchback"},
		[]string{"Toyota", "Corolla 0", "2000", "100", "1.8", "1,200", "10.5", "sedan"},
	)

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	w := csv.NewWriter(f)
	require.NoError(t, w.WriteAll(rows))
}

func TestRunCommandEndToEnd(t *testing.T) {
	dir := t.TempDir()
	raw := filepath.Join(dir, "raw.csv")
	writeRawCSV(t, raw)
	outDir := filepath.Join(dir, "out")

	cmd := newRootCmd()
	cmd.SetArgs([]string{"run",
		"--in", raw,
		"--out-dir", outDir,
		"--plots=false",
		"--cluster-k", "2",
	})
	require.NoError(t, cmd.Execute())

	cleaned := readCSVFile(t, filepath.Join(outDir, "cleaned.csv"))
	// 12 distinct cars: the NA-horsepower row is imputed, the row
	// without a make and the duplicate are dropped.
	assert.Len(t, cleaned, 14)
	for _, row := range cleaned[1:] {
		for _, cell := range row {
			assert.NotEqual(t, "", cell)
			assert.NotEqual(t, "NA", cell)
		}
	}

	summary := readCSVFile(t, filepath.Join(outDir, "summary_by_make.csv"))
	require.Len(t, summary, 2)
	assert.Equal(t, "Toyota", summary[1][0])
	assert.Equal(t, "13", summary[1][1])

	corr := readCSVFile(t, filepath.Join(outDir, "correlation.csv"))
	assert.Greater(t, len(corr), 1)

	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotEqual(t, ".png", filepath.Ext(e.Name()), "plots were disabled")
	}
}

func TestCleanCommandRejectsUnknownHeader(t *testing.T) {
	dir := t.TempDir()
	raw := filepath.Join(dir, "raw.csv")
	require.NoError(t, os.WriteFile(raw, []byte("brand,price\nToyota,1000\n"), 0o644))

	cmd := newRootCmd()
	cmd.SetArgs([]string{"clean", "--in", raw, "--out", filepath.Join(dir, "cleaned.csv")})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "make")
}

func TestCleanCommandRequiresInput(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"clean"})
	assert.Error(t, cmd.Execute())
}

func readCSVFile(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return records
}
