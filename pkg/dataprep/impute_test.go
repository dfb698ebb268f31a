package dataprep

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImputeMean(t *testing.T) {
	col := []string{"100", "N/A", "200", ""}
	got := ImputeMean(col)
	assert.Equal(t, []string{"100", "150", "200", "150"}, got)
	// Input is untouched.
	assert.Equal(t, "N/A", col[1])
}

func TestImputeMedian(t *testing.T) {
	got := ImputeMedian([]string{"10", "1000", "20", "NaN"})
	assert.Equal(t, "20", got[3])
}

func TestImputeModeCategorical(t *testing.T) {
	got := ImputeMode([]string{"sedan", "coupe", "sedan", ""})
	assert.Equal(t, "sedan", got[3])
}

func TestImputeModeAllMissing(t *testing.T) {
	col := []string{"", "NA"}
	assert.Equal(t, col, ImputeMode(col))
}

func TestImputeConstant(t *testing.T) {
	got := ImputeConstant([]string{"sedan", "null"}, "Unknown")
	assert.Equal(t, []string{"sedan", "Unknown"}, got)
}
