package rdxplot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go-hep.org/x/hep/hbook"
)

func fillTestPair(t *testing.T, dataRows, weightRows []testRow, firstEntry, maxEntries int64) (raw, weighted *hbook.H1D, err error) {
	t.Helper()

	dir := t.TempDir()
	dataPath := filepath.Join(dir, "d.root")
	weightPath := filepath.Join(dir, "w.root")
	writeTestTree(t, dataPath, "tree_d", "q2", dataRows)
	writeTestTree(t, weightPath, "tree_w", "w_ff", weightRows)

	wTree, wClose, err := OpenTree(weightPath, "tree_w")
	require.NoError(t, err)
	defer wClose()

	idx, err := BuildWeightIndex(wTree, "w_ff")
	require.NoError(t, err)

	dTree, dClose, err := OpenTree(dataPath, "tree_d")
	require.NoError(t, err)
	defer dClose()

	return FillPair(dTree, "q2", idx, BinRange{Bins: 4, Min: 0, Max: 4}, firstEntry, maxEntries)
}

func TestFillPairUniformWeights(t *testing.T) {
	dataRows := []testRow{
		{1, 100, 0.5}, {1, 101, 0.5},
		{1, 102, 1.5}, {1, 103, 1.5},
		{1, 104, 2.5}, {1, 105, 2.5},
		{1, 106, 3.5}, {1, 107, 3.5},
	}
	weightRows := make([]testRow, len(dataRows))
	for i, r := range dataRows {
		weightRows[i] = testRow{r.run, r.event, 2.0}
	}

	raw, weighted, err := fillTestPair(t, dataRows, weightRows, 0, 0)
	require.NoError(t, err)

	assert.InDelta(t, 8, raw.Integral(), 1e-12)
	assert.InDelta(t, 16, weighted.Integral(), 1e-12)
}

func TestFillPairNonUniformWeights(t *testing.T) {
	dataRows := []testRow{
		{1, 100, 0.5}, {1, 101, 1.5},
		{1, 102, 2.5}, {1, 103, 3.5},
	}
	weightRows := []testRow{
		{1, 100, 0.5}, {1, 101, 1.5},
		{1, 102, 0.8}, {1, 103, 1.6},
	}

	raw, weighted, err := fillTestPair(t, dataRows, weightRows, 0, 0)
	require.NoError(t, err)

	assert.InDelta(t, 4, raw.Integral(), 1e-12)
	assert.InDelta(t, 4.4, weighted.Integral(), 1e-12)
}

func TestFillPairMissingAssociation(t *testing.T) {
	dataRows := []testRow{
		{1, 100, 0.5},
		{1, 101, 1.5},
	}
	weightRows := []testRow{
		{1, 100, 1.0},
	}

	_, _, err := fillTestPair(t, dataRows, weightRows, 0, 0)
	require.ErrorIs(t, err, ErrNoAssociation)
}

func TestFillPairEntryWindow(t *testing.T) {
	dataRows := []testRow{
		{1, 100, 0.5}, {1, 101, 1.5},
		{1, 102, 2.5}, {1, 103, 3.5},
	}
	weightRows := make([]testRow, len(dataRows))
	for i, r := range dataRows {
		weightRows[i] = testRow{r.run, r.event, 1.0}
	}

	raw, _, err := fillTestPair(t, dataRows, weightRows, 1, 2)
	require.NoError(t, err)

	assert.InDelta(t, 2, raw.Integral(), 1e-12)
}

func TestWriteRatioPlot(t *testing.T) {
	dataRows := []testRow{
		{1, 100, 0.5}, {1, 101, 0.5},
		{1, 102, 1.5}, {1, 103, 1.5},
		{1, 104, 2.5}, {1, 105, 2.5},
		{1, 106, 3.5}, {1, 107, 3.5},
	}
	weightRows := make([]testRow, len(dataRows))
	for i, r := range dataRows {
		weightRows[i] = testRow{r.run, r.event, 0.8}
	}

	raw, weighted, err := fillTestPair(t, dataRows, weightRows, 0, 0)
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "q2.png")
	err = WriteRatioPlot(out, raw, weighted, RatioConfig{
		XLabel:   "q2",
		UpYMin:   0,
		UpYMax:   4,
		DownYMin: 0.5,
		DownYMax: 2,
	})
	require.NoError(t, err)

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
