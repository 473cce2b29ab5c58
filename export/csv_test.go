package export

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteResults(t *testing.T) {
	ts := []float64{0, 0.001, 0.002}
	original := []float64{1.0, 0.5, -0.5}
	noisy := []float64{1.1, 0.4, -0.6}
	reconstructed := []float64{1.0, 0.5, -0.5}

	var buf bytes.Buffer
	require.NoError(t, WriteResults(&buf, ts, original, noisy, reconstructed))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)

	assert.Equal(t, []string{"time", "original_signal", "noisy_signal", "reconstructed_signal"}, records[0])

	for i := range ts {
		v, err := strconv.ParseFloat(records[i+1][0], 64)
		require.NoError(t, err)
		assert.Equal(t, ts[i], v)

		v, err = strconv.ParseFloat(records[i+1][2], 64)
		require.NoError(t, err)
		assert.Equal(t, noisy[i], v)
	}
}

func TestWriteResultsLengthMismatch(t *testing.T) {
	var buf bytes.Buffer
	err := WriteResults(&buf, []float64{0, 1}, []float64{1}, []float64{1, 2}, []float64{1, 2})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "column lengths must match")
}

func TestWriteSignal(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSignal(&buf, []float64{0, 0.001}, []float64{0.25, -0.25}))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"time", "signal"}, records[0])
}

func TestWriteSignalLengthMismatch(t *testing.T) {
	var buf bytes.Buffer
	err := WriteSignal(&buf, []float64{0, 1}, []float64{1})
	require.Error(t, err)
}

func TestSaveResults(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "results")
	ts := []float64{0, 0.001}
	signal := []float64{1.0, -1.0}

	path, err := SaveResults(dir, "TEST_20240315_analyze", ts, signal, signal, signal)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "fft_data_TEST_20240315_analyze.csv"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "time,original_signal,noisy_signal,reconstructed_signal")
}
