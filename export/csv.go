// Package export writes analysis results as delimited text files. It is a
// thin consumer of the numeric core's outputs; the columns mirror the
// signals produced by the analysis pipeline.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

// WriteResults writes the four signal columns as CSV with a header row.
// All columns must have the same length as the time axis.
func WriteResults(w io.Writer, t, original, noisy, reconstructed []float64) error {
	if len(original) != len(t) || len(noisy) != len(t) || len(reconstructed) != len(t) {
		return fmt.Errorf("column lengths must match: time=%d original=%d noisy=%d reconstructed=%d",
			len(t), len(original), len(noisy), len(reconstructed))
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"time", "original_signal", "noisy_signal", "reconstructed_signal"}); err != nil {
		return err
	}

	for i := range t {
		record := []string{
			formatSample(t[i]),
			formatSample(original[i]),
			formatSample(noisy[i]),
			formatSample(reconstructed[i]),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteSignal writes a single signal column against its time axis
func WriteSignal(w io.Writer, t, signal []float64) error {
	if len(signal) != len(t) {
		return fmt.Errorf("column lengths must match: time=%d signal=%d", len(t), len(signal))
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"time", "signal"}); err != nil {
		return err
	}

	for i := range t {
		if err := cw.Write([]string{formatSample(t[i]), formatSample(signal[i])}); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// SaveResults writes the results file under dir, named after the
// experiment identifier, and returns its path
func SaveResults(dir, experimentID string, t, original, noisy, reconstructed []float64) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	path := filepath.Join(dir, fmt.Sprintf("fft_data_%s.csv", experimentID))
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteResults(f, t, original, noisy, reconstructed); err != nil {
		return "", err
	}

	return path, nil
}

func formatSample(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
