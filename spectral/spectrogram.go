package spectral

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// DefaultDBRange is the default spectrogram dynamic range in dB
const DefaultDBRange = 60.0

// epsPower floors power values before the log so exact zeros don't map
// to -Inf. Matches the machine epsilon of float64.
var epsPower = math.Nextafter(1, 2) - 1

// Spectrogram converts a complex STFT matrix into a dB-scaled power
// matrix. Power below peak-dbRange is clamped to that floor, then the
// peak is subtracted so the output is peak-referenced: its maximum is
// exactly 0 and its minimum is at least -dbRange.
func Spectrogram(matrix [][]complex128, dbRange float64) ([][]float64, error) {
	if dbRange <= 0 {
		return nil, fmt.Errorf("%w: db_range must be positive, got %v", ErrInvalidArgument, dbRange)
	}
	if len(matrix) == 0 {
		return [][]float64{}, nil
	}

	powerDB := make([][]float64, len(matrix))
	peak := math.Inf(-1)

	for i, row := range matrix {
		powerDB[i] = make([]float64, len(row))
		for k, z := range row {
			mag := cmplx.Abs(z)
			power := mag * mag
			if power < epsPower {
				power = epsPower
			}
			powerDB[i][k] = 10 * math.Log10(power)
		}
		if len(row) > 0 {
			peak = math.Max(peak, floats.Max(powerDB[i]))
		}
	}

	floor := peak - dbRange
	for i := range powerDB {
		for k, db := range powerDB[i] {
			if db < floor {
				db = floor
			}
			powerDB[i][k] = db - peak
		}
	}

	return powerDB, nil
}

// MeanPowerProfile averages a spectrogram over time, yielding one dB
// value per frequency bin
func MeanPowerProfile(spectrogram [][]float64) []float64 {
	if len(spectrogram) == 0 {
		return []float64{}
	}

	bins := len(spectrogram[0])
	profile := make([]float64, bins)
	column := make([]float64, len(spectrogram))

	for k := 0; k < bins; k++ {
		for i := range spectrogram {
			column[i] = spectrogram[i][k]
		}
		profile[k] = stat.Mean(column, nil)
	}

	return profile
}

// PeakFrequencies returns the frequencies of local maxima in a
// time-averaged power profile. The profile and frequency axis must have
// equal length.
func PeakFrequencies(profile, freqs []float64) []float64 {
	peaks := []float64{}
	for i := 1; i < len(profile)-1 && i < len(freqs); i++ {
		if profile[i] > profile[i-1] && profile[i] > profile[i+1] {
			peaks = append(peaks, freqs[i])
		}
	}
	return peaks
}
