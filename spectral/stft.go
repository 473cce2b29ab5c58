package spectral

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/argonlab/timefreq/logging"
	"github.com/argonlab/timefreq/windowing"
)

// STFT provides Short-Time Fourier Transform functionality
type STFT struct {
	fft    *FFT
	logger logging.Logger
}

// STFTResult holds the result of short-time analysis
type STFTResult struct {
	Times          []float64      `json:"times"`           // Frame start times in seconds
	Freqs          []float64      `json:"freqs"`           // One-sided frequency bins in Hz
	Matrix         [][]complex128 `json:"-"`               // Time x frequency complex matrix (not serialized)
	NumWindows     int            `json:"num_windows"`     // Number of frames
	FreqBins       int            `json:"freq_bins"`       // Number of frequency bins per frame
	SampleRate     float64        `json:"sample_rate"`     // Sample rate in Hz
	WindowSize     int            `json:"window_size"`     // Frame length in samples
	HopLength      int            `json:"hop_length"`      // Stride between frame starts in samples
	WindowType     windowing.Type `json:"window_type"`     // Window family applied to each frame
	FreqResolution float64        `json:"freq_resolution"` // Frequency resolution (Hz/bin)
	TimeResolution float64        `json:"time_resolution"` // Time resolution (seconds/frame)
}

// NewSTFT creates a new STFT calculator
func NewSTFT() *STFT {
	return &STFT{
		fft: NewFFT(),
		logger: logging.WithFields(logging.Fields{
			"component": "stft",
		}),
	}
}

// Compute segments the signal into overlapping frames, applies the chosen
// window to each frame, and transforms each frame to its one-sided
// spectrum. Parameters are validated before any computation: window size
// and hop length must be positive, the hop length must not exceed the
// window size, and the signal must be at least one window long. Frames are
// processed by a worker pool; each frame writes a distinct matrix row, so
// the result is deterministic for identical inputs.
func (s *STFT) Compute(signal []float64, sampleRate float64, windowSize, hopLength int, windowType windowing.Type) (*STFTResult, error) {
	if windowSize <= 0 {
		return nil, fmt.Errorf("%w: window_size must be positive, got %d", ErrInvalidArgument, windowSize)
	}
	if hopLength <= 0 {
		return nil, fmt.Errorf("%w: hop_length must be positive, got %d", ErrInvalidArgument, hopLength)
	}
	if hopLength > windowSize {
		return nil, fmt.Errorf("%w: hop_length (%d) must be less than or equal to window_size (%d)",
			ErrInvalidArgument, hopLength, windowSize)
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: sample rate must be positive, got %v", ErrInvalidArgument, sampleRate)
	}
	if len(signal) < windowSize {
		err := fmt.Errorf("%w: signal length (%d) is shorter than window_size (%d)",
			ErrInvalidArgument, len(signal), windowSize)
		s.logger.Error(err, "rejecting STFT parameters")
		return nil, err
	}

	window, err := windowing.New(windowType, windowSize)
	if err != nil {
		return nil, err
	}

	numWindows := 1 + (len(signal)-windowSize)/hopLength
	freqBins := windowSize/2 + 1

	s.logger.Debug("computing STFT", logging.Fields{
		"num_windows": numWindows,
		"freq_bins":   freqBins,
		"window_type": windowType,
	})

	matrix := make([][]complex128, numWindows)
	for i := 0; i < numWindows; i++ {
		matrix[i] = make([]complex128, freqBins)
	}

	times := make([]float64, numWindows)
	for i := 0; i < numWindows; i++ {
		times[i] = float64(i*hopLength) / sampleRate
	}

	freqs := make([]float64, freqBins)
	for k := 0; k < freqBins; k++ {
		freqs[k] = float64(k) * sampleRate / float64(windowSize)
	}

	numWorkers := s.getOptimalWorkerCount(numWindows)

	jobs := make(chan int, numWindows)

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			// Reuse frame buffer for this worker
			frameBuffer := make([]float64, windowSize)

			for frameIdx := range jobs {
				start := frameIdx * hopLength
				copy(frameBuffer, signal[start:start+windowSize])

				// Window coefficients are read-only across workers
				if err := window.ApplyInPlace(frameBuffer); err != nil {
					continue
				}

				spectrum := s.fft.Compute(frameBuffer)
				copy(matrix[frameIdx], spectrum[:freqBins])
			}
		}()
	}

	for frameIdx := 0; frameIdx < numWindows; frameIdx++ {
		jobs <- frameIdx
	}
	close(jobs)

	wg.Wait()

	return &STFTResult{
		Times:          times,
		Freqs:          freqs,
		Matrix:         matrix,
		NumWindows:     numWindows,
		FreqBins:       freqBins,
		SampleRate:     sampleRate,
		WindowSize:     windowSize,
		HopLength:      hopLength,
		WindowType:     windowType,
		FreqResolution: sampleRate / float64(windowSize),
		TimeResolution: float64(hopLength) / sampleRate,
	}, nil
}

// getOptimalWorkerCount determines the number of workers for the frame pool
func (s *STFT) getOptimalWorkerCount(numFrames int) int {
	numCPU := runtime.NumCPU()

	// For small workloads, don't over-parallelize
	if numFrames < 100 {
		return max(1, min(numCPU/2, numFrames))
	}

	if numFrames < 1000 {
		return min(numCPU, 8)
	}

	return numCPU
}
