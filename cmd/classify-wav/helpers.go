package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"gonum.org/v1/gonum/stat"

	quality "github.com/tphakala/go-audio-quality"
)

// Full-scale PCM values per bit depth.
const (
	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32

	maxInt16 = 32767.0
	maxInt24 = 8388607.0
	maxInt32 = 2147483647.0
)

// wavInputInfo holds validated input file information.
type wavInputInfo struct {
	file     *os.File
	decoder  *wav.Decoder
	rate     int
	channels int
	bitDepth int
	format   *audio.Format
}

// openWAVInput opens and validates a WAV file, returning format information.
func openWAVInput(path string, verbose bool) (*wavInputInfo, error) {
	inputFile, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}

	decoder := wav.NewDecoder(inputFile)
	if !decoder.IsValidFile() {
		_ = inputFile.Close()
		return nil, fmt.Errorf("invalid WAV file: %s", path)
	}

	format := decoder.Format()
	if verbose {
		log.Printf("Input format: %d Hz, %d channels, %d-bit",
			format.SampleRate, format.NumChannels, decoder.BitDepth)
	}

	return &wavInputInfo{
		file:     inputFile,
		decoder:  decoder,
		rate:     format.SampleRate,
		channels: format.NumChannels,
		bitDepth: int(decoder.BitDepth),
		format:   format,
	}, nil
}

// Close closes the input file.
func (w *wavInputInfo) Close() error {
	return w.file.Close()
}

// parseVariant maps a flag value to a decision cascade.
func parseVariant(name string) (quality.Variant, error) {
	switch name {
	case "refined":
		return quality.VariantRefined, nil
	case "baseline":
		return quality.VariantBaseline, nil
	default:
		return 0, fmt.Errorf("unknown variant %q (expected refined or baseline)", name)
	}
}

// getMaxValue returns the full-scale value for a PCM bit depth.
func getMaxValue(bitDepth int) float64 {
	switch bitDepth {
	case bitsPerSample24:
		return maxInt24
	case bitsPerSample32:
		return maxInt32
	case bitsPerSample16:
		return maxInt16
	default:
		// 16-bit is by far the most common; treat unknown depths as 16.
		return maxInt16
	}
}

// frameSummary aggregates classification results over a whole file.
type frameSummary struct {
	counts    [4]int // indexed by quality.Code
	frames    int
	rmsValues []float64
}

// add records one classified frame.
func (s *frameSummary) add(report quality.Report) {
	if report.Code >= 0 && int(report.Code) < len(s.counts) {
		s.counts[report.Code]++
	}
	s.frames++
	s.rmsValues = append(s.rmsValues, report.RMS)
}

// classifyFrames reads the file frame by frame, averaging channels to
// mono and normalizing PCM to [-1, 1], and classifies each frame. A
// trailing partial frame is classified at its actual length.
func classifyFrames(
	input *wavInputInfo,
	classifier *quality.Classifier,
	frameSize int,
	verbose bool,
) (*frameSummary, error) {
	intBuffer := &audio.IntBuffer{
		Data:   make([]int, frameSize*input.channels),
		Format: input.format,
	}
	frame := make([]float32, frameSize)
	invMax := 1.0 / getMaxValue(input.bitDepth)

	summary := &frameSummary{}

	for {
		n, err := input.decoder.PCMBuffer(intBuffer)
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("failed to read PCM data: %w", err)
		}
		if n == 0 {
			break
		}

		// Average interleaved channels down to mono.
		samples := n / input.channels
		for i := range samples {
			var acc float64
			for ch := range input.channels {
				acc += float64(intBuffer.Data[i*input.channels+ch])
			}
			frame[i] = float32(acc / float64(input.channels) * invMax)
		}

		report, err := classifier.Measure(frame[:samples])
		if err != nil {
			return nil, fmt.Errorf("classification failed at frame %d: %w", summary.frames, err)
		}
		if verbose {
			log.Printf("frame %6d: %-8s rms=%.4f zcr=%.3f peak=%.4f",
				summary.frames, report.Code, report.RMS, report.ZCR, report.Peak)
		}
		summary.add(report)

		if samples < frameSize {
			break
		}
	}

	return summary, nil
}

// printSummary writes the per-code counts and RMS statistics.
func printSummary(w io.Writer, s *frameSummary, frameSize, rate int) {
	fmt.Fprintf(w, "Frames analyzed: %d (%d samples each at %d Hz)\n", s.frames, frameSize, rate)
	for code := quality.Silence; code <= quality.Noisy; code++ {
		count := s.counts[code]
		var pct float64
		if s.frames > 0 {
			pct = float64(count) / float64(s.frames) * 100
		}
		fmt.Fprintf(w, "  %-8s %6d (%5.1f%%)\n", code, count, pct)
	}

	if len(s.rmsValues) > 0 {
		fmt.Fprintf(w, "RMS mean: %.4f\n", stat.Mean(s.rmsValues, nil))
	}
	if len(s.rmsValues) > 1 {
		fmt.Fprintf(w, "RMS stddev: %.4f\n", stat.StdDev(s.rmsValues, nil))
	}
}
