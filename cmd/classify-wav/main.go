// Command classify-wav reports per-frame audio quality for WAV files.
//
// Usage:
//
//	classify-wav input.wav
//	classify-wav -frame 1024 input.wav              # 1024-sample frames
//	classify-wav -variant baseline input.wav        # RMS-only cascade
//	classify-wav -v input.wav                       # per-frame output
//
// The file is decoded, channels are averaged to mono, and the samples
// are split into fixed-size frames. Each frame is classified as
// silence, good, clipping, or noisy; a summary with per-code counts and
// RMS statistics is printed at the end.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	quality "github.com/tphakala/go-audio-quality"
)

const (
	// Default analysis frame size in samples (~11.6ms at 44.1kHz).
	defaultFrameSize = 512

	// Minimum positional arguments (input path).
	minRequiredArgs = 1
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Parse command line flags
	frameSize := flag.Int("frame", defaultFrameSize, "Analysis frame size in samples")
	variantName := flag.String("variant", "refined", "Decision cascade: refined, baseline")
	verbose := flag.Bool("v", false, "Print every frame's classification")
	flag.Parse()

	args := flag.Args()
	if len(args) < minRequiredArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] input.wav\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s call.wav                      # Frame quality summary\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -frame 1024 -v music.wav      # Per-frame detail\n", os.Args[0])
		return fmt.Errorf("insufficient arguments")
	}

	if *frameSize < 1 {
		return fmt.Errorf("frame size must be positive, got %d", *frameSize)
	}

	variant, err := parseVariant(*variantName)
	if err != nil {
		return err
	}

	cfg := quality.DefaultConfig()
	cfg.Variant = variant
	classifier, err := quality.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create classifier: %w", err)
	}

	input, err := openWAVInput(args[0], *verbose)
	if err != nil {
		return err
	}
	defer func() {
		_ = input.Close()
	}()

	summary, err := classifyFrames(input, classifier, *frameSize, *verbose)
	if err != nil {
		return err
	}

	printSummary(os.Stdout, summary, *frameSize, input.rate)
	return nil
}
