// Command dsp-bench measures cascaded biquad throughput across a sweep
// of processing buffer sizes.
//
// Usage:
//
//	dsp-bench                      # run the sweep, print one line per trial
//	dsp-bench -write-buffers /tmp  # also capture raw float64 PCM per trial
//	dsp-bench -wav out.wav         # render an untimed pass to a WAV file
package main

import (
	"flag"
	"fmt"
	"log"
	"path/filepath"

	dspbench "github.com/tphakala/go-dsp-bench"
	"github.com/tphakala/go-dsp-bench/internal/pcm"
)

const (
	// Per-trial capture files are named <prefix><bufferLen>.f64.
	pcmFilePrefix = "dsp_bench_"

	// Buffer length for the untimed WAV render; any length would produce
	// the same samples.
	wavRenderBufferLen = 512
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	writeDir := flag.String("write-buffers", "", "Directory for per-trial raw float64 PCM captures (empty disables)")
	wavPath := flag.String("wav", "", "Render one untimed pass of the processed signal to a 16-bit WAV file")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	cfg := dspbench.DefaultConfig()

	bench, err := dspbench.New(cfg)
	if err != nil {
		return err
	}

	if *writeDir != "" {
		dir := *writeDir
		bench.SetSinkFactory(func(bufferLen int) (dspbench.BufferSink, error) {
			path := filepath.Join(dir, fmt.Sprintf("%s%d.f64", pcmFilePrefix, bufferLen))
			return pcm.Create(path)
		})
	} else {
		bench.SetSinkFactory(func(int) (dspbench.BufferSink, error) {
			return dspbench.NewChecksumSink(), nil
		})
	}

	if *verbose {
		log.Printf("Sample rate: %g Hz", cfg.SampleRate)
		log.Printf("Signal: %g Hz square wave", cfg.SignalFrequency)
		log.Printf("Cascade: %d peaking sections, +/-%g dB at %g Hz, Q %g",
			cfg.FilterCount, cfg.GainDB, cfg.CenterFrequency, cfg.Q)
		log.Printf("Samples per trial: %d", cfg.TotalSamples)
	}

	fmt.Println("DSP Bench Go")

	results, err := bench.Run()
	if err != nil {
		return err
	}

	for _, r := range results {
		fmt.Printf("Buffer size: %d samples\n", r.BufferLen)
		fmt.Printf("\t%.4f ns\t%.1fx for generator + IIR cascade\n",
			r.NsPerSamplePerFilter, r.RealtimeFactor)
	}

	if *wavPath != "" {
		if err := renderWAV(cfg, *wavPath); err != nil {
			return err
		}
		if *verbose {
			log.Printf("Wrote %s", *wavPath)
		}
	}

	return nil
}

// renderWAV runs one untimed pass of the pipeline into a listenable WAV
// file. Uses a fresh Bench so the timed results above are unaffected.
func renderWAV(cfg *dspbench.Config, path string) error {
	bench, err := dspbench.New(cfg)
	if err != nil {
		return err
	}

	bench.SetSinkFactory(func(int) (dspbench.BufferSink, error) {
		return pcm.NewWAVSink(path, int(cfg.SampleRate))
	})

	_, err = bench.RunTrial(wavRenderBufferLen)
	return err
}
