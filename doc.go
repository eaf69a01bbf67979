// Package dspbench benchmarks the throughput of a cascaded peaking-EQ
// biquad chain applied to a generated square wave, across a sweep of
// processing buffer sizes.
//
// The dominant cost driver in streaming DSP is not filter arithmetic but
// memory traffic and call overhead per buffer. This harness isolates
// that effect: it runs the same fixed workload (generator + N-section
// IIR cascade over a fixed total sample budget) at each power-of-two
// buffer length and reports the normalized per-sample cost and the
// real-time factor for each trial.
//
// # Quick Start
//
//	bench, err := dspbench.New(dspbench.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	results, err := bench.Run()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, r := range results {
//	    fmt.Printf("%5d samples: %.3f ns/sample/filter, %.1fx realtime\n",
//	        r.BufferLen, r.NsPerSamplePerFilter, r.RealtimeFactor)
//	}
//
// # Pipeline
//
// Each trial resets the generator and every filter, then repeats
// TotalSamples/bufferLen times:
//
//	Square wave -> [Biquad 1] -> ... -> [Biquad N] -> optional sink
//	             (one shared buffer, filtered in place)
//
// The generator and filter states persist across buffer boundaries
// within a trial, so the processed signal is identical regardless of
// buffer length; only the timing varies. The buffer and the cascade are
// constructed before the timed region begins, keeping allocation out of
// the measurement.
//
// # Sinks
//
// A [BufferSink] receives each fully processed buffer. [ChecksumSink]
// accumulates a running sum (and keeps the compiler from discarding the
// work); the internal pcm package provides raw float64 and WAV file
// sinks. A sink failure aborts the run: a benchmark with a corrupted
// output trace is not a valid benchmark.
//
// # Measurement validity
//
// Trials run sequentially on a single goroutine with no shared mutable
// state. Wall-clock time is measured around the inner loop only; treat
// results as meaningful only on an otherwise idle machine.
package dspbench
