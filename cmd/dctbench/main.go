// Command dctbench times the 2D DCT-II on a random square matrix.
//
// Usage:
//
//	dctbench [flags]
//
// Examples:
//
//	dctbench
//	dctbench -size 512 -runs 5
//	dctbench -size 256 -workers 1 -scalar
//	dctbench -profile cpu -profile-dir /tmp
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/cwbudde/algo-dct/dct"
	"github.com/cwbudde/algo-dct/internal/samples"
	"github.com/cwbudde/algo-vecmath/cpu"
	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"
)

type config struct {
	size       int
	seed       int64
	scale      float64
	runs       int
	workers    int
	scalar     bool
	cache      bool
	profile    string
	profileDir string
	verbose    bool
}

var errInvalidFlag = errors.New("invalid flag")

func main() {
	var cfg config
	flag.IntVar(&cfg.size, "size", 256, "matrix dimension N")
	flag.Int64Var(&cfg.seed, "seed", 1, "random seed for the sample matrix")
	flag.Float64Var(&cfg.scale, "scale", 256, "samples are drawn from [0, scale)")
	flag.IntVar(&cfg.runs, "runs", 1, "number of timed transforms")
	flag.IntVar(&cfg.workers, "workers", 0, "goroutines per pass (0 = GOMAXPROCS)")
	flag.BoolVar(&cfg.scalar, "scalar", false, "disable the vectorized kernel")
	flag.BoolVar(&cfg.cache, "cache", true, "reuse the basis across runs")
	flag.StringVar(&cfg.profile, "profile", "", "write a profile: cpu or mem")
	flag.StringVar(&cfg.profileDir, "profile-dir", ".", "directory for profile output")
	flag.BoolVar(&cfg.verbose, "v", false, "enable debug logging")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: dctbench [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Times the 2D DCT-II of a random NxN matrix.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	if cfg.verbose {
		log.SetLevel(log.DebugLevel)
	}

	if err := run(cfg, os.Stdout, log.StandardLogger()); err != nil {
		log.Errorf("dctbench: %v", err)
		os.Exit(1)
	}
}

func run(cfg config, w io.Writer, logger log.FieldLogger) error {
	if cfg.size <= 0 {
		return fmt.Errorf("%w: -size must be > 0: %d", errInvalidFlag, cfg.size)
	}
	if cfg.runs <= 0 {
		return fmt.Errorf("%w: -runs must be > 0: %d", errInvalidFlag, cfg.runs)
	}

	profileMode, err := profileOption(cfg.profile)
	if err != nil {
		return err
	}
	if profileMode != nil {
		p := profile.Start(profileMode, profile.ProfilePath(cfg.profileDir), profile.Quiet)
		defer p.Stop()
	}

	opts := []dct.Option{dct.WithWorkers(cfg.workers), dct.WithLogger(logger)}
	if cfg.scalar {
		opts = append(opts, dct.WithScalar())
	}
	if cfg.cache {
		opts = append(opts, dct.WithCache(dct.NewBasisCache(1)))
	}
	t := dct.NewTransformer(opts...)

	in := samples.Random(cfg.seed, cfg.size, cfg.scale)
	logger.WithFields(log.Fields{
		"size": cfg.size,
		"seed": cfg.seed,
		"simd": simdLevel(cpu.DetectFeatures()),
	}).Info("generated sample matrix")

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Run\tSize\tTime [ms]\tDC\n")
	fmt.Fprintf(tw, "---\t----\t---------\t--\n")

	var total, best time.Duration
	for i := 0; i < cfg.runs; i++ {
		start := time.Now()
		out, err := t.Transform(in)
		elapsed := time.Since(start)
		if err != nil {
			return err
		}

		total += elapsed
		if i == 0 || elapsed < best {
			best = elapsed
		}
		fmt.Fprintf(tw, "%d\t%d\t%d\t%.3f\n", i+1, cfg.size, elapsed.Milliseconds(), out[0][0])
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}

	logger.WithFields(log.Fields{
		"runs":    cfg.runs,
		"best_ms": best.Milliseconds(),
		"avg_ms":  (total / time.Duration(cfg.runs)).Milliseconds(),
	}).Info("done")
	return nil
}

// simdLevel names the best block-kernel level algo-vecmath can use on f.
func simdLevel(f cpu.Features) string {
	switch {
	case cpu.Supports(f, cpu.SIMDAVX2):
		return "avx2"
	case cpu.Supports(f, cpu.SIMDSSE2):
		return "sse2"
	case cpu.Supports(f, cpu.SIMDNEON):
		return "neon"
	default:
		return "generic"
	}
}

func profileOption(mode string) (func(*profile.Profile), error) {
	switch mode {
	case "":
		return nil, nil
	case "cpu":
		return profile.CPUProfile, nil
	case "mem":
		return profile.MemProfile, nil
	default:
		return nil, fmt.Errorf("%w: -profile must be cpu or mem: %q", errInvalidFlag, mode)
	}
}
