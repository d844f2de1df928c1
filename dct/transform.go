package dct

import (
	"sync"

	"github.com/cwbudde/algo-vecmath"
	"github.com/cwbudde/algo-vecmath/cpu"
	"github.com/sirupsen/logrus"
)

const (
	// Rows shorter than this use the scalar loop even when SIMD is available.
	vectorThreshold = 4

	// Matrices smaller than this are transformed on the calling goroutine.
	parallelThreshold = 16
)

// Transformer computes 2D DCT-II transforms with a fixed configuration.
// A Transformer is safe for concurrent use. The zero value behaves like
// NewTransformer().
type Transformer struct {
	cfg Config
}

// NewTransformer returns a Transformer configured by opts.
func NewTransformer(opts ...Option) *Transformer {
	return &Transformer{cfg: ApplyOptions(opts...)}
}

// Transform computes the 2D DCT-II of samples using a one-off Transformer.
func Transform(samples [][]float64, opts ...Option) ([][]float64, error) {
	return NewTransformer(opts...).Transform(samples)
}

// Transform computes the 2D DCT-II of an N×N sample matrix.
//
// samples is not modified. The returned rows share one contiguous backing
// array owned by the caller.
func (t *Transformer) Transform(samples [][]float64) ([][]float64, error) {
	in, err := FromRows(samples)
	if err != nil {
		return nil, err
	}

	out, err := t.TransformMatrix(in)
	if err != nil {
		return nil, err
	}

	rows := make([][]float64, out.N)
	for i := range rows {
		rows[i] = out.Row(i)
	}
	return rows, nil
}

// TransformMatrix computes the 2D DCT-II of in and returns a new matrix.
// All validation happens before any arithmetic; on error no result is
// produced.
func (t *Transformer) TransformMatrix(in *Matrix) (*Matrix, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	if err := validateFinite(in); err != nil {
		return nil, err
	}

	n := in.N
	k, err := t.kernel(n)
	if err != nil {
		return nil, err
	}

	cfg := t.config()
	vector := !cfg.Scalar && n >= vectorThreshold && vectorized(cpu.DetectFeatures())
	workers := workersFor(cfg, n)
	cfg.Logger.WithFields(logrus.Fields{
		"n":       n,
		"workers": workers,
		"vector":  vector,
	}).Debug("dct: transform")

	// Row pass: intermediate[x][i] = sum_j in[x][j] * k[j][i].
	intermediate := NewMatrix(n)
	forEachRow(n, workers, func(lo, hi int) {
		tmp := make([]float64, n)
		for x := lo; x < hi; x++ {
			accumulate(intermediate.Row(x), in.Row(x), k, tmp, vector)
		}
	})

	// Column pass: out[y][i] = sum_j intermediate[j][y] * k[j][i].
	// forEachRow returns only after every row-pass worker has finished.
	out := NewMatrix(n)
	forEachRow(n, workers, func(lo, hi int) {
		tmp := make([]float64, n)
		col := make([]float64, n)
		for y := lo; y < hi; y++ {
			for j := range col {
				col[j] = intermediate.Data[j*n+y]
			}
			accumulate(out.Row(y), col, k, tmp, vector)
		}
	})

	return out, nil
}

// config fills in defaults for fields a zero-value Transformer leaves unset.
func (t *Transformer) config() Config {
	cfg := t.cfg
	if cfg.Workers <= 0 {
		cfg.Workers = DefaultConfig().Workers
	}
	if cfg.Logger == nil {
		cfg.Logger = discardLogger
	}
	return cfg
}

func (t *Transformer) kernel(n int) (*Matrix, error) {
	if t.cfg.Cache != nil {
		e, err := t.cfg.Cache.entry(n)
		return e.kernel, err
	}
	_, k, err := kernel(n)
	return k, err
}

func workersFor(cfg Config, n int) int {
	if n < parallelThreshold || cfg.Workers <= 1 {
		return 1
	}
	return min(cfg.Workers, n)
}

// vectorized reports whether f supports any of the block kernels
// algo-vecmath dispatches to. ForceGeneric disables them.
func vectorized(f cpu.Features) bool {
	return cpu.Supports(f, cpu.SIMDSSE2) ||
		cpu.Supports(f, cpu.SIMDAVX2) ||
		cpu.Supports(f, cpu.SIMDNEON)
}

// accumulate sets dst[i] = sum_j coefs[j] * k[j][i], adding terms in
// ascending j. dst must be zeroed and tmp must have length k.N.
func accumulate(dst, coefs []float64, k *Matrix, tmp []float64, vector bool) {
	if vector {
		for j, c := range coefs {
			vecmath.ScaleBlock(tmp, k.Row(j), c)
			vecmath.AddBlockInPlace(dst, tmp)
		}
		return
	}

	for j, c := range coefs {
		row := k.Row(j)
		for i := range dst {
			dst[i] += c * row[i]
		}
	}
}

// forEachRow splits [0, n) into contiguous chunks and runs fn on each,
// returning once every chunk is done. Chunks never overlap.
func forEachRow(n, workers int, fn func(lo, hi int)) {
	if workers <= 1 {
		fn(0, n)
		return
	}

	var wg sync.WaitGroup
	chunk := (n + workers - 1) / workers
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		wg.Go(func() {
			fn(lo, hi)
		})
	}
	wg.Wait()
}
