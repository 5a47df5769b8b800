package ripsgo

import (
	"math"

	"github.com/hupe1980/ripsgo/resource"
)

type options struct {
	modulus          int16
	maxDim           int
	threshold        float32
	ratio            float32
	cocycles         bool
	logger           *Logger
	metricsCollector MetricsCollector
	controller       *resource.Controller
	concurrency      int
}

func defaultOptions() *options {
	return &options{
		modulus:          2,
		maxDim:           1,
		threshold:        float32(math.Inf(1)),
		ratio:            1,
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
	}
}

func applyOptions(optFns []Option) *options {
	o := defaultOptions()
	for _, fn := range optFns {
		fn(o)
	}
	return o
}

func (o *options) validate() error {
	if !isPrime(o.modulus) {
		return &ErrNonPrimeModulus{Modulus: o.modulus}
	}
	if o.maxDim < 0 {
		return &ErrInvalidMaxDim{MaxDim: o.maxDim}
	}
	t := float64(o.threshold)
	if math.IsNaN(t) || o.threshold < 0 {
		return &ErrInvalidThreshold{Threshold: o.threshold}
	}
	r := float64(o.ratio)
	if math.IsNaN(r) || o.ratio <= 0 {
		return &ErrInvalidRatio{Ratio: o.ratio}
	}
	return nil
}

// thresholdUnset reports whether the threshold still has its open-ended
// default, in which case dense input falls back to the enclosing radius.
func (o *options) thresholdUnset() bool {
	return math.IsInf(float64(o.threshold), 1)
}

func isPrime(p int16) bool {
	if p < 2 {
		return false
	}
	for d := int16(2); d*d <= p; d++ {
		if p%d == 0 {
			return false
		}
	}
	return true
}

// Option configures barcode computation behavior.
type Option func(*options)

// WithModulus sets the prime field for coefficient arithmetic.
// The default is 2. Non-prime values are rejected at run time.
func WithModulus(p int16) Option {
	return func(o *options) {
		o.modulus = p
	}
}

// WithMaxDim sets the highest homology dimension to compute.
// The default is 1 (connected components and loops).
func WithMaxDim(dim int) Option {
	return func(o *options) {
		o.maxDim = dim
	}
}

// WithThreshold caps the filtration at the given distance. Simplices with a
// larger diameter are never built.
//
// For dense input the default is the enclosing radius of the point set,
// which yields the same barcode as an unbounded filtration. Sparse input has
// no such fallback and requires an explicit threshold.
func WithThreshold(threshold float32) Option {
	return func(o *options) {
		o.threshold = threshold
	}
}

// WithRatio suppresses pairs whose death/birth ratio is at or below the
// given value. The default of 1 keeps every pair with positive persistence.
// Larger values filter out near-diagonal noise.
func WithRatio(ratio float32) Option {
	return func(o *options) {
		o.ratio = ratio
	}
}

// WithCocycles requests representative cocycles alongside the intervals.
//
// Reconstruction is not implemented yet; the flag is accepted so callers can
// opt in ahead of time, but Barcode.Cocycles stays empty.
func WithCocycles(enabled bool) Option {
	return func(o *options) {
		o.cocycles = enabled
	}
}

// WithLogger configures structured logging.
// Pass nil to disable logging (default).
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithMetricsCollector configures a metrics collector for monitoring runs.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &ripsgo.BasicMetricsCollector{}
//	barcode, _ := ripsgo.Dense(distances, ripsgo.WithMetricsCollector(metrics))
//	fmt.Println(metrics.GetStats().RunCount)
func WithMetricsCollector(collector MetricsCollector) Option {
	return func(o *options) {
		if collector == nil {
			collector = NoopMetricsCollector{}
		}
		o.metricsCollector = collector
	}
}

// WithResourceController attaches a resource controller. BatchRun acquires a
// run slot and a memory reservation per matrix before computing.
func WithResourceController(c *resource.Controller) Option {
	return func(o *options) {
		o.controller = c
	}
}

// WithConcurrency bounds the number of goroutines BatchRun uses.
// If 0 or negative, GOMAXPROCS is used.
func WithConcurrency(n int) Option {
	return func(o *options) {
		o.concurrency = n
	}
}
