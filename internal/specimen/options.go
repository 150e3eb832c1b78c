package specimen

import (
	"log/slog"
	"sync"

	"rocklab-sim/internal/common"
)

var (
	loggerMu      sync.RWMutex
	packageLogger *slog.Logger
)

// SetLogger sets the logger used for creation notices.
// A nil logger restores the slog default.
func SetLogger(l *slog.Logger) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	packageLogger = l
}

func defaultLogger() *slog.Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	if packageLogger == nil {
		return slog.Default()
	}
	return packageLogger
}

// params collects the optional constructor arguments of every sample kind.
type params struct {
	volume         float64
	grainSize      float64
	magnetization  float64
	susceptibility float64
	logger         *slog.Logger
}

// Option configures a sample at construction time.
type Option func(*params)

// WithVolume sets the sample volume (SI: m^3). Defaults to common.DefaultVolume.
func WithVolume(volume float64) Option {
	return func(p *params) { p.volume = volume }
}

// WithGrainSize sets the initial grain size of a sediment.
func WithGrainSize(grainSize float64) Option {
	return func(p *params) { p.grainSize = grainSize }
}

// WithMagnetization sets the remanent magnetization (SI: A/m).
func WithMagnetization(magnetization float64) Option {
	return func(p *params) { p.magnetization = magnetization }
}

// WithSusceptibility sets the volume normalized susceptibility.
func WithSusceptibility(susceptibility float64) Option {
	return func(p *params) { p.susceptibility = susceptibility }
}

// WithLogger routes the creation notice of this sample to l.
func WithLogger(l *slog.Logger) Option {
	return func(p *params) { p.logger = l }
}

func newParams(opts []Option) params {
	p := params{volume: common.DefaultVolume}
	for _, opt := range opts {
		opt(&p)
	}
	if p.logger == nil {
		p.logger = defaultLogger()
	}
	return p
}
