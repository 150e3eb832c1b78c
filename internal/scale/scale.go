package scale

import (
	"fmt"
	"log/slog"
	"reflect"
	"slices"

	"rocklab-sim/internal/specimen"

	"gonum.org/v1/gonum/floats"
)

// DefaultWeightLimit is the weight limit of a scale created without WithWeightLimit (SI: kg).
const DefaultWeightLimit = 100.0

// Scale weighs a set of objects placed on it.
// It holds references only and compares them by identity, so only pointers
// can be placed on it. A Scale is not safe for concurrent use.
type Scale struct {
	weightLimit float64
	items       []specimen.Weighable
	logger      *slog.Logger
}

// Option configures a Scale.
type Option func(*Scale)

// WithWeightLimit sets the weight above which the scale reports an overload.
func WithWeightLimit(limit float64) Option {
	return func(s *Scale) { s.weightLimit = limit }
}

// WithLogger sets the logger used for placement, removal and overload notices.
func WithLogger(l *slog.Logger) Option {
	return func(s *Scale) { s.logger = l }
}

// NewScale creates an empty scale.
func NewScale(opts ...Option) *Scale {
	s := &Scale{
		weightLimit: DefaultWeightLimit,
		items:       make([]specimen.Weighable, 0),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// WeightLimit returns the configured weight limit.
func (s *Scale) WeightLimit() float64 {
	return s.weightLimit
}

// PutOn places w on the scale. It returns false, leaving the scale unchanged,
// if w is already on it or is not a non-nil pointer.
func (s *Scale) PutOn(w specimen.Weighable) bool {
	if !hasIdentity(w) {
		s.logger.Warn("rejected by scale", slog.String("item", describe(w)), slog.String("reason", "not a pointer"))
		return false
	}
	if s.Contains(w) {
		s.logger.Info("already on scale", slog.String("item", describe(w)))
		return false
	}
	s.items = append(s.items, w)
	s.logger.Info("placed on scale", slog.String("item", describe(w)), slog.Int("count", len(s.items)))
	return true
}

// TakeOff removes w from the scale. Removing an object that is not on the
// scale is reported and returns false; the scale is left unchanged.
func (s *Scale) TakeOff(w specimen.Weighable) bool {
	i := s.indexOf(w)
	if i < 0 {
		s.logger.Warn("not on scale", slog.String("item", describe(w)))
		return false
	}
	s.items = slices.Delete(s.items, i, i+1)
	s.logger.Info("removed from scale", slog.String("item", describe(w)), slog.Int("count", len(s.items)))
	return true
}

// Contains reports whether w is on the scale.
func (s *Scale) Contains(w specimen.Weighable) bool {
	return s.indexOf(w) >= 0
}

// Len returns the number of objects on the scale.
func (s *Scale) Len() int {
	return len(s.items)
}

// Items returns the objects on the scale in placement order.
func (s *Scale) Items() []specimen.Weighable {
	return slices.Clone(s.items)
}

// Weight returns the total weight on the scale. If it exceeds the weight
// limit an overload is reported; the total is returned either way.
func (s *Scale) Weight() float64 {
	total := s.total()
	if total > s.weightLimit {
		s.logger.Warn("scale overloaded", slog.Float64("total", total), slog.Float64("limit", s.weightLimit))
	}
	return total
}

// Overloaded reports whether the total weight exceeds the limit, without logging.
func (s *Scale) Overloaded() bool {
	return s.total() > s.weightLimit
}

func (s *Scale) total() float64 {
	weights := make([]float64, len(s.items))
	for i, w := range s.items {
		weights[i] = w.Weight()
	}
	return floats.Sum(weights)
}

func (s *Scale) indexOf(w specimen.Weighable) int {
	if !hasIdentity(w) {
		return -1
	}
	for i, item := range s.items {
		if item == w {
			return i
		}
	}
	return -1
}

// hasIdentity reports whether w is a non-nil pointer.
// Only such values are stored, so == in indexOf always compares pointers.
func hasIdentity(w specimen.Weighable) bool {
	if w == nil {
		return false
	}
	v := reflect.ValueOf(w)
	return v.Kind() == reflect.Pointer && !v.IsNil()
}

func describe(w specimen.Weighable) string {
	if !hasIdentity(w) {
		if w == nil {
			return "<nil>"
		}
		if reflect.ValueOf(w).Kind() == reflect.Pointer {
			return fmt.Sprintf("nil %T", w)
		}
	}
	if st, ok := w.(fmt.Stringer); ok {
		return st.String()
	}
	return fmt.Sprintf("%T with weight %.2e", w, w.Weight())
}
