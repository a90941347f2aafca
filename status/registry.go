package status

import "sync/atomic"

// Registry is the central metrics facade
// The runner caches pointers at construction; the frame loop writes directly to atomics
type Registry struct {
	Counters *MetricMap[atomic.Int64]
	Gauges   *MetricMap[AtomicFloat]
	Flags    *MetricMap[atomic.Bool]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Counters: NewMetricMap[atomic.Int64](),
		Gauges:   NewMetricMap[AtomicFloat](),
		Flags:    NewMetricMap[atomic.Bool](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Counters.Count() + r.Gauges.Count() + r.Flags.Count()
}

// Sample is one metric value rendered for display or logging
type Sample struct {
	Key   string
	Value float64
}

// Samples returns counters then gauges in sorted key order, flags as 0/1
func (r *Registry) Samples() []Sample {
	out := make([]Sample, 0, r.TotalCount())
	r.Counters.Range(func(key string, v *atomic.Int64) {
		out = append(out, Sample{Key: key, Value: float64(v.Load())})
	})
	r.Gauges.Range(func(key string, v *AtomicFloat) {
		out = append(out, Sample{Key: key, Value: v.Get()})
	})
	r.Flags.Range(func(key string, v *atomic.Bool) {
		var f float64
		if v.Load() {
			f = 1
		}
		out = append(out, Sample{Key: key, Value: f})
	})
	return out
}
