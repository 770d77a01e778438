package statsd

import (
	"sync"
	"time"
)

// Metric is one metric captured by a Recorder.
type Metric struct {
	Name     string
	Value    int64
	Duration time.Duration
	Tags     map[string]string
}

// Recorder is an in-memory Sink. It is used by tests and when metrics are disabled
// but callers still want to inspect what would have been sent.
type Recorder struct {
	mu      sync.Mutex
	counts  []Metric
	timings []Metric
}

var _ Sink = (*Recorder)(nil)

// Count records a counter increment.
func (r *Recorder) Count(name string, value int64, tags map[string]string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counts = append(r.counts, Metric{Name: name, Value: value, Tags: cleanTags(tags)})
}

// Timing records a timing.
func (r *Recorder) Timing(name string, value time.Duration, tags map[string]string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.timings = append(r.timings, Metric{Name: name, Duration: value, Tags: cleanTags(tags)})
}

// Counts returns the recorded counters named name.
func (r *Recorder) Counts(name string) []Metric {
	r.mu.Lock()
	defer r.mu.Unlock()
	return filter(r.counts, name)
}

// Timings returns the recorded timings named name.
func (r *Recorder) Timings(name string) []Metric {
	r.mu.Lock()
	defer r.mu.Unlock()
	return filter(r.timings, name)
}

func filter(in []Metric, name string) []Metric {
	var out []Metric
	for _, m := range in {
		if m.Name == name {
			out = append(out, m)
		}
	}
	return out
}
