package metrics

import "sync/atomic"

// UpstreamCounters tracks calls made against a third-party provider.
type UpstreamCounters struct {
	calls    atomic.Int64
	failures atomic.Int64
}

// Record notes the outcome of one provider call.
func (c *UpstreamCounters) Record(err error) {
	c.calls.Add(1)
	if err != nil {
		c.failures.Add(1)
	}
}

// Snapshot returns the counter values for status reporting.
func (c *UpstreamCounters) Snapshot() UpstreamSnapshot {
	return UpstreamSnapshot{
		Calls:    c.calls.Load(),
		Failures: c.failures.Load(),
	}
}

// UpstreamSnapshot is the serializable view of one provider's counters.
type UpstreamSnapshot struct {
	Calls    int64 `json:"calls"`
	Failures int64 `json:"failures"`
}

// Registry groups counters for the providers the service depends on.
type Registry struct {
	Weather UpstreamCounters
	Places  UpstreamCounters
}

// NewRegistry constructs an empty counter registry.
func NewRegistry() *Registry {
	return &Registry{}
}
