package metrics

import (
	"sync"
	"time"
)

type fetchStats struct {
	calls           int
	errors          int
	lastCallLatency time.Duration
}

type cycleStats struct {
	cycles        int
	errors        int
	lastDuration  time.Duration
	gamesUpserted int
	teamsUpserted int
}

// Recorder captures lightweight, in-memory metrics about ingest activity.
// OTel export is layered on when telemetry is enabled.
type Recorder struct {
	mu     sync.Mutex
	fetch  map[string]*fetchStats
	cycles cycleStats
	otel   *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		fetch: make(map[string]*fetchStats),
		otel:  otel,
	}
}

// RecordFetch increments counters for one upstream call and stores its latency.
// Operation distinguishes standings from per-date schedule fetches.
func (r *Recorder) RecordFetch(provider, operation string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureFetchLocked(provider + "/" + operation)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordFetch(provider, operation, duration, err)
	}
}

// RecordCycle tracks one full ingest cycle.
func (r *Recorder) RecordCycle(mode string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.cycles.cycles++
	r.cycles.lastDuration = duration
	if err != nil {
		r.cycles.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordCycle(mode, duration, err)
	}
}

// RecordWrite tracks one downstream batch write.
func (r *Recorder) RecordWrite(kind string, count int, duration time.Duration, err error) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordWrite(kind, count, duration, err)
}

// RecordUpserts tracks how many records a cycle handed to the store.
func (r *Recorder) RecordUpserts(games, teams int) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.cycles.gamesUpserted += games
	r.cycles.teamsUpserted += teams
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordUpserts(games, teams)
	}
}

// FetchCalls returns the total fetches recorded for a provider operation.
func (r *Recorder) FetchCalls(provider, operation string) int {
	return r.fetchSnapshot(provider + "/" + operation).calls
}

// FetchErrors returns the total failed fetches recorded for a provider operation.
func (r *Recorder) FetchErrors(provider, operation string) int {
	return r.fetchSnapshot(provider + "/" + operation).errors
}

// Cycles returns the total cycles recorded.
func (r *Recorder) Cycles() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cycles.cycles
}

// CycleErrors returns the total failed cycles recorded.
func (r *Recorder) CycleErrors() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cycles.errors
}

// ensureFetchLocked assumes r.mu is held.
func (r *Recorder) ensureFetchLocked(key string) *fetchStats {
	stats, ok := r.fetch[key]
	if !ok {
		stats = &fetchStats{}
		r.fetch[key] = stats
	}
	return stats
}

func (r *Recorder) fetchSnapshot(key string) fetchStats {
	if r == nil {
		return fetchStats{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if stats, ok := r.fetch[key]; ok && stats != nil {
		return *stats
	}
	return fetchStats{}
}
