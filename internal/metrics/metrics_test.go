package metrics

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRecorderCountsFetches(t *testing.T) {
	r := NewRecorder()

	r.RecordFetch("nhle", "schedule", 10*time.Millisecond, nil)
	r.RecordFetch("nhle", "schedule", 20*time.Millisecond, errors.New("boom"))
	r.RecordFetch("nhle", "standings", 5*time.Millisecond, nil)

	if got := r.FetchCalls("nhle", "schedule"); got != 2 {
		t.Fatalf("expected 2 schedule fetches, got %d", got)
	}
	if got := r.FetchErrors("nhle", "schedule"); got != 1 {
		t.Fatalf("expected 1 schedule error, got %d", got)
	}
	if got := r.FetchCalls("nhle", "standings"); got != 1 {
		t.Fatalf("expected 1 standings fetch, got %d", got)
	}
}

func TestRecorderCountsCycles(t *testing.T) {
	r := NewRecorder()

	r.RecordCycle("full", time.Second, nil)
	r.RecordCycle("partial", time.Second, errors.New("boom"))

	if got := r.Cycles(); got != 2 {
		t.Fatalf("expected 2 cycles, got %d", got)
	}
	if got := r.CycleErrors(); got != 1 {
		t.Fatalf("expected 1 cycle error, got %d", got)
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var r *Recorder
	r.RecordFetch("nhle", "schedule", time.Millisecond, nil)
	r.RecordCycle("full", time.Millisecond, nil)
	r.RecordWrite("games", 10, time.Millisecond, nil)
	r.RecordUpserts(1, 1)
	if r.Cycles() != 0 || r.FetchCalls("nhle", "schedule") != 0 {
		t.Fatal("nil recorder should report zeros")
	}
}

func TestSetupDisabledReturnsRecorderWithoutHandler(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{Enabled: false})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec == nil {
		t.Fatal("expected recorder")
	}
	if handler != nil {
		t.Fatal("expected no prometheus handler when disabled")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown should be a no-op: %v", err)
	}
}

func TestSetupEnabledBuildsPrometheusHandler(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{Enabled: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer func() { _ = shutdown(context.Background()) }()

	if rec == nil || handler == nil {
		t.Fatal("expected recorder and handler")
	}

	rec.RecordCycle("full", 50*time.Millisecond, nil)
	rec.RecordWrite("games", 3, 10*time.Millisecond, nil)
}
