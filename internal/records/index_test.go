package records

import (
	"context"
	"errors"
	"testing"

	"nhl-ingest-service/internal/domain"
	"nhl-ingest-service/internal/teststubs"
)

func TestFormatRecord(t *testing.T) {
	if got := FormatRecord(12, 5, 2); got != "12-5-2" {
		t.Fatalf("expected 12-5-2, got %q", got)
	}
	if got := FormatRecord(0, 0, 0); got != "0-0-0" {
		t.Fatalf("expected 0-0-0, got %q", got)
	}
}

func TestBuildIndexesByAbbrev(t *testing.T) {
	provider := &teststubs.StubStandingsProvider{
		Standings: []domain.Standing{
			{Abbrev: "TOR", Name: "Toronto Maple Leafs", Wins: 10, Losses: 8, OTLosses: 1},
			{Abbrev: "BOS", Name: "Boston Bruins", Wins: 12, Losses: 5, OTLosses: 2},
		},
	}

	idx, err := Build(context.Background(), provider)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if idx.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", idx.Len())
	}
	if got := idx.Record("BOS"); got != "12-5-2" {
		t.Fatalf("unexpected BOS record %q", got)
	}
	if got := idx.Record("SEA"); got != "" {
		t.Fatalf("expected empty record for unknown team, got %q", got)
	}

	entry, ok := idx.Lookup("TOR")
	if !ok || entry.Standing.Name != "Toronto Maple Leafs" {
		t.Fatalf("unexpected TOR entry: %+v ok=%v", entry, ok)
	}

	teams := idx.Teams()
	if len(teams) != 2 || teams[0] != "BOS" || teams[1] != "TOR" {
		t.Fatalf("expected sorted teams, got %v", teams)
	}
}

func TestBuildPropagatesFetchError(t *testing.T) {
	provider := &teststubs.StubStandingsProvider{Err: errors.New("upstream down")}
	if _, err := Build(context.Background(), provider); err == nil {
		t.Fatal("expected standings failure to propagate")
	}
}

func TestNilIndexIsEmpty(t *testing.T) {
	var idx *Index
	if idx.Record("BOS") != "" || idx.Len() != 0 || idx.Teams() != nil {
		t.Fatal("nil index should behave as empty")
	}
}
