package profiler

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestSummaries(t *testing.T) {
	p := New(8)
	p.Record("ui", 2*time.Millisecond)
	p.Record("render", 5*time.Millisecond)
	p.Record("ui", 4*time.Millisecond)

	want := []Summary{
		{Name: "render", Count: 1, Mean: 5 * time.Millisecond, Max: 5 * time.Millisecond},
		{Name: "ui", Count: 2, Mean: 3 * time.Millisecond, Max: 4 * time.Millisecond},
	}
	if diff := cmp.Diff(want, p.Summaries()); diff != "" {
		t.Errorf("Summaries mismatch (-want +got):\n%s", diff)
	}
}

func TestRingKeepsNewest(t *testing.T) {
	p := New(2)
	p.Record("old", time.Second)
	p.Record("new", time.Millisecond)
	p.Record("new", 3*time.Millisecond)

	want := []Summary{{Name: "new", Count: 2, Mean: 2 * time.Millisecond, Max: 3 * time.Millisecond}}
	if diff := cmp.Diff(want, p.Summaries()); diff != "" {
		t.Errorf("Summaries mismatch (-want +got):\n%s", diff)
	}
}

func TestStart(t *testing.T) {
	p := New(4)
	end := p.Start("scope")
	end()
	got := p.Summaries()
	if len(got) != 1 || got[0].Name != "scope" || got[0].Count != 1 {
		t.Errorf("Summaries = %+v, want one sample of scope", got)
	}
}

func TestEmpty(t *testing.T) {
	if got := New(0).Summaries(); len(got) != 0 {
		t.Errorf("Summaries = %+v, want none", got)
	}
}
