package observ

import (
	"errors"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestTimerPhases(t *testing.T) {
	tm := NewTimer()
	idx := tm.Begin("parse")
	tm.End(idx, "3 lines")
	tm.End(42, "ignored")
	tm.Record("file a.rpn", 1500*time.Microsecond, "")
	if err := tm.Measure("eval", func() error { return errors.New("boom") }); err == nil {
		t.Fatalf("Measure swallowed the error")
	}

	report := tm.Report()
	if len(report.Phases) != 3 {
		t.Fatalf("phases = %d, want 3", len(report.Phases))
	}
	if report.Phases[0].Note != "3 lines" || report.Phases[2].Note != "failed" {
		t.Fatalf("notes = %q, %q", report.Phases[0].Note, report.Phases[2].Note)
	}
	if report.Phases[1].DurationMS != 1.5 {
		t.Fatalf("recorded duration = %v ms, want 1.5", report.Phases[1].DurationMS)
	}

	summary := tm.Summary()
	for _, want := range []string{"timings:\n", "  parse     ", "  file a.rpn      1.50 ms\n", "// failed", "  wall "} {
		if !strings.Contains(summary, want) {
			t.Fatalf("summary missing %q:\n%s", want, summary)
		}
	}
}

func TestTimerConcurrent(t *testing.T) {
	tm := NewTimer()
	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tm.End(tm.Begin("worker"), "")
		}()
	}
	wg.Wait()
	if got := len(tm.Report().Phases); got != 16 {
		t.Fatalf("phases = %d, want 16", got)
	}
}
