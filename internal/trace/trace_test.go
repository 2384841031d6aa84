package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"off", LevelOff},
		{"", LevelOff},
		{"ERROR", LevelError},
		{"phase", LevelPhase},
		{"Detail", LevelDetail},
		{"debug", LevelDebug},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if err != nil || got != tt.want {
			t.Fatalf("ParseLevel(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
	if _, err := ParseLevel("verbose"); err == nil {
		t.Fatalf("ParseLevel(verbose) succeeded")
	}
}

func TestShouldEmit(t *testing.T) {
	tests := []struct {
		level               Level
		driver, command, op bool
	}{
		{LevelOff, false, false, false},
		{LevelError, false, false, false},
		{LevelPhase, true, false, false},
		{LevelDetail, true, true, false},
		{LevelDebug, true, true, true},
	}
	for _, tt := range tests {
		got := [3]bool{tt.level.ShouldEmit(ScopeDriver), tt.level.ShouldEmit(ScopeCommand), tt.level.ShouldEmit(ScopeOp)}
		if got != [3]bool{tt.driver, tt.command, tt.op} {
			t.Fatalf("%v.ShouldEmit = %v", tt.level, got)
		}
	}
}

func TestStreamTracerText(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelDetail, FormatText)
	root := Begin(tr, ScopeDriver, "eval", 0)
	child := Begin(tr, ScopeCommand, "line", root.ID())
	Point(tr, ScopeOp, "op:+", "", child.ID())
	child.WithExtra("depth", "1").End("ok")
	root.End("")

	out := buf.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4:\n%s", len(lines), out)
	}
	for _, want := range []string{"→ eval", "  → line", "← line (ok) {depth=1}", "← eval"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "op:+") {
		t.Fatalf("op event emitted at detail level:\n%s", out)
	}
}

func TestStreamTracerNDJSON(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelDebug, FormatNDJSON)
	span := Begin(tr, ScopeCommand, "convert", 0)
	Point(tr, ScopeOp, "op:**", "2 100", span.ID())
	span.End("")

	dec := json.NewDecoder(&buf)
	var kinds []string
	for dec.More() {
		var ev struct {
			Kind  string `json:"kind"`
			Scope string `json:"scope"`
			Name  string `json:"name"`
		}
		if err := dec.Decode(&ev); err != nil {
			t.Fatalf("decode: %v", err)
		}
		kinds = append(kinds, ev.Kind+":"+ev.Scope+":"+ev.Name)
	}
	want := []string{"begin:command:convert", "point:op:op:**", "end:command:convert"}
	if strings.Join(kinds, ",") != strings.Join(want, ",") {
		t.Fatalf("events = %v, want %v", kinds, want)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestStreamTracerWriteError(t *testing.T) {
	tr := NewStreamTracer(failingWriter{}, LevelPhase, FormatText)
	Begin(tr, ScopeDriver, "eval", 0).End("")
	if err := tr.Flush(); err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Fatalf("Flush error = %v", err)
	}
}

func TestRingTracerWraps(t *testing.T) {
	tr := NewRingTracer(3, LevelDebug)
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		Point(tr, ScopeOp, name, "", 0)
	}
	snap := tr.Snapshot()
	var names []string
	for _, ev := range snap {
		names = append(names, ev.Name)
	}
	if strings.Join(names, "") != "cde" {
		t.Fatalf("snapshot = %v, want [c d e]", names)
	}
	var buf bytes.Buffer
	if err := tr.Dump(&buf, FormatText); err != nil {
		t.Fatalf("Dump: %v", err)
	}
	if strings.Count(buf.String(), "\n") != 3 {
		t.Fatalf("dump:\n%s", buf.String())
	}
}

func TestRingCapturesAtErrorLevel(t *testing.T) {
	var buf bytes.Buffer
	stream := NewStreamTracer(&buf, LevelError, FormatText)
	ring := NewRingTracer(16, LevelError)
	multi := NewMultiTracer(LevelError, stream, ring)

	Begin(multi, ScopeCommand, "line", 0).End("failed")
	Point(multi, ScopeOp, "op:/", "", 0)

	if buf.Len() != 0 {
		t.Fatalf("stream wrote at error level:\n%s", buf.String())
	}
	if got := len(ring.Snapshot()); got != 2 {
		t.Fatalf("ring captured %d events, want 2", got)
	}
	if r, ok := Ring(multi); !ok || r != ring {
		t.Fatalf("Ring(multi) did not find the ring tracer")
	}
}

func TestNewConfig(t *testing.T) {
	tr, err := New(Config{Level: LevelOff})
	if err != nil || tr != Nop {
		t.Fatalf("New(off) = %v, %v", tr, err)
	}
	var buf bytes.Buffer
	tr, err = New(Config{Level: LevelPhase, Mode: ModeBoth, Output: &buf})
	if err != nil {
		t.Fatalf("New(both): %v", err)
	}
	Begin(tr, ScopeDriver, "version", 0).End("")
	if !strings.Contains(buf.String(), "version") {
		t.Fatalf("stream output = %q", buf.String())
	}
	if _, ok := Ring(tr); !ok {
		t.Fatalf("both mode has no ring")
	}
	if _, err := New(Config{Level: LevelPhase, Mode: 9}); err == nil {
		t.Fatalf("unknown mode accepted")
	}
	if _, err := ParseMode("disk"); err == nil {
		t.Fatalf("ParseMode(disk) succeeded")
	}
}

func TestStartSpanNests(t *testing.T) {
	ring := NewRingTracer(16, LevelDebug)
	ctx := WithTracer(context.Background(), ring)
	ctx, outer := StartSpan(ctx, ScopeDriver, "batch")
	_, inner := StartSpan(ctx, ScopeCommand, "file")
	inner.End("")
	outer.End("")

	snap := ring.Snapshot()
	if len(snap) != 4 {
		t.Fatalf("got %d events, want 4", len(snap))
	}
	if snap[1].ParentID != outer.ID() || snap[1].Name != "file" {
		t.Fatalf("inner span parent = %d, want %d", snap[1].ParentID, outer.ID())
	}
	if FromContext(context.Background()) != Nop {
		t.Fatalf("empty context has a tracer")
	}
}

func TestDisabledSpan(t *testing.T) {
	span := Begin(Nop, ScopeDriver, "eval", 0)
	if span.ID() != 0 || span.End("") != 0 {
		t.Fatalf("disabled span recorded something")
	}
	span.WithExtra("k", "v")
}

func TestHeartbeat(t *testing.T) {
	ring := NewRingTracer(64, LevelPhase)
	h := StartHeartbeat(ring, time.Millisecond)
	deadline := time.Now().Add(2 * time.Second)
	for len(ring.Snapshot()) == 0 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	h.Stop()
	h.Stop()
	snap := ring.Snapshot()
	if len(snap) == 0 || snap[0].Kind != KindHeartbeat {
		t.Fatalf("no heartbeat recorded")
	}
	if StartHeartbeat(Nop, time.Millisecond) != nil {
		t.Fatalf("heartbeat started for disabled tracer")
	}
	var nilBeat *Heartbeat
	nilBeat.Stop()
}
