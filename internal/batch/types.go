package batch

import (
	"fmt"
	"time"

	"rithm/internal/calc"
)

// Status captures the progress state of one input file.
type Status string

const (
	// StatusQueued indicates the file is waiting for a worker.
	StatusQueued Status = "queued"
	// StatusWorking indicates the file is being evaluated.
	StatusWorking Status = "working"
	// StatusDone indicates every line evaluated.
	StatusDone Status = "done"
	// StatusError indicates the file could not be read or a line failed.
	StatusError Status = "error"
)

// Event reports progress for a file.
type Event struct {
	File    string
	Status  Status
	Err     error
	Elapsed time.Duration
}

// ProgressSink consumes progress events. Implementations must be safe for
// concurrent use.
type ProgressSink interface {
	OnEvent(Event)
}

// ChannelSink forwards events into a channel.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(evt Event) {
	if s.Ch == nil {
		return
	}
	s.Ch <- evt
}

// LineError locates a failure inside an input file.
type LineError struct {
	Path string
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("%s:%d: %v", e.Path, e.Line, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

// Result is the outcome of evaluating one file.
type Result struct {
	Path    string
	Stack   []calc.Value
	Lines   int
	Err     error
	Elapsed time.Duration
}
