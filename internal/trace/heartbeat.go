package trace

import (
	"strconv"
	"time"
)

// Heartbeat emits a beat every interval while a long command runs. A stall
// shows up in the trace as beats with no span ends between them.
type Heartbeat struct {
	stop chan struct{}
	done chan struct{}
}

// StartHeartbeat starts beating into tracer. It returns nil when tracing is
// off or interval is not positive; a nil *Heartbeat is safe to Stop.
func StartHeartbeat(tracer Tracer, interval time.Duration) *Heartbeat {
	if interval <= 0 || tracer == nil || !tracer.Enabled() {
		return nil
	}
	h := &Heartbeat{stop: make(chan struct{}), done: make(chan struct{})}
	go h.beat(tracer, interval)
	return h
}

func (h *Heartbeat) beat(tracer Tracer, interval time.Duration) {
	defer close(h.done)
	tick := time.NewTicker(interval)
	defer tick.Stop()
	for n := 1; ; n++ {
		select {
		case <-h.stop:
			return
		case now := <-tick.C:
			tracer.Emit(&Event{
				Time:   now,
				Kind:   KindHeartbeat,
				Scope:  ScopeDriver,
				GID:    goroutineID(),
				Name:   "heartbeat",
				Detail: "#" + strconv.Itoa(n),
			})
		}
	}
}

// Stop ends the heartbeat and waits for the last beat to be emitted. It
// may be called more than once.
func (h *Heartbeat) Stop() {
	if h == nil {
		return
	}
	select {
	case <-h.stop:
	default:
		close(h.stop)
	}
	<-h.done
}
