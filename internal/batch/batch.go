// Package batch evaluates calculator files concurrently. Every file runs on
// its own stack; results keep the order of the request.
package batch

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"rithm/internal/calc"
	"rithm/internal/digits"
	"rithm/internal/trace"
)

// Request describes one batch run.
type Request struct {
	Files    []string
	Family   *digits.Family
	Jobs     int // concurrent files; <= 0 means GOMAXPROCS
	Progress ProgressSink
}

// Run evaluates every file of req. Per-file failures are reported in the
// results; the returned error is only set when ctx is cancelled.
func Run(ctx context.Context, req Request) ([]Result, error) {
	results := make([]Result, len(req.Files))
	if len(req.Files) == 0 {
		return results, nil
	}
	for _, path := range req.Files {
		emit(req.Progress, Event{File: path, Status: StatusQueued})
	}

	jobs := req.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	ctx, span := trace.StartSpan(ctx, trace.ScopeDriver, "batch")
	defer span.WithExtra("files", fmt.Sprint(len(req.Files))).End("")

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(req.Files)))
	for i, path := range req.Files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			emit(req.Progress, Event{File: path, Status: StatusWorking})
			results[i] = evalFile(gctx, req.Family, path)
			status := StatusDone
			if results[i].Err != nil {
				status = StatusError
			}
			emit(req.Progress, Event{File: path, Status: status, Err: results[i].Err, Elapsed: results[i].Elapsed})
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func emit(sink ProgressSink, ev Event) {
	if sink != nil {
		sink.OnEvent(ev)
	}
}

func evalFile(ctx context.Context, fam *digits.Family, path string) (res Result) {
	start := time.Now()
	res.Path = path
	ctx, span := trace.StartSpan(ctx, trace.ScopeCommand, "file")
	span.WithExtra("path", path)
	defer func() {
		res.Elapsed = time.Since(start)
		detail := ""
		if res.Err != nil {
			detail = "error"
		}
		span.End(detail)
	}()

	f, err := os.Open(path)
	if err != nil {
		res.Err = fmt.Errorf("failed to open %s: %w", path, err)
		return res
	}
	defer f.Close()

	c := calc.New(fam)
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		res.Lines++
		if err := c.Eval(ctx, sc.Text()); err != nil {
			res.Err = &LineError{Path: path, Line: res.Lines, Err: err}
			res.Stack = c.Stack()
			return res
		}
	}
	if err := sc.Err(); err != nil {
		res.Err = fmt.Errorf("failed to read %s: %w", path, err)
	}
	res.Stack = c.Stack()
	return res
}
