package report

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"

	"golang.org/x/sync/errgroup"

	"lintfmt/internal/lint"
	"lintfmt/internal/trace"
)

// StdinName is the path that selects standard input.
const StdinName = "-"

// LoadOptions configures LoadFiles.
type LoadOptions struct {
	Codec Codec
	// Jobs caps concurrent reads; 0 means GOMAXPROCS.
	Jobs int
	// Dedup drops exact duplicates across all files.
	Dedup bool
	// Stdin is read for the "-" path; nil means os.Stdin.
	Stdin    io.Reader
	Progress ProgressSink
}

// LoadFiles decodes every report in paths concurrently and returns their
// violations merged in argument order, so the result does not depend on
// scheduling. The first failure cancels the remaining reads.
func LoadFiles(ctx context.Context, paths []string, opts LoadOptions) (*lint.Bag, error) {
	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopeStage, "load", trace.CurrentSpan(ctx))
	defer span.End("")

	stdinSeen := false
	for _, p := range paths {
		if p != StdinName {
			continue
		}
		if stdinSeen {
			err := fmt.Errorf("standard input %q given more than once", StdinName)
			trace.Error(tracer, "load", err)
			return nil, err
		}
		stdinSeen = true
	}

	for _, p := range paths {
		notify(opts.Progress, Event{File: p, Status: StatusQueued})
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	bags := make([]*lint.Bag, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(jobs, len(paths))))
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			fileSpan := trace.Begin(tracer, trace.ScopeFile, "file:"+path, span.ID())
			notify(opts.Progress, Event{File: path, Status: StatusReading})

			bag, err := loadOne(path, opts)
			if err != nil {
				fileSpan.End("error")
				trace.Error(tracer, "load", err)
				notify(opts.Progress, Event{File: path, Status: StatusError, Err: err})
				return err
			}
			fileSpan.WithExtra("violations", strconv.Itoa(bag.Len())).End("")
			notify(opts.Progress, Event{File: path, Status: StatusDone, Count: bag.Len()})
			bags[i] = bag
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := lint.NewBag(0)
	var rep lint.Reporter = lint.BagReporter{Bag: merged}
	if opts.Dedup {
		rep = lint.NewDedupReporter(rep)
	}
	for _, b := range bags {
		for _, v := range b.Items() {
			rep.Report(v)
		}
	}
	span.WithExtra("files", strconv.Itoa(len(paths))).WithExtra("violations", strconv.Itoa(merged.Len()))
	return merged, nil
}

func loadOne(path string, opts LoadOptions) (*lint.Bag, error) {
	var r io.Reader
	if path == StdinName {
		r = opts.Stdin
		if r == nil {
			r = os.Stdin
		}
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open report: %w", err)
		}
		defer f.Close()
		r = f
	}

	bag := lint.NewBag(0)
	if err := Decode(r, opts.Codec, path, lint.BagReporter{Bag: bag}); err != nil {
		return nil, err
	}
	return bag, nil
}
