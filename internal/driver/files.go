package driver

import (
	"context"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"flint/internal/trace"
)

// FileResult pairs one input path with its outcome. Exactly one of
// Result and Err is set: Err carries the typed driver failure, Result
// carries the token stream (possibly with in-band lexer errors).
type FileResult struct {
	Path   string
	Result *LexResult
	Err    error
}

// FileEvent notifies a progress consumer that one file finished.
// Done counts completed files including this one.
type FileEvent struct {
	Path      string
	Done      int
	Total     int
	HasErrors bool
	Failed    bool
}

// FilesOptions tunes a multi-file run.
type FilesOptions struct {
	Options
	// Jobs bounds the number of concurrent lexers; non-positive means
	// GOMAXPROCS.
	Jobs int
	// OnFile, when set, receives one event per finished file. Called
	// from worker goroutines; the consumer serializes.
	OnFile func(FileEvent)
}

// RunOnFiles lexes every path concurrently, one arena per file, and
// returns results in input order. Per-file driver failures land in
// their FileResult; the returned error is non-nil only when the context
// is canceled.
func RunOnFiles(ctx context.Context, paths []string, opts FilesOptions) ([]FileResult, error) {
	results := make([]FileResult, len(paths))
	if len(paths) == 0 {
		return results, nil
	}

	tr := trace.FromContext(ctx)
	span := trace.Begin(tr, trace.ScopePass, "lex", trace.CurrentSpan(ctx).SpanID)
	defer span.End("")
	ctx = trace.WithSpanContext(ctx, trace.SpanContext{SpanID: span.ID()})

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	if jobs > len(paths) {
		jobs = len(paths)
	}

	var done atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, path := range paths {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			res, err := RunOnFile(gctx, path, opts.Options)
			// индекс i уникален для горутины, мьютекс не нужен
			results[i] = FileResult{Path: path, Result: res, Err: err}

			if opts.OnFile != nil {
				opts.OnFile(FileEvent{
					Path:      path,
					Done:      int(done.Add(1)),
					Total:     len(paths),
					HasErrors: res != nil && res.HasErrors,
					Failed:    err != nil,
				})
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
