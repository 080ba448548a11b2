package dcmtree

import (
	"context"
	"io/fs"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// ConcurrentlyWalkDir recursively traverses `dirPath` and calls `onFile` for
// each regular file, running at most `limit` calls at once. The first error
// returned by `onFile` cancels the context passed to outstanding calls and is
// returned once all calls have finished.
func ConcurrentlyWalkDir(ctx context.Context, dirPath string, limit int, onFile func(ctx context.Context, path string) error) error {
	var files []string
	err := filepath.WalkDir(dirPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return errors.Wrapf(err, "walking %s", dirPath)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for _, path := range files {
		path := path
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			return onFile(gctx, path)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// FileResult is the outcome of parsing one file during ScanDir
type FileResult struct {
	Path    string
	Counter *Counter
	Err     error
}

// ScanDir parses every file below `dirPath` with a Counter, up to
// `Config.OpenFileLimit` files at a time. Per-file decode failures are
// reported in the results rather than stopping the scan. Results are in
// completion order.
func (p *Parser) ScanDir(ctx context.Context, dirPath string) ([]FileResult, error) {
	var (
		mu      sync.Mutex
		results []FileResult
	)
	err := ConcurrentlyWalkDir(ctx, dirPath, p.cfg.OpenFileLimit, func(ctx context.Context, path string) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		counter := NewCounter()
		err := p.ParseFile(path, counter)
		if err != nil {
			p.log.Debugw("parse failed", "path", path, "error", err)
		}
		mu.Lock()
		results = append(results, FileResult{Path: path, Counter: counter, Err: err})
		mu.Unlock()
		return nil
	})
	return results, err
}
