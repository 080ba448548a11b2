package dcmtree

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"sync/atomic"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeScanDir creates a directory of two valid files (one nested) and one truncated file
func writeScanDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "series"), 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.dcm"), validFile, 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "series", "b.dcm"), validFile, 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "truncated.dcm"), validFile[:len(validFile)-3], 0o600))
	return dir
}

func TestConcurrentlyWalkDir(t *testing.T) {
	t.Parallel()
	dir := writeScanDir(t)
	var calls int32
	err := ConcurrentlyWalkDir(context.Background(), dir, 2, func(ctx context.Context, path string) error {
		atomic.AddInt32(&calls, 1)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, int32(3), calls)
}

func TestConcurrentlyWalkDirError(t *testing.T) {
	t.Parallel()
	dir := writeScanDir(t)
	failure := errors.New("failure")
	err := ConcurrentlyWalkDir(context.Background(), dir, 1, func(ctx context.Context, path string) error {
		return failure
	})
	assert.Equal(t, failure, err)

	err = ConcurrentlyWalkDir(context.Background(), filepath.Join(dir, "missing"), 1, func(ctx context.Context, path string) error {
		return nil
	})
	assert.Error(t, err)
}

func TestScanDir(t *testing.T) {
	t.Parallel()
	dir := writeScanDir(t)
	results, err := newTestParser(Config{OpenFileLimit: 2}).ScanDir(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, results, 3)
	sort.Slice(results, func(i, j int) bool { return results[i].Path < results[j].Path })

	assert.NoError(t, results[0].Err)
	assert.Equal(t, 6, results[0].Counter.Total)
	assert.NoError(t, results[1].Err)
	assert.Equal(t, filepath.Join(dir, "series", "b.dcm"), results[1].Path)
	assert.Error(t, results[2].Err)
	assert.Equal(t, filepath.Join(dir, "truncated.dcm"), results[2].Path)
}

func TestScanDirCancelled(t *testing.T) {
	t.Parallel()
	dir := writeScanDir(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := newTestParser(Config{}).ScanDir(ctx, dir)
	assert.True(t, errors.Is(err, context.Canceled))
}
