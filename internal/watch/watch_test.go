package watch

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bg.png")
	require.NoError(t, os.WriteFile(path, []byte("a"), 0o644))

	var n atomic.Int32
	w, err := New(100*time.Millisecond, func() { n.Add(1) })
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, w.Watch(path))
	abs, _ := filepath.Abs(path)
	assert.Equal(t, abs, w.Path())

	// a burst of writes is debounced
	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(path, []byte{byte(i)}, 0o644))
	}
	assert.Eventually(t, func() bool { return n.Load() >= 1 }, 2*time.Second, 10*time.Millisecond)

	// nothing else fires once the debounce has settled
	time.Sleep(300 * time.Millisecond)
	assert.Equal(t, int32(1), n.Load())
}

func TestWatchIgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bg.png")
	require.NoError(t, os.WriteFile(path, []byte("a"), 0o644))

	var n atomic.Int32
	w, err := New(10*time.Millisecond, func() { n.Add(1) })
	require.NoError(t, err)
	defer w.Close()
	require.NoError(t, w.Watch(path))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("b"), 0o644))
	time.Sleep(150 * time.Millisecond)
	assert.Zero(t, n.Load())
}

func TestUnwatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bg.png")
	require.NoError(t, os.WriteFile(path, []byte("a"), 0o644))

	var n atomic.Int32
	w, err := New(10*time.Millisecond, func() { n.Add(1) })
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, w.Watch(path))
	w.Unwatch()
	assert.Empty(t, w.Path())

	require.NoError(t, os.WriteFile(path, []byte("b"), 0o644))
	time.Sleep(150 * time.Millisecond)
	assert.Zero(t, n.Load())
}

func TestWatchMissingDirectory(t *testing.T) {
	w, err := New(10*time.Millisecond, func() {})
	require.NoError(t, err)
	defer w.Close()

	assert.Error(t, w.Watch(filepath.Join(t.TempDir(), "nope", "bg.png")))
	assert.Empty(t, w.Path())
}
