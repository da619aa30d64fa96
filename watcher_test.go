package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWatcher(root string, ignore []string, runs *atomic.Int32) *Watcher {
	return &Watcher{
		log:              slog.New(slog.NewTextHandler(io.Discard, nil)),
		root:             root,
		ignore:           ignore,
		mergeEventsDelay: 50 * time.Millisecond,
		run: func() error {
			runs.Add(1)
			return nil
		},
	}
}

func Test_Watch(t *testing.T) {
	tmp := t.TempDir()
	createFile := func(name string, content string) {
		require.NoError(t, os.WriteFile(filepath.Join(tmp, name), []byte(content), 0o644))
	}

	var runs atomic.Int32
	w := newTestWatcher(tmp, nil, &runs)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, w.Watch(ctx))
	time.Sleep(100 * time.Millisecond)

	// a burst of writes is merged into a single run
	createFile("f1.md", "f1")
	createFile("f2.md", "f2")
	createFile("f1.md", "new f1")
	require.Eventually(t, func() bool { return runs.Load() == 1 }, time.Second, 10*time.Millisecond)

	// non markdown files are ignored
	createFile("notes.txt", "text")
	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, int32(1), runs.Load())

	require.NoError(t, os.Remove(filepath.Join(tmp, "f2.md")))
	require.Eventually(t, func() bool { return runs.Load() == 2 }, time.Second, 10*time.Millisecond)
}

func Test_Watch_NewDirectories(t *testing.T) {
	tmp := t.TempDir()

	var runs atomic.Int32
	w := newTestWatcher(tmp, nil, &runs)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, w.Watch(ctx))

	sub := filepath.Join(tmp, "sub")
	require.NoError(t, os.Mkdir(sub, 0o755))
	require.Eventually(t, func() bool { return runs.Load() == 1 }, time.Second, 10*time.Millisecond)

	require.NoError(t, os.WriteFile(filepath.Join(sub, "nested.md"), []byte("x"), 0o644))
	require.Eventually(t, func() bool { return runs.Load() == 2 }, time.Second, 10*time.Millisecond)
}

func Test_Watch_IgnoresGeneratedDirs(t *testing.T) {
	tmp := t.TempDir()
	out := filepath.Join(tmp, "organized")
	require.NoError(t, os.Mkdir(out, 0o755))

	var runs atomic.Int32
	w := newTestWatcher(tmp, []string{out}, &runs)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, w.Watch(ctx))

	require.NoError(t, os.WriteFile(filepath.Join(out, "copy.md"), []byte("x"), 0o644))
	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, int32(0), runs.Load())
}

func Test_Watch_MissingRoot(t *testing.T) {
	var runs atomic.Int32
	w := newTestWatcher(filepath.Join(t.TempDir(), "missing"), nil, &runs)

	assert.Error(t, w.Watch(context.Background()))
}

func Test_Watcher_ignored(t *testing.T) {
	w := &Watcher{ignore: []string{"", "/data/out"}}

	assert.True(t, w.ignored("/data/out"))
	assert.True(t, w.ignored("/data/out/a.md"))
	assert.False(t, w.ignored("/data/output/a.md"))
	assert.False(t, w.ignored("/data/docs/a.md"))
}
