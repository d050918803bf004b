package content

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestWatcherReloadsOnWrite(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "content.yaml")
	require.NoError(t, os.WriteFile(path, defaultYAML, 0o644))

	store := NewStore(Default())
	var failures atomic.Int32
	w := NewWatcher(path, store, nil).
		WithDebounce(10 * time.Millisecond).
		OnReload(func(err error) {
			if err != nil {
				failures.Add(1)
			}
		})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	renamed := bytes.Replace(defaultYAML, []byte("name: Nexus AI"), []byte("name: Nexus Next"), 1)
	require.Eventually(t, func() bool {
		_ = os.WriteFile(path, renamed, 0o644)
		return store.Get().Site.Name == "Nexus Next"
	}, 5*time.Second, 50*time.Millisecond)

	require.Eventually(t, func() bool {
		_ = os.WriteFile(path, []byte("site: ["), 0o644)
		return failures.Load() > 0
	}, 5*time.Second, 50*time.Millisecond)
	require.Equal(t, "Nexus Next", store.Get().Site.Name)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestWatcherMissingDirectory(t *testing.T) {
	w := NewWatcher(filepath.Join(t.TempDir(), "nope", "content.yaml"), NewStore(Default()), nil)
	require.Error(t, w.Run(context.Background()))
}
