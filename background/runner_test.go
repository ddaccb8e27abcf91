package background

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/spezifisch/vlcrepl/logger"
	"github.com/stretchr/testify/assert"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// wait blocks until every submitted task has returned.
func (r *Runner) wait() {
	r.inFlight.Wait()
}

func TestGoRunsTask(t *testing.T) {
	var out syncBuffer
	r := NewRunner(logger.InitWriter(&out))

	done := make(chan struct{})
	r.Go("task", func() error {
		close(done)
		return nil
	})
	<-done
	r.wait()

	assert.Empty(t, out.String())
}

func TestGoLogsError(t *testing.T) {
	var out syncBuffer
	r := NewRunner(logger.InitWriter(&out))

	r.Go("screenshot", func() error { return errors.New("import: no window") })
	r.wait()

	assert.Equal(t, "Error(screenshot) -> import: no window\n", out.String())
}

func TestGoRecoversPanic(t *testing.T) {
	var out syncBuffer
	r := NewRunner(logger.InitWriter(&out))

	r.Go("launch", func() error { panic("kaboom") })
	r.wait()

	assert.True(t, strings.HasPrefix(out.String(), "Error(launch) -> panic: kaboom"))
}

func TestGoDoesNotWaitForTask(t *testing.T) {
	r := NewRunner(logger.InitWriter(&syncBuffer{}))

	release := make(chan struct{})
	r.Go("slow", func() error {
		<-release
		return nil
	})
	// Go returned while the task is still blocked
	close(release)
	r.wait()
}
