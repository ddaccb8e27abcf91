package repl

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/spezifisch/vlcrepl/logger"
	"github.com/spezifisch/vlcrepl/remote"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePlayer struct {
	calls []string
	err   error
}

func (f *fakePlayer) record(format string, args ...interface{}) error {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
	return f.err
}

func (f *fakePlayer) Seek(ctx context.Context, delta float64) error {
	return f.record("seek %g", delta)
}

func (f *fakePlayer) JumpTo(ctx context.Context, text string) error {
	return f.record("go %s", text)
}

func (f *fakePlayer) TogglePause(ctx context.Context) error { return f.record("pause") }
func (f *fakePlayer) Screenshot(ctx context.Context) error  { return f.record("screenshot") }
func (f *fakePlayer) Next(ctx context.Context) error        { return f.record("next") }
func (f *fakePlayer) Previous(ctx context.Context) error    { return f.record("previous") }
func (f *fakePlayer) KillAll(ctx context.Context)           { _ = f.record("kill") }

func (f *fakePlayer) ShowInfo(ctx context.Context, format string) error {
	return f.record("info %q", format)
}

func (f *fakePlayer) SetVolume(ctx context.Context, volume float64) error {
	return f.record("volume %g", volume)
}

func (f *fakePlayer) AdjustVolume(ctx context.Context, delta float64) error {
	return f.record("volume %+g", delta)
}

func newTestLoop(t *testing.T) (*Loop, *fakePlayer, *bytes.Buffer) {
	t.Helper()
	p := &fakePlayer{}
	table, err := DefaultTable(p)
	require.NoError(t, err)
	out := &bytes.Buffer{}
	return NewLoop(table, p, out, logger.InitWriter(&bytes.Buffer{}), ""), p, out
}

func TestNewTableRejectsDuplicates(t *testing.T) {
	noop := func(context.Context) error { return nil }
	_, err := NewTable(
		Binding{"a", "first", noop},
		Binding{"a", "second", noop},
	)
	assert.ErrorIs(t, err, ErrDuplicateToken)

	_, err = NewTable(Binding{"", "empty", noop})
	assert.Error(t, err)

	_, err = NewTable(Binding{"x", "nothing", nil})
	assert.Error(t, err)
}

func TestBindingsKeepOrder(t *testing.T) {
	table, err := DefaultTable(&fakePlayer{})
	require.NoError(t, err)

	var tokens []string
	for _, b := range table.Bindings() {
		tokens = append(tokens, b.Token)
	}
	assert.Equal(t, []string{"H", "h", ArrowLeft, "L", "l", ArrowRight, " ", "s", "i", "n", "p", "K", "+", "-"}, tokens)
}

func TestDispatchBindings(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"H", "seek -30"},
		{"h", "seek -5"},
		{ArrowLeft, "seek -1"},
		{"L", "seek 30"},
		{"l", "seek 5"},
		{ArrowRight, "seek 1"},
		{" ", "pause"},
		{"s", "screenshot"},
		{"i", `info ""`},
		{"n", "next"},
		{"p", "previous"},
		{"K", "kill"},
		{"+", "volume +0.05"},
		{"-", "volume -0.05"},
	}
	for _, tt := range tests {
		t.Run(KeyName(tt.input), func(t *testing.T) {
			loop, p, _ := newTestLoop(t)
			require.NoError(t, loop.Dispatch(context.Background(), tt.input))
			assert.Equal(t, []string{tt.want}, p.calls)
		})
	}
}

func TestDispatchCommands(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"seek 10", []string{"seek 10"}},
		{"seek -2.5", []string{"seek -2.5"}},
		{"  seek   7 ", []string{"seek 7"}},
		{"seek ten", nil},
		{"seek", nil},
		{"seek NaN", nil},
		{"seek Inf", nil},
		{"seek -inf", nil},
		{"seek 1e300", nil},
		{"seek 1e400", nil},
		{"go 1:30", []string{"go 1:30"}},
		{"go soon", []string{"go soon"}},
		{"info", []string{`info ""`}},
		{"info {{.Filename}}", []string{`info "{{.Filename}}"`}},
		{"volume 0.3", []string{"volume 0.3"}},
		{"volume loud", nil},
		{"volume NaN", nil},
		{"volume +Inf", nil},
		{"", nil},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			loop, p, out := newTestLoop(t)
			require.NoError(t, loop.Dispatch(context.Background(), tt.input))
			assert.Equal(t, tt.want, p.calls)
			assert.Empty(t, out.String())
		})
	}
}

func TestDispatchUnknown(t *testing.T) {
	loop, p, out := newTestLoop(t)

	for _, input := range []string{"x", "Z", "\x1b[A", "rewind 5"} {
		require.NoError(t, loop.Dispatch(context.Background(), input))
	}
	assert.Empty(t, p.calls)
	assert.Equal(t, 4, strings.Count(out.String(), "unknown command"))
}

func TestDispatchPropagatesPlayerFailure(t *testing.T) {
	loop, p, _ := newTestLoop(t)
	p.err = remote.ErrPlayerNotRunning

	assert.ErrorIs(t, loop.Dispatch(context.Background(), "n"), remote.ErrPlayerUnavailable)
	assert.ErrorIs(t, loop.Dispatch(context.Background(), "seek 3"), remote.ErrPlayerUnavailable)
}

func TestHelp(t *testing.T) {
	loop, p, out := newTestLoop(t)
	require.NoError(t, loop.Dispatch(context.Background(), "help"))

	assert.Empty(t, p.calls)
	help := out.String()
	assert.Contains(t, help, "space")
	assert.Contains(t, help, "kill all VLC processes")
	assert.Contains(t, help, "go TIMESTAMP")
	assert.Less(t, strings.Index(help, "rewind 30 seconds"), strings.Index(help, "fast forward 30 seconds"))
}

func TestIsQuit(t *testing.T) {
	for _, input := range []string{"q", "quit", "exit", " exit "} {
		assert.True(t, IsQuit(input), input)
	}
	for _, input := range []string{"Q", "qq", "", "s"} {
		assert.False(t, IsQuit(input), input)
	}
}

func TestRun(t *testing.T) {
	loop, p, out := newTestLoop(t)
	p.err = nil
	in := strings.NewReader("l\nbogus\nseek 2\nq\nn\n")

	require.NoError(t, loop.Run(context.Background(), in))
	assert.Equal(t, []string{"seek 5", "seek 2"}, p.calls)
	assert.Contains(t, out.String(), DefaultPrompt)
	assert.Contains(t, out.String(), `unknown command "bogus"`)
}

func TestRunSurvivesPlayerFailure(t *testing.T) {
	loop, p, out := newTestLoop(t)
	p.err = remote.ErrPlayerNotRunning

	require.NoError(t, loop.Run(context.Background(), strings.NewReader("n\np\n")))
	assert.Equal(t, []string{"next", "previous"}, p.calls)
	assert.Equal(t, 2, strings.Count(out.String(), "error: "))
}

func TestRunStopsOnCancel(t *testing.T) {
	loop, p, _ := newTestLoop(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, loop.Run(ctx, strings.NewReader("n\n")), context.Canceled)
	assert.Empty(t, p.calls)
}

func TestRunStopsOnCancelWhileWaiting(t *testing.T) {
	loop, p, _ := newTestLoop(t)
	ctx, cancel := context.WithCancel(context.Background())
	in, w := io.Pipe()
	defer w.Close()

	errc := make(chan error, 1)
	go func() { errc <- loop.Run(ctx, in) }()

	_, err := io.WriteString(w, "n\n")
	require.NoError(t, err)
	cancel()

	select {
	case err := <-errc:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Run still blocked on input after cancel")
	}
	assert.LessOrEqual(t, len(p.calls), 1)
}
