package vlcplayer

import (
	"bytes"
	"context"
	"errors"
	"syscall"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/spezifisch/vlcrepl/logger"
	"github.com/spezifisch/vlcrepl/remote"
)

type invocation struct {
	cmd  remote.Command
	args []interface{}
}

type fakeRemote struct {
	props   map[string]dbus.Variant
	sets    map[string]interface{}
	invoked []invocation
	err     error
}

func newFakeRemote() *fakeRemote {
	return &fakeRemote{props: map[string]dbus.Variant{}, sets: map[string]interface{}{}}
}

func (f *fakeRemote) withURL(u string) *fakeRemote {
	f.props["Metadata"] = dbus.MakeVariant(map[string]dbus.Variant{
		"xesam:url": dbus.MakeVariant(u),
	})
	return f
}

func (f *fakeRemote) withPosition(micros int64) *fakeRemote {
	f.props["Position"] = dbus.MakeVariant(micros)
	return f
}

func (f *fakeRemote) GetProperty(ctx context.Context, name string) (dbus.Variant, error) {
	if f.err != nil {
		return dbus.Variant{}, f.err
	}
	v, ok := f.props[name]
	if !ok {
		return dbus.Variant{}, errors.New("no such property " + name)
	}
	return v, nil
}

func (f *fakeRemote) SetProperty(ctx context.Context, name string, value interface{}) error {
	if f.err != nil {
		return f.err
	}
	f.sets[name] = value
	f.props[name] = dbus.MakeVariant(value)
	return nil
}

func (f *fakeRemote) Invoke(ctx context.Context, cmd remote.Command, args ...interface{}) error {
	if f.err != nil {
		return f.err
	}
	f.invoked = append(f.invoked, invocation{cmd: cmd, args: args})
	return nil
}

type fakeRunner struct {
	argvs [][]string
	err   error
}

func (f *fakeRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	f.argvs = append(f.argvs, append([]string{name}, args...))
	return nil, f.err
}

type fakeWindows struct {
	lines []string
	err   error
}

func (f *fakeWindows) List(ctx context.Context) ([]string, error) {
	return f.lines, f.err
}

type signalled struct {
	pid int
	sig syscall.Signal
}

// fakeProcesses answers PIDs from listings in order; the last one repeats.
type fakeProcesses struct {
	listings [][]int
	listErr  error
	failFor  map[int]error
	signals  []signalled
}

func (f *fakeProcesses) PIDs(ctx context.Context, name string) ([]int, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	if len(f.listings) == 0 {
		return nil, nil
	}
	pids := f.listings[0]
	if len(f.listings) > 1 {
		f.listings = f.listings[1:]
	}
	return pids, nil
}

func (f *fakeProcesses) Signal(pid int, sig syscall.Signal) error {
	f.signals = append(f.signals, signalled{pid: pid, sig: sig})
	return f.failFor[pid]
}

type fakeDisplay bool

func (f fakeDisplay) Active() bool { return bool(f) }

// inlineTasks runs tasks right away so tests can observe their effects.
type inlineTasks struct {
	names []string
	errs  []error
}

func (f *inlineTasks) Go(name string, fn func() error) {
	f.names = append(f.names, name)
	f.errs = append(f.errs, fn())
}

type fixture struct {
	remote    *fakeRemote
	runner    *fakeRunner
	windows   *fakeWindows
	processes *fakeProcesses
	tasks     *inlineTasks
	out       *bytes.Buffer
	log       *bytes.Buffer
	slept     []time.Duration
	player    *Player
}

func newFixture(r *fakeRemote) *fixture {
	f := &fixture{
		remote:    r,
		runner:    &fakeRunner{},
		windows:   &fakeWindows{},
		processes: &fakeProcesses{},
		tasks:     &inlineTasks{},
		out:       &bytes.Buffer{},
		log:       &bytes.Buffer{},
	}
	l := logger.InitWriter(f.log)
	l.SetDebug(true)
	f.player = NewPlayer(Deps{
		Remote:    r,
		Windows:   f.windows,
		Processes: f.processes,
		Runner:    f.runner,
		Tasks:     f.tasks,
		Output:    f.out,
		Logger:    l,
	}, Options{})
	f.player.sleep = func(d time.Duration) { f.slept = append(f.slept, d) }
	return f
}
