// Package player drives a frame sequence onto a terminal at a target
// rate. Writes are strictly ordered and single-threaded; the only
// suspension point is the timed sleep between frames. Interrupts run the
// terminal restore path and then return normally, so a cancelled
// animation never leaves the cursor hidden or the alternate screen
// active.
package player

import (
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/flowviz/flowviz/internal/errors"
	"github.com/flowviz/flowviz/internal/term"
)

// DefaultFPS is the frame rate used when options leave it unset.
const DefaultFPS = 12

// Options control one playback run.
type Options struct {
	// FPS is the target frame rate; values below 1 fall back to
	// DefaultFPS.
	FPS int
	// Loop restarts the sequence after the hold pause instead of
	// terminating.
	Loop bool
	// AltScreen plays on the alternate screen buffer and restores the
	// primary buffer on teardown.
	AltScreen bool
	// HoldLast pauses on the final frame after each pass.
	HoldLast time.Duration
	// Caps gates synchronized-output bracketing.
	Caps term.Profile
	// OnFrame, when set, is invoked after each frame write with the
	// frame index and total count.
	OnFrame func(index, total int)
}

// Player writes frames to one output stream.
type Player struct {
	out io.Writer
}

// New creates a player writing to out, defaulting to stdout.
func New(out io.Writer) *Player {
	if out == nil {
		out = os.Stdout
	}
	return &Player{out: out}
}

// Play runs the sequence once, or repeatedly when looping, and restores
// the terminal before returning. An interrupt is a normal cancellation:
// teardown runs, Play returns nil, and because the handler is removed
// during teardown a second interrupt gets default process termination. A
// write failure aborts the run with the teardown already applied.
func (p *Player) Play(frames []string, opts Options) error {
	if len(frames) == 0 {
		return nil
	}

	fps := opts.FPS
	if fps < 1 {
		fps = DefaultFPS
	}
	interval := time.Second / time.Duration(fps)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer p.teardown(opts, sigCh)

	if err := p.setup(opts); err != nil {
		return wrapWriteErr(err)
	}

	for {
		for i, frame := range frames {
			start := time.Now()
			if err := p.writeFrame(frame, opts); err != nil {
				return wrapWriteErr(err)
			}
			if opts.OnFrame != nil {
				opts.OnFrame(i, len(frames))
			}
			if p.pause(interval-time.Since(start), sigCh) {
				return nil
			}
		}

		if opts.HoldLast > 0 && p.pause(opts.HoldLast, sigCh) {
			return nil
		}
		if !opts.Loop {
			return nil
		}
	}
}

func (p *Player) setup(opts Options) error {
	var b strings.Builder
	if opts.AltScreen {
		b.WriteString(term.AltScreenEnter)
		b.WriteString(term.ClearScreen)
	}
	b.WriteString(term.CursorHide)
	_, err := io.WriteString(p.out, b.String())
	return err
}

// teardown always runs: show the cursor, drop back to the primary
// buffer, reset styles. The signal handler is removed first so teardown
// itself can never loop on a second interrupt.
func (p *Player) teardown(opts Options, sigCh chan os.Signal) {
	signal.Stop(sigCh)

	var b strings.Builder
	b.WriteString(term.CursorShow)
	if opts.AltScreen {
		b.WriteString(term.AltScreenExit)
	}
	b.WriteString(term.Reset)
	io.WriteString(p.out, b.String())
}

// writeFrame emits one frame as a single write: optional sync-begin,
// cursor home, frame bytes, optional sync-end.
func (p *Player) writeFrame(frame string, opts Options) error {
	var b strings.Builder
	if opts.Caps.SyncOutput {
		b.WriteString(term.SyncBegin)
	}
	b.WriteString(term.CursorHome)
	b.WriteString(frame)
	if opts.Caps.SyncOutput {
		b.WriteString(term.SyncEnd)
	}
	_, err := io.WriteString(p.out, b.String())
	return err
}

// pause sleeps for d unless an interrupt arrives first, and reports
// whether playback should stop. Non-positive durations still poll the
// signal channel so interrupts are honored under rendering jitter.
func (p *Player) pause(d time.Duration, sigCh <-chan os.Signal) bool {
	if d <= 0 {
		select {
		case <-sigCh:
			return true
		default:
			return false
		}
	}

	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-sigCh:
		return true
	case <-timer.C:
		return false
	}
}

func wrapWriteErr(err error) error {
	return errors.WrapWithCode(err, errors.ErrPlay,
		"Terminal write failed mid-animation",
		"Check that stdout is still attached to a terminal")
}
