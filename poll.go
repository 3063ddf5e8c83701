// MFP - Miulti-Function Printers and scanners toolkit
// Avahi simple poll binding
//
// Copyright (C) 2024 and up by Alexander Pevzner (pzz@apevzner.com)
// See LICENSE for license terms and conditions
//
// Avahi event loop

package avahi

import (
	"math"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// Poll owns the native [AvahiSimplePoll] event loop.
//
// Poll is driven explicitly by its owner, either with the blocking
// Poll.Run or with repeated Poll.Iterate calls interleaved with
// other work. It never starts goroutines by itself.
//
// Once the native loop reports disconnection or error, Poll enters
// the finished state, which is never left. Any further attempt to
// run or iterate it fails with the KindIllegalState error without
// touching the native loop.
//
// Poll is shared with every [Client] created against it. The native
// loop is freed when the last of them is closed, so Poll.Close may
// be called before Client.Close.
//
// Poll.Quit and Poll.Finished may be called from any goroutine.
// Concurrent calls of Poll.Run or Poll.Iterate are not supported.
//
// [AvahiSimplePoll]: https://avahi.org/doxygen/html/simple-watch_8h.html
type Poll struct {
	native NativePoll   // Underlying AvahiSimplePoll
	tr     Translator   // Error translator
	log    *zap.Logger  // Logger
	refs   atomic.Int32 // Owners: Poll itself and its Clients
	closed atomic.Bool  // Poll.Close was called

	lock     sync.RWMutex // Protects finished
	finished bool         // Terminal state reached
}

// PollOption configures a [Poll].
type PollOption func(*Poll)

// WithLogger sets the Poll's logger.
func WithLogger(l *zap.Logger) PollOption {
	return func(p *Poll) {
		if l != nil {
			p.log = l
		}
	}
}

// NewPoll creates a new [Poll].
//
// It fails with the KindAlloc error if the native allocator fails.
func NewPoll(lib Library, opts ...PollOption) (*Poll, error) {
	native := lib.SimplePollNew()
	if native == nil {
		return nil, errAlloc("avahi_simple_poll_new",
			"could not initialize AvahiSimplePoll")
	}

	p := &Poll{
		native: native,
		tr:     NewTranslator(lib),
		log:    log(),
	}

	for _, opt := range opts {
		opt(p)
	}

	p.refs.Store(1)
	p.log.Debug("poll created")

	return p, nil
}

// Run runs the native event loop until it terminates, either
// due to Poll.Quit or due to error.
//
// Negative native result is returned as the KindNative error.
// In both cases Poll enters the finished state.
func (p *Poll) Run() error {
	if err := p.check("avahi_simple_poll_loop"); err != nil {
		return err
	}

	err := p.tr.Exec(p.native.Loop, "could not start AvahiSimplePoll")
	if err != nil {
		p.markFinished("error")
	} else {
		p.markFinished("quit")
	}

	return err
}

// Iterate runs exactly one iteration of the native event loop,
// waiting for events no longer that timeout.
//
// The timeout is truncated to whole milliseconds. Negative timeout
// is treated as zero, too large timeout is clamped to the largest
// value the native loop accepts.
//
// Iterate returns nil if the iteration completed normally. If the
// native loop reports that quit was requested or that it failed,
// Poll enters the finished state and Iterate returns the KindNative
// error. Its Code is NoError for the quit, otherwise it is the raw
// result of avahi_simple_poll_iterate.
func (p *Poll) Iterate(timeout time.Duration) error {
	const op = "avahi_simple_poll_iterate"

	sleepTime := sleepTime(timeout)

	if err := p.check(op); err != nil {
		return err
	}

	rc := p.native.Iterate(sleepTime)

	code := ErrCode(rc)
	var msg string
	switch rc {
	case 0:
		return nil
	case 1:
		p.markFinished("quit")
		code = NoError
		msg = "avahi_simple_poll_iterate(..) disconnected"
	case -1:
		p.markFinished("error")
		msg = "avahi_simple_poll_iterate(..) threw an error result"
	default:
		p.markFinished("unknown")
		msg = "avahi_simple_poll_iterate(..) returned an unknown result"
	}

	return &Error{Kind: KindNative, Op: op, Code: code, Message: msg}
}

// Quit requests the native event loop to terminate at its
// next safe point.
//
// Quit doesn't change Poll state by itself. The finished state
// is entered by the Poll.Run or Poll.Iterate that observes the
// termination.
//
// Quit may be called from any goroutine, including during
// a pending Poll.Iterate or a concurrent Poll.Close. It holds
// a reference to the native event loop while the request is
// delivered, so it reaches the loop as long as the Poll or any
// of its Clients is not closed, and does nothing afterwards.
func (p *Poll) Quit() {
	if !p.acquire() {
		return
	}
	defer p.release()

	p.native.Quit()
}

// Finished reports if Poll has reached its terminal state.
func (p *Poll) Finished() bool {
	p.lock.RLock()
	defer p.lock.RUnlock()
	return p.finished
}

// Close releases the Poll. The native event loop is freed
// when all [Client]s created against this Poll are closed
// as well.
//
// After Close, the Poll must not be used anymore. Repeated
// calls are no-op.
func (p *Poll) Close() {
	if p.closed.CompareAndSwap(false, true) {
		p.release()
	}
}

// check verifies that Poll may be used by the operation.
func (p *Poll) check(op string) error {
	switch {
	case p.closed.Load():
		return errIllegalState(op, "AvahiSimplePoll already closed")
	case p.Finished():
		return errIllegalState(op, op+"(..) already finished")
	}
	return nil
}

// markFinished moves Poll into the finished state.
func (p *Poll) markFinished(reason string) {
	p.lock.Lock()
	already := p.finished
	p.finished = true
	p.lock.Unlock()

	if !already {
		p.log.Debug("poll finished", zap.String("reason", reason))
	}
}

// api returns the native dispatcher of the event loop.
func (p *Poll) api() PollAPI {
	return p.native.Get()
}

// acquire adds a new owner of the Poll. It fails if the native
// event loop is already freed.
func (p *Poll) acquire() bool {
	for {
		n := p.refs.Load()
		if n <= 0 {
			return false
		}
		if p.refs.CompareAndSwap(n, n+1) {
			return true
		}
	}
}

// release drops one owner of the Poll. The last one frees
// the native event loop.
func (p *Poll) release() {
	if p.refs.Add(-1) == 0 {
		p.native.Free()
		p.log.Debug("poll freed")
	}
}

// sleepTime converts timeout into the avahi_simple_poll_iterate
// sleep time, in milliseconds.
func sleepTime(timeout time.Duration) int32 {
	ms := timeout.Milliseconds()
	switch {
	case ms < 0:
		return 0
	case ms > math.MaxInt32:
		return math.MaxInt32
	}
	return int32(ms)
}
