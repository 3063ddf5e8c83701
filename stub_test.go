// MFP - Miulti-Function Printers and scanners toolkit
// Avahi simple poll binding
//
// Copyright (C) 2024 and up by Alexander Pevzner (pzz@apevzner.com)
// See LICENSE for license terms and conditions
//
// Native library stubs

package avahi

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

// stubMessages contains native messages, known to stubLibrary.
var stubMessages = map[ErrCode]string{
	NoError:         "OK",
	ErrFailure:      "Operation failed",
	ErrBadState:     "Bad state",
	ErrNoDaemon:     "Daemon not running",
	ErrDisconnected: "Daemon connection failed",
	ErrNoMemory:     "Memory exhausted",
	ErrNotFound:     "Not found",
}

// stubLibrary implements Library for tests.
type stubLibrary struct {
	pollNil   bool      // SimplePollNew returns nil
	clientErr ErrCode   // ClientNew fails with this code
	poll      *stubPoll // The last created poll
	clients   []*stubClient
	lock      sync.Mutex
}

func (lib *stubLibrary) SimplePollNew() NativePoll {
	if lib.pollNil {
		return nil
	}

	lib.lock.Lock()
	defer lib.lock.Unlock()

	lib.poll = newStubPoll()
	return lib.poll
}

func (lib *stubLibrary) ClientNew(api PollAPI, flags ClientFlags,
	callback ClientCallback, userdata any) (NativeClient, ErrCode) {

	if lib.clientErr != NoError {
		return nil, lib.clientErr
	}

	poll := api.(*stubPoll)
	if poll.freed.Load() {
		panic("ClientNew: poll already freed")
	}

	clnt := &stubClient{
		poll:     poll,
		flags:    flags,
		userdata: userdata,
		state:    ClientStateConnecting,
	}

	if callback != nil {
		callback(clnt.state, userdata)
	}

	lib.lock.Lock()
	lib.clients = append(lib.clients, clnt)
	lib.lock.Unlock()

	return clnt, NoError
}

func (lib *stubLibrary) Strerror(code ErrCode) string {
	if s, ok := stubMessages[code]; ok {
		return s
	}
	return "Invalid Error Code"
}

func (lib *stubLibrary) AlternativeServiceName(name string) string {
	return name + " #2"
}

// stubPoll implements NativePoll.
//
// Iterate returns results from the script; when the script is
// exhausted it returns 0, or 1 once Quit was called.
//
// Quit sleeps for quitDelay and records if the poll was freed
// while it was running.
type stubPoll struct {
	script      []int
	loopRC      int
	quitDelay   time.Duration
	freedInQuit atomic.Bool
	iterates atomic.Int32
	loops    atomic.Int32
	frees    atomic.Int32
	freed    atomic.Bool
	quit     chan struct{}
	quitOnce sync.Once
	lastWait atomic.Int32
	lock     sync.Mutex
}

func newStubPoll() *stubPoll {
	return &stubPoll{quit: make(chan struct{}), loopRC: 1}
}

func (p *stubPoll) Loop() int {
	p.loops.Add(1)
	if p.loopRC < 0 {
		return p.loopRC
	}
	<-p.quit
	return p.loopRC
}

func (p *stubPoll) Iterate(sleepTime int32) int {
	if p.freed.Load() {
		panic("Iterate: poll already freed")
	}

	p.iterates.Add(1)
	p.lastWait.Store(sleepTime)

	p.lock.Lock()
	if len(p.script) > 0 {
		rc := p.script[0]
		p.script = p.script[1:]
		p.lock.Unlock()
		return rc
	}
	p.lock.Unlock()

	select {
	case <-p.quit:
		return 1
	default:
		return 0
	}
}

func (p *stubPoll) Quit() {
	if p.freed.Load() {
		p.freedInQuit.Store(true)
	}

	time.Sleep(p.quitDelay)

	if p.freed.Load() {
		p.freedInQuit.Store(true)
	}

	p.quitOnce.Do(func() { close(p.quit) })
}

func (p *stubPoll) Get() PollAPI {
	return p
}

func (p *stubPoll) Free() {
	p.frees.Add(1)
	p.freed.Store(true)
}

// stubClient implements NativeClient.
type stubClient struct {
	poll     *stubPoll
	flags    ClientFlags
	userdata any
	state    ClientState
	hostname string
	errno    ErrCode
	frees    atomic.Int32
}

func (clnt *stubClient) check() {
	if clnt.poll.freed.Load() {
		panic(fmt.Sprintf("client %p: poll already freed", clnt))
	}
}

func (clnt *stubClient) HostName() (string, bool) {
	clnt.check()
	return clnt.hostname, clnt.hostname != ""
}

func (clnt *stubClient) HostNameFQDN() (string, bool) {
	clnt.check()
	if clnt.hostname == "" {
		return "", false
	}
	return clnt.hostname + ".local", true
}

func (clnt *stubClient) DomainName() (string, bool) {
	clnt.check()
	return "local", true
}

func (clnt *stubClient) VersionString() (string, bool) {
	clnt.check()
	return "avahi 0.8", true
}

func (clnt *stubClient) State() ClientState {
	clnt.check()
	return clnt.state
}

func (clnt *stubClient) Errno() ErrCode {
	clnt.check()
	return clnt.errno
}

func (clnt *stubClient) Free() {
	clnt.check()
	clnt.frees.Add(1)
}
