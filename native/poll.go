// MFP - Miulti-Function Printers and scanners toolkit
// Avahi simple poll binding
//
// Copyright (C) 2024 and up by Alexander Pevzner (pzz@apevzner.com)
// See LICENSE for license terms and conditions
//
// AvahiSimplePoll
//
//go:build cgo && (linux || freebsd)

package native

import "github.com/OpenPrinting/go-avahi-simple"

// #include <avahi-common/simple-watch.h>
import "C"

// simplePoll wraps *C.AvahiSimplePoll
type simplePoll struct {
	native *C.AvahiSimplePoll
}

// pollAPI wraps the AvahiPoll dispatcher of the simplePoll.
type pollAPI struct {
	native *C.AvahiPoll
}

// Loop runs the event loop until quit or error.
func (p *simplePoll) Loop() int {
	return int(C.avahi_simple_poll_loop(p.native))
}

// Iterate runs a single iteration of the event loop.
func (p *simplePoll) Iterate(sleepTime int32) int {
	return int(C.avahi_simple_poll_iterate(p.native, C.int(sleepTime)))
}

// Quit requests the event loop to quit.
func (p *simplePoll) Quit() {
	C.avahi_simple_poll_quit(p.native)
}

// Get returns the AvahiPoll dispatcher.
func (p *simplePoll) Get() avahi.PollAPI {
	return pollAPI{native: (*C.AvahiPoll)(C.avahi_simple_poll_get(p.native))}
}

// Free frees the AvahiSimplePoll.
func (p *simplePoll) Free() {
	C.avahi_simple_poll_free(p.native)
	p.native = nil
}
