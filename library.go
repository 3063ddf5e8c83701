// MFP - Miulti-Function Printers and scanners toolkit
// Avahi simple poll binding
//
// Copyright (C) 2024 and up by Alexander Pevzner (pzz@apevzner.com)
// See LICENSE for license terms and conditions
//
// Native library boundary

package avahi

// Library is the set of native Avahi entry points this package
// depends on.
//
// The CGo implementation lives in the native subpackage. Every
// value returned by a Library is exclusively owned by the [Poll]
// or [Client] that requested it.
type Library interface {
	// SimplePollNew wraps avahi_simple_poll_new.
	// It returns nil if the native allocator fails.
	SimplePollNew() NativePoll

	// ClientNew wraps avahi_client_new.
	//
	// On failure it returns nil and the error code that
	// avahi_client_new wrote into its out-parameter.
	ClientNew(api PollAPI, flags ClientFlags,
		callback ClientCallback, userdata any) (NativeClient, ErrCode)

	// Strerror wraps avahi_strerror.
	Strerror(code ErrCode) string

	// AlternativeServiceName wraps avahi_alternative_service_name.
	AlternativeServiceName(name string) string
}

// NativePoll is the native AvahiSimplePoll object.
type NativePoll interface {
	// Loop wraps avahi_simple_poll_loop.
	Loop() int

	// Iterate wraps avahi_simple_poll_iterate. The sleepTime
	// is in milliseconds, -1 means forever.
	//
	// Returns -1 on error, 0 on success and 1 if a quit
	// request has been scheduled.
	Iterate(sleepTime int32) int

	// Quit wraps avahi_simple_poll_quit.
	// It must be safe to call from any goroutine.
	Quit()

	// Get wraps avahi_simple_poll_get.
	Get() PollAPI

	// Free wraps avahi_simple_poll_free.
	Free()
}

// PollAPI is the opaque native AvahiPoll dispatcher, as returned
// by avahi_simple_poll_get. It is passed to [Library.ClientNew]
// unmodified.
type PollAPI any

// NativeClient is the native AvahiClient object.
//
// String queries return false when the native call returned NULL.
type NativeClient interface {
	HostName() (string, bool)
	HostNameFQDN() (string, bool)
	DomainName() (string, bool)
	VersionString() (string, bool)
	State() ClientState
	Errno() ErrCode
	Free()
}

// ClientCallback receives [ClientState] changes of the native client.
// It is called by the native library from inside of [Poll.Iterate]
// or [Poll.Run], with the userdata given in [ClientConfig].
type ClientCallback func(state ClientState, userdata any)
