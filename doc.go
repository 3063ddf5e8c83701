// MFP - Miulti-Function Printers and scanners toolkit
// Avahi simple poll binding
//
// Copyright (C) 2024 and up by Alexander Pevzner (pzz@apevzner.com)
// See LICENSE for license terms and conditions
//
// Package documentation

/*
Package avahi provides safe lifecycle handles for the [Avahi] simple
event loop (AvahiSimplePoll) and the Avahi client (AvahiClient).

Avahi is the standard implementation of Multicast DNS and DNS-SD for Linux.
Its C API is single-threaded and callback-driven: the caller creates
the event loop, creates a client against it, drives the loop, and finally
destroys the client and then the loop, in exactly this order. This package
takes care of that order and translates native error codes into Go errors.

The package itself is pure Go. Native calls go through the [Library]
interface; the CGo implementation is in the native subpackage:

	poll, err := avahi.NewPoll(native.Library())
	if err != nil {
		return err
	}
	defer poll.Close()

	clnt, err := avahi.NewClient(avahi.ClientConfig{
		Poll:  poll,
		Flags: avahi.ClientNoFail,
	})
	if err != nil {
		return err
	}
	defer clnt.Close()

	for {
		err = poll.Iterate(100 * time.Millisecond)
		if err != nil {
			break
		}
		...
	}

# The event loop

The [Poll] is driven by its owner, either with the blocking [Poll.Run] or
with [Poll.Iterate], which performs one bounded pass over pending events.
Client callbacks are invoked by the native library from inside of these
calls. [Poll.Quit] may be called from another goroutine to terminate the
loop at its next safe point.

When the native loop reports that it has quit or failed, the Poll enters
the finished state, which is never left. Running or iterating the finished
Poll fails with the [KindIllegalState] error, and the native loop is not
touched anymore.

# Ownership

The [Client] keeps its Poll alive. The native event loop is freed when
the Poll and all Clients created against it are closed, in any order.
The native client is always freed before its event loop.

# Errors

Errors returned by [Poll], [Client] and [Translator] operations are of
the [*Error] type. Its [ErrorKind] distinguishes failures reported by the native library ([KindNative]), which
carry the native code and message, from misuse detected by this package
([KindIllegalState]) and from native allocation failures ([KindAlloc]).
Argument validation of [NewServiceType] and the [Loopback] lookup are
not native operations and return plain errors.

# Formatting helpers

[FormatServiceType], [FormatSubType] and [FormatBrowserType] build the
service type strings Avahi expects; [InterfaceIndex] and
[InterfaceFromIndex] map network interfaces to Avahi interface indices.

[Avahi]: https://www.avahi.org/
*/
package avahi
