// MFP - Miulti-Function Printers and scanners toolkit
// Avahi simple poll binding
//
// Copyright (C) 2024 and up by Alexander Pevzner (pzz@apevzner.com)
// See LICENSE for license terms and conditions
//
// Avahi error codes and structured errors

package avahi

import "fmt"

// ErrCode represents an Avahi error code.
//
// Values are the same as AVAHI_ERR_xxx constants from
// <avahi-common/error.h>. The native package verifies this
// correspondence at test time.
type ErrCode int

// Error codes:
const (
	// No error
	NoError ErrCode = 0
	// Generic error code
	ErrFailure ErrCode = -1
	// Object was in a bad state
	ErrBadState ErrCode = -2
	// Invalid host name
	ErrInvalidHostName ErrCode = -3
	// Invalid domain name
	ErrInvalidDomainName ErrCode = -4
	// No suitable network protocol available
	ErrNoNetwork ErrCode = -5
	// Invalid DNS TTL
	ErrInvalidTTL ErrCode = -6
	// RR key is pattern
	ErrIsPattern ErrCode = -7
	// Name collision
	ErrCollision ErrCode = -8
	// Invalid RR
	ErrInvalidRecord ErrCode = -9

	// Invalid service name
	ErrInvalidServiceName ErrCode = -10
	// Invalid service type
	ErrInvalidServiceType ErrCode = -11
	// Invalid port number
	ErrInvalidPort ErrCode = -12
	// Invalid key
	ErrInvalidKey ErrCode = -13
	// Invalid address
	ErrInvalidAddress ErrCode = -14
	// Timeout reached
	ErrTimeout ErrCode = -15
	// Too many clients
	ErrTooManyClients ErrCode = -16
	// Too many objects
	ErrTooManyObjects ErrCode = -17
	// Too many entries
	ErrTooManyEntries ErrCode = -18
	// OS error
	ErrOS ErrCode = -19

	// Access denied
	ErrAccessDenied ErrCode = -20
	// Invalid operation
	ErrInvalidOperation ErrCode = -21
	// An unexpected D-Bus error occurred
	ErrDbusError ErrCode = -22
	// Daemon connection failed
	ErrDisconnected ErrCode = -23
	// Memory exhausted
	ErrNoMemory ErrCode = -24
	// The object passed to this function was invalid
	ErrInvalidObject ErrCode = -25
	// Daemon not running
	ErrNoDaemon ErrCode = -26
	// Invalid interface
	ErrInvalidInterface ErrCode = -27
	// Invalid protocol
	ErrInvalidProtocol ErrCode = -28
	// Invalid flags
	ErrInvalidFlags ErrCode = -29

	// Not found
	ErrNotFound ErrCode = -30
	// Configuration error
	ErrInvalidConfig ErrCode = -31
	// Verson mismatch
	ErrVersionMismatch ErrCode = -32
	// Invalid service subtype
	ErrInvalidServiceSubtype ErrCode = -33
	// Invalid packet
	ErrInvalidPacket ErrCode = -34
	// Invlaid DNS return code
	ErrInvalidDNSError ErrCode = -35
	// DNS Error: Form error
	ErrDNSFormerr ErrCode = -36
	// DNS Error: Server Failure
	ErrDNSSERVFAIL ErrCode = -37
	// DNS Error: No such domain
	ErrDNSNXDOMAIN ErrCode = -38
	// DNS Error: Not implemented
	ErrDNSNotimp ErrCode = -39

	// DNS Error: Operation refused
	ErrDNSREFUSED ErrCode = -40
	// DNS Error: YXDOMAIN
	ErrDNSYXDOMAIN ErrCode = -41
	// DNS Error: YXRRSET
	ErrDNSYXRRSET ErrCode = -42
	// DNS Error: NXRRSET
	ErrDNSNXRRSET ErrCode = -43
	// DNS Error: Not authorized
	ErrDNSNOTAUTH ErrCode = -44
	// DNS Error: NOTZONE
	ErrDNSNOTZONE ErrCode = -45

	// Invalid RDATA
	ErrInvalidRDATA ErrCode = -46
	// Invalid DNS class
	ErrInvalidDNSClass ErrCode = -47
	// Invalid DNS type
	ErrInvalidDNSType ErrCode = -48
	// Not supported
	ErrNotSupported ErrCode = -49

	// Operation not permitted
	ErrNotPermitted ErrCode = -50
	// Invalid argument
	ErrInvalidArgument ErrCode = -51
	// Is empty
	ErrIsEmpty ErrCode = -52
	// The requested operation is invalid because it is redundant
	ErrNoChange ErrCode = -53
)

// ErrorKind classifies an [Error].
type ErrorKind int

// ErrorKind values:
const (
	// Native library reported failure. Error.Code holds
	// the native result and Error.Message its text.
	KindNative ErrorKind = iota + 1

	// Bridge-detected illegal state. The native library was
	// not called.
	KindIllegalState

	// Native allocator returned NULL. There is no native
	// error code in this case.
	KindAlloc
)

// kindNames contains names for known error kinds.
var kindNames = map[ErrorKind]string{
	KindNative:       "native",
	KindIllegalState: "illegal-state",
	KindAlloc:        "alloc",
}

// String returns name of the ErrorKind.
func (kind ErrorKind) String() string {
	n := kindNames[kind]
	if n == "" {
		n = fmt.Sprintf("UNKNOWN %d", int(kind))
	}
	return n
}

// Error is the structured error returned by the fallible
// operations of Poll, Client and Translator.
type Error struct {
	Kind    ErrorKind // Error kind
	Op      string    // Operation that failed, for diagnostics
	Code    ErrCode   // Native result, KindNative only; see Poll.Iterate
	Message string    // Human-readable message
}

// Sentinel errors, for use with errors.Is. They match any
// *Error of the same Kind.
var (
	// ErrNative matches failures reported by the native library.
	ErrNative = &Error{Kind: KindNative, Message: "native library failure"}

	// ErrIllegalState matches misuse detected by this package,
	// for example iterating the event loop after it has finished.
	ErrIllegalState = &Error{Kind: KindIllegalState, Message: "illegal state"}

	// ErrAlloc matches failures to allocate a native object.
	ErrAlloc = &Error{Kind: KindAlloc, Message: "allocation failed"}
)

// Error returns error string.
// It implements error interface.
func (err *Error) Error() string {
	return "avahi: " + err.Message
}

// Is reports whether target is an *Error of the same Kind.
// Used by errors.Is.
func (err *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == err.Kind
}

// errIllegalState returns a new KindIllegalState error.
func errIllegalState(op, msg string) *Error {
	return &Error{Kind: KindIllegalState, Op: op, Message: msg}
}

// errAlloc returns a new KindAlloc error.
func errAlloc(op, msg string) *Error {
	return &Error{Kind: KindAlloc, Op: op, Message: msg}
}
