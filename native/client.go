// MFP - Miulti-Function Printers and scanners toolkit
// Avahi simple poll binding
//
// Copyright (C) 2024 and up by Alexander Pevzner (pzz@apevzner.com)
// See LICENSE for license terms and conditions
//
// AvahiClient
//
//go:build cgo && (linux || freebsd)

package native

import (
	"runtime/cgo"
	"unsafe"

	"github.com/OpenPrinting/go-avahi-simple"
)

// #include <stdlib.h>
// #include <stdint.h>
// #include <avahi-client/client.h>
//
// void clientCallback (AvahiClient*, AvahiClientState, void*);
import "C"

// client wraps *C.AvahiClient
type client struct {
	native   *C.AvahiClient // Underlying AvahiClient
	handle   cgo.Handle     // Handle to clientContext
	userdata unsafe.Pointer // C memory that holds the handle
}

// clientContext is what clientCallback receives.
type clientContext struct {
	callback avahi.ClientCallback
	userdata any
}

// newClient creates a new client.
func newClient(poll pollAPI, flags avahi.ClientFlags,
	callback avahi.ClientCallback, userdata any) (*client, avahi.ErrCode) {

	// The handle is stored in C memory, as AvahiClient keeps
	// the userdata pointer for its lifetime.
	clnt := &client{
		handle: cgo.NewHandle(&clientContext{callback, userdata}),
		userdata: C.malloc(
			C.size_t(unsafe.Sizeof(C.uintptr_t(0)))),
	}

	if clnt.userdata == nil {
		clnt.handle.Delete()
		return nil, avahi.ErrNoMemory
	}

	*(*C.uintptr_t)(clnt.userdata) = C.uintptr_t(clnt.handle)

	var rc C.int
	clnt.native = C.avahi_client_new(
		poll.native,
		C.AvahiClientFlags(flags),
		C.AvahiClientCallback(C.clientCallback),
		clnt.userdata,
		&rc)

	if clnt.native == nil {
		clnt.release()
		return nil, avahi.ErrCode(rc)
	}

	return clnt, avahi.NoError
}

// HostName returns host name
func (clnt *client) HostName() (string, bool) {
	return goString(C.avahi_client_get_host_name(clnt.native))
}

// HostNameFQDN returns FQDN host name
func (clnt *client) HostNameFQDN() (string, bool) {
	return goString(C.avahi_client_get_host_name_fqdn(clnt.native))
}

// DomainName returns domain name
func (clnt *client) DomainName() (string, bool) {
	return goString(C.avahi_client_get_domain_name(clnt.native))
}

// VersionString returns avahi-daemon version string
func (clnt *client) VersionString() (string, bool) {
	return goString(C.avahi_client_get_version_string(clnt.native))
}

// State returns client state
func (clnt *client) State() avahi.ClientState {
	return avahi.ClientState(C.avahi_client_get_state(clnt.native))
}

// Errno returns an error code of latest failed operation.
func (clnt *client) Errno() avahi.ErrCode {
	return avahi.ErrCode(C.avahi_client_errno(clnt.native))
}

// Free frees the AvahiClient.
func (clnt *client) Free() {
	C.avahi_client_free(clnt.native)
	clnt.native = nil
	clnt.release()
}

// release releases resources, allocated for callback.
func (clnt *client) release() {
	C.free(clnt.userdata)
	clnt.userdata = nil
	clnt.handle.Delete()
}

// goString converts C string to Go, reporting NULL.
func goString(s *C.char) (string, bool) {
	if s == nil {
		return "", false
	}
	return C.GoString(s), true
}

// clientCallback called by AvahiClient to report client state change
//
//export clientCallback
func clientCallback(avahiClient *C.AvahiClient,
	s C.AvahiClientState, p unsafe.Pointer) {

	h := cgo.Handle(*(*C.uintptr_t)(p))
	ctx := h.Value().(*clientContext)

	if ctx.callback != nil {
		ctx.callback(avahi.ClientState(s), ctx.userdata)
	}
}
