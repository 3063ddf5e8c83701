// MFP - Miulti-Function Printers and scanners toolkit
// Avahi simple poll binding
//
// Copyright (C) 2024 and up by Alexander Pevzner (pzz@apevzner.com)
// See LICENSE for license terms and conditions
//
// avahi.Library implementation
//
//go:build cgo && (linux || freebsd)

package native

import (
	"unsafe"

	"github.com/OpenPrinting/go-avahi-simple"
)

// #include <stdlib.h>
// #include <avahi-common/alternative.h>
// #include <avahi-common/error.h>
// #include <avahi-common/malloc.h>
import "C"

// library implements avahi.Library
type library struct{}

// Library returns the [avahi.Library], backed by libavahi-client.
func Library() avahi.Library {
	return library{}
}

// SimplePollNew creates a new AvahiSimplePoll.
func (library) SimplePollNew() avahi.NativePoll {
	p := C.avahi_simple_poll_new()
	if p == nil {
		return nil
	}
	return &simplePoll{native: p}
}

// ClientNew creates a new AvahiClient.
func (library) ClientNew(api avahi.PollAPI, flags avahi.ClientFlags,
	callback avahi.ClientCallback, userdata any) (avahi.NativeClient, avahi.ErrCode) {

	poll, ok := api.(pollAPI)
	if !ok || poll.native == nil {
		return nil, avahi.ErrInvalidObject
	}

	clnt, rc := newClient(poll, flags, callback, userdata)
	if clnt == nil {
		return nil, rc
	}

	return clnt, avahi.NoError
}

// Strerror returns the error message for the code.
func (library) Strerror(code avahi.ErrCode) string {
	return C.GoString(C.avahi_strerror(C.int(code)))
}

// AlternativeServiceName returns alternative service name.
func (library) AlternativeServiceName(name string) string {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	alt := C.avahi_alternative_service_name(cname)
	if alt == nil {
		return name
	}
	defer C.avahi_free(unsafe.Pointer(alt))

	return C.GoString(alt)
}
