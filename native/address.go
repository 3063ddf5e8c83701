// MFP - Miulti-Function Printers and scanners toolkit
// Avahi simple poll binding
//
// Copyright (C) 2024 and up by Alexander Pevzner (pzz@apevzner.com)
// See LICENSE for license terms and conditions
//
// Address to text conversion
//
//go:build cgo && (linux || freebsd)

package native

import (
	"unsafe"

	"github.com/OpenPrinting/go-avahi-simple"
)

// #include <avahi-common/address.h>
import "C"

// AddressToString formats the address with avahi_address_snprint.
//
// It returns empty string if Avahi cannot format the address.
func AddressToString(addr avahi.Address) string {
	var caddr C.AvahiAddress
	caddr.proto = C.AvahiProtocol(addr.Proto)

	switch addr.Proto {
	case avahi.ProtocolIP4:
		*(*uint32)(unsafe.Pointer(&caddr.data[0])) = addr.IPv4
	case avahi.ProtocolIP6:
		copy((*[16]byte)(unsafe.Pointer(&caddr.data[0]))[:], addr.IPv6[:])
	default:
		return ""
	}

	var buf [C.AVAHI_ADDRESS_STR_MAX]C.char
	s := C.avahi_address_snprint(&buf[0], C.size_t(len(buf)), &caddr)
	if s == nil {
		return ""
	}

	return C.GoString(s)
}
