// MFP - Miulti-Function Printers and scanners toolkit
// Avahi simple poll binding
//
// Copyright (C) 2024 and up by Alexander Pevzner (pzz@apevzner.com)
// See LICENSE for license terms and conditions
//
// Avahi addresses

package avahi

import (
	"encoding/binary"
	"net/netip"
)

// Address mirrors the native AvahiAddress.
//
// IPv4 holds the address in the network byte order, as it is stored
// in memory, so 192.168.100.100 is 0x6464a8c0 on little-endian hosts.
type Address struct {
	Proto Protocol // ProtocolIP4 or ProtocolIP6
	IPv4  uint32   // For ProtocolIP4
	IPv6  [16]byte // For ProtocolIP6
}

// AddressFrom makes Address from netip.Addr.
// IPv4-mapped IPv6 addresses are converted to plain IPv4.
func AddressFrom(addr netip.Addr) Address {
	addr = addr.Unmap()
	if addr.Is4() {
		a4 := addr.As4()
		return Address{
			Proto: ProtocolIP4,
			IPv4:  binary.NativeEndian.Uint32(a4[:]),
		}
	}
	return Address{Proto: ProtocolIP6, IPv6: addr.As16()}
}

// Addr returns Address as netip.Addr.
//
// It returns invalid netip.Addr if Proto is neither ProtocolIP4
// nor ProtocolIP6.
func (addr Address) Addr() netip.Addr {
	switch addr.Proto {
	case ProtocolIP4:
		var a4 [4]byte
		binary.NativeEndian.PutUint32(a4[:], addr.IPv4)
		return netip.AddrFrom4(a4)
	case ProtocolIP6:
		return netip.AddrFrom16(addr.IPv6)
	}
	return netip.Addr{}
}

// String returns Address as text, the same way as
// avahi_address_snprint does.
func (addr Address) String() string {
	ip := addr.Addr()
	if !ip.IsValid() {
		return ""
	}
	return ip.String()
}
