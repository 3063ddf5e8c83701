// MFP - Miulti-Function Printers and scanners toolkit
// Avahi simple poll binding
//
// Copyright (C) 2024 and up by Alexander Pevzner (pzz@apevzner.com)
// See LICENSE for license terms and conditions
//
// Avahi IP4/IP6 protocol

package avahi

import "fmt"

// Protocol specifies IP4/IP6 protocol
//
// Values are the same as AvahiProtocol.
type Protocol int

// Protocol values:
const (
	ProtocolIP4    Protocol = 0
	ProtocolIP6    Protocol = 1
	ProtocolUnspec Protocol = -1
)

// protocolNames contains names for valid Protocol values.
var protocolNames = map[Protocol]string{
	ProtocolIP4:    "ip4",
	ProtocolIP6:    "ip6",
	ProtocolUnspec: "unspec",
}

// String returns name of the Protocol.
func (proto Protocol) String() string {
	n := protocolNames[proto]
	if n == "" {
		n = fmt.Sprintf("UNKNOWN %d", int(proto))
	}
	return n

}
