// MFP - Miulti-Function Printers and scanners toolkit
// Avahi simple poll binding
//
// Copyright (C) 2024 and up by Alexander Pevzner (pzz@apevzner.com)
// See LICENSE for license terms and conditions
//
// Network interface indices

package avahi

import "fmt"

// IfIndex specifies network interface index, as Avahi
// understands it.
type IfIndex int

// IfIndex values:
const (
	IfIndexUnspec IfIndex = -1
)

// NetworkInterface selects the network interface a request
// applies to: either all of them, or the one with given index.
type NetworkInterface struct {
	index uint32
	set   bool
}

// InterfaceUnspec means "all network interfaces".
var InterfaceUnspec = NetworkInterface{}

// InterfaceAt returns the NetworkInterface for the interface index.
func InterfaceAt(index uint32) NetworkInterface {
	return NetworkInterface{index: index, set: true}
}

// Index returns the interface index. ok is false for InterfaceUnspec.
func (ifi NetworkInterface) Index() (index uint32, ok bool) {
	return ifi.index, ifi.set
}

// String returns NetworkInterface as string, for debugging
func (ifi NetworkInterface) String() string {
	if !ifi.set {
		return "unspec"
	}
	return fmt.Sprintf("if#%d", ifi.index)
}

// InterfaceIndex converts NetworkInterface into the Avahi
// interface index.
func InterfaceIndex(ifi NetworkInterface) IfIndex {
	if !ifi.set {
		return IfIndexUnspec
	}
	return IfIndex(ifi.index)
}

// InterfaceFromIndex converts the Avahi interface index into
// the NetworkInterface.
func InterfaceFromIndex(idx IfIndex) NetworkInterface {
	if idx == IfIndexUnspec {
		return InterfaceUnspec
	}
	return InterfaceAt(uint32(idx))
}
