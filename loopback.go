// MFP - Miulti-Function Printers and scanners toolkit
// Avahi simple poll binding
//
// Copyright (C) 2024 and up by Alexander Pevzner (pzz@apevzner.com)
// See LICENSE for license terms and conditions
//
// Loopback interface

package avahi

import (
	"fmt"
	"net"
	"sync/atomic"
)

// Cached loopback interface index
var loopback atomic.Int32

func init() {
	loopback.Store(-1)
}

// Loopback returns the loopback NetworkInterface.
//
// This function may fail, if [net.Interfaces] fails or there
// is no loopback interface in the response.
func Loopback() (NetworkInterface, error) {
	// Lookup cache
	idx := loopback.Load()
	if idx != -1 {
		return InterfaceAt(uint32(idx)), nil
	}

	// Consult net.Interfaces
	ift, err := net.Interfaces()
	if err != nil {
		return InterfaceUnspec, fmt.Errorf("avahi.Loopback: %w", err)
	}

	for _, ifi := range ift {
		if ifi.Flags&net.FlagLoopback != 0 {
			loopback.Store(int32(ifi.Index))
			return InterfaceAt(uint32(ifi.Index)), nil
		}
	}

	return InterfaceUnspec, fmt.Errorf("avahi.Loopback: interface not found")
}

// MustLoopback returns the loopback NetworkInterface.
//
// This is convenience wrapper around the [Loopback] function. If
// Loopback function fails, MustLoopback panics instead of returning
// the error.
func MustLoopback() NetworkInterface {
	ifi, err := Loopback()
	if err != nil {
		panic(err)
	}
	return ifi
}
