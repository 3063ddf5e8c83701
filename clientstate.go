// MFP - Miulti-Function Printers and scanners toolkit
// Avahi simple poll binding
//
// Copyright (C) 2024 and up by Alexander Pevzner (pzz@apevzner.com)
// See LICENSE for license terms and conditions
//
// Avahi Client State and flags

package avahi

import (
	"fmt"
	"strings"
)

// ClientState represents a [Client] state.
//
// Values are the same as AvahiClientState from <avahi-client/client.h>.
type ClientState int

// ClientState values:
const (
	// Invalid (zero) state
	ClientStateInvalid ClientState = 0

	// Avahi server is being registering host RRs on a network
	ClientStateRegistering ClientState = 1

	// Ahavi server is up and running
	ClientStateRunning ClientState = 2

	// Avahi server was not able to register host RRs due to collision
	// with some another host.
	//
	// Administrator needs to update the host name to avoid the
	// collision.
	ClientStateCollision ClientState = 3

	// Avahi server failure.
	ClientStateFailure ClientState = 100

	// Avahi Client is trying to connect the server.
	ClientStateConnecting ClientState = 101
)

// clientStateNames contains names for known client states.
var clientStateNames = map[ClientState]string{
	ClientStateInvalid:     "invalid",
	ClientStateRegistering: "registering",
	ClientStateRunning:     "running",
	ClientStateCollision:   "collision",
	ClientStateFailure:     "failure",
	ClientStateConnecting:  "connecting",
}

// String returns a name of the ClientState.
func (state ClientState) String() string {
	n := clientStateNames[state]
	if n == "" {
		n = fmt.Sprintf("UNKNOWN 0x%4.4x", int(state))
	}
	return n
}

// ClientFlags modify [Client] behavior.
//
// Values are the same as AvahiClientFlags.
type ClientFlags int

// ClientFlags values:
const (
	// Don't read user configuration
	ClientIgnoreUserConfig ClientFlags = 1 << iota

	// Don't fail if the daemon is not available when
	// the client is created. Instead, enter the
	// ClientStateConnecting state and wait for the daemon.
	ClientNoFail
)

// String returns ClientFlags as string, for debugging
func (flags ClientFlags) String() string {
	s := []string{}

	if flags&ClientIgnoreUserConfig != 0 {
		s = append(s, "ignore-user-config")
	}
	if flags&ClientNoFail != 0 {
		s = append(s, "no-fail")
	}

	if rest := flags &^ (ClientIgnoreUserConfig | ClientNoFail); rest != 0 {
		s = append(s, fmt.Sprintf("0x%x", int(rest)))
	}

	return strings.Join(s, ",")
}
