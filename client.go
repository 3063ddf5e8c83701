// MFP - Miulti-Function Printers and scanners toolkit
// Avahi simple poll binding
//
// Copyright (C) 2024 and up by Alexander Pevzner (pzz@apevzner.com)
// See LICENSE for license terms and conditions
//
// Avahi Client

package avahi

import (
	"sync"

	"go.uber.org/zap"
)

// Client owns the native [AvahiClient], created against a [Poll].
//
// Client keeps its Poll alive: the native event loop is not freed
// until the Client is closed, even if Poll.Close was called before.
//
// When Client is not in use anymore, it must be closed using the
// Client.Close call to free associated resources.
//
// Client may be shared between goroutines for the read-only queries,
// as long as the caller serializes them with respect to the Poll
// iteration, as the native library requires.
//
// [AvahiClient]: https://avahi.org/doxygen/html/client_8h.html#a3d65e9ea7182c44fa8df04a72f1a56bb
type Client struct {
	native NativeClient // Underlying AvahiClient
	poll   *Poll        // Event loop, shared
	tr     Translator   // Error translator
	log    *zap.Logger  // Logger
	once   sync.Once    // Close once
}

// ClientConfig contains parameters for [NewClient].
//
// Flags, Callback and UserData are passed to avahi_client_new
// unmodified.
type ClientConfig struct {
	Poll     *Poll          // Event loop to run the Client
	Flags    ClientFlags    // Client flags
	Callback ClientCallback // State change callback, may be nil
	UserData any            // Passed to Callback
}

// NewClient creates a new [Client].
//
// If the native client cannot be created, NewClient returns the
// KindNative error, translated from the native error code, and
// the Poll is not retained.
func NewClient(cfg ClientConfig) (*Client, error) {
	const op = "avahi_client_new"

	p := cfg.Poll
	if p == nil {
		return nil, errIllegalState(op, "AvahiSimplePoll is nil")
	}

	if !p.acquire() {
		return nil, errIllegalState(op, "AvahiSimplePoll already closed")
	}

	native, rc := p.tr.lib.ClientNew(p.api(), cfg.Flags,
		cfg.Callback, cfg.UserData)

	if native == nil {
		p.release()
		return nil, p.tr.NativeError(op, rc)
	}

	clnt := &Client{
		native: native,
		poll:   p,
		tr:     p.tr,
		log:    p.log,
	}

	clnt.log.Debug("client created", zap.Stringer("flags", cfg.Flags))

	return clnt, nil
}

// Close closes a [Client].
//
// The native client is freed before its Poll reference is released.
// Repeated calls are no-op.
func (clnt *Client) Close() {
	clnt.once.Do(func() {
		clnt.native.Free()
		clnt.log.Debug("client freed")
		clnt.poll.release()
	})
}

// Poll returns the [Poll] the Client was created against.
//
// If the owner of the Poll has already closed it, the returned
// Poll refuses Iterate, Run and NewClient with the KindIllegalState
// error. Its Quit still reaches the native event loop, which is
// kept alive by the Client until Client.Close.
func (clnt *Client) Poll() *Poll {
	return clnt.poll
}

// State returns the current [ClientState].
func (clnt *Client) State() ClientState {
	return clnt.native.State()
}

// HostName returns host name (e.g., "name").
//
// The returned string is a copy of the text owned by the
// native client.
func (clnt *Client) HostName() (string, error) {
	return clnt.query("avahi_client_get_host_name", clnt.native.HostName)
}

// HostFQDN returns FQDN host name (e.g., "name.local")
func (clnt *Client) HostFQDN() (string, error) {
	return clnt.query("avahi_client_get_host_name_fqdn",
		clnt.native.HostNameFQDN)
}

// DomainName returns domain name (e.g., "local")
func (clnt *Client) DomainName() (string, error) {
	return clnt.query("avahi_client_get_domain_name",
		clnt.native.DomainName)
}

// Version returns avahi-daemon version string
func (clnt *Client) Version() (string, error) {
	return clnt.query("avahi_client_get_version_string",
		clnt.native.VersionString)
}

// query performs a string query. The NULL result is returned
// as the latest error of the native client.
func (clnt *Client) query(op string, fn func() (string, bool)) (string, error) {
	s, ok := fn()
	if !ok {
		return "", clnt.tr.LastError(op, clnt.native)
	}
	return s, nil
}
