// MFP - Miulti-Function Printers and scanners toolkit
// Avahi simple poll binding
//
// Copyright (C) 2024 and up by Alexander Pevzner (pzz@apevzner.com)
// See LICENSE for license terms and conditions
//
// Avahi Client test

package avahi

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient(t *testing.T) {
	lib := &stubLibrary{}
	p, err := NewPoll(lib)
	require.NoError(t, err)
	defer p.Close()

	var states []ClientState
	clnt, err := NewClient(ClientConfig{
		Poll:  p,
		Flags: ClientNoFail | ClientIgnoreUserConfig,
		Callback: func(state ClientState, userdata any) {
			states = append(states, state)
			assert.Equal(t, "cookie", userdata)
		},
		UserData: "cookie",
	})
	require.NoError(t, err)
	defer clnt.Close()

	require.Len(t, lib.clients, 1)
	native := lib.clients[0]
	native.hostname = "myhost"

	assert.Equal(t, ClientNoFail|ClientIgnoreUserConfig, native.flags)
	assert.Equal(t, "cookie", native.userdata)
	assert.Equal(t, []ClientState{ClientStateConnecting}, states)
	assert.Equal(t, ClientStateConnecting, clnt.State())
	assert.Same(t, p, clnt.Poll())

	name, err := clnt.HostName()
	assert.NoError(t, err)
	assert.Equal(t, "myhost", name)

	fqdn, err := clnt.HostFQDN()
	assert.NoError(t, err)
	assert.Equal(t, "myhost.local", fqdn)

	domain, err := clnt.DomainName()
	assert.NoError(t, err)
	assert.Equal(t, "local", domain)

	version, err := clnt.Version()
	assert.NoError(t, err)
	assert.Equal(t, "avahi 0.8", version)
}

func TestClientHostNameError(t *testing.T) {
	lib := &stubLibrary{}
	p, err := NewPoll(lib)
	require.NoError(t, err)
	defer p.Close()

	clnt, err := NewClient(ClientConfig{Poll: p})
	require.NoError(t, err)
	defer clnt.Close()

	lib.clients[0].errno = ErrNoDaemon

	name, err := clnt.HostName()
	assert.Empty(t, name)
	assert.ErrorIs(t, err, ErrNative)
	assert.EqualError(t, err, "avahi: Daemon not running")

	var e *Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, ErrNoDaemon, e.Code)
	assert.Equal(t, "avahi_client_get_host_name", e.Op)
}

func TestClientNewFailure(t *testing.T) {
	lib := &stubLibrary{clientErr: ErrNoDaemon}
	p, err := NewPoll(lib)
	require.NoError(t, err)

	clnt, err := NewClient(ClientConfig{Poll: p})
	assert.Nil(t, clnt)
	assert.ErrorIs(t, err, ErrNative)

	var e *Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, ErrNoDaemon, e.Code)
	assert.Equal(t, "Daemon not running", e.Message)

	// Failed client holds no reference to the poll
	p.Close()
	assert.EqualValues(t, 1, lib.poll.frees.Load())
}

func TestClientNilPoll(t *testing.T) {
	clnt, err := NewClient(ClientConfig{})
	assert.Nil(t, clnt)
	assert.ErrorIs(t, err, ErrIllegalState)
}

func TestClientClosedPoll(t *testing.T) {
	p, native := newTestPoll(t)
	p.Close()

	clnt, err := NewClient(ClientConfig{Poll: p})
	assert.Nil(t, clnt)
	assert.ErrorIs(t, err, ErrIllegalState)
	assert.EqualValues(t, 1, native.frees.Load())
}

// TestClientOutlivesPoll closes Poll before Client. The native
// poll must be freed only after the native client.
func TestClientOutlivesPoll(t *testing.T) {
	lib := &stubLibrary{}
	p, err := NewPoll(lib)
	require.NoError(t, err)

	clnt, err := NewClient(ClientConfig{Poll: p})
	require.NoError(t, err)

	p.Close()
	assert.EqualValues(t, 0, lib.poll.frees.Load())

	// stubClient panics if its poll is already freed
	_, err = clnt.DomainName()
	assert.NoError(t, err)

	clnt.Close()
	assert.EqualValues(t, 1, lib.clients[0].frees.Load())
	assert.EqualValues(t, 1, lib.poll.frees.Load())

	clnt.Close()
	assert.EqualValues(t, 1, lib.clients[0].frees.Load())
	assert.EqualValues(t, 1, lib.poll.frees.Load())
}

func TestClientPollAfterClose(t *testing.T) {
	lib := &stubLibrary{}
	p, err := NewPoll(lib)
	require.NoError(t, err)

	clnt, err := NewClient(ClientConfig{Poll: p})
	require.NoError(t, err)

	p.Close()

	assert.Same(t, p, clnt.Poll())
	assert.ErrorIs(t, clnt.Poll().Iterate(0), ErrIllegalState)
	assert.ErrorIs(t, clnt.Poll().Run(), ErrIllegalState)

	_, err = NewClient(ClientConfig{Poll: clnt.Poll()})
	assert.ErrorIs(t, err, ErrIllegalState)

	// Quit reaches the loop, kept alive by the Client
	clnt.Poll().Quit()
	assert.False(t, lib.poll.freedInQuit.Load())
	assert.EqualValues(t, 0, lib.poll.frees.Load())

	select {
	case <-lib.poll.quit:
	default:
		t.Error("Quit not delivered to the native loop")
	}

	clnt.Close()
	assert.EqualValues(t, 1, lib.poll.frees.Load())

	clnt.Poll().Quit()
	assert.False(t, lib.poll.freedInQuit.Load())
}

func TestClientsSharePoll(t *testing.T) {
	lib := &stubLibrary{}
	p, err := NewPoll(lib)
	require.NoError(t, err)

	const n = 16
	clients := make([]*Client, n)
	for i := range clients {
		clients[i], err = NewClient(ClientConfig{Poll: p})
		require.NoError(t, err)
	}

	p.Close()

	var wg sync.WaitGroup
	for _, clnt := range clients {
		wg.Add(1)
		go func(clnt *Client) {
			defer wg.Done()
			clnt.Close()
		}(clnt)
	}
	wg.Wait()

	assert.EqualValues(t, 1, lib.poll.frees.Load())
	for _, native := range lib.clients {
		assert.EqualValues(t, 1, native.frees.Load())
	}
}

func TestClientFlagsString(t *testing.T) {
	assert.Equal(t, "", ClientFlags(0).String())
	assert.Equal(t, "no-fail", ClientNoFail.String())
	assert.Equal(t, "ignore-user-config,no-fail",
		(ClientNoFail | ClientIgnoreUserConfig).String())
	assert.Equal(t, "no-fail,0x8", (ClientNoFail | 8).String())
}

func TestClientStateString(t *testing.T) {
	assert.Equal(t, "running", ClientStateRunning.String())
	assert.Equal(t, "connecting", ClientStateConnecting.String())
	assert.Equal(t, "UNKNOWN 0x0007", ClientState(7).String())
}
