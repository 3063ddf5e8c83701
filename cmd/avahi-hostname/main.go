// MFP - Miulti-Function Printers and scanners toolkit
// Avahi simple poll binding
//
// Copyright (C) 2024 and up by Alexander Pevzner (pzz@apevzner.com)
// See LICENSE for license terms and conditions
//
// avahi-hostname: print host name, as seen by avahi-daemon
//
//go:build cgo && (linux || freebsd)

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/OpenPrinting/go-avahi-simple"
	"github.com/OpenPrinting/go-avahi-simple/native"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Command-line flags
var (
	timeout = flag.Duration("timeout", 5*time.Second,
		"how long to wait for avahi-daemon")
	debug = flag.Bool("debug", false, "enable debug logging")
	fqdn  = flag.Bool("fqdn", false, "print FQDN host name")
)

func main() {
	flag.Parse()

	log := zap.NewNop()
	if *debug {
		var err error
		log, err = zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", err)
			os.Exit(1)
		}
		defer log.Sync()
	}

	avahi.SetLogger(log)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	ctx, cancel = context.WithTimeout(ctx, *timeout)
	defer cancel()

	name, err := hostname(ctx, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "avahi-hostname: %s\n", err)
		os.Exit(1)
	}

	fmt.Println(name)
}

// hostname drives the event loop until the client is running,
// then returns the host name.
func hostname(ctx context.Context, log *zap.Logger) (string, error) {
	poll, err := avahi.NewPoll(native.Library(), avahi.WithLogger(log))
	if err != nil {
		return "", err
	}
	defer poll.Close()

	running := make(chan struct{})
	clnt, err := avahi.NewClient(avahi.ClientConfig{
		Poll:  poll,
		Flags: avahi.ClientNoFail,
		Callback: func(state avahi.ClientState, _ any) {
			log.Debug("client state", zap.Stringer("state", state))
			if state == avahi.ClientStateRunning {
				select {
				case <-running:
				default:
					close(running)
				}
			}
		},
	})
	if err != nil {
		return "", err
	}
	defer clnt.Close()

	var name string
	done := make(chan struct{})
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(done)
		for {
			err := poll.Iterate(100 * time.Millisecond)
			if err != nil {
				return err
			}

			select {
			case <-running:
				if *fqdn {
					name, err = clnt.HostFQDN()
				} else {
					name, err = clnt.HostName()
				}
				return err
			default:
			}
		}
	})

	g.Go(func() error {
		select {
		case <-gctx.Done():
			poll.Quit()
		case <-done:
		}
		return nil
	})

	err = g.Wait()
	if err != nil && ctx.Err() != nil && errors.Is(err, avahi.ErrNative) {
		return "", fmt.Errorf("avahi-daemon not ready: %w", context.Cause(ctx))
	}

	if err != nil {
		return "", err
	}

	return name, nil
}
