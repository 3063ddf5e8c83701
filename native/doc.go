// MFP - Miulti-Function Printers and scanners toolkit
// Avahi simple poll binding
//
// Copyright (C) 2024 and up by Alexander Pevzner (pzz@apevzner.com)
// See LICENSE for license terms and conditions
//
// Package documentation

// Package native is the CGo implementation of [avahi.Library],
// on top of libavahi-client.
//
// It requires CGo and the avahi-client pkg-config package, and is
// available on Linux and FreeBSD only.
package native
