// MFP - Miulti-Function Printers and scanners toolkit
// Avahi simple poll binding
//
// Copyright (C) 2024 and up by Alexander Pevzner (pzz@apevzner.com)
// See LICENSE for license terms and conditions
//
// CGo glue
//
//go:build cgo && (linux || freebsd)

package native

// #cgo pkg-config: avahi-client
//
// #include <avahi-client/client.h>
import "C"
