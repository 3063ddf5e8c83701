// MFP - Miulti-Function Printers and scanners toolkit
// Avahi simple poll binding
//
// Copyright (C) 2024 and up by Alexander Pevzner (pzz@apevzner.com)
// See LICENSE for license terms and conditions
//
// Logging

package avahi

import (
	"sync/atomic"

	"go.uber.org/zap"
)

// Package-wide logger. Silent by default.
var logger atomic.Pointer[zap.Logger]

func init() {
	logger.Store(zap.NewNop())
}

// SetLogger sets the package-wide logger, used by the formatting
// helpers and as default for new [Poll] objects.
//
// Passing nil restores the default, silent logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger.Store(l.Named("avahi"))
}

// log returns the package-wide logger.
func log() *zap.Logger {
	return logger.Load()
}
