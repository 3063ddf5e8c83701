// MFP - Miulti-Function Printers and scanners toolkit
// Avahi simple poll binding
//
// Copyright (C) 2024 and up by Alexander Pevzner (pzz@apevzner.com)
// See LICENSE for license terms and conditions
//
// Native error translation

package avahi

import "fmt"

// Translator converts native error codes into [Error] values.
//
// All native call sites of this package funnel their failures
// through a Translator. It has no state besides the Library.
type Translator struct {
	lib Library
}

// NewTranslator returns a Translator for the Library.
func NewTranslator(lib Library) Translator {
	return Translator{lib: lib}
}

// Translate returns the native message for the error code.
func (tr Translator) Translate(code ErrCode) string {
	return tr.lib.Strerror(code)
}

// NativeError returns a KindNative error for the code.
func (tr Translator) NativeError(op string, code ErrCode) *Error {
	return &Error{
		Kind:    KindNative,
		Op:      op,
		Code:    code,
		Message: tr.Translate(code),
	}
}

// LastError returns the current error of the native client.
func (tr Translator) LastError(op string, nc NativeClient) *Error {
	return tr.NativeError(op, nc.Errno())
}

// Exec runs native call that returns a signed status.
//
// Negative status is returned as KindNative error, with msg, the
// raw code and its native message. Otherwise Exec returns nil.
func (tr Translator) Exec(call func() int, msg string) error {
	rc := call()
	if rc >= 0 {
		return nil
	}

	code := ErrCode(rc)
	return &Error{
		Kind: KindNative,
		Op:   msg,
		Code: code,
		Message: fmt.Sprintf("%s: (code: %d, message:%q)",
			msg, rc, tr.Translate(code)),
	}
}

// AlternativeServiceName returns an alternative service name,
// to be used after a name collision.
func (tr Translator) AlternativeServiceName(name string) string {
	return tr.lib.AlternativeServiceName(name)
}
