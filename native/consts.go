// MFP - Miulti-Function Printers and scanners toolkit
// Avahi simple poll binding
//
// Copyright (C) 2024 and up by Alexander Pevzner (pzz@apevzner.com)
// See LICENSE for license terms and conditions
//
// Native constants
//
//go:build cgo && (linux || freebsd)

package native

import "github.com/OpenPrinting/go-avahi-simple"

// #include <avahi-client/client.h>
// #include <avahi-common/address.h>
// #include <avahi-common/error.h>
import "C"

// constant pairs the avahi package constant with its
// native counterpart.
type constant struct {
	name   string
	value  int
	native int
}

// constants lists avahi package constants that must match
// the native headers.
var constants = []constant{
	{"ProtocolIP4", int(avahi.ProtocolIP4), C.AVAHI_PROTO_INET},
	{"ProtocolIP6", int(avahi.ProtocolIP6), C.AVAHI_PROTO_INET6},
	{"ProtocolUnspec", int(avahi.ProtocolUnspec), C.AVAHI_PROTO_UNSPEC},
	{"IfIndexUnspec", int(avahi.IfIndexUnspec), C.AVAHI_IF_UNSPEC},

	{"ClientIgnoreUserConfig", int(avahi.ClientIgnoreUserConfig), C.AVAHI_CLIENT_IGNORE_USER_CONFIG},
	{"ClientNoFail", int(avahi.ClientNoFail), C.AVAHI_CLIENT_NO_FAIL},

	{"ClientStateRegistering", int(avahi.ClientStateRegistering), C.AVAHI_CLIENT_S_REGISTERING},
	{"ClientStateRunning", int(avahi.ClientStateRunning), C.AVAHI_CLIENT_S_RUNNING},
	{"ClientStateCollision", int(avahi.ClientStateCollision), C.AVAHI_CLIENT_S_COLLISION},
	{"ClientStateFailure", int(avahi.ClientStateFailure), C.AVAHI_CLIENT_FAILURE},
	{"ClientStateConnecting", int(avahi.ClientStateConnecting), C.AVAHI_CLIENT_CONNECTING},

	{"NoError", int(avahi.NoError), C.AVAHI_OK},
	{"ErrFailure", int(avahi.ErrFailure), C.AVAHI_ERR_FAILURE},
	{"ErrBadState", int(avahi.ErrBadState), C.AVAHI_ERR_BAD_STATE},
	{"ErrInvalidHostName", int(avahi.ErrInvalidHostName), C.AVAHI_ERR_INVALID_HOST_NAME},
	{"ErrInvalidDomainName", int(avahi.ErrInvalidDomainName), C.AVAHI_ERR_INVALID_DOMAIN_NAME},
	{"ErrNoNetwork", int(avahi.ErrNoNetwork), C.AVAHI_ERR_NO_NETWORK},
	{"ErrInvalidTTL", int(avahi.ErrInvalidTTL), C.AVAHI_ERR_INVALID_TTL},
	{"ErrIsPattern", int(avahi.ErrIsPattern), C.AVAHI_ERR_IS_PATTERN},
	{"ErrCollision", int(avahi.ErrCollision), C.AVAHI_ERR_COLLISION},
	{"ErrInvalidRecord", int(avahi.ErrInvalidRecord), C.AVAHI_ERR_INVALID_RECORD},
	{"ErrInvalidServiceName", int(avahi.ErrInvalidServiceName), C.AVAHI_ERR_INVALID_SERVICE_NAME},
	{"ErrInvalidServiceType", int(avahi.ErrInvalidServiceType), C.AVAHI_ERR_INVALID_SERVICE_TYPE},
	{"ErrInvalidPort", int(avahi.ErrInvalidPort), C.AVAHI_ERR_INVALID_PORT},
	{"ErrInvalidKey", int(avahi.ErrInvalidKey), C.AVAHI_ERR_INVALID_KEY},
	{"ErrInvalidAddress", int(avahi.ErrInvalidAddress), C.AVAHI_ERR_INVALID_ADDRESS},
	{"ErrTimeout", int(avahi.ErrTimeout), C.AVAHI_ERR_TIMEOUT},
	{"ErrTooManyClients", int(avahi.ErrTooManyClients), C.AVAHI_ERR_TOO_MANY_CLIENTS},
	{"ErrTooManyObjects", int(avahi.ErrTooManyObjects), C.AVAHI_ERR_TOO_MANY_OBJECTS},
	{"ErrTooManyEntries", int(avahi.ErrTooManyEntries), C.AVAHI_ERR_TOO_MANY_ENTRIES},
	{"ErrOS", int(avahi.ErrOS), C.AVAHI_ERR_OS},
	{"ErrAccessDenied", int(avahi.ErrAccessDenied), C.AVAHI_ERR_ACCESS_DENIED},
	{"ErrInvalidOperation", int(avahi.ErrInvalidOperation), C.AVAHI_ERR_INVALID_OPERATION},
	{"ErrDbusError", int(avahi.ErrDbusError), C.AVAHI_ERR_DBUS_ERROR},
	{"ErrDisconnected", int(avahi.ErrDisconnected), C.AVAHI_ERR_DISCONNECTED},
	{"ErrNoMemory", int(avahi.ErrNoMemory), C.AVAHI_ERR_NO_MEMORY},
	{"ErrInvalidObject", int(avahi.ErrInvalidObject), C.AVAHI_ERR_INVALID_OBJECT},
	{"ErrNoDaemon", int(avahi.ErrNoDaemon), C.AVAHI_ERR_NO_DAEMON},
	{"ErrInvalidInterface", int(avahi.ErrInvalidInterface), C.AVAHI_ERR_INVALID_INTERFACE},
	{"ErrInvalidProtocol", int(avahi.ErrInvalidProtocol), C.AVAHI_ERR_INVALID_PROTOCOL},
	{"ErrInvalidFlags", int(avahi.ErrInvalidFlags), C.AVAHI_ERR_INVALID_FLAGS},
	{"ErrNotFound", int(avahi.ErrNotFound), C.AVAHI_ERR_NOT_FOUND},
	{"ErrInvalidConfig", int(avahi.ErrInvalidConfig), C.AVAHI_ERR_INVALID_CONFIG},
	{"ErrVersionMismatch", int(avahi.ErrVersionMismatch), C.AVAHI_ERR_VERSION_MISMATCH},
	{"ErrInvalidServiceSubtype", int(avahi.ErrInvalidServiceSubtype), C.AVAHI_ERR_INVALID_SERVICE_SUBTYPE},
	{"ErrInvalidPacket", int(avahi.ErrInvalidPacket), C.AVAHI_ERR_INVALID_PACKET},
	{"ErrInvalidDNSError", int(avahi.ErrInvalidDNSError), C.AVAHI_ERR_INVALID_DNS_ERROR},
	{"ErrDNSFormerr", int(avahi.ErrDNSFormerr), C.AVAHI_ERR_DNS_FORMERR},
	{"ErrDNSSERVFAIL", int(avahi.ErrDNSSERVFAIL), C.AVAHI_ERR_DNS_SERVFAIL},
	{"ErrDNSNXDOMAIN", int(avahi.ErrDNSNXDOMAIN), C.AVAHI_ERR_DNS_NXDOMAIN},
	{"ErrDNSNotimp", int(avahi.ErrDNSNotimp), C.AVAHI_ERR_DNS_NOTIMP},
	{"ErrDNSREFUSED", int(avahi.ErrDNSREFUSED), C.AVAHI_ERR_DNS_REFUSED},
	{"ErrDNSYXDOMAIN", int(avahi.ErrDNSYXDOMAIN), C.AVAHI_ERR_DNS_YXDOMAIN},
	{"ErrDNSYXRRSET", int(avahi.ErrDNSYXRRSET), C.AVAHI_ERR_DNS_YXRRSET},
	{"ErrDNSNXRRSET", int(avahi.ErrDNSNXRRSET), C.AVAHI_ERR_DNS_NXRRSET},
	{"ErrDNSNOTAUTH", int(avahi.ErrDNSNOTAUTH), C.AVAHI_ERR_DNS_NOTAUTH},
	{"ErrDNSNOTZONE", int(avahi.ErrDNSNOTZONE), C.AVAHI_ERR_DNS_NOTZONE},
	{"ErrInvalidRDATA", int(avahi.ErrInvalidRDATA), C.AVAHI_ERR_INVALID_RDATA},
	{"ErrInvalidDNSClass", int(avahi.ErrInvalidDNSClass), C.AVAHI_ERR_INVALID_DNS_CLASS},
	{"ErrInvalidDNSType", int(avahi.ErrInvalidDNSType), C.AVAHI_ERR_INVALID_DNS_TYPE},
	{"ErrNotSupported", int(avahi.ErrNotSupported), C.AVAHI_ERR_NOT_SUPPORTED},
	{"ErrNotPermitted", int(avahi.ErrNotPermitted), C.AVAHI_ERR_NOT_PERMITTED},
	{"ErrInvalidArgument", int(avahi.ErrInvalidArgument), C.AVAHI_ERR_INVALID_ARGUMENT},
	{"ErrIsEmpty", int(avahi.ErrIsEmpty), C.AVAHI_ERR_IS_EMPTY},
	{"ErrNoChange", int(avahi.ErrNoChange), C.AVAHI_ERR_NO_CHANGE},
}
