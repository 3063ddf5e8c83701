// MFP - Miulti-Function Printers and scanners toolkit
// Avahi simple poll binding
//
// Copyright (C) 2024 and up by Alexander Pevzner (pzz@apevzner.com)
// See LICENSE for license terms and conditions
//
// Service type strings

package avahi

import (
	"fmt"
	"strings"

	"github.com/miekg/dns"
	"go.uber.org/zap"
)

// ServiceType identifies a DNS-SD service type, like "_http._tcp",
// optionally narrowed by sub-types.
//
// Name, Protocol and SubTypes are stored without the leading
// underscore.
type ServiceType struct {
	Name     string   // Service name, e.g. "http"
	Protocol string   // Protocol, e.g. "tcp"
	SubTypes []string // Sub-types, e.g. "printer"
}

// NewServiceType creates a new [ServiceType].
//
// Name, protocol and sub-types must be non-empty, must not contain
// dots and must not start with underscore.
func NewServiceType(name, protocol string, subtypes ...string) (ServiceType, error) {
	st := ServiceType{
		Name:     name,
		Protocol: protocol,
		SubTypes: subtypes,
	}

	for _, part := range append([]string{name, protocol}, subtypes...) {
		if err := checkServiceTypePart(part); err != nil {
			return ServiceType{}, err
		}
	}

	kind := FormatServiceType(st)
	if _, ok := dns.IsDomainName(kind); !ok {
		return ServiceType{}, fmt.Errorf("avahi: invalid service type %q", kind)
	}

	return st, nil
}

// checkServiceTypePart validates a part of the ServiceType.
func checkServiceTypePart(part string) error {
	switch {
	case part == "":
		return fmt.Errorf("avahi: empty service type part")
	case strings.Contains(part, "."):
		return fmt.Errorf("avahi: %q: service type part must not contain '.'", part)
	case strings.HasPrefix(part, "_"):
		return fmt.Errorf("avahi: %q: service type part must not start with '_'", part)
	}
	return nil
}

// String returns the ServiceType as string, for debugging
func (st ServiceType) String() string {
	s := FormatServiceType(st)
	if len(st.SubTypes) != 0 {
		s += "," + strings.Join(st.SubTypes, ",")
	}
	return s
}

// FormatServiceType formats the ServiceType for Avahi, as "_name._protocol".
// Sub-types are ignored.
func FormatServiceType(st ServiceType) string {
	return "_" + st.Name + "._" + st.Protocol
}

// FormatBrowserType formats the ServiceType for browsing.
//
// Avahi can browse by a single sub-type only. If ServiceType has
// multiple sub-types, the first one is used and the warning is logged.
func FormatBrowserType(st ServiceType) string {
	kind := FormatServiceType(st)

	switch len(st.SubTypes) {
	case 0:
		return kind
	case 1:
	default:
		log().Warn("browsing by multiple sub-types is not supported, "+
			"using first sub-type only",
			zap.String("type", kind),
			zap.Strings("subtypes", st.SubTypes))
	}

	return FormatSubType(st.SubTypes[0], kind)
}

// FormatSubType formats sub-type of the service type kind,
// as "_subtype._sub.kind". Leading underscore of subtype is
// added only when missing.
func FormatSubType(subtype, kind string) string {
	if !strings.HasPrefix(subtype, "_") {
		subtype = "_" + subtype
	}
	return subtype + "._sub." + kind
}
