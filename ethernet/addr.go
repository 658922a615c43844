// Package ethernet provides the link-layer address and frame primitives
// shared by the rest of the module: 6-octet MAC addresses, EtherType
// values, and IEEE OUI vendor prefixes.
package ethernet

import (
	"fmt"
	"strconv"
	"strings"
)

// Addr is a 6-octet Ethernet MAC address.
type Addr [6]byte

// Null is the all-zero address.
var Null = Addr{}

// Broadcast is the reserved all-ones broadcast address.
var Broadcast = Addr{0xff, 0xff, 0xff, 0xff, 0xff, 0xff}

// QualcommLocalcast is the Qualcomm-OUI address 00:b0:52:00:00:01 used for
// unsolicited HomePlug AV indications. Its I/G bit is clear, so IsMulticast
// reports false for it.
var QualcommLocalcast = Addr{0x00, 0xb0, 0x52, 0x00, 0x00, 0x01}

// IEEE1905_MULTICAST is the IEEE 802.1 reserved multicast address used by
// IEEE 1905.1 abstraction layer management entities.
var IEEE1905_MULTICAST = Addr{0x01, 0x80, 0xc2, 0x00, 0x00, 0x13}

// ParseAddr parses a MAC address written with either ':' or '-' separators,
// e.g. "00:1f:84:aa:bb:cc" or "00-1f-84-aa-bb-cc". Exactly one separator
// style must be used consistently, each octet must be exactly two hex
// digits, and surrounding whitespace on the whole string and on each octet
// is tolerated.
func ParseAddr(s string) (Addr, error) {
	var a Addr
	trimmed := strings.TrimSpace(s)

	parts := strings.Split(trimmed, ":")
	if len(parts) != 6 {
		parts = strings.Split(trimmed, "-")
	}
	if len(parts) != 6 {
		return a, fmt.Errorf("ethernet: invalid address %q: expected 6 colon- or hyphen-separated octets", s)
	}

	for i, p := range parts {
		p = strings.TrimSpace(p)
		if len(p) != 2 {
			return a, fmt.Errorf("ethernet: invalid address %q: octet %q is not two hex digits", s, p)
		}
		v, err := strconv.ParseUint(p, 16, 8)
		if err != nil {
			return a, fmt.Errorf("ethernet: invalid address %q: octet %q: %w", s, p, err)
		}
		a[i] = byte(v)
	}
	return a, nil
}

// String formats the address as lowercase colon-separated hex.
func (a Addr) String() string {
	return fmt.Sprintf("%02x:%02x:%02x:%02x:%02x:%02x", a[0], a[1], a[2], a[3], a[4], a[5])
}

// IsBroadcast reports whether a is the all-ones broadcast address.
func (a Addr) IsBroadcast() bool { return a == Broadcast }

// IsMulticast reports whether the I/G bit (the low bit of the first octet)
// is set. Broadcast is also multicast under this definition.
func (a Addr) IsMulticast() bool { return a[0]&0x01 != 0 }

// IsUnicast reports whether a is neither broadcast nor multicast.
func (a Addr) IsUnicast() bool { return !a.IsMulticast() }

// OUI returns the address's 3-octet vendor prefix.
func (a Addr) OUI() OUI { return OUI{a[0], a[1], a[2]} }

// Padded returns the address as an 8-byte array with two trailing zero
// bytes, the layout sockaddr_ll expects for sll_addr.
func (a Addr) Padded() [8]byte {
	var p [8]byte
	copy(p[:6], a[:])
	return p
}

// FromSlice copies the first 6 bytes of b into an Addr. It panics if b is
// shorter than 6 bytes; callers must bounds-check first.
func FromSlice(b []byte) Addr {
	var a Addr
	copy(a[:], b[:6])
	return a
}
