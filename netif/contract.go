// Package netif defines the portable link-layer socket and interface
// enumeration contract this module builds its exchange engine on top of.
// Interface *selection* (which interfaces to use, VPN/virtual-interface
// filtering) is left to the caller; this package only enumerates what the
// OS reports and opens raw sockets on a chosen interface.
package netif

import (
	"context"
	"net"
	"time"

	"github.com/hpav/hpav/ethernet"
)

// Socket sends and receives raw Ethernet-framed payloads on a single
// network interface, filtered to one EtherType.
type Socket interface {
	// Send transmits payload to dest, framed as an Ethernet II frame with
	// the socket's bound EtherType.
	Send(ctx context.Context, dest ethernet.Addr, payload []byte) error

	// Receive blocks until a frame matching the socket's EtherType arrives,
	// timeout elapses, or ctx is cancelled. A timeout is reported as
	// (zero Addr, nil, nil) — not an error — matching this module's
	// synchronous request/reply model, where "nobody answered" is an
	// expected outcome.
	Receive(ctx context.Context, timeout time.Duration) (src ethernet.Addr, payload []byte, err error)

	// Close releases the underlying socket resources.
	Close() error
}

// Interface describes one system network interface as reported by the OS.
type Interface struct {
	Name  string
	Addr  ethernet.Addr
	Flags net.Flags
}

// IsUp reports whether the interface is administratively up.
func (i Interface) IsUp() bool { return i.Flags&net.FlagUp != 0 }

// IsLoopback reports whether the interface is the loopback device.
func (i Interface) IsLoopback() bool { return i.Flags&net.FlagLoopback != 0 }

// Interfaces enumerates every network interface the OS reports, with no
// filtering applied. Callers that want "reasonable defaults" (up,
// non-loopback, excluding virtual/VPN interfaces) apply their own filter
// over this list — that selection policy lives outside this module.
func Interfaces() ([]Interface, error) {
	all, err := net.Interfaces()
	if err != nil {
		return nil, err
	}
	out := make([]Interface, 0, len(all))
	for _, iface := range all {
		var addr ethernet.Addr
		if len(iface.HardwareAddr) >= 6 {
			addr = ethernet.FromSlice(iface.HardwareAddr)
		}
		out = append(out, Interface{Name: iface.Name, Addr: addr, Flags: iface.Flags})
	}
	return out, nil
}
