//go:build !linux

package netif

import (
	"fmt"

	"github.com/hpav/hpav/ethernet"
	"github.com/hpav/hpav/herrors"
)

// Open is unimplemented outside Linux. Raw-frame access on BSD/Darwin goes
// through /dev/bpf and on Windows through an NDIS packet-filter driver,
// each a large enough platform-specific surface that this module does not
// attempt a reference implementation for them; callers on those platforms
// must supply their own Socket (see MockSocket for the interface shape).
func Open(iface Interface, ethertype ethernet.Type) (Socket, error) {
	return nil, &herrors.NetworkError{
		Operation: "open socket",
		Err:       fmt.Errorf("raw link-layer sockets are not implemented on this platform"),
		Details:   iface.Name,
	}
}
