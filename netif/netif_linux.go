//go:build linux

package netif

import (
	"context"
	"net"
	"time"

	"golang.org/x/sys/unix"

	"github.com/hpav/hpav/ethernet"
	"github.com/hpav/hpav/herrors"
)

// Open opens an AF_PACKET raw socket on iface, bound to ethertype.
func Open(iface Interface, ethertype ethernet.Type) (Socket, error) {
	sysIface, err := net.InterfaceByName(iface.Name)
	if err != nil {
		return nil, &herrors.NetworkError{Operation: "resolve interface", Err: err, Details: iface.Name}
	}

	beEthertype := htons(uint16(ethertype))
	fd, err := unix.Socket(unix.AF_PACKET, unix.SOCK_DGRAM, int(beEthertype))
	if err != nil {
		return nil, &herrors.NetworkError{Operation: "open socket", Err: err, Details: "AF_PACKET/SOCK_DGRAM"}
	}

	sa := &unix.SockaddrLinklayer{
		Protocol: beEthertype,
		Ifindex:  sysIface.Index,
		Hatype:   unix.ARPHRD_ETHER,
		Pkttype:  0,
		Halen:    6,
	}
	if err := unix.Bind(fd, sa); err != nil {
		_ = unix.Close(fd)
		return nil, &herrors.NetworkError{Operation: "bind socket", Err: err, Details: iface.Name}
	}

	var self ethernet.Addr
	if len(sysIface.HardwareAddr) >= 6 {
		self = ethernet.FromSlice(sysIface.HardwareAddr)
	}

	return &linuxSocket{fd: fd, ifindex: sysIface.Index, ethertype: ethertype, self: self}, nil
}

// htons converts a host-order uint16 to the network-byte-order value
// expected in sockaddr_ll's Protocol field (which the kernel interprets in
// network byte order despite the struct field being a plain uint16).
func htons(v uint16) uint16 {
	return v<<8 | v>>8
}

type linuxSocket struct {
	fd        int
	ifindex   int
	ethertype ethernet.Type
	// self is the interface's own hardware address. Frames this socket
	// itself reflects back (common on some drivers/loopback setups) are
	// not a reply from anybody and are skipped in Receive.
	self ethernet.Addr
}

func (s *linuxSocket) Send(_ context.Context, dest ethernet.Addr, payload []byte) error {
	padded := dest.Padded()
	sa := &unix.SockaddrLinklayer{
		Protocol: htons(uint16(s.ethertype)),
		Ifindex:  s.ifindex,
		Hatype:   unix.ARPHRD_ETHER,
		Pkttype:  0,
		Halen:    6,
		Addr:     padded,
	}
	if err := unix.Sendto(s.fd, payload, 0, sa); err != nil {
		return &herrors.NetworkError{Operation: "send frame", Err: err}
	}
	return nil
}

// Receive blocks until a frame matching s.ethertype arrives from a
// station other than this interface itself, timeout elapses, or an
// error occurs. Frames whose EtherType does not match the bound
// protocol, or whose source address equals this interface's own
// address, are transparently skipped; the timeout applies across the
// whole sequence of skipped frames, not per frame, since each loop
// iteration re-derives the remaining time from a single deadline
// computed up front.
func (s *linuxSocket) Receive(_ context.Context, timeout time.Duration) (ethernet.Addr, []byte, error) {
	deadline := time.Now().Add(timeout)
	wantProto := htons(uint16(s.ethertype))

	for {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return ethernet.Addr{}, nil, nil
		}
		tv := unix.NsecToTimeval(remaining.Nanoseconds())
		if err := unix.SetsockoptTimeval(s.fd, unix.SOL_SOCKET, unix.SO_RCVTIMEO, &tv); err != nil {
			return ethernet.Addr{}, nil, &herrors.NetworkError{Operation: "set receive timeout", Err: err}
		}

		buf := make([]byte, 9000)
		n, from, err := unix.Recvfrom(s.fd, buf, 0)
		if err != nil {
			if err == unix.EAGAIN || err == unix.EWOULDBLOCK {
				return ethernet.Addr{}, nil, nil
			}
			return ethernet.Addr{}, nil, &herrors.NetworkError{Operation: "receive frame", Err: err}
		}

		ll, ok := from.(*unix.SockaddrLinklayer)
		if !ok {
			continue
		}
		if ll.Protocol != wantProto {
			continue
		}
		var src ethernet.Addr
		copy(src[:], ll.Addr[:6])
		if src == s.self {
			continue
		}
		return src, buf[:n], nil
	}
}

func (s *linuxSocket) Close() error {
	return unix.Close(s.fd)
}
