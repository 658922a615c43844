package ethernet

import "io"

// HeaderLen is the length in octets of an untagged Ethernet II header:
// 6 bytes destination MAC, 6 bytes source MAC, 2 bytes EtherType.
const HeaderLen = 14

// Frame is a minimal Ethernet II frame: no 802.1Q VLAN tag support, since
// HomePlug AV MMEs are never sent tagged, and no minimum-payload padding,
// since the modems this module talks to accept short frames directly.
type Frame struct {
	Destination Addr
	Source      Addr
	EtherType   Type
	Payload     []byte
}

// MarshalBinary allocates and returns the wire encoding of f.
func (f *Frame) MarshalBinary() ([]byte, error) {
	b := make([]byte, HeaderLen+len(f.Payload))
	copy(b[0:6], f.Destination[:])
	copy(b[6:12], f.Source[:])
	et := f.EtherType.Bytes()
	b[12], b[13] = et[0], et[1]
	copy(b[14:], f.Payload)
	return b, nil
}

// UnmarshalBinary decodes b into f. It returns io.ErrUnexpectedEOF if b is
// shorter than a full header.
func (f *Frame) UnmarshalBinary(b []byte) error {
	if len(b) < HeaderLen {
		return io.ErrUnexpectedEOF
	}
	f.Destination = FromSlice(b[0:6])
	f.Source = FromSlice(b[6:12])
	f.EtherType = TypeFromBytes(b[12:14])
	payload := make([]byte, len(b)-HeaderLen)
	copy(payload, b[HeaderLen:])
	f.Payload = payload
	return nil
}
