package ethernet

// Type identifies the upper-layer protocol carried by a frame.
type Type uint16

// Size is the wire length in octets of an EtherType field.
const Size = 2

// Recognised EtherType values. HomePlugAV and MediaXtream are the two this
// module actually sends and receives on; the others are carried for
// Type.Name and frame inspection.
const (
	LLDP        Type = 0x88cc
	HomePlug    Type = 0x887b
	HomePlugAV  Type = 0x88e1
	MediaXtream Type = 0x8912
	IEEE1905    Type = 0x893a
)

var typeNames = map[Type]string{
	LLDP:        "LLDP",
	HomePlug:    "HomePlug",
	HomePlugAV:  "HomePlugAV",
	MediaXtream: "MediaXtream",
	IEEE1905:    "IEEE1905",
}

// Name returns the well-known name for t, or "" if t is not recognised.
func (t Type) Name() string { return typeNames[t] }

// TypeFromBytes reads a big-endian EtherType from the first two bytes of b. It
// panics if b is shorter than 2 bytes; callers must bounds-check first.
func TypeFromBytes(b []byte) Type {
	return Type(uint16(b[0])<<8 | uint16(b[1]))
}

// Bytes returns the big-endian wire encoding of t.
func (t Type) Bytes() [2]byte {
	return [2]byte{byte(t >> 8), byte(t)}
}
