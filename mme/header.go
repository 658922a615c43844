package mme

import (
	"fmt"

	"github.com/hpav/hpav/ethernet"
)

// Byte offsets within an MME header.
const (
	offMMV     = 0
	offMMTypeL = 1
	offMMTypeH = 2
	offFMI     = 3
	offFMSN    = 4
	offOUI     = 5
)

// Header is the decoded form of an MME's fixed header.
type Header struct {
	Version Version
	MMType  MMType
	// OUI is only meaningful when MMType.IsVendor() is true.
	OUI ethernet.OUI
}

// HeaderLen returns the header length in octets for the given version and
// vendor-ness: 3 for MMV 1.0 (no fragmentation fields), 5 for MMV 1.1/2.0
// non-vendor, 8 for MMV 1.1/2.0 vendor (adds a 3-octet OUI). An
// out-of-range version is treated as unknown and returns 0, matching
// ParseHeader's handling of the same values on decode.
func HeaderLen(version Version, isVendor bool) int {
	switch version {
	case Version1_0:
		return 3
	case Version1_1, Version2_0:
		if isVendor {
			return 8
		}
		return 5
	default:
		return 0
	}
}

// ParseHeader decodes the fixed header from data and returns it along with
// the remaining payload slice. Per the wire format's fragmentation header,
// which this module neither sends fragmented nor reassembles, the FMI/FMSN
// octets are skipped without being read.
//
// If data is too short to contain even the 3-byte minimum header, ParseHeader
// returns a zero Header and a nil payload rather than an error: callers are
// expected to treat an empty payload as "nothing useful was received".
func ParseHeader(data []byte) (Header, []byte) {
	if len(data) < 3 {
		return Header{}, nil
	}
	h := Header{
		Version: Version(data[offMMV]),
		MMType:  FromBytes(data[offMMTypeL : offMMTypeH+1]),
	}

	switch {
	case h.Version == Version1_0:
		return h, data[3:]
	case h.Version == Version1_1 || h.Version == Version2_0:
		if h.MMType.IsVendor() {
			if len(data) < 8 {
				return h, nil
			}
			h.OUI = ethernet.OUI{data[offOUI], data[offOUI+1], data[offOUI+2]}
			return h, data[8:]
		}
		if len(data) < 5 {
			return h, nil
		}
		return h, data[5:]
	default:
		return h, data[0:0]
	}
}

// SetHeader writes the fixed header for version/mmtype/oui into the start
// of buf and returns the remaining sub-slice of buf that the caller should
// fill with the message body. It returns an error if buf is shorter than
// the required header length.
//
// oui is ignored unless mmtype.IsVendor() is true and version is 1.1 or
// 2.0, in which case it is written as the 3 octets following FMI/FMSN.
//
// An out-of-range version writes nothing and returns an empty (but
// non-nil) remaining slice, mirroring ParseHeader's treatment of the
// same values: there is no well-defined header to produce, so no body
// can be encoded either.
func SetHeader(buf []byte, version Version, mmtype MMType, oui ethernet.OUI) ([]byte, error) {
	isVendor := mmtype.IsVendor() && version != Version1_0
	need := HeaderLen(version, isVendor)
	if len(buf) < need {
		return nil, fmt.Errorf("mme: buffer too short for header: need %d bytes, have %d", need, len(buf))
	}

	switch version {
	case Version1_0:
		buf[offMMV] = byte(version)
		b := mmtype.Bytes()
		buf[offMMTypeL], buf[offMMTypeH] = b[0], b[1]
		return buf[3:], nil
	case Version1_1, Version2_0:
		buf[offMMV] = byte(version)
		b := mmtype.Bytes()
		buf[offMMTypeL], buf[offMMTypeH] = b[0], b[1]
		buf[offFMI] = 0
		buf[offFMSN] = 0
		if isVendor {
			buf[offOUI], buf[offOUI+1], buf[offOUI+2] = oui[0], oui[1], oui[2]
			return buf[8:], nil
		}
		return buf[5:], nil
	default:
		return buf[:0], nil
	}
}
