package mme

import (
	"fmt"

	"github.com/hpav/hpav/ethernet"
)

// DiscoverListRequest encodes a CC_DISCOVER_LIST.REQ, an empty-bodied
// broadcast request that solicits every station's view of the network.
type DiscoverListRequest struct{}

func (DiscoverListRequest) MMVersion() Version    { return Version1_1 }
func (DiscoverListRequest) MMType() MMType        { return CC_DISCOVER_LIST.Req() }
func (DiscoverListRequest) OUI() ethernet.OUI     { return ethernet.OUI{} }

func (DiscoverListRequest) Encode(buf []byte) (int, error) {
	body, err := SetHeader(buf, Version1_1, CC_DISCOVER_LIST.Req(), ethernet.OUI{})
	if err != nil {
		return 0, err
	}
	return len(buf) - len(body), nil
}

const stationRecordLen = 12
const networkRecordLen = 13

// DiscoverList is a borrowed view over a CC_DISCOVER_LIST.CNF payload.
type DiscoverList []byte

// stationCount is the leading octet giving the number of Station records.
func (d DiscoverList) stationCount() int {
	if len(d) < 1 {
		return 0
	}
	return int(d[0])
}

// Stations returns the station records reported in d.
func (d DiscoverList) Stations() []Station {
	n := d.stationCount()
	if len(d) < 1 {
		return nil
	}
	rest := d[1:]
	var out []Station
	for i := 0; i < n && len(rest) >= (i+1)*stationRecordLen; i++ {
		out = append(out, Station(rest[i*stationRecordLen:(i+1)*stationRecordLen]))
	}
	return out
}

// Networks returns the network records reported in d. Per the wire format,
// the network list begins after all station records — at an offset of
// 1 + 20*stationCount, not 1 + 12*stationCount, even though each station
// record is 12 bytes; this is a deliberate quirk of the original protocol,
// not a bug in this decoder.
func (d DiscoverList) Networks() []Network {
	n := d.stationCount()
	offset := 1 + n*20
	if offset >= len(d) {
		return nil
	}
	count := int(d[offset])
	rest := d[offset+1:]
	var out []Network
	for i := 0; i < count && len(rest) >= (i+1)*networkRecordLen; i++ {
		out = append(out, Network(rest[i*networkRecordLen:(i+1)*networkRecordLen]))
	}
	return out
}

// Station is a borrowed 12-byte station record from a DiscoverList.
type Station []byte

func (s Station) MAC() [6]byte {
	var mac [6]byte
	if len(s) >= 6 {
		copy(mac[:], s[0:6])
	}
	return mac
}

func (s Station) TEI() uint8 {
	if len(s) < 7 {
		return 0
	}
	return s[6]
}

func (s Station) SameNetwork() bool {
	return len(s) >= 8 && s[7] != 0
}

func (s Station) SNID() uint8 {
	if len(s) < 9 {
		return 0
	}
	return s[8]
}

var signalLevels = [16]string{
	0x00: "Unknown",
	0x01: ">-10dB", 0x02: ">-15dB", 0x03: ">-20dB", 0x04: ">-25dB",
	0x05: ">-30dB", 0x06: ">-35dB", 0x07: ">-40dB", 0x08: ">-45dB",
	0x09: ">-50dB", 0x0a: ">-55dB", 0x0b: ">-60dB", 0x0c: ">-65dB",
	0x0d: ">-70dB", 0x0e: ">-75dB", 0x0f: "<-75dB",
}

// Level returns the human-readable attenuation-level label for the
// station's reported signal level byte.
func (s Station) Level() string {
	if len(s) < 11 {
		return "????"
	}
	lv := s[10]
	if int(lv) < len(signalLevels) {
		return signalLevels[lv]
	}
	return "????"
}

func (s Station) BLE() uint8 {
	if len(s) < 12 {
		return 0
	}
	return s[11]
}

func (s Station) String() string {
	mac := s.MAC()
	return fmt.Sprintf("Station{mac=%02x:%02x:%02x:%02x:%02x:%02x tei=%d same_network=%v snid=%d level=%s ble=%d}",
		mac[0], mac[1], mac[2], mac[3], mac[4], mac[5], s.TEI(), s.SameNetwork(), s.SNID(), s.Level(), s.BLE())
}

// Network is a borrowed 13-byte network record from a DiscoverList.
type Network []byte

func (n Network) NID() [7]byte {
	var nid [7]byte
	if len(n) >= 7 {
		copy(nid[:], n[0:7])
	}
	return nid
}

func (n Network) SNID() uint8 {
	if len(n) < 8 {
		return 0
	}
	return n[7]
}

func (n Network) Hybrid() uint8 {
	if len(n) < 9 {
		return 0
	}
	return n[8]
}

func (n Network) Slots() uint8 {
	if len(n) < 10 {
		return 0
	}
	return n[9]
}

func (n Network) Coordinating() bool {
	return len(n) >= 11 && n[10] != 0
}

func (n Network) Offset() uint8 {
	if len(n) < 12 {
		return 0
	}
	return n[11]
}
