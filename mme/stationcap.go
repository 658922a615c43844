package mme

import (
	"fmt"

	"github.com/hpav/hpav/ethernet"
)

// StationCapabilitiesVersion identifies the layout of a CM_STA_CAP.CNF
// payload's first octet.
type StationCapabilitiesVersion uint8

const (
	StaCapHomePlugAV1_1 StationCapabilitiesVersion = 0x00
	StaCapHomePlugAV2_0 StationCapabilitiesVersion = 0x01
)

// StationCapabilitiesRequest encodes a CM_STA_CAP.REQ, an empty-bodied
// unicast request.
type StationCapabilitiesRequest struct{}

func (StationCapabilitiesRequest) MMVersion() Version    { return Version1_1 }
func (StationCapabilitiesRequest) MMType() MMType        { return CM_STA_CAP.Req() }
func (StationCapabilitiesRequest) OUI() ethernet.OUI     { return ethernet.OUI{} }

func (StationCapabilitiesRequest) Encode(buf []byte) (int, error) {
	body, err := SetHeader(buf, Version1_1, CM_STA_CAP.Req(), ethernet.OUI{})
	if err != nil {
		return 0, err
	}
	return len(buf) - len(body), nil
}

// StationCapabilities is a borrowed view over a CM_STA_CAP.CNF payload.
type StationCapabilities []byte

func (s StationCapabilities) Version() StationCapabilitiesVersion {
	if len(s) < 1 {
		return 0
	}
	return StationCapabilitiesVersion(s[0])
}

func (s StationCapabilities) Addr() [6]byte {
	var a [6]byte
	if len(s) >= 7 {
		copy(a[:], s[1:7])
	}
	return a
}

func (s StationCapabilities) OUI() ethernet.OUI {
	var o ethernet.OUI
	if len(s) >= 10 {
		copy(o[:], s[7:10])
	}
	return o
}

func (s StationCapabilities) AutoConnect() bool  { return s.flag(10) }
func (s StationCapabilities) Smoothing() bool    { return s.flag(11) }
func (s StationCapabilities) CCoLevel() uint8    { return s.byteAt(12) }
func (s StationCapabilities) Proxy() bool        { return s.flag(13) }
func (s StationCapabilities) Cap14() uint8       { return s.byteAt(14) }
func (s StationCapabilities) BackupCCo() bool    { return s.flag(15) }
func (s StationCapabilities) SoftHandOver() bool { return s.flag(16) }
func (s StationCapabilities) TwoSymFC() bool     { return s.flag(17) }

// MaxFrameLengthMicros returns the station's advertised maximum frame
// duration in microseconds (the raw little-endian field at offset 18
// multiplied by 1.28).
func (s StationCapabilities) MaxFrameLengthMicros() float64 {
	if len(s) < 20 {
		return 0
	}
	raw := uint16(s[18]) | uint16(s[19])<<8
	return float64(raw) * 1.28
}

func (s StationCapabilities) HomePlug1_1() bool  { return s.flag(20) }
func (s StationCapabilities) HomePlug1_0_1() bool { return s.flag(21) }

// Region returns the station's raw reported regulatory region octet; 0 is
// North America, which RegionName reports by name.
func (s StationCapabilities) Region() uint8 { return s.byteAt(22) }

func (s StationCapabilities) RegionName() string {
	r := s.Region()
	if r == 0 {
		return "NorthAmerica"
	}
	return fmt.Sprintf("Region%d", r)
}

// BurstMode returns the station's reported burst-acknowledgement mode as a
// human-readable label: 0 -> "none", 1 -> "SACK", 2 -> "SACK+SOF", else the
// raw value in hex.
func (s StationCapabilities) BurstMode() string {
	switch s.byteAt(23) {
	case 0:
		return "none"
	case 1:
		return "SACK"
	case 2:
		return "SACK+SOF"
	default:
		return fmt.Sprintf("0x%02x", s.byteAt(23))
	}
}

// FirmwareVersion returns the (major, minor) firmware version pair and
// ok=true if either byte is nonzero.
func (s StationCapabilities) FirmwareVersion() (major, minor uint8, ok bool) {
	major, minor = s.byteAt(24), s.byteAt(25)
	return major, minor, major != 0 || minor != 0
}

func (s StationCapabilities) byteAt(i int) uint8 {
	if len(s) <= i {
		return 0
	}
	return s[i]
}

func (s StationCapabilities) flag(i int) bool {
	return s.byteAt(i) != 0
}
