package mme

import "github.com/hpav/hpav/ethernet"

// BridgeInfoRequest encodes a CM_BRG_INFO.REQ, an empty-bodied unicast
// request.
type BridgeInfoRequest struct{}

func (BridgeInfoRequest) MMVersion() Version    { return Version1_1 }
func (BridgeInfoRequest) MMType() MMType        { return CM_BRG_INFO.Req() }
func (BridgeInfoRequest) OUI() ethernet.OUI     { return ethernet.OUI{} }

func (BridgeInfoRequest) Encode(buf []byte) (int, error) {
	body, err := SetHeader(buf, Version1_1, CM_BRG_INFO.Req(), ethernet.OUI{})
	if err != nil {
		return 0, err
	}
	return len(buf) - len(body), nil
}

// BridgeInfo is a borrowed view over a CM_BRG_INFO.CNF payload.
type BridgeInfo []byte

// IsBridge reports whether the station is operating as a bridge.
func (b BridgeInfo) IsBridge() bool {
	return len(b) >= 1 && b[0] != 0
}

// TEI returns the station's terminal equipment identifier.
func (b BridgeInfo) TEI() uint8 {
	if len(b) < 2 {
		return 0
	}
	return b[1]
}

// Destinations returns the MAC addresses bridged by the station. It is
// empty if the station is not a bridge, regardless of what the count octet
// says.
func (b BridgeInfo) Destinations() [][6]byte {
	if !b.IsBridge() || len(b) < 3 {
		return nil
	}
	count := int(b[2])
	rest := b[3:]
	var out [][6]byte
	for i := 0; i < count && len(rest) >= (i+1)*6; i++ {
		var mac [6]byte
		copy(mac[:], rest[i*6:(i+1)*6])
		out = append(out, mac)
	}
	return out
}
