package mme

import "github.com/hpav/hpav/ethernet"

// NetworkInfoRequest encodes a CM_NW_INFO.REQ, an empty-bodied unicast
// request.
type NetworkInfoRequest struct{}

func (NetworkInfoRequest) MMVersion() Version    { return Version1_1 }
func (NetworkInfoRequest) MMType() MMType        { return CM_NW_INFO.Req() }
func (NetworkInfoRequest) OUI() ethernet.OUI     { return ethernet.OUI{} }

func (NetworkInfoRequest) Encode(buf []byte) (int, error) {
	body, err := SetHeader(buf, Version1_1, CM_NW_INFO.Req(), ethernet.OUI{})
	if err != nil {
		return 0, err
	}
	return len(buf) - len(body), nil
}

// StationRole identifies a station's role within a logical network.
type StationRole uint8

const (
	RoleSTA StationRole = 0x00
	RolePCO StationRole = 0x01
	RoleCCO StationRole = 0x02
)

const networkInfoEntryLen = 18

// NetworkInfo is a borrowed view over a CM_NW_INFO.CNF payload.
type NetworkInfo []byte

// Networks returns the logical-network entries reported in the payload.
func (n NetworkInfo) Networks() []NetworkInfoEntry {
	if len(n) < 1 {
		return nil
	}
	count := int(n[0])
	rest := n[1:]
	var out []NetworkInfoEntry
	for i := 0; i < count && len(rest) >= (i+1)*networkInfoEntryLen; i++ {
		out = append(out, NetworkInfoEntry(rest[i*networkInfoEntryLen:(i+1)*networkInfoEntryLen]))
	}
	return out
}

// NetworkInfoEntry is a borrowed 18-byte network entry: 7 bytes NID, 1 byte
// SNID, 1 byte TEI, 1 byte role, 6 bytes CCo MAC, 1 byte access flag, 1 byte
// neighbour-network count.
type NetworkInfoEntry []byte

func (e NetworkInfoEntry) NID() [7]byte {
	var nid [7]byte
	if len(e) >= 7 {
		copy(nid[:], e[0:7])
	}
	return nid
}

func (e NetworkInfoEntry) SNID() uint8 {
	if len(e) < 8 {
		return 0
	}
	return e[7]
}

func (e NetworkInfoEntry) TEI() uint8 {
	if len(e) < 9 {
		return 0
	}
	return e[8]
}

func (e NetworkInfoEntry) Role() StationRole {
	if len(e) < 10 {
		return RoleSTA
	}
	return StationRole(e[9])
}

func (e NetworkInfoEntry) CCoMAC() [6]byte {
	var mac [6]byte
	if len(e) >= 16 {
		copy(mac[:], e[10:16])
	}
	return mac
}

func (e NetworkInfoEntry) Access() bool {
	return len(e) >= 17 && e[16] != 0
}

// NumCoordinatingNetworks returns the count of neighbouring coordinating
// networks the station reported.
func (e NetworkInfoEntry) NumCoordinatingNetworks() uint8 {
	if len(e) < 18 {
		return 0
	}
	return e[17]
}
