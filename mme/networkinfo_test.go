package mme

import "testing"

func buildNetworkInfoEntry(nid [7]byte, snid, tei byte, role StationRole, ccomac [6]byte, access bool, neighbors byte) []byte {
	e := make([]byte, networkInfoEntryLen)
	copy(e[0:7], nid[:])
	e[7] = snid
	e[8] = tei
	e[9] = byte(role)
	copy(e[10:16], ccomac[:])
	if access {
		e[16] = 1
	}
	e[17] = neighbors
	return e
}

func TestNetworkInfoEntries(t *testing.T) {
	nid := [7]byte{1, 2, 3, 4, 5, 6, 7}
	ccomac := [6]byte{0x00, 0x1f, 0x84, 0x0a, 0x0b, 0x0c}
	entry := buildNetworkInfoEntry(nid, 0x10, 3, RoleCCO, ccomac, true, 2)

	payload := append([]byte{0x01}, entry...)
	ni := NetworkInfo(payload)
	entries := ni.Networks()
	if len(entries) != 1 {
		t.Fatalf("Networks() returned %d entries, want 1", len(entries))
	}
	e := entries[0]
	if e.NID() != nid {
		t.Errorf("NID() = %v, want %v", e.NID(), nid)
	}
	if e.SNID() != 0x10 {
		t.Errorf("SNID() = %#02x", e.SNID())
	}
	if e.TEI() != 3 {
		t.Errorf("TEI() = %d", e.TEI())
	}
	if e.Role() != RoleCCO {
		t.Errorf("Role() = %v, want RoleCCO", e.Role())
	}
	if e.CCoMAC() != ccomac {
		t.Errorf("CCoMAC() = %v, want %v", e.CCoMAC(), ccomac)
	}
	if !e.Access() {
		t.Error("Access() = false, want true")
	}
	// Neighbour count must be read from offset 17, distinct from the
	// access flag at offset 16 — the original protocol's entries are
	// 18 bytes wide with both fields present.
	if e.NumCoordinatingNetworks() != 2 {
		t.Errorf("NumCoordinatingNetworks() = %d, want 2 (must not alias Access())", e.NumCoordinatingNetworks())
	}
}

func TestNetworkInfoRequestEncode(t *testing.T) {
	buf := make([]byte, 60)
	n, err := NetworkInfoRequest{}.Encode(buf)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	h, _ := ParseHeader(buf[:n])
	if h.MMType != CM_NW_INFO.Req() {
		t.Errorf("MMType = %v", h.MMType)
	}
}
