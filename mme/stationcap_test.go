package mme

import "testing"

func TestStationCapabilitiesFields(t *testing.T) {
	payload := make([]byte, 26)
	payload[0] = byte(StaCapHomePlugAV2_0)
	copy(payload[1:7], []byte{0x00, 0x1f, 0x84, 0x01, 0x02, 0x03})
	copy(payload[7:10], []byte{0x00, 0x1f, 0x84})
	payload[10] = 1 // AutoConnect
	payload[12] = 3 // CCoLevel
	payload[18] = 0x64
	payload[19] = 0x00 // maxflav raw = 100 -> 128.0us
	payload[22] = 0    // region -> NorthAmerica
	payload[23] = 2    // burst mode -> SACK+SOF
	payload[24] = 1
	payload[25] = 2

	s := StationCapabilities(payload)
	if s.Version() != StaCapHomePlugAV2_0 {
		t.Errorf("Version() = %v", s.Version())
	}
	if s.Addr() != [6]byte{0x00, 0x1f, 0x84, 0x01, 0x02, 0x03} {
		t.Errorf("Addr() = %v", s.Addr())
	}
	if s.OUI() != [3]byte{0x00, 0x1f, 0x84} {
		t.Errorf("OUI() = %v", s.OUI())
	}
	if !s.AutoConnect() {
		t.Error("AutoConnect() = false")
	}
	if s.CCoLevel() != 3 {
		t.Errorf("CCoLevel() = %d", s.CCoLevel())
	}
	if got := s.MaxFrameLengthMicros(); got != 128.0 {
		t.Errorf("MaxFrameLengthMicros() = %v, want 128.0", got)
	}
	if s.RegionName() != "NorthAmerica" {
		t.Errorf("RegionName() = %q", s.RegionName())
	}
	if s.BurstMode() != "SACK+SOF" {
		t.Errorf("BurstMode() = %q", s.BurstMode())
	}
	major, minor, ok := s.FirmwareVersion()
	if !ok || major != 1 || minor != 2 {
		t.Errorf("FirmwareVersion() = (%d, %d, %v)", major, minor, ok)
	}
}

func TestStationCapabilitiesRegionOther(t *testing.T) {
	payload := make([]byte, 23)
	payload[22] = 5
	s := StationCapabilities(payload)
	if s.RegionName() != "Region5" {
		t.Errorf("RegionName() = %q, want Region5", s.RegionName())
	}
}

func TestStationCapabilitiesTruncated(t *testing.T) {
	s := StationCapabilities([]byte{0x01})
	if s.AutoConnect() {
		t.Error("AutoConnect() on truncated payload = true")
	}
	if _, _, ok := s.FirmwareVersion(); ok {
		t.Error("FirmwareVersion() ok on truncated payload = true")
	}
}

func TestStationCapabilitiesRequestEncode(t *testing.T) {
	buf := make([]byte, 60)
	n, err := StationCapabilitiesRequest{}.Encode(buf)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	h, payload := ParseHeader(buf[:n])
	if h.MMType != CM_STA_CAP.Req() {
		t.Errorf("MMType = %v", h.MMType)
	}
	if len(payload) != 0 {
		t.Errorf("payload = %v, want empty", payload)
	}
}
