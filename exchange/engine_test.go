package exchange

import (
	"context"
	"testing"
	"time"

	"github.com/hpav/hpav/ethernet"
	"github.com/hpav/hpav/mme"
	"github.com/hpav/hpav/netif"
)

// buildFrame writes a header for mmtype into a fresh buffer and appends
// body, returning the full wire payload a station would have sent.
func buildFrame(t *testing.T, mmtype mme.MMType, body []byte) []byte {
	t.Helper()
	buf := make([]byte, 128)
	rest, err := mme.SetHeader(buf, mme.Version1_1, mmtype, ethernet.OUI{})
	if err != nil {
		t.Fatalf("SetHeader: %v", err)
	}
	headerLen := len(buf) - len(rest)
	n := copy(rest, body)
	return buf[:headerLen+n]
}

func TestRequestReturnsDecodedReply(t *testing.T) {
	m := netif.NewMockSocket()
	dest := ethernet.Addr{0x00, 0x1f, 0x84, 0x01, 0x02, 0x03}

	payload := buildFrame(t, mme.CM_STA_CAP.Cnf(), []byte{byte(mme.StaCapHomePlugAV2_0)})
	m.QueueReply(dest, payload)

	got, err := Request(context.Background(), m, dest, mme.StationCapabilitiesRequest{}, func(b []byte) mme.StationCapabilities {
		return mme.StationCapabilities(b)
	}, WithTimeout(50*time.Millisecond))
	if err != nil {
		t.Fatalf("Request: %v", err)
	}
	if got.Version() != mme.StaCapHomePlugAV2_0 {
		t.Errorf("Version() = %v, want StaCapHomePlugAV2_0", got.Version())
	}

	calls := m.SendCalls()
	if len(calls) != 1 {
		t.Fatalf("SendCalls() = %d, want 1", len(calls))
	}
	if calls[0].Dest != dest {
		t.Errorf("Send dest = %v, want %v", calls[0].Dest, dest)
	}
}

func TestRequestTimeoutReturnsZeroNoError(t *testing.T) {
	m := netif.NewMockSocket()
	dest := ethernet.Addr{0x00, 0x1f, 0x84, 0x01, 0x02, 0x03}

	got, err := Request(context.Background(), m, dest, mme.StationCapabilitiesRequest{}, func(b []byte) mme.StationCapabilities {
		return mme.StationCapabilities(b)
	}, WithTimeout(10*time.Millisecond))
	if err != nil {
		t.Fatalf("Request returned error on timeout: %v", err)
	}
	if got != nil {
		t.Errorf("Request on timeout = %v, want nil", got)
	}
}

func TestRequestFiltersNonMatchingSource(t *testing.T) {
	m := netif.NewMockSocket()
	dest := ethernet.Addr{0x00, 0x1f, 0x84, 0x01, 0x02, 0x03}
	other := ethernet.Addr{0x00, 0x1f, 0x84, 0xff, 0xff, 0xff}

	payload := buildFrame(t, mme.CM_STA_CAP.Cnf(), []byte{byte(mme.StaCapHomePlugAV1_1)})
	m.QueueReply(other, payload)

	got, err := Request(context.Background(), m, dest, mme.StationCapabilitiesRequest{}, func(b []byte) mme.StationCapabilities {
		return mme.StationCapabilities(b)
	}, WithTimeout(10*time.Millisecond))
	if err != nil {
		t.Fatalf("Request: %v", err)
	}
	if got != nil {
		t.Errorf("Request should ignore reply from non-destination station, got %v", got)
	}
}

func TestRequestIgnoresUnexpectedMessageThenMatches(t *testing.T) {
	m := netif.NewMockSocket()
	dest := ethernet.Addr{0x00, 0x1f, 0x84, 0x01, 0x02, 0x03}

	// An unrelated confirmation arrives first; Request must keep waiting.
	m.QueueReply(dest, buildFrame(t, mme.CM_BRG_INFO.Cnf(), []byte{0x00}))
	m.QueueReply(dest, buildFrame(t, mme.CM_STA_CAP.Cnf(), []byte{byte(mme.StaCapHomePlugAV1_1)}))

	got, err := Request(context.Background(), m, dest, mme.StationCapabilitiesRequest{}, func(b []byte) mme.StationCapabilities {
		return mme.StationCapabilities(b)
	}, WithTimeout(50*time.Millisecond))
	if err != nil {
		t.Fatalf("Request: %v", err)
	}
	if got == nil {
		t.Fatal("expected a decoded reply after skipping the unrelated message")
	}
	if got.Version() != mme.StaCapHomePlugAV1_1 {
		t.Errorf("Version() = %v, want StaCapHomePlugAV1_1", got.Version())
	}
}

func TestRequestProtocolErrorLogsAndKeepsWaiting(t *testing.T) {
	m := netif.NewMockSocket()
	dest := ethernet.Addr{0x00, 0x1f, 0x84, 0x01, 0x02, 0x03}

	rejected := mme.CM_STA_CAP.Req().Bytes()
	errBody := []byte{
		byte(mme.ErrorUnsupportedFeature),
		byte(mme.Version1_1),
		rejected[0], rejected[1],
		0x05, 0x00,
	}
	// A CM_MME_ERROR indication arrives first; Request must log it and
	// keep waiting rather than ending the exchange, so the later
	// matching confirmation still gets decoded and returned.
	m.QueueReply(dest, buildFrame(t, mme.CM_MME_ERROR.Ind(), errBody))
	m.QueueReply(dest, buildFrame(t, mme.CM_STA_CAP.Cnf(), []byte{byte(mme.StaCapHomePlugAV2_0)}))

	got, err := Request(context.Background(), m, dest, mme.StationCapabilitiesRequest{}, func(b []byte) mme.StationCapabilities {
		return mme.StationCapabilities(b)
	}, WithTimeout(50*time.Millisecond))
	if err != nil {
		t.Fatalf("Request: %v", err)
	}
	if got == nil {
		t.Fatal("expected a decoded reply after the protocol-error indication was logged and skipped")
	}
	if got.Version() != mme.StaCapHomePlugAV2_0 {
		t.Errorf("Version() = %v, want StaCapHomePlugAV2_0", got.Version())
	}
}

func TestRequestProtocolErrorThenTimeout(t *testing.T) {
	m := netif.NewMockSocket()
	dest := ethernet.Addr{0x00, 0x1f, 0x84, 0x01, 0x02, 0x03}

	rejected := mme.CM_STA_CAP.Req().Bytes()
	errBody := []byte{
		byte(mme.ErrorInvalidFields),
		byte(mme.Version1_1),
		rejected[0], rejected[1],
		0x00, 0x00,
	}
	m.QueueReply(dest, buildFrame(t, mme.CM_MME_ERROR.Ind(), errBody))

	got, err := Request(context.Background(), m, dest, mme.StationCapabilitiesRequest{}, func(b []byte) mme.StationCapabilities {
		return mme.StationCapabilities(b)
	}, WithTimeout(10*time.Millisecond))
	if err != nil {
		t.Fatalf("Request returned error on eventual timeout: %v", err)
	}
	if got != nil {
		t.Errorf("Request = %v, want nil after only a protocol-error indication and no confirmation", got)
	}
}

func TestDiscoverCollectsMultipleStations(t *testing.T) {
	m := netif.NewMockSocket()
	station1 := ethernet.Addr{0x00, 0x1f, 0x84, 0x00, 0x00, 0x01}
	station2 := ethernet.Addr{0x00, 0x1f, 0x84, 0x00, 0x00, 0x02}

	// Each DiscoverList CNF body: 1 count byte + one 12-byte station record,
	// zero-filled out to 1 + 20*stationCount, where Networks() looks for
	// the network list.
	body1 := make([]byte, 1+20)
	body1[0] = 1
	copy(body1[1:], station1[:])
	body1[1+6] = 0x10  // TEI
	body1[1+10] = 0x05 // signal level byte within station record

	body2 := make([]byte, 1+20)
	body2[0] = 1
	copy(body2[1:], station2[:])
	body2[1+6] = 0x20

	m.QueueReply(station1, buildFrame(t, mme.CC_DISCOVER_LIST.Cnf(), body1))
	m.QueueReply(station2, buildFrame(t, mme.CC_DISCOVER_LIST.Cnf(), body2))

	stations, err := Discover(context.Background(), m, WithTimeout(50*time.Millisecond))
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(stations) != 2 {
		t.Fatalf("Discover returned %d stations, want 2", len(stations))
	}

	seen := map[ethernet.Addr]bool{}
	for _, s := range stations {
		seen[s.Addr] = true
	}
	if !seen[station1] || !seen[station2] {
		t.Errorf("Discover results = %v, want both %v and %v", stations, station1, station2)
	}
}

func TestDiscoverTimeoutReturnsNilNoError(t *testing.T) {
	m := netif.NewMockSocket()

	stations, err := Discover(context.Background(), m, WithTimeout(10*time.Millisecond))
	if err != nil {
		t.Fatalf("Discover returned error on timeout: %v", err)
	}
	if stations != nil {
		t.Errorf("Discover on timeout = %v, want nil", stations)
	}
}

func TestDumpAllAggregatesAcrossSockets(t *testing.T) {
	eth0 := netif.NewMockSocket()
	eth1 := netif.NewMockSocket()

	sA := ethernet.Addr{0x00, 0x1f, 0x84, 0x00, 0x00, 0x0a}
	sB := ethernet.Addr{0x00, 0x1f, 0x84, 0x00, 0x00, 0x0b}

	bodyA := make([]byte, 1+20)
	bodyA[0] = 1
	copy(bodyA[1:], sA[:])
	eth0.QueueReply(sA, buildFrame(t, mme.CC_DISCOVER_LIST.Cnf(), bodyA))

	bodyB := make([]byte, 1+20)
	bodyB[0] = 1
	copy(bodyB[1:], sB[:])
	eth1.QueueReply(sB, buildFrame(t, mme.CC_DISCOVER_LIST.Cnf(), bodyB))

	results := DumpAll(context.Background(), map[string]Socket{
		"eth0": eth0,
		"eth1": eth1,
	}, WithTimeout(50*time.Millisecond))

	if len(results) != 2 {
		t.Fatalf("DumpAll returned %d interfaces, want 2", len(results))
	}
	if len(results["eth0"]) != 1 || results["eth0"][0].Addr != sA {
		t.Errorf("eth0 results = %v, want one station %v", results["eth0"], sA)
	}
	if len(results["eth1"]) != 1 || results["eth1"][0].Addr != sB {
		t.Errorf("eth1 results = %v, want one station %v", results["eth1"], sB)
	}
}
