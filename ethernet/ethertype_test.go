package ethernet

import "testing"

func TestTypeBytesRoundTrip(t *testing.T) {
	for _, et := range []Type{LLDP, HomePlug, HomePlugAV, MediaXtream, IEEE1905} {
		b := et.Bytes()
		got := TypeFromBytes(b[:])
		if got != et {
			t.Errorf("round trip for %04x: got %04x", uint16(et), uint16(got))
		}
	}
}

func TestTypeName(t *testing.T) {
	if HomePlugAV.Name() != "HomePlugAV" {
		t.Errorf("HomePlugAV.Name() = %q", HomePlugAV.Name())
	}
	if name := Type(0xdead).Name(); name != "" {
		t.Errorf("unrecognised type Name() = %q, want empty", name)
	}
}

func TestOUIName(t *testing.T) {
	name, ok := Broadcom.Name()
	if !ok || name != "Broadcom" {
		t.Errorf("Broadcom.Name() = (%q, %v), want (\"Broadcom\", true)", name, ok)
	}
	if _, ok := (OUI{0xde, 0xad, 0xbe}).Name(); ok {
		t.Error("unrecognised OUI: Name() ok = true")
	}
}
