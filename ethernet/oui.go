package ethernet

// OUI is a 3-octet IEEE-assigned vendor address prefix.
type OUI [3]byte

// Vendor OUIs this module recognises by name.
var (
	Qualcomm = OUI{0x00, 0xb0, 0x52}
	Broadcom = OUI{0x00, 0x1f, 0x84}
	ST       = OUI{0x00, 0x80, 0xe1}
)

var ouiNames = map[OUI]string{
	Qualcomm: "Qualcomm",
	Broadcom: "Broadcom",
	ST:       "ST",
}

// Name returns the vendor name for o and true, or "" and false if o is not
// one of the recognised vendor prefixes.
func (o OUI) Name() (string, bool) {
	name, ok := ouiNames[o]
	return name, ok
}
