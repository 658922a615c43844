// Package keys derives HomePlug AV network membership keys (NMK) and
// network identifiers (NID) from a human-chosen passphrase, matching the
// iterative-SHA-256 construction every HomePlug AV station implements.
package keys

import "crypto/sha256"

// nmkSalt is appended to the UTF-8 passphrase before the first hash round.
var nmkSalt = [8]byte{0x08, 0x85, 0x6d, 0xaf, 0x7c, 0xf5, 0x81, 0x86}

// nmkIterations is the number of additional SHA-256 rounds applied after
// the initial salted hash.
const nmkIterations = 999

// nidIterations is the number of additional SHA-256 rounds applied after
// the initial hash of the NMK when deriving an NID.
const nidIterations = 4

// Well-known NMKs used by stock HomePlug AV firmware defaults.
var (
	NMKHomePlugAV = [16]byte{
		0x50, 0xd3, 0xe4, 0x93, 0x3f, 0x85, 0x5b, 0x70,
		0x40, 0x78, 0x4d, 0xf8, 0x15, 0xaa, 0x8d, 0xb7,
	}
	NMKHomePlugAV0123 = [16]byte{
		0xb5, 0x93, 0x19, 0xd7, 0xe8, 0x15, 0x7b, 0xa0,
		0x01, 0xb0, 0x18, 0x66, 0x9c, 0xce, 0xe3, 0x0d,
	}
)

// SecurityLevel identifies the encryption mode an NID encodes.
type SecurityLevel uint8

const (
	SecuritySimple SecurityLevel = 0x00
	SecuritySecure SecurityLevel = 0x01
)

// GenerateNMK derives a 16-byte network membership key from a passphrase:
// SHA-256(passphrase || salt), then 999 further rounds of SHA-256 over the
// previous digest, truncated to its first 16 bytes.
func GenerateNMK(passphrase string) [16]byte {
	h := sha256.New()
	h.Write([]byte(passphrase))
	h.Write(nmkSalt[:])
	digest := h.Sum(nil)

	for i := 0; i < nmkIterations; i++ {
		sum := sha256.Sum256(digest)
		digest = sum[:]
	}

	var nmk [16]byte
	copy(nmk[:], digest[:16])
	return nmk
}

// GenerateNID derives a 7-byte network identifier from an NMK and a
// security level: SHA-256 of the NMK, then 4 further rounds of SHA-256 over
// the previous digest; the 7th byte's high nibble is shifted down into its
// low nibble and the security level is placed in the high nibble, and the
// result is truncated to the first 7 bytes.
func GenerateNID(nmk [16]byte, level SecurityLevel) [7]byte {
	sum := sha256.Sum256(nmk[:])
	digest := sum[:]
	for i := 0; i < nidIterations; i++ {
		sum = sha256.Sum256(digest)
		digest = sum[:]
	}

	digest[6] = (digest[6] >> 4) | (byte(level) << 4)

	var nid [7]byte
	copy(nid[:], digest[:7])
	return nid
}
