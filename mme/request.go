package mme

import "github.com/hpav/hpav/ethernet"

// Request is implemented by every message type this module can send. Encode
// writes the full MME (header plus body) into buf, which must be at least
// 60 bytes — the HomePlug AV minimum MME length — and returns the number of
// bytes written.
type Request interface {
	MMVersion() Version
	MMType() MMType
	OUI() ethernet.OUI
	Encode(buf []byte) (int, error)
}

// MinMMELen is the minimum length, in octets, of a HomePlug AV management
// message, padding shorter bodies out to this size.
const MinMMELen = 60
