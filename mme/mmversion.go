// Package mme implements the HomePlug AV Management Message Entry wire
// format: header encoding/decoding, the MMType catalogue, and typed views
// over the per-message payload bodies.
package mme

// Version identifies the HomePlug AV management-message header revision.
type Version uint8

const (
	Version1_0 Version = 0x00
	Version1_1 Version = 0x01
	Version2_0 Version = 0x02
)
