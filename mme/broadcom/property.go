// Package broadcom implements the Broadcom/MediaXtream vendor-specific
// GetProperty and SetProperty management messages carried inside
// vendor-tagged HomePlug AV MMEs.
package broadcom

// Property identifies a Broadcom/MediaXtream configuration property.
type Property uint8

const (
	NameA0   Property = 0x1b
	NameB0   Property = 0x1c
	HFIDUser Property = 0x25
	NameB1   Property = 0x26
)
