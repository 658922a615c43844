// Package herrors defines the structured error types returned across the
// module: link-layer failures, protocol-level error indications reported by
// a remote station, and malformed-frame decode failures.
package herrors

import (
	"fmt"

	"github.com/hpav/hpav/ethernet"
)

// NetworkError represents a failure opening, sending on, or receiving from
// a link-layer socket.
type NetworkError struct {
	// Operation describes what failed, e.g. "open socket", "send frame".
	Operation string

	// Err is the underlying error, if any.
	Err error

	// Details adds troubleshooting context.
	Details string
}

func (e *NetworkError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("network error during %s: %v (%s)", e.Operation, e.Err, e.Details)
	}
	return fmt.Sprintf("network error during %s: %v", e.Operation, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ProtocolError describes a CM_MME_ERROR indication a remote station sent
// back in reply to a request. The exchange engine logs such indications and
// keeps waiting; it does not return this type itself.
type ProtocolError struct {
	// Station is the address of the station that reported the error.
	Station ethernet.Addr

	// ErrorType is the station-reported error code.
	ErrorType uint8

	// MMVersion and MMType identify the message the station rejected.
	MMVersion uint8
	MMType    uint16

	// Offset is the byte offset the station pointed to, if any.
	Offset uint16
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("station %s reported error %d for mmtype 0x%04x (mmv %d) at offset %d",
		e.Station, e.ErrorType, e.MMType, e.MMVersion, e.Offset)
}

// DecodeError represents a frame that could not be interpreted as a valid
// message body. Decoders in this module never return it themselves — a
// truncated buffer is read permissively wherever possible — but it is
// exposed for callers composing their own validation on top.
type DecodeError struct {
	Operation string
	Offset    int
	Message   string
	Err       error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decode error during %s at offset %d: %s (%v)", e.Operation, e.Offset, e.Message, e.Err)
	}
	return fmt.Sprintf("decode error during %s at offset %d: %s", e.Operation, e.Offset, e.Message)
}

func (e *DecodeError) Unwrap() error { return e.Err }
