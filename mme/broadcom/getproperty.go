package broadcom

import (
	"github.com/hpav/hpav/ethernet"
	"github.com/hpav/hpav/mme"
)

// getPropertyMMType is the vendor-tagged MMType base for GetProperty,
// always sent as a request (0xa05c).
const getPropertyMMType = mme.MMType(0xa05c)

// GetPropertyRequest encodes a GetProperty.REQ for the named property.
type GetPropertyRequest struct {
	Seq      uint8
	Property Property
}

func (GetPropertyRequest) MMVersion() mme.Version { return mme.Version2_0 }
func (GetPropertyRequest) MMType() mme.MMType     { return getPropertyMMType }
func (GetPropertyRequest) OUI() ethernet.OUI      { return ethernet.Broadcom }

func (r GetPropertyRequest) Encode(buf []byte) (int, error) {
	body, err := mme.SetHeader(buf, mme.Version2_0, getPropertyMMType, ethernet.Broadcom)
	if err != nil {
		return 0, err
	}
	if len(body) < 2 {
		return 0, errBodyTooShort
	}
	body[0] = r.Seq
	body[1] = byte(r.Property)
	return len(buf) - len(body) + 2, nil
}

// GetProperty is a borrowed view over a GetProperty.CNF payload: a
// sequence number, a record count, a fixed record size, and that many
// fixed-size records.
type GetProperty []byte

func (g GetProperty) Seq() uint8 {
	if len(g) < 1 {
		return 0
	}
	return g[0]
}

func (g GetProperty) Count() int {
	if len(g) < 2 {
		return 0
	}
	return int(g[1])
}

func (g GetProperty) RecordSize() int {
	if len(g) < 4 {
		return 0
	}
	return int(g[2]) | int(g[3])<<8
}

// Records returns the property's data records.
func (g GetProperty) Records() [][]byte {
	size := g.RecordSize()
	if size <= 0 || len(g) < 4 {
		return nil
	}
	rest := g[4:]
	count := g.Count()
	var out [][]byte
	for i := 0; i < count && len(rest) >= (i+1)*size; i++ {
		out = append(out, rest[i*size:(i+1)*size])
	}
	return out
}

// First returns the first record, or nil if there are none.
func (g GetProperty) First() []byte {
	recs := g.Records()
	if len(recs) == 0 {
		return nil
	}
	return recs[0]
}

type bodyTooShortError struct{}

func (*bodyTooShortError) Error() string { return "broadcom: buffer too short for message body" }

var errBodyTooShort = &bodyTooShortError{}
