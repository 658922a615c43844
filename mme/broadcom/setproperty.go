package broadcom

import (
	"github.com/hpav/hpav/ethernet"
	"github.com/hpav/hpav/mme"
)

// setPropertyMMType is the vendor-tagged MMType base for SetProperty,
// always sent as a request (0xa058).
const setPropertyMMType = mme.MMType(0xa058)

// setPropertyDataLen is the fixed size of a SetProperty data block.
const setPropertyDataLen = 64

// Byte offsets within a SetProperty request body.
const (
	offSeq      = 0
	offProperty = 1
	offUnknown  = 2
	offCount    = 3
	offSize0    = 4
	offData     = 6
)

// SetPropertyRequest encodes a SetProperty.REQ carrying a single 64-byte
// data record.
type SetPropertyRequest struct {
	Seq      uint8
	Property Property
	Data     [setPropertyDataLen]byte
}

func (SetPropertyRequest) MMVersion() mme.Version { return mme.Version2_0 }
func (SetPropertyRequest) MMType() mme.MMType     { return setPropertyMMType }
func (SetPropertyRequest) OUI() ethernet.OUI      { return ethernet.Broadcom }

// Encode writes the 6-byte SetProperty header plus the 64-byte data block
// (70 bytes total) into buf's body region, following the header, and
// returns the total number of bytes written including the MME header.
func (r SetPropertyRequest) Encode(buf []byte) (int, error) {
	body, err := mme.SetHeader(buf, mme.Version2_0, setPropertyMMType, ethernet.Broadcom)
	if err != nil {
		return 0, err
	}
	need := offData + setPropertyDataLen
	if len(body) < need {
		return 0, errBodyTooShort
	}
	body[offSeq] = r.Seq
	body[offProperty] = byte(r.Property)
	body[offUnknown] = 0
	body[offCount] = 1
	body[offSize0] = byte(setPropertyDataLen)
	body[offSize0+1] = byte(setPropertyDataLen >> 8)
	copy(body[offData:offData+setPropertyDataLen], r.Data[:])
	return len(buf) - len(body) + need, nil
}
