package mme

import (
	"strings"

	"github.com/hpav/hpav/ethernet"
)

// HFIDRequestCode identifies which human-friendly identifier a CM_HFID
// message is getting or setting.
type HFIDRequestCode uint8

const (
	HFIDGetManufacturer HFIDRequestCode = 0x00
	HFIDGetUser         HFIDRequestCode = 0x01
	HFIDGetNetwork      HFIDRequestCode = 0x02
	HFIDSetUser         HFIDRequestCode = 0x03
	HFIDSetNetwork      HFIDRequestCode = 0x04
	HFIDFailure         HFIDRequestCode = 0xff
)

// hfidNameLen is the fixed, null-padded length of an HFID name field.
const hfidNameLen = 64

// hfidNIDLen is the length of the NID field that GET_NET/SET_NET carry
// in addition to the subtype octet.
const hfidNIDLen = 6

// HFIDGetRequest encodes a CM_HFID.REQ that asks for one of the
// manufacturer/user/network identifiers. NID is only meaningful, and
// only written, when Code is HFIDGetNetwork: GET_MFG/GET_USR encode to a
// single subtype octet, GET_NET encodes to subtype+NID (7 octets).
type HFIDGetRequest struct {
	Code HFIDRequestCode
	NID  [hfidNIDLen]byte
}

func (HFIDGetRequest) MMVersion() Version { return Version1_1 }
func (HFIDGetRequest) MMType() MMType     { return CM_HFID.Req() }
func (HFIDGetRequest) OUI() ethernet.OUI  { return ethernet.OUI{} }

func (r HFIDGetRequest) Encode(buf []byte) (int, error) {
	body, err := SetHeader(buf, Version1_1, CM_HFID.Req(), ethernet.OUI{})
	if err != nil {
		return 0, err
	}
	need := 1
	if r.Code == HFIDGetNetwork {
		need = 1 + hfidNIDLen
	}
	if len(body) < need {
		return 0, errBodyTooShort
	}
	body[0] = byte(r.Code)
	if r.Code == HFIDGetNetwork {
		copy(body[1:1+hfidNIDLen], r.NID[:])
	}
	return len(buf) - len(body) + need, nil
}

// HFIDSetRequest encodes a CM_HFID.REQ that assigns the user or network
// identifier to Name, null-padded to 64 octets. NID is only meaningful,
// and only written, when Code is HFIDSetNetwork: SET_USR encodes to
// subtype+name (65 octets), SET_NET encodes to subtype+NID+name (71
// octets).
type HFIDSetRequest struct {
	Code HFIDRequestCode // HFIDSetUser or HFIDSetNetwork
	NID  [hfidNIDLen]byte
	Name string
}

func (HFIDSetRequest) MMVersion() Version { return Version1_1 }
func (HFIDSetRequest) MMType() MMType     { return CM_HFID.Req() }
func (HFIDSetRequest) OUI() ethernet.OUI  { return ethernet.OUI{} }

func (r HFIDSetRequest) Encode(buf []byte) (int, error) {
	body, err := SetHeader(buf, Version1_1, CM_HFID.Req(), ethernet.OUI{})
	if err != nil {
		return 0, err
	}
	nameOff := 1
	if r.Code == HFIDSetNetwork {
		nameOff = 1 + hfidNIDLen
	}
	need := nameOff + hfidNameLen
	if len(body) < need {
		return 0, errBodyTooShort
	}
	body[0] = byte(r.Code)
	if r.Code == HFIDSetNetwork {
		copy(body[1:1+hfidNIDLen], r.NID[:])
	}
	n := copy(body[nameOff:nameOff+hfidNameLen], r.Name)
	for i := nameOff + n; i < need; i++ {
		body[i] = 0
	}
	return len(buf) - len(body) + need, nil
}

// HFID is a borrowed view over a CM_HFID.CNF payload.
type HFID []byte

func (h HFID) Code() HFIDRequestCode {
	if len(h) < 1 {
		return HFIDFailure
	}
	return HFIDRequestCode(h[0])
}

// Name decodes the 64-octet null-padded name field as UTF-8, trimming the
// trailing NUL padding.
func (h HFID) Name() string {
	if len(h) < 1+hfidNameLen {
		return ""
	}
	return strings.TrimRight(string(h[1:1+hfidNameLen]), "\x00")
}

var errBodyTooShort = &bodyTooShortError{}

type bodyTooShortError struct{}

func (*bodyTooShortError) Error() string { return "mme: buffer too short for message body" }
