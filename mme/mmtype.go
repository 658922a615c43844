package mme

import "fmt"

// Code is the 2-bit request/confirm/indicate/response discriminator packed
// into the low bits of an MMType.
type Code uint8

const (
	CodeReq Code = 0b00
	CodeCnf Code = 0b01
	CodeInd Code = 0b10
	CodeRsp Code = 0b11
)

// MMType is a 16-bit management message type: a 14-bit base identifying the
// message family plus a 2-bit Code.
type MMType uint16

// Named bases, REQ form (code bits = 0b00), taken from the HomePlug AV
// management message catalogue.
const (
	CC_CCO_APPOINT           MMType = 0x0000
	CC_BACKUP_APPOINT        MMType = 0x0004
	CC_LINK_INFO             MMType = 0x0008
	CC_HANDOVER              MMType = 0x000C
	CC_HANDOVER_INFO         MMType = 0x0010
	CC_DISCOVER_LIST         MMType = 0x0014
	CC_LINK_NEW              MMType = 0x0018
	CC_LINK_MOD              MMType = 0x001C
	CC_LINK_SQZ              MMType = 0x0020
	CC_LINK_REL              MMType = 0x0024
	CC_DETECT_REPORT         MMType = 0x0028
	CC_WHO_RU                MMType = 0x002C
	CC_ASSOC                 MMType = 0x0030
	CC_LEAVE                 MMType = 0x0034
	CC_SET_TEI_MAP           MMType = 0x0038
	CC_RELAY                 MMType = 0x003C
	CC_BEACON_RELIABILITY    MMType = 0x0040
	CC_ALLOC_MOVE            MMType = 0x0044
	CC_ACCESS_NEW            MMType = 0x0048
	CC_ACCESS_REL            MMType = 0x004C
	CC_DCPPC                 MMType = 0x0050
	CC_HP1_DET               MMType = 0x0054
	CC_BLE_UPDATE            MMType = 0x0058
	CC_BCAST_REPEAT          MMType = 0x005C
	CC_MH_LINK_NEW           MMType = 0x0060
	CC_ISP_DETECTION_REPORT  MMType = 0x0064
	CC_ISP_START_RESYNC      MMType = 0x0068
	CC_ISP_FINISH_RESYNC     MMType = 0x006C
	CC_ISP_RESYNC_DETECTED   MMType = 0x0070
	CC_ISP_RESYNC_TRANSMIT   MMType = 0x0074
	CC_POWERSAVE             MMType = 0x0078
	CC_POWERSAVE_EXIT        MMType = 0x007C
	CC_POWERSAVE_LIST        MMType = 0x0080
	CC_STOP_POWERSAVE        MMType = 0x0084
	CP_PROXY_APPOINT         MMType = 0x2000
	PH_PROXY_APPOINT         MMType = 0x2004
	CP_PROXY_WAKE            MMType = 0x2008
	NN_INL                   MMType = 0x4000
	NN_NEW_NET               MMType = 0x4004
	NN_ADD_ALLOC             MMType = 0x4008
	NN_REL_ALLOC             MMType = 0x400C
	NN_REL_NET               MMType = 0x4010
	CM_UNASSOCIATED_STA      MMType = 0x6000
	CM_ENCRYPTED_PAYLOAD     MMType = 0x6004
	CM_SET_KEY               MMType = 0x6008
	CM_GET_KEY               MMType = 0x600C
	CM_SC_JOIN               MMType = 0x6010
	CM_CHAN_EST              MMType = 0x6014
	CM_TM_UPDATE             MMType = 0x6018
	CM_AMP_MAP               MMType = 0x601C
	CM_BRG_INFO              MMType = 0x6020
	CM_CONN_NEW              MMType = 0x6024
	CM_CONN_REL              MMType = 0x6028
	CM_CONN_MOD              MMType = 0x602C
	CM_CONN_INFO             MMType = 0x6030
	CM_STA_CAP               MMType = 0x6034
	CM_NW_INFO               MMType = 0x6038
	CM_GET_BEACON            MMType = 0x603C
	CM_HFID                  MMType = 0x6040
	CM_MME_ERROR             MMType = 0x6044
	CM_NW_STATS              MMType = 0x6048
	CM_LINK_STATS            MMType = 0x604C
	CM_ROUTE_INFO            MMType = 0x6050
	CM_UNREACHABLE           MMType = 0x6054
	CM_MH_CONN_NEW           MMType = 0x6058
	CM_EXTENDEDTONEMASK      MMType = 0x605C
	CM_STA_IDENTIFY          MMType = 0x6060
	CM_TRIGGER_ATTEN_CHAR    MMType = 0x6064
	CM_START_ATTEN_CHAR      MMType = 0x6068
	CM_ATTEN_CHAR            MMType = 0x606C
	CM_PKCS_CERT             MMType = 0x6070
	CM_MNBC_SOUND            MMType = 0x6074
	CM_VALIDATE              MMType = 0x6078
	CM_SLAC_MATCH            MMType = 0x607C
	CM_SLAC_USER_DATA        MMType = 0x6080
	CM_ATTEN_PROFILE         MMType = 0x6084
)

var mmtypeNames = map[MMType]string{
	CC_CCO_APPOINT:          "CC_CCO_APPOINT",
	CC_BACKUP_APPOINT:       "CC_BACKUP_APPOINT",
	CC_LINK_INFO:            "CC_LINK_INFO",
	CC_HANDOVER:             "CC_HANDOVER",
	CC_HANDOVER_INFO:        "CC_HANDOVER_INFO",
	CC_DISCOVER_LIST:        "CC_DISCOVER_LIST",
	CC_LINK_NEW:             "CC_LINK_NEW",
	CC_LINK_MOD:             "CC_LINK_MOD",
	CC_LINK_SQZ:             "CC_LINK_SQZ",
	CC_LINK_REL:             "CC_LINK_REL",
	CC_DETECT_REPORT:        "CC_DETECT_REPORT",
	CC_WHO_RU:               "CC_WHO_RU",
	CC_ASSOC:                "CC_ASSOC",
	CC_LEAVE:                "CC_LEAVE",
	CC_SET_TEI_MAP:          "CC_SET_TEI_MAP",
	CC_RELAY:                "CC_RELAY",
	CC_BEACON_RELIABILITY:   "CC_BEACON_RELIABILITY",
	CC_ALLOC_MOVE:           "CC_ALLOC_MOVE",
	CC_ACCESS_NEW:           "CC_ACCESS_NEW",
	CC_ACCESS_REL:           "CC_ACCESS_REL",
	CC_DCPPC:                "CC_DCPPC",
	CC_HP1_DET:              "CC_HP1_DET",
	CC_BLE_UPDATE:           "CC_BLE_UPDATE",
	CC_BCAST_REPEAT:         "CC_BCAST_REPEAT",
	CC_MH_LINK_NEW:          "CC_MH_LINK_NEW",
	CC_ISP_DETECTION_REPORT: "CC_ISP_DETECTION_REPORT",
	CC_ISP_START_RESYNC:     "CC_ISP_START_RESYNC",
	CC_ISP_FINISH_RESYNC:    "CC_ISP_FINISH_RESYNC",
	CC_ISP_RESYNC_DETECTED:  "CC_ISP_RESYNC_DETECTED",
	CC_ISP_RESYNC_TRANSMIT:  "CC_ISP_RESYNC_TRANSMIT",
	CC_POWERSAVE:            "CC_POWERSAVE",
	CC_POWERSAVE_EXIT:       "CC_POWERSAVE_EXIT",
	CC_POWERSAVE_LIST:       "CC_POWERSAVE_LIST",
	CC_STOP_POWERSAVE:       "CC_STOP_POWERSAVE",
	CP_PROXY_APPOINT:        "CP_PROXY_APPOINT",
	PH_PROXY_APPOINT:        "PH_PROXY_APPOINT",
	CP_PROXY_WAKE:           "CP_PROXY_WAKE",
	NN_INL:                  "NN_INL",
	NN_NEW_NET:              "NN_NEW_NET",
	NN_ADD_ALLOC:            "NN_ADD_ALLOC",
	NN_REL_ALLOC:            "NN_REL_ALLOC",
	NN_REL_NET:              "NN_REL_NET",
	CM_UNASSOCIATED_STA:     "CM_UNASSOCIATED_STA",
	CM_ENCRYPTED_PAYLOAD:    "CM_ENCRYPTED_PAYLOAD",
	CM_SET_KEY:              "CM_SET_KEY",
	CM_GET_KEY:              "CM_GET_KEY",
	CM_SC_JOIN:              "CM_SC_JOIN",
	CM_CHAN_EST:             "CM_CHAN_EST",
	CM_TM_UPDATE:            "CM_TM_UPDATE",
	CM_AMP_MAP:              "CM_AMP_MAP",
	CM_BRG_INFO:             "CM_BRG_INFO",
	CM_CONN_NEW:             "CM_CONN_NEW",
	CM_CONN_REL:             "CM_CONN_REL",
	CM_CONN_MOD:             "CM_CONN_MOD",
	CM_CONN_INFO:            "CM_CONN_INFO",
	CM_STA_CAP:              "CM_STA_CAP",
	CM_NW_INFO:              "CM_NW_INFO",
	CM_GET_BEACON:           "CM_GET_BEACON",
	CM_HFID:                 "CM_HFID",
	CM_MME_ERROR:            "CM_MME_ERROR",
	CM_NW_STATS:             "CM_NW_STATS",
	CM_LINK_STATS:           "CM_LINK_STATS",
	CM_ROUTE_INFO:           "CM_ROUTE_INFO",
	CM_UNREACHABLE:          "CM_UNREACHABLE",
	CM_MH_CONN_NEW:          "CM_MH_CONN_NEW",
	CM_EXTENDEDTONEMASK:     "CM_EXTENDEDTONEMASK",
	CM_STA_IDENTIFY:         "CM_STA_IDENTIFY",
	CM_TRIGGER_ATTEN_CHAR:   "CM_TRIGGER_ATTEN_CHAR",
	CM_START_ATTEN_CHAR:     "CM_START_ATTEN_CHAR",
	CM_ATTEN_CHAR:           "CM_ATTEN_CHAR",
	CM_PKCS_CERT:            "CM_PKCS_CERT",
	CM_MNBC_SOUND:           "CM_MNBC_SOUND",
	CM_VALIDATE:             "CM_VALIDATE",
	CM_SLAC_MATCH:           "CM_SLAC_MATCH",
	CM_SLAC_USER_DATA:       "CM_SLAC_USER_DATA",
	CM_ATTEN_PROFILE:        "CM_ATTEN_PROFILE",
}

// FromBytes reads a little-endian MMType from the first two bytes of b. It
// panics if b is shorter than 2 bytes; callers must bounds-check first.
func FromBytes(b []byte) MMType {
	return MMType(uint16(b[0]) | uint16(b[1])<<8)
}

// Bytes returns the little-endian wire encoding of m.
func (m MMType) Bytes() [2]byte {
	return [2]byte{byte(m), byte(m >> 8)}
}

// Base returns m with its Code bits cleared.
func (m MMType) Base() MMType { return m &^ 0b11 }

// CodeOf returns m's Code.
func (m MMType) CodeOf() Code { return Code(m & 0b11) }

// Req, Cnf, Ind, Rsp return the Base of m combined with the named Code.
func (m MMType) Req() MMType { return m.Base() | MMType(CodeReq) }
func (m MMType) Cnf() MMType { return m.Base() | MMType(CodeCnf) }
func (m MMType) Ind() MMType { return m.Base() | MMType(CodeInd) }
func (m MMType) Rsp() MMType { return m.Base() | MMType(CodeRsp) }

// IsVendor reports whether m's base falls in the vendor-specific family,
// i.e. bits 13..15 equal 0b101.
func (m MMType) IsVendor() bool {
	return (uint16(m)>>13)&0b111 == 0b101
}

// String renders m using its named base if known, else a family-prefixed
// hex fallback, followed by its Code.
func (m MMType) String() string {
	base := m.Base()
	name, ok := mmtypeNames[base]
	if !ok {
		family := (uint16(base) >> 13) & 0b111
		var prefix string
		switch family {
		case 0b000:
			prefix = "STA<>CCo"
		case 0b001:
			prefix = "Proxy"
		case 0b010:
			prefix = "CCo<>CCo"
		case 0b011:
			prefix = "STA<>STA"
		case 0b100:
			prefix = "Manufacturer"
		case 0b101:
			prefix = "Vendor"
		default:
			prefix = "Unknown"
		}
		name = fmt.Sprintf("%s%04x", prefix, uint16(base))
	}
	return fmt.Sprintf("%s.%s", name, m.CodeOf())
}

func (c Code) String() string {
	switch c {
	case CodeReq:
		return "REQ"
	case CodeCnf:
		return "CNF"
	case CodeInd:
		return "IND"
	case CodeRsp:
		return "RSP"
	default:
		return "?"
	}
}
