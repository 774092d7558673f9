package inventory

import "github.com/lf-edge/eve-devmodel/api/config"

// IoType classifies an assignable io bundle. Values match ZCioType.
type IoType uint8

const (
	IoNop   IoType = 0
	IoEth   IoType = 1
	IoUSB   IoType = 2
	IoCom   IoType = 3
	IoHDMI  IoType = 4
	IoOther IoType = 255
)

// IoTypeFromProto converts a wire value. Numbers outside the known set map
// to IoOther.
func IoTypeFromProto(t config.ZCioType) IoType {
	switch t {
	case config.ZCioType_ZCioNop:
		return IoNop
	case config.ZCioType_ZCioEth:
		return IoEth
	case config.ZCioType_ZCioUSB:
		return IoUSB
	case config.ZCioType_ZCioCOM:
		return IoCom
	case config.ZCioType_ZCioHDMI:
		return IoHDMI
	default:
		return IoOther
	}
}

// ToProto returns the wire value for t.
func (t IoType) ToProto() config.ZCioType {
	return config.ZCioType(t)
}

func (t IoType) String() string {
	switch t {
	case IoNop:
		return "nop"
	case IoEth:
		return "eth"
	case IoUSB:
		return "usb"
	case IoCom:
		return "com"
	case IoHDMI:
		return "hdmi"
	case IoOther:
		return "other"
	default:
		return "unknown"
	}
}
