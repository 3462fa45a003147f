package protocol

import (
	"github.com/msgboxio/packets"
)

func (s *EapPayload) Type() PayloadType { return PayloadTypeEAP }

func (s *EapPayload) Encode() ([]byte, error) {
	b := make([]byte, 4)
	packets.WriteB8(b, 0, uint8(s.Code))
	packets.WriteB8(b, 1, s.Identifier)
	switch s.Code {
	case EapCodeRequest, EapCodeResponse:
		b = append(b, uint8(s.EapType))
		b = append(b, s.Data...)
	case EapCodeSuccess, EapCodeFailure:
		if len(s.Data) != 0 {
			return nil, ErrF(ERR_INVALID_SYNTAX, "EAP %s carries no data", s.Code)
		}
	default:
		return nil, ErrF(ERR_INVALID_SYNTAX, "unknown EAP code %d", s.Code)
	}
	packets.WriteB16(b, 2, uint16(len(b)))
	return b, nil
}

func (s *EapPayload) Decode(b []byte) error {
	if len(b) < 4 {
		return ErrF(ERR_INVALID_SYNTAX, "EAP message too small %d < 4", len(b))
	}
	code, _ := packets.ReadB8(b, 0)
	s.Identifier, _ = packets.ReadB8(b, 1)
	elen, _ := packets.ReadB16(b, 2)
	// the generic payload header already delimits the body exactly, so
	// a shorter declared length would silently drop trailing octets
	if int(elen) != len(b) {
		return ErrF(ERR_INVALID_SYNTAX, "EAP message length %d does not match body length %d", elen, len(b))
	}
	s.Code = EapCode(code)
	switch s.Code {
	case EapCodeRequest, EapCodeResponse:
		if elen < 5 {
			return ErrF(ERR_INVALID_SYNTAX, "EAP %s without type octet", s.Code)
		}
		etype, _ := packets.ReadB8(b, 4)
		s.EapType = EapType(etype)
		s.Data = append([]byte{}, b[5:elen]...)
	case EapCodeSuccess, EapCodeFailure:
		if elen != 4 {
			return ErrF(ERR_INVALID_SYNTAX, "EAP %s with trailing data", s.Code)
		}
	default:
		return ErrF(ERR_INVALID_SYNTAX, "unknown EAP code %d", code)
	}
	return nil
}
