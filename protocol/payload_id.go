package protocol

import "github.com/msgboxio/packets"

func (s *IdPayload) Type() PayloadType {
	return s.IdPayloadType
}

func (s *IdPayload) Encode() (b []byte, err error) {
	b = []byte{uint8(s.IdType), 0, 0, 0}
	return append(b, s.Data...), nil
}

func (s *IdPayload) Decode(b []byte) error {
	if len(b) < 4 {
		return ErrF(ERR_INVALID_SYNTAX, "ID payload too small %d < %d", len(b), 4)
	}
	// Header has already been decoded
	idt, _ := packets.ReadB8(b, 0)
	s.IdType = IdType(idt)
	s.Data = append([]byte{}, b[4:]...)
	return nil
}
