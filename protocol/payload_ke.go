package protocol

import "github.com/msgboxio/packets"

func (s *KePayload) Type() PayloadType { return PayloadTypeKE }

func (s *KePayload) Encode() (b []byte, err error) {
	b = make([]byte, 4)
	packets.WriteB16(b, 0, uint16(s.DhTransformId))
	return append(b, s.KeyData...), nil
}

func (s *KePayload) Decode(b []byte) (err error) {
	if len(b) < 4 {
		return ErrF(ERR_INVALID_SYNTAX, "KE payload too small %d < %d", len(b), 4)
	}
	// Header has already been decoded
	gn, _ := packets.ReadB16(b, 0)
	s.DhTransformId = DhTransformId(gn)
	// key data is kept as raw bytes; leading zero octets are significant
	// for exact re-encoding
	s.KeyData = append([]byte{}, b[4:]...)
	return
}
