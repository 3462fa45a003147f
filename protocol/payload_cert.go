package protocol

import "github.com/msgboxio/packets"

func (s *CertPayload) Type() PayloadType {
	return PayloadTypeCERT
}

func (s *CertPayload) Encode() (b []byte, err error) {
	b = []byte{uint8(s.CertEncodingType)}
	return append(b, s.Data...), nil
}

func (s *CertPayload) Decode(b []byte) error {
	if len(b) < 1 {
		return ErrF(ERR_INVALID_SYNTAX, "CERT payload too small %d < %d", len(b), 1)
	}
	// Header has already been decoded
	ct, _ := packets.ReadB8(b, 0)
	s.CertEncodingType = CertEncodingType(ct)
	s.Data = append([]byte{}, b[1:]...)
	return nil
}
