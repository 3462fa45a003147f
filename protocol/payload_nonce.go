package protocol

func (s *NoncePayload) Type() PayloadType {
	return PayloadTypeNonce
}

func (s *NoncePayload) Encode() (b []byte, err error) {
	if len(s.Nonce) < 16 || len(s.Nonce) > 256 {
		return nil, ErrF(ERR_INVALID_SYNTAX, "NONCE length invalid: %d", len(s.Nonce))
	}
	return append([]byte{}, s.Nonce...), nil
}

func (s *NoncePayload) Decode(b []byte) error {
	// Header has already been decoded
	// between 16 and 256 octets
	if len(b) < 16 || len(b) > 256 {
		return ErrF(ERR_INVALID_SYNTAX, "NONCE length invalid: %d", len(b))
	}
	s.Nonce = append([]byte{}, b...)
	return nil
}
