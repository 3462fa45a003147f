package protocol

func (s *VendorIdPayload) Type() PayloadType {
	return PayloadTypeV
}

func (s *VendorIdPayload) Encode() (b []byte, err error) {
	return append([]byte{}, s.Data...), nil
}

func (s *VendorIdPayload) Decode(b []byte) error {
	// the vendor id is opaque; even zero bytes are tolerated
	s.Data = append([]byte{}, b...)
	return nil
}
