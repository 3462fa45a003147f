package protocol

import "github.com/msgboxio/packets"

// sha1 output size; the authority data is a concatenation of these
const certAuthorityHashLen = 20

func (s *CertRequestPayload) Type() PayloadType {
	return PayloadTypeCERTREQ
}

func (s *CertRequestPayload) Encode() (b []byte, err error) {
	if len(s.AuthorityData)%certAuthorityHashLen != 0 {
		return nil, ErrF(ERR_INVALID_SYNTAX,
			"CERTREQ authority data length %d is not a multiple of %d", len(s.AuthorityData), certAuthorityHashLen)
	}
	b = []byte{uint8(s.CertEncodingType)}
	return append(b, s.AuthorityData...), nil
}

func (s *CertRequestPayload) Decode(b []byte) error {
	if len(b) < 1 {
		return ErrF(ERR_INVALID_SYNTAX, "CERTREQ payload too small %d < %d", len(b), 1)
	}
	ct, _ := packets.ReadB8(b, 0)
	s.CertEncodingType = CertEncodingType(ct)
	s.AuthorityData = append([]byte{}, b[1:]...)
	if s.CertEncodingType == X_509_CERTIFICATE_SIGNATURE &&
		len(s.AuthorityData)%certAuthorityHashLen != 0 {
		return ErrF(ERR_INVALID_SYNTAX,
			"CERTREQ authority data length %d is not a multiple of %d", len(s.AuthorityData), certAuthorityHashLen)
	}
	return nil
}

// Authorities splits the authority data into the individual CA
// public-key hashes.
func (s *CertRequestPayload) Authorities() (hashes [][]byte) {
	for b := s.AuthorityData; len(b) >= certAuthorityHashLen; b = b[certAuthorityHashLen:] {
		hashes = append(hashes, b[:certAuthorityHashLen])
	}
	return
}
