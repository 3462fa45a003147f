package protocol

import (
	"github.com/sirupsen/logrus"
)

// Cryptographic operations are supplied by the caller. The codec never
// derives keys or picks algorithms; it only frames the opaque body.
type (
	// DecryptFunc removes IV, padding and the integrity checksum and
	// returns the inner plaintext.
	DecryptFunc func(ciphertext []byte) (plaintext []byte, err error)
	// EncryptFunc produces the full encrypted body: IV, ciphertext,
	// padding and checksum trailer.
	EncryptFunc func(plaintext []byte) (ciphertext []byte, err error)
	// ChecksumVerifyFunc checks a received integrity checksum over data.
	ChecksumVerifyFunc func(data, receivedChecksum []byte) bool
	// ChecksumComputeFunc computes an integrity checksum over data.
	ChecksumComputeFunc func(data []byte) []byte
)

func (s *EncryptedPayload) Type() PayloadType { return PayloadTypeSK }

func (s *EncryptedPayload) Encode() ([]byte, error) {
	return append([]byte{}, s.Body...), nil
}

func (s *EncryptedPayload) Decode(b []byte) error {
	// opaque until the caller supplies a DecryptFunc
	s.Body = append([]byte{}, b...)
	return nil
}

// Decrypt applies decrypt to the body and parses the plaintext as a
// payload chain starting at the SK header's next payload type.
func (s *EncryptedPayload) Decrypt(decrypt DecryptFunc, log *logrus.Logger) (*Payloads, error) {
	if decrypt == nil {
		return nil, ErrF(ERR_INVALID_SYNTAX, "cannot decrypt SK payload: no decryptor")
	}
	clear, err := decrypt(s.Body)
	if err != nil {
		return nil, err
	}
	return DecodePayloads(clear, s.NextPayload, log)
}

// EncryptPayloads encodes the given payloads, encrypts the result with
// encrypt, and wraps it in an SK payload whose next payload field points
// at the first inner payload.
func EncryptPayloads(payloads *Payloads, encrypt EncryptFunc, log *logrus.Logger) (*EncryptedPayload, error) {
	if encrypt == nil {
		return nil, ErrF(ERR_INVALID_SYNTAX, "cannot encrypt SK payload: no encryptor")
	}
	clear, err := EncodePayloads(payloads, log)
	if err != nil {
		return nil, err
	}
	body, err := encrypt(clear)
	if err != nil {
		return nil, err
	}
	first := PayloadTypeNone
	if len(payloads.Array) > 0 {
		first = payloads.Array[0].Type()
	}
	return &EncryptedPayload{
		PayloadHeader: &PayloadHeader{NextPayload: first},
		Body:          body,
	}, nil
}
