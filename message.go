// Package ikev2 implements the IKEv2 (RFC 7296) message codec: the
// fixed header, the chained payloads and the substructures they nest.
// It does no networking and no cryptography of its own; encrypted
// payload and checksum handling is driven through caller supplied
// functions.
package ikev2

import (
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/ikelab/ikev2/protocol"
	"github.com/sirupsen/logrus"
)

// minimal payload sets per exchange, RFC 7296 section 1.2
var (
	InitPayloads = []protocol.PayloadType{
		protocol.PayloadTypeSA,
		protocol.PayloadTypeKE,
		protocol.PayloadTypeNonce,
	}

	AuthIPayloads = []protocol.PayloadType{
		protocol.PayloadTypeIDi,
		protocol.PayloadTypeAUTH,
		protocol.PayloadTypeSA,
		protocol.PayloadTypeTSi,
		protocol.PayloadTypeTSr,
	}
	AuthRPayloads = []protocol.PayloadType{
		protocol.PayloadTypeIDr,
		protocol.PayloadTypeAUTH,
		protocol.PayloadTypeSA,
		protocol.PayloadTypeTSi,
		protocol.PayloadTypeTSr,
	}

	NewChildSaIPayloads = []protocol.PayloadType{
		protocol.PayloadTypeSA,
		protocol.PayloadTypeNonce,
		protocol.PayloadTypeTSi,
		protocol.PayloadTypeTSr,
	}
	NewChildSaRPayloads = []protocol.PayloadType{
		protocol.PayloadTypeSA,
		protocol.PayloadTypeNonce,
	}

	RekeyIkeSaPayloads = InitPayloads

	RekeyChildSaIPayloads = []protocol.PayloadType{
		protocol.PayloadTypeN,
		protocol.PayloadTypeSA,
		protocol.PayloadTypeNonce,
		protocol.PayloadTypeTSi,
		protocol.PayloadTypeTSr,
	}
	RekeyChildSaRPayloads = []protocol.PayloadType{
		protocol.PayloadTypeSA,
		protocol.PayloadTypeNonce,
		protocol.PayloadTypeTSi,
		protocol.PayloadTypeTSr,
	}
)

// Message is a decoded IKEv2 message: the header plus its payload chain.
// Data keeps the raw bytes the message was decoded from.
type Message struct {
	IkeHeader *protocol.IkeHeader
	Payloads  *protocol.Payloads

	Data []byte
}

// DecodeMessage parses a full message from b. Any buffer shorter than
// the length the header declares is rejected; there are no partial
// results.
func DecodeMessage(b []byte, log *logrus.Logger) (msg *Message, err error) {
	msg = &Message{}
	if err = msg.DecodeHeader(b, log); err != nil {
		return nil, err
	}
	if len(b) < int(msg.IkeHeader.MsgLength) {
		return nil, protocol.ErrF(protocol.ERR_INVALID_SYNTAX,
			"truncated message: have %d octets of %d", len(b), msg.IkeHeader.MsgLength)
	}
	if err = msg.DecodePayloads(b[protocol.IKE_HEADER_LEN:msg.IkeHeader.MsgLength], msg.IkeHeader.NextPayload, log); err != nil {
		return nil, err
	}
	msg.Data = b[:msg.IkeHeader.MsgLength]
	return msg, nil
}

// DecodeMessageHex parses a message given as a hex string. Whitespace is
// tolerated; anything else that is not strictly hex, or an odd number of
// digits, is rejected.
func DecodeMessageHex(s string, log *logrus.Logger) (*Message, error) {
	clean := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\r', '\n':
			return -1
		}
		return r
	}, s)
	b, err := hex.DecodeString(clean)
	if err != nil {
		return nil, protocol.ErrF(protocol.ERR_INVALID_SYNTAX, "bad message hex: %s", err)
	}
	return DecodeMessage(b, log)
}

func (s *Message) DecodeHeader(b []byte, log *logrus.Logger) (err error) {
	s.IkeHeader, err = protocol.DecodeIkeHeader(b, log)
	return
}

func (s *Message) DecodePayloads(b []byte, nextPayload protocol.PayloadType, log *logrus.Logger) (err error) {
	if s.Payloads, err = protocol.DecodePayloads(b, nextPayload, log); err != nil {
		return
	}
	if log != nil {
		log.Infof("[%d]Received %s: payloads %s",
			s.IkeHeader.MsgId, s.IkeHeader.ExchangeType, *s.Payloads)
		if log.Level == logrus.DebugLevel {
			js, _ := json.MarshalIndent(s, " ", " ")
			log.Debug("Rx:\n" + string(js))
		}
	}
	return
}

// Encode serializes the message, recomputing the chain links, every
// payload length and the total length in the header. An SK payload is
// only allowed in the last position; its body must already be encrypted.
func (s *Message) Encode(log *logrus.Logger) (b []byte, err error) {
	if log != nil {
		log.Infof("[%d]Sending %s: payloads %s",
			s.IkeHeader.MsgId, s.IkeHeader.ExchangeType, s.Payloads)
		if log.Level == logrus.DebugLevel {
			js, _ := json.MarshalIndent(s, " ", " ")
			log.Debug("Tx:\n" + string(js))
		}
	}
	for idx, pl := range s.Payloads.Array {
		if pl.Type() == protocol.PayloadTypeSK && idx != len(s.Payloads.Array)-1 {
			return nil, protocol.ErrF(protocol.ERR_INVALID_SYNTAX,
				"SK payload must be the last payload, found at position %d of %d",
				idx+1, len(s.Payloads.Array))
		}
	}
	nextPayload := protocol.PayloadTypeNone
	if len(s.Payloads.Array) > 0 {
		nextPayload = s.Payloads.Array[0].Type()
	}
	s.IkeHeader.NextPayload = nextPayload
	if b, err = protocol.EncodePayloads(s.Payloads, log); err != nil {
		return nil, err
	}
	s.IkeHeader.MsgLength = uint32(len(b) + protocol.IKE_HEADER_LEN)
	b = append(s.IkeHeader.Encode(log), b...)
	s.Data = b
	return b, nil
}

// EncodeHex is Encode with the result rendered as a lowercase hex string.
func (s *Message) EncodeHex(log *logrus.Logger) (string, error) {
	b, err := s.Encode(log)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// DecryptPayloads decrypts the trailing SK payload with the supplied
// function and splices the inner payloads into the message in its place.
// It is an error if the message carries no SK payload.
func (s *Message) DecryptPayloads(decrypt protocol.DecryptFunc, log *logrus.Logger) error {
	pl := s.Payloads.Get(protocol.PayloadTypeSK)
	if pl == nil {
		return protocol.ErrF(protocol.ERR_INVALID_SYNTAX, "message carries no SK payload")
	}
	sk := pl.(*protocol.EncryptedPayload)
	inner, err := sk.Decrypt(decrypt, log)
	if err != nil {
		return err
	}
	clear := protocol.MakePayloads()
	for _, p := range s.Payloads.Array {
		if p.Type() != protocol.PayloadTypeSK {
			clear.Add(p)
		}
	}
	clear.Array = append(clear.Array, inner.Array...)
	s.Payloads = clear
	return nil
}

// EncryptPayloads encodes the current payloads, encrypts them with the
// supplied function and replaces the chain with a single SK payload.
func (s *Message) EncryptPayloads(encrypt protocol.EncryptFunc, log *logrus.Logger) error {
	sk, err := protocol.EncryptPayloads(s.Payloads, encrypt, log)
	if err != nil {
		return err
	}
	payloads := protocol.MakePayloads()
	payloads.Add(sk)
	s.Payloads = payloads
	return nil
}

func (s *Message) ensurePayloads(payloadTypes []protocol.PayloadType) bool {
	mp := s.Payloads
	for _, pt := range payloadTypes {
		if mp.Get(pt) == nil {
			return false
		}
	}
	return true
}

// EnsurePayloads checks that every payload type an exchange requires is
// present.
func (s *Message) EnsurePayloads(payloadTypes []protocol.PayloadType) error {
	if !s.ensurePayloads(payloadTypes) {
		return protocol.ErrF(protocol.ERR_INVALID_SYNTAX,
			"essential payload is missing from %s message", s.IkeHeader.ExchangeType)
	}
	return nil
}
