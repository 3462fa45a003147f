package protocol

import (
	"encoding/hex"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"
)

// caps the payload chain length of a single message
const maxPayloads = 64

// Payloads is an ordered payload chain.
type Payloads struct {
	Array []Payload
}

func MakePayloads() *Payloads {
	return &Payloads{}
}

func (p *Payloads) Get(t PayloadType) Payload {
	for _, pl := range p.Array {
		if pl.Type() == t {
			return pl
		}
	}
	return nil
}

func (p *Payloads) GetAll(t PayloadType) (pls []Payload) {
	for _, pl := range p.Array {
		if pl.Type() == t {
			pls = append(pls, pl)
		}
	}
	return
}

func (p *Payloads) Add(t Payload) {
	p.Array = append(p.Array, t)
}

func (p *Payloads) GetNotifications() (ns []*NotifyPayload) {
	for _, pl := range p.Array {
		if pl.Type() == PayloadTypeN {
			ns = append(ns, pl.(*NotifyPayload))
		}
	}
	return
}

func (p *Payloads) GetNotification(nt NotificationType) *NotifyPayload {
	for _, pl := range p.Array {
		if pl.Type() == PayloadTypeN {
			if n := pl.(*NotifyPayload); n.NotificationType == nt {
				return n
			}
		}
	}
	return nil
}

func makePayloadFor(t PayloadType, pHeader *PayloadHeader) Payload {
	switch t {
	case PayloadTypeSA:
		return &SaPayload{PayloadHeader: pHeader}
	case PayloadTypeKE:
		return &KePayload{PayloadHeader: pHeader}
	case PayloadTypeIDi:
		return &IdPayload{PayloadHeader: pHeader, IdPayloadType: PayloadTypeIDi}
	case PayloadTypeIDr:
		return &IdPayload{PayloadHeader: pHeader, IdPayloadType: PayloadTypeIDr}
	case PayloadTypeCERT:
		return &CertPayload{PayloadHeader: pHeader}
	case PayloadTypeCERTREQ:
		return &CertRequestPayload{PayloadHeader: pHeader}
	case PayloadTypeAUTH:
		return &AuthPayload{PayloadHeader: pHeader}
	case PayloadTypeNonce:
		return &NoncePayload{PayloadHeader: pHeader}
	case PayloadTypeN:
		return &NotifyPayload{PayloadHeader: pHeader}
	case PayloadTypeD:
		return &DeletePayload{PayloadHeader: pHeader}
	case PayloadTypeV:
		return &VendorIdPayload{PayloadHeader: pHeader}
	case PayloadTypeTSi:
		return &TrafficSelectorPayload{PayloadHeader: pHeader, TrafficSelectorPayloadType: PayloadTypeTSi}
	case PayloadTypeTSr:
		return &TrafficSelectorPayload{PayloadHeader: pHeader, TrafficSelectorPayloadType: PayloadTypeTSr}
	case PayloadTypeSK:
		return &EncryptedPayload{PayloadHeader: pHeader}
	case PayloadTypeCP:
		return &ConfigurationPayload{PayloadHeader: pHeader}
	case PayloadTypeEAP:
		return &EapPayload{PayloadHeader: pHeader}
	}
	return nil
}

// DecodePayloads walks the payload chain starting at nextPayload. The
// walk stops after an SK payload, whose body stays opaque until
// decrypted. A payload type this package does not know also ends the
// walk: the payloads parsed so far are returned, with an error only
// when the unknown payload sets the critical flag. A caller can tell a
// complete chain from a stopped one by the last payload's
// NextPayloadType, or by the message header's next payload field when
// the walk stopped before the first payload.
func DecodePayloads(b []byte, nextPayload PayloadType, log *logrus.Logger) (*Payloads, error) {
	payloads := MakePayloads()
	for nextPayload != PayloadTypeNone {
		if len(payloads.Array) >= maxPayloads {
			return nil, ErrF(ERR_INVALID_SYNTAX, "more than %d payloads in chain", maxPayloads)
		}
		if len(b) < PAYLOAD_HEADER_LENGTH {
			return nil, ErrF(ERR_INVALID_SYNTAX,
				"payload is too small, %d < %d", len(b), PAYLOAD_HEADER_LENGTH)
		}
		pHeader := &PayloadHeader{}
		if err := pHeader.Decode(b[:PAYLOAD_HEADER_LENGTH]); err != nil {
			return nil, err
		}
		if (len(b) < int(pHeader.PayloadLength)) ||
			(int(pHeader.PayloadLength) < PAYLOAD_HEADER_LENGTH) {
			return nil, ErrF(ERR_INVALID_SYNTAX,
				"incorrect payload length %d in payload header", pHeader.PayloadLength)
		}
		payload := makePayloadFor(nextPayload, pHeader)
		if payload == nil {
			// forward compatibility: the end of what this codec can
			// interpret; whether to carry on without the payload is
			// the caller's decision
			if pHeader.IsCritical {
				return payloads, ErrF(ERR_UNSUPPORTED_CRITICAL_PAYLOAD,
					"unknown critical payload 0x%x", nextPayload)
			}
			if log != nil {
				log.Warnf("stopping at unknown payload 0x%x", nextPayload)
			}
			return payloads, nil
		}
		pbuf := b[PAYLOAD_HEADER_LENGTH:pHeader.PayloadLength]
		if err := payload.Decode(pbuf); err != nil {
			return nil, err
		}
		if log != nil && log.Level == logrus.DebugLevel {
			log.Debugf("Payload %s: %s from:\n%s", payload.Type(), spew.Sdump(payload), hex.Dump(pbuf))
		}
		payloads.Add(payload)
		if nextPayload == PayloadTypeSK {
			if rest := len(b) - int(pHeader.PayloadLength); rest > 0 {
				return nil, ErrF(ERR_INVALID_SYNTAX,
					"%d stray bytes after SK payload:\n%s", rest, hex.Dump(b[pHeader.PayloadLength:]))
			}
			return payloads, nil
		}
		nextPayload = pHeader.NextPayload
		b = b[pHeader.PayloadLength:]
	}
	if len(b) > 0 {
		return nil, ErrF(ERR_INVALID_SYNTAX, "%d stray bytes after last payload:\n%s", len(b), hex.Dump(b))
	}
	return payloads, nil
}

// EncodePayloads serializes the chain, recomputing every payload length
// and next payload link. The next payload field of an SK payload is
// preserved as set since it names the first payload inside the
// ciphertext, not a successor on the wire.
func EncodePayloads(payloads *Payloads, log *logrus.Logger) (b []byte, err error) {
	for idx, pl := range payloads.Array {
		body, err := pl.Encode()
		if err != nil {
			return nil, err
		}
		hdr := pl.Header()
		hdr.PayloadLength = uint16(PAYLOAD_HEADER_LENGTH + len(body))
		if pl.Type() != PayloadTypeSK {
			next := PayloadTypeNone
			if idx < len(payloads.Array)-1 {
				next = payloads.Array[idx+1].Type()
			}
			hdr.NextPayload = next
		}
		body = append(hdr.Encode(), body...)
		if log != nil && log.Level == logrus.DebugLevel {
			log.Debugf("Payload %s: %s to:\n%s", pl.Type(), spew.Sdump(pl), hex.Dump(body))
		}
		b = append(b, body...)
	}
	return b, nil
}
