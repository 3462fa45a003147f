package protocol

import (
	"encoding/hex"
	"encoding/json"
)

// HexBytes is an opaque binary field rendered as a lowercase hex string
// in JSON, so dumps can be pasted back in as fixtures.
type HexBytes []byte

func (h HexBytes) MarshalJSON() ([]byte, error) {
	return json.Marshal(hex.EncodeToString(h))
}

func (h *HexBytes) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	buf, err := hex.DecodeString(s)
	if err != nil {
		return ErrF(ERR_INVALID_SYNTAX, "bad hex string %q: %s", s, err)
	}
	*h = buf
	return nil
}

func (s Spi) MarshalJSON() ([]byte, error) {
	return HexBytes(s).MarshalJSON()
}

func (s *Spi) UnmarshalJSON(b []byte) error {
	return (*HexBytes)(s).UnmarshalJSON(b)
}

type taggedPayload struct {
	PayloadType PayloadType
	Payload     Payload
}

type rawTaggedPayload struct {
	PayloadType PayloadType
	Payload     json.RawMessage
}

func (p Payloads) MarshalJSON() ([]byte, error) {
	jmap := []taggedPayload{}
	for _, pl := range p.Array {
		jmap = append(jmap, taggedPayload{pl.Type(), pl})
	}
	return json.Marshal(jmap)
}

func (p *Payloads) UnmarshalJSON(b []byte) error {
	var jmap []rawTaggedPayload
	if err := json.Unmarshal(b, &jmap); err != nil {
		return err
	}
	for _, j := range jmap {
		payload := makePayloadFor(j.PayloadType, &PayloadHeader{})
		if payload == nil {
			return ErrF(ERR_INVALID_SYNTAX, "unknown payload type 0x%x", j.PayloadType)
		}
		if err := json.Unmarshal(j.Payload, payload); err != nil {
			return err
		}
		p.Add(payload)
	}
	return nil
}
