package protocol

import "github.com/msgboxio/packets"

// Transform attributes come in two encodings selected by the AF bit:
// TLV (AF=0) with an explicit 2-octet length, and TV (AF=1) where the
// value is not delimited on the wire. A TV attribute therefore consumes
// the rest of the slice it is handed; callers must pass exact-size
// slices when an attribute list is parsed.

func decodeAttribute(b []byte) (attr *TransformAttribute, used int, err error) {
	if len(b) < MIN_LEN_ATTRIBUTE {
		err = ErrF(ERR_INVALID_SYNTAX, "attribute too small %d < %d", len(b), MIN_LEN_ATTRIBUTE)
		return
	}
	at, _ := packets.ReadB16(b, 0)
	attr = &TransformAttribute{
		IsTV: at&0x8000 != 0,
		Type: AttributeType(at & 0x7fff),
	}
	if attr.IsTV {
		attr.Value = append([]byte{}, b[2:]...)
		used = 2 + len(attr.Value)
		return
	}
	alen, _ := packets.ReadB16(b, 2)
	if len(b) < MIN_LEN_ATTRIBUTE+int(alen) {
		err = ErrF(ERR_INVALID_SYNTAX, "attribute value too small %d < %d", len(b), MIN_LEN_ATTRIBUTE+int(alen))
		return
	}
	attr.Value = append([]byte{}, b[4:4+alen]...)
	used = MIN_LEN_ATTRIBUTE + int(alen)
	return
}

func (attr *TransformAttribute) encode() (b []byte) {
	if attr.IsTV {
		b = make([]byte, 2)
		packets.WriteB16(b, 0, 0x8000|uint16(attr.Type))
		return append(b, attr.Value...)
	}
	b = make([]byte, 4)
	packets.WriteB16(b, 0, uint16(attr.Type)&0x7fff)
	packets.WriteB16(b, 2, uint16(len(attr.Value)))
	return append(b, attr.Value...)
}

// KeyLengthAttribute builds the usual TV-encoded KEY_LENGTH attribute,
// key length in bits.
func KeyLengthAttribute(bits uint16) *TransformAttribute {
	v := make([]byte, 2)
	packets.WriteB16(v, 0, bits)
	return &TransformAttribute{
		IsTV:  true,
		Type:  ATTRIBUTE_TYPE_KEY_LENGTH,
		Value: v,
	}
}
