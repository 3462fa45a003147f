package protocol

import "github.com/msgboxio/packets"

//   Transform Substructure

// adversarial transform bodies can claim huge attribute counts; more
// attributes than this in one transform is treated as malformed
const maxTransformAttributes = 64

func decodeTransform(b []byte) (trans *SaTransform, used int, err error) {
	if len(b) < MIN_LEN_TRANSFORM {
		err = ErrF(ERR_INVALID_SYNTAX, "transform too small %d < %d", len(b), MIN_LEN_TRANSFORM)
		return
	}
	trans = &SaTransform{}
	if last, _ := packets.ReadB8(b, 0); last == 0 {
		trans.IsLast = true
	}
	trLength, _ := packets.ReadB16(b, 2)
	if len(b) < int(trLength) {
		err = ErrF(ERR_INVALID_SYNTAX, "transform length %d > remaining %d", trLength, len(b))
		return
	}
	if int(trLength) < MIN_LEN_TRANSFORM {
		err = ErrF(ERR_INVALID_SYNTAX, "transform length too small %d < %d", trLength, MIN_LEN_TRANSFORM)
		return
	}
	trType, _ := packets.ReadB8(b, 4)
	trans.Transform.Type = TransformType(trType)
	trans.Transform.TransformId, _ = packets.ReadB16(b, 6)
	// variable parts
	b = b[MIN_LEN_TRANSFORM:int(trLength)]
	for len(b) > 0 {
		if len(trans.Attributes) >= maxTransformAttributes {
			err = ErrF(ERR_INVALID_SYNTAX, "more than %d attributes in transform", maxTransformAttributes)
			return
		}
		attr, attrUsed, attrErr := decodeAttribute(b)
		if attrErr != nil {
			err = attrErr
			return
		}
		if attrUsed == 0 {
			err = ErrF(ERR_INVALID_SYNTAX, "attribute of zero size")
			return
		}
		b = b[attrUsed:]
		trans.Attributes = append(trans.Attributes, attr)
		if attr.Type == ATTRIBUTE_TYPE_KEY_LENGTH && len(attr.Value) >= 2 {
			trans.KeyLength, _ = packets.ReadB16(attr.Value, 0)
		}
	}
	used = int(trLength)
	return
}

func (trans *SaTransform) encode(isLast bool) (b []byte) {
	b = make([]byte, MIN_LEN_TRANSFORM)
	if !isLast {
		packets.WriteB8(b, 0, 3)
	}
	packets.WriteB8(b, 4, uint8(trans.Transform.Type))
	packets.WriteB16(b, 6, trans.Transform.TransformId)
	if len(trans.Attributes) > 0 {
		for _, attr := range trans.Attributes {
			b = append(b, attr.encode()...)
		}
	} else if trans.KeyLength != 0 {
		b = append(b, KeyLengthAttribute(trans.KeyLength).encode()...)
	}
	packets.WriteB16(b, 2, uint16(len(b)))
	return
}

func (trans *SaTransform) IsEqual(other *SaTransform) bool {
	if trans == nil || other == nil {
		return false
	}
	if trans.KeyLength != other.KeyLength {
		return false
	}
	if trans.Transform.Type != other.Transform.Type {
		return false
	}
	if trans.Transform.TransformId != other.Transform.TransformId {
		return false
	}
	return true
}
