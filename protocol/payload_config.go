package protocol

import (
	"github.com/msgboxio/packets"
)

const maxConfigurationAttributes = 128

// attributes are always TLV; the top bit of the type word is reserved
func decodeConfigurationAttribute(b []byte) (attr *ConfigurationAttribute, used int, err error) {
	if len(b) < 4 {
		err = ErrF(ERR_INVALID_SYNTAX, "configuration attribute too small %d < 4", len(b))
		return
	}
	atype, _ := packets.ReadB16(b, 0)
	alen, _ := packets.ReadB16(b, 2)
	if len(b) < 4+int(alen) {
		err = ErrF(ERR_INVALID_SYNTAX, "configuration attribute length %d > remaining %d", alen, len(b)-4)
		return
	}
	attr = &ConfigurationAttribute{
		ConfigurationAttributeType: ConfigurationAttributeType(atype & 0x7fff),
		Value:                      append([]byte{}, b[4:4+alen]...),
	}
	used = 4 + int(alen)
	return
}

func (c *ConfigurationAttribute) encode() (b []byte) {
	b = make([]byte, 4)
	packets.WriteB16(b, 0, uint16(c.ConfigurationAttributeType)&0x7fff)
	packets.WriteB16(b, 2, uint16(len(c.Value)))
	return append(b, c.Value...)
}

func (s *ConfigurationPayload) Type() PayloadType { return PayloadTypeCP }

func (s *ConfigurationPayload) Encode() ([]byte, error) {
	b := []byte{uint8(s.ConfigurationType), 0, 0, 0}
	for _, attr := range s.ConfigurationAttributes {
		b = append(b, attr.encode()...)
	}
	return b, nil
}

func (s *ConfigurationPayload) Decode(b []byte) error {
	if len(b) < 4 {
		return ErrF(ERR_INVALID_SYNTAX, "CP payload too small %d < 4", len(b))
	}
	ctype, _ := packets.ReadB8(b, 0)
	switch ConfigurationType(ctype) {
	case CFG_REQUEST, CFG_REPLY, CFG_SET, CFG_ACK:
		s.ConfigurationType = ConfigurationType(ctype)
	default:
		return ErrF(ERR_INVALID_SYNTAX, "unknown CFG type 0x%x", ctype)
	}
	b = b[4:]
	for len(b) > 0 {
		if len(s.ConfigurationAttributes) >= maxConfigurationAttributes {
			return ErrF(ERR_INVALID_SYNTAX, "more than %d configuration attributes", maxConfigurationAttributes)
		}
		attr, used, err := decodeConfigurationAttribute(b)
		if err != nil {
			return err
		}
		s.ConfigurationAttributes = append(s.ConfigurationAttributes, attr)
		b = b[used:]
	}
	return nil
}
