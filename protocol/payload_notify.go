package protocol

import (
	"time"

	"github.com/msgboxio/packets"
)

func (s *NotifyPayload) Type() PayloadType {
	return PayloadTypeN
}

func (s *NotifyPayload) Encode() (b []byte, err error) {
	b = []byte{uint8(s.ProtocolId), uint8(len(s.Spi)), 0, 0}
	packets.WriteB16(b, 2, uint16(s.NotificationType))
	b = append(b, s.Spi...)
	b = append(b, s.Data...)
	return b, nil
}

func (s *NotifyPayload) Decode(b []byte) (err error) {
	if len(b) < 4 {
		return ErrF(ERR_INVALID_SYNTAX, "NOTIFY payload too small %d < %d", len(b), 4)
	}
	pId, _ := packets.ReadB8(b, 0)
	s.ProtocolId = ProtocolId(pId)
	spiLen, _ := packets.ReadB8(b, 1)
	if len(b) < 4+int(spiLen) {
		return ErrF(ERR_INVALID_SYNTAX, "NOTIFY spi too small %d < %d", len(b), 4+int(spiLen))
	}
	nType, _ := packets.ReadB16(b, 2)
	s.NotificationType = NotificationType(nType)
	s.Spi = append([]byte{}, b[4:spiLen+4]...)
	s.Data = append([]byte{}, b[spiLen+4:]...)
	switch s.NotificationType {
	case AUTH_LIFETIME:
		ltime, errc := packets.ReadB32(s.Data, 0)
		if errc != nil {
			return ErrF(ERR_INVALID_SYNTAX, "AUTH_LIFETIME data too small: %d", len(s.Data))
		}
		s.NotificationMessage = time.Second * time.Duration(ltime)
	case SIGNATURE_HASH_ALGORITHMS:
		if len(s.Data)%2 != 0 {
			return ErrF(ERR_INVALID_SYNTAX, "SIGNATURE_HASH_ALGORITHMS data of odd length: %d", len(s.Data))
		}
		var algos []uint16
		for i := 0; i < len(s.Data); i += 2 {
			algo, _ := packets.ReadB16(s.Data, i)
			algos = append(algos, algo)
		}
		s.NotificationMessage = algos
	}
	return
}
