package protocol

import "github.com/msgboxio/packets"

func (s *DeletePayload) Type() PayloadType {
	return PayloadTypeD
}

func (s *DeletePayload) Encode() (b []byte, err error) {
	b = []byte{uint8(s.ProtocolId), 0, 0, 0}
	nspi := len(s.Spis)
	if nspi > 0 {
		spiLen := len(s.Spis[0])
		for _, spi := range s.Spis {
			if len(spi) != spiLen {
				return nil, ErrF(ERR_INVALID_SYNTAX,
					"DELETE spis of unequal size: %d != %d", len(spi), spiLen)
			}
		}
		packets.WriteB8(b, 1, uint8(spiLen))
		for _, spi := range s.Spis {
			b = append(b, spi...)
		}
	}
	packets.WriteB16(b, 2, uint16(nspi))
	return b, nil
}

func (s *DeletePayload) Decode(b []byte) (err error) {
	if len(b) < 4 {
		return ErrF(ERR_INVALID_SYNTAX, "DELETE payload too small %d < %d", len(b), 4)
	}
	pid, _ := packets.ReadB8(b, 0)
	s.ProtocolId = ProtocolId(pid)
	lspi, _ := packets.ReadB8(b, 1)
	nspi, _ := packets.ReadB16(b, 2)
	b = b[4:]
	if len(b) < (int(lspi) * int(nspi)) {
		return ErrF(ERR_INVALID_SYNTAX, "DELETE payload too small for %d spis of size %d", nspi, lspi)
	}
	for i := 0; i < int(nspi); i++ {
		spi := append([]byte{}, b[:int(lspi)]...)
		s.Spis = append(s.Spis, Spi(spi))
		b = b[int(lspi):]
	}
	return
}
