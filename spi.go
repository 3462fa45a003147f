package ikev2

import (
	"crypto/rand"

	"github.com/ikelab/ikev2/protocol"
	"github.com/msgboxio/packets"
	"github.com/pkg/errors"
)

func SpiToInt64(spi protocol.Spi) uint64 {
	ret, _ := packets.ReadB64(spi, 0)
	return ret
}

func SpiToInt32(spi protocol.Spi) uint32 {
	ret, _ := packets.ReadB32(spi, 0)
	return ret
}

// MakeSpi returns a fresh random 8-octet IKE SPI.
func MakeSpi() (ret protocol.Spi) {
	ret = make(protocol.Spi, 8)
	if _, err := rand.Read(ret); err != nil {
		panic(err)
	}
	return
}

// GetPeerSpi extracts the peer's SPI for the given protocol from a
// message; for the first IKE exchange that is the header's initiator
// SPI, afterwards it rides in the SA proposals.
func GetPeerSpi(m *Message, pid protocol.ProtocolId) (protocol.Spi, error) {
	if m.IkeHeader.MsgId == 0 && pid == protocol.IKE {
		return m.IkeHeader.SpiI, nil
	}
	pl := m.Payloads.Get(protocol.PayloadTypeSA)
	if pl == nil {
		return nil, errors.New("no SA payload to carry the peer SPI")
	}
	var peerSpi protocol.Spi
	for _, p := range pl.(*protocol.SaPayload).Proposals {
		if !p.IsSpiSizeCorrect(len(p.Spi)) {
			return nil, errors.Errorf("weird spi size in proposal %d: %d", p.Number, len(p.Spi))
		}
		if p.ProtocolId == pid {
			peerSpi = p.Spi
		}
	}
	if peerSpi == nil {
		return nil, errors.New("unknown peer SPI")
	}
	return peerSpi, nil
}
