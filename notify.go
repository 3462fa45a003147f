package ikev2

import (
	"github.com/ikelab/ikev2/protocol"
)

// NotificationResponse builds a one-payload response message carrying a
// single notification, eg an INVALID_SYNTAX or COOKIE reply to a bad or
// stateless IKE_SA_INIT request.
func NotificationResponse(spiI, spiR protocol.Spi, exchange protocol.IkeExchangeType, msgId uint32,
	nt protocol.NotificationType, data []byte) *Message {
	msg := &Message{
		IkeHeader: &protocol.IkeHeader{
			SpiI:         spiI,
			SpiR:         spiR,
			MajorVersion: protocol.IKEV2_MAJOR_VERSION,
			MinorVersion: protocol.IKEV2_MINOR_VERSION,
			ExchangeType: exchange,
			Flags:        protocol.RESPONSE,
			MsgId:        msgId,
		},
		Payloads: protocol.MakePayloads(),
	}
	msg.Payloads.Add(&protocol.NotifyPayload{
		PayloadHeader:    &protocol.PayloadHeader{},
		ProtocolId:       protocol.IKE,
		NotificationType: nt,
		Data:             data,
	})
	return msg
}

// DeleteRequest builds an INFORMATIONAL request deleting the named SAs.
// An empty SPI list with protocol IKE deletes the whole IKE SA.
func DeleteRequest(spiI, spiR protocol.Spi, msgId uint32,
	pid protocol.ProtocolId, spis []protocol.Spi, forInitiator bool) *Message {
	flags := protocol.IkeFlags(0)
	if forInitiator {
		flags = protocol.INITIATOR
	}
	msg := &Message{
		IkeHeader: &protocol.IkeHeader{
			SpiI:         spiI,
			SpiR:         spiR,
			MajorVersion: protocol.IKEV2_MAJOR_VERSION,
			MinorVersion: protocol.IKEV2_MINOR_VERSION,
			ExchangeType: protocol.INFORMATIONAL,
			Flags:        flags,
			MsgId:        msgId,
		},
		Payloads: protocol.MakePayloads(),
	}
	msg.Payloads.Add(&protocol.DeletePayload{
		PayloadHeader: &protocol.PayloadHeader{},
		ProtocolId:    pid,
		Spis:          spis,
	})
	return msg
}
