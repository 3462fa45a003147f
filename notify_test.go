package ikev2

import (
	"testing"

	"github.com/ikelab/ikev2/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationResponse(t *testing.T) {
	spiI := MakeSpi()
	msg := NotificationResponse(spiI, nil, protocol.IKE_SA_INIT, 0,
		protocol.INVALID_SYNTAX, nil)

	b, err := msg.Encode(nil)
	require.NoError(t, err)

	back, err := DecodeMessage(b, nil)
	require.NoError(t, err)
	assert.True(t, back.IkeHeader.Flags.IsResponse())
	n := back.Payloads.GetNotification(protocol.INVALID_SYNTAX)
	require.NotNil(t, n)
	assert.Equal(t, protocol.IKE, n.ProtocolId)
}

func TestDeleteRequest(t *testing.T) {
	spiI, spiR := MakeSpi(), MakeSpi()
	esp := protocol.Spi{0x13, 0x5a, 0xa9, 0x69}
	msg := DeleteRequest(spiI, spiR, 2, protocol.ESP, []protocol.Spi{esp}, true)

	b, err := msg.Encode(nil)
	require.NoError(t, err)

	back, err := DecodeMessage(b, nil)
	require.NoError(t, err)
	assert.Equal(t, protocol.INFORMATIONAL, back.IkeHeader.ExchangeType)
	del := back.Payloads.Get(protocol.PayloadTypeD).(*protocol.DeletePayload)
	require.Len(t, del.Spis, 1)
	assert.Equal(t, esp, del.Spis[0])
}
