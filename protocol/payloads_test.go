package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// an unassigned payload type with a well-formed generic header
func unknownPayload(t *testing.T, next PayloadType, critical bool) []byte {
	t.Helper()
	hdr := PayloadHeader{NextPayload: next, IsCritical: critical, PayloadLength: 8}
	return append(hdr.Encode(), 0xde, 0xad, 0xbe, 0xef)
}

func noncePayload(t *testing.T, next PayloadType) []byte {
	t.Helper()
	no := &NoncePayload{PayloadHeader: &PayloadHeader{}, Nonce: make(HexBytes, 32)}
	body, err := no.Encode()
	require.NoError(t, err)
	hdr := PayloadHeader{NextPayload: next, PayloadLength: uint16(PAYLOAD_HEADER_LENGTH + len(body))}
	return append(hdr.Encode(), body...)
}

const unassignedType = PayloadType(0xc8)

func TestChainStopsAtUnknownPayload(t *testing.T) {
	// Nonce -> unknown: the walk keeps the nonce and ends, leaving the
	// unrecognized type visible in the last payload's chain link
	b := append(noncePayload(t, unassignedType), unknownPayload(t, PayloadTypeNone, false)...)
	payloads, err := DecodePayloads(b, PayloadTypeNonce, nil)
	require.NoError(t, err)
	require.Len(t, payloads.Array, 1)
	assert.Equal(t, PayloadTypeNonce, payloads.Array[0].Type())
	assert.Equal(t, unassignedType, payloads.Array[0].NextPayloadType())

	// unknown -> Nonce: nothing this codec can interpret; the nonce
	// after it must not surface as if it were the whole chain
	b = append(unknownPayload(t, PayloadTypeNonce, false), noncePayload(t, PayloadTypeNone)...)
	payloads, err = DecodePayloads(b, unassignedType, nil)
	require.NoError(t, err)
	assert.Empty(t, payloads.Array)
}

func TestChainRejectsUnknownCriticalPayload(t *testing.T) {
	b := append(noncePayload(t, unassignedType), unknownPayload(t, PayloadTypeNone, true)...)
	_, err := DecodePayloads(b, PayloadTypeNonce, nil)
	require.Error(t, err)
}

func TestStrayBytesAfterSk(t *testing.T) {
	sk := &EncryptedPayload{
		PayloadHeader: &PayloadHeader{NextPayload: PayloadTypeSA},
		Body:          HexBytes{1, 2, 3, 4},
	}
	payloads := MakePayloads()
	payloads.Add(sk)
	b, err := EncodePayloads(payloads, nil)
	require.NoError(t, err)

	back, err := DecodePayloads(b, PayloadTypeSK, nil)
	require.NoError(t, err)
	require.Len(t, back.Array, 1)

	_, err = DecodePayloads(append(b, 0xde, 0xad, 0xbe), PayloadTypeSK, nil)
	assert.Error(t, err)
}
