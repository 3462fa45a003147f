package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEapRoundtrip(t *testing.T) {
	req := &EapPayload{
		PayloadHeader: &PayloadHeader{},
		Code:          EapCodeRequest,
		Identifier:    7,
		EapType:       EapTypeIdentity,
		Data:          HexBytes("hello"),
	}
	b, err := req.Encode()
	require.NoError(t, err)
	assert.Len(t, b, 4+1+5)

	back := &EapPayload{PayloadHeader: &PayloadHeader{}}
	require.NoError(t, back.Decode(b))
	assert.Equal(t, req.Code, back.Code)
	assert.Equal(t, req.Identifier, back.Identifier)
	assert.Equal(t, req.EapType, back.EapType)
	assert.Equal(t, req.Data, back.Data)

	success := &EapPayload{PayloadHeader: &PayloadHeader{}, Code: EapCodeSuccess, Identifier: 7}
	b, err = success.Encode()
	require.NoError(t, err)
	assert.Equal(t, []byte{3, 7, 0, 4}, b)
	require.NoError(t, back.Decode(b))
	assert.Equal(t, EapCodeSuccess, back.Code)
}

func TestEapErrors(t *testing.T) {
	back := &EapPayload{PayloadHeader: &PayloadHeader{}}
	assert.Error(t, back.Decode([]byte{1, 0}), "short message")
	assert.Error(t, back.Decode([]byte{1, 7, 0, 4}), "request without type octet")
	assert.Error(t, back.Decode([]byte{3, 7, 0, 5, 1}), "success with trailing data")
	assert.Error(t, back.Decode([]byte{9, 7, 0, 4}), "unknown code")
	assert.Error(t, back.Decode([]byte{1, 7, 0, 99, 1}), "length past buffer")
	// a declared length shorter than the body would silently drop the
	// trailing octets on a decode/encode round trip
	assert.Error(t, back.Decode([]byte{1, 7, 0, 5, 1, 0xff}), "length shorter than body")

	bad := &EapPayload{PayloadHeader: &PayloadHeader{}, Code: EapCodeFailure, Data: HexBytes{1}}
	_, err := bad.Encode()
	assert.Error(t, err)
}
