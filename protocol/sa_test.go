package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaEncodeRejectsEmpty(t *testing.T) {
	sa := &SaPayload{PayloadHeader: &PayloadHeader{}}
	_, err := sa.Encode()
	assert.Error(t, err)

	sa.Proposals = []*SaProposal{{Number: 1, ProtocolId: IKE}}
	_, err = sa.Encode()
	assert.Error(t, err, "proposal without transforms must not encode")
}

func TestSaDecodeErrors(t *testing.T) {
	fixture := hexit(t, "00000024010100030300000c01000014800e010003000008020000050000000804000013")
	tests := []struct {
		name string
		b    []byte
	}{
		{"empty", []byte{}},
		{"short proposal header", fixture[:6]},
		{"truncated transform", fixture[:12]},
		{"truncated attribute", fixture[:18]},
		{"trailing garbage", append(append([]byte{}, fixture...), 0xde, 0xad)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sa := &SaPayload{PayloadHeader: &PayloadHeader{}}
			assert.Error(t, sa.Decode(tt.b))
		})
	}
}

func TestSaTransformCountMismatch(t *testing.T) {
	// proposal declares 2 transforms but carries 1
	b := hexit(t, "0000001001010002" + "0000000802000005")
	sa := &SaPayload{PayloadHeader: &PayloadHeader{}}
	assert.Error(t, sa.Decode(b))
}

func TestSaSpiSize(t *testing.T) {
	assert.True(t, (&SaProposal{ProtocolId: IKE, Spi: make(Spi, 8)}).IsSpiSizeCorrect(8))
	assert.True(t, (&SaProposal{ProtocolId: ESP, Spi: make(Spi, 4)}).IsSpiSizeCorrect(4))
	assert.False(t, (&SaProposal{ProtocolId: IKE, Spi: make(Spi, 8)}).IsSpiSizeCorrect(4))
}

func TestTransformAttributeForms(t *testing.T) {
	// TV form, AF bit set
	attr, used, err := decodeAttribute(hexit(t, "800e0100"))
	require.NoError(t, err)
	assert.Equal(t, 4, used)
	assert.True(t, attr.IsTV)
	assert.Equal(t, ATTRIBUTE_TYPE_KEY_LENGTH, attr.Type)
	assert.Equal(t, HexBytes{0x01, 0x00}, attr.Value)

	// TLV form round-trips with the AF bit clear
	tlv := &TransformAttribute{Type: ATTRIBUTE_TYPE_KEY_LENGTH, Value: HexBytes{0xab, 0xcd, 0xef}}
	back, used, err := decodeAttribute(tlv.encode())
	require.NoError(t, err)
	assert.Equal(t, 7, used)
	assert.False(t, back.IsTV)
	assert.Equal(t, tlv.Value, back.Value)

	// TLV length beyond the buffer
	_, _, err = decodeAttribute(hexit(t, "000e00ffabcd"))
	assert.Error(t, err)
}

func TestNonceBounds(t *testing.T) {
	for _, n := range []int{0, 15, 257} {
		no := &NoncePayload{PayloadHeader: &PayloadHeader{}, Nonce: make(HexBytes, n)}
		_, err := no.Encode()
		assert.Error(t, err, "nonce of %d octets must not encode", n)
		assert.Error(t, no.Decode(make([]byte, n)))
	}
	no := &NoncePayload{PayloadHeader: &PayloadHeader{}, Nonce: make(HexBytes, 32)}
	_, err := no.Encode()
	assert.NoError(t, err)
}
