package ikev2

import (
	"bytes"
	"testing"

	"github.com/google/gopacket/bytediff"
	"github.com/ikelab/ikev2/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// a captured IKE_SA_INIT request: SA with IKE and ESP proposals, KE for
// MODP_2048 and a 32 byte nonce
var sa_init = `
92 8f 3f 58 1f 05 a5 63  00 00 00 00 00 00 00 00
21 20 22 08 00 00 00 00  00 00 01 a8 22 00 00 60
02 00 00 34 01 01 08 04  92 8f 3f 58 1f 05 a5 63
03 00 00 0c 01 00 00 17  80 0e 01 00 03 00 00 08
02 00 00 05 03 00 00 08  03 00 00 0c 00 00 00 08
04 00 00 0e 00 00 00 28  02 03 04 03 13 5a a9 69
03 00 00 0c 01 00 00 17  80 0e 01 00 03 00 00 08
05 00 00 01 00 00 00 08  03 00 00 0c 28 00 01 08
00 0e 00 00 ed cf 56 38  1a 58 71 62 48 fc b5 89
0d f2 08 19 91 af f3 16  39 1c 2f 16 80 ef 88 49
21 76 38 40 98 4d 44 73  71 ed 59 05 35 44 90 a0
2f ef f0 5a 0e 99 c9 e6  f0 06 d4 c2 e3 03 ab 62
01 7f 5b 34 94 ca 7d 30  7e 41 9a b2 96 21 e1 68
e3 da f1 66 4e 88 13 14  8f b0 9e a3 88 d7 7d 92
28 11 8e 47 67 d4 e5 f4  80 ce 22 ae 1f 70 c3 b0
eb 59 e5 c7 26 0d f9 69  81 96 e9 81 17 7a a2 55
2b a6 40 f0 cd 12 34 16  7b 9a ac 3d ca b2 07 39
cf cc 95 17 28 6b 79 5d  6b d5 03 36 50 a6 15 18
81 ae 8c d8 8d ec 42 5d  40 e2 96 0d d9 fe c0 3c
ef 8b 2e 3f 41 50 66 ad  00 bf df 6c 22 e4 1c b6
ad 2e 4f c7 7d 89 10 8d  b4 25 23 6e a9 b7 d7 d8
40 9a 53 04 31 33 c1 87  25 5c c0 fb 40 86 10 a9
f2 c2 98 98 2b fd 26 87  4c 57 b5 1f 38 dc 7f fc
6b f8 a4 cb 91 33 45 aa  aa a8 33 ff b9 33 51 aa
b6 7a f6 83 00 00 00 24  63 a0 2b 62 47 56 80 de
1c 50 af 97 a8 2a 7a bd  8d 46 4d 95 11 f8 7a c8
6a 3e 1e 42 17 40 5a fa
`

func TestMessageRoundtrip(t *testing.T) {
	msg, err := DecodeMessageHex(sa_init, nil)
	require.NoError(t, err)
	assert.Equal(t, protocol.IKE_SA_INIT, msg.IkeHeader.ExchangeType)
	assert.True(t, msg.IkeHeader.Flags.IsInitiator())
	require.NoError(t, msg.EnsurePayloads(InitPayloads))

	orig := append([]byte{}, msg.Data...)
	enc, err := msg.Encode(nil)
	require.NoError(t, err)
	if !bytes.Equal(enc, orig) {
		t.Errorf("compare failed\n%s", bytediff.BashOutput.String(bytediff.Diff(orig, enc)))
	}

	hexOut, err := msg.EncodeHex(nil)
	require.NoError(t, err)
	back, err := DecodeMessageHex(hexOut, nil)
	require.NoError(t, err)
	assert.Equal(t, msg.IkeHeader.MsgLength, back.IkeHeader.MsgLength)
}

func TestMessageHexStrict(t *testing.T) {
	_, err := DecodeMessageHex("zz00", nil)
	assert.Error(t, err, "non-hex digits")
	_, err = DecodeMessageHex("abc", nil)
	assert.Error(t, err, "odd number of digits")
}

func TestMessageTruncation(t *testing.T) {
	msg, err := DecodeMessageHex(sa_init, nil)
	require.NoError(t, err)
	full := msg.Data
	for _, n := range []int{0, 10, protocol.IKE_HEADER_LEN, protocol.IKE_HEADER_LEN + 4, len(full) - 1} {
		_, err := DecodeMessage(full[:n], nil)
		assert.Error(t, err, "prefix of %d octets", n)
	}
}

func TestHeaderOnlyDecode(t *testing.T) {
	msg, err := DecodeMessageHex(sa_init, nil)
	require.NoError(t, err)

	peek := &Message{}
	require.NoError(t, peek.DecodeHeader(msg.Data, nil))
	assert.Equal(t, msg.IkeHeader.MsgLength, peek.IkeHeader.MsgLength)
	assert.Equal(t, protocol.PayloadTypeSA, peek.IkeHeader.NextPayload)
}

// toy reversible cipher for exercising the SK plumbing
func xorFunc(key byte) func([]byte) ([]byte, error) {
	return func(in []byte) ([]byte, error) {
		out := make([]byte, len(in))
		for i, c := range in {
			out[i] = c ^ key
		}
		return out, nil
	}
}

func TestMessageEncryptDecrypt(t *testing.T) {
	msg, err := DecodeMessageHex(sa_init, nil)
	require.NoError(t, err)
	nWant := len(msg.Payloads.Array)

	require.NoError(t, msg.EncryptPayloads(protocol.EncryptFunc(xorFunc(0x5a)), nil))
	require.Len(t, msg.Payloads.Array, 1)
	assert.Equal(t, protocol.PayloadTypeSK, msg.Payloads.Array[0].Type())

	enc, err := msg.Encode(nil)
	require.NoError(t, err)

	wire, err := DecodeMessage(enc, nil)
	require.NoError(t, err)
	require.Len(t, wire.Payloads.Array, 1, "chain walk must stop at SK")

	require.NoError(t, wire.DecryptPayloads(protocol.DecryptFunc(xorFunc(0x5a)), nil))
	require.Len(t, wire.Payloads.Array, nWant)
	require.NoError(t, wire.EnsurePayloads(InitPayloads))

	// wrong key garbles the plaintext chain
	bad, err := DecodeMessage(enc, nil)
	require.NoError(t, err)
	assert.Error(t, bad.DecryptPayloads(protocol.DecryptFunc(xorFunc(0x11)), nil))
}

func TestSkMustBeLast(t *testing.T) {
	msg, err := DecodeMessageHex(sa_init, nil)
	require.NoError(t, err)

	sk := &protocol.EncryptedPayload{
		PayloadHeader: &protocol.PayloadHeader{NextPayload: protocol.PayloadTypeNone},
		Body:          protocol.HexBytes{1, 2, 3, 4},
	}
	msg.Payloads.Array = append([]protocol.Payload{sk}, msg.Payloads.Array...)
	_, err = msg.Encode(nil)
	assert.Error(t, err)
}

func TestDecryptWithoutSk(t *testing.T) {
	msg, err := DecodeMessageHex(sa_init, nil)
	require.NoError(t, err)
	assert.Error(t, msg.DecryptPayloads(protocol.DecryptFunc(xorFunc(0)), nil))
}

func TestEnsurePayloadsMissing(t *testing.T) {
	msg, err := DecodeMessageHex(sa_init, nil)
	require.NoError(t, err)
	assert.Error(t, msg.EnsurePayloads(AuthIPayloads))
}

func TestSpiHelpers(t *testing.T) {
	spi := MakeSpi()
	require.Len(t, []byte(spi), 8)
	assert.NotEqual(t, MakeSpi(), spi)

	msg, err := DecodeMessageHex(sa_init, nil)
	require.NoError(t, err)
	got, err := GetPeerSpi(msg, protocol.IKE)
	require.NoError(t, err)
	assert.Equal(t, msg.IkeHeader.SpiI, got)

	assert.Equal(t, uint64(0x928f3f581f05a563), SpiToInt64(got))
	assert.Equal(t, uint32(0x928f3f58), SpiToInt32(got))
}
