package protocol

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/gopacket/bytediff"
)

// sa_init is the payload portion of a captured IKE_SA_INIT request:
// an SA payload with IKE and ESP proposals, a KE payload for MODP_2048
// and a 32 byte nonce.
var sa_init = `
22 00 00 60
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

func hexit(t *testing.T, s string) []byte {
	t.Helper()
	s = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n':
			return -1
		}
		return r
	}, s)
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestIkeHeaderFixture(t *testing.T) {
	dec := hexit(t, "864330ac30e6564d00000000000000002120220800000000000001c9")
	hdr, err := DecodeIkeHeader(dec, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(hdr.SpiI, hexit(t, "864330ac30e6564d")) {
		t.Errorf("bad SpiI %x", hdr.SpiI)
	}
	if !bytes.Equal(hdr.SpiR, make([]byte, 8)) {
		t.Errorf("bad SpiR %x", hdr.SpiR)
	}
	if hdr.NextPayload != PayloadTypeSA {
		t.Errorf("next payload %s", hdr.NextPayload)
	}
	if hdr.MajorVersion != 2 || hdr.MinorVersion != 0 {
		t.Errorf("version %d.%d", hdr.MajorVersion, hdr.MinorVersion)
	}
	if hdr.ExchangeType != IKE_SA_INIT {
		t.Errorf("exchange %s", hdr.ExchangeType)
	}
	if !hdr.Flags.IsInitiator() || hdr.Flags.IsResponse() {
		t.Errorf("flags %v", hdr.Flags)
	}
	if hdr.MsgId != 0 {
		t.Errorf("msgid %d", hdr.MsgId)
	}
	if hdr.MsgLength != 0x1c9 {
		t.Errorf("length %d", hdr.MsgLength)
	}
	if enc := hdr.Encode(nil); !bytes.Equal(enc, dec) {
		t.Errorf("compare failed\n%s", bytediff.BashOutput.String(bytediff.Diff(dec, enc)))
	}
}

func TestSaPayloadFixture(t *testing.T) {
	dec := hexit(t, "2200002800000024010100030300000c01000014800e010003000008020000050000000804000013")
	pHeader := &PayloadHeader{}
	if err := pHeader.Decode(dec[:PAYLOAD_HEADER_LENGTH]); err != nil {
		t.Fatal(err)
	}
	if pHeader.NextPayload != PayloadTypeKE {
		t.Errorf("next payload %s", pHeader.NextPayload)
	}
	if int(pHeader.PayloadLength) != len(dec) {
		t.Errorf("payload length %d != %d", pHeader.PayloadLength, len(dec))
	}
	sa := &SaPayload{PayloadHeader: pHeader}
	if err := sa.Decode(dec[PAYLOAD_HEADER_LENGTH:]); err != nil {
		t.Fatal(err)
	}
	if len(sa.Proposals) != 1 {
		t.Fatalf("%d proposals", len(sa.Proposals))
	}
	prop := sa.Proposals[0]
	if prop.ProtocolId != IKE || prop.Number != 1 || len(prop.Spi) != 0 {
		t.Errorf("bad proposal %+v", prop)
	}
	if len(prop.Transforms) != 3 {
		t.Fatalf("%d transforms", len(prop.Transforms))
	}
	checks := []struct {
		typ       TransformType
		id        uint16
		keyLength uint16
	}{
		{TRANSFORM_TYPE_ENCR, uint16(AEAD_AES_GCM_16), 256},
		{TRANSFORM_TYPE_PRF, uint16(PRF_HMAC_SHA2_256), 0},
		{TRANSFORM_TYPE_DH, uint16(ECP_256), 0},
	}
	for i, want := range checks {
		trans := prop.Transforms[i]
		if trans.Transform.Type != want.typ || trans.Transform.TransformId != want.id {
			t.Errorf("transform %d: got %s", i, trans)
		}
		if trans.KeyLength != want.keyLength {
			t.Errorf("transform %d: key length %d", i, trans.KeyLength)
		}
	}

	// byte-exact re-encode, preserving the decoded chain link
	body, err := sa.Encode()
	if err != nil {
		t.Fatal(err)
	}
	sa.Header().PayloadLength = uint16(PAYLOAD_HEADER_LENGTH + len(body))
	enc := append(sa.Header().Encode(), body...)
	if !bytes.Equal(enc, dec) {
		t.Errorf("compare failed\n%s", bytediff.BashOutput.String(bytediff.Diff(dec, enc)))
	}
}

func TestPayloadChainRoundtrip(t *testing.T) {
	dec := hexit(t, sa_init)
	payloads, err := DecodePayloads(dec, PayloadTypeSA, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(payloads.Array) != 3 {
		t.Fatalf("expected SA, KE, No; got %s", payloads)
	}
	sa := payloads.Get(PayloadTypeSA).(*SaPayload)
	if len(sa.Proposals) != 2 {
		t.Errorf("%d proposals", len(sa.Proposals))
	}
	if sa.Proposals[0].ProtocolId != IKE || sa.Proposals[1].ProtocolId != ESP {
		t.Errorf("bad protocols %s %s", sa.Proposals[0].ProtocolId, sa.Proposals[1].ProtocolId)
	}
	ke := payloads.Get(PayloadTypeKE).(*KePayload)
	if ke.DhTransformId != MODP_2048 {
		t.Errorf("dh group %d", ke.DhTransformId)
	}
	no := payloads.Get(PayloadTypeNonce).(*NoncePayload)
	if len(no.Nonce) != 32 {
		t.Errorf("nonce length %d", len(no.Nonce))
	}

	enc, err := EncodePayloads(payloads, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(enc, dec) {
		t.Errorf("compare failed\n%s", bytediff.BashOutput.String(bytediff.Diff(dec, enc)))
	}
}

func TestPayloadChainTruncated(t *testing.T) {
	dec := hexit(t, sa_init)
	for _, n := range []int{1, 3, PAYLOAD_HEADER_LENGTH, 0x30, len(dec) - 1} {
		if _, err := DecodePayloads(dec[:n], PayloadTypeSA, nil); err == nil {
			t.Errorf("prefix of %d bytes decoded without error", n)
		}
	}
}

func TestPayloadsJSON(t *testing.T) {
	dec := hexit(t, sa_init)
	payloads, err := DecodePayloads(dec, PayloadTypeSA, nil)
	if err != nil {
		t.Fatal(err)
	}
	js, err := json.MarshalIndent(payloads, "", " ")
	if err != nil {
		t.Fatal(err)
	}
	t.Logf("\n%s", string(js))

	back := MakePayloads()
	if err := json.Unmarshal(js, back); err != nil {
		t.Fatal(err)
	}
	enc, err := EncodePayloads(back, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(enc, dec) {
		t.Errorf("compare failed\n%s", bytediff.BashOutput.String(bytediff.Diff(dec, enc)))
	}
}
