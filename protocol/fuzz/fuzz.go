//go:build gofuzz
// +build gofuzz

package fuzz

import (
	"bytes"

	"github.com/ikelab/ikev2/protocol"
)

func Fuzz(data []byte) int {
	hdr, err := protocol.DecodeIkeHeader(data, nil)
	if err != nil {
		return 0
	}
	plData := data[protocol.IKE_HEADER_LEN:]
	payloads, err := protocol.DecodePayloads(plData, hdr.NextPayload, nil)
	if err != nil {
		return 0
	}

	// ensure encoding is same
	if enc := hdr.Encode(nil); !bytes.Equal(enc, data[:protocol.IKE_HEADER_LEN]) {
		panic("unequal header")
	}
	pld, err := protocol.EncodePayloads(payloads, nil)
	if err != nil {
		panic("cannot re-encode decoded payloads: " + err.Error())
	}
	if !bytes.Equal(pld, plData[:len(pld)]) {
		panic("unequal payload")
	}
	return 1
}
