package ikev2

import (
	"github.com/ikelab/ikev2/protocol"
)

// The integrity checksum of an encrypted message is the trailer of the
// whole datagram: it covers everything from the first header octet up to
// where the checksum begins. The algorithms and keys live with the
// caller; only the slicing happens here.

// VerifyIntegrityChecksum checks the checksumLength-octet trailer of msg
// with the supplied function.
func VerifyIntegrityChecksum(msg []byte, checksumLength int, verify protocol.ChecksumVerifyFunc) error {
	if verify == nil {
		return protocol.ErrF(protocol.ERR_INVALID_SYNTAX, "no checksum verifier")
	}
	if checksumLength <= 0 || checksumLength >= len(msg) {
		return protocol.ErrF(protocol.ERR_INVALID_SYNTAX,
			"bad checksum length %d for %d octet message", checksumLength, len(msg))
	}
	data, trailer := msg[:len(msg)-checksumLength], msg[len(msg)-checksumLength:]
	if !verify(data, trailer) {
		return protocol.ErrF(protocol.ERR_INVALID_SYNTAX, "integrity check failed")
	}
	return nil
}

// UpdateIntegrityChecksum recomputes the checksum trailer of msg and
// returns a fresh buffer with the trailer replaced; msg is not written
// to. The computed checksum must exactly fill the reserved trailer.
func UpdateIntegrityChecksum(msg []byte, checksumLength int, compute protocol.ChecksumComputeFunc) ([]byte, error) {
	if compute == nil {
		return nil, protocol.ErrF(protocol.ERR_INVALID_SYNTAX, "no checksum function")
	}
	if checksumLength <= 0 || checksumLength >= len(msg) {
		return nil, protocol.ErrF(protocol.ERR_INVALID_SYNTAX,
			"bad checksum length %d for %d octet message", checksumLength, len(msg))
	}
	data := msg[:len(msg)-checksumLength]
	sum := compute(data)
	if len(sum) != checksumLength {
		return nil, protocol.ErrF(protocol.ERR_INVALID_SYNTAX,
			"computed checksum is %d octets, reserved %d", len(sum), checksumLength)
	}
	out := append([]byte{}, data...)
	return append(out, sum...), nil
}
