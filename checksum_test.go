package ikev2

import (
	"crypto/hmac"
	"crypto/sha256"
	"testing"

	"github.com/ikelab/ikev2/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testChecksumFuncs(key []byte, n int) (protocol.ChecksumComputeFunc, protocol.ChecksumVerifyFunc) {
	compute := func(data []byte) []byte {
		mac := hmac.New(sha256.New, key)
		mac.Write(data)
		return mac.Sum(nil)[:n]
	}
	verify := func(data, received []byte) bool {
		return hmac.Equal(compute(data), received)
	}
	return compute, verify
}

func TestChecksumUpdateVerify(t *testing.T) {
	compute, verify := testChecksumFuncs([]byte("0123456789abcdef"), 12)

	msg := append([]byte("some encrypted message bytes"), make([]byte, 12)...)
	out, err := UpdateIntegrityChecksum(msg, 12, compute)
	require.NoError(t, err)
	require.Len(t, out, len(msg))
	assert.Equal(t, msg[:len(msg)-12], out[:len(out)-12], "covered octets untouched")
	assert.NotEqual(t, msg, out, "trailer must change")

	require.NoError(t, VerifyIntegrityChecksum(out, 12, verify))

	// single flipped bit fails verification
	out[0] ^= 1
	assert.Error(t, VerifyIntegrityChecksum(out, 12, verify))
}

func TestChecksumLengthMismatch(t *testing.T) {
	compute, verify := testChecksumFuncs([]byte("k"), 12)
	msg := make([]byte, 40)

	// reserved trailer differs from what the function produces
	_, err := UpdateIntegrityChecksum(msg, 16, compute)
	assert.Error(t, err)

	// degenerate lengths
	for _, n := range []int{0, -1, len(msg), len(msg) + 1} {
		_, err := UpdateIntegrityChecksum(msg, n, compute)
		assert.Error(t, err, "length %d", n)
		assert.Error(t, VerifyIntegrityChecksum(msg, n, verify), "length %d", n)
	}

	_, err = UpdateIntegrityChecksum(msg, 12, nil)
	assert.Error(t, err, "nil compute function")
	assert.Error(t, VerifyIntegrityChecksum(msg, 12, nil), "nil verify function")
}
