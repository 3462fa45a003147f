package protocol

import "fmt"

var (
	_ENCR_AES_CBC          = Transform{Type: TRANSFORM_TYPE_ENCR, TransformId: uint16(ENCR_AES_CBC)}
	_ENCR_AES_CTR          = Transform{Type: TRANSFORM_TYPE_ENCR, TransformId: uint16(ENCR_AES_CTR)}
	_ENCR_CAMELLIA_CBC     = Transform{Type: TRANSFORM_TYPE_ENCR, TransformId: uint16(ENCR_CAMELLIA_CBC)}
	_ENCR_NULL             = Transform{Type: TRANSFORM_TYPE_ENCR, TransformId: uint16(ENCR_NULL)}
	_AEAD_AES_GCM_8        = Transform{Type: TRANSFORM_TYPE_ENCR, TransformId: uint16(AEAD_AES_GCM_8)}
	_AEAD_AES_GCM_16       = Transform{Type: TRANSFORM_TYPE_ENCR, TransformId: uint16(AEAD_AES_GCM_16)}
	_ENCR_CHACHA20_POLY305 = Transform{Type: TRANSFORM_TYPE_ENCR, TransformId: uint16(ENCR_CHACHA20_POLY1305)}

	_PRF_AES128_XCBC   = Transform{Type: TRANSFORM_TYPE_PRF, TransformId: uint16(PRF_AES128_XCBC)}
	_PRF_HMAC_SHA1     = Transform{Type: TRANSFORM_TYPE_PRF, TransformId: uint16(PRF_HMAC_SHA1)}
	_PRF_HMAC_SHA2_256 = Transform{Type: TRANSFORM_TYPE_PRF, TransformId: uint16(PRF_HMAC_SHA2_256)}
	_PRF_HMAC_SHA2_384 = Transform{Type: TRANSFORM_TYPE_PRF, TransformId: uint16(PRF_HMAC_SHA2_384)}
	_PRF_HMAC_SHA2_512 = Transform{Type: TRANSFORM_TYPE_PRF, TransformId: uint16(PRF_HMAC_SHA2_512)}

	_AUTH_AES_XCBC_96       = Transform{Type: TRANSFORM_TYPE_INTEG, TransformId: uint16(AUTH_AES_XCBC_96)}
	_AUTH_HMAC_SHA1_96      = Transform{Type: TRANSFORM_TYPE_INTEG, TransformId: uint16(AUTH_HMAC_SHA1_96)}
	_AUTH_HMAC_SHA2_256_128 = Transform{Type: TRANSFORM_TYPE_INTEG, TransformId: uint16(AUTH_HMAC_SHA2_256_128)}
	_AUTH_HMAC_SHA2_384_192 = Transform{Type: TRANSFORM_TYPE_INTEG, TransformId: uint16(AUTH_HMAC_SHA2_384_192)}
	_AUTH_HMAC_SHA2_512_256 = Transform{Type: TRANSFORM_TYPE_INTEG, TransformId: uint16(AUTH_HMAC_SHA2_512_256)}

	_MODP_1024  = Transform{Type: TRANSFORM_TYPE_DH, TransformId: uint16(MODP_1024)}
	_MODP_1536  = Transform{Type: TRANSFORM_TYPE_DH, TransformId: uint16(MODP_1536)}
	_MODP_2048  = Transform{Type: TRANSFORM_TYPE_DH, TransformId: uint16(MODP_2048)}
	_MODP_3072  = Transform{Type: TRANSFORM_TYPE_DH, TransformId: uint16(MODP_3072)}
	_MODP_4096  = Transform{Type: TRANSFORM_TYPE_DH, TransformId: uint16(MODP_4096)}
	_ECP_256    = Transform{Type: TRANSFORM_TYPE_DH, TransformId: uint16(ECP_256)}
	_ECP_384    = Transform{Type: TRANSFORM_TYPE_DH, TransformId: uint16(ECP_384)}
	_ECP_521    = Transform{Type: TRANSFORM_TYPE_DH, TransformId: uint16(ECP_521)}
	_CURVE25519 = Transform{Type: TRANSFORM_TYPE_DH, TransformId: uint16(CURVE25519)}

	_ESN    = Transform{Type: TRANSFORM_TYPE_ESN, TransformId: uint16(ESN)}
	_NO_ESN = Transform{Type: TRANSFORM_TYPE_ESN, TransformId: uint16(ESN_NONE)}
)

var transforms = map[Transform]string{
	_ENCR_AES_CBC:          "ENCR_AES_CBC",
	_ENCR_AES_CTR:          "ENCR_AES_CTR",
	_ENCR_CAMELLIA_CBC:     "ENCR_CAMELLIA_CBC",
	_ENCR_NULL:             "ENCR_NULL",
	_AEAD_AES_GCM_8:        "AEAD_AES_GCM_8",
	_AEAD_AES_GCM_16:       "AEAD_AES_GCM_16",
	_ENCR_CHACHA20_POLY305: "ENCR_CHACHA20_POLY1305",

	_PRF_AES128_XCBC:   "PRF_AES128_XCBC",
	_PRF_HMAC_SHA1:     "PRF_HMAC_SHA1",
	_PRF_HMAC_SHA2_256: "PRF_HMAC_SHA2_256",
	_PRF_HMAC_SHA2_384: "PRF_HMAC_SHA2_384",
	_PRF_HMAC_SHA2_512: "PRF_HMAC_SHA2_512",

	_AUTH_AES_XCBC_96:       "AUTH_AES_XCBC_96",
	_AUTH_HMAC_SHA1_96:      "AUTH_HMAC_SHA1_96",
	_AUTH_HMAC_SHA2_256_128: "AUTH_HMAC_SHA2_256_128",
	_AUTH_HMAC_SHA2_384_192: "AUTH_HMAC_SHA2_384_192",
	_AUTH_HMAC_SHA2_512_256: "AUTH_HMAC_SHA2_512_256",

	_MODP_1024:  "MODP_1024",
	_MODP_1536:  "MODP_1536",
	_MODP_2048:  "MODP_2048",
	_MODP_3072:  "MODP_3072",
	_MODP_4096:  "MODP_4096",
	_ECP_256:    "ECP_256",
	_ECP_384:    "ECP_384",
	_ECP_521:    "ECP_521",
	_CURVE25519: "CURVE25519",

	_ESN:    "ESN",
	_NO_ESN: "NO_ESN",
}

// TransformName resolves a transform to its IANA registry name; unknown
// combinations render as TYPE/id.
func TransformName(t Transform) string {
	if name, ok := transforms[t]; ok {
		return name
	}
	return fmt.Sprintf("%s/%d", t.Type, t.TransformId)
}

// stock suites
var (
	IKE_AES_CBC_SHA1_96_DH_1024 = []*SaTransform{
		{Transform: _ENCR_AES_CBC, KeyLength: 128},
		{Transform: _PRF_HMAC_SHA1},
		{Transform: _AUTH_HMAC_SHA1_96},
		{Transform: _MODP_1024, IsLast: true},
	}

	IKE_AES_CBC_SHA2_256_128_DH_2048 = []*SaTransform{
		{Transform: _ENCR_AES_CBC, KeyLength: 128},
		{Transform: _PRF_HMAC_SHA2_256},
		{Transform: _AUTH_HMAC_SHA2_256_128},
		{Transform: _MODP_2048, IsLast: true},
	}

	IKE_AES_GCM_16_PRF_SHA2_256_ECP_256 = []*SaTransform{
		{Transform: _AEAD_AES_GCM_16, KeyLength: 256},
		{Transform: _PRF_HMAC_SHA2_256},
		{Transform: _ECP_256, IsLast: true},
	}

	IKE_CHACHA20_POLY1305_PRF_SHA2_256_CURVE25519 = []*SaTransform{
		{Transform: _ENCR_CHACHA20_POLY305},
		{Transform: _PRF_HMAC_SHA2_256},
		{Transform: _CURVE25519, IsLast: true},
	}

	ESP_AES_CBC_SHA1_96 = []*SaTransform{
		{Transform: _ENCR_AES_CBC, KeyLength: 128},
		{Transform: _AUTH_HMAC_SHA1_96},
		{Transform: _NO_ESN, IsLast: true},
	}

	ESP_AES_GCM_16 = []*SaTransform{
		{Transform: _AEAD_AES_GCM_16, KeyLength: 256},
		{Transform: _NO_ESN, IsLast: true},
	}

	ESP_NULL_SHA1_96 = []*SaTransform{
		{Transform: _ENCR_NULL},
		{Transform: _AUTH_HMAC_SHA1_96},
		{Transform: _NO_ESN, IsLast: true},
	}
)
