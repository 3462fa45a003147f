package protocol

import "github.com/pkg/errors"

// IkeErrorCode mirrors the RFC 7296 error notification numbers. Parse
// failures wrap one of these so callers can both test the class with
// errors.Cause and pick the NOTIFY type for an error reply.
type IkeErrorCode uint16

const (
	ERR_UNSUPPORTED_CRITICAL_PAYLOAD IkeErrorCode = 1
	ERR_INVALID_IKE_SPI              IkeErrorCode = 4
	ERR_INVALID_MAJOR_VERSION        IkeErrorCode = 5
	ERR_INVALID_SYNTAX               IkeErrorCode = 7
	ERR_INVALID_MESSAGE_ID           IkeErrorCode = 9
	ERR_INVALID_SPI                  IkeErrorCode = 11
	ERR_NO_PROPOSAL_CHOSEN           IkeErrorCode = 14
	ERR_INVALID_KE_PAYLOAD           IkeErrorCode = 17
	ERR_AUTHENTICATION_FAILED        IkeErrorCode = 24
	ERR_SINGLE_PAIR_REQUIRED         IkeErrorCode = 34
	ERR_NO_ADDITIONAL_SAS            IkeErrorCode = 35
	ERR_INTERNAL_ADDRESS_FAILURE     IkeErrorCode = 36
	ERR_FAILED_CP_REQUIRED           IkeErrorCode = 37
	ERR_TS_UNACCEPTABLE              IkeErrorCode = 38
	ERR_INVALID_SELECTORS            IkeErrorCode = 39
	ERR_TEMPORARY_FAILURE            IkeErrorCode = 43
	ERR_CHILD_SA_NOT_FOUND           IkeErrorCode = 44
)

func (e IkeErrorCode) Error() string {
	switch e {
	case ERR_UNSUPPORTED_CRITICAL_PAYLOAD:
		return "UNSUPPORTED_CRITICAL_PAYLOAD"
	case ERR_INVALID_IKE_SPI:
		return "INVALID_IKE_SPI"
	case ERR_INVALID_MAJOR_VERSION:
		return "INVALID_MAJOR_VERSION"
	case ERR_INVALID_SYNTAX:
		return "INVALID_SYNTAX"
	case ERR_INVALID_MESSAGE_ID:
		return "INVALID_MESSAGE_ID"
	case ERR_INVALID_SPI:
		return "INVALID_SPI"
	case ERR_NO_PROPOSAL_CHOSEN:
		return "NO_PROPOSAL_CHOSEN"
	case ERR_INVALID_KE_PAYLOAD:
		return "INVALID_KE_PAYLOAD"
	case ERR_AUTHENTICATION_FAILED:
		return "AUTHENTICATION_FAILED"
	case ERR_SINGLE_PAIR_REQUIRED:
		return "SINGLE_PAIR_REQUIRED"
	case ERR_NO_ADDITIONAL_SAS:
		return "NO_ADDITIONAL_SAS"
	case ERR_INTERNAL_ADDRESS_FAILURE:
		return "INTERNAL_ADDRESS_FAILURE"
	case ERR_FAILED_CP_REQUIRED:
		return "FAILED_CP_REQUIRED"
	case ERR_TS_UNACCEPTABLE:
		return "TS_UNACCEPTABLE"
	case ERR_INVALID_SELECTORS:
		return "INVALID_SELECTORS"
	case ERR_TEMPORARY_FAILURE:
		return "TEMPORARY_FAILURE"
	case ERR_CHILD_SA_NOT_FOUND:
		return "CHILD_SA_NOT_FOUND"
	default:
		return "IKE_ERROR"
	}
}

// ErrF wraps an error code with formatted detail.
func ErrF(e IkeErrorCode, format string, args ...interface{}) error {
	return errors.Wrapf(e, format, args...)
}
