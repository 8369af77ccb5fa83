package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidChallengeID     = errors.New("challenge id must be a UUID")
	ErrEmptyReason            = errors.New("reason is required")
	ErrReasonTooLong          = errors.New("reason is too long")
	ErrUnknownBiometricKind   = errors.New("unknown biometric kind")
	ErrInconsistentCapability = errors.New("available capability without a biometric kind")
)
