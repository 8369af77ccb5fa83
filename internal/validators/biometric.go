package validators

import (
	"context"
	"unicode/utf8"

	"github.com/MKhiriev/go-wallet-lock/internal/utils"
	"github.com/MKhiriev/go-wallet-lock/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldChallengeID targets the per-challenge nonce.
	FieldChallengeID = "challenge_id"

	// FieldReason targets the localized reason shown by the platform prompt.
	FieldReason = "reason"

	// FieldKind targets the reported biometric kind.
	FieldKind = "kind"

	// FieldAvailable targets the availability flag together with the kind.
	FieldAvailable = "available"
)

// MaxReasonLength is the longest reason, in characters, the agent accepts.
const MaxReasonLength = 256

type BiometricValidator struct {
}

func NewBiometricValidator() Validator {
	return &BiometricValidator{}
}

func (v *BiometricValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ChallengeRequest:
		return v.validateChallengeRequest(value, fields...)
	case *models.ChallengeRequest:
		return v.validateChallengeRequest(*value, fields...)

	case models.BiometricCapability:
		return v.validateCapability(value, fields...)
	case *models.BiometricCapability:
		return v.validateCapability(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *BiometricValidator) validateChallengeRequest(req models.ChallengeRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldChallengeID, FieldReason}
	}

	for _, f := range fields {
		switch f {
		case FieldChallengeID:
			if !utils.IsValidUUID(req.ChallengeID) {
				return ErrInvalidChallengeID
			}
		case FieldReason:
			if req.Reason == "" {
				return ErrEmptyReason
			}
			if utf8.RuneCountInString(req.Reason) > MaxReasonLength {
				return ErrReasonTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *BiometricValidator) validateCapability(c models.BiometricCapability, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldKind, FieldAvailable}
	}

	for _, f := range fields {
		switch f {
		case FieldKind:
			if models.ParseBiometricKind(c.KindName).String() != c.KindName {
				return ErrUnknownBiometricKind
			}
		case FieldAvailable:
			if c.Available && models.ParseBiometricKind(c.KindName) == models.BiometricNone {
				return ErrInconsistentCapability
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
