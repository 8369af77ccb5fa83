package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// ChallengeIssuer is the issuer claim of every challenge token.
const ChallengeIssuer = "wallet-biometric-agent"

// ChallengeRequest asks the biometric agent to prompt the user.
type ChallengeRequest struct {
	// ChallengeID is a fresh nonce the signed answer must echo back.
	ChallengeID string `json:"challenge_id"`
	// Reason is the localized text shown in the platform prompt.
	Reason string `json:"reason"`
}

// ChallengeResponse carries the signed outcome of a challenge.
type ChallengeResponse struct {
	Token string `json:"token"`
}

// ChallengeClaims is the claim set of a challenge token.
type ChallengeClaims struct {
	ChallengeID string `json:"cid"`
	Result      string `json:"result"`
	jwt.RegisteredClaims
}

// ChallengeToken is a signed challenge outcome.
type ChallengeToken struct {
	Claims ChallengeClaims
	// SignedString is the compact JWS form.
	SignedString string
}

// BiometricResult decodes the result claim.
func (t ChallengeToken) BiometricResult() BiometricResult {
	return ParseBiometricResult(t.Claims.Result)
}

// String returns the compact JWS serialization of the token.
func (t ChallengeToken) String() string {
	return t.SignedString
}
