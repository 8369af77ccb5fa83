package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-wallet-lock/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrChallengeMismatch is returned when a valid token answers a different
// challenge.
var ErrChallengeMismatch = errors.New("challenge token answers another challenge")

// GenerateChallengeToken signs the outcome of a biometric challenge with
// HMAC-SHA256.
//
// The token carries:
//   - Issuer    (iss): the agent identifier
//   - cid            : the challenge id the result answers
//   - result         : the wire name of the biometric result
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus ttl
//
// All parameters are required.
func GenerateChallengeToken(issuer, challengeID string, result models.BiometricResult, ttl time.Duration, signKey string) (models.ChallengeToken, error) {
	if issuer == "" || challengeID == "" || ttl <= 0 || signKey == "" {
		return models.ChallengeToken{}, errors.New("invalid params for generating challenge token")
	}

	now := time.Now()
	claims := &models.ChallengeClaims{
		ChallengeID: challengeID,
		Result:      result.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.ChallengeToken{}, fmt.Errorf("error occurred during singing challenge token: %w", err)
	}

	return models.ChallengeToken{Claims: *claims, SignedString: tokenString}, nil
}

// ValidateChallengeToken verifies the signature, issuer and expiry of a
// challenge token and checks that it answers challengeID. Only HS256 is
// accepted.
func ValidateChallengeToken(tokenString, signKey, issuer, challengeID string) (models.ChallengeToken, error) {
	claims := &models.ChallengeClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return models.ChallengeToken{}, fmt.Errorf("error occurred validating and parsing challenge token: %w", err)
	}
	if claims.ChallengeID != challengeID {
		return models.ChallengeToken{}, ErrChallengeMismatch
	}

	return models.ChallengeToken{Claims: *claims, SignedString: tokenString}, nil
}
