package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/passcode_hasher_mock.go -package=mock

// PasscodeHasher is the hashing boundary for the wallet passcode. Plaintext
// digits enter through its methods and only opaque digests leave it.
//
// Scheme:
//
//	Salt   = GenerateSalt()                          (16 random bytes)
//	Peppered = HMAC-SHA256(pepper, passcode)
//	Hash   = Argon2id(Peppered, Salt)                (32 bytes)
//	Match  = ConstantTimeCompare(Hash(candidate), stored)
type PasscodeHasher interface {
	// GenerateSalt returns a fresh random salt for a new credential.
	GenerateSalt() ([]byte, error)

	// Hash derives the secret hash of passcode with the given salt.
	Hash(passcode string, salt []byte) []byte

	// Compare reports whether passcode hashes to secretHash under salt. It
	// always performs the full derivation and compares in constant time, so
	// its duration does not depend on how many leading digits match.
	Compare(passcode string, salt, secretHash []byte) bool

	// Algorithm names the scheme stored next to each credential.
	Algorithm() string
}
