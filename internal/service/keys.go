package service

// Secure storage keys owned by this package.
const (
	KeyCredential   = "passcode.credential"
	KeyLockoutEnd   = "lockout.end_timestamp"
	KeyFailureCount = "lockout.failure_count"
)
