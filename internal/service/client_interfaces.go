package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-wallet-lock/models"
)

// Coordinator owns the lock screen state machine. Every event method returns
// the snapshot after the transition together with the error that caused it,
// if any. The same snapshot is also delivered to the listener.
type Coordinator interface {
	// Present starts a lock screen session: it loads the credential length,
	// recomputes the biometric capability and honours a lockout window that
	// began before a restart.
	Present(ctx context.Context) (models.LockSnapshot, error)

	// Digit appends one entered digit. Reaching the stored length triggers
	// verification automatically.
	Digit(ctx context.Context, d rune) (models.LockSnapshot, error)

	// Delete removes the last entered digit.
	Delete(ctx context.Context) (models.LockSnapshot, error)

	// TriggerBiometric dispatches a biometric challenge. The result arrives
	// asynchronously through the listener.
	TriggerBiometric(ctx context.Context) (models.LockSnapshot, error)

	// Tick re-reads the lockout window to refresh the countdown. It never
	// verifies anything.
	Tick(ctx context.Context) (models.LockSnapshot, error)

	// Dismiss ends the session without unlocking. It cancels an in-flight
	// challenge and discards entered digits; the ledger and window are kept.
	Dismiss()

	// Snapshot returns the current state.
	Snapshot() models.LockSnapshot

	// SetListener registers the receiver of every snapshot.
	SetListener(fn func(models.LockSnapshot))

	// OnUnlock registers the callback invoked exactly once per unlocked
	// session.
	OnUnlock(fn func())
}

// CountdownJob refreshes the lockout countdown while the lock screen is
// visible.
type CountdownJob interface {
	// Start calls Coordinator.Tick every interval until Stop or ctx is done.
	Start(ctx context.Context, interval time.Duration)

	// Stop cancels the job and waits for it to exit.
	Stop()
}

// PasscodeSetup is the two-phase passcode creation flow.
type PasscodeSetup interface {
	// Enter validates and remembers the first entry.
	Enter(candidate string) error

	// Confirm compares candidate with the first entry and commits the
	// credential on a match. On mismatch it returns [ErrCredentialMismatch]
	// and the flow goes back to the entry step.
	Confirm(ctx context.Context, candidate string) error

	// Confirming reports whether the flow waits for the confirmation entry.
	Confirming() bool

	// Reset discards the first entry.
	Reset()
}
