package tui

import "github.com/MKhiriev/go-wallet-lock/models"

// NavigateTo switches the active page of [RootModel]. Payload, when set, is
// delivered to the new page as its first message instead of calling Init.
type NavigateTo struct {
	Page    string
	Payload any
}

// Page names registered with [RootModel].
const (
	pageSetup    = "setup"
	pageLock     = "lock"
	pageUnlocked = "unlocked"
)

// snapshotMsg carries a coordinator snapshot, either returned by a command or
// pushed by the coordinator listener.
type snapshotMsg struct {
	snap models.LockSnapshot
}

// unlockedMsg is sent once per session by the coordinator unlock callback.
type unlockedMsg struct{}

// presentMsg asks the lock page to present itself again.
type presentMsg struct{}

// setupModeMsg opens the setup page either for the first passcode or for a
// passcode change from the unlocked page.
type setupModeMsg struct {
	change bool
}

// setupDoneMsg reports the result of committing a new passcode.
type setupDoneMsg struct {
	err error
}

// statusMsg shows a one-line notice on the unlocked page.
type statusMsg struct {
	text string
}
