package service

import (
	"sync"
	"time"

	"github.com/MKhiriev/go-wallet-lock/internal/crypto"
)

// fakeClock is a manually advanced clock shared by a test and the code under
// test.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// testHasher derives with the smallest Argon2id cost so tests stay fast.
func testHasher() crypto.PasscodeHasher {
	return crypto.NewPasscodeHasher("test-pepper", crypto.WithArgonParams(1, 8*1024, 1))
}
