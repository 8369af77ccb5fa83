// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-wallet-lock/internal/config"
	"github.com/MKhiriev/go-wallet-lock/internal/logger"
	"github.com/MKhiriev/go-wallet-lock/models"
)

// CoordinatorOption customizes a coordinator built by [NewCoordinator].
type CoordinatorOption func(*coordinator)

// WithClock replaces time.Now as the source of the current time.
func WithClock(now func() time.Time) CoordinatorOption {
	return func(c *coordinator) {
		c.now = now
	}
}

type coordinator struct {
	credentials CredentialStore
	ledger      AttemptLedger
	policy      LockoutPolicy
	lockouts    LockoutStateStore
	gate        BiometricGate
	reason      string
	now         func() time.Time

	mu                sync.Mutex
	state             models.LockState
	entered           []byte
	length            int
	remaining         time.Duration
	message           string
	capability        models.BiometricCapability
	biometricDisabled bool
	presented         bool
	unlockFired       bool
	// session changes on every Present and Dismiss; late results carrying
	// an older value are discarded.
	session         uint64
	verifying       bool
	pending         bool
	cancelChallenge context.CancelFunc
	seq             uint64

	listener func(models.LockSnapshot)
	onUnlock func()

	wg sync.WaitGroup

	logger *logger.Logger
}

// NewCoordinator wires the lock screen state machine. The coordinator starts
// in [models.StateIdle] and accepts input only after Present.
func NewCoordinator(
	credentials CredentialStore,
	ledger AttemptLedger,
	policy LockoutPolicy,
	lockouts LockoutStateStore,
	gate BiometricGate,
	cfg config.ClientLock,
	logger *logger.Logger,
	opts ...CoordinatorOption,
) Coordinator {
	c := &coordinator{
		credentials: credentials,
		ledger:      ledger,
		policy:      policy,
		lockouts:    lockouts,
		gate:        gate,
		reason:      cfg.BiometricReason,
		now:         time.Now,
		state:       models.StateIdle,
		logger:      logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *coordinator) SetListener(fn func(models.LockSnapshot)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listener = fn
}

func (c *coordinator) OnUnlock(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onUnlock = fn
}

func (c *coordinator) Snapshot() models.LockSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *coordinator) Present(ctx context.Context) (models.LockSnapshot, error) {
	// Both calls may block on the platform or the disk; keep them outside
	// the mutex.
	capability := c.gate.Capability(ctx)
	length, lengthErr := c.credentials.Length(ctx)

	c.mu.Lock()
	c.session++
	c.cancelChallengeLocked()
	if !c.presented {
		c.biometricDisabled = false
	}
	c.presented = true
	c.unlockFired = false
	c.entered = nil
	c.remaining = 0
	c.capability = capability
	c.state = models.StateIdle

	if lengthErr != nil {
		c.length = 0
		return c.commitAndUnlock(lengthErr)
	}
	c.length = length

	if _, err := c.refreshLockoutLocked(ctx); err != nil {
		return c.commitAndUnlock(err)
	}

	c.logger.Info().Str("func", "coordinator.Present").
		Str("state", c.state.String()).
		Bool("biometric", capability.Available).
		Msg("lock screen presented")
	return c.commitAndUnlock(nil)
}

func (c *coordinator) Digit(ctx context.Context, d rune) (models.LockSnapshot, error) {
	if d < '0' || d > '9' {
		return c.Snapshot(), ErrInvalidDigit
	}

	c.mu.Lock()
	if err := c.acceptingInputLocked(); err != nil {
		snap := c.snapshotLocked()
		c.mu.Unlock()
		return snap, err
	}

	if c.state == models.StateLockedOut {
		locked, err := c.refreshLockoutLocked(ctx)
		if err != nil {
			return c.commitAndUnlock(err)
		}
		if locked {
			return c.commitAndUnlock(ErrLockedOut)
		}
	}

	c.entered = append(c.entered, byte(d))
	c.state = models.StateAccumulating
	if len(c.entered) < c.length {
		return c.commitAndUnlock(nil)
	}

	candidate := string(c.entered)
	session := c.session
	c.state = models.StateVerifying
	c.verifying = true
	c.message = ""
	pending := c.publishLocked()
	c.mu.Unlock()
	pending.run()

	res := c.verify(ctx, candidate)

	c.mu.Lock()
	c.verifying = false
	if session != c.session {
		snap := c.snapshotLocked()
		c.mu.Unlock()
		return snap, res.err
	}

	c.entered = nil
	switch {
	case res.unlocked:
		c.unlockLocked("passcode")
	case res.locked:
		c.state = models.StateLockedOut
		c.remaining = res.remaining
	default:
		c.state = models.StateIdle
	}
	return c.commitAndUnlock(res.err)
}

func (c *coordinator) Delete(ctx context.Context) (models.LockSnapshot, error) {
	c.mu.Lock()
	if err := c.acceptingInputLocked(); err != nil {
		snap := c.snapshotLocked()
		c.mu.Unlock()
		return snap, err
	}
	if c.state == models.StateLockedOut {
		snap := c.snapshotLocked()
		c.mu.Unlock()
		return snap, ErrLockedOut
	}

	if n := len(c.entered); n > 0 {
		c.entered = c.entered[:n-1]
	}
	if len(c.entered) == 0 {
		c.state = models.StateIdle
	}
	return c.commitAndUnlock(nil)
}

func (c *coordinator) TriggerBiometric(ctx context.Context) (models.LockSnapshot, error) {
	c.mu.Lock()
	if err := c.acceptingInputLocked(); err != nil {
		snap := c.snapshotLocked()
		c.mu.Unlock()
		return snap, err
	}

	if !c.capability.Available {
		return c.commitAndUnlock(ErrBiometricUnavailable)
	}
	if c.biometricDisabled {
		return c.commitAndUnlock(ErrPlatformLockout)
	}

	locked, err := c.refreshLockoutLocked(ctx)
	if err != nil {
		return c.commitAndUnlock(err)
	}
	if locked {
		return c.commitAndUnlock(ErrLockedOut)
	}

	challengeCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	c.cancelChallenge = cancel
	c.pending = true

	c.wg.Add(1)
	go c.runChallenge(challengeCtx, c.session)

	return c.commitAndUnlock(nil)
}

func (c *coordinator) Tick(ctx context.Context) (models.LockSnapshot, error) {
	c.mu.Lock()
	if !c.presented || c.state != models.StateLockedOut {
		snap := c.snapshotLocked()
		c.mu.Unlock()
		return snap, nil
	}

	locked, err := c.refreshLockoutLocked(ctx)
	if err != nil {
		c.logger.Err(err).Str("func", "coordinator.Tick").Msg("error refreshing countdown")
		snap := c.snapshotLocked()
		c.mu.Unlock()
		return snap, err
	}
	if !locked {
		c.message = ""
	}

	pending := c.publishLocked()
	c.mu.Unlock()
	pending.run()
	return pending.snap, nil
}

func (c *coordinator) Dismiss() {
	c.mu.Lock()
	c.session++
	c.cancelChallengeLocked()
	c.presented = false
	c.entered = nil
	c.message = ""
	c.remaining = 0
	if c.state != models.StateUnlocked {
		c.state = models.StateIdle
	}

	pending := c.publishLocked()
	c.mu.Unlock()
	pending.run()
}

func (c *coordinator) runChallenge(ctx context.Context, session uint64) {
	defer c.wg.Done()

	result := c.gate.Challenge(ctx, c.reason)

	c.mu.Lock()
	if session != c.session || !c.pending {
		c.mu.Unlock()
		return
	}
	c.cancelChallengeLocked()

	var err error
	switch result {
	case models.BiometricSuccess:
		if err = c.resetAfterSuccess(context.WithoutCancel(ctx)); err == nil {
			c.entered = nil
			c.unlockLocked("biometric")
		}
	case models.BiometricUserCancelled:
	case models.BiometricPlatformLockout:
		c.biometricDisabled = true
		err = ErrPlatformLockout
	default:
		err = ErrBiometricFailed
	}

	c.commitAndUnlock(err)
}

type verifyResult struct {
	unlocked  bool
	locked    bool
	remaining time.Duration
	err       error
}

// verify runs one passcode verification. It is called without c.mu held;
// c.verifying keeps any other verification out.
func (c *coordinator) verify(ctx context.Context, candidate string) verifyResult {
	now := c.now()

	remaining, locked, err := c.lockouts.IsLocked(ctx, now)
	if err != nil {
		return verifyResult{err: err}
	}
	if locked {
		return verifyResult{locked: true, remaining: remaining, err: ErrLockedOut}
	}

	ok, err := c.credentials.Verify(ctx, candidate)
	if err != nil {
		return verifyResult{err: err}
	}
	if ok {
		if err = c.resetAfterSuccess(ctx); err != nil {
			return verifyResult{err: err}
		}
		return verifyResult{unlocked: true}
	}

	failures, err := c.ledger.RecordFailure(ctx)
	if err != nil {
		return verifyResult{err: err}
	}
	c.logger.Warn().Str("func", "coordinator.verify").Int("failures", failures).Msg("passcode verification failed")

	d, lockout := c.policy.Duration(failures)
	if !lockout {
		return verifyResult{err: ErrVerificationFailed}
	}
	if err = c.lockouts.Apply(ctx, d, now); err != nil {
		return verifyResult{err: err}
	}

	return verifyResult{locked: true, remaining: d, err: errors.Join(ErrVerificationFailed, ErrLockedOut)}
}

func (c *coordinator) resetAfterSuccess(ctx context.Context) error {
	if err := c.ledger.Reset(ctx); err != nil {
		return err
	}
	return c.lockouts.Clear(ctx)
}

func (c *coordinator) acceptingInputLocked() error {
	switch {
	case c.state == models.StateUnlocked:
		return ErrSessionUnlocked
	case !c.presented:
		return ErrNotPresented
	case c.length == 0:
		return ErrNoCredential
	case c.verifying:
		return ErrVerificationInProgress
	case c.pending:
		return ErrBiometricPending
	default:
		return nil
	}
}

// refreshLockoutLocked re-reads the persisted window and moves between
// LockedOut and Idle accordingly. On error the state is left untouched.
func (c *coordinator) refreshLockoutLocked(ctx context.Context) (bool, error) {
	remaining, locked, err := c.lockouts.IsLocked(ctx, c.now())
	if err != nil {
		return false, err
	}

	if locked {
		c.state = models.StateLockedOut
		c.remaining = remaining
		c.entered = nil
		return true, nil
	}

	if c.state == models.StateLockedOut {
		c.state = models.StateIdle
	}
	c.remaining = 0
	return false, nil
}

func (c *coordinator) unlockLocked(method string) {
	c.state = models.StateUnlocked
	c.remaining = 0
	c.presented = false
	c.logger.Info().Str("func", "coordinator.unlock").Str("method", method).Msg("wallet unlocked")
}

func (c *coordinator) cancelChallengeLocked() {
	if c.cancelChallenge != nil {
		c.cancelChallenge()
		c.cancelChallenge = nil
	}
	c.pending = false
}

func (c *coordinator) snapshotLocked() models.LockSnapshot {
	return models.LockSnapshot{
		Seq:               c.seq,
		State:             c.state,
		Entered:           len(c.entered),
		Length:            c.length,
		Remaining:         c.remaining,
		Message:           c.message,
		Biometric:         c.capability,
		BiometricDisabled: c.biometricDisabled,
		BiometricPending:  c.pending,
	}
}

// delivery is what must reach the listener and the unlock callback once
// c.mu is released.
type delivery struct {
	snap     models.LockSnapshot
	listener func(models.LockSnapshot)
	unlock   func()
}

func (d delivery) run() {
	if d.listener != nil {
		d.listener(d.snap)
	}
	if d.unlock != nil {
		d.unlock()
	}
}

func (c *coordinator) publishLocked() delivery {
	c.seq++
	d := delivery{snap: c.snapshotLocked(), listener: c.listener}
	if c.state == models.StateUnlocked && !c.unlockFired {
		c.unlockFired = true
		d.unlock = c.onUnlock
	}
	return d
}

// commitAndUnlock records err as the visible message, publishes the
// resulting snapshot, releases c.mu and delivers the snapshot.
func (c *coordinator) commitAndUnlock(err error) (models.LockSnapshot, error) {
	c.message = UserMessage(err)
	d := c.publishLocked()
	c.mu.Unlock()
	d.run()
	return d.snap, err
}

// wait blocks until every dispatched challenge has delivered its result.
func (c *coordinator) wait() {
	c.wg.Wait()
}
