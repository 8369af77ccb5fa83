package service

import "time"

// LockoutStep is one row of the escalation table: from Failures consecutive
// failures on, a lockout of Duration applies.
type LockoutStep struct {
	Failures int
	Duration time.Duration
}

// DefaultLockoutSteps is the escalation table of the wallet lock screen.
var DefaultLockoutSteps = []LockoutStep{
	{Failures: 5, Duration: 30 * time.Second},
	{Failures: 6, Duration: 60 * time.Second},
	{Failures: 7, Duration: 300 * time.Second},
	{Failures: 8, Duration: 900 * time.Second},
	{Failures: 9, Duration: 3600 * time.Second},
}

// LockoutPolicy maps a failure count to a lockout duration. It has no state.
// Each failure past the first threshold re-applies the window for the new
// count; durations are never summed.
type LockoutPolicy struct {
	steps []LockoutStep
}

// NewLockoutPolicy returns the policy for steps, which must be sorted by
// Failures. With no steps the default table is used.
func NewLockoutPolicy(steps ...LockoutStep) LockoutPolicy {
	if len(steps) == 0 {
		steps = DefaultLockoutSteps
	}
	return LockoutPolicy{steps: steps}
}

// Duration returns the lockout for failures, if any.
func (p LockoutPolicy) Duration(failures int) (time.Duration, bool) {
	var (
		d     time.Duration
		found bool
	)
	for _, step := range p.steps {
		if failures < step.Failures {
			break
		}
		d, found = step.Duration, true
	}
	return d, found
}

// Window returns the end of the lockout that failures opens at now.
func (p LockoutPolicy) Window(failures int, now time.Time) (time.Time, bool) {
	d, ok := p.Duration(failures)
	if !ok {
		return time.Time{}, false
	}
	return now.Add(d), true
}
