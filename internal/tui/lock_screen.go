// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-wallet-lock/internal/service"
	"github.com/MKhiriev/go-wallet-lock/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// LockModel is the Bubble Tea model for the lock screen. Every coordinator
// call runs inside a command so a slow verification or a pending biometric
// challenge never blocks the event loop. Calls are queued and at most one is
// in flight, so the coordinator sees input in the order it was typed. The
// resulting snapshots come back as [snapshotMsg] values and older ones are
// dropped by sequence number.
type LockModel struct {
	ctx         context.Context
	coordinator service.Coordinator
	countdown   service.CountdownJob
	interval    time.Duration

	snap      models.LockSnapshot
	dismissed bool

	pending []lockOp
	busy    bool
}

// lockOp is one queued coordinator call. It returns the message the model
// handles once the call is done.
type lockOp func() tea.Msg

// lockOpDoneMsg reports that the in-flight [lockOp] finished.
type lockOpDoneMsg struct {
	msg tea.Msg
}

// NewLockModel creates a [LockModel]. The countdown job runs only while the
// lock screen is presented.
func NewLockModel(ctx context.Context, coordinator service.Coordinator, countdown service.CountdownJob, interval time.Duration) *LockModel {
	return &LockModel{
		ctx:         ctx,
		coordinator: coordinator,
		countdown:   countdown,
		interval:    interval,
	}
}

// Init implements [tea.Model]. Presents the lock screen.
func (m *LockModel) Init() tea.Cmd {
	return m.enqueue(m.opPresent())
}

// Update implements [tea.Model]. Handled messages:
//   - [lockOpDoneMsg]: applies the result of a queued call and starts the next one.
//   - [snapshotMsg]: replaces the rendered snapshot unless it is older.
//   - [unlockedMsg]: stops the countdown and opens the unlocked page.
//   - [presentMsg]: presents the lock screen again.
//   - 0-9: appends a digit.
//   - backspace: removes the last digit.
//   - b: starts a biometric challenge.
//   - esc: hides the lock screen; enter shows it again.
func (m *LockModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case lockOpDoneMsg:
		m.busy = false
		next := m.dispatch()
		if snap, ok := msg.msg.(snapshotMsg); ok {
			m.applySnapshot(snap)
			return m, next
		}
		if msg.msg == nil {
			return m, next
		}
		done := msg.msg
		forward := func() tea.Msg { return done }
		if next == nil {
			return m, forward
		}
		return m, tea.Batch(forward, next)
	case snapshotMsg:
		m.applySnapshot(msg)
		return m, nil
	case unlockedMsg:
		return m, m.enqueue(m.opUnlocked())
	case presentMsg:
		m.dismissed = false
		return m, m.enqueue(m.opPresent())
	case tea.KeyMsg:
		return m.updateKey(msg)
	}
	return m, nil
}

func (m *LockModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.dismissed {
		if key.Matches(msg, keys.enter) {
			m.dismissed = false
			return m, m.enqueue(m.opPresent())
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.digit):
		return m, m.enqueue(m.opDigit(rune(msg.String()[0])))
	case key.Matches(msg, keys.delete):
		return m, m.enqueue(m.opDelete())
	case key.Matches(msg, keys.biometric):
		return m, m.enqueue(m.opBiometric())
	case key.Matches(msg, keys.dismiss):
		m.dismissed = true
		return m, m.enqueue(m.opDismiss())
	}
	return m, nil
}

func (m *LockModel) applySnapshot(msg snapshotMsg) {
	if msg.snap.Seq <= m.snap.Seq {
		return
	}
	m.snap = msg.snap
}

func (m *LockModel) enqueue(op lockOp) tea.Cmd {
	m.pending = append(m.pending, op)
	return m.dispatch()
}

// dispatch starts the next queued call unless one is already running.
func (m *LockModel) dispatch() tea.Cmd {
	if m.busy || len(m.pending) == 0 {
		return nil
	}
	op := m.pending[0]
	m.pending = m.pending[1:]
	m.busy = true
	return func() tea.Msg {
		return lockOpDoneMsg{msg: op()}
	}
}

// View implements [tea.Model].
func (m *LockModel) View() string {
	if m.dismissed {
		return renderPage("WALLET LOCKED", "The lock screen is hidden.", "enter: show lock screen")
	}

	var b strings.Builder
	b.WriteString("Enter passcode\n\n")
	b.WriteString(lockBoxStyle.Render(renderDots(m.snap.Entered, m.snap.Length)))
	b.WriteString("\n")

	switch {
	case m.snap.State == models.StateLockedOut:
		b.WriteString("\nLocked. Try again in ")
		b.WriteString(formatRemaining(m.snap.Remaining))
		b.WriteString("\n")
	case m.snap.State == models.StateVerifying:
		b.WriteString("\nChecking...\n")
	case m.snap.BiometricPending:
		b.WriteString(fmt.Sprintf("\nWaiting for %s...\n", m.snap.Biometric.KindName))
	}

	if m.snap.Message != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.snap.Message))
		b.WriteString("\n")
	}

	hotKeys := []string{"0-9: digit", "backspace: delete"}
	if m.snap.BiometricUsable() {
		hotKeys = append(hotKeys, "b: "+m.snap.Biometric.KindName)
	}
	hotKeys = append(hotKeys, "esc: hide")

	return renderPage("WALLET LOCKED", strings.TrimRight(b.String(), "\n"), strings.Join(hotKeys, " │ "))
}

func (m *LockModel) opPresent() lockOp {
	ctx, coordinator, countdown, interval := m.ctx, m.coordinator, m.countdown, m.interval
	return func() tea.Msg {
		snap, _ := coordinator.Present(ctx)
		countdown.Start(ctx, interval)
		return snapshotMsg{snap: snap}
	}
}

func (m *LockModel) opDigit(d rune) lockOp {
	ctx, coordinator := m.ctx, m.coordinator
	return func() tea.Msg {
		snap, _ := coordinator.Digit(ctx, d)
		return snapshotMsg{snap: snap}
	}
}

func (m *LockModel) opDelete() lockOp {
	ctx, coordinator := m.ctx, m.coordinator
	return func() tea.Msg {
		snap, _ := coordinator.Delete(ctx)
		return snapshotMsg{snap: snap}
	}
}

func (m *LockModel) opBiometric() lockOp {
	ctx, coordinator := m.ctx, m.coordinator
	return func() tea.Msg {
		snap, _ := coordinator.TriggerBiometric(ctx)
		return snapshotMsg{snap: snap}
	}
}

func (m *LockModel) opDismiss() lockOp {
	coordinator, countdown := m.coordinator, m.countdown
	return func() tea.Msg {
		countdown.Stop()
		coordinator.Dismiss()
		return snapshotMsg{snap: coordinator.Snapshot()}
	}
}

func (m *LockModel) opUnlocked() lockOp {
	countdown := m.countdown
	return func() tea.Msg {
		countdown.Stop()
		return NavigateTo{Page: pageUnlocked}
	}
}
