// Package ui decides how csmake talks to the user: interactive prompts on
// a terminal, plain output everywhere else.
package ui

import (
	"os"

	"github.com/mattn/go-isatty"
)

// EnvNonInteractive forces headless mode when set to "1" or "true".
const EnvNonInteractive = "CSMAKE_NONINTERACTIVE"

// HeadlessManager reports whether prompts may be shown.
type HeadlessManager struct {
	forced *bool
	fd     uintptr
	getenv func(string) string
}

// NewHeadlessManager creates a HeadlessManager that inspects os.Stdin.
func NewHeadlessManager() *HeadlessManager {
	return &HeadlessManager{fd: os.Stdin.Fd(), getenv: os.Getenv}
}

// IsHeadless returns true when no prompt should be shown: when forced,
// when CSMAKE_NONINTERACTIVE is set, or when stdin is not a terminal.
func (h *HeadlessManager) IsHeadless() bool {
	if h.forced != nil {
		return *h.forced
	}
	if v := h.getenv(EnvNonInteractive); v == "1" || v == "true" {
		return true
	}
	return !isatty.IsTerminal(h.fd) && !isatty.IsCygwinTerminal(h.fd)
}

// ForceHeadless overrides detection. Pass true to force headless mode, or
// false to force interactive mode regardless of TTY state.
func (h *HeadlessManager) ForceHeadless(force bool) {
	h.forced = &force
}

// ClearForce reverts to automatic detection.
func (h *HeadlessManager) ClearForce() {
	h.forced = nil
}
