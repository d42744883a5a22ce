// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Karthikeya Naik

package tui

type screen int

const (
	screenHome screen = iota
	screenAbout
	screenHowItWorks
	screenVault
)

// gateState is the access-gate view of the session: whether a key has been
// checked and established for this run.
type gateState int

const (
	gateUnknown gateState = iota
	gateUnauthenticated
	gateAuthenticated
)

// resolveScreen decides the effective screen for a requested one. The landing
// page is reachable only without a session (with one, the vault takes its
// place); the vault is reachable only with a session; the informational
// screens are reachable either way. An unknown gate is treated as
// unauthenticated: nothing protected opens before the session is restored.
func resolveScreen(requested screen, gate gateState) screen {
	switch requested {
	case screenHome:
		if gate == gateAuthenticated {
			return screenVault
		}
		return screenHome
	case screenVault:
		if gate != gateAuthenticated {
			return screenHome
		}
		return screenVault
	default:
		return requested
	}
}

func gateFor(active bool) gateState {
	if active {
		return gateAuthenticated
	}
	return gateUnauthenticated
}
