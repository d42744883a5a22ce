// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Karthikeya Naik

package service

import (
	"errors"

	"github.com/Karthikeya-Naik/VaultDrop/internal/adapter"
)

// mapAdapterError translates the adapter's transport error into the
// service-level business error shown to the user.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, adapter.ErrNetwork) {
		return ErrNetwork
	}

	return err
}

// rejection wraps a service-side rejection message into an error surfaced
// to the user verbatim. When the Vault Service supplied no reason, the
// operation's fallback message is used instead — the same wording the
// original client showed.
func rejection(message, fallback string) error {
	if message == "" {
		message = fallback
	}
	return errors.New(message)
}
