// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Karthikeya Naik

// Package app contains shared application-layer constants used across the
// VaultDrop client services and views.
//
// All Msg* constants are human-readable message strings surfaced to the user
// when an operation fails without a service-supplied reason. Keeping them in
// one place ensures consistent wording throughout the client.
package app

const (
	// MsgNetworkError is shown when a request could not complete at the
	// transport level. It deliberately carries no technical detail.
	MsgNetworkError = "Network error occurred"

	// MsgEmptyKey is shown when the key form is submitted blank.
	MsgEmptyKey = "Please enter a key"

	// MsgNothingToSave is shown when a save is attempted with neither a
	// file selection nor note text.
	MsgNothingToSave = "Please add a file or enter some text before saving"

	// MsgLoadVaultFailed is the fallback when list-vault is rejected
	// without a message.
	MsgLoadVaultFailed = "Failed to load your vault"

	// MsgSaveFailed is the fallback when upload is rejected without a
	// message.
	MsgSaveFailed = "Failed to save to your vault"

	// MsgDeleteFailed is the fallback when delete-one is rejected without
	// a message.
	MsgDeleteFailed = "Failed to delete file"

	// MsgClearVaultFailed is the fallback when delete-all is rejected
	// without a message.
	MsgClearVaultFailed = "Failed to clear vault"

	// MsgCheckKeyFailed is the fallback when check-key is rejected without
	// a message.
	MsgCheckKeyFailed = "An error occurred. Please try again."
)
