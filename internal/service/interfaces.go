package service

import (
	"context"

	"github.com/Karthikeya-Naik/VaultDrop/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mocks.go -package=mock

// SessionKeeper is the slice of the session store the services depend on.
// Declared here so tests can run independent sessions against mocks; the
// concrete implementation lives in the session package.
type SessionKeeper interface {
	// Key returns the active access key, or "" when no session is active.
	Key() string

	// Establish sets the active session and persists the key durably.
	Establish(key string, existed bool) error

	// Clear removes the session from memory and disk. Idempotent.
	Clear() error

	// Active reports whether a session is currently established.
	Active() bool

	// KeyExisted reports whether the vault existed before this session.
	KeyExisted() bool
}

// ClientKeyService defines the access-key flow: validating a submitted key
// against the Vault Service and establishing or tearing down the session.
type ClientKeyService interface {
	// Submit trims rawKey, rejects a blank result without any network call,
	// and otherwise asks the Vault Service to check the key. On acceptance
	// the session is established and the key persisted; keyExisted reports
	// whether a vault for the key was already present.
	// Returns an error when validation fails, the request cannot complete,
	// or the service rejects the key.
	Submit(ctx context.Context, rawKey string) (keyExisted bool, err error)

	// Logout clears the session. Idempotent; never contacts the network.
	Logout() error
}

// ClientVaultService keeps the in-memory vault collection consistent with
// the remote store. The collection is derived cache data: rebuilt wholesale
// by Refresh, amended locally on a successful single delete, emptied on a
// successful clear-all, and never persisted client-side.
//
// No operation retries on failure; every failure is terminal for that
// attempt and the collection is left untouched.
type ClientVaultService interface {
	// Refresh fetches the full file/note set for the active key and
	// replaces the collection wholesale on success.
	Refresh(ctx context.Context) error

	// Save uploads the given file blobs and/or note text. It fails
	// validation without contacting the network when both are empty.
	// On a successful upload it refreshes the collection — the service
	// never guesses server-assigned identifiers for new items.
	Save(ctx context.Context, files []models.FileUpload, noteContent string) error

	// RemoveOne deletes a single item and, on success, removes exactly the
	// matching (id, type) entry from the local collection without a
	// refetch. Confirmation is the caller's responsibility.
	RemoveOne(ctx context.Context, fileID int64, fileType models.FileType) error

	// RemoveAll deletes every item of the vault and empties the local
	// collection on success. Confirmation is the caller's responsibility.
	RemoveAll(ctx context.Context) error

	// Files returns the current file collection, ordered by arrival.
	Files() []models.VaultFile

	// Notes returns the current note collection, ordered by arrival.
	Notes() []models.VaultNote
}
