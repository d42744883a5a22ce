package service

import (
	"errors"

	"github.com/Karthikeya-Naik/VaultDrop/internal/app"
)

var (
	// ErrNetwork is the user-facing form of a transport failure. Local
	// state is never mutated on this path.
	ErrNetwork = errors.New(app.MsgNetworkError)

	// ErrEmptyKey rejects a blank key submission before any network call.
	ErrEmptyKey = errors.New(app.MsgEmptyKey)

	// ErrNothingToSave rejects a save with neither files nor note text
	// before any network call.
	ErrNothingToSave = errors.New(app.MsgNothingToSave)

	// ErrNoActiveSession guards vault operations invoked without an
	// established session. The access gate makes this unreachable through
	// the UI; it exists for programmatic misuse.
	ErrNoActiveSession = errors.New("no active session")
)

// RefreshAfterSaveError reports a save whose upload was accepted but whose
// follow-up refresh failed. The vault changed remotely, so callers must
// treat the save itself as done — pending input is spent and retrying it
// would duplicate the upload. Err carries the refresh failure.
type RefreshAfterSaveError struct {
	Err error
}

func (e *RefreshAfterSaveError) Error() string {
	return "refresh after save: " + e.Err.Error()
}

func (e *RefreshAfterSaveError) Unwrap() error {
	return e.Err
}
