package models

// APIResponse is the uniform envelope every Vault Service endpoint replies
// with. Mutating endpoints (upload, delete-one, delete-all) return exactly
// this shape; the richer responses embed it.
type APIResponse struct {
	// Success reports whether the service accepted the operation.
	Success bool `json:"success"`

	// Message carries the service-supplied failure reason when Success is
	// false. It is surfaced to the user verbatim.
	Message string `json:"message,omitempty"`
}

// CheckKeyResponse is the reply of the check-key endpoint.
type CheckKeyResponse struct {
	APIResponse

	// KeyExists reports whether the submitted access key already had a
	// vault before this check. Informational only — a fresh key is accepted
	// just the same and its vault is created lazily on first upload.
	KeyExists bool `json:"keyExists"`
}

// VaultListResponse is the reply of the list-vault endpoint: the complete
// file and note sets for one access key. There is no pagination — the
// service always returns the full collection.
type VaultListResponse struct {
	APIResponse

	// Files holds every non-text item of the vault, ordered by arrival.
	Files []VaultFile `json:"files"`

	// Notes holds every text note of the vault, ordered by arrival.
	Notes []VaultNote `json:"notes"`
}
