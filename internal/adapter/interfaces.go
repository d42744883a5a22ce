// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Karthikeya Naik

// Package adapter provides transport-layer abstractions for communicating
// with the remote Vault Service.
//
// The primary abstraction is [VaultServerAdapter], which decouples the
// service layer from the underlying protocol. The package ships a REST
// implementation ([NewHTTPVaultAdapter]) speaking the five-endpoint contract
// of the Vault Service.
//
// Transport-level failures never escape this package as faults: they are
// wrapped into [ErrNetwork] so that callers can use [errors.Is] to tell a
// connectivity problem apart from an application-level rejection carried in
// the response envelope.
package adapter

import (
	"context"

	"github.com/Karthikeya-Naik/VaultDrop/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/vault_adapter_mock.go -package=mock

// VaultServerAdapter defines transport-agnostic communication with the
// remote Vault Service. Implementations are responsible for serialisation
// and for mapping transport-level errors to [ErrNetwork].
//
// Every method returns the decoded response envelope; an envelope with
// Success == false carries the service-supplied rejection message, which
// callers surface verbatim. The returned error is non-nil only when the
// request could not complete or the response could not be decoded.
type VaultServerAdapter interface {
	// CheckKey submits an access key for validation. The Vault Service
	// accepts any non-empty key; KeyExists in the response reports whether
	// a vault for that key already existed. Callers enforce the non-empty
	// precondition before invoking.
	CheckKey(ctx context.Context, accessKey string) (models.CheckKeyResponse, error)

	// ListVault fetches the complete file and note collections for the
	// given access key. There is no pagination.
	ListVault(ctx context.Context, accessKey string) (models.VaultListResponse, error)

	// Upload sends zero or more file blobs and an optional note to the
	// vault in a single multipart request. Files are attached under
	// positional field names (file_0, file_1, ...); the note_content field
	// is omitted entirely when noteContent is empty. At least one of the
	// two must be supplied — a Vault Synchronizer precondition this
	// component does not itself enforce.
	Upload(ctx context.Context, accessKey string, files []models.FileUpload, noteContent string) (models.APIResponse, error)

	// DeleteOne removes a single item by identifier. fileType distinguishes
	// text notes from stored files so the service applies the correct
	// deletion path.
	DeleteOne(ctx context.Context, fileID int64, accessKey string, fileType models.FileType) (models.APIResponse, error)

	// DeleteAll removes every file and note associated with the access key.
	DeleteAll(ctx context.Context, accessKey string) (models.APIResponse, error)
}
