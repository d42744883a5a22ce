// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Karthikeya Naik

package service

import (
	"context"
	"strings"

	"github.com/Karthikeya-Naik/VaultDrop/internal/adapter"
	"github.com/Karthikeya-Naik/VaultDrop/internal/app"
	"github.com/Karthikeya-Naik/VaultDrop/internal/logger"
	"github.com/Karthikeya-Naik/VaultDrop/models"
)

type clientVaultService struct {
	adapter adapter.VaultServerAdapter
	session SessionKeeper
	log     *logger.Logger

	files []models.VaultFile
	notes []models.VaultNote
}

func NewClientVaultService(serverAdapter adapter.VaultServerAdapter, session SessionKeeper, log *logger.Logger) ClientVaultService {
	return &clientVaultService{adapter: serverAdapter, session: session, log: log}
}

func (v *clientVaultService) Refresh(ctx context.Context) error {
	key := v.session.Key()
	if key == "" {
		return ErrNoActiveSession
	}

	resp, err := v.adapter.ListVault(ctx, key)
	if err != nil {
		return mapAdapterError(err)
	}
	if !resp.Success {
		return rejection(resp.Message, app.MsgLoadVaultFailed)
	}

	// Full-refresh semantics: the service's ordering is authoritative.
	v.files = resp.Files
	v.notes = resp.Notes
	v.log.Debug().Int("files", len(v.files)).Int("notes", len(v.notes)).Msg("vault refreshed")
	return nil
}

func (v *clientVaultService) Save(ctx context.Context, files []models.FileUpload, noteContent string) error {
	if len(files) == 0 && strings.TrimSpace(noteContent) == "" {
		return ErrNothingToSave
	}

	key := v.session.Key()
	if key == "" {
		return ErrNoActiveSession
	}

	resp, err := v.adapter.Upload(ctx, key, files, noteContent)
	if err != nil {
		return mapAdapterError(err)
	}
	if !resp.Success {
		return rejection(resp.Message, app.MsgSaveFailed)
	}

	// Uploads never splice items in locally; identifiers and derived
	// fields are server-assigned, so a full refetch is authoritative.
	// The upload is already accepted at this point, so a refresh failure
	// gets its own error type: the save itself must count as done.
	if err = v.Refresh(ctx); err != nil {
		return &RefreshAfterSaveError{Err: err}
	}

	return nil
}

func (v *clientVaultService) RemoveOne(ctx context.Context, fileID int64, fileType models.FileType) error {
	key := v.session.Key()
	if key == "" {
		return ErrNoActiveSession
	}

	resp, err := v.adapter.DeleteOne(ctx, fileID, key, fileType)
	if err != nil {
		return mapAdapterError(err)
	}
	if !resp.Success {
		return rejection(resp.Message, app.MsgDeleteFailed)
	}

	// Optimistic local removal keeps deletion feeling instantaneous.
	if fileType == models.FileTypeText {
		v.notes = deleteNoteByID(v.notes, fileID)
	} else {
		v.files = deleteFileByID(v.files, fileID, fileType)
	}

	v.log.Debug().Int64("file_id", fileID).Str("file_type", string(fileType)).Msg("vault item removed")
	return nil
}

func (v *clientVaultService) RemoveAll(ctx context.Context) error {
	key := v.session.Key()
	if key == "" {
		return ErrNoActiveSession
	}

	resp, err := v.adapter.DeleteAll(ctx, key)
	if err != nil {
		return mapAdapterError(err)
	}
	if !resp.Success {
		return rejection(resp.Message, app.MsgClearVaultFailed)
	}

	v.files = nil
	v.notes = nil
	v.log.Debug().Msg("vault cleared")
	return nil
}

func (v *clientVaultService) Files() []models.VaultFile {
	return v.files
}

func (v *clientVaultService) Notes() []models.VaultNote {
	return v.notes
}

func deleteFileByID(files []models.VaultFile, fileID int64, fileType models.FileType) []models.VaultFile {
	out := make([]models.VaultFile, 0, len(files))
	for _, f := range files {
		if f.ID == fileID && f.FileType == fileType {
			continue
		}
		out = append(out, f)
	}
	return out
}

func deleteNoteByID(notes []models.VaultNote, fileID int64) []models.VaultNote {
	out := make([]models.VaultNote, 0, len(notes))
	for _, n := range notes {
		if n.ID == fileID {
			continue
		}
		out = append(out, n)
	}
	return out
}
