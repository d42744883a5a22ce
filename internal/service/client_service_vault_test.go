// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Karthikeya Naik

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Karthikeya-Naik/VaultDrop/internal/adapter"
	"github.com/Karthikeya-Naik/VaultDrop/internal/app"
	"github.com/Karthikeya-Naik/VaultDrop/internal/logger"
	"github.com/Karthikeya-Naik/VaultDrop/internal/mock"
	"github.com/Karthikeya-Naik/VaultDrop/models"
)

func newVaultServiceForTest(t *testing.T) (ClientVaultService, *mock.MockVaultServerAdapter, *mock.MockSessionKeeper) {
	t.Helper()

	ctrl := gomock.NewController(t)
	adapterMock := mock.NewMockVaultServerAdapter(ctrl)
	sessionMock := mock.NewMockSessionKeeper(ctrl)

	return NewClientVaultService(adapterMock, sessionMock, logger.Nop()), adapterMock, sessionMock
}

func testVaultListing() models.VaultListResponse {
	return models.VaultListResponse{
		APIResponse: models.APIResponse{Success: true},
		Files: []models.VaultFile{
			{ID: 1, FileType: models.FileTypeImage, OriginalFilename: "photo.jpg", FilePath: "uploads/photo.jpg", CreatedAt: "2026-08-30 10:00:00"},
			{ID: 2, FileType: models.FileTypePDF, OriginalFilename: "report.pdf", FilePath: "uploads/report.pdf", CreatedAt: "2026-08-30 11:00:00"},
			{ID: 2, FileType: models.FileTypeVideo, OriginalFilename: "clip.mp4", FilePath: "uploads/clip.mp4", CreatedAt: "2026-08-30 12:00:00"},
		},
		Notes: []models.VaultNote{
			{ID: 2, Content: "remember the milk", CreatedAt: "2026-08-30 09:00:00"},
			{ID: 5, Content: "door code 4417", CreatedAt: "2026-08-30 13:00:00"},
		},
	}
}

// ── Refresh ──

func TestClientVaultService_Refresh_Success(t *testing.T) {
	svc, adapterMock, sessionMock := newVaultServiceForTest(t)
	ctx := context.Background()

	sessionMock.EXPECT().Key().Return("abc123")
	adapterMock.EXPECT().ListVault(ctx, "abc123").Return(testVaultListing(), nil)

	require.NoError(t, svc.Refresh(ctx))
	assert.Len(t, svc.Files(), 3)
	assert.Len(t, svc.Notes(), 2)
}

func TestClientVaultService_Refresh_ReplacesWholesale(t *testing.T) {
	svc, adapterMock, sessionMock := newVaultServiceForTest(t)
	ctx := context.Background()

	sessionMock.EXPECT().Key().Return("abc123").Times(2)
	adapterMock.EXPECT().ListVault(ctx, "abc123").Return(testVaultListing(), nil)
	require.NoError(t, svc.Refresh(ctx))

	// A later refresh returning a smaller set replaces everything,
	// rather than merging with what was loaded before.
	adapterMock.EXPECT().ListVault(ctx, "abc123").Return(models.VaultListResponse{
		APIResponse: models.APIResponse{Success: true},
		Files:       []models.VaultFile{{ID: 9, FileType: models.FileTypeOther, OriginalFilename: "a.bin"}},
	}, nil)
	require.NoError(t, svc.Refresh(ctx))

	require.Len(t, svc.Files(), 1)
	assert.Equal(t, int64(9), svc.Files()[0].ID)
	assert.Empty(t, svc.Notes())
}

func TestClientVaultService_Refresh_NoSession(t *testing.T) {
	svc, _, sessionMock := newVaultServiceForTest(t)

	sessionMock.EXPECT().Key().Return("")

	err := svc.Refresh(context.Background())

	assert.ErrorIs(t, err, ErrNoActiveSession)
}

func TestClientVaultService_Refresh_NetworkErrorKeepsCollection(t *testing.T) {
	svc, adapterMock, sessionMock := newVaultServiceForTest(t)
	ctx := context.Background()

	sessionMock.EXPECT().Key().Return("abc123").Times(2)
	adapterMock.EXPECT().ListVault(ctx, "abc123").Return(testVaultListing(), nil)
	require.NoError(t, svc.Refresh(ctx))

	adapterMock.EXPECT().ListVault(ctx, "abc123").Return(models.VaultListResponse{}, adapter.ErrNetwork)
	err := svc.Refresh(ctx)

	require.Error(t, err)
	assert.EqualError(t, err, app.MsgNetworkError)
	assert.Len(t, svc.Files(), 3, "collection must survive a failed refresh")
	assert.Len(t, svc.Notes(), 2)
}

func TestClientVaultService_Refresh_RejectionMessageVerbatim(t *testing.T) {
	svc, adapterMock, sessionMock := newVaultServiceForTest(t)
	ctx := context.Background()

	sessionMock.EXPECT().Key().Return("abc123")
	adapterMock.EXPECT().ListVault(ctx, "abc123").Return(models.VaultListResponse{
		APIResponse: models.APIResponse{Success: false, Message: "vault not found"},
	}, nil)

	err := svc.Refresh(ctx)

	require.Error(t, err)
	assert.EqualError(t, err, "vault not found")
}

// ── Save ──

func TestClientVaultService_Save_NothingToSave(t *testing.T) {
	svc, _, _ := newVaultServiceForTest(t)

	// No expectations registered: validation must fail before the
	// session or the adapter is consulted.
	err := svc.Save(context.Background(), nil, "   ")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNothingToSave)
	assert.EqualError(t, err, app.MsgNothingToSave)
}

func TestClientVaultService_Save_TriggersSingleRefresh(t *testing.T) {
	svc, adapterMock, sessionMock := newVaultServiceForTest(t)
	ctx := context.Background()
	uploads := []models.FileUpload{{Name: "photo.jpg", Data: []byte("jpeg-bytes")}}

	sessionMock.EXPECT().Key().Return("abc123").Times(2)
	adapterMock.EXPECT().
		Upload(ctx, "abc123", uploads, "a note").
		Return(models.APIResponse{Success: true}, nil)
	adapterMock.EXPECT().ListVault(ctx, "abc123").Return(testVaultListing(), nil).Times(1)

	require.NoError(t, svc.Save(ctx, uploads, "a note"))
	assert.Len(t, svc.Files(), 3)
	assert.Len(t, svc.Notes(), 2)
}

func TestClientVaultService_Save_NoteOnly(t *testing.T) {
	svc, adapterMock, sessionMock := newVaultServiceForTest(t)
	ctx := context.Background()

	sessionMock.EXPECT().Key().Return("abc123").Times(2)
	adapterMock.EXPECT().
		Upload(ctx, "abc123", nil, "just text").
		Return(models.APIResponse{Success: true}, nil)
	adapterMock.EXPECT().ListVault(ctx, "abc123").Return(models.VaultListResponse{
		APIResponse: models.APIResponse{Success: true},
		Notes:       []models.VaultNote{{ID: 1, Content: "just text"}},
	}, nil)

	require.NoError(t, svc.Save(ctx, nil, "just text"))
	require.Len(t, svc.Notes(), 1)
}

func TestClientVaultService_Save_UploadRejected(t *testing.T) {
	svc, adapterMock, sessionMock := newVaultServiceForTest(t)
	ctx := context.Background()
	uploads := []models.FileUpload{{Name: "big.iso", Data: []byte("x")}}

	sessionMock.EXPECT().Key().Return("abc123")
	adapterMock.EXPECT().
		Upload(ctx, "abc123", uploads, "").
		Return(models.APIResponse{Success: false, Message: "file too large"}, nil)

	err := svc.Save(ctx, uploads, "")

	require.Error(t, err)
	assert.EqualError(t, err, "file too large")
	assert.Empty(t, svc.Files())
}

func TestClientVaultService_Save_NetworkError(t *testing.T) {
	svc, adapterMock, sessionMock := newVaultServiceForTest(t)
	ctx := context.Background()
	uploads := []models.FileUpload{{Name: "photo.jpg", Data: []byte("x")}}

	sessionMock.EXPECT().Key().Return("abc123")
	adapterMock.EXPECT().
		Upload(ctx, "abc123", uploads, "").
		Return(models.APIResponse{}, adapter.ErrNetwork)

	err := svc.Save(ctx, uploads, "")

	assert.ErrorIs(t, err, ErrNetwork)
}

func TestClientVaultService_Save_RefreshFailureSurfaced(t *testing.T) {
	svc, adapterMock, sessionMock := newVaultServiceForTest(t)
	ctx := context.Background()
	uploads := []models.FileUpload{{Name: "photo.jpg", Data: []byte("x")}}

	sessionMock.EXPECT().Key().Return("abc123").Times(2)
	adapterMock.EXPECT().
		Upload(ctx, "abc123", uploads, "").
		Return(models.APIResponse{Success: true}, nil)
	adapterMock.EXPECT().ListVault(ctx, "abc123").Return(models.VaultListResponse{}, adapter.ErrNetwork)

	err := svc.Save(ctx, uploads, "")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNetwork)

	// The accepted upload must be distinguishable from a failed one, so
	// callers know the pending input is spent.
	var staleErr *RefreshAfterSaveError
	require.ErrorAs(t, err, &staleErr)
	assert.EqualError(t, staleErr.Err, app.MsgNetworkError)
}

// ── RemoveOne ──

func TestClientVaultService_RemoveOne_MatchesIDAndType(t *testing.T) {
	svc, adapterMock, sessionMock := newVaultServiceForTest(t)
	ctx := context.Background()

	sessionMock.EXPECT().Key().Return("abc123").Times(2)
	adapterMock.EXPECT().ListVault(ctx, "abc123").Return(testVaultListing(), nil)
	require.NoError(t, svc.Refresh(ctx))

	// ID 2 appears as a pdf, a video and a note; only the pdf may go.
	adapterMock.EXPECT().
		DeleteOne(ctx, int64(2), "abc123", models.FileTypePDF).
		Return(models.APIResponse{Success: true}, nil)

	require.NoError(t, svc.RemoveOne(ctx, 2, models.FileTypePDF))

	require.Len(t, svc.Files(), 2)
	for _, f := range svc.Files() {
		assert.False(t, f.ID == 2 && f.FileType == models.FileTypePDF)
	}
	assert.Len(t, svc.Notes(), 2, "a note sharing the id must survive")
}

func TestClientVaultService_RemoveOne_Note(t *testing.T) {
	svc, adapterMock, sessionMock := newVaultServiceForTest(t)
	ctx := context.Background()

	sessionMock.EXPECT().Key().Return("abc123").Times(2)
	adapterMock.EXPECT().ListVault(ctx, "abc123").Return(testVaultListing(), nil)
	require.NoError(t, svc.Refresh(ctx))

	adapterMock.EXPECT().
		DeleteOne(ctx, int64(2), "abc123", models.FileTypeText).
		Return(models.APIResponse{Success: true}, nil)

	require.NoError(t, svc.RemoveOne(ctx, 2, models.FileTypeText))

	require.Len(t, svc.Notes(), 1)
	assert.Equal(t, int64(5), svc.Notes()[0].ID)
	assert.Len(t, svc.Files(), 3, "files sharing the id must survive")
}

func TestClientVaultService_RemoveOne_FailureKeepsCollection(t *testing.T) {
	svc, adapterMock, sessionMock := newVaultServiceForTest(t)
	ctx := context.Background()

	sessionMock.EXPECT().Key().Return("abc123").Times(2)
	adapterMock.EXPECT().ListVault(ctx, "abc123").Return(testVaultListing(), nil)
	require.NoError(t, svc.Refresh(ctx))

	adapterMock.EXPECT().
		DeleteOne(ctx, int64(1), "abc123", models.FileTypeImage).
		Return(models.APIResponse{Success: false, Message: "not yours"}, nil)

	err := svc.RemoveOne(ctx, 1, models.FileTypeImage)

	require.Error(t, err)
	assert.EqualError(t, err, "not yours")
	assert.Len(t, svc.Files(), 3)
}

func TestClientVaultService_RemoveOne_FallbackMessage(t *testing.T) {
	svc, adapterMock, sessionMock := newVaultServiceForTest(t)
	ctx := context.Background()

	sessionMock.EXPECT().Key().Return("abc123")
	adapterMock.EXPECT().
		DeleteOne(ctx, int64(1), "abc123", models.FileTypeImage).
		Return(models.APIResponse{Success: false}, nil)

	err := svc.RemoveOne(ctx, 1, models.FileTypeImage)

	require.Error(t, err)
	assert.EqualError(t, err, app.MsgDeleteFailed)
}

// ── RemoveAll ──

func TestClientVaultService_RemoveAll_Success(t *testing.T) {
	svc, adapterMock, sessionMock := newVaultServiceForTest(t)
	ctx := context.Background()

	sessionMock.EXPECT().Key().Return("abc123").Times(2)
	adapterMock.EXPECT().ListVault(ctx, "abc123").Return(testVaultListing(), nil)
	require.NoError(t, svc.Refresh(ctx))

	adapterMock.EXPECT().DeleteAll(ctx, "abc123").Return(models.APIResponse{Success: true}, nil)

	require.NoError(t, svc.RemoveAll(ctx))
	assert.Empty(t, svc.Files())
	assert.Empty(t, svc.Notes())
}

func TestClientVaultService_RemoveAll_NetworkErrorKeepsCollection(t *testing.T) {
	svc, adapterMock, sessionMock := newVaultServiceForTest(t)
	ctx := context.Background()

	sessionMock.EXPECT().Key().Return("abc123").Times(2)
	adapterMock.EXPECT().ListVault(ctx, "abc123").Return(testVaultListing(), nil)
	require.NoError(t, svc.Refresh(ctx))

	adapterMock.EXPECT().DeleteAll(ctx, "abc123").Return(models.APIResponse{}, adapter.ErrNetwork)

	err := svc.RemoveAll(ctx)

	require.Error(t, err)
	assert.EqualError(t, err, app.MsgNetworkError)
	assert.Len(t, svc.Files(), 3)
	assert.Len(t, svc.Notes(), 2)
}

func TestClientVaultService_RemoveAll_Rejected(t *testing.T) {
	svc, adapterMock, sessionMock := newVaultServiceForTest(t)
	ctx := context.Background()

	sessionMock.EXPECT().Key().Return("abc123")
	adapterMock.EXPECT().DeleteAll(ctx, "abc123").Return(models.APIResponse{Success: false}, nil)

	err := svc.RemoveAll(ctx)

	require.Error(t, err)
	assert.EqualError(t, err, app.MsgClearVaultFailed)
}
