package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Karthikeya-Naik/VaultDrop/internal/logger"
	"github.com/Karthikeya-Naik/VaultDrop/internal/mock"
	"github.com/Karthikeya-Naik/VaultDrop/models"
)

// Walks the first-run flow end to end: a fresh key is submitted, the session
// is established, and the first refresh yields an empty collection.
func TestClientServices_NewVaultFlow(t *testing.T) {
	ctrl := gomock.NewController(t)
	adapterMock := mock.NewMockVaultServerAdapter(ctrl)
	sessionMock := mock.NewMockSessionKeeper(ctrl)
	ctx := context.Background()

	services := NewClientServices(adapterMock, sessionMock, logger.Nop())

	adapterMock.EXPECT().
		CheckKey(ctx, "abc123").
		Return(models.CheckKeyResponse{
			APIResponse: models.APIResponse{Success: true},
			KeyExists:   false,
		}, nil)
	sessionMock.EXPECT().Establish("abc123", false).Return(nil)

	keyExisted, err := services.KeyService.Submit(ctx, "abc123")
	require.NoError(t, err)
	assert.False(t, keyExisted, "a fresh key opens a new vault")

	sessionMock.EXPECT().Key().Return("abc123")
	adapterMock.EXPECT().
		ListVault(ctx, "abc123").
		Return(models.VaultListResponse{APIResponse: models.APIResponse{Success: true}}, nil)

	require.NoError(t, services.VaultService.Refresh(ctx))
	assert.Empty(t, services.VaultService.Files())
	assert.Empty(t, services.VaultService.Notes())
}
