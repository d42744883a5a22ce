package service

import (
	"github.com/Karthikeya-Naik/VaultDrop/internal/adapter"
	"github.com/Karthikeya-Naik/VaultDrop/internal/logger"
)

// ClientServices bundles the client-side services handed to the UI.
type ClientServices struct {
	KeyService   ClientKeyService
	VaultService ClientVaultService
}

func NewClientServices(serverAdapter adapter.VaultServerAdapter, session SessionKeeper, log *logger.Logger) *ClientServices {
	return &ClientServices{
		KeyService:   NewClientKeyService(serverAdapter, session, log),
		VaultService: NewClientVaultService(serverAdapter, session, log),
	}
}
