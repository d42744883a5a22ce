package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Karthikeya-Naik/VaultDrop/internal/adapter"
	"github.com/Karthikeya-Naik/VaultDrop/internal/app"
	"github.com/Karthikeya-Naik/VaultDrop/internal/logger"
)

type clientKeyService struct {
	adapter adapter.VaultServerAdapter
	session SessionKeeper
	log     *logger.Logger
}

func NewClientKeyService(serverAdapter adapter.VaultServerAdapter, session SessionKeeper, log *logger.Logger) ClientKeyService {
	return &clientKeyService{adapter: serverAdapter, session: session, log: log}
}

func (k *clientKeyService) Submit(ctx context.Context, rawKey string) (bool, error) {
	key := strings.TrimSpace(rawKey)
	if key == "" {
		return false, ErrEmptyKey
	}

	resp, err := k.adapter.CheckKey(ctx, key)
	if err != nil {
		return false, mapAdapterError(err)
	}
	if !resp.Success {
		return false, rejection(resp.Message, app.MsgCheckKeyFailed)
	}

	// The service accepted the key; only now does the session become
	// durable.
	if err = k.session.Establish(key, resp.KeyExists); err != nil {
		return false, fmt.Errorf("establish session: %w", err)
	}

	k.log.Info().Bool("key_existed", resp.KeyExists).Msg("access key accepted")
	return resp.KeyExists, nil
}

func (k *clientKeyService) Logout() error {
	if err := k.session.Clear(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	k.log.Info().Msg("session cleared")
	return nil
}
