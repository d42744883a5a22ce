package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/Karthikeya-Naik/VaultDrop/internal/config"
	"github.com/Karthikeya-Naik/VaultDrop/internal/logger"
	"github.com/Karthikeya-Naik/VaultDrop/internal/utils"
	"github.com/Karthikeya-Naik/VaultDrop/models"
)

// defaultBaseURL mirrors the development default of the original client.
const defaultBaseURL = "http://localhost/projectvault/api"

type httpVaultAdapter struct {
	client *resty.Client
	ids    *utils.UUIDGenerator
	log    *logger.Logger
}

// NewHTTPVaultAdapter constructs a [VaultServerAdapter] speaking the REST
// contract of the Vault Service. An empty base URL falls back to the local
// development default; a zero timeout leaves requests without a deadline,
// matching the original client's behavior for hung requests.
func NewHTTPVaultAdapter(cfg config.ClientAdapter, log *logger.Logger) VaultServerAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/"))
	if cfg.RequestTimeout > 0 {
		cli.SetTimeout(cfg.RequestTimeout)
	}

	return &httpVaultAdapter{
		client: cli,
		ids:    utils.NewUUIDGenerator(),
		log:    log,
	}
}

func (h *httpVaultAdapter) CheckKey(ctx context.Context, accessKey string) (models.CheckKeyResponse, error) {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"access_key": accessKey}).
		Post("/check_key.php")
	if err != nil {
		h.log.Debug().Err(err).Msg("check key request failed")
		return models.CheckKeyResponse{}, fmt.Errorf("check key request: %w", ErrNetwork)
	}

	var out models.CheckKeyResponse
	if err = decodeEnvelope(resp, &out); err != nil {
		return models.CheckKeyResponse{}, fmt.Errorf("decode check key response: %w", err)
	}

	return out, nil
}

func (h *httpVaultAdapter) ListVault(ctx context.Context, accessKey string) (models.VaultListResponse, error) {
	resp, err := h.request(ctx).
		SetQueryParam("access_key", accessKey).
		Get("/get_files.php")
	if err != nil {
		h.log.Debug().Err(err).Msg("list vault request failed")
		return models.VaultListResponse{}, fmt.Errorf("list vault request: %w", ErrNetwork)
	}

	var out models.VaultListResponse
	if err = decodeEnvelope(resp, &out); err != nil {
		return models.VaultListResponse{}, fmt.Errorf("decode list vault response: %w", err)
	}

	return out, nil
}

func (h *httpVaultAdapter) Upload(ctx context.Context, accessKey string, files []models.FileUpload, noteContent string) (models.APIResponse, error) {
	req := h.request(ctx).
		SetMultipartFormData(map[string]string{"access_key": accessKey})

	if noteContent != "" {
		req.SetMultipartFormData(map[string]string{"note_content": noteContent})
	}

	// Positional field names, matching the upload contract.
	for i, f := range files {
		req.SetFileReader(fmt.Sprintf("file_%d", i), f.Name, bytes.NewReader(f.Data))
	}

	resp, err := req.Post("/upload.php")
	if err != nil {
		h.log.Debug().Err(err).Msg("upload request failed")
		return models.APIResponse{}, fmt.Errorf("upload request: %w", ErrNetwork)
	}

	var out models.APIResponse
	if err = decodeEnvelope(resp, &out); err != nil {
		return models.APIResponse{}, fmt.Errorf("decode upload response: %w", err)
	}

	return out, nil
}

func (h *httpVaultAdapter) DeleteOne(ctx context.Context, fileID int64, accessKey string, fileType models.FileType) (models.APIResponse, error) {
	body := map[string]any{
		"file_id":    fileID,
		"access_key": accessKey,
		"file_type":  fileType,
	}

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post("/delete_file.php")
	if err != nil {
		h.log.Debug().Err(err).Msg("delete one request failed")
		return models.APIResponse{}, fmt.Errorf("delete one request: %w", ErrNetwork)
	}

	var out models.APIResponse
	if err = decodeEnvelope(resp, &out); err != nil {
		return models.APIResponse{}, fmt.Errorf("decode delete one response: %w", err)
	}

	return out, nil
}

func (h *httpVaultAdapter) DeleteAll(ctx context.Context, accessKey string) (models.APIResponse, error) {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"access_key": accessKey}).
		Post("/delete_all.php")
	if err != nil {
		h.log.Debug().Err(err).Msg("delete all request failed")
		return models.APIResponse{}, fmt.Errorf("delete all request: %w", ErrNetwork)
	}

	var out models.APIResponse
	if err = decodeEnvelope(resp, &out); err != nil {
		return models.APIResponse{}, fmt.Errorf("decode delete all response: %w", err)
	}

	return out, nil
}

func (h *httpVaultAdapter) request(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader("X-Request-Id", h.ids.Generate())
}

// decodeEnvelope unmarshals the response body into out. The Vault Service
// replies with a JSON envelope on every path, including rejections, so a
// body that does not decode is treated the same as a transport failure.
func decodeEnvelope(resp *resty.Response, out any) error {
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return ErrNetwork
	}
	return nil
}
