package models

// FileType classifies a stored vault file. The value is assigned by the
// Vault Service when the file is uploaded and determines how the client
// presents the item.
type FileType string

const (
	// FileTypeImage represents raster image uploads (jpeg, png, gif, ...).
	FileTypeImage FileType = "image"

	// FileTypeVideo represents video uploads.
	FileTypeVideo FileType = "video"

	// FileTypePDF represents PDF documents.
	FileTypePDF FileType = "pdf"

	// FileTypeOther represents any upload the service could not classify
	// into one of the known categories.
	FileTypeOther FileType = "other"

	// FileTypeText marks text notes. Notes share the identifier space with
	// files inside a single vault and are distinguished from them only by
	// this type when a deletion is requested.
	FileTypeText FileType = "text"
)

// VaultFile is a single stored file as returned by the list-vault endpoint.
// The client never modifies these fields; they are owned by the Vault
// Service and treated as derived cache data.
type VaultFile struct {
	// ID uniquely identifies the file within its vault.
	ID int64 `json:"id"`

	// FileType is the service-assigned classification of the upload.
	FileType FileType `json:"file_type"`

	// OriginalFilename is the name the file had when it was uploaded.
	OriginalFilename string `json:"original_filename"`

	// FilePath is the URL under which the stored file can be fetched.
	FilePath string `json:"file_path"`

	// CreatedAt is the service-side upload timestamp, an ISO-style string.
	CreatedAt string `json:"created_at"`
}

// VaultNote is a single stored text note as returned by the list-vault
// endpoint. Notes live in the same per-vault identifier space as files.
type VaultNote struct {
	// ID uniquely identifies the note within its vault.
	ID int64 `json:"id"`

	// Content is the note text, arbitrary and unprocessed.
	Content string `json:"content"`

	// CreatedAt is the service-side creation timestamp, an ISO-style string.
	CreatedAt string `json:"created_at"`
}

// FileUpload is a pending file selected for upload: its original name and
// the raw content read from disk. It exists only for the duration of a
// single save call and is never persisted client-side.
type FileUpload struct {
	Name string
	Data []byte
}
