package service

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Karthikeya-Naik/VaultDrop/models"
)

// LoadUploads reads the given local paths into pending upload blobs. The
// blobs live only until the save call completes; file contents are never
// cached client-side. Returns an error naming the first path that could
// not be read.
func LoadUploads(paths []string) ([]models.FileUpload, error) {
	uploads := make([]models.FileUpload, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("read file %q: %w", p, err)
		}
		uploads = append(uploads, models.FileUpload{
			Name: filepath.Base(p),
			Data: data,
		})
	}
	return uploads, nil
}
