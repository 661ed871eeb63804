package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/chirp-lab/backend/config"
)

// The timestamp prefix keeps uploads of the same file name apart. The layout
// <root>/<api-key>/<timestamp>_<filename> is part of the external contract,
// clients see these paths in feed attachments.
const timestampLayout = "2006-01-02 15:04:05.000000"

type localStorage struct {
	cfg config.LocalStorageConfigs
}

func NewLocalStorage(cfg config.LocalStorageConfigs) *localStorage {
	return &localStorage{cfg: cfg}
}

func (s *localStorage) Upload(ctx context.Context, object *UploadObject) (*UploadResponse, error) {
	dir := filepath.Join(s.cfg.ImagesRoot, object.APIKey)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create images directory: %w", err)
	}

	name := fmt.Sprintf("%s_%s", time.Now().Format(timestampLayout), object.FileName)
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, object.Data, 0o644); err != nil {
		return nil, fmt.Errorf("cannot write image: %w", err)
	}

	return &UploadResponse{Path: path, Url: path}, nil
}

func (s *localStorage) Delete(ctx context.Context, path string) error {
	return os.Remove(path)
}
