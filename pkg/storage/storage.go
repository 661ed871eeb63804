package storage

import "context"

type Storage interface {
	Upload(context.Context, *UploadObject) (*UploadResponse, error)
	Delete(ctx context.Context, path string) error
}

type UploadObject struct {
	// APIKey of the uploading user. Every user gets an own directory (or key
	// prefix), so concurrent uploads never collide.
	APIKey   string
	FileName string
	Data     []byte
}

type UploadResponse struct {
	// Path is the stored location of the file. It is persisted with the
	// media row and passed back to Delete on cleanup.
	Path string
	Url  string
}
