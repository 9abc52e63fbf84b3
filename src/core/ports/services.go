package ports

import (
	"context"
	"io"
)

// ExternalService is the base interface for external service adapters.
type ExternalService interface {
	// Health checks if the external service is reachable.
	Health(ctx context.Context) error
}

// StoredObject describes an uploaded blob.
type StoredObject struct {
	Key         string
	URL         string
	ContentType string
	Size        int64
}

// MediaStore keeps uploaded media files and hands back a public URL.
type MediaStore interface {
	ExternalService
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) (*StoredObject, error)
}

// PasswordHasher turns a plaintext credential into a storable hash.
type PasswordHasher interface {
	Hash(password string) (string, error)
}
