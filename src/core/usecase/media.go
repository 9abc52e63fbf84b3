package usecase

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"shootfed/src/core/domain"
	"shootfed/src/core/ports"
)

// sniffLen is how much of an upload is read to detect its content type.
const sniffLen = 3072

var documentTypes = []string{
	"application/pdf",
	"application/msword",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"application/vnd.ms-excel",
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	"text/plain",
	"text/csv",
}

// MediaService manages gallery items and file uploads.
type MediaService struct {
	*ResourceService[domain.MediaItem]
	files    ports.MediaStore
	maxBytes int64
	log      *slog.Logger
}

func NewMediaService(repo ports.MediaRepository, files ports.MediaStore, maxBytes int64, log *slog.Logger) *MediaService {
	return &MediaService{
		ResourceService: NewResourceService("media item", MediaStore(repo), log),
		files:           files,
		maxBytes:        maxBytes,
		log:             log,
	}
}

// Upload is one file plus the metadata fields sent alongside it.
type Upload struct {
	Body   io.Reader
	Size   int64
	Values ports.Values
}

// Upload stores the file and creates a media item pointing at it. The
// media_type is derived from the sniffed content unless one was supplied.
func (s *MediaService) Upload(ctx context.Context, up Upload) (*domain.MediaItem, error) {
	if s.files == nil {
		return nil, domain.NewUnavailableError("media storage is not configured")
	}
	if up.Size <= 0 {
		return nil, domain.NewValidationError("file", "file is empty")
	}
	if s.maxBytes > 0 && up.Size > s.maxBytes {
		return nil, domain.NewValidationError("file", fmt.Sprintf("file exceeds %d bytes", s.maxBytes))
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(up.Body, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	head = head[:n]

	mt := mimetype.Detect(head)
	mediaType, ok := MediaTypeFor(mt)
	if !ok {
		return nil, domain.NewValidationError("file", "unsupported file type "+mt.String())
	}

	key := "media/" + uuid.NewString() + mt.Extension()
	body := io.MultiReader(bytes.NewReader(head), up.Body)
	contentType := baseMIME(mt.String())

	obj, err := s.files.Put(ctx, key, body, up.Size, contentType)
	if err != nil {
		return nil, err
	}

	values := make(ports.Values, len(up.Values)+4)
	for k, v := range up.Values {
		values[k] = v
	}
	values["url"] = obj.URL
	values["content_type"] = obj.ContentType
	values["size_bytes"] = obj.Size
	if _, set := values["media_type"]; !set {
		values["media_type"] = mediaType
	}

	return s.Create(ctx, values)
}

// MediaTypeFor maps a detected content type onto a gallery media type.
func MediaTypeFor(mt *mimetype.MIME) (domain.MediaType, bool) {
	mime := baseMIME(mt.String())
	switch {
	case strings.HasPrefix(mime, "image/"):
		return domain.MediaImage, true
	case strings.HasPrefix(mime, "video/"):
		return domain.MediaVideo, true
	}
	for _, d := range documentTypes {
		if mt.Is(d) {
			return domain.MediaDocument, true
		}
	}
	return "", false
}

func baseMIME(s string) string {
	if i := strings.IndexByte(s, ';'); i >= 0 {
		return strings.TrimSpace(s[:i])
	}
	return s
}
