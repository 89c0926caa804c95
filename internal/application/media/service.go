package media

import (
	"context"
	"fmt"
	"strings"
)

// Uploader stores base64-encoded images under object keys and serves them at
// public URLs.
type Uploader interface {
	UploadBase64(ctx context.Context, b64Data string) (string, error)
	Delete(ctx context.Context, key string) error
}

type Service interface {
	UploadImage(ctx context.Context, b64Data string) (string, error)
	UploadImages(ctx context.Context, b64Data []string) ([]string, error)
	// DeleteImage removes a previously uploaded image by its public URL.
	// URLs that do not point at the upload prefix are ignored.
	DeleteImage(ctx context.Context, url string) error
}

type service struct {
	uploader Uploader
}

func NewService(uploader Uploader) Service {
	return &service{uploader: uploader}
}

func (s *service) UploadImage(ctx context.Context, b64Data string) (string, error) {
	return s.uploader.UploadBase64(ctx, b64Data)
}

// UploadImages uploads a batch sequentially. The first failure aborts the
// batch so the caller never persists a half-uploaded gallery.
func (s *service) UploadImages(ctx context.Context, b64Data []string) ([]string, error) {
	urls := make([]string, 0, len(b64Data))
	for i, data := range b64Data {
		url, err := s.uploader.UploadBase64(ctx, data)
		if err != nil {
			return nil, fmt.Errorf("upload image %d: %w", i, err)
		}
		urls = append(urls, url)
	}
	return urls, nil
}

func (s *service) DeleteImage(ctx context.Context, url string) error {
	key, ok := uploadKeyFromURL(url)
	if !ok {
		return nil
	}
	return s.uploader.Delete(ctx, key)
}

// uploadKeyFromURL extracts the object key from a public upload URL.
// External image URLs (not produced by UploadImage) yield ok=false.
func uploadKeyFromURL(url string) (string, bool) {
	idx := strings.Index(url, "/uploads/")
	if idx < 0 {
		return "", false
	}
	return url[idx+1:], true
}
