package services

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	_ "golang.org/x/image/webp"
)

const DefaultImageQuality = 80

// UploadResult is the data payload of a successful upload.
type UploadResult struct {
	ImageURL    string `json:"image_url"`
	Path        string `json:"path"`
	FileName    string `json:"file_name"`
	Size        int    `json:"size"`
	ContentType string `json:"content_type"`
}

// ImageService re-encodes uploaded images as JPEG and hands them to an ObjectStore.
type ImageService struct {
	Store   ObjectStore
	Quality int
	Folder  string
}

func NewImageService(store ObjectStore, quality int) *ImageService {
	if quality < 1 || quality > 100 {
		quality = DefaultImageQuality
	}
	return &ImageService{Store: store, Quality: quality, Folder: "images"}
}

func (s *ImageService) Upload(ctx context.Context, originalName string, r io.Reader) (*UploadResult, error) {
	if r == nil {
		return nil, Validation("No file provided", "file is required")
	}

	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, Validation("Failed to process image", "file is not a supported image")
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(s.Quality)); err != nil {
		return nil, Validation("Failed to process image", "image could not be compressed")
	}

	name := uuid.NewString() + uploadExt(originalName)
	key := name
	if s.Folder != "" {
		key = s.Folder + "/" + name
	}

	obj, err := s.Store.Put(ctx, key, buf.Bytes(), "image/jpeg")
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, Upstream("request cancelled", err)
		}
		log.Printf("❌ image store failed: %v", err)
		return nil, Upstream("Failed to store image", err)
	}

	return &UploadResult{
		ImageURL:    obj.URL,
		Path:        obj.Path,
		FileName:    name,
		Size:        buf.Len(),
		ContentType: "image/jpeg",
	}, nil
}

func uploadExt(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" || len(ext) > 6 || strings.ContainsAny(ext, `/\ `) {
		return ".jpg"
	}
	return ext
}
