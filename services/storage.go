package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// StoredObject is where an uploaded object ended up.
type StoredObject struct {
	URL  string
	Path string
}

// ObjectStore persists uploaded bytes under key and returns their public location.
type ObjectStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (StoredObject, error)
}

// LocalStore writes objects below Dir and serves them from BaseURL + "/uploads".
type LocalStore struct {
	Dir     string
	BaseURL string
}

func NewLocalStore(dir, baseURL string) *LocalStore {
	return &LocalStore{Dir: dir, BaseURL: strings.TrimRight(baseURL, "/")}
}

func (s *LocalStore) Put(ctx context.Context, key string, data []byte, contentType string) (StoredObject, error) {
	if err := ctx.Err(); err != nil {
		return StoredObject{}, err
	}
	key = path.Clean("/" + key)[1:]
	if key == "" {
		return StoredObject{}, errors.New("empty object key")
	}

	full := filepath.Join(s.Dir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		return StoredObject{}, fmt.Errorf("mkdir uploads dir: %w", err)
	}
	if err := os.WriteFile(full, data, 0644); err != nil {
		return StoredObject{}, fmt.Errorf("write file: %w", err)
	}

	return StoredObject{
		URL:  s.BaseURL + "/uploads/" + key,
		Path: key,
	}, nil
}

// CloudinaryStore uploads objects to a Cloudinary folder.
type CloudinaryStore struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func NewCloudinaryStore(cloudinaryURL, folder string) (*CloudinaryStore, error) {
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("cloudinary: %w", err)
	}
	return &CloudinaryStore{cld: cld, folder: folder}, nil
}

func (s *CloudinaryStore) Put(ctx context.Context, key string, data []byte, contentType string) (StoredObject, error) {
	publicID := strings.TrimSuffix(key, path.Ext(key))
	res, err := s.cld.Upload.Upload(ctx, bytes.NewReader(data), uploader.UploadParams{
		PublicID: publicID,
		Folder:   s.folder,
	})
	if err != nil {
		return StoredObject{}, fmt.Errorf("cloudinary upload: %w", err)
	}
	if res.Error.Message != "" {
		return StoredObject{}, fmt.Errorf("cloudinary upload: %s", res.Error.Message)
	}
	return StoredObject{URL: res.SecureURL, Path: res.PublicID}, nil
}
