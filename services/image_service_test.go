package services

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryStore struct {
	keys []string
	data map[string][]byte
	err  error
}

func (m *memoryStore) Put(ctx context.Context, key string, data []byte, contentType string) (StoredObject, error) {
	if m.err != nil {
		return StoredObject{}, m.err
	}
	if m.data == nil {
		m.data = map[string][]byte{}
	}
	m.keys = append(m.keys, key)
	m.data[key] = data
	return StoredObject{URL: "https://cdn.test/" + key, Path: key}, nil
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for x := 0; x < 16; x++ {
		for y := 0; y < 16; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 16), G: uint8(y * 16), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestImageService_UploadReencodesAsJPEG(t *testing.T) {
	store := &memoryStore{}
	svc := NewImageService(store, 80)

	res, err := svc.Upload(context.Background(), "Lobby.PNG", bytes.NewReader(pngBytes(t)))
	require.NoError(t, err)

	require.Len(t, store.keys, 1)
	key := store.keys[0]
	assert.True(t, strings.HasPrefix(key, "images/"))
	assert.True(t, strings.HasSuffix(key, ".png"))
	assert.Equal(t, "https://cdn.test/"+key, res.ImageURL)
	assert.Equal(t, key, res.Path)
	assert.Equal(t, filepath.Base(key), res.FileName)
	assert.Equal(t, "image/jpeg", res.ContentType)
	assert.Equal(t, len(store.data[key]), res.Size)

	// JPEG SOI marker
	assert.Equal(t, []byte{0xFF, 0xD8}, store.data[key][:2])
}

func TestImageService_RejectsNonImage(t *testing.T) {
	svc := NewImageService(&memoryStore{}, 80)

	_, err := svc.Upload(context.Background(), "notes.txt", strings.NewReader("hello"))
	requireKind(t, err, KindValidation)
}

func TestImageService_StoreFailure(t *testing.T) {
	svc := NewImageService(&memoryStore{err: errors.New("bucket gone")}, 80)

	_, err := svc.Upload(context.Background(), "a.png", bytes.NewReader(pngBytes(t)))
	requireKind(t, err, KindUpstream)
	assert.Equal(t, "Failed to store image", AsAppError(err).Message)
}

func TestUploadExt(t *testing.T) {
	assert.Equal(t, ".jpg", uploadExt("noext"))
	assert.Equal(t, ".webp", uploadExt("photo.WEBP"))
	assert.Equal(t, ".jpg", uploadExt("weird.superlongext"))
}

func TestLocalStore_Put(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalStore(dir, "http://localhost:8080/")

	obj, err := store.Put(context.Background(), "images/a.jpg", []byte("data"), "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/uploads/images/a.jpg", obj.URL)
	assert.Equal(t, "images/a.jpg", obj.Path)

	got, err := os.ReadFile(filepath.Join(dir, "images", "a.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "data", string(got))

	obj, err = store.Put(context.Background(), "../../escape.jpg", []byte("x"), "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "escape.jpg", obj.Path)
	_, err = os.Stat(filepath.Join(dir, "escape.jpg"))
	assert.NoError(t, err)
}
