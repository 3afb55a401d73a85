package service

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artisthub-backend/internal/infrastructure/storage"
	"artisthub-backend/internal/shared/apperror"
)

type memStore struct {
	objects  map[string][]byte
	failOn   string
	prefixes []string
}

func newMemStore() *memStore { return &memStore{objects: map[string][]byte{}} }

func (m *memStore) Upload(_ context.Context, key string, data []byte, _ string) (string, error) {
	if m.failOn != "" && strings.Contains(key, m.failOn) {
		return "", errors.New("bucket unavailable")
	}
	m.objects[key] = data
	return "https://cdn.local/" + key, nil
}

func (m *memStore) Delete(_ context.Context, key string) error {
	delete(m.objects, key)
	return nil
}

func (m *memStore) DeleteByPrefix(_ context.Context, prefix string) error {
	m.prefixes = append(m.prefixes, prefix)
	for k := range m.objects {
		if strings.HasPrefix(k, prefix) {
			delete(m.objects, k)
		}
	}
	return nil
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestUploadService_UploadImage(t *testing.T) {
	store := newMemStore()
	svc := NewUploadService(store, storage.NewImageProcessor(0))
	owner := uuid.New()

	img, err := svc.UploadImage(context.Background(), owner, pngBytes(t, 1000, 500))
	require.NoError(t, err)
	assert.Len(t, img.Variants, 3)
	assert.Contains(t, img.URL, owner.String())
	assert.True(t, strings.HasSuffix(img.ThumbnailURL, "/thumbnail.jpg"))
	assert.Len(t, store.objects, 3)
}

func TestUploadService_RejectsNonImage(t *testing.T) {
	svc := NewUploadService(newMemStore(), storage.NewImageProcessor(0))

	_, err := svc.UploadImage(context.Background(), uuid.New(), []byte("definitely not a png"))
	assert.True(t, apperror.IsInvalidArgument(err))

	_, err = svc.UploadImage(context.Background(), uuid.New(), nil)
	assert.True(t, apperror.IsInvalidArgument(err))
}

func TestUploadService_CleansUpPartialUpload(t *testing.T) {
	store := newMemStore()
	store.failOn = storage.VariantMedium
	svc := NewUploadService(store, storage.NewImageProcessor(0))

	_, err := svc.UploadImage(context.Background(), uuid.New(), pngBytes(t, 64, 64))
	require.Error(t, err)
	assert.Equal(t, 500, apperror.StatusOf(err))
	assert.Empty(t, store.objects)
	assert.Len(t, store.prefixes, 1)
}

func TestUploadService_DeleteImage(t *testing.T) {
	store := newMemStore()
	svc := NewUploadService(store, storage.NewImageProcessor(0))
	owner := uuid.New()
	imageID := uuid.New()

	require.NoError(t, svc.DeleteImage(context.Background(), owner, imageID.String()))
	assert.Equal(t, []string{"images/" + owner.String() + "/" + imageID.String() + "/"}, store.prefixes)

	err := svc.DeleteImage(context.Background(), owner, "nope")
	assert.True(t, apperror.IsInvalidArgument(err))
}
