//go:build unit

package storage

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"ezrent/internal/pkg/config"

	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUploadAPI struct {
	uploadParams  uploader.UploadParams
	uploaded      string
	uploadResult  *uploader.UploadResult
	uploadErr     error
	destroyParams uploader.DestroyParams
	destroyResult *uploader.DestroyResult
	destroyErr    error
}

func (f *fakeUploadAPI) Upload(_ context.Context, file interface{}, params uploader.UploadParams) (*uploader.UploadResult, error) {
	f.uploadParams = params
	if r, ok := file.(io.Reader); ok {
		b, _ := io.ReadAll(r)
		f.uploaded = string(b)
	}
	return f.uploadResult, f.uploadErr
}

func (f *fakeUploadAPI) Destroy(_ context.Context, params uploader.DestroyParams) (*uploader.DestroyResult, error) {
	f.destroyParams = params
	return f.destroyResult, f.destroyErr
}

func TestCloudinaryStore_Put(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		fake := &fakeUploadAPI{uploadResult: &uploader.UploadResult{
			SecureURL: "https://res.cloudinary.com/demo/image/upload/uploads/tent.png",
			PublicID:  "uploads/tent",
			Bytes:     1024,
		}}
		store := &CloudinaryStore{api: fake, folder: "uploads"}

		got, err := store.Put(context.Background(), "tent", strings.NewReader("png-bytes"))

		require.NoError(t, err)
		assert.Equal(t, "uploads/tent", got.PublicID)
		assert.Equal(t, int64(1024), got.Bytes)
		assert.Equal(t, "tent", fake.uploadParams.PublicID)
		assert.Equal(t, "uploads", fake.uploadParams.Folder)
		require.NotNil(t, fake.uploadParams.Overwrite)
		assert.False(t, *fake.uploadParams.Overwrite)
		assert.Equal(t, "png-bytes", fake.uploaded)
	})

	t.Run("transport error", func(t *testing.T) {
		store := &CloudinaryStore{api: &fakeUploadAPI{uploadErr: errors.New("timeout")}, folder: "uploads"}

		_, err := store.Put(context.Background(), "tent", strings.NewReader("x"))

		assert.Error(t, err)
	})

	t.Run("api error in body", func(t *testing.T) {
		fake := &fakeUploadAPI{uploadResult: &uploader.UploadResult{Error: api.ErrorResp{Message: "Invalid image file"}}}
		store := &CloudinaryStore{api: fake, folder: "uploads"}

		_, err := store.Put(context.Background(), "tent", strings.NewReader("x"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid image file")
	})
}

func TestCloudinaryStore_Delete(t *testing.T) {
	tests := []struct {
		name    string
		result  *uploader.DestroyResult
		err     error
		wantErr bool
	}{
		{name: "ok", result: &uploader.DestroyResult{Result: "ok"}},
		{name: "already gone", result: &uploader.DestroyResult{Result: "not found"}},
		{name: "unexpected result", result: &uploader.DestroyResult{Result: "pending"}, wantErr: true},
		{name: "transport error", err: errors.New("boom"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeUploadAPI{destroyResult: tt.result, destroyErr: tt.err}
			store := &CloudinaryStore{api: fake, folder: "uploads"}

			err := store.Delete(context.Background(), "uploads/tent")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, "uploads/tent", fake.destroyParams.PublicID)
		})
	}
}

func TestNewCloudinaryStore_UsesSDKUploader(t *testing.T) {
	store, err := NewCloudinaryStore(config.CloudinaryConfig{
		CloudName: "demo",
		APIKey:    "key",
		APISecret: "secret",
		Folder:    "uploads",
	})

	require.NoError(t, err)
	assert.IsType(t, &uploader.API{}, store.api)
	assert.Equal(t, "uploads", store.folder)
}
