package storage

import (
	"context"
	"io"
	"log/slog"

	"ezrent/internal/pkg/config"
	"ezrent/internal/pkg/errs"
	"ezrent/internal/usecase/commands"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

type uploadAPI interface {
	Upload(ctx context.Context, file interface{}, params uploader.UploadParams) (*uploader.UploadResult, error)
	Destroy(ctx context.Context, params uploader.DestroyParams) (*uploader.DestroyResult, error)
}

type CloudinaryStore struct {
	api    uploadAPI
	folder string
}

func NewCloudinaryStore(cfg config.CloudinaryConfig) (*CloudinaryStore, error) {
	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, errs.Wrap(err, "failed to initialize cloudinary")
	}
	slog.Info("cloudinary client ready", "cloud", cfg.CloudName, "folder", cfg.Folder)
	return &CloudinaryStore{api: &cld.Upload, folder: cfg.Folder}, nil
}

func (s *CloudinaryStore) Put(ctx context.Context, filename string, content io.Reader) (*commands.StoredFile, error) {
	overwrite := false
	res, err := s.api.Upload(ctx, content, uploader.UploadParams{
		PublicID:  filename,
		Folder:    s.folder,
		Overwrite: &overwrite,
	})
	if err != nil {
		return nil, errs.Wrap(err, "cloudinary upload")
	}
	if res.Error.Message != "" {
		return nil, errs.Newf("cloudinary upload rejected: %s", res.Error.Message)
	}
	return &commands.StoredFile{
		URL:      res.SecureURL,
		PublicID: res.PublicID,
		Bytes:    int64(res.Bytes),
	}, nil
}

func (s *CloudinaryStore) Delete(ctx context.Context, publicID string) error {
	res, err := s.api.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return errs.Wrap(err, "cloudinary destroy")
	}
	if res.Error.Message != "" {
		return errs.Newf("cloudinary destroy rejected: %s", res.Error.Message)
	}
	// "not found" is fine: the object is gone either way
	if res.Result != "ok" && res.Result != "not found" {
		return errs.Newf("cloudinary destroy returned %q", res.Result)
	}
	return nil
}
