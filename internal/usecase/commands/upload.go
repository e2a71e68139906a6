package commands

import (
	"context"
	"io"
	"log/slog"

	"ezrent/internal/domain/upload"
	"ezrent/internal/pkg/errs"
	"ezrent/internal/pkg/metrics"

	"github.com/gabriel-vasile/mimetype"
)

// UploadFile is one multipart part. Content must be seekable so it can be sniffed and then sent.
type UploadFile struct {
	Filename string
	Size     int64
	Content  io.ReadSeeker
}

type UploadedFile struct {
	URL      string
	Filename string
	Size     int64
}

type UploadCommands interface {
	Upload(ctx context.Context, files []UploadFile) ([]UploadedFile, error)
	Delete(ctx context.Context, filename string) error
}

type uploadCommandsImpl struct {
	store   FileStore
	policy  upload.Policy
	folder  string
	metrics *metrics.Metrics
}

func NewUploadCommands(store FileStore, policy upload.Policy, folder string, m *metrics.Metrics) UploadCommands {
	return &uploadCommandsImpl{
		store:   store,
		policy:  policy,
		folder:  folder,
		metrics: m,
	}
}

// Upload validates the whole batch before storing anything. If storing fails midway the
// files already stored are removed again.
func (uc *uploadCommandsImpl) Upload(ctx context.Context, files []UploadFile) ([]UploadedFile, error) {
	if err := uc.policy.CheckCount(len(files)); err != nil {
		uc.metrics.IncUpload("rejected")
		return nil, errs.Mark(err, ErrUploadRejected)
	}
	for _, f := range files {
		if err := uc.check(f); err != nil {
			uc.metrics.IncUpload("rejected")
			return nil, errs.Mark(err, ErrUploadRejected)
		}
	}

	stored := make([]UploadedFile, 0, len(files))
	publicIDs := make([]string, 0, len(files))
	for _, f := range files {
		name := upload.NewFilename()
		res, err := uc.store.Put(ctx, name, f.Content)
		if err != nil {
			uc.metrics.IncUpload("failed")
			uc.rollback(ctx, publicIDs)
			return nil, errs.WrapMark(err, errs.ErrExternalDependency, "store "+f.Filename)
		}
		stored = append(stored, UploadedFile{URL: res.URL, Filename: name, Size: res.Bytes})
		publicIDs = append(publicIDs, res.PublicID)
		uc.metrics.IncUpload("stored")
	}
	return stored, nil
}

func (uc *uploadCommandsImpl) Delete(ctx context.Context, filename string) error {
	publicID, err := upload.ObjectID(uc.folder, filename)
	if err != nil {
		return errs.Mark(err, ErrUploadRejected)
	}
	if err = uc.store.Delete(ctx, publicID); err != nil {
		return errs.WrapMark(err, errs.ErrExternalDependency, "delete "+filename)
	}
	return nil
}

func (uc *uploadCommandsImpl) check(f UploadFile) error {
	mtype, err := mimetype.DetectReader(f.Content)
	if err != nil {
		return errs.Wrap(err, "sniff "+f.Filename)
	}
	if _, err = f.Content.Seek(0, io.SeekStart); err != nil {
		return errs.Wrap(err, "rewind "+f.Filename)
	}
	return uc.policy.CheckFile(upload.Candidate{
		Filename: f.Filename,
		Size:     f.Size,
		MIME:     mtype.String(),
	})
}

func (uc *uploadCommandsImpl) rollback(ctx context.Context, publicIDs []string) {
	for _, id := range publicIDs {
		if err := uc.store.Delete(ctx, id); err != nil {
			slog.Error("failed to remove partially uploaded file", "public_id", id, "error", err.Error())
		}
	}
}
