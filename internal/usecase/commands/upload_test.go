//go:build unit

package commands_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"ezrent/internal/domain/upload"
	"ezrent/internal/pkg/errs"
	"ezrent/internal/pkg/metrics"
	"ezrent/internal/usecase/commands"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngBytes = append([]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}, bytes.Repeat([]byte{0}, 32)...)

type fakeFileStore struct {
	objects  map[string][]byte
	failAt   int
	puts     int
	deleted  []string
	deleteFn func(id string) error
}

func newFakeFileStore() *fakeFileStore {
	return &fakeFileStore{objects: map[string][]byte{}, failAt: -1}
}

func (f *fakeFileStore) Put(_ context.Context, filename string, content io.Reader) (*commands.StoredFile, error) {
	defer func() { f.puts++ }()
	if f.puts == f.failAt {
		return nil, errors.New("provider unavailable")
	}
	b, err := io.ReadAll(content)
	if err != nil {
		return nil, err
	}
	id := "uploads/" + filename
	f.objects[id] = b
	return &commands.StoredFile{URL: "https://img.test/" + id, PublicID: id, Bytes: int64(len(b))}, nil
}

func (f *fakeFileStore) Delete(_ context.Context, publicID string) error {
	f.deleted = append(f.deleted, publicID)
	delete(f.objects, publicID)
	if f.deleteFn != nil {
		return f.deleteFn(publicID)
	}
	return nil
}

func file(name string, content []byte) commands.UploadFile {
	return commands.UploadFile{Filename: name, Size: int64(len(content)), Content: bytes.NewReader(content)}
}

func newUploads(store *fakeFileStore) (commands.UploadCommands, *metrics.Metrics) {
	m := metrics.New(prometheus.NewRegistry())
	return commands.NewUploadCommands(store, upload.Policy{MaxFiles: 3, MaxFileBytes: 1 << 10}, "uploads", m), m
}

func TestUploadCommands_Upload(t *testing.T) {
	ctx := context.Background()

	t.Run("stores every file under a generated name", func(t *testing.T) {
		store := newFakeFileStore()
		cmds, m := newUploads(store)

		out, err := cmds.Upload(ctx, []commands.UploadFile{file("a.png", pngBytes), file("b.png", pngBytes)})
		require.NoError(t, err)
		require.Len(t, out, 2)
		assert.NotEqual(t, out[0].Filename, out[1].Filename)
		assert.NotContains(t, out[0].Filename, "a.png")
		assert.Equal(t, int64(len(pngBytes)), out[0].Size)
		assert.Equal(t, pngBytes, store.objects["uploads/"+out[0].Filename], "content is rewound after sniffing")
		assert.Equal(t, 2.0, testutil.ToFloat64(m.Uploads.WithLabelValues("stored")))
	})

	rejections := []struct {
		name  string
		files []commands.UploadFile
		want  error
	}{
		{"no files", nil, upload.ErrNoFiles},
		{"too many", []commands.UploadFile{file("1", pngBytes), file("2", pngBytes), file("3", pngBytes), file("4", pngBytes)}, upload.ErrTooManyFiles},
		{"too large", []commands.UploadFile{file("big.png", append(pngBytes, make([]byte, 2<<10)...))}, upload.ErrFileTooLarge},
		{"not an image", []commands.UploadFile{file("a.png", []byte("hello, plain text"))}, upload.ErrUnsupportedType},
		{"one bad file rejects the batch", []commands.UploadFile{file("a.png", pngBytes), file("b.txt", []byte("plain text"))}, upload.ErrUnsupportedType},
	}
	for _, tc := range rejections {
		t.Run(tc.name, func(t *testing.T) {
			store := newFakeFileStore()
			cmds, _ := newUploads(store)

			_, err := cmds.Upload(ctx, tc.files)
			assert.True(t, errs.Is(err, commands.ErrUploadRejected))
			assert.ErrorIs(t, err, tc.want)
			assert.Zero(t, store.puts, "nothing is stored when validation fails")
		})
	}

	t.Run("a failing put removes what was already stored", func(t *testing.T) {
		store := newFakeFileStore()
		store.failAt = 1
		cmds, m := newUploads(store)

		_, err := cmds.Upload(ctx, []commands.UploadFile{file("a.png", pngBytes), file("b.png", pngBytes)})
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrExternalDependency))
		assert.False(t, errs.Is(err, commands.ErrUploadRejected))
		assert.Len(t, store.deleted, 1)
		assert.Empty(t, store.objects)
		assert.Equal(t, 1.0, testutil.ToFloat64(m.Uploads.WithLabelValues("failed")))
	})
}

func TestUploadCommands_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("maps the filename to the folder", func(t *testing.T) {
		store := newFakeFileStore()
		cmds, _ := newUploads(store)

		require.NoError(t, cmds.Delete(ctx, "abc"))
		assert.Equal(t, []string{"uploads/abc"}, store.deleted)
	})

	for _, name := range []string{"", "../etc", "a/b", `a\b`} {
		t.Run("rejects "+name, func(t *testing.T) {
			store := newFakeFileStore()
			cmds, _ := newUploads(store)

			err := cmds.Delete(ctx, name)
			assert.True(t, errs.Is(err, commands.ErrUploadRejected))
			assert.ErrorIs(t, err, upload.ErrInvalidFilename)
			assert.Empty(t, store.deleted)
		})
	}

	t.Run("provider failure", func(t *testing.T) {
		store := newFakeFileStore()
		store.deleteFn = func(string) error { return errors.New("boom") }
		cmds, _ := newUploads(store)

		err := cmds.Delete(ctx, "abc")
		assert.True(t, errs.Is(err, errs.ErrExternalDependency))
	})
}
