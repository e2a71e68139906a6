//go:build e2e

package upload_test

import (
	"bytes"
	"net/http"
	"testing"

	"ezrent/internal/handler/api"
	"ezrent/internal/handler/dto/response"
	"ezrent/tests/common/authtest"
	"ezrent/tests/common/httptest"
	"ezrent/tests/e2e"

	"github.com/stretchr/testify/suite"
)

const uploadsURL = "/api/uploads"

var pngHeader = append([]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}, bytes.Repeat([]byte{0}, 64)...)

type uploadSuite struct {
	e2e.SharedSuite
	token string
}

func TestUploadSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(uploadSuite))
}

func (s *uploadSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	_, s.token = authtest.CreateAndLogin(s.T(), s.DB, s.Router, "owner@example.com", "owner")
}

func images(n int, content []byte) []httptest.MultipartFile {
	files := make([]httptest.MultipartFile, n)
	for i := range files {
		files[i] = httptest.MultipartFile{Field: api.UploadField, Filename: "photo.png", Content: content}
	}
	return files
}

func (s *uploadSuite) TestUpload() {
	s.Run("stores each image and deletes by filename", func() {
		w := httptest.PerformMultipart(s.T(), s.Router, uploadsURL, images(2, pngHeader), s.token)

		var files []response.UploadedFileResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &files)
		s.Require().Len(files, 2)
		s.Equal(2, s.Files.Len())
		s.True(s.Files.Has("uploads/" + files[0].Filename))

		del := httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, uploadsURL+"/"+files[0].Filename, nil, s.token)
		s.Equal(http.StatusNoContent, del.Code)
		s.False(s.Files.Has("uploads/" + files[0].Filename))
		s.Equal(1, s.Files.Len())
	})

	s.Run("too many files stores nothing", func() {
		w := httptest.PerformMultipart(s.T(), s.Router, uploadsURL, images(6, pngHeader), s.token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Too many files")
		s.Zero(s.Files.Len())
	})

	s.Run("non-image content is rejected", func() {
		w := httptest.PerformMultipart(s.T(), s.Router, uploadsURL, images(1, []byte("plain text, not a picture")), s.token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Only JPEG, PNG, GIF and WebP images are allowed")
		s.Zero(s.Files.Len())
	})

	s.Run("requires a session", func() {
		w := httptest.PerformMultipart(s.T(), s.Router, uploadsURL, images(1, pngHeader), "")
		s.Equal(http.StatusUnauthorized, w.Code)
	})
}
