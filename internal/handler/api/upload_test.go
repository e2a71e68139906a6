//go:build unit

package api_test

import (
	"io"
	"net/http"
	"testing"

	"ezrent/internal/domain/upload"
	"ezrent/internal/handler/api"
	resdto "ezrent/internal/handler/dto/response"
	"ezrent/internal/pkg/errs"
	"ezrent/internal/usecase/commands"
	"ezrent/tests/common/httptest"
	commandsmock "ezrent/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type UploadHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockUploadCommands
}

func (s *UploadHandlerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockUploadCommands(s.mockCtrl)
	h := api.NewUploadHandler(s.mockCommands)

	s.router = newRouter(fakeAuth(ownerActor()))
	s.router.POST("/uploads", h.Upload)
	s.router.DELETE("/uploads/:filename", h.Delete)
}

func (s *UploadHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestUploadHandlerSuite(t *testing.T) {
	suite.Run(t, new(UploadHandlerTestSuite))
}

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func (s *UploadHandlerTestSuite) TestUpload() {
	s.Run("success: passes every part of the images field", func() {
		files := []httptest.MultipartFile{
			{Field: api.UploadField, Filename: "a.png", Content: pngHeader},
			{Field: api.UploadField, Filename: "b.png", Content: pngHeader},
			{Field: "other", Filename: "ignored.png", Content: pngHeader},
		}
		s.mockCommands.EXPECT().Upload(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, in []commands.UploadFile) ([]commands.UploadedFile, error) {
				s.Require().Len(in, 2)
				s.Equal("a.png", in[0].Filename)
				s.Equal(int64(len(pngHeader)), in[0].Size)
				got, err := io.ReadAll(in[1].Content)
				s.Require().NoError(err)
				s.Equal(pngHeader, got)
				return []commands.UploadedFile{
					{URL: "https://res.cloudinary.com/demo/uploads/x1", Filename: "x1", Size: in[0].Size},
					{URL: "https://res.cloudinary.com/demo/uploads/x2", Filename: "x2", Size: in[1].Size},
				}, nil
			})

		rec := httptest.PerformMultipart(s.T(), s.router, "/uploads", files, bearer)

		var body []resdto.UploadedFileResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Len(body, 2)
		s.Equal("x1", body[0].Filename)
	})

	s.Run("error: 400 carries the rejection reason", func() {
		s.mockCommands.EXPECT().Upload(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(upload.ErrTooManyFiles, commands.ErrUploadRejected))

		files := []httptest.MultipartFile{{Field: api.UploadField, Filename: "a.png", Content: pngHeader}}
		rec := httptest.PerformMultipart(s.T(), s.router, "/uploads", files, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Too many files")
	})

	s.Run("error: 502 when the image host fails", func() {
		s.mockCommands.EXPECT().Upload(gomock.Any(), gomock.Any()).
			Return(nil, errs.WrapMark(errs.New("cloudinary: timeout"), errs.ErrExternalDependency, "store a.png"))

		files := []httptest.MultipartFile{{Field: api.UploadField, Filename: "a.png", Content: pngHeader}}
		rec := httptest.PerformMultipart(s.T(), s.router, "/uploads", files, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "Upstream service unavailable")
	})

	s.Run("error: 400 when the body is not multipart", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/uploads", map[string]string{"a": "b"}, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid multipart form")
	})
}

func (s *UploadHandlerTestSuite) TestDelete() {
	s.Run("success: 204", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), "x1").Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/uploads/x1", nil, bearer)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 on a bad filename", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), "bad..name").
			Return(errs.Mark(upload.ErrInvalidFilename, commands.ErrUploadRejected))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/uploads/bad..name", nil, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid filename")
	})
}
