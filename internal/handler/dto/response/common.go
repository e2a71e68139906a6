package response

import (
	"ezrent/internal/usecase/commands"
)

// Page wraps one keyset page. NextCursor is empty on the last page.
type Page[T any] struct {
	Items      []T    `json:"items"`
	NextCursor string `json:"nextCursor,omitempty"`
}

type CreatedResponse struct {
	ID string `json:"id"`
}

type UploadedFileResponse struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
}

func FromUploadedFiles(files []commands.UploadedFile) []UploadedFileResponse {
	out := make([]UploadedFileResponse, len(files))
	for i, f := range files {
		out[i] = UploadedFileResponse{URL: f.URL, Filename: f.Filename, Size: f.Size}
	}
	return out
}
