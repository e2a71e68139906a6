//go:build e2e

package e2e

import (
	"context"
	"io"
	"path"
	"sync"

	"ezrent/internal/usecase/commands"
)

// MemFileStore stands in for the image host during e2e runs.
type MemFileStore struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func NewMemFileStore() *MemFileStore {
	return &MemFileStore{objects: map[string][]byte{}}
}

func (m *MemFileStore) Put(_ context.Context, filename string, content io.Reader) (*commands.StoredFile, error) {
	b, err := io.ReadAll(content)
	if err != nil {
		return nil, err
	}
	publicID := path.Join("uploads", filename)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[publicID] = b
	return &commands.StoredFile{
		URL:      "https://files.test/" + publicID,
		PublicID: publicID,
		Bytes:    int64(len(b)),
	}, nil
}

func (m *MemFileStore) Delete(_ context.Context, publicID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, publicID)
	return nil
}

func (m *MemFileStore) Has(publicID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.objects[publicID]
	return ok
}

func (m *MemFileStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.objects)
}

func (m *MemFileStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects = map[string][]byte{}
}
