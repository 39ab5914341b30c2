package mocks

import (
	"context"
	"io"
	"sync"
)

// MockUploader is a mock implementation of media.Uploader
type MockUploader struct {
	mu sync.Mutex

	URL       string
	Err       error
	Calls     int
	LastName  string
	LastType  string
	LastSize  int64
	LastBytes []byte
}

func (m *MockUploader) Upload(ctx context.Context, filename, contentType string, size int64, r io.Reader) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls++
	m.LastName = filename
	m.LastType = contentType
	m.LastSize = size
	m.LastBytes, _ = io.ReadAll(r)
	if m.Err != nil {
		return "", m.Err
	}
	if m.URL != "" {
		return m.URL, nil
	}
	return "https://cdn.example.com/" + filename, nil
}
