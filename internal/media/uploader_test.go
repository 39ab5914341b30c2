package media

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/Felicite37/Phase-Two-Capstone-Project/internal/config"
)

func newTestUploader(url string) *HTTPUploader {
	return NewHTTPUploader(&config.MediaConfig{
		UploadURL:     url,
		UploadPreset:  "blog_unsigned",
		MaxUploadSize: 5 * 1024 * 1024,
		Timeout:       5 * time.Second,
	}, zerolog.Nop())
}

func TestHTTPUploader_Upload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(10 << 20); err != nil {
			t.Errorf("ParseMultipartForm() error = %v", err)
		}
		if got := r.FormValue("upload_preset"); got != "blog_unsigned" {
			t.Errorf("upload_preset = %q", got)
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("FormFile() error = %v", err)
		}
		defer file.Close()
		if header.Filename != "cover.png" {
			t.Errorf("filename = %q", header.Filename)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"secure_url":"https://cdn.example/cover.png","public_id":"cover"}`))
	}))
	defer server.Close()

	uploader := newTestUploader(server.URL)

	url, err := uploader.Upload(context.Background(), "cover.png", "image/png", 128, strings.NewReader("fake png bytes"))
	if err != nil {
		t.Fatalf("Upload() error = %v", err)
	}
	if url != "https://cdn.example/cover.png" {
		t.Errorf("Upload() = %q", url)
	}
}

func TestHTTPUploader_RejectsNonImage(t *testing.T) {
	uploader := newTestUploader("http://unused.invalid")

	_, err := uploader.Upload(context.Background(), "notes.pdf", "application/pdf", 128, strings.NewReader("x"))

	var uploadErr *UploadError
	if !errors.As(err, &uploadErr) {
		t.Fatalf("Upload() error = %v, want UploadError", err)
	}
	if !strings.Contains(uploadErr.Reason, "not an image") {
		t.Errorf("Reason = %q", uploadErr.Reason)
	}
}

func TestHTTPUploader_RejectsOversized(t *testing.T) {
	uploader := newTestUploader("http://unused.invalid")

	_, err := uploader.Upload(context.Background(), "huge.png", "image/png", 6*1024*1024, strings.NewReader("x"))

	var uploadErr *UploadError
	if !errors.As(err, &uploadErr) {
		t.Fatalf("Upload() error = %v, want UploadError", err)
	}
	if !strings.Contains(uploadErr.Reason, "too large") {
		t.Errorf("Reason = %q", uploadErr.Reason)
	}
	if !strings.Contains(uploadErr.Reason, "5 MB") {
		t.Errorf("Reason = %q, want the limit spelled out", uploadErr.Reason)
	}
}

func TestHTTPUploader_UpstreamRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"Invalid upload preset"}}`))
	}))
	defer server.Close()

	uploader := newTestUploader(server.URL)

	_, err := uploader.Upload(context.Background(), "cover.png", "image/png", 128, strings.NewReader("x"))

	var uploadErr *UploadError
	if !errors.As(err, &uploadErr) {
		t.Fatalf("Upload() error = %v, want UploadError", err)
	}
	if uploadErr.Reason != "Invalid upload preset" {
		t.Errorf("Reason = %q, want the upstream message", uploadErr.Reason)
	}
}

func TestHTTPUploader_UpstreamErrorWithoutMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	uploader := newTestUploader(server.URL)

	_, err := uploader.Upload(context.Background(), "cover.png", "image/png", 128, strings.NewReader("x"))

	var uploadErr *UploadError
	if !errors.As(err, &uploadErr) {
		t.Fatalf("Upload() error = %v, want UploadError", err)
	}
	if !strings.Contains(uploadErr.Reason, "500") {
		t.Errorf("Reason = %q, want status code fallback", uploadErr.Reason)
	}
}

func TestHTTPUploader_MissingEndpoint(t *testing.T) {
	uploader := newTestUploader("")

	_, err := uploader.Upload(context.Background(), "cover.png", "image/png", 128, strings.NewReader("x"))

	var uploadErr *UploadError
	if !errors.As(err, &uploadErr) {
		t.Fatalf("Upload() error = %v, want UploadError", err)
	}
	if !strings.Contains(uploadErr.Reason, "not configured") {
		t.Errorf("Reason = %q", uploadErr.Reason)
	}
}

func TestHTTPUploader_ResponseWithoutURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	uploader := newTestUploader(server.URL)

	_, err := uploader.Upload(context.Background(), "cover.png", "image/png", 128, strings.NewReader("x"))
	var uploadErr *UploadError
	if !errors.As(err, &uploadErr) {
		t.Fatalf("Upload() error = %v, want UploadError", err)
	}
}
