// Package media uploads images to the external CDN and hands back
// durable URLs.
package media

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/Felicite37/Phase-Two-Capstone-Project/internal/config"
	"github.com/rs/zerolog"
)

// UploadError reports a rejected upload: wrong MIME type, oversized file,
// or upstream rejection
type UploadError struct {
	Reason string
	Err    error
}

func (e *UploadError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("upload rejected: %s", e.Reason)
	}
	return fmt.Sprintf("upload rejected: %s: %v", e.Reason, e.Err)
}

func (e *UploadError) Unwrap() error {
	return e.Err
}

// Uploader accepts one image file and returns a durable URL
type Uploader interface {
	Upload(ctx context.Context, filename, contentType string, size int64, r io.Reader) (string, error)
}

// HTTPUploader posts a multipart form to the CDN's unsigned upload
// endpoint and reads the secure URL out of the response
type HTTPUploader struct {
	cfg    *config.MediaConfig
	client *http.Client
	log    zerolog.Logger
}

// NewHTTPUploader creates an uploader against the configured endpoint
func NewHTTPUploader(cfg *config.MediaConfig, log zerolog.Logger) *HTTPUploader {
	return &HTTPUploader{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		log:    log.With().Str("component", "media_uploader").Logger(),
	}
}

// Upload validates and forwards one image file. Only files with a MIME
// type beginning image/ and at most the configured size are accepted.
func (u *HTTPUploader) Upload(ctx context.Context, filename, contentType string, size int64, r io.Reader) (string, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return "", &UploadError{Reason: fmt.Sprintf("%s is not an image file", filename)}
	}
	if size > u.cfg.MaxUploadSize {
		return "", &UploadError{
			Reason: fmt.Sprintf("%s is too large, maximum size is %d MB", filename, u.cfg.MaxUploadSize/(1024*1024)),
		}
	}
	if u.cfg.UploadURL == "" {
		return "", &UploadError{Reason: "media upload endpoint is not configured"}
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", &UploadError{Reason: "failed to build upload request", Err: err}
	}
	if _, err := io.Copy(part, io.LimitReader(r, u.cfg.MaxUploadSize)); err != nil {
		return "", &UploadError{Reason: "failed to read file", Err: err}
	}
	if err := writer.WriteField("upload_preset", u.cfg.UploadPreset); err != nil {
		return "", &UploadError{Reason: "failed to build upload request", Err: err}
	}
	if err := writer.Close(); err != nil {
		return "", &UploadError{Reason: "failed to build upload request", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.cfg.UploadURL, &body)
	if err != nil {
		return "", &UploadError{Reason: "failed to build upload request", Err: err}
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := u.client.Do(req)
	if err != nil {
		return "", &UploadError{Reason: "upload request failed", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var upstream struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&upstream)
		reason := upstream.Error.Message
		if reason == "" {
			reason = fmt.Sprintf("upstream returned status %d", resp.StatusCode)
		}
		return "", &UploadError{Reason: reason}
	}

	var result struct {
		SecureURL string `json:"secure_url"`
		PublicID  string `json:"public_id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", &UploadError{Reason: "failed to decode upload response", Err: err}
	}
	if result.SecureURL == "" {
		return "", &UploadError{Reason: "upload response carried no URL"}
	}

	u.log.Info().Str("filename", filename).Str("public_id", result.PublicID).Msg("Image uploaded")
	return result.SecureURL, nil
}
