package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/dmitrijs2005/geofeed/internal/client/models"
)

// UploadFile sends r as the multipart field "file" and returns the stored
// file's URL. The body is buffered so the request can be replayed after a
// refresh.
func (c *HTTPClient) UploadFile(ctx context.Context, filename string, r io.Reader) (models.FileReference, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return models.FileReference{}, fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return models.FileReference{}, fmt.Errorf("read %s: %w", filename, err)
	}
	if err := mw.Close(); err != nil {
		return models.FileReference{}, fmt.Errorf("close multipart: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("/file/upload-file", nil), bytes.NewReader(buf.Bytes()))
	if err != nil {
		return models.FileReference{}, fmt.Errorf("build upload request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Accept", "application/json")

	var p models.FilePayload
	if err := c.do(req, &p); err != nil {
		return models.FileReference{}, err
	}
	return models.NewFileReference(&p), nil
}
