package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"securechat/internal/domain"
)

// UploadFile sends a local file to the backend's file storage and returns its
// remote descriptor.
func (c *Client) UploadFile(ctx context.Context, path string) (domain.UploadedFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.UploadedFile{}, err
	}
	defer f.Close()

	buf := new(bytes.Buffer)
	form := multipart.NewWriter(buf)
	part, err := form.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return domain.UploadedFile{}, err
	}
	if _, err := io.Copy(part, f); err != nil {
		return domain.UploadedFile{}, err
	}
	if err := form.Close(); err != nil {
		return domain.UploadedFile{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/files/upload", buf)
	if err != nil {
		return domain.UploadedFile{}, err
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.UploadedFile{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return domain.UploadedFile{}, c.statusError(http.MethodPost, "/files/upload", resp)
	}
	var out domain.UploadedFile
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return domain.UploadedFile{}, err
	}
	return out, nil
}
