package aur

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// errorSelectors locate the error block in the submission response,
// covering the markup of both pre-3.0.0 and current AUR releases.
var errorSelectors = []string{
	"p.pkgoutput",
	"ul.errorlist",
}

// Upload submits one package tarball with the given category identifier.
// The session must be authenticated first.
func (c *Client) Upload(ctx context.Context, path, categoryID string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%s is not a regular file", path)
	}

	body, contentType, err := c.buildSubmitForm(path, categoryID)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("/submit"), body)
	if err != nil {
		return fmt.Errorf("failed to build submit request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("failed to communicate with %s: %w", c.domain, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("server returned %s", resp.Status)
	}

	// A redirect to the package page means the submission was accepted.
	finalPath := resp.Request.URL.Path
	if strings.Contains(finalPath, "/packages/") || strings.Contains(finalPath, "/pkgbase/") {
		return nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read submit response: %w", err)
	}

	if msg := extractUploadError(raw); msg != "" {
		return fmt.Errorf("%s", msg)
	}

	return ErrCookieRejected
}

// buildSubmitForm assembles the multipart form the AUR submission page expects.
func (c *Client) buildSubmitForm(path, categoryID string) (io.Reader, string, error) {
	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)

	fields := map[string]string{
		"category":  categoryID,
		"token":     c.aursid,
		"pkgsubmit": "1",
	}
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return nil, "", fmt.Errorf("failed to write form field %s: %w", key, err)
		}
	}

	part, err := writer.CreateFormFile("pfile", filepath.Base(path))
	if err != nil {
		return nil, "", fmt.Errorf("failed to create file part: %w", err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	if _, err := io.Copy(part, f); err != nil {
		return nil, "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to finalize form: %w", err)
	}

	return buf, writer.FormDataContentType(), nil
}

// extractUploadError pulls the human-readable error text out of the
// submission response HTML. Returns "" when no error block is present.
func extractUploadError(body []byte) string {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return ""
	}

	for _, selector := range errorSelectors {
		selection := doc.Find(selector).First()
		if selection.Length() > 0 {
			return strings.Join(strings.Fields(selection.Text()), " ")
		}
	}

	return ""
}
