package files

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/hashicorp/go-cleanhttp"
)

// IsURL checks if a path is a URL (starts with http:// or https://).
func IsURL(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}

// GetFileContentsFromURL fetches file contents from a URL.
// Any non-2xx status is reported as ErrGettingFileFromURL.
func GetFileContentsFromURL(ctx context.Context, client *http.Client, url string) ([]byte, string, error) {
	if client == nil {
		client = cleanhttp.DefaultClient()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, "", err
	}

	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", fmt.Errorf("%w: %s responded with %s", ErrGettingFileFromURL, url, resp.Status)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", err
	}

	return content, contentType, nil
}

// ReadFileOrURL reads content from either a local file path or a URL.
func ReadFileOrURL(ctx context.Context, path string) ([]byte, error) {
	if IsURL(path) {
		content, _, err := GetFileContentsFromURL(ctx, nil, path)
		return content, err
	}

	return os.ReadFile(path)
}
