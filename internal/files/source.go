package files

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/hashicorp/go-cleanhttp"
)

// Source is where an upstream document is read from.
// It is either a LocalSource or a RemoteSource, decided once at startup.
type Source interface {
	Read(ctx context.Context) ([]byte, error)
	Location() string
}

// LocalSource reads a document from the filesystem.
type LocalSource struct {
	Path string
}

func (s *LocalSource) Read(_ context.Context) ([]byte, error) {
	return os.ReadFile(s.Path)
}

func (s *LocalSource) Location() string { return s.Path }

// RemoteSource fetches a document with a single unauthenticated GET.
type RemoteSource struct {
	URL     string
	Client  *http.Client
	Timeout time.Duration
}

func (s *RemoteSource) Read(ctx context.Context) ([]byte, error) {
	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}

	content, _, err := GetFileContentsFromURL(ctx, s.Client, s.URL)
	return content, err
}

func (s *RemoteSource) Location() string { return s.URL }

// NewSource picks the remote source when url is set, the local path otherwise.
func NewSource(path, url string, timeout time.Duration) Source {
	if url != "" {
		return &RemoteSource{
			URL:     url,
			Client:  cleanhttp.DefaultClient(),
			Timeout: timeout,
		}
	}
	return &LocalSource{Path: path}
}
