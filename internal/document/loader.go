// Package document fetches screen documents from a document server and keeps
// the last good copy of each in the local cache.
package document

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/jask/hypertabs/internal/markup"
)

// ContentType is served and requested for markup documents.
const ContentType = "application/vnd.hyperview+xml"

var ErrStatus = errors.New("document: unexpected status")

type Loader interface {
	Load(ctx context.Context, url string) (*markup.Node, error)
}

// HTTPLoader fetches documents over HTTP.
type HTTPLoader struct {
	Client *http.Client
}

func NewHTTPLoader(client *http.Client) *HTTPLoader {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPLoader{Client: client}
}

func (l *HTTPLoader) Load(ctx context.Context, url string) (*markup.Node, error) {
	body, err := l.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	return markup.Parse(bytes.NewReader(body))
}

// Fetch returns the raw document body.
func (l *HTTPLoader) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", ContentType)
	resp, err := l.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch %s: %w: %d", url, ErrStatus, resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", url, err)
	}
	return body, nil
}
