// Package attack retrieves the MITRE ATT&CK STIX bundle over HTTP.
package attack

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/example/navcsv/internal/core/catalog"
	"github.com/example/navcsv/internal/ports/secondary"
	"github.com/example/navcsv/internal/version"
)

// FetchError reports a non-successful HTTP response from the bundle URL.
type FetchError struct {
	URL        string
	StatusCode int
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("error fetching raw att&ck json data: %s returned %d %s",
		e.URL, e.StatusCode, http.StatusText(e.StatusCode))
}

// HTTPSource implements secondary.AttackSource with a single unauthenticated GET.
type HTTPSource struct {
	url    string
	client *http.Client
}

// NewHTTPSource creates a source for url. A zero timeout leaves the client
// without a deadline beyond the request context.
func NewHTTPSource(url string, timeout time.Duration) *HTTPSource {
	return &HTTPSource{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

// URL returns the bundle location.
func (s *HTTPSource) URL() string {
	return s.url
}

// FetchBundle downloads and decodes the bundle.
func (s *HTTPSource) FetchBundle(ctx context.Context) (*catalog.Bundle, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", version.UserAgent())
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to GET %s: %w", s.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &FetchError{URL: s.url, StatusCode: resp.StatusCode}
	}

	var bundle catalog.Bundle
	if err := json.NewDecoder(resp.Body).Decode(&bundle); err != nil {
		return nil, fmt.Errorf("failed to parse STIX JSON: %w", err)
	}
	return &bundle, nil
}

// CloseIdleConnections releases keep-alive connections held by the client.
func (s *HTTPSource) CloseIdleConnections() {
	s.client.CloseIdleConnections()
}

// Ensure HTTPSource implements the interface.
var _ secondary.AttackSource = (*HTTPSource)(nil)
