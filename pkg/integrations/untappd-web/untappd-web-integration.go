package untappdweb

import (
	"fmt"
	"net/url"
	"strings"

	"go.uber.org/zap"
)

const (
	IntegrationName = "untappd_web"
	DefaultBaseURL  = "https://untappd.com"
)

type UntappedWebIntegration struct {
	logger  *zap.Logger
	baseURL *url.URL
}

func NewUntappedWebIntegration(logger *zap.Logger, baseURL string) (*UntappedWebIntegration, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	parsed, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid untappd url %q: %w", baseURL, err)
	}

	if parsed.Hostname() == "" {
		return nil, fmt.Errorf("invalid untappd url %q: no host", baseURL)
	}

	return &UntappedWebIntegration{logger: logger, baseURL: parsed}, nil
}

func (u *UntappedWebIntegration) pageURL(path string) string {
	return u.baseURL.String() + path
}
