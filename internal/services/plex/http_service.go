package plex

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"strings"
	"time"

	"sweeparr/internal/config"
	"sweeparr/internal/services"
)

const (
	userAgent = "Sweeparr/0.1.0"
	component = "plex"
)

// HTTPDoer abstracts the HTTP client so tests can stub transport behavior.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

type httpService struct {
	baseURL string
	token   string
	client  HTTPDoer
}

var _ Service = (*httpService)(nil)

// NewService builds a Plex client from validated settings.
func NewService(settings *config.Plex) Service {
	timeout := time.Duration(settings.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return NewHTTPService(settings.URL, settings.Token, &http.Client{Timeout: timeout})
}

// NewHTTPService wires an explicit HTTPDoer, primarily for tests.
func NewHTTPService(baseURL, token string, client HTTPDoer) Service {
	return &httpService{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		token:   strings.TrimSpace(token),
		client:  client,
	}
}

func (s *httpService) Sections(ctx context.Context) ([]Section, error) {
	resp, err := s.get(ctx, s.baseURL+"/library/sections")
	if err != nil {
		return nil, services.Wrap(services.ErrTransport, component, "sections", "fetch library sections", err)
	}
	defer resp.Body.Close()
	if err := statusError(resp, "sections"); err != nil {
		return nil, err
	}

	type directory struct {
		Key   string `xml:"key,attr"`
		Title string `xml:"title,attr"`
		Type  string `xml:"type,attr"`
	}
	type mediaContainer struct {
		Directories []directory `xml:"Directory"`
	}

	var container mediaContainer
	if err := xml.NewDecoder(resp.Body).Decode(&container); err != nil {
		return nil, services.Wrap(services.ErrTransport, component, "sections", "decode library sections", err)
	}

	sections := make([]Section, 0, len(container.Directories))
	for _, dir := range container.Directories {
		if dir.Key == "" {
			continue
		}
		sections = append(sections, Section{Key: dir.Key, Title: dir.Title, Type: dir.Type})
	}
	return sections, nil
}

func (s *httpService) RefreshSection(ctx context.Context, key string) error {
	url := fmt.Sprintf("%s/library/sections/%s/refresh", s.baseURL, key)
	resp, err := s.get(ctx, url)
	if err != nil {
		return services.Wrap(services.ErrTransport, component, "refresh", "trigger section refresh", err)
	}
	defer resp.Body.Close()
	return statusError(resp, "refresh")
}

func (s *httpService) get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Plex-Token", s.token)
	req.Header.Set("Accept", "application/xml")
	req.Header.Set("User-Agent", userAgent)
	return s.client.Do(req)
}

func statusError(resp *http.Response, operation string) error {
	if resp.StatusCode < 300 {
		return nil
	}
	marker := services.ErrTransport
	if resp.StatusCode == http.StatusNotFound {
		marker = services.ErrNotFound
	}
	message := fmt.Sprintf("server returned %d", resp.StatusCode)
	return services.Wrap(marker, component, operation, message, nil)
}
