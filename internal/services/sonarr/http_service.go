package sonarr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"sweeparr/internal/config"
	"sweeparr/internal/services"
)

const (
	userAgent = "Sweeparr/0.1.0"
	component = "sonarr"
)

// HTTPDoer describes the HTTP client used by the Sonarr client.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

type httpClient struct {
	baseURL string
	apiKey  string
	client  HTTPDoer
}

var _ Client = (*httpClient)(nil)

// NewClient builds a Sonarr client from configuration. The caller is expected
// to have validated the section; nil settings yield a client whose calls fail.
func NewClient(settings *config.Sonarr) Client {
	if settings == nil {
		return &httpClient{client: http.DefaultClient}
	}
	timeout := time.Duration(settings.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &httpClient{
		baseURL: strings.TrimRight(strings.TrimSpace(settings.Host), "/"),
		apiKey:  strings.TrimSpace(settings.APIKey),
		client:  &http.Client{Timeout: timeout},
	}
}

// NewHTTPClient constructs a Sonarr client with an injected HTTP transport.
func NewHTTPClient(baseURL, apiKey string, doer HTTPDoer) Client {
	if doer == nil {
		doer = http.DefaultClient
	}
	return &httpClient{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		apiKey:  strings.TrimSpace(apiKey),
		client:  doer,
	}
}

func (c *httpClient) Series(ctx context.Context) ([]Series, error) {
	const op = "fetch series"
	resp, err := c.do(ctx, http.MethodGet, "/api/v3/series", nil, nil)
	if err != nil {
		return nil, services.Wrap(services.ErrTransport, component, op, "", err)
	}
	defer resp.Body.Close()
	if err := statusError(op, resp); err != nil {
		return nil, err
	}

	var series []Series
	if err := json.NewDecoder(resp.Body).Decode(&series); err != nil {
		return nil, services.Wrap(services.ErrTransport, component, op, "decode response", err)
	}
	return series, nil
}

func (c *httpClient) EpisodesForSeries(ctx context.Context, seriesID int64) ([]Episode, error) {
	const op = "fetch episodes"
	query := url.Values{"seriesId": []string{fmt.Sprintf("%d", seriesID)}}
	resp, err := c.do(ctx, http.MethodGet, "/api/v3/episode", query, nil)
	if err != nil {
		return nil, services.Wrap(services.ErrTransport, component, op, "", err)
	}
	defer resp.Body.Close()
	if err := statusError(op, resp); err != nil {
		return nil, err
	}

	// Decode each record twice: once into the typed view and once retained
	// verbatim so monitoring updates can send the full object back.
	var rawEpisodes []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&rawEpisodes); err != nil {
		return nil, services.Wrap(services.ErrTransport, component, op, "decode response", err)
	}
	episodes := make([]Episode, 0, len(rawEpisodes))
	for _, raw := range rawEpisodes {
		var ep Episode
		if err := json.Unmarshal(raw, &ep); err != nil {
			return nil, services.Wrap(services.ErrTransport, component, op, "decode episode", err)
		}
		ep.Raw = raw
		episodes = append(episodes, ep)
	}
	return episodes, nil
}

func (c *httpClient) UnmonitorEpisode(ctx context.Context, ep Episode) error {
	const op = "unmonitor episode"
	body, err := unmonitorBody(ep)
	if err != nil {
		return services.Wrap(services.ErrValidation, component, op, "build request body", err)
	}

	path := fmt.Sprintf("/api/v3/episode/%d", ep.ID)
	resp, err := c.do(ctx, http.MethodPut, path, nil, bytes.NewReader(body))
	if err != nil {
		return services.Wrap(services.ErrTransport, component, op, "", err)
	}
	defer resp.Body.Close()
	if err := statusError(op, resp); err != nil {
		return err
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

func (c *httpClient) DeleteEpisodeFile(ctx context.Context, episodeFileID int64) error {
	const op = "delete episode file"
	path := fmt.Sprintf("/api/v3/episodefile/%d", episodeFileID)
	resp, err := c.do(ctx, http.MethodDelete, path, nil, nil)
	if err != nil {
		return services.Wrap(services.ErrTransport, component, op, "", err)
	}
	defer resp.Body.Close()
	if err := statusError(op, resp); err != nil {
		return err
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// unmonitorBody returns the full episode object with only the monitored flag
// flipped off. When the raw upstream record is available every field it
// carried is preserved.
func unmonitorBody(ep Episode) ([]byte, error) {
	if len(ep.Raw) > 0 {
		var fields map[string]any
		if err := json.Unmarshal(ep.Raw, &fields); err != nil {
			return nil, fmt.Errorf("decode retained episode: %w", err)
		}
		fields["monitored"] = false
		return json.Marshal(fields)
	}
	ep.Monitored = false
	return json.Marshal(ep)
}

func (c *httpClient) do(ctx context.Context, method, path string, query url.Values, body io.Reader) (*http.Response, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("X-Api-Key", c.apiKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.client.Do(req)
}

func statusError(op string, resp *http.Response) error {
	if resp.StatusCode < 300 {
		return nil
	}
	snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
	message := fmt.Sprintf("returned %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	marker := services.ErrTransport
	if resp.StatusCode == http.StatusNotFound {
		marker = services.ErrNotFound
	}
	return services.Wrap(marker, component, op, message, nil)
}
