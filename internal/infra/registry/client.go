// Package registry implements FacilitySource adapters over the national
// facility registry API. Every source-format quirk stops at this package
// boundary: callers only ever see canonical Facility records.
package registry

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"onduty/config"

	"github.com/pkg/errors"
)

const defaultBaseURL = "http://apis.data.go.kr/B552657"

// Client is the shared HTTP client for the registry's JSON endpoints.
type Client struct {
	httpClient *http.Client
	baseURL    string
	serviceKey string
	logger     *slog.Logger
}

// NewClient creates the registry HTTP client.
func NewClient(cfg *config.Config, logger *slog.Logger) *Client {
	baseURL := cfg.Registry.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		httpClient: &http.Client{Timeout: cfg.Registry.Timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		serviceKey: cfg.Registry.ServiceKey,
		logger:     logger,
	}
}

// envelope is the registry's response wrapper. The payload nests as
// response.body.items.item, where item may be a single object, an array, or
// absent entirely.
type envelope struct {
	Response struct {
		Header struct {
			ResultCode string `json:"resultCode"`
			ResultMsg  string `json:"resultMsg"`
		} `json:"header"`
		Body struct {
			Items      itemsField  `json:"items"`
			TotalCount json.Number `json:"totalCount"`
		} `json:"body"`
	} `json:"response"`
}

// itemsField absorbs the object-or-array shape of the "items" wrapper.
type itemsField struct {
	Items []rawItem
}

func (f *itemsField) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" || trimmed == `""` {
		return nil
	}

	var wrapper struct {
		Item json.RawMessage `json:"item"`
	}
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return err
	}
	if len(wrapper.Item) == 0 {
		return nil
	}

	inner := strings.TrimSpace(string(wrapper.Item))
	if strings.HasPrefix(inner, "[") {
		return json.Unmarshal(wrapper.Item, &f.Items)
	}

	var single rawItem
	if err := json.Unmarshal(wrapper.Item, &single); err != nil {
		return err
	}
	f.Items = []rawItem{single}

	return nil
}

// fetch issues one registry call and returns the raw items plus the total
// record count the registry claims for the query.
func (c *Client) fetch(ctx context.Context, opPath string, params url.Values) ([]rawItem, int64, error) {
	query := url.Values{}
	for key, values := range params {
		for _, v := range values {
			query.Add(key, v)
		}
	}
	query.Set("serviceKey", c.serviceKey)
	query.Set("_type", "json")

	endpoint := c.baseURL + opPath + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, 0, errors.Wrap(err, "build registry request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, errors.Wrap(err, "call registry")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, 0, errors.Errorf("registry returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, errors.Wrap(err, "read registry response")
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, 0, errors.Wrap(err, "decode registry response")
	}

	if code := env.Response.Header.ResultCode; code != "" && code != "00" {
		return nil, 0, errors.Errorf("registry error %s: %s", code, env.Response.Header.ResultMsg)
	}

	total, _ := env.Response.Body.TotalCount.Int64()

	return env.Response.Body.Items.Items, total, nil
}
