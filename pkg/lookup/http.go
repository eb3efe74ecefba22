package lookup

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goliatone/go-quoteform/pkg/form"
)

const defaultTimeout = 10 * time.Second

// HTTPProvider queries a postcode lookup service over HTTP. The request shape
// is GET {base}/{postcode} with an optional api_key query parameter, matching
// the contract the generated browser runtime uses.
type HTTPProvider struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

type httpConfig struct {
	apiKey string
	client *http.Client
}

// HTTPOption configures an HTTPProvider.
type HTTPOption func(*httpConfig)

// WithAPIKey attaches an api_key query parameter to every request.
func WithAPIKey(key string) HTTPOption {
	return func(c *httpConfig) {
		c.apiKey = key
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(client *http.Client) HTTPOption {
	return func(c *httpConfig) {
		if client != nil {
			c.client = client
		}
	}
}

// NewHTTPProvider builds a provider for the lookup service at baseURL.
func NewHTTPProvider(baseURL string, opts ...HTTPOption) (*HTTPProvider, error) {
	baseURL = strings.TrimSpace(strings.TrimRight(baseURL, "/"))
	if baseURL == "" {
		return nil, fmt.Errorf("lookup: missing base URL")
	}
	cfg := httpConfig{client: &http.Client{Timeout: defaultTimeout}}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return &HTTPProvider{baseURL: baseURL, apiKey: cfg.apiKey, client: cfg.client}, nil
}

// candidate accepts the field spellings the upstream services use.
type candidate struct {
	Address        string `json:"Address"`
	BuildingNumber string `json:"BuildingNumber"`
	StreetAddress  string `json:"StreetAddress"`
	Town           string `json:"Town"`
	Postcode       string `json:"Postcode"`
}

type lookupResponse struct {
	Addresses []candidate `json:"addresses"`
}

// Lookup fetches candidate addresses for postcode. Responses may be either a
// bare JSON array of candidates or an object with an addresses field.
func (p *HTTPProvider) Lookup(ctx context.Context, postcode string) ([]form.Address, error) {
	postcode = strings.TrimSpace(postcode)
	if postcode == "" {
		return nil, fmt.Errorf("lookup: missing postcode")
	}

	endpoint := p.baseURL + "/" + url.PathEscape(postcode)
	if p.apiKey != "" {
		endpoint += "?api_key=" + url.QueryEscape(p.apiKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("lookup: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("lookup: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("lookup: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("lookup: read response: %w", err)
	}

	candidates, err := decodeCandidates(body)
	if err != nil {
		return nil, err
	}

	addresses := make([]form.Address, 0, len(candidates))
	for _, c := range candidates {
		addresses = append(addresses, form.Address{
			FullAddress:    c.Address,
			BuildingNumber: c.BuildingNumber,
			Street:         c.StreetAddress,
			Town:           c.Town,
			Postcode:       firstNonEmpty(c.Postcode, postcode),
		})
	}
	return addresses, nil
}

func decodeCandidates(body []byte) ([]candidate, error) {
	trimmed := strings.TrimSpace(string(body))
	if strings.HasPrefix(trimmed, "[") {
		var list []candidate
		if err := json.Unmarshal(body, &list); err != nil {
			return nil, fmt.Errorf("lookup: decode response: %w", err)
		}
		return list, nil
	}
	var wrapped lookupResponse
	if err := json.Unmarshal(body, &wrapped); err != nil {
		return nil, fmt.Errorf("lookup: decode response: %w", err)
	}
	return wrapped.Addresses, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
