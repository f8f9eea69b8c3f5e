package narrative

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// RewardSummary is what a completed activity granted
type RewardSummary struct {
	XP       int    `json:"xp"`
	Gold     int    `json:"gold"`
	ItemName string `json:"item_name,omitempty"`
}

// NarrateRequest asks for flavor text about an activity outcome
type NarrateRequest struct {
	Location string        `json:"location"`
	Outcome  string        `json:"outcome"`
	Rewards  RewardSummary `json:"rewards"`
	Language string        `json:"language,omitempty"`
}

// Flavor names and describes an enemy
type Flavor struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Client is the remote enrichment service
type Client interface {
	Narrate(ctx context.Context, req NarrateRequest) (string, error)
	Describe(ctx context.Context, level int, isBoss bool) (Flavor, error)
}

// HTTPClient talks JSON to the enrichment service
type HTTPClient struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// NewHTTPClient creates an HTTPClient
func NewHTTPClient(baseURL, apiKey string) *HTTPClient {
	return &HTTPClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		APIKey:  apiKey,
		Client:  &http.Client{Timeout: DefaultTimeout},
	}
}

// Narrate returns text for the outcome
func (c *HTTPClient) Narrate(ctx context.Context, req NarrateRequest) (string, error) {
	var out struct {
		Text string `json:"text"`
	}
	if err := c.post(ctx, PathNarrate, req, &out); err != nil {
		return "", err
	}
	if out.Text == "" {
		return "", fmt.Errorf("narrate: empty text")
	}
	return out.Text, nil
}

// Describe returns a name and description for an enemy of level
func (c *HTTPClient) Describe(ctx context.Context, level int, isBoss bool) (Flavor, error) {
	body := map[string]any{"level": level, "is_boss": isBoss}
	var out Flavor
	if err := c.post(ctx, PathDescribe, body, &out); err != nil {
		return Flavor{}, err
	}
	if out.Name == "" {
		return Flavor{}, fmt.Errorf("describe: empty name")
	}
	return out, nil
}

func (c *HTTPClient) post(ctx context.Context, path string, body, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.APIKey != "" {
		req.Header.Set(HeaderAPIKey, c.APIKey)
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s returned status: %d", path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
