// Package pincode resolves a 6-digit postal code to its city and state
// for checkout autofill. Lookup failures are never fatal: the caller
// leaves the fields blank and the customer types them in.
package pincode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"regexp"
)

var (
	ErrInvalidPincode = errors.New("pincode must be 6 digits")
	ErrNotFound       = errors.New("pincode not found")

	pinPattern = regexp.MustCompile(`^[0-9]{6}$`)
)

type Locality struct {
	City  string `json:"city"`
	State string `json:"state"`
}

type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient(httpClient *http.Client, baseURL string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
	}
}

// lookup API response shape: a one-element array with Status and the
// post offices for the pin.
type lookupResult struct {
	Status     string `json:"Status"`
	PostOffice []struct {
		District string `json:"District"`
		State    string `json:"State"`
	} `json:"PostOffice"`
}

func (c *Client) Lookup(ctx context.Context, pin string) (*Locality, error) {
	if !pinPattern.MatchString(pin) {
		return nil, ErrInvalidPincode
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/pincode/%s", c.baseURL, pin), nil)
	if err != nil {
		return nil, fmt.Errorf("build pincode request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("pincode request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("pincode lookup returned status %d", resp.StatusCode)
	}

	var results []lookupResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("decode pincode response: %w", err)
	}

	if len(results) == 0 || results[0].Status != "Success" || len(results[0].PostOffice) == 0 {
		return nil, ErrNotFound
	}

	post := results[0].PostOffice[0]
	return &Locality{
		City:  post.District,
		State: post.State,
	}, nil
}
