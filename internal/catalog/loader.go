package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/mudit2208/mehta-masala-storefront/internal/domain"
	"golang.org/x/sync/singleflight"
)

var ErrProductNotFound = errors.New("product not found")

// Loader fetches the product list from the configured catalog URL.
// Any fetch or decode failure falls back to the built-in list so the
// storefront keeps working offline. Each call re-fetches; there is no
// cache beyond collapsing concurrent fetches.
type Loader struct {
	client *http.Client
	url    string
	sfg    singleflight.Group // Prevents fetch stampede
}

func NewLoader(client *http.Client, url string) *Loader {
	if client == nil {
		client = http.DefaultClient
	}
	return &Loader{
		client: client,
		url:    url,
	}
}

func (l *Loader) Fetch(ctx context.Context) []domain.Product {
	v, _, _ := l.sfg.Do("catalog", func() (interface{}, error) {
		products, err := l.fetch(ctx)
		if err != nil {
			log.Printf("catalog fetch failed, using fallback list: %v", err)
			return FallbackProducts(), nil
		}
		return products, nil
	})
	return v.([]domain.Product)
}

func (l *Loader) fetch(ctx context.Context) ([]domain.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build catalog request: %w", err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("catalog returned status %d", resp.StatusCode)
	}

	var products []domain.Product
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if len(products) == 0 {
		return nil, errors.New("catalog is empty")
	}
	return products, nil
}

func (l *Loader) FindBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	for _, p := range l.Fetch(ctx) {
		if p.Slug == slug {
			return &p, nil
		}
	}
	return nil, ErrProductNotFound
}

// Search matches the query case-insensitively against product names.
func (l *Loader) Search(ctx context.Context, query string) []domain.Product {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}
	var matches []domain.Product
	for _, p := range l.Fetch(ctx) {
		if strings.Contains(strings.ToLower(p.Name), query) {
			matches = append(matches, p)
		}
	}
	return matches
}
