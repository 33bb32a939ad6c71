// Package catalog seeds the product table from a remote catalog API at
// startup.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"storefront/internal/store"
)

var ErrBadStatus = errors.New("catalog bad status")

// Loader fetches the remote product array. It runs once at boot; there
// is no retry and no incremental refresh.
type Loader struct {
	BaseURL string
	Client  *http.Client
}

func NewLoader(baseURL string, timeout time.Duration) *Loader {
	if u, err := url.Parse(baseURL); err == nil && u.Scheme != "" && u.Host != "" {
		baseURL = strings.TrimRight(baseURL, "/")
	}
	return &Loader{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: timeout},
	}
}

// remoteProduct mirrors the upstream JSON shape; the remote id is
// ignored, local ids are assigned by the store.
type remoteProduct struct {
	Title       string       `json:"title"`
	Price       float64      `json:"price"`
	Description string       `json:"description"`
	Category    string       `json:"category"`
	Image       string       `json:"image"`
	Rating      store.Rating `json:"rating"`
}

// Load fetches the catalog and inserts one product row per element.
// On error the store keeps whatever was inserted before the failure.
func (l *Loader) Load(ctx context.Context, st *store.Store) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.BaseURL, nil)
	if err != nil {
		return 0, err
	}

	resp, err := l.Client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return 0, fmt.Errorf("%w: status=%d", ErrBadStatus, resp.StatusCode)
	}

	var remote []remoteProduct
	if err := json.NewDecoder(resp.Body).Decode(&remote); err != nil {
		return 0, err
	}

	for _, rp := range remote {
		st.CreateProduct(store.ProductInput{
			Title:       rp.Title,
			Price:       strconv.FormatFloat(rp.Price, 'f', -1, 64),
			Description: rp.Description,
			Category:    rp.Category,
			Image:       rp.Image,
			Rating:      rp.Rating,
		})
	}

	return len(remote), nil
}
