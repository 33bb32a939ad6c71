package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"storefront/internal/api"
	"storefront/internal/store"
)

func newTestServer(t *testing.T) (*httptest.Server, *store.Store) {
	t.Helper()

	st := store.New()
	s := &api.Server{
		Store:         st,
		Log:           zap.NewNop(),
		CheckoutLimit: 100,
	}

	h := api.NewHandler(s, api.HTTPDeps{
		Log:     zap.NewNop(),
		Service: "storefront",
	})

	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return ts, st
}

func doJSON(t *testing.T, method, url string, body any) (*http.Response, []byte) {
	t.Helper()

	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		r = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, url, r)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, raw
}

func decodeInto(t *testing.T, raw []byte, v any) {
	t.Helper()
	if err := json.Unmarshal(raw, v); err != nil {
		t.Fatalf("decode: %v body=%s", err, string(raw))
	}
}

func errorMessage(t *testing.T, raw []byte) string {
	t.Helper()
	var e struct {
		Message string `json:"message"`
	}
	decodeInto(t, raw, &e)
	return e.Message
}

func seedProduct(st *store.Store, title, price, category string) store.Product {
	return st.CreateProduct(store.ProductInput{
		Title:    title,
		Price:    price,
		Category: category,
		Rating:   store.Rating{Rate: 4.2, Count: 10},
	})
}
