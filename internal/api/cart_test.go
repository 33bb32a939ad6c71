package api_test

import (
	"fmt"
	"net/http"
	"testing"

	"storefront/internal/store"
)

type cartLine struct {
	ID       int            `json:"id"`
	Product  *store.Product `json:"product"`
	Quantity int            `json:"quantity"`
}

func fetchCart(t *testing.T, tsURL string, userID int) []cartLine {
	t.Helper()

	resp, raw := doJSON(t, http.MethodGet, fmt.Sprintf("%s/api/cart/%d", tsURL, userID), nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get cart status=%d body=%s", resp.StatusCode, string(raw))
	}

	var lines []cartLine
	decodeInto(t, raw, &lines)
	return lines
}

func TestCart_AddAndFetchJoinsProduct(t *testing.T) {
	ts, st := newTestServer(t)
	p := seedProduct(st, "Keyboard", "49.9", "electronics")

	resp, raw := doJSON(t, http.MethodPost, ts.URL+"/api/cart/1/add", map[string]any{
		"productId": p.ID,
		"quantity":  2,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("add status=%d body=%s", resp.StatusCode, string(raw))
	}

	var item store.CartItem
	decodeInto(t, raw, &item)
	if item.ProductID != p.ID || item.UserID != 1 || item.Quantity != 2 {
		t.Fatalf("item=%+v", item)
	}

	lines := fetchCart(t, ts.URL, 1)
	if len(lines) != 1 {
		t.Fatalf("lines=%d want=1", len(lines))
	}
	if lines[0].Product == nil || lines[0].Product.Title != "Keyboard" {
		t.Fatalf("joined product=%+v", lines[0].Product)
	}
	if lines[0].Quantity != 2 {
		t.Fatalf("quantity=%d want=2", lines[0].Quantity)
	}
}

func TestCart_AddTwiceMergesQuantity(t *testing.T) {
	ts, st := newTestServer(t)
	p := seedProduct(st, "Keyboard", "49.9", "electronics")

	doJSON(t, http.MethodPost, ts.URL+"/api/cart/1/add", map[string]any{"productId": p.ID, "quantity": 2})
	resp, raw := doJSON(t, http.MethodPost, ts.URL+"/api/cart/1/add", map[string]any{"productId": p.ID, "quantity": 3})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("second add status=%d body=%s", resp.StatusCode, string(raw))
	}

	var item store.CartItem
	decodeInto(t, raw, &item)
	if item.Quantity != 5 {
		t.Fatalf("merged quantity=%d want=5", item.Quantity)
	}

	lines := fetchCart(t, ts.URL, 1)
	if len(lines) != 1 {
		t.Fatalf("lines=%d want=1, merge must not duplicate rows", len(lines))
	}
	if lines[0].Quantity != 5 {
		t.Fatalf("quantity=%d want=5", lines[0].Quantity)
	}
}

func TestCart_AddUnknownProductIs404(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, raw := doJSON(t, http.MethodPost, ts.URL+"/api/cart/1/add", map[string]any{
		"productId": 42,
		"quantity":  1,
	})
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status=%d want=404 body=%s", resp.StatusCode, string(raw))
	}
	if msg := errorMessage(t, raw); msg != "Product not found" {
		t.Fatalf("message=%q", msg)
	}
}

func TestCart_AddValidation(t *testing.T) {
	ts, st := newTestServer(t)
	p := seedProduct(st, "Keyboard", "49.9", "electronics")

	resp, _ := doJSON(t, http.MethodPost, ts.URL+"/api/cart/1/add", map[string]any{
		"productId": p.ID,
		"quantity":  0,
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("zero quantity status=%d want=400", resp.StatusCode)
	}

	resp, _ = doJSON(t, http.MethodPost, ts.URL+"/api/cart/abc/add", map[string]any{
		"productId": p.ID,
		"quantity":  1,
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("bad user id status=%d want=400", resp.StatusCode)
	}
}

func TestCart_UpdateQuantity(t *testing.T) {
	ts, st := newTestServer(t)
	p := seedProduct(st, "Keyboard", "49.9", "electronics")
	it := st.AddToCart(p.ID, 1, 2)

	resp, raw := doJSON(t, http.MethodPut, fmt.Sprintf("%s/api/cart/update/%d", ts.URL, it.ID), map[string]any{
		"quantity": 7,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("update status=%d body=%s", resp.StatusCode, string(raw))
	}

	var item store.CartItem
	decodeInto(t, raw, &item)
	if item.Quantity != 7 {
		t.Fatalf("quantity=%d want=7", item.Quantity)
	}
}

func TestCart_UpdateMissingIs404(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, raw := doJSON(t, http.MethodPut, ts.URL+"/api/cart/update/42", map[string]any{"quantity": 1})
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status=%d want=404 body=%s", resp.StatusCode, string(raw))
	}
	if msg := errorMessage(t, raw); msg != "Cart item not found or removed" {
		t.Fatalf("message=%q", msg)
	}
}

func TestCart_UpdateNonPositiveQuantityIs400(t *testing.T) {
	ts, st := newTestServer(t)
	p := seedProduct(st, "Keyboard", "49.9", "electronics")
	it := st.AddToCart(p.ID, 1, 2)

	resp, _ := doJSON(t, http.MethodPut, fmt.Sprintf("%s/api/cart/update/%d", ts.URL, it.ID), map[string]any{
		"quantity": 0,
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status=%d want=400", resp.StatusCode)
	}

	// The row survives a rejected update.
	if _, found := st.CartItemByID(it.ID); !found {
		t.Fatalf("row removed by rejected update")
	}
}

func TestCart_Remove(t *testing.T) {
	ts, st := newTestServer(t)
	p := seedProduct(st, "Keyboard", "49.9", "electronics")
	it := st.AddToCart(p.ID, 1, 2)

	resp, raw := doJSON(t, http.MethodDelete, fmt.Sprintf("%s/api/cart/remove/%d", ts.URL, it.ID), nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("remove status=%d body=%s", resp.StatusCode, string(raw))
	}
	if msg := errorMessage(t, raw); msg != "Item removed from cart" {
		t.Fatalf("message=%q", msg)
	}

	resp, _ = doJSON(t, http.MethodDelete, fmt.Sprintf("%s/api/cart/remove/%d", ts.URL, it.ID), nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("second remove status=%d want=404", resp.StatusCode)
	}
}

func TestCart_RowWithDeletedProductSurfacesWithoutProduct(t *testing.T) {
	ts, st := newTestServer(t)
	seedProduct(st, "Keyboard", "49.9", "electronics")

	// Cart row pointing at a product id that never existed; the store
	// does not validate, and the join surfaces a bare line.
	st.AddToCart(42, 1, 1)

	lines := fetchCart(t, ts.URL, 1)
	if len(lines) != 1 {
		t.Fatalf("lines=%d want=1", len(lines))
	}
	if lines[0].Product != nil {
		t.Fatalf("expected missing product, got %+v", lines[0].Product)
	}
}
