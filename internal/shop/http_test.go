package shop_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"go.uber.org/zap"

	"GlowDerma/internal/shop"
)

func newTestHandler(t *testing.T) (http.Handler, *shop.MemStore) {
	t.Helper()

	store := shop.NewMemStore()
	s := &shop.Server{Store: store, Log: zap.NewNop()}

	h := shop.NewHandler(s, nil, shop.HTTPDeps{
		Log:     zap.NewNop(),
		Service: "test",
	})
	return h, store
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeErr(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	var resp struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return resp.Error
}

func TestHome(t *testing.T) {
	h, _ := newTestHandler(t)

	w := do(t, h, http.MethodGet, "/", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Body.String() != "Welcome to GlowDerma - Your Skincare Journey Starts Here" {
		t.Errorf("unexpected body: %q", w.Body.String())
	}
}

func TestAbout(t *testing.T) {
	h, _ := newTestHandler(t)

	w := do(t, h, http.MethodGet, "/about", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "<h3>") {
		t.Errorf("expected html snippet, got %q", w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("unexpected content type %q", ct)
	}
}

func TestContact(t *testing.T) {
	h, _ := newTestHandler(t)

	w := do(t, h, http.MethodGet, "/contact", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var contact map[string]string
	if err := json.NewDecoder(w.Body).Decode(&contact); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if contact["email"] != "care@glowderma.com" {
		t.Errorf("unexpected contact: %v", contact)
	}
}

func TestListProducts(t *testing.T) {
	h, _ := newTestHandler(t)

	tests := []struct {
		name      string
		query     url.Values
		wantNames []string
	}{
		{
			name:      "no filter",
			query:     url.Values{},
			wantNames: []string{"Retinol Serum", "Niacinamide Solution", "Peptide Moisturizer", "Glycolic Acid Toner"},
		},
		{
			name:      "by name",
			query:     url.Values{"name": {"Retinol Serum"}},
			wantNames: []string{"Retinol Serum"},
		},
		{
			name:      "by max price",
			query:     url.Values{"maxPrice": {"900"}},
			wantNames: []string{"Niacinamide Solution", "Glycolic Acid Toner"},
		},
		{
			name:      "name and max price",
			query:     url.Values{"name": {"Retinol Serum"}, "maxPrice": {"900"}},
			wantNames: []string{},
		},
		{
			name:      "non-numeric max price",
			query:     url.Values{"maxPrice": {"cheap"}},
			wantNames: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := "/products"
			if len(tt.query) > 0 {
				target += "?" + tt.query.Encode()
			}

			w := do(t, h, http.MethodGet, target, "")
			if w.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", w.Code)
			}

			var products []shop.Product
			if err := json.NewDecoder(w.Body).Decode(&products); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if len(products) != len(tt.wantNames) {
				t.Fatalf("expected %d products, got %d", len(tt.wantNames), len(products))
			}
			for i, name := range tt.wantNames {
				if products[i].Name != name {
					t.Errorf("product %d: expected %q, got %q", i, name, products[i].Name)
				}
			}
		})
	}
}

func TestCreateItem(t *testing.T) {
	h, store := newTestHandler(t)
	before := len(store.Items())

	w := do(t, h, http.MethodPost, "/products", `{"id": 5, "product": "Azelaic Acid Gel", "price": "$22"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var created shop.Item
	if err := json.NewDecoder(w.Body).Decode(&created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.ID != 5 || created.Product != "Azelaic Acid Gel" || created.Price != "$22" {
		t.Errorf("unexpected created item: %+v", created)
	}

	if len(store.Items()) != before+1 {
		t.Errorf("expected store to grow by one, got %d items", len(store.Items()))
	}
}

func TestCreateItem_ZeroIDAccepted(t *testing.T) {
	h, _ := newTestHandler(t)

	w := do(t, h, http.MethodPost, "/products", `{"id": 0, "product": "Sample Sachet", "price": "$0"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCreateItem_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{
			name:    "missing fields",
			body:    `{"id": 5}`,
			wantMsg: "Please provide 'id', 'product', and 'price'",
		},
		{
			name:    "null field",
			body:    `{"id": 5, "product": null, "price": "$1"}`,
			wantMsg: "Please provide 'id', 'product', and 'price'",
		},
		{
			name:    "extra field",
			body:    `{"id": 5, "product": "x", "price": "$1", "qty": 2}`,
			wantMsg: "Only 'id', 'product', and 'price' are allowed",
		},
	}

	for _, path := range []string{"/products", "/cart", "/add_to_cart"} {
		for _, tt := range tests {
			t.Run(path+" "+tt.name, func(t *testing.T) {
				h, store := newTestHandler(t)
				items, cart := len(store.Items()), len(store.CartItems())

				w := do(t, h, http.MethodPost, path, tt.body)
				if w.Code != http.StatusBadRequest {
					t.Fatalf("expected 400, got %d", w.Code)
				}
				if got := decodeErr(t, w); got != tt.wantMsg {
					t.Errorf("expected %q, got %q", tt.wantMsg, got)
				}
				if len(store.Items()) != items || len(store.CartItems()) != cart {
					t.Error("store changed on rejected request")
				}
			})
		}
	}
}

func TestCreateItem_MalformedBody(t *testing.T) {
	for _, body := range []string{`{"id": 5,`, `{"id": "five", "product": "x", "price": "$1"}`} {
		h, store := newTestHandler(t)
		before := len(store.Items())

		w := do(t, h, http.MethodPost, "/products", body)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		if got := decodeErr(t, w); got != "An unexpected error occurred. Please try again later." {
			t.Errorf("unexpected message: %q", got)
		}
		if len(store.Items()) != before {
			t.Error("store changed on rejected request")
		}
	}
}

func TestReadCart_ServesItemStore(t *testing.T) {
	h, store := newTestHandler(t)

	// POST /cart appends to the cart store, which GET /cart never serves
	// (kept faithful to the original).
	w := do(t, h, http.MethodPost, "/cart", `{"id": 3, "product": "SPF 50 Sunscreen", "price": "$15"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if len(store.CartItems()) != 1 {
		t.Fatalf("expected 1 cart item, got %d", len(store.CartItems()))
	}

	w = do(t, h, http.MethodGet, "/cart", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var items []shop.Item
	if err := json.NewDecoder(w.Body).Decode(&items); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(items) != 2 {
		t.Errorf("expected the 2 seed items, got %d", len(items))
	}
}

func TestAddToCartRoute_AppendsItemStore(t *testing.T) {
	h, store := newTestHandler(t)
	before := len(store.Items())

	w := do(t, h, http.MethodPost, "/add_to_cart", `{"id": 8, "product": "Bakuchiol Serum", "price": "$28"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if len(store.Items()) != before+1 {
		t.Errorf("expected item store to grow, got %d", len(store.Items()))
	}
}

func TestGetOrder(t *testing.T) {
	h, _ := newTestHandler(t)

	w := do(t, h, http.MethodGet, "/orders/2", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var o shop.Order
	if err := json.NewDecoder(w.Body).Decode(&o); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if o.ID != 2 || o.Product != "Vitamin C Moisturizer" || o.Quantity != 1 {
		t.Errorf("unexpected order: %+v", o)
	}
}

func TestGetOrder_NotFound(t *testing.T) {
	h, _ := newTestHandler(t)

	for _, target := range []string{"/orders/99", "/orders/abc"} {
		w := do(t, h, http.MethodGet, target, "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("%s: expected 404, got %d", target, w.Code)
		}
		if got := decodeErr(t, w); got != "Order Not Found" {
			t.Errorf("%s: unexpected message %q", target, got)
		}
	}
}

func TestCatchAll(t *testing.T) {
	h, _ := newTestHandler(t)

	for _, tc := range []struct{ method, target string }{
		{http.MethodGet, "/nonexistent"},
		{http.MethodGet, "/orders"},
		{http.MethodPost, "/about"},
	} {
		w := do(t, h, tc.method, tc.target, "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("%s %s: expected 404, got %d", tc.method, tc.target, w.Code)
		}
		if got := decodeErr(t, w); got != "Route Not Found" {
			t.Errorf("%s %s: unexpected message %q", tc.method, tc.target, got)
		}
	}
}

func TestReadRoutesAreIdempotent(t *testing.T) {
	h, store := newTestHandler(t)

	first := do(t, h, http.MethodGet, "/products", "").Body.String()
	for i := 0; i < 3; i++ {
		if got := do(t, h, http.MethodGet, "/products", "").Body.String(); got != first {
			t.Fatalf("response changed on repeat read: %s", got)
		}
	}
	if len(store.Items()) != 2 || len(store.CartItems()) != 0 {
		t.Error("read-only routes mutated a store")
	}
}

func TestHealthz(t *testing.T) {
	h, _ := newTestHandler(t)

	if w := do(t, h, http.MethodGet, "/healthz", ""); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
