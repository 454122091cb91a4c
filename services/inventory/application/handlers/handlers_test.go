package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	appsvcs "github.com/ghuser/product-catalog/services/inventory/application/services"
	inventorydomain "github.com/ghuser/product-catalog/services/inventory/domain"
	"github.com/ghuser/product-catalog/services/inventory/domain/models"
)

// fakeStockRepository is the in-memory repository used by handler tests.
type fakeStockRepository struct {
	stocks  map[uuid.UUID]int
	ledger  []*models.StockChange
	lowRows []*models.LowStockProduct
}

func newFakeStockRepository() *fakeStockRepository {
	return &fakeStockRepository{stocks: make(map[uuid.UUID]int)}
}

func (f *fakeStockRepository) ApplyChange(_ context.Context, productID uuid.UUID, t models.MutationType, quantity int, reason string) (*models.StockChange, error) {
	prev, ok := f.stocks[productID]
	if !ok {
		return nil, inventorydomain.ErrProductNotFound
	}
	change := models.NewStockChange(productID, t, prev, quantity, reason)
	f.stocks[productID] = change.NewStock
	f.ledger = append(f.ledger, change)
	return change, nil
}

func (f *fakeStockRepository) History(_ context.Context, productID uuid.UUID, limit int) ([]*models.StockChange, error) {
	var out []*models.StockChange
	for i := len(f.ledger) - 1; i >= 0 && len(out) < limit; i-- {
		if f.ledger[i].ProductID == productID {
			out = append(out, f.ledger[i])
		}
	}
	return out, nil
}

func (f *fakeStockRepository) LowStock(_ context.Context, threshold int) ([]*models.LowStockProduct, error) {
	var out []*models.LowStockProduct
	for _, p := range f.lowRows {
		if p.Stock < threshold {
			out = append(out, p)
		}
	}
	return out, nil
}

func newTestServices(repo *fakeStockRepository) *appsvcs.Services {
	return &appsvcs.Services{
		Inventory: appsvcs.NewInventoryService(repo, nil, 10, 50),
	}
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("response is not a valid envelope: %v (body: %s)", err, w.Body.String())
	}
	return env
}

func postJSON(t *testing.T, handler http.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	r := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler(w, r)
	return w
}

func TestUpdateStock_Success(t *testing.T) {
	repo := newFakeStockRepository()
	productID := uuid.New()
	repo.stocks[productID] = 20
	h := NewUpdateStockHandler(newTestServices(repo))

	body := `{"productId":"` + productID.String() + `","quantity":5,"type":"add","reason":"restock"}`
	w := postJSON(t, h.Execute, "/api/inventory/update", body)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (body: %s)", w.Code, w.Body.String())
	}
	env := decodeEnvelope(t, w)
	if !env.Success {
		t.Fatalf("expected success envelope, got error: %q", env.Error)
	}

	var resp UpdateStockResponse
	if err := json.Unmarshal(env.Data, &resp); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if resp.PreviousStock != 20 || resp.NewStock != 25 || resp.ChangeAmount != 5 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.ProductID != productID.String() {
		t.Fatalf("expected productId %s, got %s", productID, resp.ProductID)
	}
}

func TestUpdateStock_QuantityZeroIsValidForSet(t *testing.T) {
	repo := newFakeStockRepository()
	productID := uuid.New()
	repo.stocks[productID] = 20
	h := NewUpdateStockHandler(newTestServices(repo))

	body := `{"productId":"` + productID.String() + `","quantity":0,"type":"set"}`
	w := postJSON(t, h.Execute, "/api/inventory/update", body)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for explicit zero quantity, got %d (body: %s)", w.Code, w.Body.String())
	}
	if repo.stocks[productID] != 0 {
		t.Fatalf("expected stock set to 0, got %d", repo.stocks[productID])
	}
}

func TestUpdateStock_MissingQuantity(t *testing.T) {
	repo := newFakeStockRepository()
	h := NewUpdateStockHandler(newTestServices(repo))

	body := `{"productId":"` + uuid.New().String() + `","type":"add"}`
	w := postJSON(t, h.Execute, "/api/inventory/update", body)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing quantity, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"quantity"`) {
		t.Fatalf("expected quantity in field breakdown, got: %s", w.Body.String())
	}
}

func TestUpdateStock_MissingAllRequiredFields(t *testing.T) {
	repo := newFakeStockRepository()
	h := NewUpdateStockHandler(newTestServices(repo))

	w := postJSON(t, h.Execute, "/api/inventory/update", `{}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty body, got %d", w.Code)
	}
	for _, field := range []string{"productId", "quantity", "type"} {
		if !strings.Contains(w.Body.String(), `"`+field+`"`) {
			t.Fatalf("expected %s in field breakdown, got: %s", field, w.Body.String())
		}
	}
}

func TestUpdateStock_UnknownProduct(t *testing.T) {
	repo := newFakeStockRepository()
	h := NewUpdateStockHandler(newTestServices(repo))

	body := `{"productId":"` + uuid.New().String() + `","quantity":5,"type":"add"}`
	w := postJSON(t, h.Execute, "/api/inventory/update", body)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d (body: %s)", w.Code, w.Body.String())
	}
	env := decodeEnvelope(t, w)
	if env.Success {
		t.Fatal("expected success=false")
	}
	if !strings.Contains(env.Error, "product not found") {
		t.Fatalf("unexpected error message: %q", env.Error)
	}
}

func TestUpdateStock_InvalidType(t *testing.T) {
	repo := newFakeStockRepository()
	productID := uuid.New()
	repo.stocks[productID] = 20
	h := NewUpdateStockHandler(newTestServices(repo))

	body := `{"productId":"` + productID.String() + `","quantity":5,"type":"increment"}`
	w := postJSON(t, h.Execute, "/api/inventory/update", body)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d (body: %s)", w.Code, w.Body.String())
	}
	env := decodeEnvelope(t, w)
	if !strings.Contains(env.Error, "add, subtract, or set") {
		t.Fatalf("error should name the valid types, got %q", env.Error)
	}
}

func TestUpdateStock_NegativeQuantity(t *testing.T) {
	repo := newFakeStockRepository()
	productID := uuid.New()
	repo.stocks[productID] = 20
	h := NewUpdateStockHandler(newTestServices(repo))

	body := `{"productId":"` + productID.String() + `","quantity":-5,"type":"add"}`
	w := postJSON(t, h.Execute, "/api/inventory/update", body)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d (body: %s)", w.Code, w.Body.String())
	}
}

func TestGetStockHistory_NewestFirst(t *testing.T) {
	repo := newFakeStockRepository()
	productID := uuid.New()
	repo.stocks[productID] = 0
	svcs := newTestServices(repo)

	// Apply three mutations so the ledger has a known order.
	for _, q := range []int{10, 5, 2} {
		if _, err := svcs.Inventory.ApplyStockChange(context.Background(), productID, "add", q, ""); err != nil {
			t.Fatalf("seed mutation failed: %v", err)
		}
	}

	h := NewGetStockHistoryHandler(svcs)
	r := httptest.NewRequest(http.MethodGet, "/api/inventory/history/"+productID.String(), nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("productId", productID.String())
	r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
	w := httptest.NewRecorder()
	h.Execute(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (body: %s)", w.Code, w.Body.String())
	}
	env := decodeEnvelope(t, w)

	var entries []StockHistoryEntry
	if err := json.Unmarshal(env.Data, &entries); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	// Newest first: last applied mutation (add 2) leads.
	if entries[0].ChangeAmount != 2 || entries[2].ChangeAmount != 10 {
		t.Fatalf("unexpected ordering: %+v", entries)
	}
}

func TestGetStockHistory_InvalidUUID(t *testing.T) {
	h := NewGetStockHistoryHandler(newTestServices(newFakeStockRepository()))

	r := httptest.NewRequest(http.MethodGet, "/api/inventory/history/not-a-uuid", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("productId", "not-a-uuid")
	r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
	w := httptest.NewRecorder()
	h.Execute(w, r)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestGetLowStock_StrictlyBelowThreshold(t *testing.T) {
	repo := newFakeStockRepository()
	repo.lowRows = []*models.LowStockProduct{
		{ID: uuid.New(), Name: "below", Stock: 9},
		{ID: uuid.New(), Name: "at threshold", Stock: 10},
		{ID: uuid.New(), Name: "zero", Stock: 0},
	}
	h := NewGetLowStockHandler(newTestServices(repo))

	r := httptest.NewRequest(http.MethodGet, "/api/products/low-stock", nil)
	w := httptest.NewRecorder()
	h.Execute(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	env := decodeEnvelope(t, w)

	var items []LowStockItemView
	if err := json.Unmarshal(env.Data, &items); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items (stock 10 excluded), got %d", len(items))
	}
	for _, item := range items {
		if item.Threshold != 10 {
			t.Fatalf("expected threshold 10, got %d", item.Threshold)
		}
		if item.Product.Name == "at threshold" {
			t.Fatal("product at exactly the threshold must not be listed")
		}
	}
}

func TestGetLowStock_CategoryDisplayFallbacks(t *testing.T) {
	repo := newFakeStockRepository()
	repo.lowRows = []*models.LowStockProduct{
		{ID: uuid.New(), Name: "no category", Stock: 1},
	}
	h := NewGetLowStockHandler(newTestServices(repo))

	r := httptest.NewRequest(http.MethodGet, "/api/products/low-stock", nil)
	w := httptest.NewRecorder()
	h.Execute(w, r)

	env := decodeEnvelope(t, w)
	var items []LowStockItemView
	if err := json.Unmarshal(env.Data, &items); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	// Zero-value CategoryRef means no category: display name falls back.
	if items[0].Product.CategoryName != "Uncategorized" {
		t.Fatalf("expected Uncategorized fallback, got %q", items[0].Product.CategoryName)
	}
	if items[0].Product.CategoryID != "" {
		t.Fatalf("expected empty categoryId, got %q", items[0].Product.CategoryID)
	}
}
