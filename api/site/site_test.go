package site

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"midnightgrove/cart"
	"midnightgrove/error_messages"
	"midnightgrove/worksheet"
)

// --- Setup ---

func setupSiteTest() (*mux.Router, *fakeSnapshotRepository) {
	repo := newFakeSnapshotRepository()
	logger := log.New()
	logger.SetOutput(io.Discard)

	store := cart.NewStore(repo, logger)
	composer := worksheet.NewComposer(worksheet.DefaultTemplates(), worksheet.DefaultStories(), logger)

	router := mux.NewRouter()
	NewHandlers(store, composer, logger).Register(router)
	return router, repo
}

func doJSON(t *testing.T, router *mux.Router, method, path string, body interface{}, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == "session" {
			return c
		}
	}
	t.Fatal("no session cookie set")
	return nil
}

func testItem() cart.CartItem {
	return cart.CartItem{
		ProductID:   "grove-book-1",
		VariantID:   "paperback",
		Title:       "The Pencil",
		VariantName: "Paperback",
		Price:       9.99,
	}
}

// --- Tests ---

func TestAddToCart_ThenCount(t *testing.T) {
	router, _ := setupSiteTest()

	rec := doJSON(t, router, http.MethodPost, "/api/add_to_cart", testItem(), nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	cookie := sessionCookie(t, rec)

	rec = doJSON(t, router, http.MethodGet, "/api/items", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	var count map[string]int
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &count))
	assert.Equal(t, 1, count["items"])
}

func TestAddToCart_InvalidItemRejected(t *testing.T) {
	router, repo := setupSiteTest()

	item := testItem()
	item.ProductID = ""
	rec := doJSON(t, router, http.MethodPost, "/api/add_to_cart", item, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, repo.snapshots, "rejected before any state change")
}

func TestRetrieveCart_StateRoundTrip(t *testing.T) {
	router, _ := setupSiteTest()

	rec := doJSON(t, router, http.MethodPost, "/api/add_to_cart", testItem(), nil)
	cookie := sessionCookie(t, rec)
	doJSON(t, router, http.MethodPost, "/api/add_to_cart", testItem(), cookie)

	rec = doJSON(t, router, http.MethodGet, "/api/retrieve_cart", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	var state cart.CartState
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
	require.Len(t, state.Items, 1)
	assert.Equal(t, 2, state.Items[0].Quantity)
	assert.Equal(t, 2, state.ItemCount)
	assert.InDelta(t, 19.98, state.Subtotal, 1e-9)
}

func TestUpdateQuantity_ZeroRemovesLine(t *testing.T) {
	router, _ := setupSiteTest()

	rec := doJSON(t, router, http.MethodPost, "/api/add_to_cart", testItem(), nil)
	cookie := sessionCookie(t, rec)

	rec = doJSON(t, router, http.MethodPost, "/api/update_quantity", map[string]interface{}{
		"productId": "grove-book-1",
		"variantId": "paperback",
		"quantity":  0,
	}, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	var state cart.CartState
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
	assert.Empty(t, state.Items)
}

func TestClearCart(t *testing.T) {
	router, _ := setupSiteTest()

	rec := doJSON(t, router, http.MethodPost, "/api/add_to_cart", testItem(), nil)
	cookie := sessionCookie(t, rec)

	rec = doJSON(t, router, http.MethodPost, "/api/clear_cart", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	var state cart.CartState
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
	assert.Empty(t, state.Items)
	assert.Equal(t, 0, state.ItemCount)
}

func TestRetrieveWorksheet(t *testing.T) {
	router, _ := setupSiteTest()

	rec := doJSON(t, router, http.MethodGet, "/api/worksheets/the-pencil/4", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var sheet struct {
		StorySlug string `json:"storySlug"`
		Grade     int    `json:"grade"`
		Sections  []struct {
			TemplateID   string `json:"templateId"`
			ActivityType string `json:"activityType"`
		} `json:"sections"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sheet))
	assert.Equal(t, "the-pencil", sheet.StorySlug)
	assert.Equal(t, 4, sheet.Grade)
	require.NotEmpty(t, sheet.Sections)
	assert.Equal(t, "sequencing", sheet.Sections[0].ActivityType)
}

func TestListWorksheetStories(t *testing.T) {
	router, _ := setupSiteTest()

	rec := doJSON(t, router, http.MethodGet, "/api/worksheets", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var list map[string][]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Contains(t, list["stories"], "the-pencil")
	assert.Contains(t, list["stories"], "whisper-lake")
}

func TestRetrieveWorksheet_BadGrade(t *testing.T) {
	router, _ := setupSiteTest()

	rec := doJSON(t, router, http.MethodGet, "/api/worksheets/the-pencil/9", nil, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRetrieveWorksheet_UnknownStory(t *testing.T) {
	router, _ := setupSiteTest()

	rec := doJSON(t, router, http.MethodGet, "/api/worksheets/no-such-story/4", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// --- Mocks ---

type fakeSnapshotRepository struct {
	snapshots map[string][]cart.CartItem
	intents   map[string]string
}

func newFakeSnapshotRepository() *fakeSnapshotRepository {
	return &fakeSnapshotRepository{
		snapshots: make(map[string][]cart.CartItem),
		intents:   make(map[string]string),
	}
}

func (f *fakeSnapshotRepository) Load(key string) ([]cart.CartItem, error) {
	items, ok := f.snapshots[key]
	if !ok {
		return nil, error_messages.ErrNotExists
	}
	return append([]cart.CartItem(nil), items...), nil
}

func (f *fakeSnapshotRepository) Save(key string, items []cart.CartItem) error {
	f.snapshots[key] = append([]cart.CartItem(nil), items...)
	return nil
}

func (f *fakeSnapshotRepository) Delete(key string) error {
	delete(f.snapshots, key)
	return nil
}

func (f *fakeSnapshotRepository) AttachPaymentIntent(key, paymentIntentID string) error {
	f.intents[paymentIntentID] = key
	return nil
}

func (f *fakeSnapshotRepository) KeyForPaymentIntent(paymentIntentID string) (string, error) {
	key, ok := f.intents[paymentIntentID]
	if !ok {
		return "", error_messages.ErrNotExists
	}
	return key, nil
}
