package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"nutrifind/config"
)

func newTestFDC(baseURL string) *FDCService {
	cfg := &config.Config{FDCBaseURL: baseURL, FDCAPIKey: "test-key"}
	return NewFDCService(cfg, zap.NewNop())
}

const searchBody = `{
	"foods": [
		{
			"fdcId": 173944,
			"description": "Butter, salted",
			"brandOwner": "Some Dairy Co",
			"foodNutrients": [
				{"nutrientId": 1008, "nutrientName": "Energy", "nutrientNumber": "208", "unitName": "kcal", "value": 717},
				{"nutrientId": 1003, "nutrientName": "Protein", "nutrientNumber": "203", "unitName": "g", "value": 0.85}
			]
		},
		{"fdcId": 171287, "description": "Butter, whipped", "foodNutrients": []}
	]
}`

func TestSearchFoodsDecodesResponse(t *testing.T) {
	var gotQuery, gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("query")
		gotKey = r.URL.Query().Get("api_key")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(searchBody))
	}))
	defer srv.Close()

	svc := newTestFDC(srv.URL)
	items, err := svc.SearchFoods(context.Background(), "salted butter")
	require.NoError(t, err)

	assert.Equal(t, "salted butter", gotQuery)
	assert.Equal(t, "test-key", gotKey)

	require.Len(t, items, 2)
	assert.Equal(t, int64(173944), items[0].FdcID)
	assert.Equal(t, "Butter, salted", items[0].Description)
	require.Len(t, items[0].FoodNutrients, 2)
	assert.Equal(t, "Energy", items[0].FoodNutrients[0].NutrientName)
	assert.Equal(t, "208", items[0].FoodNutrients[0].NutrientNumber)
	assert.Equal(t, "kcal", items[0].FoodNutrients[0].UnitName)
	assert.Equal(t, 717.0, items[0].FoodNutrients[0].Value)
	assert.Equal(t, 0.85, items[0].FoodNutrients[1].Value)
	assert.Equal(t, int64(171287), items[1].FdcID)
}

// brandOwner stays empty even when the payload carries one.
func TestSearchFoodsBrandOwnerAlwaysEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(searchBody))
	}))
	defer srv.Close()

	items, err := newTestFDC(srv.URL).SearchFoods(context.Background(), "butter")
	require.NoError(t, err)
	for _, it := range items {
		assert.Empty(t, it.BrandOwner)
	}
}

func TestSearchFoodsAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := newTestFDC(srv.URL).SearchFoods(context.Background(), "butter")
	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.Contains(t, netErr.Error(), "429")
}

func TestSearchFoodsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	_, err := newTestFDC(srv.URL).SearchFoods(context.Background(), "butter")
	var netErr *NetworkError
	assert.ErrorAs(t, err, &netErr)
}

func TestSearchFoodsDecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"foods": [{`))
	}))
	defer srv.Close()

	_, err := newTestFDC(srv.URL).SearchFoods(context.Background(), "butter")
	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)

	var netErr *NetworkError
	assert.False(t, errors.As(err, &netErr))
}

func TestSearchFoodsEmptyResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"foods": []}`))
	}))
	defer srv.Close()

	items, err := newTestFDC(srv.URL).SearchFoods(context.Background(), "zzzzz")
	require.NoError(t, err)
	assert.Empty(t, items)
}
