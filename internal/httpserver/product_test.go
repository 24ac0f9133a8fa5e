package httpserver

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/h0pler/whs2nd-secureshoppingmall/internal/models"
	"github.com/h0pler/whs2nd-secureshoppingmall/internal/transport"
)

func TestGetProducts_Empty(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(http.MethodGet, "/products", nil)
	require.NoError(t, env.P.GetProducts(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var items []models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.NotNil(t, items)
	require.Empty(t, items)
}

func TestCreateProduct_AppearsInList(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(http.MethodPost, "/products", map[string]any{
		"name":          "Shirt",
		"category":      "Apparel",
		"price":         19.99,
		"thumbnail_url": "http://x/y.png",
	})
	require.NoError(t, env.P.CreateProduct(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp transport.MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "Product added successfully!", resp.Message)

	recList, cList := env.doJSONRequest(http.MethodGet, "/products", nil)
	require.NoError(t, env.P.GetProducts(cList))
	require.Equal(t, http.StatusOK, recList.Code)

	var items []models.Product
	require.NoError(t, json.Unmarshal(recList.Body.Bytes(), &items))
	require.Len(t, items, 1)
	require.Equal(t, "Shirt", items[0].Name)
	require.Equal(t, "Apparel", items[0].Category)
	require.Equal(t, 19.99, items[0].Price)
	require.Equal(t, "http://x/y.png", items[0].ThumbnailURL)
}

func TestCreateProduct_MissingFields(t *testing.T) {
	env := newTestEnv(t)

	_, c := env.doJSONRequest(http.MethodPost, "/products", map[string]any{
		"price": 10,
	})
	requireHTTPError(t, env.P.CreateProduct(c), http.StatusBadRequest)

	var count int64
	require.NoError(t, env.DB.Model(&models.Product{}).Count(&count).Error)
	require.Zero(t, count)
}
