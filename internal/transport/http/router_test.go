package http

import (
	"bytes"
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookcatalog/internal/bookstore"
	"bookcatalog/internal/catalog"
	"bookcatalog/internal/catalog/variants"
	"bookcatalog/internal/stockmanager"
	"bookcatalog/pkg/jwt"
)

func newTestRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	controller := variants.NewControllerT()
	require.NoError(t, controller.AddBooks([]catalog.NewBook{
		{ISBN: 3044560, Title: "Harry Potter and JUnit", Author: "JK Unit", Price: decimal.NewFromFloat(10.0), Copies: 5},
	}))

	store := bookstore.New(controller)
	manager := stockmanager.New(controller)
	tokens := jwt.NewManager("test-secret")

	router := NewRouter(store, manager, tokens)

	token, err := tokens.IssueOperatorToken(time.Hour)
	require.NoError(t, err)
	return router, token
}

func TestRouter_HealthCheck(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(nethttp.MethodGet, "/api/v1/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, nethttp.StatusOK, w.Code)
}

func TestRouter_GetBooks(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(nethttp.MethodGet, "/api/v1/books?isbns=3044560", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, nethttp.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body["success"].(bool))
}

func TestRouter_AdminRoutes_RequireOperatorToken(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(nethttp.MethodGet, "/api/v1/admin/books", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, nethttp.StatusUnauthorized, w.Code)
}

func TestRouter_AdminRoutes_AddBooks(t *testing.T) {
	router, token := newTestRouter(t)

	payload := []map[string]interface{}{
		{"isbn": 42, "title": "New Book", "author": "Someone", "price": "12.50", "copies": 3},
	}
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(nethttp.MethodPost, "/api/v1/admin/books", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, nethttp.StatusCreated, w.Code)
}

func TestRouter_Purchases(t *testing.T) {
	router, _ := newTestRouter(t)

	body, err := json.Marshal(map[string]interface{}{
		"lines": map[string]int{"3044560": 5},
	})
	require.NoError(t, err)

	req := httptest.NewRequest(nethttp.MethodPost, "/api/v1/purchases", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, nethttp.StatusOK, w.Code)
}
