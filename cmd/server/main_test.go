package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/segyhp/finance-planner/internal/config"
	"github.com/segyhp/finance-planner/internal/handler"
	"github.com/segyhp/finance-planner/internal/mocks"
)

func TestAllowedOrigins(t *testing.T) {
	assert.Equal(t, []string{"*"}, allowedOrigins(""))
	assert.Equal(t, []string{"*"}, allowedOrigins(" , "))
	assert.Equal(t,
		[]string{"http://localhost:3000", "https://planner.example.com"},
		allowedOrigins("http://localhost:3000, https://planner.example.com"),
	)
}

func TestSetupRoutes(t *testing.T) {
	cfg := &config.Config{Server: config.ServerConfig{CORSOrigins: "http://localhost:3000"}}
	router := setupRoutes(cfg,
		handler.NewPlannerHandler(mocks.NewMockPlannerService()),
		handler.NewHealthHandler(nil, 0),
	)

	t.Run("health", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("preflight allows the user header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/v1/scenarios", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		req.Header.Set("Access-Control-Request-Headers", handler.UserIDHeader)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("budget review is routed", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/budgets/review", strings.NewReader(`{"month":"bad"}`)))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown route", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/loans", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
