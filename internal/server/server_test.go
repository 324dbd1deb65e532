package server

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"marketplace/internal/config"
	market "marketplace/internal/marketService"
	"marketplace/internal/repository"
	"marketplace/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	utils.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func newTestRouter(ping func(context.Context) error) *gin.Engine {
	repos := repository.NewMemoryRepositories()
	return SetupRouter(market.NewServices(repos), ping)
}

func TestRequestIDMiddleware(t *testing.T) {
	t.Parallel()

	router := newTestRouter(func(context.Context) error { return nil })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, utils.ValidID(w.Header().Get(requestIDHeader)))

	incoming := utils.GenerateID()
	req := httptest.NewRequest(http.MethodGet, "/users/abc", nil)
	req.Header.Set(requestIDHeader, incoming)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, incoming, w.Header().Get(requestIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set(requestIDHeader, "not-a-uuid")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.NotEqual(t, "not-a-uuid", w.Header().Get(requestIDHeader))
}

func TestSetupRouter_Routes(t *testing.T) {
	t.Parallel()

	router := newTestRouter(func(context.Context) error { return errors.New("down") })

	routes := map[string]bool{}
	for _, r := range router.Routes() {
		routes[r.Method+" "+r.Path] = true
	}

	for _, resource := range []string{"/users", "/locations", "/adverts", "/bids"} {
		require.True(t, routes["GET "+resource], resource)
		require.True(t, routes["GET "+resource+"/:id"], resource)
		require.True(t, routes["POST "+resource], resource)
		require.True(t, routes["PUT "+resource], resource)
		require.True(t, routes["DELETE "+resource+"/:id"], resource)
	}
	for _, backRef := range []string{"/locations/:id/users", "/users/:id/adverts", "/users/:id/bids", "/adverts/:id/bids"} {
		require.True(t, routes["GET "+backRef], backRef)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestSetupRouter_CreateThenRead(t *testing.T) {
	t.Parallel()

	router := newTestRouter(func(context.Context) error { return nil })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/locations", strings.NewReader(`{"name":"Berlin","plz":10115}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/locations/1", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"id":1,"name":"Berlin","plz":10115}`, w.Body.String())
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	t.Parallel()

	cfg := config.ServerConfig{
		Port:            0,
		ReadTimeout:     time.Second,
		WriteTimeout:    time.Second,
		ShutdownTimeout: time.Second,
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Run(ctx, cfg, http.NotFoundHandler()) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after context cancellation")
	}
}
