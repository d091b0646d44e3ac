package config

import (
	"EcommerceChatbot/internal/dataset"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, options ...ServerOption) *Server {
	t.Helper()
	logger, _ := logtest.NewNullLogger()

	options = append([]ServerOption{
		WithFiber(NewFiber(logger)),
		WithLogger(logger),
		WithMiddleware(),
	}, options...)

	server, err := NewServer(options...)
	require.NoError(t, err)

	server.RegisterHandler()
	server.mountHandlers()
	return server
}

func chat(t *testing.T, app *fiber.App, message string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"message":"`+message+`"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(body)
}

func TestNewServer_RequiresFiberAndLogger(t *testing.T) {
	_, err := NewServer()
	assert.Error(t, err)

	logger, _ := logtest.NewNullLogger()
	_, err = NewServer(WithFiber(NewFiber(logger)))
	assert.Error(t, err)

	_, err = NewServer(WithFiber(NewFiber(logger)), WithMiddleware())
	assert.Error(t, err)
}

func TestServer_HealthAndMetrics(t *testing.T) {
	server := newTestServer(t)

	resp, err := server.engine.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	_, _ = chat(t, server.engine, "banana")

	resp, err = server.engine.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "chat_queries_total")
}

func TestServer_AnswersWhileLoadingThenAfterLoad(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "orders.csv"), []byte("order_id,status\n8,Shipped\n"), 0o644))

	store := dataset.NewStore()
	server := newTestServer(t, WithDataset(store), WithDataSource(dataset.NewFileSource(dir)))

	code, body := chat(t, server.engine, "status of order 8")
	assert.Equal(t, fiber.StatusOK, code)
	assert.Contains(t, body, "order data is still loading")

	err := server.LoadDataset(context.Background())
	assert.Error(t, err)

	_, body = chat(t, server.engine, "status of order 8")
	assert.Contains(t, body, "The status for order ID 8 is: Shipped.")

	_, body = chat(t, server.engine, "what is the price of socks")
	assert.Contains(t, body, "product data is unavailable right now")
}

func TestServer_LoadDatasetWithoutSource(t *testing.T) {
	server := newTestServer(t)
	assert.Error(t, server.LoadDataset(context.Background()))
}

func TestServer_CORS(t *testing.T) {
	server := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/chat", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	resp, err := server.engine.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestNewDataSource(t *testing.T) {
	t.Setenv("DATA_SOURCE", "")
	t.Setenv("DATA_DIR", "")
	source, closeFn, err := NewDataSource()
	require.NoError(t, err)
	assert.Equal(t, "file", source.Name())
	assert.Equal(t, filepath.Join("..", "data", "orders.csv"), source.(*dataset.FileSource).Path(dataset.TableOrders))
	assert.NoError(t, closeFn())

	t.Setenv("DATA_SOURCE", "FILE")
	t.Setenv("DATA_DIR", "/srv/data")
	source, _, err = NewDataSource()
	require.NoError(t, err)
	assert.Equal(t, "/srv/data", source.(*dataset.FileSource).Dir)

	t.Setenv("DATA_SOURCE", "ftp")
	_, _, err = NewDataSource()
	assert.Error(t, err)
}

func TestCacheTTL(t *testing.T) {
	t.Setenv("CHAT_CACHE_TTL", "")
	assert.Equal(t, 10*time.Minute, CacheTTL())

	t.Setenv("CHAT_CACHE_TTL", "90s")
	assert.Equal(t, 90*time.Second, CacheTTL())

	t.Setenv("CHAT_CACHE_TTL", "soon")
	assert.Equal(t, 10*time.Minute, CacheTTL())
}
