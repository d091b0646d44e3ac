package chatHandler

import (
	"EcommerceChatbot/internal/api/chat"
	chatRepository "EcommerceChatbot/internal/api/chat/repository"
	chatService "EcommerceChatbot/internal/api/chat/service"
	"EcommerceChatbot/internal/dataset"
	"EcommerceChatbot/internal/entity"
	"EcommerceChatbot/internal/middleware"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gorilla/websocket"
	jsoniter "github.com/json-iterator/go"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	logger, _ := logtest.NewNullLogger()

	store := dataset.NewStore()
	require.NoError(t, store.Orders.Publish([]entity.Order{{OrderID: "8", Status: "Shipped"}}))
	require.NoError(t, store.Products.Publish([]entity.Product{{ID: "1", Name: "Classic T-Shirt", RetailPrice: "19.5"}}))
	store.MarkLoaded("01HANDLERTEST")

	repo := chatRepository.New(store, logger)
	svc := chatService.NewChatService(logger, repo, nil, 0)
	mw := middleware.New(logger)

	app := fiber.New()
	app.Use(mw.NewRequestIDMiddleware())
	New(logger, validator.New(), mw, svc).Start(app.Group("/api"))
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) (int, []byte) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)

	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, out
}

func TestChat(t *testing.T) {
	app := newTestApp(t)

	code, body := postJSON(t, app, "/api/chat", `{"message":"What is the price of classic t-shirt?"}`)
	require.Equal(t, fiber.StatusOK, code)

	var resp chat.ChatResponse
	require.NoError(t, jsoniter.Unmarshal(body, &resp))
	assert.Equal(t, `The price of "Classic T-Shirt" is $19.50.`, resp.Response)
}

func TestChat_Validation(t *testing.T) {
	app := newTestApp(t)

	code, body := postJSON(t, app, "/api/chat", `{"message":""}`)
	assert.Equal(t, fiber.StatusBadRequest, code)
	assert.Contains(t, string(body), "VALIDATION_ERROR")

	code, _ = postJSON(t, app, "/api/chat", `{"message":`)
	assert.Equal(t, fiber.StatusBadRequest, code)

	code, _ = postJSON(t, app, "/api/chat", `{"message":"`+strings.Repeat("x", 1001)+`"}`)
	assert.Equal(t, fiber.StatusBadRequest, code)

	code, body = postJSON(t, app, "/api/chat", `{"message":"   "}`)
	assert.Equal(t, fiber.StatusBadRequest, code)
	assert.Contains(t, string(body), "EMPTY_MESSAGE")
}

func TestClassify(t *testing.T) {
	app := newTestApp(t)

	code, body := postJSON(t, app, "/api/chat/classify", `{"message":"top 3 selling products"}`)
	require.Equal(t, fiber.StatusOK, code)

	var resp chat.ClassifyResponse
	require.NoError(t, jsoniter.Unmarshal(body, &resp))
	assert.Equal(t, chat.ClassifyResponse{Intent: "top_selling", Count: 3, Matched: true}, resp)
}

func TestStatus(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/chat/status", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var status chat.StatusResponse
	body, _ := io.ReadAll(resp.Body)
	require.NoError(t, jsoniter.Unmarshal(body, &status))
	assert.True(t, status.Ready)
	assert.Equal(t, "01HANDLERTEST", status.Generation)
	assert.Len(t, status.Tables, 6)
}

func TestWebSocket_RequiresUpgrade(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/chat/ws", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUpgradeRequired, resp.StatusCode)
}

func TestWebSocket_Chat(t *testing.T) {
	app := newTestApp(t)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = app.Listener(ln) }()
	t.Cleanup(func() { _ = app.Shutdown() })

	conn, _, err := websocket.DefaultDialer.Dial("ws://"+ln.Addr().String()+"/api/chat/ws", nil)
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("status of order 8")))
	var reply chat.ChatResponse
	require.NoError(t, conn.ReadJSON(&reply))
	assert.Equal(t, "The status for order ID 8 is: Shipped.", reply.Response)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("banana")))
	require.NoError(t, conn.ReadJSON(&reply))
	assert.True(t, strings.HasPrefix(reply.Response, "I'm sorry, I don't understand."))

	require.NoError(t, conn.WriteMessage(websocket.BinaryMessage, []byte{0x01}))
	var failure map[string]string
	require.NoError(t, conn.ReadJSON(&failure))
	assert.Equal(t, chat.ErrUnsupportedFrame.Error(), failure["error"])
}
