package bootstrap

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoSim-25-26J-441/leadboard-backend/config"
	"github.com/GoSim-25-26J-441/leadboard-backend/internal/board/repository"
	"github.com/GoSim-25-26J-441/leadboard-backend/internal/board/service"
	"github.com/GoSim-25-26J-441/leadboard-backend/internal/events"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mem := repository.NewMemory()
	return BuildRouter(RouterDeps{
		ServiceName: "leadboard",
		Version:     "test",
		Board:       service.NewBoardService(mem.Columns(), mem.Leads(), nil),
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestRouter_EndToEndScenario(t *testing.T) {
	r := newTestRouter(t)

	rr := do(r, http.MethodPost, "/column", `{"name":"Lead Signals"}`)
	require.Equal(t, http.StatusCreated, rr.Code)
	assert.JSONEq(t, `{"id":1,"name":"Lead Signals","leads":[]}`, rr.Body.String())

	rr = do(r, http.MethodPost, "/lead", `{"company_name":"Acme","column_id":1}`)
	require.Equal(t, http.StatusCreated, rr.Code)
	assert.JSONEq(t, `{"id":1,"company_name":"Acme","description":"","lead_owner":"","column_id":1}`, rr.Body.String())

	rr = do(r, http.MethodGet, "/column/1", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t,
		`{"id":1,"name":"Lead Signals","leads":[{"id":1,"company_name":"Acme","description":"","lead_owner":"","column_id":1}]}`,
		rr.Body.String())
}

func TestRouter_CORSOnEveryResponse(t *testing.T) {
	r := newTestRouter(t)

	for _, rr := range []*httptest.ResponseRecorder{
		do(r, http.MethodGet, "/columns", ""),
		do(r, http.MethodGet, "/column/9", ""),
		do(r, http.MethodGet, "/no/such/route", ""),
		do(r, http.MethodPost, "/column", `{}`),
	} {
		assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "GET,PUT,POST,DELETE,OPTIONS", rr.Header().Get("Access-Control-Allow-Methods"))
		assert.Equal(t, "Content-Type,Authorization", rr.Header().Get("Access-Control-Allow-Headers"))
		assert.NotEmpty(t, rr.Header().Get("X-Request-Id"))
	}
}

func TestRouter_UnknownRouteIsNotFound(t *testing.T) {
	r := newTestRouter(t)

	rr := do(r, http.MethodGet, "/boards", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"Not Found"}`, rr.Body.String())
}

func TestRouter_Health(t *testing.T) {
	r := newTestRouter(t)

	rr := do(r, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"service":"leadboard"`)
}

func TestOpenPublisher_Disabled(t *testing.T) {
	pub, closeFn, err := OpenPublisher(context.Background(), &config.RedisConfig{})
	require.NoError(t, err)
	assert.IsType(t, events.Nop{}, pub)
	assert.NoError(t, closeFn())
}
