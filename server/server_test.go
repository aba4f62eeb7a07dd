package server

import (
	"bytes"
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spektr-org/plotfit/engine"
)

// ============================================================================
// HTTP TESTS
// ============================================================================

func newTestServer(t *testing.T) (*Server, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zap.InfoLevel)
	cfg := DefaultConfig()
	cfg.ChartWidth, cfg.ChartHeight = 320, 240
	return New(cfg, zap.New(core)), logs
}

func do(t *testing.T, h http.Handler, method, target string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func plotQuery(title, x, y, kind string) string {
	v := url.Values{}
	v.Set("title", title)
	v.Set("x", x)
	v.Set("y", y)
	v.Set("kind", kind)
	return v.Encode()
}

func TestPlotAPI(t *testing.T) {
	s, _ := newTestServer(t)
	body, _ := json.Marshal(engine.PlotRequest{Title: "Sample", X: "1,2,3,4", Y: "2,4,6,8", Kind: "Scatter"})

	rec := do(t, s.Handler(), http.MethodPost, "/api/plot", body)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var result engine.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	require.True(t, result.Success)
	require.Equal(t, "y = 2.00x + 0.00 | R² = 1.0000", result.Reply)
	require.NotNil(t, result.ChartConfig)
	require.Len(t, result.ChartConfig.Series, 3)
}

func TestPlotAPIRejectsBadInput(t *testing.T) {
	s, logs := newTestServer(t)
	body, _ := json.Marshal(engine.PlotRequest{X: "1, a, 3", Y: "1,2,3"})

	rec := do(t, s.Handler(), http.MethodPost, "/api/plot", body)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var result engine.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	require.False(t, result.Success)
	require.Equal(t, []string{`Error: parse error: X value #2 "a": not a number`}, result.Errors)
	assert.Equal(t, 1, logs.FilterMessage("plot rejected").Len())
}

func TestPlotAPIRejectsMathFailure(t *testing.T) {
	s, _ := newTestServer(t)
	body, _ := json.Marshal(engine.PlotRequest{X: "1,2,3", Y: "5,5,5"})

	rec := do(t, s.Handler(), http.MethodPost, "/api/plot", body)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.Contains(t, rec.Body.String(), "zero variance")
}

func TestPlotAPIMalformedJSON(t *testing.T) {
	s, _ := newTestServer(t)
	rec := do(t, s.Handler(), http.MethodPost, "/api/plot", []byte("{not json"))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "malformed JSON body")
}

func TestPlotAPIBodyLimit(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxBodyBytes = 16
	s := New(cfg, nil)
	body, _ := json.Marshal(engine.PlotRequest{X: strings.Repeat("1,", 100) + "1", Y: "1"})

	rec := do(t, s.Handler(), http.MethodPost, "/api/plot", body)
	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestPlotAPIMethodNotAllowed(t *testing.T) {
	s, _ := newTestServer(t)
	rec := do(t, s.Handler(), http.MethodGet, "/api/plot", nil)
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestChartEndpoints(t *testing.T) {
	s, _ := newTestServer(t)
	q := plotQuery("Sample", "1,2,3,4,5", "2,3,5,4,6", "Bar")

	rec := do(t, s.Handler(), http.MethodGet, "/chart.png?"+q, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	require.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("\x89PNG")))

	rec = do(t, s.Handler(), http.MethodGet, "/chart.svg?"+q, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "image/svg+xml", rec.Header().Get("Content-Type"))
	require.Contains(t, rec.Body.String(), "<svg")
}

func TestChartSVGEscapesTitle(t *testing.T) {
	s, _ := newTestServer(t)
	q := plotQuery("</text><script>alert(1)</script><text>", "1,2,3,4", "2,4,6,8", "")

	rec := do(t, s.Handler(), http.MethodGet, "/chart.svg?"+q, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotContains(t, rec.Body.String(), "<script>")
	require.Contains(t, rec.Body.String(), "&lt;script&gt;alert(1)&lt;/script&gt;")
}

func TestPlotAPIScaledInput(t *testing.T) {
	s, _ := newTestServer(t)
	body, _ := json.Marshal(engine.PlotRequest{X: "1e-200,2e-200,3e-200", Y: "1,2,4"})

	rec := do(t, s.Handler(), http.MethodPost, "/api/plot", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var result engine.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	require.True(t, result.Success)
	require.InDelta(t, 27.0/28, result.Fit.RSquared, 1e-9)
}

func TestWriteJSONUnencodable(t *testing.T) {
	rec := httptest.NewRecorder()
	writeJSON(rec, http.StatusOK, map[string]float64{"r2": math.NaN()})
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Contains(t, rec.Body.String(), "Error: encoding response")

	rec = httptest.NewRecorder()
	writeJSON(rec, http.StatusCreated, map[string]int{"n": 1})
	require.Equal(t, http.StatusCreated, rec.Code)
	require.JSONEq(t, `{"n": 1}`, rec.Body.String())
}

func TestChartEndpointRejectsBadInput(t *testing.T) {
	s, _ := newTestServer(t)
	rec := do(t, s.Handler(), http.MethodGet, "/chart.png?"+plotQuery("", "1,2", "1,2,3", ""), nil)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.Contains(t, rec.Body.String(), "Error: parse error")
}

func TestIndexForm(t *testing.T) {
	s, _ := newTestServer(t)
	rec := do(t, s.Handler(), http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	page := rec.Body.String()
	require.Contains(t, page, "Graph Title:")
	require.Contains(t, page, "<option selected>Scatter</option>")
	require.NotContains(t, page, "Show regression info")
}

func TestIndexPlotsInline(t *testing.T) {
	s, _ := newTestServer(t)
	rec := do(t, s.Handler(), http.MethodGet, "/?"+plotQuery("<b>Run 1</b>", "1,2,3,4", "2,4,6,8", "Line"), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	page := rec.Body.String()
	// html/template writes '+' as &#43; in both attribute and text context.
	require.Contains(t, page, `src="data:image/svg&#43;xml;base64,`)
	require.Contains(t, page, "Show regression info")
	require.Contains(t, page, "y = 2.00x &#43; 0.00 | R² = 1.0000")
	require.Contains(t, page, "<option selected>Line</option>")
	require.Contains(t, page, "&lt;b&gt;Run 1&lt;/b&gt;")
	require.NotContains(t, page, "<b>Run 1</b>")
}

func TestIndexShowsError(t *testing.T) {
	s, _ := newTestServer(t)
	rec := do(t, s.Handler(), http.MethodGet, "/?"+plotQuery("", "1,2,2,3", "1,2,3,4", ""), nil)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	page := rec.Body.String()
	require.Contains(t, page, `class="error"`)
	require.Contains(t, page, "Error: spline error")
	require.NotContains(t, page, "data:image/svg")
}

func TestHealth(t *testing.T) {
	s, _ := newTestServer(t)
	rec := do(t, s.Handler(), http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", rec.Body.String())
}

func TestUnknownRoute(t *testing.T) {
	s, _ := newTestServer(t)
	rec := do(t, s.Handler(), http.MethodGet, "/nope", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRecoverPanics(t *testing.T) {
	s, logs := newTestServer(t)
	s.mux.HandleFunc("GET /boom", func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})
	h := s.Handler()

	rec := do(t, h, http.MethodGet, "/boom", nil)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, 1, logs.FilterMessage("💥 handler panic").Len())

	// Still serving.
	rec = do(t, h, http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRequestLogging(t *testing.T) {
	s, logs := newTestServer(t)
	do(t, s.Handler(), http.MethodGet, "/healthz", nil)

	entries := logs.FilterMessage("request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	require.Equal(t, "/healthz", fields["path"])
	require.EqualValues(t, http.StatusOK, fields["status"])
}

func TestListenAndServeShutsDown(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Addr = "127.0.0.1:0"
	cfg.ShutdownTimeout = time.Second
	s := New(cfg, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.ListenAndServe(ctx) }()

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
