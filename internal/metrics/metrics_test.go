package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecorder_NilSafe(t *testing.T) {
	var r *Recorder

	assert.NotPanics(t, func() {
		r.Broadcast()
		r.Operation("load_all", "ok")
		r.ObserveStore("list_alerts", time.Millisecond)
		r.SetMirrorSize("alerts", 3)
	})
}

func TestRecorder_Counts(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := New(reg, "test")

	r.Broadcast()
	r.Broadcast()
	r.Operation("resolve_alert", "ok")
	r.SetMirrorSize("alerts", 4)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.broadcasts))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.operations.WithLabelValues("resolve_alert", "ok")))
	assert.Equal(t, 4.0, testutil.ToFloat64(r.mirrorSize.WithLabelValues("alerts")))
}

func TestGinMiddleware_RecordsRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	reg := prometheus.NewRegistry()
	r := New(reg, "test")

	router := gin.New()
	router.Use(r.GinMiddleware())
	router.GET("/items/:id", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/metrics", gin.WrapH(Handler(reg)))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/items/42", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, 1.0, testutil.ToFloat64(r.httpRequests.WithLabelValues("GET", "/items/:id", "200")))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, w.Body.String(), "test_http_requests_total")
}
