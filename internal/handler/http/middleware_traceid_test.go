package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appforge/console-server/internal/logger"
)

func TestWithTraceID(t *testing.T) {
	h := &Handler{logger: logger.Nop()}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	middleware := h.withTraceID(next)

	t.Run("incoming trace id is reused", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set(traceIDHeader, "trace-from-gateway")
		rr := httptest.NewRecorder()
		middleware.ServeHTTP(rr, req)

		assert.Equal(t, "trace-from-gateway", rr.Header().Get(traceIDHeader))
	})

	t.Run("absent trace id gets generated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		rr := httptest.NewRecorder()
		middleware.ServeHTTP(rr, req)

		generated := rr.Header().Get(traceIDHeader)
		require.NotEmpty(t, generated)
		_, err := uuid.Parse(generated)
		assert.NoError(t, err, "generated trace id must be a uuid")
	})
}
