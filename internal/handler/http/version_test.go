package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/appforge/console-server/internal/logger"
	"github.com/appforge/console-server/internal/service"
)

func TestGetServerVersion(t *testing.T) {
	h := &Handler{
		version:  "v1.2.3",
		logger:   logger.Nop(),
		services: &service.Services{},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	rr := httptest.NewRecorder()
	h.getServerVersion(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "v1.2.3", rr.Body.String())
	assert.Equal(t, "text/plain", rr.Header().Get("Content-Type"))
}
