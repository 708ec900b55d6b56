package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	handler := Logger(&logger)(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		zerolog.Ctx(req.Context()).Info().Msg("inside handler")
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTeapot, rec.Code)

	out := buf.String()
	assert.Contains(t, out, `"method":"GET"`)
	assert.Contains(t, out, `"path":"/api/v1/reports"`)
	assert.Contains(t, out, "inside handler", "handlers get the request logger via context")
	assert.Contains(t, out, `"status":418`)
	assert.Contains(t, out, "request served")
}
