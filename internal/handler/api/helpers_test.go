//go:build unit

package api_test

import (
	"bytes"
	"encoding/json"
	nethttptest "net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func performWithHeaders(t *testing.T, router *gin.Engine, method, path string, body any, headers map[string]string) *nethttptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := nethttptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := nethttptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func performRaw(t *testing.T, router *gin.Engine, method, path string, body []byte, headers map[string]string) *nethttptest.ResponseRecorder {
	t.Helper()

	req := nethttptest.NewRequest(method, path, bytes.NewReader(body))
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := nethttptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
