package middleware

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// decompressBytes распаковывает данные gzip
func decompressBytes(t *testing.T, data []byte) string {
	t.Helper()

	reader, err := gzip.NewReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer reader.Close()

	result, err := io.ReadAll(reader)
	require.NoError(t, err)
	return string(result)
}

func TestGzip_CompressResponse(t *testing.T) {
	tests := []struct {
		name           string
		contentType    string
		status         int
		acceptEncoding string
		body           string
		shouldCompress bool
	}{
		{
			name:           "compress JSON response",
			contentType:    "application/json",
			status:         http.StatusOK,
			acceptEncoding: "gzip",
			body:           `[{"profile_id":"13c8bb1e-f7d4-4823-8185-a36b951f27ed","slug":"1RSSdM2mtIvPZGRy"}]`,
			shouldCompress: true,
		},
		{
			name:           "compress JSON with charset",
			contentType:    "application/json; charset=utf-8",
			status:         http.StatusOK,
			acceptEncoding: "gzip, deflate",
			body:           `{"slug":"1RSSdM2mtIvPZGRy"}`,
			shouldCompress: true,
		},
		{
			name:           "client without gzip support",
			contentType:    "application/json",
			status:         http.StatusOK,
			acceptEncoding: "",
			body:           `{"slug":"1RSSdM2mtIvPZGRy"}`,
			shouldCompress: false,
		},
		{
			name:           "plain text is not compressed",
			contentType:    "text/plain",
			status:         http.StatusOK,
			acceptEncoding: "gzip",
			body:           "Invalid token",
			shouldCompress: false,
		},
		{
			name:           "error response is not compressed",
			contentType:    "application/json",
			status:         http.StatusNotFound,
			acceptEncoding: "gzip",
			body:           `{"error":"profile not found"}`,
			shouldCompress: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", tt.contentType)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})
			wrapped := Gzip(zap.NewNop())(handler)

			req := httptest.NewRequest(http.MethodGet, "/api/admin/profile-links", nil)
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			w := httptest.NewRecorder()

			// Act
			wrapped.ServeHTTP(w, req)

			// Assert
			assert.Equal(t, tt.status, w.Code)
			if tt.shouldCompress {
				assert.Equal(t, "gzip", w.Header().Get("Content-Encoding"))
				assert.Equal(t, tt.body, decompressBytes(t, w.Body.Bytes()))
				return
			}
			assert.Empty(t, w.Header().Get("Content-Encoding"))
			assert.Equal(t, tt.body, w.Body.String())
		})
	}
}

func TestGzip_ImplicitStatus(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	})
	wrapped := Gzip(zap.NewNop())(handler)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	w := httptest.NewRecorder()

	wrapped.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "gzip", w.Header().Get("Content-Encoding"))
	assert.Equal(t, `[]`, decompressBytes(t, w.Body.Bytes()))
}

func TestShouldCompress(t *testing.T) {
	tests := []struct {
		contentType string
		want        bool
	}{
		{contentType: "application/json", want: true},
		{contentType: "Application/JSON; charset=utf-8", want: true},
		{contentType: " application/json ", want: true},
		{contentType: "text/html; charset=utf-8", want: false},
		{contentType: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.contentType, func(t *testing.T) {
			assert.Equal(t, tt.want, shouldCompress(tt.contentType))
		})
	}
}
