package web

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"testing"
)

const (
	HeaderContentType   = "Content-Type"
	HeaderContentLength = "Content-Length"
	HeaderCacheControl  = "Cache-Control"

	MimeJSON = "application/json"
	MimeHTML = "text/html; charset=utf-8"
	MimeCSS  = "text/css; charset=utf-8"
	MimeText = "text/plain; charset=utf-8"

	CacheImmutable = "public, max-age=31536000, immutable"
)

// Send writes body with the given content type and status code.
func Send(w http.ResponseWriter, statusCode int, contentType string, body []byte) {
	w.Header().Set(HeaderContentType, contentType)
	w.Header().Set(HeaderContentLength, strconv.Itoa(len(body)))
	w.WriteHeader(statusCode)

	if _, err := w.Write(body); err != nil {
		slog.Error("Error writing response", "reason", err)
	}
}

// SendHTML writes an HTML document with the given status code.
func SendHTML(w http.ResponseWriter, statusCode int, body []byte) {
	Send(w, statusCode, MimeHTML, body)
}

func AssertContentType(t *testing.T, res *http.Response, want string) {
	t.Helper()

	got := res.Header.Get(HeaderContentType)
	if !strings.HasPrefix(got, want) {
		t.Errorf("res.Header.Get(%q) = %q, want: %q", HeaderContentType, got, want)
	}
}
