package asset_test

import (
	"errors"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/maxburleigh/portfolio/internal/asset"
)

func TestStylesheets(t *testing.T) {
	t.Parallel()

	got, err := asset.Stylesheets("globals.css", "phone-mockup.css", "project-card.css")
	if err != nil {
		t.Fatalf("asset.Stylesheets() returned unexpected error: %v", err)
	}

	want := []string{"/static/globals.css", "/static/phone-mockup.css", "/static/project-card.css"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("asset.Stylesheets() mismatch (-want +got):\n%s", diff)
	}

	if _, err := asset.Stylesheets("missing.css"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("asset.Stylesheets(%q) error = %v, want: %v", "missing.css", err, fs.ErrNotExist)
	}
}

func TestHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		code int
	}{
		{"/static/globals.css", http.StatusOK},
		{"/static/project-card.css", http.StatusOK},
		{"/static/missing.css", http.StatusNotFound},
		{"/static/", http.StatusNotFound},
		{"/static/css/", http.StatusNotFound},
	}
	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, tc.path, http.NoBody)
			rec := httptest.NewRecorder()
			asset.Handler().ServeHTTP(rec, req)

			if rec.Code != tc.code {
				t.Fatalf("rec.Code = %d, want: %d", rec.Code, tc.code)
			}

			if tc.code == http.StatusNotFound && strings.Contains(rec.Body.String(), "globals.css") {
				t.Errorf("rec.Body = %q, want no file listing", rec.Body.String())
			}

			if tc.code == http.StatusOK && !strings.HasPrefix(rec.Header().Get("Content-Type"), "text/css") {
				t.Errorf("Content-Type = %q, want text/css", rec.Header().Get("Content-Type"))
			}
		})
	}
}
