package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/maxburleigh/portfolio/internal/config"
	"github.com/maxburleigh/portfolio/internal/layout"
	"github.com/maxburleigh/portfolio/internal/platform/validation"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

// fontsJSON returns a config declaring the given fonts followed by the
// Geist Mono, Manrope and Space Grotesk defaults.
func fontsJSON(decls ...string) string {
	decls = append(decls,
		`{"family": "Geist Mono", "variable": "--font-geist-mono", "subsets": ["latin"]}`,
		`{"family": "Manrope", "variable": "--font-manrope", "subsets": ["latin"]}`,
		`{"family": "Space Grotesk", "variable": "--font-space-grotesk", "subsets": ["latin"]}`,
	)
	return `{"fonts": [` + strings.Join(decls, ",") + `]}`
}

func TestLoad(t *testing.T) {
	const cfgJSON = `{
		"app": {"env": "production", "log_level": "warn"},
		"server": {"port": 3000, "read_timeout": "2s"},
		"site": {"title": "Portfolio", "description": "Projects and contact."},
		"fonts": [
			{"family": "Geist", "variable": "--font-geist-sans", "subsets": ["latin"]},
			{"family": "Geist Mono", "variable": "--font-geist-mono", "subsets": ["latin"]},
			{"family": "Manrope", "variable": "--font-manrope", "subsets": ["latin"], "weight": ["400", "700"]},
			{"family": "Space Grotesk", "variable": "--font-space-grotesk", "subsets": ["latin"], "display": "optional"}
		]
	}`

	opts, err := config.Load(writeConfig(t, cfgJSON), validation.NewGoPlaygroundValidator())
	if err != nil {
		t.Fatalf("config.Load() returned unexpected error: %v", err)
	}

	if opts.App.Env != "production" || opts.App.LogLevel != "warn" {
		t.Errorf("opts.App = %+v, want env production and log level warn", opts.App)
	}

	if opts.Server.Port != 3000 {
		t.Errorf("opts.Server.Port = %d, want: %d", opts.Server.Port, 3000)
	}

	if got, want := opts.Server.ReadTimeout.Duration, 2*time.Second; got != want {
		t.Errorf("opts.Server.ReadTimeout = %v, want: %v", got, want)
	}

	if got, want := opts.Server.ShutdownTimeout.Duration, 10*time.Second; got != want {
		t.Errorf("opts.Server.ShutdownTimeout = %v, want default: %v", got, want)
	}

	wantFonts := []config.FontOptions{
		{Family: "Geist", Variable: "--font-geist-sans", Subsets: []string{"latin"}},
		{Family: "Geist Mono", Variable: "--font-geist-mono", Subsets: []string{"latin"}},
		{Family: "Manrope", Variable: "--font-manrope", Subsets: []string{"latin"}, Weights: []string{"400", "700"}},
		{Family: "Space Grotesk", Variable: "--font-space-grotesk", Subsets: []string{"latin"}, Display: "optional"},
	}
	if diff := cmp.Diff(wantFonts, opts.Fonts); diff != "" {
		t.Errorf("opts.Fonts mismatch (-want +got):\n%s", diff)
	}

	wantMeta := layout.Metadata{Title: "Portfolio", Description: "Projects and contact."}
	if got := opts.Metadata(); got != wantMeta {
		t.Errorf("opts.Metadata() = %+v, want: %+v", got, wantMeta)
	}

	if diff := cmp.Diff(config.Default().Assets, opts.Assets); diff != "" {
		t.Errorf("opts.Assets mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_Defaults(t *testing.T) {
	opts, err := config.Load(writeConfig(t, `{}`), validation.NewGoPlaygroundValidator())
	if err != nil {
		t.Fatalf("config.Load() returned unexpected error: %v", err)
	}

	def := config.Default()
	if diff := cmp.Diff(def.Fonts, opts.Fonts); diff != "" {
		t.Errorf("opts.Fonts mismatch (-want +got):\n%s", diff)
	}

	if got, want := opts.Metadata(), layout.DefaultMetadata(); got != want {
		t.Errorf("opts.Metadata() = %+v, want: %+v", got, want)
	}

	if opts.Server.Port != def.Server.Port {
		t.Errorf("opts.Server.Port = %d, want: %d", opts.Server.Port, def.Server.Port)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv(config.EnvPort, "9090")
	t.Setenv(config.EnvApp, "testing")
	t.Setenv(config.EnvLogLevel, "debug")
	t.Setenv(config.EnvContentDir, "/srv/pages")

	opts, err := config.Load(writeConfig(t, `{"server": {"port": 3000}}`), validation.NewGoPlaygroundValidator())
	if err != nil {
		t.Fatalf("config.Load() returned unexpected error: %v", err)
	}

	if opts.Server.Port != 9090 {
		t.Errorf("opts.Server.Port = %d, want: %d", opts.Server.Port, 9090)
	}
	if opts.App.Env != "testing" {
		t.Errorf("opts.App.Env = %q, want: %q", opts.App.Env, "testing")
	}
	if opts.App.LogLevel != "debug" {
		t.Errorf("opts.App.LogLevel = %q, want: %q", opts.App.LogLevel, "debug")
	}
	if opts.Site.ContentDir != "/srv/pages" {
		t.Errorf("opts.Site.ContentDir = %q, want: %q", opts.Site.ContentDir, "/srv/pages")
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		env     map[string]string
		invalid bool
		wantMsg string
	}{
		{"Malformed JSON", `{"server":`, nil, false, "decode json config"},
		{"Port out of range", `{"server": {"port": 70000}}`, nil, true, "server.port"},
		{"Unknown environment", `{"app": {"env": "staging"}}`, nil, true, "app.env"},
		{"Font variable without dashes", fontsJSON(`{"family": "Geist", "variable": "geist", "subsets": ["latin"]}`), nil, true, "fonts[0].variable"},
		{"Font weight is not numeric", fontsJSON(`{"family": "Manrope", "variable": "--font-manrope", "subsets": ["latin"], "weight": ["bold"]}`), nil, true, "fonts[0].weight[0]"},
		{"Single font", `{"fonts": [{"family": "Geist", "variable": "--font-geist-sans", "subsets": ["latin"]}]}`, nil, true, "fonts: fonts must have exactly 4 items"},
		{"Five fonts", fontsJSON(`{"family": "Geist", "variable": "--font-extra", "subsets": ["latin"]}`, `{"family": "Geist", "variable": "--font-more", "subsets": ["latin"]}`), nil, true, "fonts: fonts must have exactly 4 items"},
		{"Port env is not a number", `{}`, map[string]string{config.EnvPort: "http"}, false, "parse PORT"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			_, err := config.Load(writeConfig(t, tc.content), validation.NewGoPlaygroundValidator())
			if err == nil {
				t.Fatal("config.Load() returned nil error, want an error")
			}

			if got := errors.Is(err, config.ErrInvalid); got != tc.invalid {
				t.Errorf("errors.Is(err, config.ErrInvalid) = %t, want: %t (err: %v)", got, tc.invalid, err)
			}

			if !strings.Contains(err.Error(), tc.wantMsg) {
				t.Errorf("err = %q, want it to mention %q", err, tc.wantMsg)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.json"), validation.NewGoPlaygroundValidator())
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("config.Load() error = %v, want: %v", err, os.ErrNotExist)
	}
}

func TestValidate_FontCount(t *testing.T) {
	t.Parallel()

	v := validation.NewGoPlaygroundValidator()
	for _, n := range []int{0, 1, 3, 5} {
		opts := config.Default()
		opts.Fonts = make([]config.FontOptions, n)
		for i := range opts.Fonts {
			opts.Fonts[i] = config.Default().Fonts[i%4]
		}

		err := config.Validate(opts, v)
		if !errors.Is(err, config.ErrInvalid) {
			t.Errorf("config.Validate() with %d fonts error = %v, want: %v", n, err, config.ErrInvalid)
		}
	}

	if err := config.Validate(config.Default(), v); err != nil {
		t.Errorf("config.Validate(config.Default()) returned unexpected error: %v", err)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		errs    map[string]string
		wantErr string
	}{
		{"Valid options", nil, ""},
		{"Fields are reported in order", map[string]string{
			"site.title":  "title is required",
			"server.port": "port must be greater than or equal to 1",
		}, "invalid config: server.port: port must be greater than or equal to 1; site.title: title is required"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			v := &validation.StubValidator{
				ValidateStructFunc: func(any) map[string]string {
					return tc.errs
				},
			}

			err := config.Validate(config.Default(), v)
			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("config.Validate() returned unexpected error: %v", err)
				}
				return
			}

			if err == nil || err.Error() != tc.wantErr {
				t.Errorf("config.Validate() error = %v, want: %q", err, tc.wantErr)
			}
		})
	}
}
