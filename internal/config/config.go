package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/maxburleigh/portfolio/internal/layout"
	"github.com/maxburleigh/portfolio/internal/platform/validation"
)

const (
	EnvConfigFile = "CONFIG_FILE"
	EnvApp        = "ENV"
	EnvLogLevel   = "LOG_LEVEL"
	EnvPort       = "PORT"
	EnvContentDir = "CONTENT_DIR"

	DefaultConfigFile = "config.json"
)

var ErrInvalid = errors.New("invalid config")

type AppOptions struct {
	Env      string `json:"env,omitempty" validate:"required,oneof=development testing production"`
	LogLevel string `json:"log_level,omitempty" validate:"required"`
}

type ServerOptions struct {
	Port            int      `json:"port,omitempty" validate:"gte=1,lte=65535"`
	ReadTimeout     Duration `json:"read_timeout,omitempty"`
	WriteTimeout    Duration `json:"write_timeout,omitempty"`
	IdleTimeout     Duration `json:"idle_timeout,omitempty"`
	ShutdownTimeout Duration `json:"shutdown_timeout,omitempty"`
}

type SiteOptions struct {
	Title       string `json:"title,omitempty" validate:"required"`
	Description string `json:"description,omitempty" validate:"required"`
	ContentDir  string `json:"content_dir,omitempty"`
}

type FontOptions struct {
	Family   string   `json:"family,omitempty" validate:"required"`
	Variable string   `json:"variable,omitempty" validate:"required,startswith=--"`
	Subsets  []string `json:"subsets,omitempty" validate:"required,min=1"`
	Weights  []string `json:"weight,omitempty" validate:"omitempty,dive,numeric"`
	Display  string   `json:"display,omitempty" validate:"omitempty,oneof=auto block swap fallback optional"`
}

type AssetOptions struct {
	Stylesheets []string `json:"stylesheets,omitempty" validate:"dive,required"`
}

// Options is the decoded config file. Fonts holds exactly one declaration per
// class token of the root element.
type Options struct {
	App    *AppOptions    `json:"app,omitempty" validate:"required"`
	Server *ServerOptions `json:"server,omitempty" validate:"required"`
	Site   *SiteOptions   `json:"site,omitempty" validate:"required"`
	Fonts  []FontOptions  `json:"fonts,omitempty" validate:"required,len=4,dive"`
	Assets *AssetOptions  `json:"assets,omitempty" validate:"required"`
}

func (o *Options) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("app", o.App),
		slog.Any("server", o.Server),
		slog.Any("site", o.Site),
		slog.Int("fonts", len(o.Fonts)),
		slog.Any("assets", o.Assets),
	)
}

// Metadata returns the page metadata configured for the site.
func (o *Options) Metadata() layout.Metadata {
	return layout.Metadata{
		Title:       o.Site.Title,
		Description: o.Site.Description,
	}
}

// Default returns the configuration the site runs with when the config file
// leaves a value unset.
func Default() *Options {
	return &Options{
		App: &AppOptions{
			Env:      "development",
			LogLevel: "info",
		},
		Server: &ServerOptions{
			Port:            8888,
			ReadTimeout:     Seconds(5),
			WriteTimeout:    Seconds(10),
			IdleTimeout:     Seconds(60),
			ShutdownTimeout: Seconds(10),
		},
		Site: &SiteOptions{
			Title:       layout.DefaultTitle,
			Description: layout.DefaultDescription,
		},
		Fonts: []FontOptions{
			{Family: "Geist", Variable: "--font-geist-sans", Subsets: []string{"latin"}},
			{Family: "Geist Mono", Variable: "--font-geist-mono", Subsets: []string{"latin"}},
			{Family: "Manrope", Variable: "--font-manrope", Subsets: []string{"latin"}, Weights: []string{"400", "600", "700"}},
			{Family: "Space Grotesk", Variable: "--font-space-grotesk", Subsets: []string{"latin"}, Weights: []string{"400", "700"}},
		},
		Assets: &AssetOptions{
			Stylesheets: []string{"globals.css", "phone-mockup.css", "project-card.css"},
		},
	}
}

// Load reads cfgFile, fills unset values from Default, applies environment
// overrides and validates the result.
func Load(cfgFile string, v validation.Validator) (*Options, error) {
	slog.Info("Loading config...")
	opts, err := parseCfgFile(cfgFile)
	if err != nil {
		return nil, err
	}

	applyDefaults(opts)

	if err := overrideWithEnv(opts); err != nil {
		return nil, err
	}

	if err := Validate(opts, v); err != nil {
		return nil, err
	}

	slog.Info("Config loaded.", "config_file", cfgFile, slog.Any("config", opts))
	return opts, nil
}

// Validate reports every invalid field in a single error wrapping ErrInvalid.
func Validate(opts *Options, v validation.Validator) error {
	errs := v.ValidateStruct(opts)
	if len(errs) == 0 {
		return nil
	}

	fields := make([]string, 0, len(errs))
	for field, msg := range errs {
		fields = append(fields, field+": "+msg)
	}
	sort.Strings(fields)

	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(fields, "; "))
}

func parseCfgFile(cfgFile string) (*Options, error) {
	cfgFile = filepath.Clean(cfgFile)
	configFile, err := os.ReadFile(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", cfgFile, err)
	}

	var opts Options
	if err := json.Unmarshal(configFile, &opts); err != nil {
		return nil, fmt.Errorf("decode json config %s: %w", cfgFile, err)
	}

	return &opts, nil
}

func applyDefaults(opts *Options) {
	def := Default()

	if opts.App == nil {
		opts.App = def.App
	}
	if opts.App.Env == "" {
		opts.App.Env = def.App.Env
	}
	if opts.App.LogLevel == "" {
		opts.App.LogLevel = def.App.LogLevel
	}

	if opts.Server == nil {
		opts.Server = def.Server
	}
	srv := opts.Server
	srv.ReadTimeout = srv.ReadTimeout.orDefault(def.Server.ReadTimeout)
	srv.WriteTimeout = srv.WriteTimeout.orDefault(def.Server.WriteTimeout)
	srv.IdleTimeout = srv.IdleTimeout.orDefault(def.Server.IdleTimeout)
	srv.ShutdownTimeout = srv.ShutdownTimeout.orDefault(def.Server.ShutdownTimeout)
	if opts.Server.Port == 0 {
		opts.Server.Port = def.Server.Port
	}

	if opts.Site == nil {
		opts.Site = def.Site
	}
	if opts.Site.Title == "" {
		opts.Site.Title = def.Site.Title
	}
	if opts.Site.Description == "" {
		opts.Site.Description = def.Site.Description
	}

	if len(opts.Fonts) == 0 {
		opts.Fonts = def.Fonts
	}

	if opts.Assets == nil {
		opts.Assets = def.Assets
	}
}

func overrideWithEnv(opts *Options) error {
	if appEnv, ok := os.LookupEnv(EnvApp); ok {
		opts.App.Env = appEnv
	}

	if level, ok := os.LookupEnv(EnvLogLevel); ok {
		opts.App.LogLevel = level
	}

	if dir, ok := os.LookupEnv(EnvContentDir); ok {
		opts.Site.ContentDir = dir
	}

	if portStr, ok := os.LookupEnv(EnvPort); ok {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return fmt.Errorf("parse %s %q: %w", EnvPort, portStr, err)
		}
		opts.Server.Port = port
	}
	return nil
}
