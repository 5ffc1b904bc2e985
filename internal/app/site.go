package app

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/maxburleigh/portfolio/internal/asset"
	"github.com/maxburleigh/portfolio/internal/config"
	"github.com/maxburleigh/portfolio/internal/font"
	"github.com/maxburleigh/portfolio/internal/layout"
	"github.com/maxburleigh/portfolio/internal/page"
)

func newPageHandler(cfg *config.Options, resolver *font.Resolver) (*page.Handler, error) {
	fonts, err := resolveFonts(cfg.Fonts, resolver)
	if err != nil {
		return nil, err
	}

	fontCSS, err := font.Stylesheet(fonts...)
	if err != nil {
		return nil, fmt.Errorf("build font stylesheet: %w", err)
	}

	sheets, err := asset.Stylesheets(cfg.Assets.Stylesheets...)
	if err != nil {
		return nil, fmt.Errorf("resolve stylesheets: %w", err)
	}

	shell, err := layout.NewShell(cfg.Metadata(), fonts, append([]string{fontsPath}, sheets...)...)
	if err != nil {
		return nil, fmt.Errorf("new shell: %w", err)
	}

	pages, err := page.Load(contentFS(cfg.Site.ContentDir))
	if err != nil {
		return nil, err
	}

	slog.Info("Site ready.",
		"html_class", shell.ClassName(),
		slog.Any("metadata", shell.Metadata()),
		slog.Int("pages", pages.Len()),
	)
	return page.NewHandler(pages, shell, fontCSS), nil
}

func resolveFonts(decls []config.FontOptions, resolver *font.Resolver) ([]*font.Font, error) {
	fonts := make([]*font.Font, 0, len(decls))
	for _, d := range decls {
		f, err := resolver.Resolve(font.Options{
			Family:   d.Family,
			Variable: d.Variable,
			Subsets:  d.Subsets,
			Weights:  d.Weights,
			Display:  d.Display,
		})
		if err != nil {
			return nil, fmt.Errorf("resolve fonts: %w", err)
		}
		slog.Debug("resolved font", "family", f.Family, "variable", f.Variable, "class", f.ClassName)
		fonts = append(fonts, f)
	}
	return fonts, nil
}

func contentFS(dir string) fs.FS {
	if dir == "" {
		return page.DefaultContent()
	}
	return os.DirFS(dir)
}
