package app

import (
	"github.com/maxburleigh/portfolio/internal/asset"
	"github.com/maxburleigh/portfolio/internal/middleware"
	"github.com/maxburleigh/portfolio/internal/page"
	"github.com/maxburleigh/portfolio/internal/platform/router"
)

const (
	fontsPath    = "/fonts.css"
	metadataPath = "/metadata"
)

func mountPageRoutes(r router.Router, handler *page.Handler) {
	r.Get(asset.Prefix, asset.Handler().ServeHTTP)
	r.Get(fontsPath, handler.ServeFonts)

	r.Group("/api", func(gr router.Router) {
		gr.Get(metadataPath, handler.ServeMetadata)
		gr.Options(metadataPath, handler.ServeMetadata)
	}, middleware.CORS)

	r.Get("/", handler.ServePage)
}
