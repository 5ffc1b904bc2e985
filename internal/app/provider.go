package app

import (
	"github.com/maxburleigh/portfolio/internal/font"
	"github.com/maxburleigh/portfolio/internal/platform/router"
)

type Provider struct {
	Router router.Router
	Fonts  *font.Resolver
}

func newProvider() *Provider {
	return &Provider{
		Router: router.NewGoexpressRouter(),
		Fonts:  font.NewResolver(font.DefaultCatalog),
	}
}
