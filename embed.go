package academy

import "embed"

// EmbeddedAssets holds the stylesheet and favicon served with every page.
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
