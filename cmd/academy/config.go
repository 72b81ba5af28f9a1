package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/ardanlabs/conf"
)

// Config is read from ACADEMY_* environment variables and --flags.
type Config struct {
	Addr          string `conf:"default::3000"`
	BaseURL       string `conf:"help:canonical URL override"`
	Env           string `conf:"default:development,help:development or production"`
	CatalogDB     string `conf:"help:SQLite catalog; empty serves the built-in courses"`
	SessionSecret string `conf:"noprint"`
	CookieSecure  bool   `conf:"default:false"`
	StaticDir     string `conf:"default:public"`
	LogLevel      string `conf:"default:info"`
	LogFormat     string `conf:"default:text,help:text or json"`

	PageRevalidate   time.Duration `conf:"default:1h"`
	PreviewMaxAge    time.Duration `conf:"default:168h"`
	PreviewStale     time.Duration `conf:"default:24h"`
	PreviewRateLimit float64       `conf:"default:5"`
	WishlistLimit    int           `conf:"default:30"`
	ShutdownTimeout  time.Duration `conf:"default:10s"`
}

// errHelp signals that usage was printed and the process should exit cleanly.
var errHelp = errors.New("help requested")

func readConfig() (*Config, error) {
	var cfg Config
	help, err := conf.ParseOSArgs("ACADEMY", &cfg)
	if err != nil {
		if errors.Is(err, conf.ErrHelpWanted) {
			fmt.Println(help)
			return nil, errHelp
		}
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}
