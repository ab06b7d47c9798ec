package main

import (
	"github.com/citylib/frontdesk/internal/config"
	"github.com/citylib/frontdesk/internal/entrypoint"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	cfg := config.NewConfig()
	entrypoint.Run(cfg, Version)
}
