package config

import "flag"

var (
	flagConfig   = flag.String("config", "", "Path to config file")
	flagDebug    = flag.Bool("debug", false, "Enable debug logging")
	flagTag      = flag.String("navmesh-tag", "", "Node name tag marking navmesh sources")
	flagCacheDir = flag.String("cache-dir", "", "Directory for baked navmesh caches")
	flagNoCache  = flag.Bool("no-cache", false, "Disable writing baked navmesh caches")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagTag != "" {
		cfg.Nav.Tag = *flagTag
	}
	if *flagCacheDir != "" {
		cfg.Nav.CacheDir = *flagCacheDir
	}
	if *flagNoCache {
		cfg.Nav.CacheEnabled = false
	}
}
