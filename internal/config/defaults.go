package config

// DefaultExcludes are asset glob patterns skipped when copying the assets
// directory into the generated site.
var DefaultExcludes = []string{
	"**/.DS_Store",
	"**/*.psd",
	"**/*.xcf",
	"**/Thumbs.db",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Namespace: "folio",
		SiteTitle: "Portfolio",
		DataDir:   "data",
		OutputDir: "site",
		AssetsDir: "assets",
		Exclude:   DefaultExcludes,
		Port:      8080,
	}
}
