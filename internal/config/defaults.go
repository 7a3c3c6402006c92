package config

const (
	defaultDataDir           = "~/.local/share/qrqueue"
	defaultLogDir            = "~/.local/share/qrqueue/logs"
	defaultDatabase          = "upload-db"
	defaultCollection        = "queue"
	defaultScannerWorkers    = 4
	defaultRenderSize        = 256
	defaultLogFormat         = "console"
	defaultLogLevel          = "info"
	defaultConfigPath        = "~/.config/qrqueue/config.toml"
	projectConfigFile        = "qrqueue.toml"
	maxScannerConcurrency    = 64
	minRenderSize            = 64
	maxRenderSize            = 4096
	storeNamePatternDisplay  = "[A-Za-z0-9_-]"
	collectionPatternDisplay = "[A-Za-z_][A-Za-z0-9_]*"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
		},
		Store: Store{
			Database:   defaultDatabase,
			Collection: defaultCollection,
		},
		Scanner: Scanner{
			Concurrency: defaultScannerWorkers,
		},
		Render: Render{
			Size: defaultRenderSize,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
