package config

const (
	defaultDataDir         = "~/.local/share/bulkrename"
	defaultLogDir          = "~/.local/share/bulkrename/logs"
	defaultStrategy        = "suffix"
	defaultMaxSuffixProbes = 10000
	defaultTempExtension   = ".bulktmp"
	defaultHistoryLimit    = 50
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
		},
		Rename: Rename{
			DefaultStrategy: defaultStrategy,
			MaxSuffixProbes: defaultMaxSuffixProbes,
			TempExtension:   defaultTempExtension,
			HistoryLimit:    defaultHistoryLimit,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
