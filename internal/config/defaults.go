package config

const (
	defaultDestDir        = "./saints_audio"
	defaultBaseURL        = "https://www.churchofjesuschrist.org"
	defaultLanguage       = "eng"
	defaultUserAgent      = "SaintsDownloader"
	defaultExtractor      = "regex"
	defaultTimeoutSeconds = 300
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DestDir: defaultDestDir,
		},
		Site: Site{
			BaseURL:        defaultBaseURL,
			Language:       defaultLanguage,
			UserAgent:      defaultUserAgent,
			Extractor:      defaultExtractor,
			TimeoutSeconds: defaultTimeoutSeconds,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
