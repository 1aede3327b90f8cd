package config

const (
	defaultTMDBBaseURL           = "https://api.themoviedb.org/3"
	defaultTMDBImageBaseURL      = "https://image.tmdb.org"
	defaultTMDBLanguage          = "fr-FR"
	defaultTMDBRequestTimeout    = 10
	defaultServerBind            = "127.0.0.1:8080"
	defaultMainCastSize          = 4
	defaultLogDir                = "~/.local/share/marquee/logs"
	defaultRuntimeDir            = "~/.local/share/marquee/run"
	defaultLogFormat             = "console"
	defaultLogLevel              = "info"
	maxTMDBRequestTimeoutSeconds = 120
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		TMDB: TMDB{
			BaseURL:               defaultTMDBBaseURL,
			ImageBaseURL:          defaultTMDBImageBaseURL,
			Language:              defaultTMDBLanguage,
			Languages:             []string{defaultTMDBLanguage, "en-US"},
			RequestTimeoutSeconds: defaultTMDBRequestTimeout,
		},
		Server: Server{
			Bind: defaultServerBind,
		},
		Detail: Detail{
			MainCastSize: defaultMainCastSize,
		},
		Paths: Paths{
			LogDir:     defaultLogDir,
			RuntimeDir: defaultRuntimeDir,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
