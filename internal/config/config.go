package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

var (
	ErrMissingGoogleKey   = errors.New("GOOGLE_API_KEY is required")
	ErrMissingClassifyURL = errors.New("CLASSIFY_URL is required")
	ErrMissingDB          = errors.New("DATABASE_URL is required")
	ErrNoLanguages        = errors.New("no fully configured languages")
)

type Config struct {
	Google    GoogleConfig
	Classify  ClassifyConfig
	Languages map[string]LanguageConfig
	Search    SearchConfig
	Fetch     FetchConfig
	Database  DatabaseConfig
	Minio     MinioConfig
	HTTP      HTTPConfig
	Log       LogConfig
	RateLimit RateLimitConfig
}

type GoogleConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

type ClassifyConfig struct {
	URL     string
	Timeout time.Duration
	BatchKB int // batch size threshold in KB-like units (x1000 bytes)
}

// LanguageConfig is one supported search language: the programmable search
// engine for it and the risk keyword string OR-ed into every query.
type LanguageConfig struct {
	SearchEngineID string
	SearchString   string
}

type SearchConfig struct {
	Depth int // result pages per language
}

type FetchConfig struct {
	Timeout      time.Duration
	MaxBodyBytes int64
}

type DatabaseConfig struct {
	URL string
}

type MinioConfig struct {
	Enabled   bool
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

type HTTPConfig struct {
	Addr string
}

type LogConfig struct {
	Level string
}

type RateLimitConfig struct {
	RequestsPerMinute int
}

func Load() (*Config, error) {
	cfg := &Config{
		Google: GoogleConfig{
			APIKey:  os.Getenv("GOOGLE_API_KEY"),
			BaseURL: getEnvOrDefault("GOOGLE_BASE_URL", "https://www.googleapis.com/customsearch/v1"),
			Timeout: time.Duration(getEnvIntOrDefault("GOOGLE_TIMEOUT_SEC", 30)) * time.Second,
		},
		Classify: ClassifyConfig{
			URL:     os.Getenv("CLASSIFY_URL"),
			Timeout: time.Duration(getEnvIntOrDefault("CLASSIFY_TIMEOUT_SEC", 120)) * time.Second,
			BatchKB: getEnvIntOrDefault("CLASSIFY_BATCH_KB", 300),
		},
		Languages: loadLanguages(),
		Search: SearchConfig{
			Depth: getEnvIntOrDefault("SEARCH_DEPTH", 3),
		},
		Fetch: FetchConfig{
			Timeout:      time.Duration(getEnvIntOrDefault("FETCH_TIMEOUT_SEC", 30)) * time.Second,
			MaxBodyBytes: int64(getEnvIntOrDefault("FETCH_MAX_BODY_KB", 10240)) * 1024,
		},
		Database: DatabaseConfig{
			URL: os.Getenv("DATABASE_URL"),
		},
		Minio: MinioConfig{
			Enabled:   getEnvOrDefault("MINIO_ENABLED", "false") == "true",
			Endpoint:  os.Getenv("MINIO_ENDPOINT"),
			AccessKey: os.Getenv("MINIO_ACCESS_KEY"),
			SecretKey: os.Getenv("MINIO_SECRET_KEY"),
			Bucket:    getEnvOrDefault("MINIO_BUCKET", "adversify-content"),
			UseSSL:    getEnvOrDefault("MINIO_USE_SSL", "false") == "true",
		},
		HTTP: HTTPConfig{
			Addr: getEnvOrDefault("HTTP_ADDR", ":8080"),
		},
		Log: LogConfig{
			Level: getEnvOrDefault("LOG_LEVEL", "info"),
		},
		RateLimit: RateLimitConfig{
			RequestsPerMinute: getEnvIntOrDefault("RATE_LIMIT_PER_MINUTE", 10),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Google.APIKey == "" {
		return ErrMissingGoogleKey
	}
	if c.Classify.URL == "" {
		return ErrMissingClassifyURL
	}
	if c.Database.URL == "" {
		return ErrMissingDB
	}
	if len(c.Languages) == 0 {
		return ErrNoLanguages
	}
	return nil
}

// loadLanguages reads LANGUAGES (semicolon separated iso codes, e.g.
// "nb-NO;sv-SE") and the per-language SEARCH_ENGINE_ID_<SLUG> variables.
// A language missing either its engine id or a built-in keyword string is
// left out entirely.
func loadLanguages() map[string]LanguageConfig {
	languages := make(map[string]LanguageConfig)

	for _, lang := range strings.Split(os.Getenv("LANGUAGES"), ";") {
		lang = strings.TrimSpace(lang)
		if lang == "" {
			continue
		}

		slug := strings.ToLower(strings.ReplaceAll(lang, "-", "_"))
		engineID := os.Getenv("SEARCH_ENGINE_ID_" + strings.ToUpper(slug))
		searchString, ok := languageSearchStrings[slug]
		if engineID == "" || !ok {
			continue
		}

		languages[lang] = LanguageConfig{
			SearchEngineID: engineID,
			SearchString:   searchString,
		}
	}

	return languages
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
