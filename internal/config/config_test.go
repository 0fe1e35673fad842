package config

import (
	"os"
	"testing"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
		wantErr error
	}{
		{
			name: "valid config",
			envVars: map[string]string{
				"GOOGLE_API_KEY":         "test-key",
				"CLASSIFY_URL":           "http://classifier:8000/classify",
				"DATABASE_URL":           "postgres://localhost:5432/test",
				"LANGUAGES":              "nb-NO",
				"SEARCH_ENGINE_ID_NB_NO": "engine-no",
			},
			wantErr: nil,
		},
		{
			name: "missing google key",
			envVars: map[string]string{
				"CLASSIFY_URL":           "http://classifier:8000/classify",
				"DATABASE_URL":           "postgres://localhost:5432/test",
				"LANGUAGES":              "nb-NO",
				"SEARCH_ENGINE_ID_NB_NO": "engine-no",
			},
			wantErr: ErrMissingGoogleKey,
		},
		{
			name: "missing classify url",
			envVars: map[string]string{
				"GOOGLE_API_KEY":         "test-key",
				"DATABASE_URL":           "postgres://localhost:5432/test",
				"LANGUAGES":              "nb-NO",
				"SEARCH_ENGINE_ID_NB_NO": "engine-no",
			},
			wantErr: ErrMissingClassifyURL,
		},
		{
			name: "missing database url",
			envVars: map[string]string{
				"GOOGLE_API_KEY":         "test-key",
				"CLASSIFY_URL":           "http://classifier:8000/classify",
				"LANGUAGES":              "nb-NO",
				"SEARCH_ENGINE_ID_NB_NO": "engine-no",
			},
			wantErr: ErrMissingDB,
		},
		{
			name: "no configured languages",
			envVars: map[string]string{
				"GOOGLE_API_KEY": "test-key",
				"CLASSIFY_URL":   "http://classifier:8000/classify",
				"DATABASE_URL":   "postgres://localhost:5432/test",
			},
			wantErr: ErrNoLanguages,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars()

			for k, v := range tt.envVars {
				os.Setenv(k, v)
			}
			defer clearEnvVars()

			cfg, err := Load()

			if tt.wantErr != nil {
				if err != tt.wantErr {
					t.Errorf("Load() error = %v, wantErr %v", err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Errorf("Load() unexpected error = %v", err)
				return
			}

			if cfg == nil {
				t.Error("Load() returned nil config")
			}
		})
	}
}

func TestDefaults(t *testing.T) {
	clearEnvVars()
	os.Setenv("GOOGLE_API_KEY", "test-key")
	os.Setenv("CLASSIFY_URL", "http://classifier:8000/classify")
	os.Setenv("DATABASE_URL", "postgres://localhost:5432/test")
	os.Setenv("LANGUAGES", "nb-NO")
	os.Setenv("SEARCH_ENGINE_ID_NB_NO", "engine-no")
	defer clearEnvVars()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %v, want info", cfg.Log.Level)
	}
	if cfg.Search.Depth != 3 {
		t.Errorf("Search.Depth = %v, want 3", cfg.Search.Depth)
	}
	if cfg.Classify.BatchKB != 300 {
		t.Errorf("Classify.BatchKB = %v, want 300", cfg.Classify.BatchKB)
	}
	if cfg.Classify.Timeout.Seconds() != 120 {
		t.Errorf("Classify.Timeout = %v, want 120s", cfg.Classify.Timeout)
	}
	if cfg.HTTP.Addr != ":8080" {
		t.Errorf("HTTP.Addr = %v, want :8080", cfg.HTTP.Addr)
	}
	if cfg.RateLimit.RequestsPerMinute != 10 {
		t.Errorf("RateLimit.RequestsPerMinute = %v, want 10", cfg.RateLimit.RequestsPerMinute)
	}
	if cfg.Minio.Enabled {
		t.Error("Minio.Enabled = true, want false by default")
	}
}

func TestLoadLanguages(t *testing.T) {
	tests := []struct {
		name      string
		envVars   map[string]string
		wantLangs []string
	}{
		{
			name: "all three built-in languages",
			envVars: map[string]string{
				"LANGUAGES":              "nb-NO;sv-SE;da-DK",
				"SEARCH_ENGINE_ID_NB_NO": "engine-no",
				"SEARCH_ENGINE_ID_SV_SE": "engine-se",
				"SEARCH_ENGINE_ID_DA_DK": "engine-dk",
			},
			wantLangs: []string{"nb-NO", "sv-SE", "da-DK"},
		},
		{
			name: "language without engine id is dropped",
			envVars: map[string]string{
				"LANGUAGES":              "nb-NO;sv-SE",
				"SEARCH_ENGINE_ID_NB_NO": "engine-no",
			},
			wantLangs: []string{"nb-NO"},
		},
		{
			name: "language without a keyword string is dropped",
			envVars: map[string]string{
				"LANGUAGES":              "nb-NO;fi-FI",
				"SEARCH_ENGINE_ID_NB_NO": "engine-no",
				"SEARCH_ENGINE_ID_FI_FI": "engine-fi",
			},
			wantLangs: []string{"nb-NO"},
		},
		{
			name: "whitespace and empty entries ignored",
			envVars: map[string]string{
				"LANGUAGES":              " nb-NO ; ;",
				"SEARCH_ENGINE_ID_NB_NO": "engine-no",
			},
			wantLangs: []string{"nb-NO"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars()
			for k, v := range tt.envVars {
				os.Setenv(k, v)
			}
			defer clearEnvVars()

			languages := loadLanguages()

			if len(languages) != len(tt.wantLangs) {
				t.Fatalf("loadLanguages() = %d languages, want %d (%v)", len(languages), len(tt.wantLangs), languages)
			}
			for _, lang := range tt.wantLangs {
				lc, ok := languages[lang]
				if !ok {
					t.Errorf("language %q missing", lang)
					continue
				}
				if lc.SearchEngineID == "" || lc.SearchString == "" {
					t.Errorf("language %q incomplete: %+v", lang, lc)
				}
			}
		})
	}
}

func TestGetEnvIntOrDefault(t *testing.T) {
	tests := []struct {
		name       string
		envValue   string
		defaultVal int
		want       int
	}{
		{"valid int", "42", 10, 42},
		{"empty string", "", 10, 10},
		{"invalid int", "abc", 10, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Setenv("TEST_INT", tt.envValue)
			defer os.Unsetenv("TEST_INT")

			got := getEnvIntOrDefault("TEST_INT", tt.defaultVal)
			if got != tt.want {
				t.Errorf("getEnvIntOrDefault() = %v, want %v", got, tt.want)
			}
		})
	}
}

func clearEnvVars() {
	vars := []string{
		"GOOGLE_API_KEY",
		"GOOGLE_BASE_URL",
		"GOOGLE_TIMEOUT_SEC",
		"CLASSIFY_URL",
		"CLASSIFY_TIMEOUT_SEC",
		"CLASSIFY_BATCH_KB",
		"LANGUAGES",
		"SEARCH_ENGINE_ID_NB_NO",
		"SEARCH_ENGINE_ID_SV_SE",
		"SEARCH_ENGINE_ID_DA_DK",
		"SEARCH_ENGINE_ID_FI_FI",
		"SEARCH_DEPTH",
		"FETCH_TIMEOUT_SEC",
		"FETCH_MAX_BODY_KB",
		"DATABASE_URL",
		"MINIO_ENABLED",
		"MINIO_ENDPOINT",
		"MINIO_ACCESS_KEY",
		"MINIO_SECRET_KEY",
		"MINIO_BUCKET",
		"MINIO_USE_SSL",
		"HTTP_ADDR",
		"LOG_LEVEL",
		"RATE_LIMIT_PER_MINUTE",
	}
	for _, v := range vars {
		os.Unsetenv(v)
	}
}
