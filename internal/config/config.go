package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Log       LogConfig
	CORS      CORSConfig
	Upload    UploadConfig
	Extractor ExtractorConfig
	Preview   PreviewConfig
	S3        S3Config
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// UploadConfig holds document upload limits.
type UploadConfig struct {
	MaxFileSizeMB int64 `mapstructure:"max_file_size_mb"`
}

// ExtractorProviderConfig holds settings for a single extraction model provider.
type ExtractorProviderConfig struct {
	Provider     string `mapstructure:"provider"`
	APIKey       string `mapstructure:"api_key"`
	DefaultModel string `mapstructure:"default_model"`
	TimeoutSecs  int    `mapstructure:"timeout_secs"`
}

// ExtractorConfig holds extraction model settings with multi-provider support.
type ExtractorConfig struct {
	// Legacy flat fields (backwards-compatible)
	Provider     string `mapstructure:"provider"`
	APIKey       string `mapstructure:"api_key"`
	DefaultModel string `mapstructure:"default_model"`
	TimeoutSecs  int    `mapstructure:"timeout_secs"`

	// Multi-provider fields
	Primary   ExtractorProviderConfig `mapstructure:"primary"`
	Secondary ExtractorProviderConfig `mapstructure:"secondary"`
	Tertiary  ExtractorProviderConfig `mapstructure:"tertiary"`
}

// PrimaryConfig returns the primary provider config, falling back to legacy flat fields.
func (e *ExtractorConfig) PrimaryConfig() *ExtractorProviderConfig {
	if e.Primary.Provider != "" {
		return &e.Primary
	}
	return &ExtractorProviderConfig{
		Provider:     e.Provider,
		APIKey:       e.APIKey,
		DefaultModel: e.DefaultModel,
		TimeoutSecs:  e.TimeoutSecs,
	}
}

// SecondaryConfig returns the secondary provider config, or nil if not configured.
func (e *ExtractorConfig) SecondaryConfig() *ExtractorProviderConfig {
	if e.Secondary.Provider != "" {
		return &e.Secondary
	}
	return nil
}

// TertiaryConfig returns the tertiary provider config, or nil if not configured.
func (e *ExtractorConfig) TertiaryConfig() *ExtractorProviderConfig {
	if e.Tertiary.Provider != "" {
		return &e.Tertiary
	}
	return nil
}

// PreviewConfig holds PDF preview rendering settings.
type PreviewConfig struct {
	PdftoppmPath string `mapstructure:"pdftoppm_path"`
	DPI          int    `mapstructure:"dpi"`
	MaxPages     int    `mapstructure:"max_pages"`
}

// S3Config holds the optional S3 preview store settings. Previews are served
// inline as data URIs when Bucket is empty.
type S3Config struct {
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	PresignExpiry int64  `mapstructure:"presign_expiry"`
}

// Enabled reports whether the S3 preview store is configured.
func (s *S3Config) Enabled() bool {
	return s.Bucket != ""
}

// Load reads configuration from environment variables with the DOCVERIFY_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("DOCVERIFY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "180s")
	v.SetDefault("server.environment", "development")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Upload defaults
	v.SetDefault("upload.max_file_size_mb", 20)

	// Extractor defaults (legacy flat)
	v.SetDefault("extractor.provider", "gemini")
	v.SetDefault("extractor.api_key", "")
	v.SetDefault("extractor.default_model", "gemini-2.0-flash")
	v.SetDefault("extractor.timeout_secs", 120)

	// Extractor primary/secondary/tertiary defaults
	for _, tier := range []string{"primary", "secondary", "tertiary"} {
		v.SetDefault("extractor."+tier+".provider", "")
		v.SetDefault("extractor."+tier+".api_key", "")
		v.SetDefault("extractor."+tier+".default_model", "")
		v.SetDefault("extractor."+tier+".timeout_secs", 120)
	}

	// Preview defaults
	v.SetDefault("preview.pdftoppm_path", "pdftoppm")
	v.SetDefault("preview.dpi", 150)
	v.SetDefault("preview.max_pages", 10)

	// S3 defaults (disabled unless a bucket is set)
	v.SetDefault("s3.region", "ap-south-1")
	v.SetDefault("s3.bucket", "")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.presign_expiry", 3600)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                   "DOCVERIFY_SERVER_PORT",
		"server.read_timeout":           "DOCVERIFY_SERVER_READ_TIMEOUT",
		"server.write_timeout":          "DOCVERIFY_SERVER_WRITE_TIMEOUT",
		"server.environment":            "DOCVERIFY_SERVER_ENVIRONMENT",
		"log.level":                     "DOCVERIFY_LOG_LEVEL",
		"log.format":                    "DOCVERIFY_LOG_FORMAT",
		"cors.allowed_origins":          "DOCVERIFY_CORS_ALLOWED_ORIGINS",
		"upload.max_file_size_mb":       "DOCVERIFY_UPLOAD_MAX_FILE_SIZE_MB",
		"extractor.provider":            "DOCVERIFY_EXTRACTOR_PROVIDER",
		"extractor.api_key":             "DOCVERIFY_EXTRACTOR_API_KEY",
		"extractor.default_model":       "DOCVERIFY_EXTRACTOR_DEFAULT_MODEL",
		"extractor.timeout_secs":        "DOCVERIFY_EXTRACTOR_TIMEOUT_SECS",
		"extractor.primary.provider":    "DOCVERIFY_EXTRACTOR_PRIMARY_PROVIDER",
		"extractor.primary.api_key":     "DOCVERIFY_EXTRACTOR_PRIMARY_API_KEY",
		"extractor.primary.default_model": "DOCVERIFY_EXTRACTOR_PRIMARY_DEFAULT_MODEL",
		"extractor.primary.timeout_secs":  "DOCVERIFY_EXTRACTOR_PRIMARY_TIMEOUT_SECS",
		"extractor.secondary.provider":    "DOCVERIFY_EXTRACTOR_SECONDARY_PROVIDER",
		"extractor.secondary.api_key":     "DOCVERIFY_EXTRACTOR_SECONDARY_API_KEY",
		"extractor.secondary.default_model": "DOCVERIFY_EXTRACTOR_SECONDARY_DEFAULT_MODEL",
		"extractor.secondary.timeout_secs":  "DOCVERIFY_EXTRACTOR_SECONDARY_TIMEOUT_SECS",
		"extractor.tertiary.provider":       "DOCVERIFY_EXTRACTOR_TERTIARY_PROVIDER",
		"extractor.tertiary.api_key":        "DOCVERIFY_EXTRACTOR_TERTIARY_API_KEY",
		"extractor.tertiary.default_model":  "DOCVERIFY_EXTRACTOR_TERTIARY_DEFAULT_MODEL",
		"extractor.tertiary.timeout_secs":   "DOCVERIFY_EXTRACTOR_TERTIARY_TIMEOUT_SECS",
		"preview.pdftoppm_path":             "DOCVERIFY_PREVIEW_PDFTOPPM_PATH",
		"preview.dpi":                       "DOCVERIFY_PREVIEW_DPI",
		"preview.max_pages":                 "DOCVERIFY_PREVIEW_MAX_PAGES",
		"s3.region":                         "DOCVERIFY_S3_REGION",
		"s3.bucket":                         "DOCVERIFY_S3_BUCKET",
		"s3.endpoint":                       "DOCVERIFY_S3_ENDPOINT",
		"s3.access_key":                     "DOCVERIFY_S3_ACCESS_KEY",
		"s3.secret_key":                     "DOCVERIFY_S3_SECRET_KEY",
		"s3.presign_expiry":                 "DOCVERIFY_S3_PRESIGN_EXPIRY",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if DOCVERIFY_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("DOCVERIFY_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{AllowedOrigins: corsOrigins}

	cfg.Upload = UploadConfig{
		MaxFileSizeMB: v.GetInt64("upload.max_file_size_mb"),
	}

	cfg.Extractor = ExtractorConfig{
		Provider:     v.GetString("extractor.provider"),
		APIKey:       v.GetString("extractor.api_key"),
		DefaultModel: v.GetString("extractor.default_model"),
		TimeoutSecs:  v.GetInt("extractor.timeout_secs"),
		Primary: ExtractorProviderConfig{
			Provider:     v.GetString("extractor.primary.provider"),
			APIKey:       v.GetString("extractor.primary.api_key"),
			DefaultModel: v.GetString("extractor.primary.default_model"),
			TimeoutSecs:  v.GetInt("extractor.primary.timeout_secs"),
		},
		Secondary: ExtractorProviderConfig{
			Provider:     v.GetString("extractor.secondary.provider"),
			APIKey:       v.GetString("extractor.secondary.api_key"),
			DefaultModel: v.GetString("extractor.secondary.default_model"),
			TimeoutSecs:  v.GetInt("extractor.secondary.timeout_secs"),
		},
		Tertiary: ExtractorProviderConfig{
			Provider:     v.GetString("extractor.tertiary.provider"),
			APIKey:       v.GetString("extractor.tertiary.api_key"),
			DefaultModel: v.GetString("extractor.tertiary.default_model"),
			TimeoutSecs:  v.GetInt("extractor.tertiary.timeout_secs"),
		},
	}

	cfg.Preview = PreviewConfig{
		PdftoppmPath: v.GetString("preview.pdftoppm_path"),
		DPI:          v.GetInt("preview.dpi"),
		MaxPages:     v.GetInt("preview.max_pages"),
	}

	cfg.S3 = S3Config{
		Region:        v.GetString("s3.region"),
		Bucket:        v.GetString("s3.bucket"),
		Endpoint:      v.GetString("s3.endpoint"),
		AccessKey:     v.GetString("s3.access_key"),
		SecretKey:     v.GetString("s3.secret_key"),
		PresignExpiry: v.GetInt64("s3.presign_expiry"),
	}

	return cfg, nil
}
