package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	DefaultPort        = "8000"
	DefaultProxyPath   = "/api/gemini-proxy"
	DefaultGeminiModel = "gemini-2.5-flash"
	DefaultEndpoint    = "http://localhost:" + DefaultPort + DefaultProxyPath
)

// readSecret reads a Docker secret from a file path specified by an env var
// with _FILE suffix. If FOO is already set directly, the file is skipped.
// If FOO_FILE is set, reads the file content and sets FOO.
func readSecret(envKey string) {
	if os.Getenv(envKey) != "" {
		return
	}
	fileKey := envKey + "_FILE"
	filePath := os.Getenv(fileKey)
	if filePath == "" {
		return
	}
	data, err := os.ReadFile(filePath)
	if err != nil {
		return
	}
	val := strings.TrimSpace(string(data))
	os.Setenv(envKey, val)
}

type Config struct {
	Server ServerConfig
	Proxy  ProxyConfig
	Gemini GeminiConfig
	R2     R2Config
	Client ClientConfig
}

type ServerConfig struct {
	Port         string
	Env          string
	LogLevel     string
	AllowOrigins string
	BodyLimit    int // bytes
}

type ProxyConfig struct {
	Path string
}

// GeminiConfig holds the upstream model settings. The API key is deliberately
// absent: it is read per request through APIKey.
type GeminiConfig struct {
	Model string
}

type R2Config struct {
	AccountID       string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	PublicURL       string
	LinkExpiry      time.Duration
}

// ClientConfig configures the gateway client used by the CLI.
type ClientConfig struct {
	Endpoint string
	Timeout  time.Duration
	LogFile  string
}

func Load() (*Config, error) {
	// Read Docker Swarm secrets from _FILE env vars before Viper binds
	readSecret("GEMINI_API_KEY")
	readSecret("R2_ACCOUNT_ID")
	readSecret("R2_ACCESS_KEY_ID")
	readSecret("R2_SECRET_ACCESS_KEY")

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Environment variables
	viper.AutomaticEnv()

	// Bind environment variables with underscores to nested config keys
	_ = viper.BindEnv("server.port", "SERVER_PORT")
	_ = viper.BindEnv("server.env", "SERVER_ENV")
	_ = viper.BindEnv("server.log_level", "LOG_LEVEL")
	_ = viper.BindEnv("server.allow_origins", "ALLOW_ORIGINS")
	_ = viper.BindEnv("server.body_limit", "BODY_LIMIT")
	_ = viper.BindEnv("proxy.path", "PROXY_PATH")
	_ = viper.BindEnv("gemini.api_key", "GEMINI_API_KEY")
	_ = viper.BindEnv("gemini.model", "GEMINI_MODEL")
	_ = viper.BindEnv("r2.account_id", "R2_ACCOUNT_ID")
	_ = viper.BindEnv("r2.access_key_id", "R2_ACCESS_KEY_ID")
	_ = viper.BindEnv("r2.secret_access_key", "R2_SECRET_ACCESS_KEY")
	_ = viper.BindEnv("r2.bucket_name", "R2_BUCKET_NAME")
	_ = viper.BindEnv("r2.public_url", "R2_PUBLIC_URL")
	_ = viper.BindEnv("r2.link_expiry", "R2_LINK_EXPIRY")
	_ = viper.BindEnv("client.endpoint", "LYRICIST_ENDPOINT")
	_ = viper.BindEnv("client.timeout", "LYRICIST_TIMEOUT")
	_ = viper.BindEnv("client.log_file", "LYRICIST_LOG_FILE")

	// Defaults
	viper.SetDefault("server.port", DefaultPort)
	viper.SetDefault("server.env", "development")
	viper.SetDefault("server.log_level", "info")
	viper.SetDefault("server.allow_origins", "*")
	viper.SetDefault("server.body_limit", 20*1024*1024) // 20MB, base64 images inflate by a third
	viper.SetDefault("proxy.path", DefaultProxyPath)
	viper.SetDefault("gemini.model", DefaultGeminiModel)
	viper.SetDefault("r2.link_expiry", 24*time.Hour)
	viper.SetDefault("client.endpoint", DefaultEndpoint)
	viper.SetDefault("client.timeout", 0)
	viper.SetDefault("client.log_file", ".lyricist/session.log")

	// Try to read config file (optional)
	_ = viper.ReadInConfig()

	cfg := &Config{
		Server: ServerConfig{
			Port:         viper.GetString("server.port"),
			Env:          viper.GetString("server.env"),
			LogLevel:     viper.GetString("server.log_level"),
			AllowOrigins: viper.GetString("server.allow_origins"),
			BodyLimit:    viper.GetInt("server.body_limit"),
		},
		Proxy: ProxyConfig{
			Path: viper.GetString("proxy.path"),
		},
		Gemini: GeminiConfig{
			Model: viper.GetString("gemini.model"),
		},
		R2: R2Config{
			AccountID:       viper.GetString("r2.account_id"),
			AccessKeyID:     viper.GetString("r2.access_key_id"),
			SecretAccessKey: viper.GetString("r2.secret_access_key"),
			BucketName:      viper.GetString("r2.bucket_name"),
			PublicURL:       viper.GetString("r2.public_url"),
			LinkExpiry:      viper.GetDuration("r2.link_expiry"),
		},
		Client: ClientConfig{
			Endpoint: viper.GetString("client.endpoint"),
			Timeout:  viper.GetDuration("client.timeout"),
			LogFile:  viper.GetString("client.log_file"),
		},
	}

	return cfg, nil
}

// APIKey returns the upstream credential as currently present in the process
// environment (or config file). It is evaluated on every call so a rotated or
// removed key takes effect without a restart.
func APIKey() string {
	return strings.TrimSpace(viper.GetString("gemini.api_key"))
}

// R2Configured reports whether every credential needed for export links is set.
func (c *R2Config) Configured() bool {
	return c.AccountID != "" && c.AccessKeyID != "" && c.SecretAccessKey != "" && c.BucketName != ""
}
