package config

import (
	"fmt"
	"strings"
	"time"

	"anoa.com/nftmarketplace/pkg/database"
	"anoa.com/nftmarketplace/pkg/storage"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	AppEnv         string
	Port           string
	AllowedOrigins []string
	SentryDSN      string

	DB database.Config

	RedisURL string

	JWTSecret     string
	SessionTTL    time.Duration
	SessionCookie string
	SecureCookie  bool

	LoginRateLimit time.Duration
	StatsCacheTTL  time.Duration

	WalletMasterSeed  string
	InitialWalletPool int

	MeiliSearchHost string
	MeiliMasterKey  string

	Cloudinary storage.CloudinaryConfig

	ShutdownTimeout time.Duration
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func Load() (*Config, error) {
	// .env is optional; production injects the environment directly
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)

	cfg := &Config{
		AppEnv:         v.GetString("APP_ENV"),
		Port:           v.GetString("PORT"),
		AllowedOrigins: splitList(v.GetString("ALLOWED_ORIGINS")),
		SentryDSN:      v.GetString("SENTRY_DSN"),

		DB: database.Config{
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetInt("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASS"),
			Name:            v.GetString("DB_NAME"),
			SSLMode:         v.GetString("DB_SSLMODE"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: v.GetDuration("DB_CONN_MAX_LIFETIME"),
		},

		RedisURL: v.GetString("REDIS_URL"),

		JWTSecret:     v.GetString("JWT_SECRET"),
		SessionTTL:    v.GetDuration("SESSION_TTL"),
		SessionCookie: v.GetString("SESSION_COOKIE"),

		LoginRateLimit: v.GetDuration("RATE_LIMIT_LOGIN"),
		StatsCacheTTL:  v.GetDuration("STATS_CACHE_TTL"),

		WalletMasterSeed:  v.GetString("WALLET_MASTER_SEED"),
		InitialWalletPool: v.GetInt("INITIAL_WALLET_POOL"),

		MeiliSearchHost: v.GetString("MEILISEARCH_HOST"),
		MeiliMasterKey:  v.GetString("MEILI_MASTER_KEY"),

		Cloudinary: storage.CloudinaryConfig{
			CloudName: v.GetString("CLOUDINARY_CLOUD_NAME"),
			APIKey:    v.GetString("CLOUDINARY_API_KEY"),
			APISecret: v.GetString("CLOUDINARY_API_SECRET"),
			Folder:    v.GetString("CLOUDINARY_UPLOAD_FOLDER"),
		},

		ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
	}
	cfg.DB.Debug = cfg.IsDevelopment()
	cfg.SecureCookie = !cfg.IsDevelopment()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("PORT", "8080")
	v.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_NAME", "nft_marketplace")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 25)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", "30m")

	v.SetDefault("JWT_SECRET", "change-me")
	v.SetDefault("SESSION_TTL", "24h")
	v.SetDefault("SESSION_COOKIE", "session_token")

	v.SetDefault("RATE_LIMIT_LOGIN", "3s")
	v.SetDefault("STATS_CACHE_TTL", "30s")

	v.SetDefault("INITIAL_WALLET_POOL", 20)
	v.SetDefault("CLOUDINARY_UPLOAD_FOLDER", "nft_marketplace")
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")
}

func (c *Config) validate() error {
	if c.SessionTTL <= 0 {
		return fmt.Errorf("invalid SESSION_TTL: %s", c.SessionTTL)
	}
	if !c.IsDevelopment() && c.JWTSecret == "change-me" {
		return fmt.Errorf("JWT_SECRET must be set outside development")
	}
	if !c.IsDevelopment() && c.WalletMasterSeed == "" {
		return fmt.Errorf("WALLET_MASTER_SEED must be set outside development")
	}
	if c.WalletMasterSeed == "" {
		c.WalletMasterSeed = "development-wallet-seed"
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
