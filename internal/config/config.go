package config

import (
	"os"
	"strconv"
)

type Config struct {
	DB      DBConfig
	Session SessionConfig
	Server  ServerConfig
	Avatars AvatarConfig
	MinIO   MinIOConfig
}

type DBConfig struct {
	Driver string

	// sqlite
	Path string

	// postgres
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type SessionConfig struct {
	Secret          string
	ExpirationHours int
}

type ServerConfig struct {
	Port      string
	StaticDir string
}

type AvatarConfig struct {
	Backend    string
	UploadsDir string
}

type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

func Load() *Config {
	return &Config{
		DB: DBConfig{
			Driver:   getEnv("DB_DRIVER", "sqlite"),
			Path:     getEnv("DB_PATH", "data_source.db"),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "courtlab"),
			Password: getEnv("DB_PASSWORD", "courtlab_secret"),
			Name:     getEnv("DB_NAME", "courtlab"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Session: SessionConfig{
			Secret:          getEnv("SESSION_SECRET", "change-me-in-production"),
			ExpirationHours: getEnvAsInt("SESSION_EXPIRATION_HOURS", 168),
		},
		Server: ServerConfig{
			Port:      getEnv("SERVER_PORT", "5100"),
			StaticDir: getEnv("STATIC_DIR", "./web/static"),
		},
		Avatars: AvatarConfig{
			Backend:    getEnv("AVATAR_STORAGE", "local"),
			UploadsDir: getEnv("UPLOADS_DIR", "./web/static/uploads"),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", "localhost:9000"),
			AccessKey: getEnv("MINIO_ACCESS_KEY", "courtlab"),
			SecretKey: getEnv("MINIO_SECRET_KEY", "courtlab_secret"),
			Bucket:    getEnv("MINIO_BUCKET", "avatars"),
			UseSSL:    getEnvAsBool("MINIO_USE_SSL", false),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		parsed, err := strconv.Atoi(value)
		if err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		parsed, err := strconv.ParseBool(value)
		if err == nil {
			return parsed
		}
	}
	return fallback
}
