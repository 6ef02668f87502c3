package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Settings struct {
	MariaDBDSN      string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ServerPort      int

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool
	Bucket         string

	// PublicBaseURL is the externally visible origin used when computing
	// video_url and thumbnail_url, e.g. "http://localhost:3001".
	PublicBaseURL string

	RedisAddr     string
	RedisPassword string

	FFmpegPath    string
	FFmpegTimeout time.Duration

	MaxUploadSize int64
}

const (
	defaultFFmpegTimeoutSecs = 30
	defaultMaxUploadSize     = 500 << 20 // 500 MiB
)

func Load() (*Settings, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found; proceeding with OS environment variables")
	}

	viper.AutomaticEnv()

	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: could not read .env file: %v", err)
	}

	for _, key := range []string{
		"MARIADB_DSN",
		"MARIADB_MAX_OPEN_CONN",
		"MARIADB_MAX_IDLE_CONNS",
		"MARIADB_CONN_MAX_LIFETIME",
		"SERVER_PORT",
		"MINIO_ENDPOINT",
		"MINIO_ACCESS_KEY",
		"MINIO_SECRET_KEY",
		"BUCKET_NAME",
		"PUBLIC_BASE_URL",
	} {
		if !viper.IsSet(key) {
			return nil, fmt.Errorf("%s is required", key)
		}
	}

	viper.SetDefault("FFMPEG_PATH", "ffmpeg")
	viper.SetDefault("FFMPEG_TIMEOUT", defaultFFmpegTimeoutSecs)
	viper.SetDefault("MAX_UPLOAD_SIZE", int64(defaultMaxUploadSize))

	return &Settings{
		MariaDBDSN:      viper.GetString("MARIADB_DSN"),
		MaxOpenConns:    viper.GetInt("MARIADB_MAX_OPEN_CONN"),
		MaxIdleConns:    viper.GetInt("MARIADB_MAX_IDLE_CONNS"),
		ConnMaxLifetime: time.Duration(viper.GetInt("MARIADB_CONN_MAX_LIFETIME")) * time.Second,
		ServerPort:      viper.GetInt("SERVER_PORT"),
		MinioEndpoint:   viper.GetString("MINIO_ENDPOINT"),
		MinioAccessKey:  viper.GetString("MINIO_ACCESS_KEY"),
		MinioSecretKey:  viper.GetString("MINIO_SECRET_KEY"),
		MinioUseSSL:     viper.GetBool("MINIO_USE_SSL"),
		Bucket:          viper.GetString("BUCKET_NAME"),
		PublicBaseURL:   viper.GetString("PUBLIC_BASE_URL"),
		RedisAddr:       viper.GetString("REDIS_ADDR"),
		RedisPassword:   viper.GetString("REDIS_PASSWORD"),
		FFmpegPath:      viper.GetString("FFMPEG_PATH"),
		FFmpegTimeout:   time.Duration(viper.GetInt("FFMPEG_TIMEOUT")) * time.Second,
		MaxUploadSize:   viper.GetInt64("MAX_UPLOAD_SIZE"),
	}, nil
}
