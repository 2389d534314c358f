package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr          string
	MySQLDSN      string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	// KafkaBrokers 为空时事件只打日志，不接 kafka
	KafkaBrokers  []string
	KafkaTopic    string
	AccessSecret  string
	RefreshSecret string
	UploadDir     string
}

// Load 读取 .env 与环境变量，缺省值适用于本地开发
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	redisDB, err := strconv.Atoi(getenv("REDIS_DB", "0"))
	if err != nil {
		redisDB = 0
	}

	cfg := &Config{
		Addr:          getenv("ADDR", ":8080"),
		MySQLDSN:      getenv("MYSQL_DSN", "user:password@tcp(127.0.0.1:3306)/social?charset=utf8mb4&parseTime=True"),
		RedisAddr:     getenv("REDIS_ADDR", "127.0.0.1:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       redisDB,
		KafkaTopic:    getenv("KAFKA_TOPIC", "social-follow-events"),
		AccessSecret:  os.Getenv("JWT_ACCESS_SECRET"),
		RefreshSecret: os.Getenv("JWT_REFRESH_SECRET"),
		UploadDir:     getenv("UPLOAD_DIR", "uploads/profile_picture"),
	}
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
