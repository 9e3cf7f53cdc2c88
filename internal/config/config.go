package config

import (
	"flag"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config содержит конфигурацию приложения.
type Config struct {
	RunAddress      string
	StorePath       string
	JWTSecret       string
	TokenExpiration time.Duration
}

// Load загружает конфигурацию из .env, флагов командной строки и переменных
// окружения. Приоритет: переменные окружения > флаги > значения по умолчанию.
func Load() *Config {
	// .env не обязателен: уже выставленные переменные он не перекрывает
	_ = godotenv.Load()

	cfg := &Config{}

	flag.StringVar(&cfg.RunAddress, "a", "localhost:8080", "адрес и порт запуска сервиса")
	flag.StringVar(&cfg.StorePath, "f", "app.db.json", "путь к файлу снапшота хранилища")
	tokenExp := flag.String("t", "24h", "время жизни токена")
	flag.Parse()

	if envRunAddr := os.Getenv("RUN_ADDRESS"); envRunAddr != "" {
		cfg.RunAddress = envRunAddr
	}
	if envStorePath := os.Getenv("STORE_PATH"); envStorePath != "" {
		cfg.StorePath = envStorePath
	}
	if envTokenExp := os.Getenv("TOKEN_EXPIRATION"); envTokenExp != "" {
		*tokenExp = envTokenExp
	}

	// JWT секрет
	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "default-secret-change-in-production"
	}

	// Время жизни токена
	exp, err := time.ParseDuration(*tokenExp)
	if err != nil {
		exp = 24 * time.Hour
	}
	cfg.TokenExpiration = exp

	return cfg
}
