package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		// DSN тестового/продакшен Postgres (Supabase выдает обычный
		// postgres:// URL). Пустое значение не фатально: сервер стартует,
		// а все эндпоинты БД отвечают 503 "Database not configured".
		DSN string `yaml:"url"`
	} `yaml:"database"`

	OpenAI struct {
		APIKey string `yaml:"api_key"`
		Model  string `yaml:"model"`
	} `yaml:"openai"`

	JWT struct {
		Secret string `yaml:"secret"`
		// TTL в часах. По умолчанию 168 (7 дней).
		TTL int `yaml:"ttl"`
	} `yaml:"jwt"`

	Static struct {
		Dir string `yaml:"dir"`
	} `yaml:"static"`
}

const (
	defaultJWTTTLHours = 168 // 7 дней
	defaultOpenAIModel = "gpt-3.5-turbo"
	defaultStaticDir   = "static"
	defaultPort        = 8000
)

var AppConfig *Config

// LoadConfig загружает конфигурацию: сначала .env (если есть), затем
// переменные окружения, и только если DATABASE_URL не задан — config.yaml.
func LoadConfig() {
	var cfg Config

	// .env необязателен: в проде переменные приходят из окружения
	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")

	if dbURL == "" && os.Getenv("JWT_SECRET") == "" {
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		if f, err := os.Open(configPath); err == nil {
			defer f.Close()
			if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
				log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
			}
			applyDefaults(&cfg)
			AppConfig = &cfg
			return
		}
		// Файла нет — продолжаем с тем, что дало окружение
	}

	cfg.Database.DSN = dbURL
	cfg.Server.Env = os.Getenv("SERVER_ENV")
	cfg.Server.Host = os.Getenv("SERVER_HOST")
	cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
	cfg.JWT.Secret = os.Getenv("JWT_SECRET")
	cfg.OpenAI.APIKey = os.Getenv("OPENAI_API_KEY")
	cfg.OpenAI.Model = os.Getenv("OPENAI_MODEL")
	cfg.Static.Dir = os.Getenv("STATIC_DIR")

	applyDefaults(&cfg)
	AppConfig = &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = defaultPort
	}
	if cfg.JWT.TTL == 0 {
		cfg.JWT.TTL = defaultJWTTTLHours
	}
	if cfg.OpenAI.Model == "" {
		cfg.OpenAI.Model = defaultOpenAIModel
	}
	if cfg.Static.Dir == "" {
		cfg.Static.Dir = defaultStaticDir
	}
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
