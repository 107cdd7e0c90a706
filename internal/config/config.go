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
		Driver string `yaml:"driver"` // sqlite | postgres
		DSN    string `yaml:"dsn"`    // путь к файлу для sqlite, URL для postgres
	} `yaml:"database"`

	JWT struct {
		Secret string `yaml:"secret"`
		TTL    int    `yaml:"ttl"` // в минутах
	} `yaml:"jwt"`

	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUsername string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		FromName     string `yaml:"from_name"`
		Enabled      bool   `yaml:"enabled"`
	} `yaml:"email"`

	Security struct {
		MaxFailedLogins int     `yaml:"max_failed_logins"` // после скольких неудач блокируем вход
		LockoutMinutes  int     `yaml:"lockout_minutes"`
		LoginRatePerMin float64 `yaml:"login_rate_per_min"` // лимит попыток логина на IP
		LoginBurst      int     `yaml:"login_burst"`
	} `yaml:"security"`

	FirstAdminEmail    string `yaml:"first_admin_email"`
	FirstAdminPassword string `yaml:"first_admin_password"`
}

var AppConfig *Config

func LoadConfig() {
	var cfg Config

	// .env не обязателен, но если есть - подхватываем
	_ = godotenv.Load()

	dbDSN := os.Getenv("DATABASE_URL")

	if dbDSN == "" {
		log.Println("Загрузка из config.yaml (режим НЕ-тест)")

		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}

		applyDefaults(&cfg)
		AppConfig = &cfg
		return
	}

	log.Println("Загрузка конфигурации из переменных окружения (режим теста)")

	cfg.Database.DSN = dbDSN
	cfg.Database.Driver = os.Getenv("DATABASE_DRIVER")
	cfg.Server.Env = os.Getenv("SERVER_ENV")
	cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
	cfg.JWT.Secret = os.Getenv("JWT_SECRET")
	cfg.JWT.TTL = 60
	cfg.FirstAdminEmail = os.Getenv("FIRST_ADMIN_EMAIL")
	cfg.FirstAdminPassword = os.Getenv("FIRST_ADMIN_PASSWORD")
	cfg.Security.MaxFailedLogins, _ = strconv.Atoi(os.Getenv("MAX_FAILED_LOGINS"))
	cfg.Security.LoginRatePerMin, _ = strconv.ParseFloat(os.Getenv("LOGIN_RATE_PER_MIN"), 64)
	cfg.Security.LoginBurst, _ = strconv.Atoi(os.Getenv("LOGIN_BURST"))

	applyDefaults(&cfg)
	AppConfig = &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = "sqlite"
	}
	if cfg.JWT.TTL == 0 {
		cfg.JWT.TTL = 60
	}
	if cfg.Security.MaxFailedLogins == 0 {
		cfg.Security.MaxFailedLogins = 5
	}
	if cfg.Security.LockoutMinutes == 0 {
		cfg.Security.LockoutMinutes = 15
	}
	if cfg.Security.LoginRatePerMin == 0 {
		cfg.Security.LoginRatePerMin = 10
	}
	if cfg.Security.LoginBurst == 0 {
		cfg.Security.LoginBurst = 5
	}
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
