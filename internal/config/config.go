package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	RunAddress    string `env:"RUN_ADDRESS"`
	DatabaseDSN   string `env:"DATABASE_URI"`
	MigrationsDir string `env:"MIGRATIONS_DIR"`
	RedisAddr     string `env:"REDIS_ADDR"`
	JWTSecret     string `env:"JWT_SECRET"`

	PaymentAPIURL string `env:"PAYMENT_API_URL"`
	PaymentAPIKey string `env:"PAYMENT_API_KEY"`

	KafkaBrokers []string `env:"KAFKA_BROKERS" envSeparator:","`
	KafkaTopic   string   `env:"KAFKA_TOPIC"   envDefault:"flashboard.orders"`

	RestockOnCancel  bool `env:"RESTOCK_ON_CANCEL" envDefault:"true"`
	RequireAdmission bool `env:"REQUIRE_ADMISSION" envDefault:"true"`

	AdmitBatch    int64         `env:"ADMIT_BATCH"    envDefault:"50"`
	AdmitCapacity int64         `env:"ADMIT_CAPACITY" envDefault:"500"`
	AdmitInterval time.Duration `env:"ADMIT_INTERVAL" envDefault:"1s"`
	AdmissionTTL  time.Duration `env:"ADMISSION_TTL"  envDefault:"5m"`

	PaymentWaitTTL    time.Duration `env:"PAYMENT_WAIT_TTL"   envDefault:"15m"`
	ReconcileInterval time.Duration `env:"RECONCILE_INTERVAL" envDefault:"30s"`
	ReconcileWorkers  uint          `env:"RECONCILE_WORKERS"  envDefault:"5"`

	LockTimeout time.Duration `env:"LOCK_TIMEOUT" envDefault:"3s"`

	UploadDir     string `env:"UPLOAD_DIR"      envDefault:"./uploads"`
	UploadBaseURL string `env:"UPLOAD_BASE_URL" envDefault:"/static"`

	SMTPAddr     string `env:"SMTP_ADDR"`
	SMTPFrom     string `env:"SMTP_FROM"`
	SMTPUsername string `env:"SMTP_USERNAME"`
	SMTPPassword string `env:"SMTP_PASSWORD"`

	VerificationCodeTTL  time.Duration `env:"VERIFICATION_CODE_TTL" envDefault:"10m"`
	VerificationAttempts int           `env:"VERIFICATION_ATTEMPTS" envDefault:"5"`

	CORSOrigins []string `env:"CORS_ORIGINS" envDefault:"*" envSeparator:","`

	OTelEndpoint string `env:"OTEL_EXPORTER_ENDPOINT"`
}

// LoadConfig собирает конфигурацию из переменных окружения и флагов командной строки.
// Непустое значение из окружения имеет приоритет над флагом.
func LoadConfig() (*Config, error) {
	return loadConfig(os.Args[1:])
}

func MustLoadConfig() *Config {
	config, err := LoadConfig()
	if err != nil {
		panic(err)
	}
	return config
}

func loadConfig(args []string) (*Config, error) {
	var flagsConfig, envConfig Config

	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %s", envParseErr.Error())
	}

	if flagsErr := loadFlags(&flagsConfig, args); flagsErr != nil {
		return nil, fmt.Errorf("parse flags: %w", flagsErr)
	}

	conf := mergeConfig(&envConfig, &flagsConfig)
	if err := conf.validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

func (c *Config) validate() error {
	if c.DatabaseDSN == "" {
		return errors.New("database DSN is not set")
	}
	if c.JWTSecret == "" {
		return errors.New("JWT secret is not set")
	}
	if c.AdmitBatch <= 0 {
		return fmt.Errorf("admit batch must be positive, got %d", c.AdmitBatch)
	}
	if c.AdmitCapacity < 0 {
		return fmt.Errorf("admit capacity must not be negative, got %d", c.AdmitCapacity)
	}
	if c.ReconcileWorkers == 0 {
		return errors.New("reconcile workers must be positive")
	}
	if c.LockTimeout <= 0 {
		return fmt.Errorf("lock timeout must be positive, got %s", c.LockTimeout)
	}
	return nil
}

func loadFlags(flagConfig *Config, args []string) error {
	fs := flag.NewFlagSet("flashboard", flag.ContinueOnError)

	fs.StringVar(&flagConfig.RunAddress, "a", "localhost:8080", "Run address in format host:port")
	fs.StringVar(&flagConfig.DatabaseDSN, "d", "", "Database DSN")
	fs.StringVar(&flagConfig.MigrationsDir, "m", "internal/db/migrations", "Database migrations directory")
	fs.StringVar(&flagConfig.RedisAddr, "r", "localhost:6379", "Redis address in format host:port")
	fs.StringVar(&flagConfig.JWTSecret, "j", "", "JWT signing secret")
	fs.StringVar(&flagConfig.PaymentAPIURL, "p", "", "Payment gateway base URL")

	return fs.Parse(args) //nolint:wrapcheck
}

// mergeConfig дополняет конфиг из окружения значениями флагов. Поля без флагов берутся из окружения
// как есть (там работают envDefault).
func mergeConfig(envConfig, flagsConfig *Config) *Config {
	conf := *envConfig

	conf.RunAddress = defaultIfBlank(envConfig.RunAddress, flagsConfig.RunAddress)
	conf.DatabaseDSN = defaultIfBlank(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN)
	conf.MigrationsDir = defaultIfBlank(envConfig.MigrationsDir, flagsConfig.MigrationsDir)
	conf.RedisAddr = defaultIfBlank(envConfig.RedisAddr, flagsConfig.RedisAddr)
	conf.JWTSecret = defaultIfBlank(envConfig.JWTSecret, flagsConfig.JWTSecret)
	conf.PaymentAPIURL = defaultIfBlank(envConfig.PaymentAPIURL, flagsConfig.PaymentAPIURL)

	return &conf
}

func defaultIfBlank(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}

// String скрывает секреты при выводе конфига в лог.
func (c Config) String() string {
	type plain Config
	masked := plain(c)
	masked.JWTSecret = mask(masked.JWTSecret)
	masked.PaymentAPIKey = mask(masked.PaymentAPIKey)
	masked.SMTPPassword = mask(masked.SMTPPassword)
	masked.DatabaseDSN = mask(masked.DatabaseDSN)
	return fmt.Sprintf("%+v", masked)
}

func mask(s string) string {
	if s == "" {
		return ""
	}
	return "***"
}
