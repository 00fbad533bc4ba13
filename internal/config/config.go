package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Report       Report       `mapstructure:",squash"`
	Generator    Generator    `mapstructure:",squash"`
	Cache        Cache        `mapstructure:",squash"`
	BackfillSync BackfillSync `mapstructure:",squash"`
	Tracing      Tracing      `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host               string   `mapstructure:"host"`
	Port               string   `mapstructure:"port"`
	StaticDir          string   `mapstructure:"static_dir"`
	CorsAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
	RateLimitPerMinute int      `mapstructure:"rate_limit_per_minute"`
	Production         bool     `mapstructure:"production"`
}

type Database struct {
	URL          string        `mapstructure:"database_url"`
	QueryTimeout time.Duration `mapstructure:"database_query_timeout"`
	MaxOpenConns int           `mapstructure:"database_max_open_conns"`
	AutoMigrate  bool          `mapstructure:"database_auto_migrate"`
}

type Report struct {
	MaxRangeDays int `mapstructure:"report_max_range_days"`
}

// Generator parametriza a geração de dados sintéticos quando o banco não tem cobertura
type Generator struct {
	Seed                 uint64  `mapstructure:"generator_seed"`
	BaseSales            float64 `mapstructure:"generator_base_sales"`
	WeeklyAmplitude      float64 `mapstructure:"generator_weekly_amplitude"`
	TrendAmplitude       float64 `mapstructure:"generator_trend_amplitude"`
	NoiseStdDev          float64 `mapstructure:"generator_noise_std_dev"`
	MinSales             float64 `mapstructure:"generator_min_sales"`
	CustomerDivisor      float64 `mapstructure:"generator_customer_divisor"`
	CustomerNoise        float64 `mapstructure:"generator_customer_noise"`
	MinCustomers         int     `mapstructure:"generator_min_customers"`
	VisitorMultiplierMin float64 `mapstructure:"generator_visitor_multiplier_min"`
	VisitorMultiplierMax float64 `mapstructure:"generator_visitor_multiplier_max"`
	MinConversion        float64 `mapstructure:"generator_min_conversion"`
	MaxConversion        float64 `mapstructure:"generator_max_conversion"`
}

type Cache struct {
	RedisURL string        `mapstructure:"redis_url"`
	TTL      time.Duration `mapstructure:"cache_ttl"`
}

type BackfillSync struct {
	CronSchedule string `mapstructure:"backfill_sync_cron"`
	LookbackDays int    `mapstructure:"backfill_sync_lookback_days"`
	Enabled      bool   `mapstructure:"backfill_sync_enabled"`
}

type Tracing struct {
	Enabled     bool   `mapstructure:"tracing_enabled"`
	ServiceName string `mapstructure:"tracing_service_name"`
}

func SetDefaults() {
	viper.SetDefault("LOG_LEVEL", "info")

	viper.SetDefault("HOST", "0.0.0.0")
	viper.SetDefault("PORT", "5000")
	viper.SetDefault("STATIC_DIR", "frontend")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	viper.SetDefault("RATE_LIMIT_PER_MINUTE", 120)
	viper.SetDefault("PRODUCTION", false)

	viper.SetDefault("DATABASE_URL", "sqlite://./bi_dashboard.db")
	viper.SetDefault("DATABASE_QUERY_TIMEOUT", "5s")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DATABASE_AUTO_MIGRATE", true)

	viper.SetDefault("REPORT_MAX_RANGE_DAYS", 3660) // ~10 anos

	// Defaults do gerador sintético
	viper.SetDefault("GENERATOR_SEED", 0) // 0 = semente baseada no relógio
	viper.SetDefault("GENERATOR_BASE_SALES", 3000.0)
	viper.SetDefault("GENERATOR_WEEKLY_AMPLITUDE", 0.2)
	viper.SetDefault("GENERATOR_TREND_AMPLITUDE", 0.3)
	viper.SetDefault("GENERATOR_NOISE_STD_DEV", 200.0)
	viper.SetDefault("GENERATOR_MIN_SALES", 500.0)
	viper.SetDefault("GENERATOR_CUSTOMER_DIVISOR", 30.0)
	viper.SetDefault("GENERATOR_CUSTOMER_NOISE", 0.1)
	viper.SetDefault("GENERATOR_MIN_CUSTOMERS", 20)
	viper.SetDefault("GENERATOR_VISITOR_MULTIPLIER_MIN", 4.0)
	viper.SetDefault("GENERATOR_VISITOR_MULTIPLIER_MAX", 8.0)
	viper.SetDefault("GENERATOR_MIN_CONVERSION", 0.05)
	viper.SetDefault("GENERATOR_MAX_CONVERSION", 0.35)

	viper.SetDefault("REDIS_URL", "") // vazio = cache desabilitado
	viper.SetDefault("CACHE_TTL", "10m")

	viper.SetDefault("BACKFILL_SYNC_CRON", "0 2 * * *") // Todos os dias às 2h da manhã
	viper.SetDefault("BACKFILL_SYNC_LOOKBACK_DAYS", 30)
	viper.SetDefault("BACKFILL_SYNC_ENABLED", false)

	viper.SetDefault("TRACING_ENABLED", false)
	viper.SetDefault("TRACING_SERVICE_NAME", "sales-dashboard-api")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis de ambiente (viper não conseguiu ler .env): ", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if config.Generator.VisitorMultiplierMax < config.Generator.VisitorMultiplierMin {
		config.Generator.VisitorMultiplierMax = config.Generator.VisitorMultiplierMin
	}

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
