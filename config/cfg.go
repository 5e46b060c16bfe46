package config

import (
	"fmt"
	"os"
	"strings"

	httpapi "github.com/jekabolt/sellerboard-kpi/internal/api/http"
	"github.com/jekabolt/sellerboard-kpi/internal/auth/jwt"
	"github.com/jekabolt/sellerboard-kpi/internal/dashboard"
	"github.com/jekabolt/sellerboard-kpi/internal/entity"
	"github.com/jekabolt/sellerboard-kpi/internal/importer"
	"github.com/jekabolt/sellerboard-kpi/internal/sellerboard"
	"github.com/jekabolt/sellerboard-kpi/internal/store"
	"github.com/jekabolt/sellerboard-kpi/log"
	"github.com/spf13/viper"
)

// Config represents the global configuration for the service.
type Config struct {
	DB          store.Config       `mapstructure:"mysql"`
	Logger      log.Config         `mapstructure:"logger"`
	HTTP        httpapi.Config     `mapstructure:"http"`
	Auth        jwt.Config         `mapstructure:"auth"`
	Importer    importer.Config    `mapstructure:"importer"`
	Sellerboard sellerboard.Config `mapstructure:"sellerboard"`
	Dashboard   dashboard.Config   `mapstructure:"dashboard"`
}

// LoadConfig loads the configuration from a file and/or environment variables.
// Environment variables take precedence over config file values.
// Nested config keys use double underscore, e.g., MYSQL__DSN for mysql.dsn,
// common keys also have flat names, e.g., MYSQL_DSN.
func LoadConfig(cfgFile string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("toml")
	setDefaults(v)

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "__", "-", "__"))
	bindEnvVars(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file: %v", err)
			}
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath("./config")
		v.AddConfigPath("$HOME/config/sellerboard-kpi")
		v.AddConfigPath("/etc/sellerboard-kpi")
		_ = v.ReadInConfig()
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config into struct: %v", err)
	}

	// Accounts can be given without a config file as
	// SELLERBOARD_ACCOUNTS="name=url,name=url".
	if len(config.Importer.Accounts) == 0 {
		accounts, err := parseAccounts(v.GetString("importer.accounts_env"))
		if err != nil {
			return nil, err
		}
		config.Importer.Accounts = accounts
	}

	if config.DB.DSN == "" {
		return nil, fmt.Errorf("mysql.dsn is required")
	}
	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("mysql.automigrate", true)
	v.SetDefault("logger.level", 0)
	v.SetDefault("http.port", "8080")
	v.SetDefault("http.address", "0.0.0.0")
	v.SetDefault("http.allowed_origins", []string{"*"})

	ic := importer.DefaultConfig()
	v.SetDefault("importer.window_days", ic.WindowDays)
	v.SetDefault("importer.replace_days", ic.ReplaceDays)
	v.SetDefault("importer.batch_size", ic.BatchSize)

	sc := sellerboard.DefaultConfig()
	v.SetDefault("sellerboard.timeout", sc.Timeout)
	v.SetDefault("sellerboard.max_retries", sc.MaxRetries)
	v.SetDefault("sellerboard.retry_base", sc.RetryBase)

	dc := dashboard.DefaultConfig()
	v.SetDefault("dashboard.cache_ttl", dc.CacheTTL)
	v.SetDefault("dashboard.summary_days", dc.SummaryDays)
	v.SetDefault("dashboard.sample_limit", dc.SampleLimit)

	v.SetDefault("auth.token_ttl", jwt.DefaultConfig().TokenTTL)
}

func parseAccounts(s string) ([]entity.Account, error) {
	if s == "" {
		return nil, nil
	}
	var accounts []entity.Account
	for _, pair := range strings.Split(s, ",") {
		name, url, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok || name == "" || url == "" {
			return nil, fmt.Errorf("invalid account %q, want name=url", pair)
		}
		accounts = append(accounts, entity.Account{Name: name, ReportURL: url})
	}
	return accounts, nil
}

// bindEnvVars binds environment variables to config keys
// This allows using both nested keys (MYSQL__DSN) and flat keys (MYSQL_DSN)
func bindEnvVars(v *viper.Viper) {
	// MySQL
	v.BindEnv("mysql.dsn", "MYSQL_DSN")
	v.BindEnv("mysql.automigrate", "MYSQL_AUTOMIGRATE")
	v.BindEnv("mysql.max_open_connections", "MYSQL_MAX_OPEN_CONNECTIONS")
	v.BindEnv("mysql.max_idle_connections", "MYSQL_MAX_IDLE_CONNECTIONS")
	v.BindEnv("mysql.tls_ca_path", "MYSQL_TLS_CA_PATH")

	// Logger
	v.BindEnv("logger.level", "LOG_LEVEL")
	v.BindEnv("logger.add_source", "LOG_ADD_SOURCE")

	// HTTP
	v.BindEnv("http.port", "HTTP_PORT", "PORT")
	v.BindEnv("http.address", "HTTP_ADDRESS")
	v.BindEnv("http.allowed_origins", "HTTP_ALLOWED_ORIGINS")

	// Auth
	v.BindEnv("auth.jwt_secret", "AUTH_JWT_SECRET")
	v.BindEnv("auth.password", "AUTH_PASSWORD")
	v.BindEnv("auth.token_ttl", "AUTH_TOKEN_TTL")
	v.BindEnv("auth.cron_secret", "AUTH_CRON_SECRET", "CRON_SECRET")
	v.BindEnv("auth.secure_cookie", "AUTH_SECURE_COOKIE")

	// Importer
	v.BindEnv("importer.accounts_env", "SELLERBOARD_ACCOUNTS")
	v.BindEnv("importer.worker_interval", "IMPORTER_WORKER_INTERVAL")
	v.BindEnv("importer.window_days", "IMPORTER_WINDOW_DAYS")
	v.BindEnv("importer.replace_days", "IMPORTER_REPLACE_DAYS")
	v.BindEnv("importer.batch_size", "IMPORTER_BATCH_SIZE")

	// Sellerboard
	v.BindEnv("sellerboard.timeout", "SELLERBOARD_TIMEOUT")
	v.BindEnv("sellerboard.max_retries", "SELLERBOARD_MAX_RETRIES")

	// Dashboard
	v.BindEnv("dashboard.cache_ttl", "DASHBOARD_CACHE_TTL")
}
