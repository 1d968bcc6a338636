package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config groups the application settings. Values come from environment variables,
// optionally from a .env or config.env file in the working directory.
type Config struct {
	App   AppConfig
	HTTP  HTTPConfig
	DB    DBConfig
	Sales SalesConfig
}

type AppConfig struct {
	Name     string
	Env      string // development, staging, production
	LogLevel string
}

type HTTPConfig struct {
	Host        string
	Port        int
	SwaggerFile string // empty disables /docs
	CORSOrigins string
}

// Addr returns the listen address.
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type DBConfig struct {
	Driver      string
	SQLitePath  string
	DatabaseURL string // overrides the discrete postgres fields when set
	Host        string
	Port        int
	User        string
	Password    string
	Name        string
	SSLMode     string
	Seed        bool
}

// PostgresDSN returns the connection string for the postgres driver.
func (c DBConfig) PostgresDSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.Name,
		RawQuery: "sslmode=" + c.SSLMode,
	}
	return u.String()
}

// SalesConfig holds the rules applied to sales.
type SalesConfig struct {
	// Location defines which calendar day counts as "today" for new sales.
	Location *time.Location
}

// Load reads the configuration. Environment variables win over file values.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig()

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.MergeInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)

	cfg := &Config{
		App: AppConfig{
			Name:     v.GetString("APP_NAME"),
			Env:      v.GetString("APP_ENV"),
			LogLevel: v.GetString("LOG_LEVEL"),
		},
		HTTP: HTTPConfig{
			Host:        v.GetString("HTTP_HOST"),
			Port:        v.GetInt("HTTP_PORT"),
			SwaggerFile: v.GetString("HTTP_SWAGGER_FILE"),
			CORSOrigins: v.GetString("HTTP_CORS_ORIGINS"),
		},
		DB: DBConfig{
			Driver:      strings.ToLower(v.GetString("DB_DRIVER")),
			SQLitePath:  v.GetString("DB_SQLITE_PATH"),
			DatabaseURL: v.GetString("DATABASE_URL"),
			Host:        v.GetString("DB_HOST"),
			Port:        v.GetInt("DB_PORT"),
			User:        v.GetString("DB_USER"),
			Password:    v.GetString("DB_PASSWORD"),
			Name:        v.GetString("DB_NAME"),
			SSLMode:     v.GetString("DB_SSLMODE"),
			Seed:        v.GetBool("DB_SEED"),
		},
	}

	switch cfg.DB.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DB.Driver)
	}

	loc, err := time.LoadLocation(v.GetString("SALES_TIMEZONE"))
	if err != nil {
		return nil, fmt.Errorf("invalid SALES_TIMEZONE: %w", err)
	}
	cfg.Sales.Location = loc

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "inventario-api")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("HTTP_HOST", "0.0.0.0")
	v.SetDefault("HTTP_PORT", 8080)
	v.SetDefault("HTTP_SWAGGER_FILE", "./docs/swagger.json")
	v.SetDefault("HTTP_CORS_ORIGINS", "*")
	v.SetDefault("DB_DRIVER", DriverSQLite)
	v.SetDefault("DB_SQLITE_PATH", "inventario.db")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_NAME", "inventario")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_SEED", false)
	v.SetDefault("SALES_TIMEZONE", "Local")
}
