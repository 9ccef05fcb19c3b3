package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	defaultAddress        = ":5000"
	defaultTimeout        = 30
	defaultAccessTokenAge = 3000
	defaultLogLevel       = "info"
)

// Config holds everything the process reads from the environment.
type Config struct {
	ServerAddress  string
	ContextTimeout time.Duration
	GinMode        string
	LogLevel       logrus.Level

	DatabaseHost string
	DatabasePort string
	DatabaseUser string
	DatabasePass string
	DatabaseName string
	AutoMigrate  bool

	AccessTokenKey  string
	RefreshTokenKey string
	AccessTokenAge  time.Duration
}

// Load reads .env when present and then the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		logrus.Warn("no .env file loaded, using process environment")
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from getenv, applying defaults for unset or
// unparsable values.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		ServerAddress: getenv("SERVER_ADDRESS"),
		GinMode:       getenv("GIN_MODE"),

		DatabaseHost: getenv("DATABASE_HOST"),
		DatabasePort: getenv("DATABASE_PORT"),
		DatabaseUser: getenv("DATABASE_USER"),
		DatabasePass: getenv("DATABASE_PASS"),
		DatabaseName: getenv("DATABASE_NAME"),

		AccessTokenKey:  getenv("ACCESS_TOKEN_KEY"),
		RefreshTokenKey: getenv("REFRESH_TOKEN_KEY"),
	}
	if cfg.ServerAddress == "" {
		cfg.ServerAddress = defaultAddress
	}
	if cfg.DatabasePort == "" {
		cfg.DatabasePort = "3306"
	}

	timeout, err := strconv.Atoi(getenv("CONTEXT_TIMEOUT"))
	if err != nil || timeout <= 0 {
		if v := getenv("CONTEXT_TIMEOUT"); v != "" {
			logrus.Warnf("failed to parse CONTEXT_TIMEOUT %q, using default %ds", v, defaultTimeout)
		}
		timeout = defaultTimeout
	}
	cfg.ContextTimeout = time.Duration(timeout) * time.Second

	age, err := strconv.Atoi(getenv("ACCESS_TOKEN_AGE"))
	if err != nil || age <= 0 {
		if v := getenv("ACCESS_TOKEN_AGE"); v != "" {
			logrus.Warnf("failed to parse ACCESS_TOKEN_AGE %q, using default %ds", v, defaultAccessTokenAge)
		}
		age = defaultAccessTokenAge
	}
	cfg.AccessTokenAge = time.Duration(age) * time.Second

	if v := getenv("DATABASE_AUTO_MIGRATE"); v != "" {
		migrate, err := strconv.ParseBool(v)
		if err != nil {
			logrus.Warnf("failed to parse DATABASE_AUTO_MIGRATE %q, migrations disabled", v)
		}
		cfg.AutoMigrate = migrate
	}

	levelStr := getenv("LOG_LEVEL")
	if levelStr == "" {
		levelStr = defaultLogLevel
	}
	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		logrus.Warnf("unknown LOG_LEVEL %q, using %s", levelStr, defaultLogLevel)
		level = logrus.InfoLevel
	}
	cfg.LogLevel = level

	if cfg.AccessTokenKey == "" || cfg.RefreshTokenKey == "" {
		return Config{}, errors.New("ACCESS_TOKEN_KEY and REFRESH_TOKEN_KEY must be set")
	}
	return cfg, nil
}

// DSN renders the MySQL connection string. Times are read and written as UTC.
func (c Config) DSN() string {
	dsn := mysqldriver.NewConfig()
	dsn.User = c.DatabaseUser
	dsn.Passwd = c.DatabasePass
	dsn.Net = "tcp"
	dsn.Addr = c.DatabaseHost + ":" + c.DatabasePort
	dsn.DBName = c.DatabaseName
	dsn.ParseTime = true
	dsn.Loc = time.UTC
	return dsn.FormatDSN()
}
