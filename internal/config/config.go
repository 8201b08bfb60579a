package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort string

	MySQLHost string
	MySQLPort string
	MySQLDB   string
	MySQLUser string
	MySQLPass string

	RedisAddr string
	RedisPass string
	RedisDB   int

	IdempTTLSecs int

	LogLevel  string
	LogFormat string

	ApprovalPolicy   string
	ApprovalMinScore int

	ReminderCron       string
	ReminderWindowDays int

	SMTPAddr string
	SMTPUser string
	SMTPPass string
	SMTPFrom string
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getint(k string, d int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return d
}

// Load reads the environment, after merging an optional .env file. Variables
// already set win over the file.
func Load() *Config {
	_ = godotenv.Load()
	return FromEnv()
}

func FromEnv() *Config {
	return &Config{
		AppPort:   getenv("APP_PORT", "8080"),
		MySQLHost: getenv("MYSQL_HOST", "mysql"),
		MySQLPort: getenv("MYSQL_PORT", "3306"),
		MySQLDB:   getenv("MYSQL_DB", "lending"),
		MySQLUser: getenv("MYSQL_USER", "lending"),
		MySQLPass: getenv("MYSQL_PASS", "lending"),

		RedisAddr:    getenv("REDIS_ADDR", "redis:6379"),
		RedisPass:    os.Getenv("REDIS_PASSWORD"),
		RedisDB:      getint("REDIS_DB", 0),
		IdempTTLSecs: getint("IDEMPOTENCY_TTL_SECONDS", 300),

		LogLevel:  getenv("LOG_LEVEL", "info"),
		LogFormat: getenv("LOG_FORMAT", "json"),

		ApprovalPolicy:   getenv("APPROVAL_POLICY", "income"),
		ApprovalMinScore: getint("APPROVAL_MIN_SCORE", 60),

		// empty disables the job
		ReminderCron:       getenv("REMINDER_CRON", "0 8 * * *"),
		ReminderWindowDays: getint("REMINDER_WINDOW_DAYS", 3),

		// empty SMTP_ADDR logs reminders instead of mailing them
		SMTPAddr: os.Getenv("SMTP_ADDR"),
		SMTPUser: os.Getenv("SMTP_USER"),
		SMTPPass: os.Getenv("SMTP_PASS"),
		SMTPFrom: getenv("SMTP_FROM", "no-reply@lending.local"),
	}
}

func (c *Config) Validate() error {
	if c.MySQLHost == "" || c.MySQLPort == "" || c.MySQLDB == "" || c.MySQLUser == "" {
		return errors.New("missing MySQL config (MYSQL_HOST/PORT/DB/USER)")
	}
	// ensure port is valid
	if _, err := net.LookupPort("tcp", c.MySQLPort); err != nil {
		return fmt.Errorf("invalid MYSQL_PORT %q: %w", c.MySQLPort, err)
	}
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	if c.IdempTTLSecs <= 0 {
		return fmt.Errorf("invalid IDEMPOTENCY_TTL_SECONDS %d", c.IdempTTLSecs)
	}
	if c.ReminderWindowDays < 0 {
		return fmt.Errorf("invalid REMINDER_WINDOW_DAYS %d", c.ReminderWindowDays)
	}
	if c.SMTPAddr != "" {
		if _, _, err := net.SplitHostPort(c.SMTPAddr); err != nil {
			return fmt.Errorf("invalid SMTP_ADDR %q: %w", c.SMTPAddr, err)
		}
	}
	return nil
}

func (c *Config) mysqlAddr() string { return net.JoinHostPort(c.MySQLHost, c.MySQLPort) }

func (c *Config) MySQLDSN() string {
	// parseTime needed for DATETIME
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?multiStatements=true&parseTime=true&charset=utf8mb4,utf8",
		c.MySQLUser, c.MySQLPass, c.mysqlAddr(), c.MySQLDB)
}
