package config

import (
	"flag"
	"os"
	"strconv"
	"sync"
	"time"
)

const (
	defaultServerAddr      = ":8080"
	defaultDatabaseDSN     = ""
	defaultLogLevel        = "debug"
	defaultSMTPPort        = 587
	defaultEmailFrom       = "no-reply@evanlesnar.com"
	defaultArchiveInterval = time.Hour
	defaultMailTimeout     = 10 * time.Second
)

type Config struct {
	ServerAddr      string
	DatabaseDSN     string
	LogLevel        string
	JWTSecret       string
	SMTPHost        string
	SMTPPort        int
	SMTPUsername    string
	SMTPPassword    string
	EmailFrom       string
	AdminEmail      string
	ArchiveInterval time.Duration
	MailTimeout     time.Duration
}

var (
	once      sync.Once
	singleton *Config
)

// New returns new Config. It parses command line and environment variables only once.
func New() (*Config, error) {
	once.Do(func() {
		cfg := Config{
			SMTPPort:        defaultSMTPPort,
			EmailFrom:       defaultEmailFrom,
			ArchiveInterval: defaultArchiveInterval,
			MailTimeout:     defaultMailTimeout,
		}

		// initialize flags
		flag.StringVar(&cfg.ServerAddr, "a", defaultServerAddr, "server address")
		flag.StringVar(&cfg.DatabaseDSN, "d", defaultDatabaseDSN, "database DSN")
		flag.StringVar(&cfg.LogLevel, "l", defaultLogLevel, "log level")
		flag.StringVar(&cfg.JWTSecret, "s", "", "jwt signing secret")

		flag.Parse()

		// if environment variable is set, then using it
		if runAddrEnv := os.Getenv("RUN_ADDRESS"); runAddrEnv != "" {
			cfg.ServerAddr = runAddrEnv
		}
		if dataBaseURIEnv := os.Getenv("DATABASE_URI"); dataBaseURIEnv != "" {
			cfg.DatabaseDSN = dataBaseURIEnv
		}
		if logLevelEnv := os.Getenv("LOG_LEVEL"); logLevelEnv != "" {
			cfg.LogLevel = logLevelEnv
		}
		if jwtSecretEnv := os.Getenv("JWT_SECRET"); jwtSecretEnv != "" {
			cfg.JWTSecret = jwtSecretEnv
		}
		if smtpHostEnv := os.Getenv("SMTP_HOST"); smtpHostEnv != "" {
			cfg.SMTPHost = smtpHostEnv
		}
		if smtpPortEnv := os.Getenv("SMTP_PORT"); smtpPortEnv != "" {
			if port, err := strconv.Atoi(smtpPortEnv); err == nil {
				cfg.SMTPPort = port
			}
		}
		if smtpUserEnv := os.Getenv("SMTP_USERNAME"); smtpUserEnv != "" {
			cfg.SMTPUsername = smtpUserEnv
		}
		if smtpPassEnv := os.Getenv("SMTP_PASSWORD"); smtpPassEnv != "" {
			cfg.SMTPPassword = smtpPassEnv
		}
		if emailFromEnv := os.Getenv("EMAIL_FROM"); emailFromEnv != "" {
			cfg.EmailFrom = emailFromEnv
		}
		if adminEmailEnv := os.Getenv("ADMIN_EMAIL"); adminEmailEnv != "" {
			cfg.AdminEmail = adminEmailEnv
		}
		if archiveIntervalEnv := os.Getenv("ARCHIVE_INTERVAL"); archiveIntervalEnv != "" {
			if interval, err := time.ParseDuration(archiveIntervalEnv); err == nil {
				cfg.ArchiveInterval = interval
			}
		}
		if mailTimeoutEnv := os.Getenv("MAIL_TIMEOUT"); mailTimeoutEnv != "" {
			if timeout, err := time.ParseDuration(mailTimeoutEnv); err == nil {
				cfg.MailTimeout = timeout
			}
		}

		singleton = &cfg
	})

	return singleton, nil
}
