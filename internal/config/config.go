package config

import (
	"errors"
	"fmt"
	"io/fs"
	"regexp"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type AppConfig struct {
	API          *APIConfig          `mapstructure:"api"`
	Gin          *GinConfig          `mapstructure:"gin"`
	Postgres     *PostgresConfig     `mapstructure:"postgres"`
	Ticket       *TicketConfig       `mapstructure:"ticket"`
	Notification *NotificationConfig `mapstructure:"notification"`
	SMTP         *SMTPConfig         `mapstructure:"smtp"`
	RabbitMQ     *RabbitMQConfig     `mapstructure:"rabbitmq"`
}

type APIConfig struct {
	Environment        string        `mapstructure:"environment"`
	Port               string        `mapstructure:"port"`
	BaseURL            string        `mapstructure:"base_url"`
	AllowedCORSDomains []string      `mapstructure:"allowed_cors_domains"`
	JWTSigningKey      string        `mapstructure:"jwt_signing_key"`
	JWTTTL             time.Duration `mapstructure:"jwt_ttl"`
	StaffEmail         string        `mapstructure:"staff_email"`
	StaffPassword      string        `mapstructure:"staff_password"`
	StaffPasswordHash  string        `mapstructure:"staff_password_hash"`
	ShutdownTimeout    time.Duration `mapstructure:"shutdown_timeout"`
}

type GinConfig struct {
	Mode string `mapstructure:"mode"`
}

type PostgresConfig struct {
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DB              string        `mapstructure:"db"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// Ticket ids are PREFIX-<time>-<random> split on dashes, so the prefix
// itself must be alphanumeric.
var ticketPrefixPattern = regexp.MustCompile(`^[A-Za-z0-9]+$`)

type TicketConfig struct {
	Prefix string `mapstructure:"prefix"`
}

type NotificationConfig struct {
	Locale           string        `mapstructure:"locale"`
	Timezone         string        `mapstructure:"timezone"`
	OrganizationName string        `mapstructure:"organization_name"`
	BulkDelay        time.Duration `mapstructure:"bulk_delay"`
	SimulatedLatency time.Duration `mapstructure:"simulated_latency"`
}

type SMTPConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
}

func (c *SMTPConfig) Enabled() bool {
	return c != nil && c.Host != ""
}

type RabbitMQConfig struct {
	URL      string `mapstructure:"url"`
	Exchange string `mapstructure:"exchange"`
}

func (c *RabbitMQConfig) Enabled() bool {
	return c != nil && c.URL != ""
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.environment", "development")
	v.SetDefault("api.port", "8080")
	v.SetDefault("api.base_url", "localhost:8080")
	v.SetDefault("api.allowed_cors_domains", []string{"http://localhost:3000"})
	v.SetDefault("api.jwt_ttl", 12*time.Hour)
	v.SetDefault("api.shutdown_timeout", 10*time.Second)
	v.SetDefault("api.jwt_signing_key", "")
	v.SetDefault("api.staff_email", "")
	v.SetDefault("api.staff_password", "")
	v.SetDefault("api.staff_password_hash", "")
	v.SetDefault("gin.mode", "debug")
	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.port", "5432")
	v.SetDefault("postgres.user", "postgres")
	v.SetDefault("postgres.password", "")
	v.SetDefault("postgres.db", "zunde")
	v.SetDefault("postgres.sslmode", "disable")
	v.SetDefault("postgres.max_open_conns", 20)
	v.SetDefault("postgres.max_idle_conns", 5)
	v.SetDefault("postgres.conn_max_lifetime", 30*time.Minute)
	v.SetDefault("ticket.prefix", "ZUN")
	v.SetDefault("notification.locale", "en")
	v.SetDefault("notification.timezone", "Africa/Harare")
	v.SetDefault("notification.organization_name", "Zunde Outreach")
	v.SetDefault("notification.bulk_delay", 100*time.Millisecond)
	v.SetDefault("smtp.host", "")
	v.SetDefault("smtp.port", 587)
	v.SetDefault("smtp.username", "")
	v.SetDefault("smtp.password", "")
	v.SetDefault("smtp.from", "")
	v.SetDefault("rabbitmq.url", "")
	v.SetDefault("rabbitmq.exchange", "zunde.attendance")
}

// Load reads the YAML file at path; every key can be overridden by an
// environment variable such as API_PORT or POSTGRES_HOST.
func Load(path string) (*AppConfig, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	fileRead := true
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("v.ReadInConfig -> %w", err)
		}
		fileRead = false
	}

	conf := &AppConfig{}
	if err := v.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("v.Unmarshal -> %w", err)
	}

	if err := conf.validate(); err != nil {
		return nil, err
	}

	if fileRead {
		v.OnConfigChange(func(e fsnotify.Event) {
			zap.L().Warn("config file changed, restart the server to apply it",
				zap.String("file", e.Name),
				zap.String("op", e.Op.String()),
			)
		})
		v.WatchConfig()
	}

	return conf, nil
}

func (c *AppConfig) validate() error {
	if c.API == nil || c.Gin == nil || c.Postgres == nil || c.Ticket == nil || c.Notification == nil {
		return errors.New("config: missing section")
	}
	if strings.TrimSpace(c.API.JWTSigningKey) == "" {
		return errors.New("config: api.jwt_signing_key is required")
	}
	if strings.TrimSpace(c.API.StaffEmail) == "" {
		return errors.New("config: api.staff_email is required")
	}
	if c.API.StaffPassword == "" && c.API.StaffPasswordHash == "" {
		return errors.New("config: one of api.staff_password or api.staff_password_hash is required")
	}
	if c.Ticket.Prefix != "" && !ticketPrefixPattern.MatchString(c.Ticket.Prefix) {
		return fmt.Errorf("config: ticket.prefix %q must contain only letters and digits", c.Ticket.Prefix)
	}
	if c.SMTP == nil {
		c.SMTP = &SMTPConfig{}
	}
	if c.RabbitMQ == nil {
		c.RabbitMQ = &RabbitMQConfig{}
	}

	return nil
}
