package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"krushi/internal/domain/contact"
	"krushi/internal/domain/translation"
)

const defaultDatabaseURL = "postgres://localhost:5432/krushi?sslmode=disable"

type Config struct {
	Port            int    `env:"PORT" envDefault:"5000"`
	DatabaseURL     string `env:"DATABASE_URL"`
	MigrationsPath  string `env:"MIGRATIONS_PATH" envDefault:"migrations"`
	ClientURL       string `env:"CLIENT_URL" envDefault:"http://localhost:3000"`
	Environment     string `env:"APP_ENV" envDefault:"development"`
	LogLevel        string `env:"LOG_LEVEL" envDefault:"info"`
	LogColored      bool   `env:"LOG_COLORED" envDefault:"true"`
	DefaultLanguage string `env:"DEFAULT_LANGUAGE" envDefault:"en"`

	DiscordWebhookURL string `env:"DISCORD_WEBHOOK_URL"`
	NotifyWorkers     int    `env:"NOTIFY_WORKERS" envDefault:"4"`

	ContactNameMin    int `env:"CONTACT_NAME_MIN" envDefault:"2"`
	ContactSubjectMin int `env:"CONTACT_SUBJECT_MIN" envDefault:"3"`
	ContactMessageMin int `env:"CONTACT_MESSAGE_MIN" envDefault:"10"`
	ContactMessageMax int `env:"CONTACT_MESSAGE_MAX" envDefault:"1000"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// ClientConfig is the configuration of the command-line API client.
type ClientConfig struct {
	APIURL          string        `env:"API_URL" envDefault:"http://localhost:5000/api"`
	Timeout         time.Duration `env:"HTTP_CLIENT_TIMEOUT" envDefault:"10s"`
	DefaultLanguage string        `env:"DEFAULT_LANGUAGE" envDefault:"en"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"warn"`
}

// Load reads the server configuration from the environment (and an optional
// .env file) and validates it.
func Load() (*Config, error) {
	loadDotEnv()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadClient reads the API client configuration.
func LoadClient() (*ClientConfig, error) {
	loadDotEnv()

	cfg := &ClientConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadDotEnv() {
	// .env is optional when variables come from the environment (Docker, CI...).
	_ = godotenv.Load()
}

// IsDevelopment reports whether APP_ENV is "development".
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// Addr is the listen address of the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// ContactRules returns the contact-form thresholds.
func (c *Config) ContactRules() contact.Rules {
	return contact.Rules{
		NameMinLength:    c.ContactNameMin,
		SubjectMinLength: c.ContactSubjectMin,
		MessageMinLength: c.ContactMessageMin,
		MessageMaxLength: c.ContactMessageMax,
	}
}

// validate applies the business rules to the loaded configuration.
func (c *Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config: PORT must be between 1 and 65535, got %d", c.Port)
	}

	if strings.TrimSpace(c.DatabaseURL) == "" {
		// Local default when DATABASE_URL is not provided.
		c.DatabaseURL = defaultDatabaseURL
	}
	parsed, err := url.Parse(c.DatabaseURL)
	if err != nil {
		return fmt.Errorf("config: invalid DATABASE_URL: %w", err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: invalid DATABASE_URL: missing scheme or host")
	}

	if err := checkHTTPURL("CLIENT_URL", c.ClientURL); err != nil {
		return err
	}
	if c.DiscordWebhookURL != "" {
		if err := checkHTTPURL("DISCORD_WEBHOOK_URL", c.DiscordWebhookURL); err != nil {
			return err
		}
	}

	if err := checkLanguage(c.DefaultLanguage); err != nil {
		return err
	}

	if c.NotifyWorkers <= 0 {
		return fmt.Errorf("config: NOTIFY_WORKERS must be positive, got %d", c.NotifyWorkers)
	}

	for _, th := range []struct {
		name  string
		value int
	}{
		{"CONTACT_NAME_MIN", c.ContactNameMin},
		{"CONTACT_SUBJECT_MIN", c.ContactSubjectMin},
		{"CONTACT_MESSAGE_MIN", c.ContactMessageMin},
	} {
		if th.value < 1 {
			return fmt.Errorf("config: %s must be at least 1, got %d", th.name, th.value)
		}
	}
	if c.ContactMessageMax < c.ContactMessageMin {
		return fmt.Errorf("config: CONTACT_MESSAGE_MAX (%d) must not be below CONTACT_MESSAGE_MIN (%d)", c.ContactMessageMax, c.ContactMessageMin)
	}
	// contacts.message is VARCHAR(1000).
	if c.ContactMessageMax > contact.DefaultMessageMaxLength {
		return fmt.Errorf("config: CONTACT_MESSAGE_MAX must not exceed %d, got %d", contact.DefaultMessageMaxLength, c.ContactMessageMax)
	}
	return nil
}

func (c *ClientConfig) validate() error {
	if err := checkHTTPURL("API_URL", c.APIURL); err != nil {
		return err
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("config: HTTP_CLIENT_TIMEOUT must be positive")
	}
	return checkLanguage(c.DefaultLanguage)
}

func checkHTTPURL(name, raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("config: invalid %s: %w", name, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("config: invalid %s %q: expected an http(s) URL", name, raw)
	}
	return nil
}

func checkLanguage(lang string) error {
	if lang != translation.English && lang != translation.Marathi {
		return fmt.Errorf("config: DEFAULT_LANGUAGE must be %q or %q, got %q", translation.English, translation.Marathi, lang)
	}
	return nil
}
