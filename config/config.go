package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server  ServerConfig
	Logger  LoggerConfig
	Backend BackendConfig
	Cache   CacheConfig
	Redis   RedisConfig
	Kafka   KafkaConfig
	Store   StoreConfig
	Contact ContactConfig
}

type ServerConfig struct {
	AppEnv          string
	HTTPPort        string
	ShutdownTimeout time.Duration
	// CORSAllowedOrigins lists browser origins allowed to call the API.
	CORSAllowedOrigins []string
}

type LoggerConfig struct {
	Level             string
	Encoding          string
	DisableCaller     bool
	DisableStacktrace bool
}

// Data sources accepted by BackendConfig.DataSource.
const (
	DataSourceAPI  = "api"
	DataSourceMock = "mock"
)

type BackendConfig struct {
	BaseURL    string
	DataSource string
}

type CacheConfig struct {
	StaleTime         time.Duration
	SettingsStaleTime time.Duration
	SettingsRetry     int
	Prefix            string
}

// RedisConfig is optional. An empty Addr disables the shared cache.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// KafkaConfig is optional. No brokers means contact submissions are simulated.
type KafkaConfig struct {
	Brokers      []string
	ContactTopic string
}

// StoreConfig holds the fallback values used when site settings cannot be fetched.
type StoreConfig struct {
	CompanyName        string
	CompanyDescription string
	WhatsAppNumber     string
	ContactEmail       string
	ContactPhone       string
	ContactAddress     string
	Currency           string
	Locale             string
}

type ContactConfig struct {
	SimulatedDelay  time.Duration
	DeliveryRetries int
}

func (c *Config) IsDevelopment() bool {
	return c.Server.AppEnv == "dev" || c.Server.AppEnv == "development"
}

func (c *Config) MockData() bool {
	return c.Backend.DataSource == DataSourceMock
}

func LoadEnv() *Config {
	return &Config{
		Server: ServerConfig{
			AppEnv:             getEnv("APP_ENV", "dev"),
			HTTPPort:           getEnv("HTTP_PORT", ":8080"),
			ShutdownTimeout:    getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
			CORSAllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS", []string{"*"}),
		},
		Logger: LoggerConfig{
			Level:             getEnv("LOGGER_LEVEL", "debug"),
			Encoding:          getEnv("LOGGER_ENCODING", "console"),
			DisableCaller:     getEnvBool("LOGGER_DISABLE_CALLER", false),
			DisableStacktrace: getEnvBool("LOGGER_DISABLE_STACKTRACE", true),
		},
		Backend: BackendConfig{
			BaseURL:    strings.TrimRight(getEnv("BACKEND_BASE_URL", "http://localhost:8000/api"), "/"),
			DataSource: strings.ToLower(getEnv("DATA_SOURCE", DataSourceAPI)),
		},
		Cache: CacheConfig{
			StaleTime:         getEnvDuration("CACHE_STALE_TIME", time.Minute),
			SettingsStaleTime: getEnvDuration("SETTINGS_STALE_TIME", 30*time.Minute),
			SettingsRetry:     getEnvInt("SETTINGS_RETRY", 3),
			Prefix:            getEnv("CACHE_PREFIX", "storefront:"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Kafka: KafkaConfig{
			Brokers:      getEnvSlice("KAFKA_BROKERS", nil),
			ContactTopic: getEnv("KAFKA_TOPIC_CONTACT", "contact.submissions"),
		},
		Store: StoreConfig{
			CompanyName:        getEnv("STORE_COMPANY_NAME", "NIASOTAC TECHNOLOGIE"),
			CompanyDescription: getEnv("STORE_COMPANY_DESCRIPTION", "Your trusted tech reseller. Quality products at competitive prices."),
			WhatsAppNumber:     getEnv("STORE_WHATSAPP_NUMBER", "+22900000000"),
			ContactEmail:       getEnv("STORE_CONTACT_EMAIL", "contact@niasotac.com"),
			ContactPhone:       getEnv("STORE_CONTACT_PHONE", "+229 00 00 00 00"),
			ContactAddress:     getEnv("STORE_CONTACT_ADDRESS", "Cotonou, Benin"),
			Currency:           getEnv("STORE_CURRENCY", "FCFA"),
			Locale:             getEnv("STORE_LOCALE", "fr"),
		},
		Contact: ContactConfig{
			SimulatedDelay:  getEnvDuration("CONTACT_SIMULATED_DELAY", 1500*time.Millisecond),
			DeliveryRetries: getEnvInt("CONTACT_DELIVERY_RETRIES", 3),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

// getEnvSlice splits a comma separated value, dropping empty items.
func getEnvSlice(key string, fallback []string) []string {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
