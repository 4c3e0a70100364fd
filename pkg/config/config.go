package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultEndpoint is used when no intake endpoint is configured
const DefaultEndpoint = "http://localhost:5050/leads"

// Config holds all application configuration values
type Config struct {
	// Endpoint is where the lead form posts submissions
	Endpoint       string
	Port           string
	DatabaseURL    string
	AllowedOrigins []string
	Environment    string
	LogLevel       string
}

// IsProduction reports whether the app runs with production settings
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// LoadDotEnv loads a .env file into the process environment if one exists
func LoadDotEnv(files ...string) error {
	return godotenv.Load(files...)
}

// LoadConfig resolves configuration from flags bound to v, environment variables and defaults.
// Keys can be set with an ONBOARDLY_ prefix; a few unprefixed names are also honoured.
func LoadConfig(v *viper.Viper) *Config {
	v.SetEnvPrefix("ONBOARDLY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("endpoint", DefaultEndpoint)
	v.SetDefault("port", "5050")
	v.SetDefault("database_url", "onboardly.db")
	v.SetDefault("allowed_origins", "*")
	v.SetDefault("environment", "development")
	v.SetDefault("log_level", "")

	v.BindEnv("endpoint", "ONBOARDLY_ENDPOINT", "BACKEND_API", "VITE_BACKEND_API")
	v.BindEnv("port", "ONBOARDLY_PORT", "PORT")
	v.BindEnv("database_url", "ONBOARDLY_DATABASE_URL", "DATABASE_URL")

	return &Config{
		Endpoint:       v.GetString("endpoint"),
		Port:           v.GetString("port"),
		DatabaseURL:    v.GetString("database_url"),
		AllowedOrigins: splitList(v.GetString("allowed_origins")),
		Environment:    v.GetString("environment"),
		LogLevel:       v.GetString("log_level"),
	}
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
