package config

import (
	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTP        HTTPServer
	DatabaseURL string `env:"DATABASE_URL"`
	JWTSecret   string `env:"JWT_SECRET"`

	Clerk  Clerk  `envPrefix:"CLERK_"`
	Paypal Paypal `envPrefix:"PAYPAL_"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"PORT" envDefault:"3000"`
}

type Clerk struct {
	WebhookSecret string `env:"WEBHOOK_SECRET"`
}

type Paypal struct {
	BaseAPIURL   string `env:"BASE_API_URL" envDefault:"https://api-m.sandbox.paypal.com"`
	ClientID     string `env:"CLIENT_ID"`
	ClientSecret string `env:"CLIENT_SECRET"`
	WebhookID    string `env:"WEBHOOK_ID"`
	ReturnURL    string `env:"RETURN_URL"`
	CancelURL    string `env:"CANCEL_URL"`
	// Simulated skips the PayPal API entirely and marks orders paid directly
	Simulated bool `env:"SIMULATED" envDefault:"false"`
}

// Load reads .env (if present) and parses the environment into a Config.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
