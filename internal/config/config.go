package config

import "time"

type Config struct {
	Environment  Environment
	Log          Log
	HTTP         HTTPServer
	DatabasePath string `env:"DATABASE_PATH" envDefault:"bistro.db"`

	JWT     JWT     `envPrefix:"JWT_"`
	Stripe  Stripe  `envPrefix:"STRIPE_"`
	Mailgun Mailgun `envPrefix:"MAILGUN_"`
}

type JWT struct {
	Secret string        `env:"SECRET,required"`
	TTL    time.Duration `env:"TTL" envDefault:"720h"`
}

type Stripe struct {
	BaseApiURL string `env:"BASE_API_URL" envDefault:"https://api.stripe.com"`
	SecretKey  string `env:"SECRET_KEY"`
	Currency   string `env:"CURRENCY" envDefault:"usd"`
}

type Mailgun struct {
	BaseApiURL string `env:"BASE_API_URL" envDefault:"https://api.mailgun.net"`
	APIKey     string `env:"API_KEY"`
	Domain     string `env:"SENDING_DOMAIN"`
	Sender     string `env:"SENDER"`
	Recipient  string `env:"ORDER_RECIPIENT"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"5000"`
}
