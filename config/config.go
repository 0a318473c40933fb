package config

import (
	"github.com/kelseyhightower/envconfig"
)

// App holds every runtime setting the process needs. Values are read once at
// startup and handed to the components that use them; nothing reads the
// environment after construction.
type App struct {
	// Network
	Host        string `envconfig:"APP_HOST" default:"0.0.0.0"`
	Port        string `envconfig:"APP_PORT" default:"5000"`
	FrontendURL string `envconfig:"FRONTEND_URL" default:"http://localhost:5173"`

	// DB
	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	DBDatabase string `envconfig:"DB_DATABASE" required:"true"`
	DBUsername string `envconfig:"DB_USERNAME" required:"true"`
	DBPassword string `envconfig:"DB_PASSWORD" required:"true"`
	DBSSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`

	// JWT
	JWTAccessToken string `envconfig:"JWT_ACCESS_TOKEN" required:"true"`

	// Payment processor
	StripeSecret  string `envconfig:"STRIPE_SECRET" required:"true"`
	StripeBaseURL string `envconfig:"STRIPE_BASE_URL" default:"https://api.stripe.com"`
}

func Load() (App, error) {
	var c App
	err := envconfig.Process("", &c)
	return c, err
}
