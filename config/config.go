package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// App is the process configuration read from the environment.
type App struct {
	DatabaseURL      string `envconfig:"DATABASE_URL"`
	DBLogLevel       string `envconfig:"DB_LOG_LEVEL" default:"warn"`
	Port             string `envconfig:"PORT" default:"8080"`
	AppURL           string `envconfig:"APP_URL" default:"http://localhost:8080"`
	CorsOrigins      string `envconfig:"CORS_ORIGINS" default:"*"`
	WebhookSecret    string `envconfig:"WEBHOOK_SECRET"`
	AuthJWTPublicKey string `envconfig:"AUTH_JWT_PUBLIC_KEY"`
	CloudinaryURL    string `envconfig:"CLOUDINARY_URL"`
	UploadDir        string `envconfig:"UPLOAD_DIR" default:"./uploads"`
	ImageQuality     int    `envconfig:"IMAGE_QUALITY" default:"80"`
	MaxUploadMB      int64  `envconfig:"MAX_UPLOAD_MB" default:"10"`
}

func Load() (App, error) {
	var cfg App
	if err := envconfig.Process("", &cfg); err != nil {
		return App{}, fmt.Errorf("load config: %w", err)
	}
	if cfg.ImageQuality < 1 || cfg.ImageQuality > 100 {
		return App{}, fmt.Errorf("load config: IMAGE_QUALITY must be between 1 and 100, got %d", cfg.ImageQuality)
	}
	if cfg.MaxUploadMB < 1 {
		return App{}, fmt.Errorf("load config: MAX_UPLOAD_MB must be positive, got %d", cfg.MaxUploadMB)
	}
	return cfg, nil
}

func (a App) MaxUploadBytes() int64 { return a.MaxUploadMB << 20 }
