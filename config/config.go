package config

import (
	"time"

	"github.com/gotify/configor"
)

type Configuration struct {
	App struct {
		ListenAddr string `default:"" env:"APP_HOST"`
		Port       int    `default:"8080" env:"APP_PORT"`
	}
	Database struct {
		Path      string `default:"talentflow.db" env:"DB_PATH"`
		DebugMode *bool  `default:"false" env:"DB_DEBUG_MODE"`
		SeedData  *bool  `default:"true" env:"DB_SEED_DATA"`
	}
	// Api tunes the simulated-network imperfections.
	Api struct {
		LatencyMinMs int     `default:"200" env:"API_LATENCY_MIN_MS"`
		LatencyMaxMs int     `default:"1200" env:"API_LATENCY_MAX_MS"`
		ErrorRate    float64 `default:"0" env:"API_ERROR_RATE"` // 0..1, probability a mutation fails
	}
	Client struct {
		RetryAttempts    int `default:"3" env:"CLIENT_RETRY_ATTEMPTS"`
		RetryBaseDelayMs int `default:"100" env:"CLIENT_RETRY_BASE_DELAY_MS"`
	}
	Auth struct {
		JWTSecret      string `default:"talentflow-dev-secret" env:"AUTH_JWT_SECRET"`
		JWTExpireInSec int    `default:"86400" env:"AUTH_JWT_EXPIRE_IN_SEC"`
	}
}

func (c *Configuration) LatencyMin() time.Duration {
	return time.Duration(c.Api.LatencyMinMs) * time.Millisecond
}

func (c *Configuration) LatencyMax() time.Duration {
	return time.Duration(c.Api.LatencyMaxMs) * time.Millisecond
}

func (c *Configuration) RetryBaseDelay() time.Duration {
	return time.Duration(c.Client.RetryBaseDelayMs) * time.Millisecond
}

func (c *Configuration) JWTExpire() time.Duration {
	return time.Duration(c.Auth.JWTExpireInSec) * time.Second
}

func configFiles() []string {
	return []string{"config.yml"}
}

func Load() (*Configuration, error) {
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		return nil, err
	}
	return conf, nil
}
