package jsonbody

import (
	"errors"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrParsingConfig wraps env parsing failures from LoadConfig.
var ErrParsingConfig = errors.New("failed to parse config")

var defaultEnvLoaded sync.Once

// LoadConfig builds a Config from JSONBODY_* environment variables,
// loading a .env file once if one exists. The predicate and engine
// fields keep their defaults; set them on the returned value when a
// route needs custom behavior.
//
// Example:
//
//	cfg, err := jsonbody.LoadConfig()
//	if err != nil {
//		// Handle error
//	}
//	cfg.AllowUnknownFields = true
func LoadConfig() (Config, error) {
	defaultEnvLoaded.Do(func() {
		// The .env file might not exist and that's ok.
		_ = godotenv.Load()
	})

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}
