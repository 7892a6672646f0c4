// Package config loads environment-based configuration into typed structs.
//
// Load reads a .env file once per process (missing files are fine), parses
// environment variables into the target struct with caarlos0/env, validates
// the result against its `validate` tags, and caches the value per type so
// repeated loads are cheap:
//
//	type HTTPConfig struct {
//		Addr string `env:"HTTP_ADDR" envDefault:":8080" validate:"required"`
//	}
//
//	var cfg HTTPConfig
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
package config
